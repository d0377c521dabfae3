package cli

import (
	"context"
	"os"

	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/client/view"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for account details and attempts to create
// a new account via the AuthService.
//
// On success it prints "Success! You can sign in now." and returns nil.
// Any I/O or service error is reported to the user and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Register(ctx, userName, password, displayName, email); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success! You can sign in now.")
	return nil
}

// SignIn prompts the user for credentials and tries to authenticate.
//
// On success it stores the identity, switches to online mode, and opens the
// live subscriptions backing the feed and gallery commands.
func (a *App) SignIn(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	identity, err := a.authService.SignIn(ctx, userName, password)
	if err != nil {
		printlnFn("Sign-in failed:", err.Error())
		return err
	}

	a.signedIn(ctx, identity)
	printlnFn("Signed in as " + identity.Username)
	return nil
}

// restoreSession picks up a persisted session so a restart stays signed in.
func (a *App) restoreSession(ctx context.Context) error {
	identity, err := a.authService.RestoreSession(ctx)
	if err != nil {
		return err
	}
	if identity == nil {
		return nil
	}

	a.signedIn(ctx, identity)
	printlnFn("Welcome back, " + identity.Username)
	return nil
}

func (a *App) signedIn(ctx context.Context, identity *models.Identity) {
	a.identity = identity
	a.setMode(ModeOnline)
	a.startSubscriptions(ctx)
}

// Logout tears down the live subscriptions, wipes the persisted session and
// forgets the in-memory identity.
func (a *App) Logout(ctx context.Context) error {
	a.lifecycle.Teardown()
	a.lifecycle = view.NewLifecycle()

	if err := a.authService.SignOut(ctx); err != nil {
		printlnFn("Sign-out failed:", err.Error())
		return err
	}

	a.identity = nil
	a.setFeed(nil)
	a.setMyPosts(nil)
	a.setGallery(nil)
	printlnFn("Signed out.")
	return nil
}
