// Package services contains application services for the Snapfeed client:
// sign-in and session restore, post creation with media upload, and profile
// reads/updates.
package services

import (
	"context"
	"fmt"

	"github.com/snapfeed/snapfeed/internal/client/client"
	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/client/session"
	"github.com/snapfeed/snapfeed/internal/common"
	"github.com/snapfeed/snapfeed/internal/logging"
)

// tokenClient is a transport that also exposes its token pair, so the
// session store can seed and persist it.
type tokenClient interface {
	client.Client
	SetTokens(accessToken, refreshToken string)
	OnTokensChanged(fn func(accessToken, refreshToken string))
}

// docStore is the slice of the store the services need.
type docStore interface {
	Get(ctx context.Context, collection, id string) (*client.Document, error)
	Set(ctx context.Context, collection, id string, fields []byte, merge bool) error
	Add(ctx context.Context, collection string, fields []byte) (string, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignIn: authenticate against the server, persist the session, and make
//     sure the account has a profile document.
//   - Register: create a new account on the server.
//   - RestoreSession: load a persisted session and seed the transport tokens.
//   - SignOut: wipe the persisted session.
//   - Ping: check server liveness.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	SignIn(ctx context.Context, username, password string) (*models.Identity, error)
	Register(ctx context.Context, username, password, displayName, email string) error
	RestoreSession(ctx context.Context) (*models.Identity, error)
	SignOut(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  tokenClient
	session *session.Store
	store   docStore
	logger  logging.Logger
}

// NewAuthService constructs an AuthService bound to the transport, the
// persisted session, and the document store.
func NewAuthService(c tokenClient, s *session.Store, d docStore, l logging.Logger) AuthService {
	a := &authService{client: c, session: s, store: d, logger: l.With("module", "auth_service")}

	// persist refreshed tokens so the next run stays signed in
	c.OnTokensChanged(func(accessToken, refreshToken string) {
		if err := s.SaveTokens(context.Background(), accessToken, refreshToken); err != nil {
			a.logger.Warn(context.Background(), "failed to persist tokens", "error", err)
		}
	})

	return a
}

func (a *authService) SignIn(ctx context.Context, username, password string) (*models.Identity, error) {

	identity, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.session.SaveIdentity(ctx, identity); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.ensureProfile(ctx, identity)

	return identity, nil
}

// ensureProfile creates the users/<id> document on first sign-in so the feed
// has something to join against. Failures are logged, not fatal: the profile
// can be created on a later sign-in.
func (a *authService) ensureProfile(ctx context.Context, identity *models.Identity) {

	doc, err := a.store.Get(ctx, common.UsersCollection, identity.UserID)
	if err != nil {
		a.logger.Warn(ctx, "profile check failed", "error", err)
		return
	}
	if doc != nil {
		return
	}

	profile := &models.UserProfile{
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
	}
	fields, err := profile.Encode()
	if err != nil {
		a.logger.Warn(ctx, "profile encoding failed", "error", err)
		return
	}

	if err := a.store.Set(ctx, common.UsersCollection, identity.UserID, fields, false); err != nil {
		a.logger.Warn(ctx, "profile creation failed", "error", err)
	}
}

func (a *authService) Register(ctx context.Context, username, password, displayName, email string) error {
	if _, err := a.client.Register(ctx, username, password, displayName, email); err != nil {
		return fmt.Errorf("registration error: %w", err)
	}
	return nil
}

// RestoreSession loads the persisted session. Returns (nil, nil) when no one
// is signed in.
func (a *authService) RestoreSession(ctx context.Context) (*models.Identity, error) {

	state, err := a.session.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("session loading error: %w", err)
	}

	if state.Identity == nil {
		return nil, nil
	}

	a.client.SetTokens(state.AccessToken, state.RefreshToken)
	return state.Identity, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	a.client.SetTokens("", "")
	return a.session.Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
