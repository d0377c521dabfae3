package cli

import (
	"context"
	"os"

	"github.com/snapfeed/snapfeed/internal/client/models"
)

// Profile prints the signed-in user's profile document.
func (a *App) Profile(ctx context.Context) error {
	if !a.isSignedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	profile, err := a.profileService.Fetch(ctx, a.identity.UserID)
	if err != nil {
		printlnFn("Profile loading failed:", err.Error())
		return err
	}

	name := profile.BestName()
	if name == "" {
		name = models.FallbackDisplayName
	}
	printlnFn("Name:  " + name)
	if profile.Bio != "" {
		printlnFn("Bio:   " + profile.Bio)
	}
	if profile.Intro != "" {
		printlnFn("Intro: " + profile.Intro)
	}
	if profile.PhotoURL != "" {
		printlnFn("Photo: " + profile.PhotoURL)
	}
	if profile.CoverURL != "" {
		printlnFn("Cover: " + profile.CoverURL)
	}
	return nil
}

// EditProfile prompts for new profile values and merges the non-empty ones
// into the profile document. An empty answer keeps the current value. A photo
// path, when given, is uploaded first and stored as the new avatar URL.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.isSignedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter name (or leave empty)", os.Stdout)
	if err != nil {
		return err
	}

	bio, err := getSimpleText(a.reader, "Enter bio (or leave empty)", os.Stdout)
	if err != nil {
		return err
	}

	intro, err := getSimpleText(a.reader, "Enter intro (or leave empty)", os.Stdout)
	if err != nil {
		return err
	}

	photoPath, err := getSimpleText(a.reader, "Enter photo path (or leave empty)", os.Stdout)
	if err != nil {
		return err
	}

	coverPath, err := getSimpleText(a.reader, "Enter cover photo path (or leave empty)", os.Stdout)
	if err != nil {
		return err
	}

	var photoURL, coverURL string
	if photoPath != "" {
		photoURL, err = a.uploader.UploadFile(ctx, photoPath)
		if err != nil {
			printlnFn("Photo upload failed:", err.Error())
			return err
		}
	}
	if coverPath != "" {
		coverURL, err = a.uploader.UploadFile(ctx, coverPath)
		if err != nil {
			printlnFn("Cover upload failed:", err.Error())
			return err
		}
	}

	profile := &models.UserProfile{Name: name, Bio: bio, Intro: intro, PhotoURL: photoURL, CoverURL: coverURL}
	if err := a.profileService.Update(ctx, a.identity.UserID, profile); err != nil {
		printlnFn("Profile update failed:", err.Error())
		return err
	}

	printlnFn("Profile updated.")
	return nil
}
