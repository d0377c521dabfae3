package cli

import (
	"context"
	"errors"
	"os"

	"github.com/snapfeed/snapfeed/internal/common"
)

// Post prompts for post text and optional image paths and publishes the post.
// Images are uploaded first; if any upload fails nothing is published.
func (a *App) Post(ctx context.Context) error {
	if !a.isSignedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	text, err := GetMultiline(a.reader, "Enter post text", os.Stdout)
	if err != nil {
		return err
	}

	paths, err := GetPathList(a.reader, "Enter image paths, comma separated (or leave empty)", os.Stdout)
	if err != nil {
		return err
	}

	id, err := a.postService.Create(ctx, a.identity.UserID, text, paths)
	if err != nil {
		if errors.Is(err, common.ErrorEmptyPost) {
			printlnFn("A post needs some text or at least one image.")
		} else {
			printlnFn("Posting failed:", err.Error())
		}
		return err
	}

	printlnFn("Posted!", id)
	return nil
}
