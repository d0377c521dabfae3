package services

import (
	"context"
	"fmt"

	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/common"
	"github.com/snapfeed/snapfeed/internal/logging"
)

// accountClient is the slice of the transport the profile service needs.
type accountClient interface {
	UpdateAccount(ctx context.Context, displayName, photoURL string) error
}

// ProfileService defines profile reads and edits.
//
// Contract:
//   - Fetch: load the users/<id> document. A missing document yields an
//     empty profile, not an error.
//   - Update: merge the non-empty fields of the given profile into the
//     users/<id> document and sync display name and photo to the account.
type ProfileService interface {
	Fetch(ctx context.Context, userID string) (*models.UserProfile, error)
	Update(ctx context.Context, userID string, profile *models.UserProfile) error
}

type profileService struct {
	store  docStore
	client accountClient
	logger logging.Logger
}

// NewProfileService constructs a ProfileService over the document store and
// the account transport.
func NewProfileService(d docStore, c accountClient, l logging.Logger) ProfileService {
	return &profileService{store: d, client: c, logger: l.With("module", "profile_service")}
}

func (p *profileService) Fetch(ctx context.Context, userID string) (*models.UserProfile, error) {

	doc, err := p.store.Get(ctx, common.UsersCollection, userID)
	if err != nil {
		return nil, fmt.Errorf("profile loading error: %w", err)
	}
	if doc == nil {
		return &models.UserProfile{}, nil
	}

	profile, err := models.DecodeProfile(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("profile decoding error: %w", err)
	}
	return profile, nil
}

func (p *profileService) Update(ctx context.Context, userID string, profile *models.UserProfile) error {

	fields, err := profile.Encode()
	if err != nil {
		return fmt.Errorf("profile encoding error: %w", err)
	}

	if err := p.store.Set(ctx, common.UsersCollection, userID, fields, true); err != nil {
		return fmt.Errorf("profile saving error: %w", err)
	}

	// best effort: the profile document is the source of truth, the account
	// copy only feeds Login responses
	if profile.BestName() != "" || profile.PhotoURL != "" {
		if err := p.client.UpdateAccount(ctx, profile.BestName(), profile.PhotoURL); err != nil {
			p.logger.Warn(ctx, "account sync failed", "error", err)
		}
	}

	return nil
}
