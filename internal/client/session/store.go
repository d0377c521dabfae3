package session

import (
	"context"
	"encoding/json"

	"github.com/snapfeed/snapfeed/internal/client/models"
)

const (
	keyIdentity     = "identity"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// State is the persisted sign-in state. Identity == nil means signed out.
type State struct {
	Identity     *models.Identity
	AccessToken  string
	RefreshToken string
}

// Store reads and writes the sign-in state through a Repository.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Load restores the persisted state. A missing session yields a zero State.
func (s *Store) Load(ctx context.Context) (*State, error) {
	state := &State{}

	raw, err := s.repo.Get(ctx, keyIdentity)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var id models.Identity
		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, err
		}
		state.Identity = &id
	}

	access, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		return nil, err
	}
	refresh, err := s.repo.Get(ctx, keyRefreshToken)
	if err != nil {
		return nil, err
	}
	state.AccessToken = string(access)
	state.RefreshToken = string(refresh)

	return state, nil
}

// SaveIdentity persists the signed-in identity.
func (s *Store) SaveIdentity(ctx context.Context, id *models.Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, keyIdentity, raw)
}

// SaveTokens persists the current token pair.
func (s *Store) SaveTokens(ctx context.Context, accessToken, refreshToken string) error {
	if err := s.repo.Set(ctx, keyAccessToken, []byte(accessToken)); err != nil {
		return err
	}
	return s.repo.Set(ctx, keyRefreshToken, []byte(refreshToken))
}

// Clear wipes the persisted session on sign-out.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
