package users

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByLogin(ctx context.Context, userName string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateAccount(ctx context.Context, id string, displayName, photoURL string) error
}
