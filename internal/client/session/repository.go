// Package session persists the signed-in state of the CLI between runs:
// the token pair and the identity the server reported at sign-in. It plays
// the role a session cookie plays in a browser client.
package session

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
