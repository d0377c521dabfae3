// Package users implements account management: registration with bcrypt
// password hashing, login with JWT access/refresh token issue, refresh token
// rotation, and profile-facing account updates.
package users

type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	DisplayName  string
	PhotoURL     string
	Email        string
}
