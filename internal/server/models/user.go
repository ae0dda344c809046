// Package models holds the server-side domain records persisted in Postgres
// plus the derived dashboard shapes.
package models

import (
	"time"

	"github.com/fittrackhq/fittrack/internal/server/auth"
)

// User is a registered person's durable record. The email uniquely
// identifies at most one User; the record is created at registration and is
// read-only to the authentication path.
type User struct {
	ID           string
	Email        string
	FirstName    *string
	LastName     *string
	Avatar       *string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity strips the record down to what may cross the authenticator
// boundary. The password hash stays behind.
func (u *User) Identity() auth.Identity {
	return auth.Identity{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
}
