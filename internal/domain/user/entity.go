package user

import "time"

// User is an employee tracked by the attendance system. Console users
// (admins) additionally carry a password hash; every user carries an
// opaque badge token their QR code encodes.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash *string
	BadgeToken   string
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
