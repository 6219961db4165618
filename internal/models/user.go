package models

import (
	"database/sql"
	"time"
)

// User is the row shape of the users table.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	AuthProvider string         `db:"auth_provider"`
	PasswordHash sql.NullString `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
