package domain

import "time"

// UserRole describes what a user is allowed to do in the community.
type UserRole string

const (
	// RoleAdmin is the RT/RW administrator with full access.
	RoleAdmin UserRole = "ADMIN"
	// RolePengurus is a committee member who can verify payments and publish announcements.
	RolePengurus UserRole = "PENGURUS"
	// RoleWarga is a regular resident account.
	RoleWarga UserRole = "WARGA"
)

// AdminRoles is the audience set used when fanning out admin notifications.
var AdminRoles = []UserRole{RoleAdmin, RolePengurus}

// AuthProvider identifies how the user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an account that can sign in to the application.
// Resident data lives separately; a resident may or may not have a linked user.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Role         UserRole     `json:"role"`
	AuthProvider AuthProvider `json:"authProvider"`
	// PasswordHash is nil for provider-managed accounts.
	PasswordHash           *string    `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// IsAdminRole reports whether the role is in the admin audience set.
func (r UserRole) IsAdminRole() bool {
	for _, admin := range AdminRoles {
		if r == admin {
			return true
		}
	}
	return false
}

// GoogleUserInfo holds the profile fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
