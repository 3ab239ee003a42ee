package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Role represents the coarse role of a user account within its tenants.
type Role string

const (
	// RoleAdmin indicates the user may manage tenant content, media and users.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular user with read/edit access to content.
	RoleUser Role = "user"
)

// User represents a user account in the system.
// Users authenticate with email and password and belong to one or more
// tenants. CurrentTenant selects which tenant the user is acting on; it is
// only meaningful when the user belongs to more than one tenant.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the user account is active and can log in.
	Active bool
	// Email is the unique address used for login.
	Email string `gorm:"unique;size:255;not null" validate:"required,email"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// Name is the user's display name.
	Name string `gorm:"size:255"`
	// Role is the user's role (admin or user).
	Role Role `gorm:"type:varchar(20);not null;default:'user'" validate:"omitempty,oneof=admin user"`
	// IsSuperAdmin grants access across all tenants. A super-admin must still
	// reference at least one tenant; on creation this is defaulted to the
	// tenant flagged IsDefault.
	IsSuperAdmin bool `gorm:"default:false"`
	// Tenants are the tenants this user belongs to.
	Tenants []Tenant `gorm:"many2many:user_tenants"`
	// CurrentTenantID is the tenant the user is currently acting on.
	CurrentTenantID *uint64
	// CurrentTenant is the associated current tenant.
	CurrentTenant *Tenant `gorm:"foreignKey:CurrentTenantID;references:ID;constraint:OnDelete:SET NULL"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time
	// DeletedAt is the soft delete timestamp (zero if not deleted, managed by GORM).
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// This function should be used when creating or updating user passwords.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
