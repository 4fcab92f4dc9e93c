package models

import (
	"time"
)

// RoleType is a user's organizational role
type RoleType string

const (
	// RoleCandidate is an applicant who has not been processed yet
	RoleCandidate RoleType = "CANDIDATE"
	// RoleMember is active personnel
	RoleMember RoleType = "MEMBER"
	// RoleAdmin can review applications and manage reference data
	RoleAdmin RoleType = "ADMIN"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	Password    string     `json:"-" db:"password"`
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	Role        RoleType   `json:"role" db:"role"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	AvatarURL   *string    `json:"avatarUrl,omitempty" db:"avatar_url"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}
