package domain

import (
	"strings"
	"time"
)

// Role determines what an account may create and moderate.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// ValidRole reports whether s names one of the three roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// User models an account in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Bio          string    `json:"bio,omitempty"`
	Role         Role      `json:"role"`
	Skills       string    `json:"skills,omitempty"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	LinkedInURL  string    `json:"linkedin_url,omitempty"`
	GitHubURL    string    `json:"github_url,omitempty"`
	Website      string    `json:"personal_website,omitempty"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastLogin    time.Time `json:"last_login,omitempty"`
}

// FullName joins first and last name, trimming when either is empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// SkillsList exposes the comma-separated skills field as a list.
func (u *User) SkillsList() []string {
	return SplitList(u.Skills)
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanCreateContent reports whether the account may create posts and projects.
func (u *User) CanCreateContent() bool {
	return u.Role == RoleAdmin || u.Role == RoleMember
}
