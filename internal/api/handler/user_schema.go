package handler

import "time"

// userResponse is the profile view of an account. The password hash never
// leaves the domain type's json:"-" field; everything else mirrors the
// stored row plus the derived full_name and skills_list.
type userResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	Skills       string    `json:"skills,omitempty"`
	SkillsList   []string  `json:"skills_list"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	GitHubURL    string    `json:"github_url,omitempty"`
	LinkedInURL  string    `json:"linkedin_url,omitempty"`
	Website      string    `json:"personal_website,omitempty"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type listUsersResponse struct {
	Data []userResponse `json:"data"`
}

// updateProfileRequest is a partial update; absent fields stay untouched.
// Role is accepted at the schema level so the policy can reject it with a
// distinct error instead of a generic bind failure.
type updateProfileRequest struct {
	Username     *string `json:"username,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Skills       *string `json:"skills,omitempty"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
	LinkedInURL  *string `json:"linkedin_url,omitempty"`
	GitHubURL    *string `json:"github_url,omitempty"`
	Website      *string `json:"personal_website,omitempty"`
	Role         *string `json:"role,omitempty"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member viewer"`
}
