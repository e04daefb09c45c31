package handler

import "time"

// --- Request types ---

type createProjectRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	TechStack   string `json:"tech_stack,omitempty" validate:"max=255"`
	DemoLink    string `json:"demo_link,omitempty"  validate:"omitempty,url"`
	SourceCode  string `json:"source_code,omitempty" validate:"omitempty,url"`
	Image       string `json:"image,omitempty"`
}

type updateProjectRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	TechStack   *string `json:"tech_stack,omitempty"`
	DemoLink    *string `json:"demo_link,omitempty"`
	SourceCode  *string `json:"source_code,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// --- Response types ---

type projectResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TechStack     string    `json:"tech_stack,omitempty"`
	TechStackList []string  `json:"tech_stack_list"`
	DemoLink      string    `json:"demo_link,omitempty"`
	SourceCode    string    `json:"source_code,omitempty"`
	Image         string    `json:"image,omitempty"`
	OwnerID       int64     `json:"owner_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listProjectsResponse struct {
	Data []projectResponse `json:"data"`
}
