package domain

import "time"

// Project is a portfolio entry owned by exactly one user. All projects are
// publicly visible; only ownership gates mutation.
type Project struct {
	ID          int64     `json:"id" bson:"_id"`
	UserID      int64     `json:"owner_id" bson:"owner_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	TechStack   string    `json:"tech_stack,omitempty" bson:"tech_stack,omitempty"`
	DemoLink    string    `json:"demo_link,omitempty" bson:"demo_link,omitempty"`
	SourceCode  string    `json:"source_code,omitempty" bson:"source_code,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// OwnerID satisfies authz.Ownable.
func (p *Project) OwnerID() int64 { return p.UserID }

// TechStackList exposes the comma-separated tech stack field as a list.
func (p *Project) TechStackList() []string { return SplitList(p.TechStack) }
