package handler

import "time"

// --- Request types ---

type createPostRequest struct {
	Title      string `json:"title"   validate:"required,max=255"`
	Content    string `json:"content" validate:"required"`
	CoverImage string `json:"cover_image,omitempty"`
	Tags       string `json:"tags,omitempty" validate:"max=255"`
	Published  *bool  `json:"is_published,omitempty"`
}

type updatePostRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	CoverImage *string `json:"cover_image,omitempty"`
	Tags       *string `json:"tags,omitempty"`
	Published  *bool   `json:"is_published,omitempty"`
}

// --- Response types ---

// postResponse is the full detail view.
type postResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CoverImage string    `json:"cover_image,omitempty"`
	Tags       string    `json:"tags,omitempty"`
	TagsList   []string  `json:"tags_list"`
	Published  bool      `json:"is_published"`
	AuthorID   int64     `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// postSummaryResponse is the lightweight item used in list responses: the
// content is replaced by a 200-character excerpt.
type postSummaryResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"cover_image,omitempty"`
	TagsList   []string  `json:"tags_list"`
	Published  bool      `json:"is_published"`
	AuthorID   int64     `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type listPostsResponse struct {
	Data []postSummaryResponse `json:"data"`
}
