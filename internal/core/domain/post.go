package domain

import "time"

const excerptLength = 200

// Post is a blog entry owned by exactly one user. Unpublished posts are
// visible only to their author or an admin.
type Post struct {
	ID         int64     `json:"id" bson:"_id"`
	AuthorID   int64     `json:"author_id" bson:"author_id"`
	Title      string    `json:"title" bson:"title"`
	Content    string    `json:"content" bson:"content"`
	CoverImage string    `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	Tags       string    `json:"tags,omitempty" bson:"tags,omitempty"`
	Published  bool      `json:"is_published" bson:"is_published"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// OwnerID satisfies authz.Ownable.
func (p *Post) OwnerID() int64 { return p.AuthorID }

// TagsList exposes the comma-separated tags field as a list.
func (p *Post) TagsList() []string { return SplitList(p.Tags) }

// Excerpt returns the first 200 characters of content for list views.
func (p *Post) Excerpt() string {
	if len(p.Content) <= excerptLength {
		return p.Content
	}
	return p.Content[:excerptLength] + "..."
}
