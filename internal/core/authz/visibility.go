package authz

import "github.com/teamfolio/portfolio-api/internal/core/domain"

// CanViewPost reports whether the actor may see the post at all. Unpublished
// posts exist only for their author and admins. Callers that get false must
// answer "not found", never "forbidden": hidden content is indistinguishable
// from absent content.
func CanViewPost(a Actor, p *domain.Post) bool {
	if p.Published {
		return true
	}
	return a.IsAdmin() || (a.Authenticated && p.AuthorID == a.ID)
}

// VisiblePosts narrows a candidate post collection to what the actor is
// entitled to see. Admins and authors lose nothing; everyone else loses
// unpublished posts.
func VisiblePosts(a Actor, posts []*domain.Post) []*domain.Post {
	if a.IsAdmin() {
		return posts
	}
	out := make([]*domain.Post, 0, len(posts))
	for _, p := range posts {
		if CanViewPost(a, p) {
			out = append(out, p)
		}
	}
	return out
}

// VisibleUsers narrows a user listing per the list-users scope: non-admins
// only see active accounts.
func VisibleUsers(a Actor, users []*domain.User) []*domain.User {
	if a.IsAdmin() {
		return users
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if u.Active {
			out = append(out, u)
		}
	}
	return out
}

// Projects carry no visibility rule: the filter is the identity. Kept
// explicit so every resource goes through the same narrowing step.
func VisibleProjects(_ Actor, projects []*domain.Project) []*domain.Project {
	return projects
}
