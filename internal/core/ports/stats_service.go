package ports

import (
	"context"

	"github.com/teamfolio/portfolio-api/internal/core/authz"
)

// PublicStats is the reduced, non-identifying dashboard view available to
// any requester.
type PublicStats struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Projects int64 `json:"projects"`
}

// AdminStats is the detailed breakdown available to admins only.
type AdminStats struct {
	Users struct {
		Total    int64            `json:"total"`
		Active   int64            `json:"active"`
		Inactive int64            `json:"inactive"`
		ByRole   map[string]int64 `json:"by_role"`
	} `json:"users"`
	Posts struct {
		Total       int64           `json:"total"`
		Published   int64           `json:"published"`
		Unpublished int64           `json:"unpublished"`
		ByAuthor    map[int64]int64 `json:"by_author"`
	} `json:"posts"`
	Projects struct {
		Total   int64           `json:"total"`
		ByOwner map[int64]int64 `json:"by_owner"`
	} `json:"projects"`
}

// StatsService defines the read-only aggregation facet. Counts within one
// call are read back-to-back, not under a snapshot; this is informational
// data only.
type StatsService interface {
	Public(ctx context.Context) (*PublicStats, error)
	Admin(ctx context.Context, actor authz.Actor) (*AdminStats, error)
}
