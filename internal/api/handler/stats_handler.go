package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

// StatsHandler handles the read-only aggregation and search endpoints.
type StatsHandler struct {
	statsService   ports.StatsService
	postService    ports.PostService
	projectService ports.ProjectService
}

func NewStatsHandler(statsService ports.StatsService, postService ports.PostService, projectService ports.ProjectService) *StatsHandler {
	return &StatsHandler{
		statsService:   statsService,
		postService:    postService,
		projectService: projectService,
	}
}

type searchResponse struct {
	Query    string                `json:"query"`
	Posts    []postSummaryResponse `json:"posts"`
	Projects []projectResponse     `json:"projects"`
}

// Search runs a case-insensitive substring search over the posts and
// projects visible to the requester.
//
// @Summary      Search posts and projects
// @Tags         search
// @Produce      json
// @Param        q  query     string  true  "Search query"
// @Success      200  {object}  searchResponse
// @Failure      400  {object}  errorResponse
// @Router       /search [get]
func (h *StatsHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	ctx := c.Request().Context()
	actor := optionalActor(c)

	posts, err := h.postService.Search(ctx, actor, query)
	if err != nil {
		return err
	}
	projects, err := h.projectService.Search(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchResponse{
		Query:    query,
		Posts:    toListPostsResponse(posts).Data,
		Projects: toListProjectsResponse(projects).Data,
	})
}

// PublicStats returns non-identifying totals for dashboard display.
//
// @Summary      Public totals
// @Tags         stats
// @Produce      json
// @Success      200  {object}  ports.PublicStats
// @Router       /stats [get]
func (h *StatsHandler) PublicStats(c echo.Context) error {
	stats, err := h.statsService.Public(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// AdminStats returns the detailed breakdown. Admin only.
//
// @Summary      Detailed statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	stats, err := h.statsService.Admin(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
