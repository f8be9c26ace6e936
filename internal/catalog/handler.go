package catalog

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/career-launch/backend/pkg/response"
)

// Handler serves the catalog list endpoints with filtering.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

// criteriaFromQuery builds filter criteria from query parameters. Multi-value
// criteria are comma-separated (industry=health,tech).
func criteriaFromQuery(c *gin.Context) Criteria {
	crit := DefaultCriteria()
	crit.Industries = splitTrim(c.Query("industry"))
	crit.Pathways = splitTrim(c.Query("pathway"))
	if ps := c.Query("post_secondary"); ps == PostSecondaryTrue || ps == PostSecondaryFalse {
		crit.PostSecondary = ps
	}
	crit.PrizesOnly = c.Query("prizes") == "true"
	crit.Search = c.Query("q")
	return crit
}

func splitTrim(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, ",") {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ListBooths handles GET /api/booths with optional filter query parameters.
func (h *Handler) ListBooths(c *gin.Context) {
	booths, err := h.repo.ListBooths(c.Request.Context())
	if err != nil {
		h.logger.Error("list booths failed", zap.Error(err))
		response.Internal(c, "failed to load booths")
		return
	}
	crit := criteriaFromQuery(c)
	filtered := FilterBooths(booths, crit)
	response.OK(c, gin.H{
		"booths":             filtered,
		"result":             Result{Filtered: len(filtered), Total: len(booths)},
		"has_active_filters": crit.IsActive(),
	})
}

// ListSessions handles GET /api/sessions with optional filter query parameters.
func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.repo.ListSessions(c.Request.Context())
	if err != nil {
		h.logger.Error("list sessions failed", zap.Error(err))
		response.Internal(c, "failed to load sessions")
		return
	}
	crit := criteriaFromQuery(c)
	filtered := FilterSessions(sessions, crit)
	response.OK(c, gin.H{
		"sessions":           filtered,
		"result":             Result{Filtered: len(filtered), Total: len(sessions)},
		"has_active_filters": crit.IsActive(),
	})
}

// SessionsByCategory handles GET /api/sessions/categories, the grouped
// browse view. Grouping happens after any active filters are applied.
func (h *Handler) SessionsByCategory(c *gin.Context) {
	sessions, err := h.repo.ListSessions(c.Request.Context())
	if err != nil {
		h.logger.Error("list sessions failed", zap.Error(err))
		response.Internal(c, "failed to load sessions")
		return
	}
	filtered := FilterSessions(sessions, criteriaFromQuery(c))
	response.OK(c, gin.H{"categories": GroupSessionsByCategory(filtered)})
}
