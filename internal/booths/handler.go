package booths

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/career-launch/backend/internal/catalog"
	"github.com/career-launch/backend/pkg/response"
)

// Handler serves booth detail and layout endpoints.
type Handler struct {
	repo   *catalog.Repository
	logger *zap.Logger
}

// NewHandler creates a booths handler.
func NewHandler(repo *catalog.Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

// GetBySlug handles GET /api/booths/:slug. The response carries the booth
// record plus everything the booth page needs to lay itself out: the section
// list, column spans, the wrapped display title and the booth's sessions.
func (h *Handler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	booth, err := h.repo.GetBoothBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.NotFound(c, "booth not found")
			return
		}
		h.logger.Error("get booth failed", zap.Error(err), zap.String("slug", slug))
		response.Internal(c, "failed to load booth")
		return
	}

	sessions, err := h.repo.ListSessionsByBooth(c.Request.Context(), slug)
	if err != nil {
		h.logger.Error("list booth sessions failed", zap.Error(err), zap.String("slug", slug))
		response.Internal(c, "failed to load booth")
		return
	}

	lines := WrapTitle(booth.Name)
	response.OK(c, gin.H{
		"booth":       booth,
		"sections":    SectionsFor(*booth),
		"spans":       SpansFor(*booth),
		"title_lines": lines[:],
		"sessions":    sessions,
	})
}

// GetLayout handles GET /api/booths/:slug/layout, the layout decision alone.
func (h *Handler) GetLayout(c *gin.Context) {
	slug := c.Param("slug")
	booth, err := h.repo.GetBoothBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.NotFound(c, "booth not found")
			return
		}
		h.logger.Error("get booth failed", zap.Error(err), zap.String("slug", slug))
		response.Internal(c, "failed to load booth")
		return
	}
	lines := WrapTitle(booth.Name)
	response.OK(c, gin.H{
		"tier":        booth.Tier,
		"sections":    SectionsFor(*booth),
		"spans":       SpansFor(*booth),
		"title_lines": lines[:],
	})
}
