package sessions

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/career-launch/backend/internal/catalog"
	"github.com/career-launch/backend/internal/middleware"
	"github.com/career-launch/backend/internal/sessionctx"
	"github.com/career-launch/backend/pkg/response"
	"github.com/career-launch/backend/pkg/storage"
)

// Handler serves session detail and gated video playback.
type Handler struct {
	repo     *catalog.Repository
	grants   *GrantService
	ctxStore sessionctx.Store
	videos   *storage.Videos // nil when S3 is not configured
	logger   *zap.Logger
}

// NewHandler creates a sessions handler. videos may be nil; playback then
// falls back to the session's stored direct URL.
func NewHandler(repo *catalog.Repository, grants *GrantService, ctxStore sessionctx.Store, videos *storage.Videos, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, grants: grants, ctxStore: ctxStore, videos: videos, logger: logger}
}

// GetBySlug handles GET /api/sessions/:slug. The response includes the
// contextual back-link when a usable session context exists for this slug.
func (h *Handler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	session, err := h.repo.GetSessionBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.NotFound(c, "session not found")
			return
		}
		h.logger.Error("get session failed", zap.Error(err), zap.String("slug", slug))
		response.Internal(c, "failed to load session")
		return
	}

	visitorID := c.GetString(middleware.ContextVisitorID)
	relay := sessionctx.NewRelay(c.Request.Context(), h.ctxStore, "session_context:"+visitorID, h.logger)
	back := relay.UsableContext(slug)

	payload := gin.H{"session": session}
	if back != nil {
		payload["back_link"] = gin.H{
			"booth_slug": back.BoothSlug,
			"label":      "Back to booth",
		}
	}
	response.OK(c, payload)
}

// Video handles GET /api/sessions/:slug/video. Access is gated on a grant
// minted by a successful registration; the grant must have been issued for
// this session. Returns a presigned S3 URL when video storage is
// configured, otherwise the stored direct URL.
func (h *Handler) Video(c *gin.Context) {
	slug := c.Param("slug")

	grant := grantFromRequest(c)
	if grant == "" {
		response.Unauthorized(c, "registration required")
		return
	}
	claims, err := h.grants.Verify(grant, slug)
	if err != nil {
		response.Unauthorized(c, "invalid or expired access grant")
		return
	}

	session, err := h.repo.GetSessionBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.NotFound(c, "session not found")
			return
		}
		h.logger.Error("get session failed", zap.Error(err), zap.String("slug", slug))
		response.Internal(c, "failed to load session")
		return
	}

	url := session.VideoURL
	if h.videos != nil && session.VideoKey != "" {
		url, err = h.videos.PresignPlayback(c.Request.Context(), session.VideoKey)
		if err != nil {
			h.logger.Error("presign video failed", zap.Error(err), zap.String("slug", slug))
			response.Internal(c, "failed to prepare video")
			return
		}
	}
	if url == "" {
		response.NotFound(c, "no video available for this session")
		return
	}
	response.OK(c, gin.H{
		"video_url": url,
		"user_type": claims.UserType,
	})
}

// grantFromRequest pulls the access grant from the Authorization header or
// the grant query parameter.
func grantFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return c.Query("grant")
}
