package sessionctx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/career-launch/backend/internal/middleware"
	"github.com/career-launch/backend/pkg/response"
)

// Handler serves the session-context endpoints. Each request builds a relay
// bound to the calling visitor's storage key.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a session-context handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

func (h *Handler) relay(c *gin.Context) *Relay {
	visitorID := c.GetString(middleware.ContextVisitorID)
	return NewRelay(c.Request.Context(), h.store, "session_context:"+visitorID, h.logger)
}

// SaveRequest is the body for POST /api/sessions/:slug/context.
type SaveRequest struct {
	SessionTitle string `json:"session_title" binding:"required"`
	BoothSlug    string `json:"booth_slug" binding:"required"`
}

// Save handles POST /api/sessions/:slug/context, called when a viewer
// follows a booth's link to one of its sessions.
func (h *Handler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	r := h.relay(c)
	if err := r.SaveContext(c.Request.Context(), c.Param("slug"), req.SessionTitle, req.BoothSlug); err != nil {
		h.logger.Error("save session context failed", zap.Error(err))
		response.Internal(c, "failed to save context")
		return
	}
	response.OK(c, gin.H{"context": r.Context()})
}

// Get handles GET /api/sessions/:slug/context. Only a context saved for the
// session being viewed is returned; anything else reports as absent.
func (h *Handler) Get(c *gin.Context) {
	sc := h.relay(c).UsableContext(c.Param("slug"))
	response.OK(c, gin.H{"context": sc, "usable": sc != nil})
}

// Clear handles DELETE /api/sessions/:slug/context, invoked when the
// contextual back-link is actually followed.
func (h *Handler) Clear(c *gin.Context) {
	if err := h.relay(c).ClearContext(c.Request.Context()); err != nil {
		h.logger.Error("clear session context failed", zap.Error(err))
		response.Internal(c, "failed to clear context")
		return
	}
	response.NoContent(c)
}
