package registration

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/career-launch/backend/internal/catalog"
	"github.com/career-launch/backend/internal/middleware"
	"github.com/career-launch/backend/internal/models"
	"github.com/career-launch/backend/internal/sessions"
	"github.com/career-launch/backend/pkg/response"
)

// RegisterRequest is the body for POST /api/sessions/:slug/register.
// Fields is keyed by form field name (firstName, email, boardId, schoolId,
// classSize, gradeLevel); missing keys are simply not entered.
type RegisterRequest struct {
	UserType string            `json:"user_type" binding:"required,oneof=educator student"`
	Fields   map[string]string `json:"fields" binding:"required"`
}

// Handler drives the registration flow over HTTP. Each request gets its own
// Form instance seeded from the request's cookies, so no state is shared
// across viewers.
type Handler struct {
	repo        *Repository
	catalogRepo *catalog.Repository
	sink        Sink
	grants      *sessions.GrantService
	logger      *zap.Logger
}

// NewHandler creates a registration handler. repo may be nil in local
// development (no board lookups, sink decides persistence).
func NewHandler(repo *Repository, catalogRepo *catalog.Repository, sink Sink, grants *sessions.GrantService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, catalogRepo: catalogRepo, sink: sink, grants: grants, logger: logger}
}

// form builds the per-request state machine over the request's cookies and
// applies the submitted fields in fixed order.
func (h *Handler) form(c *gin.Context, req RegisterRequest) *Form {
	f := NewForm(NewCookieStore(c), h.sink, h.logger)
	f.SetUserType(models.UserType(req.UserType))
	for _, name := range FieldOrder {
		if v, ok := req.Fields[name]; ok {
			f.UpdateField(name, v)
		}
	}
	return f
}

// Register handles POST /api/sessions/:slug/register. On validated success
// it answers with a video access grant for the session.
func (h *Handler) Register(c *gin.Context) {
	slug := c.Param("slug")
	session, err := h.catalogRepo.GetSessionBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.NotFound(c, "session not found")
			return
		}
		h.logger.Error("get session failed", zap.Error(err), zap.String("slug", slug))
		response.Internal(c, "failed to load session")
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	f := h.form(c, req)
	if !f.SubmitForm(c.Request.Context(), session.Slug) {
		response.Invalid(c, f.Errors())
		return
	}

	visitorID := c.GetString(middleware.ContextVisitorID)
	grant, err := h.grants.Issue(visitorID, session.Slug, req.UserType)
	if err != nil {
		h.logger.Error("issue access grant failed", zap.Error(err), zap.String("slug", slug))
		response.Internal(c, "failed to grant video access")
		return
	}

	response.OK(c, gin.H{
		"registered":     true,
		"returning_user": f.IsReturningUser(),
		"access_grant":   grant,
		"expires_in":     int(h.grants.TTL().Seconds()),
	})
}

// ValidateRequest is the body for POST /api/register/validate.
type ValidateRequest struct {
	UserType string            `json:"user_type" binding:"required,oneof=educator student"`
	Fields   map[string]string `json:"fields" binding:"required"`
}

// Validate handles POST /api/register/validate: a validation pass with no
// side effects, for stepwise error display in the form UI.
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	f := h.form(c, RegisterRequest(req))
	valid := f.ValidateForm()
	response.OK(c, gin.H{"valid": valid, "errors": f.Errors()})
}

// Prefill handles GET /api/register/prefill, returning a returning
// educator's persisted answers so the modal opens pre-populated.
func (h *Handler) Prefill(c *gin.Context) {
	f := NewForm(NewCookieStore(c), nil, h.logger)
	response.OK(c, gin.H{
		"returning_user": f.IsReturningUser(),
		"form_data":      f.Data(),
	})
}

// ListBoards handles GET /api/boards.
func (h *Handler) ListBoards(c *gin.Context) {
	boards, err := h.repo.ListBoards(c.Request.Context())
	if err != nil {
		h.logger.Error("list boards failed", zap.Error(err))
		response.Internal(c, "failed to load boards")
		return
	}
	response.OK(c, gin.H{"boards": boards})
}

// ListSchools handles GET /api/boards/:id/schools.
func (h *Handler) ListSchools(c *gin.Context) {
	schools, err := h.repo.ListSchoolsByBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("list schools failed", zap.Error(err), zap.String("board_id", c.Param("id")))
		response.Internal(c, "failed to load schools")
		return
	}
	response.OK(c, gin.H{"schools": schools})
}
