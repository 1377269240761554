package handlers

import (
	"errors"
	"net/http"

	"link-manager-backend/internal/auth"
	"link-manager-backend/internal/logger"
	"link-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LinkHandler handles HTTP requests for links
type LinkHandler struct {
	linkService service.LinkServiceInterface
	log         *logger.Logger
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(linkService service.LinkServiceInterface) *LinkHandler {
	return &LinkHandler{
		linkService: linkService,
		log:         logger.New(),
	}
}

// updateLinkBody wraps the update payload; the top-level "link" field is required
type updateLinkBody struct {
	Link *service.UpdateLinkPayload `json:"link"`
}

// setEnabledBody carries the toggle flag. Enabled stays untyped so a
// non-boolean value can be rejected explicitly instead of failing the bind.
type setEnabledBody struct {
	Enabled interface{} `json:"enabled"`
}

// ListLinks handles GET /links
// @Summary List links
// @Description Returns condensed summaries of all links owned by the authenticated user, in insertion order, plus a lastId cursor for pagination.
// @Tags links
// @Accept json
// @Produce json
// @Success 200 {object} service.LinkListResponse "Condensed link summaries and cursor"
// @Failure 403 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Database error"
// @Security BearerAuth
// @Router /links [get]
func (h *LinkHandler) ListLinks(c *gin.Context) {
	owner, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authenticated."})
		return
	}

	resp, err := h.linkService.ListLinks(owner)
	if err != nil {
		h.log.WithError(err).Error("failed to list links")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error."})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLink handles GET /links/:id
// @Summary Get a link
// @Description Returns the full record for the given id, scoped to the authenticated owner. An absent or foreign id yields a null body.
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID (UUID)"
// @Success 200 {object} service.LinkResponse "Full link record, or null"
// @Failure 400 {object} ErrorResponse "Invalid link ID"
// @Failure 403 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Database error"
// @Security BearerAuth
// @Router /links/{id} [get]
func (h *LinkHandler) GetLink(c *gin.Context) {
	owner, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authenticated."})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link ID"})
		return
	}

	resp, err := h.linkService.GetLink(owner, id)
	if err != nil {
		h.log.WithError(err).Error("failed to get link")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error."})
		return
	}

	// resp is nil for an absent or foreign id; that renders as a null body
	c.JSON(http.StatusOK, resp)
}

// CreateLink handles POST /links
// @Summary Create a placeholder link
// @Description Creates a disabled placeholder link bound to the authenticated owner. Any request body is ignored; the record awaits a later update.
// @Tags links
// @Accept json
// @Produce json
// @Success 201 {object} service.LinkResponse "Created placeholder record"
// @Failure 403 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Database error"
// @Security BearerAuth
// @Router /links [post]
func (h *LinkHandler) CreateLink(c *gin.Context) {
	owner, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authenticated."})
		return
	}

	resp, err := h.linkService.CreateLink(owner)
	if err != nil {
		h.log.WithError(err).Error("failed to create link")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error."})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateLink handles PUT /links/:id
// @Summary Update a link
// @Description Validates the submitted link, computes its payment eligibility, registers webhooks and persists the result. The path id always replaces any id in the payload.
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID (UUID)"
// @Param body body updateLinkBody true "Update payload wrapped in a link field"
// @Success 200 {object} map[string]string "status ok"
// @Failure 400 {array} service.FieldError "Missing link field or validation errors"
// @Failure 403 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Server or database error"
// @Security BearerAuth
// @Router /links/{id} [put]
func (h *LinkHandler) UpdateLink(c *gin.Context) {
	owner, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authenticated."})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link ID"})
		return
	}

	var body updateLinkBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Link == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No link field in json body."})
		return
	}

	if err := h.linkService.UpdateLink(c.Request.Context(), owner, id, body.Link); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, verr.Fields)
		case errors.Is(err, service.ErrEnrichment):
			h.log.WithError(err).Error("link update enrichment failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		default:
			h.log.WithError(err).Error("failed to update link")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetEnabled handles PUT /links/:id/enabled
// @Summary Enable or disable a link
// @Description Persists only the enabled flag, bypassing validation and enrichment. The flag must be strictly boolean.
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID (UUID)"
// @Param body body setEnabledBody true "Toggle payload"
// @Success 200 {object} map[string]string "status ok"
// @Failure 403 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Enabled property missing or database error"
// @Security BearerAuth
// @Router /links/{id}/enabled [put]
func (h *LinkHandler) SetEnabled(c *gin.Context) {
	owner, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authenticated."})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link ID"})
		return
	}

	var body setEnabledBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enabled, isBool := body.Enabled.(bool)
	if !isBool {
		// Non-boolean values share the status class of a store failure
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Enabled property not specified in the body."})
		return
	}

	if err := h.linkService.SetEnabled(owner, id, enabled); err != nil {
		h.log.WithError(err).Error("failed to set link enabled flag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
