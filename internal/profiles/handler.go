package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/shared/server/middleware"
	"resume-optimizer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profiles service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.PUT("/me", h.update)
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	profile, err := h.Svc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Fall back to token claims for accounts created before the
			// profile upsert existed.
			respond.OK(c, gin.H{
				"userId":   userID,
				"email":    middleware.UserEmailFromContext(c),
				"fullName": middleware.UserNameFromContext(c),
			})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		return
	}

	respond.OK(c, profile)
}

type updateRequest struct {
	FullName string `json:"fullName"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.UpdateFullName(c.Request.Context(), userID, req.FullName); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}

	profile, err := h.Svc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		return
	}
	respond.OK(c, profile)
}
