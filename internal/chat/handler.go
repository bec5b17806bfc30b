package chat

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/shared/server/respond"
)

// Handler serves the chat advisor endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the chat route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	respond.OK(c, gin.H{"reply": Reply(req.Message)})
}
