package resumes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/shared/server/middleware"
	"resume-optimizer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the resumes service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PATCH("/resumes/:id", h.rename)
	rg.DELETE("/resumes/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes+(1<<20))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if _, ok := AllowedContentTypes[strings.TrimSpace(contentType)]; !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrUnsupportedType.Error(), nil)
		return
	}
	if fileHeader.Size <= 0 || fileHeader.Size > MaxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrFileTooLarge.Error(), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	title := c.PostForm("title")

	resume, err := h.Svc.Upload(c.Request.Context(), userID, title, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType), errors.Is(err, ErrFileTooLarge), errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload resume", nil)
		}
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusCreated, toResponse(resume))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	resp := make([]gin.H, 0, len(items))
	for _, resume := range items {
		resp = append(resp, toResponse(resume))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	resume, err := h.Svc.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}
	respond.OK(c, toResponse(resume))
}

type renameRequest struct {
	Title string `json:"title"`
}

func (h *Handler) rename(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Rename(c.Request.Context(), userID, resumeID, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, toResponse(resume))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, resumeID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete resume", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func toResponse(resume Resume) gin.H {
	return gin.H{
		"resumeId":   resume.ID,
		"title":      resume.Title,
		"fileName":   resume.FileName,
		"fileSize":   resume.FileSize,
		"uploadedAt": resume.CreatedAt,
		"updatedAt":  resume.UpdatedAt,
	}
}
