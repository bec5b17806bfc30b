package reports

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/shared/auth"
	"resume-optimizer/internal/shared/server/middleware"
	"resume-optimizer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the reports service. The analyze endpoint
// lives outside the authenticated group and verifies the bearer credential
// itself, answering with the {success, ...} envelope on every path.
type Handler struct {
	Svc    *Service
	Signer *auth.Signer
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, signer *auth.Signer) *Handler {
	return &Handler{Svc: svc, Signer: signer}
}

// RegisterAnalyze attaches the orchestration endpoint to an unauthenticated
// group.
func (h *Handler) RegisterAnalyze(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

// RegisterRoutes attaches the report read routes to the authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports", h.list)
	rg.GET("/reports/:id", h.get)
	rg.DELETE("/reports/:id", h.remove)
}

type analyzeRequest struct {
	ResumeID         string `json:"resumeId"`
	JobDescriptionID string `json:"jobDescriptionId"`
}

func (h *Handler) analyze(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		analyzeError(c, http.StatusUnauthorized, "missing or invalid authorization header")
		return
	}
	claims, err := h.Signer.VerifyAccess(token)
	if err != nil {
		analyzeError(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		analyzeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ResumeID == "" || req.JobDescriptionID == "" {
		analyzeError(c, http.StatusBadRequest, "resumeId and jobDescriptionId are required")
		return
	}

	report, err := h.Svc.Analyze(c.Request.Context(), claims.Subject, req.ResumeID, req.JobDescriptionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrResumeNotFound):
			analyzeError(c, http.StatusNotFound, "resume not found")
		case errors.Is(err, ErrJobNotFound):
			analyzeError(c, http.StatusNotFound, "job description not found")
		case errors.Is(err, ErrInvalidInput):
			analyzeError(c, http.StatusBadRequest, "invalid request")
		default:
			analyzeError(c, http.StatusInternalServerError, "analysis failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": toResponse(report),
	})
}

func analyzeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
	})
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
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reports", nil)
		return
	}

	resp := make([]gin.H, 0, len(items))
	for _, report := range items {
		resp = append(resp, toResponse(report))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	reportID := c.Param("id")

	report, err := h.Svc.Get(c.Request.Context(), userID, reportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch report", nil)
		}
		return
	}
	respond.OK(c, toResponse(report))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	reportID := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, reportID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete report", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func toResponse(report AnalysisReport) gin.H {
	return gin.H{
		"reportId":                report.ID,
		"resumeId":                report.ResumeID,
		"jobDescriptionId":        report.JobDescriptionID,
		"relevance_score":         report.Analysis.RelevanceScore,
		"missing_skills":          report.Analysis.MissingSkills,
		"strengths":               report.Analysis.Strengths,
		"weaknesses":              report.Analysis.Weaknesses,
		"improvement_suggestions": report.Analysis.ImprovementSuggestions,
		"ai_summary":              report.Analysis.AISummary,
		"interview_questions":     report.Analysis.InterviewQuestions,
		"createdAt":               report.CreatedAt,
	}
}
