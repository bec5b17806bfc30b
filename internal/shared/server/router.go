package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "resume-optimizer/internal/auth"
	"resume-optimizer/internal/chat"
	"resume-optimizer/internal/jobs"
	"resume-optimizer/internal/profiles"
	"resume-optimizer/internal/reports"
	"resume-optimizer/internal/resumes"
	"resume-optimizer/internal/shared/auth"
	"resume-optimizer/internal/shared/config"
	"resume-optimizer/internal/shared/metrics"
	"resume-optimizer/internal/shared/server/middleware"
	"resume-optimizer/internal/shared/server/respond"
)

// RouterDeps collects the handlers wired into the engine.
type RouterDeps struct {
	Config         config.Config
	Signer         *auth.Signer
	GoogleAuth     *googleauth.GoogleService
	ResumesHandler *resumes.Handler
	JobsHandler    *jobs.Handler
	ReportsHandler *reports.Handler
	ChatHandler    *chat.Handler
	ProfileHandler *profiles.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// The analyze endpoint sits outside the authenticated group: it verifies the
// bearer credential itself and answers with its own envelope.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ReportsHandler != nil {
		deps.ReportsHandler.RegisterAnalyze(api)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Signer))
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(protected)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(protected)
	}
	if deps.ReportsHandler != nil {
		deps.ReportsHandler.RegisterRoutes(protected)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(protected)
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(protected)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
