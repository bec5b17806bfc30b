package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resume-optimizer/internal/auth"
	"resume-optimizer/internal/chat"
	"resume-optimizer/internal/jobs"
	"resume-optimizer/internal/llm"
	openai "resume-optimizer/internal/llm/openai"
	"resume-optimizer/internal/profiles"
	"resume-optimizer/internal/reports"
	"resume-optimizer/internal/resumes"
	sharedauth "resume-optimizer/internal/shared/auth"
	"resume-optimizer/internal/shared/config"
	"resume-optimizer/internal/shared/server"
	"resume-optimizer/internal/shared/storage/db"
	"resume-optimizer/internal/shared/storage/object"
	localstore "resume-optimizer/internal/shared/storage/object/local"
	s3store "resume-optimizer/internal/shared/storage/object/s3"
)

// App holds shared dependencies built from configuration.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Signer *sharedauth.Signer

	ProfilesRepo profiles.Repo
	ResumesRepo  resumes.Repo
	JobsRepo     jobs.Repo
	ReportsRepo  reports.Repo

	ProfilesService *profiles.Service
	ResumesService  *resumes.Service
	JobsService     *jobs.Service
	ReportsService  *reports.Service

	ResumesHandler *resumes.Handler
	JobsHandler    *jobs.Handler
	ReportsHandler *reports.Handler
	ChatHandler    *chat.Handler
	ProfileHandler *profiles.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Signer: sharedauth.NewSigner(cfg.JWTSecret),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		Signer:         app.Signer,
		GoogleAuth:     app.GoogleAuth,
		ResumesHandler: app.ResumesHandler,
		JobsHandler:    app.JobsHandler,
		ReportsHandler: app.ReportsHandler,
		ChatHandler:    app.ChatHandler,
		ProfileHandler: app.ProfileHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var (
		profilesRepo profiles.Repo
		resumesRepo  resumes.Repo
		jobsRepo     jobs.Repo
		reportsRepo  reports.Repo
		memReports   *reports.MemoryRepo
	)

	if app.DB != nil {
		profilesRepo = &profiles.PGRepo{DB: app.DB}
		resumesRepo = &resumes.PGRepo{DB: app.DB}
		jobsRepo = &jobs.PGRepo{DB: app.DB}
		reportsRepo = &reports.PGRepo{DB: app.DB}
	} else {
		profilesRepo = profiles.NewMemoryRepo()
		resumesRepo = resumes.NewMemoryRepo()
		jobsRepo = jobs.NewMemoryRepo()
		memReports = reports.NewMemoryRepo()
		reportsRepo = memReports
	}

	profileSvc := profiles.NewService(profilesRepo)

	resumeSvc := &resumes.Service{Store: app.Store, Repo: resumesRepo}
	jobSvc := &jobs.Service{Repo: jobsRepo}
	if memReports != nil {
		// Postgres cascades via FK constraints; memory mode purges by hand.
		resumeSvc.Purger = memReports
		jobSvc.Purger = memReports
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if strings.TrimSpace(app.Config.OpenAIAPIKey) != "" {
		openaiClient, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	reportSvc := &reports.Service{
		Resumes: resumeSvc,
		Jobs:    jobSvc,
		LLM:     llmClient,
		Repo:    reportsRepo,
	}

	app.ProfilesRepo = profilesRepo
	app.ResumesRepo = resumesRepo
	app.JobsRepo = jobsRepo
	app.ReportsRepo = reportsRepo
	app.ProfilesService = profileSvc
	app.ResumesService = resumeSvc
	app.JobsService = jobSvc
	app.ReportsService = reportSvc

	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.JobsHandler = jobs.NewHandler(jobSvc)
	app.ReportsHandler = reports.NewHandler(reportSvc, app.Signer)
	app.ChatHandler = chat.NewHandler()
	app.ProfileHandler = profiles.NewHandler(profileSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.Signer,
		profileSvc,
	)

	return nil
}
