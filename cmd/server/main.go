package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"dsadmin/application"
	"dsadmin/domain/contracts"
	"dsadmin/infrastructure/config"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/infrastructure/repositories"
	"dsadmin/interfaces/web/handlers"
	"dsadmin/interfaces/web/presenters"
	"dsadmin/logging"
)

func main() {
	loadEnvironment()
	cfg := config.LoadAppConfigFromEnv()
	logger := initializeLogging(cfg)

	client := dhis2.NewClient(cfg.DHIS2)
	deps, err := buildDependencies(context.Background(), client, cfg)
	if err != nil {
		logger.Error("Failed to resolve instance metadata", "error", err)
		os.Exit(1)
	}

	router := setupRoutes(deps, cfg)
	startServer(router, cfg.HTTPAddr, logger)
}

// ApplicationServices holds application services.
type ApplicationServices struct {
	DataSetService *application.DataSetService
	ProjectService *application.ProjectService
	LogService     *application.LogService
	SharingService *application.SharingService
	UserService    *application.UserService
}

// PresentationLayer groups all presenters and handlers.
type PresentationLayer struct {
	DataSetPresenter *presenters.DataSetPresenter
	ProjectPresenter *presenters.ProjectPresenter
	LogPresenter     *presenters.LogPresenter

	DataSetHandlers *handlers.DataSetHandlers
	ProjectHandlers *handlers.ProjectHandlers
	LogHandlers     *handlers.LogHandlers
	SharingHandlers *handlers.SharingHandlers
	UserHandlers    *handlers.UserHandlers
}

// Dependencies holds all application dependencies organized by layer.
type Dependencies struct {
	Client       dhis2.Client
	Services     *ApplicationServices
	Presentation *PresentationLayer
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	} else {
		println("Loaded configuration from .env file")
	}
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"dhis2_url", cfg.DHIS2.BaseURL,
	)
	return logger
}

// RepositoryBundle holds all repository implementations.
type RepositoryBundle struct {
	DataSetRepo contracts.DataSetRepository
	ProjectRepo contracts.ProjectRepository
	LogRepo     contracts.LogRepository
	SharingRepo contracts.SharingRepository
	UserRepo    contracts.UserRepository
}

// buildRepositories resolves the instance metadata once and creates all
// repository implementations against the remote API.
func buildRepositories(ctx context.Context, client dhis2.Client, cfg *config.AppConfig) (*RepositoryBundle, error) {
	metadataRepo := repositories.NewD2MetadataRepository(client)
	metadata, err := metadataRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &RepositoryBundle{
		DataSetRepo: repositories.NewD2DataSetRepository(client, metadata, cfg.Chunks),
		ProjectRepo: repositories.NewD2ProjectRepository(client, metadata, cfg.Chunks),
		LogRepo:     repositories.NewD2LogRepository(client),
		SharingRepo: repositories.NewD2SharingRepository(client),
		UserRepo:    repositories.NewD2UserRepository(client),
	}, nil
}

// buildApplicationServices creates application services with dependency
// injection.
func buildApplicationServices(repos *RepositoryBundle) *ApplicationServices {
	return &ApplicationServices{
		DataSetService: application.NewDataSetService(repos.DataSetRepo),
		ProjectService: application.NewProjectService(repos.ProjectRepo),
		LogService:     application.NewLogService(repos.DataSetRepo, repos.LogRepo),
		SharingService: application.NewSharingService(repos.SharingRepo),
		UserService:    application.NewUserService(repos.UserRepo),
	}
}

// buildPresentationLayer creates all presenters and handlers.
func buildPresentationLayer(services *ApplicationServices) *PresentationLayer {
	validate := validator.New()

	dataSetPresenter := presenters.NewDataSetPresenter()
	projectPresenter := presenters.NewProjectPresenter(dataSetPresenter)
	logPresenter := presenters.NewLogPresenter()

	return &PresentationLayer{
		DataSetPresenter: dataSetPresenter,
		ProjectPresenter: projectPresenter,
		LogPresenter:     logPresenter,

		DataSetHandlers: handlers.NewDataSetHandlers(services.DataSetService, dataSetPresenter, validate),
		ProjectHandlers: handlers.NewProjectHandlers(services.ProjectService, projectPresenter),
		LogHandlers:     handlers.NewLogHandlers(services.LogService, logPresenter),
		SharingHandlers: handlers.NewSharingHandlers(services.SharingService),
		UserHandlers:    handlers.NewUserHandlers(services.UserService),
	}
}

// buildDependencies creates all application dependencies.
func buildDependencies(ctx context.Context, client dhis2.Client, cfg *config.AppConfig) (*Dependencies, error) {
	repos, err := buildRepositories(ctx, client, cfg)
	if err != nil {
		return nil, err
	}
	services := buildApplicationServices(repos)
	presentation := buildPresentationLayer(services)

	return &Dependencies{
		Client:       client,
		Services:     services,
		Presentation: presentation,
	}, nil
}

func setupRoutes(deps *Dependencies, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	setupHTTPLogging(r, cfg)
	r.Use(middleware.Recoverer)

	setupSystemRoutes(r)
	setupAPIRoutes(r, deps)

	return r
}

func setupHTTPLogging(r *chi.Mux, cfg *config.AppConfig) {
	httpLogger := httplog.NewLogger("dsadmin", httplog.Options{
		JSON:     cfg.Logging.Format == "json",
		LogLevel: logging.ParseLevel(cfg.Logging.Level),
		Concise:  true,
	})
	r.Use(httplog.RequestLogger(httpLogger))
}

func setupSystemRoutes(r *chi.Mux) {
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		handlers.RenderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func setupAPIRoutes(r *chi.Mux, deps *Dependencies) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/datasets", deps.Presentation.DataSetHandlers.List)
		r.Post("/datasets/batch-get", deps.Presentation.DataSetHandlers.BatchGet)
		r.Delete("/datasets", deps.Presentation.DataSetHandlers.Remove)
		r.Put("/datasets/orgunits", deps.Presentation.DataSetHandlers.SaveOrgUnits)
		r.Put("/datasets/sharing", deps.Presentation.DataSetHandlers.SaveSharing)

		r.Get("/projects", deps.Presentation.ProjectHandlers.List)
		r.Get("/logs", deps.Presentation.LogHandlers.List)
		r.Get("/sharing/search", deps.Presentation.SharingHandlers.Search)
		r.Get("/me", deps.Presentation.UserHandlers.Me)
	})
}

func startServer(router *chi.Mux, addr string, logger *logging.Logger) {
	server := &http.Server{Addr: addr, Handler: router}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				logger.Error("Graceful shutdown timed out, forcing exit")
				os.Exit(1)
			}
		}()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
			os.Exit(1)
		}
		serverStopCtx()
	}()

	logger.Info("Server starting", "address", addr)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-serverCtx.Done()
	logger.Info("Server stopped")
}
