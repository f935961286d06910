package cmd

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/editpilot/config"
	"github.com/blogem/editpilot/controllers"
	"github.com/blogem/editpilot/llm"
	editmiddleware "github.com/blogem/editpilot/middleware"
	"github.com/blogem/editpilot/repositories"
	"github.com/blogem/editpilot/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if errors := cfg.Validate(); len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, ", "))
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize model provider: %w", err)
	}

	// Initialize repositories
	repos := repositories.NewRepositories()

	// Initialize services
	srvs := services.NewServices(repos, provider, logger)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, cfg.ModelTimeout, logger)

	r := setupRouter(ctrl, cfg, logger)

	logger.Info("editpilot starting",
		zap.String("port", cfg.Port),
		zap.String("provider", provider.Name()),
		zap.Duration("model_timeout", cfg.ModelTimeout))

	return http.ListenAndServe(":"+cfg.Port, r)
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(editmiddleware.RequestID)
	r.Use(middleware.Recoverer)
	// Leave room for the model call plus response writing
	r.Use(middleware.Timeout(cfg.ModelTimeout + 10*time.Second))
	r.Use(middleware.Compress(5))
	r.Use(editmiddleware.RequestLogger(logger.Named("http")))

	// Static files
	if cfg.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", ctrl.Health.Index)

	// PROTECTED ROUTES (shared secret required)
	r.Group(func(r chi.Router) {
		r.Use(editmiddleware.RequireSharedSecret(cfg.SharedSecret, logger.Named("auth")))

		r.Route("/api", func(r chi.Router) {
			r.Post("/edit", ctrl.Instruction.Edit)
			r.Post("/kit", ctrl.Instruction.Kit)
			r.Get("/audit", ctrl.Audit.Index)
		})
	})

	return r
}
