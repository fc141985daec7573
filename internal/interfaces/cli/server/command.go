// Package server is the CLI command that wires and runs the HTTP server.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	accountApp "github.com/greenflow-inc/greenflow/internal/application/account"
	adminApp "github.com/greenflow-inc/greenflow/internal/application/admin"
	catalogApp "github.com/greenflow-inc/greenflow/internal/application/catalog"
	chatApp "github.com/greenflow-inc/greenflow/internal/application/chat"
	consultationApp "github.com/greenflow-inc/greenflow/internal/application/consultation"
	gardenApp "github.com/greenflow-inc/greenflow/internal/application/garden"
	accountDomain "github.com/greenflow-inc/greenflow/internal/domain/account"
	"github.com/greenflow-inc/greenflow/internal/domain/advisor"
	"github.com/greenflow-inc/greenflow/internal/domain/catalog"
	chatDomain "github.com/greenflow-inc/greenflow/internal/domain/chat"
	consultationDomain "github.com/greenflow-inc/greenflow/internal/domain/consultation"
	gardenDomain "github.com/greenflow-inc/greenflow/internal/domain/garden"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/auth"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/config"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/database"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/notification"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/repository"
	httpRouter "github.com/greenflow-inc/greenflow/internal/interfaces/http"
	"github.com/greenflow-inc/greenflow/internal/interfaces/http/handlers"
	"github.com/greenflow-inc/greenflow/internal/interfaces/http/middleware"
	"github.com/greenflow-inc/greenflow/internal/shared/clock"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/services/markdown"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the GreenFlow HTTP server with the configured storage backend.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "storage", cfg.Storage.Driver)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	repos, db, err := buildRepositories(cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() {
			if err := database.Close(db); err != nil {
				log.Errorw("failed to close database", "error", err)
			}
		}()
	}

	clk := clock.System()
	store := catalog.DefaultStore()
	responder := advisor.DefaultResponder()
	md := markdown.NewService()
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpMinute, clk)

	var notifier consultationApp.Notifier
	if cfg.Email.Enabled() {
		notifier = notification.NewSMTPNotifier(cfg.Email, log)
	} else {
		notifier = notification.NewNoopNotifier(log)
	}

	accountService := accountApp.NewService(repos.accounts, hasher, store, clk, cfg.Subscription, log)
	catalogService := catalogApp.NewService(store, md, log)
	gardenService := gardenApp.NewService(repos.gardens, repos.accounts, store, clk, log)
	chatService := chatApp.NewService(responder, repos.chatHistory, md, clk, log)
	consultationService := consultationApp.NewService(repos.ledger, notifier, md, clk, log)
	adminService := adminApp.NewService(repos.accounts, repos.ledger, clk, log)

	authMW := middleware.NewAuthMiddleware(jwtService, log)
	router := httpRouter.NewRouter(&cfg.Server, httpRouter.Handlers{
		Auth:         handlers.NewAuthHandler(accountService, jwtService, log),
		Catalog:      handlers.NewCatalogHandler(catalogService, log),
		Garden:       handlers.NewGardenHandler(gardenService, log),
		Chat:         handlers.NewChatHandler(chatService, log),
		Consultation: handlers.NewConsultationHandler(consultationService, log),
		Subscription: handlers.NewSubscriptionHandler(accountService, log),
		Admin:        handlers.NewAdminHandler(adminService, log),
	}, authMW, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}

type repositories struct {
	accounts    accountDomain.Repository
	gardens     gardenDomain.Repository
	ledger      consultationDomain.Ledger
	chatHistory chatDomain.HistoryRepository
}

// buildRepositories picks the storage backend named in the config. The
// returned *gorm.DB is nil for the memory backend.
func buildRepositories(cfg *config.Config, log logger.Interface) (*repositories, *gorm.DB, error) {
	if cfg.Storage.Driver == "memory" {
		return &repositories{
			accounts:    repository.NewMemoryAccountRepository(),
			gardens:     repository.NewMemoryGardenRepository(),
			ledger:      repository.NewMemoryConsultationLedger(),
			chatHistory: repository.NewMemoryChatHistoryRepository(),
		}, nil, nil
	}

	db, err := database.Open(&cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &repositories{
		accounts:    repository.NewGormAccountRepository(db, log),
		gardens:     repository.NewGormGardenRepository(db, log),
		ledger:      repository.NewGormConsultationLedger(db, log),
		chatHistory: repository.NewGormChatHistoryRepository(db, log),
	}, db, nil
}
