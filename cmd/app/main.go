package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"dinoverse/configs"
	"dinoverse/internal/database"
	delivery "dinoverse/internal/delivery/http"
	"dinoverse/internal/infra"
	"dinoverse/internal/middleware"
	"dinoverse/internal/repository"
	"dinoverse/internal/service"
	"dinoverse/internal/usecase"
	"dinoverse/internal/utils"
	"dinoverse/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	// Initialize logger
	logger.SetGlobalLogger(logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	}))

	// Anchor "today" and "this week" to the configured timezone
	utils.SetLocation(cfg.App.Timezone)

	// Configure JWT signing
	middleware.Configure(cfg.Auth)

	// Initialize context
	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Run startup migrations
	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	productRepo := repository.NewProductRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	featureRepo := repository.NewFeatureRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	habitLogRepo := repository.NewHabitLogRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	reflectionRepo := repository.NewReflectionRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)

	// Initialize services
	journal := usecase.NewJournalService(tradeRepo)
	habitCloser := service.NewHabitCloserService(habitRepo, habitLogRepo)

	// Nightly habit close-out
	scheduler := infra.NewScheduler(habitCloser, utils.GetLocation())
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer scheduler.Stop()

	// Initialize HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Validator = delivery.NewRequestValidator()

	delivery.SetupRoutes(e, &delivery.RouterConfig{
		App:         cfg.App,
		AuthHandler: delivery.NewAuthHandler(userRepo),
		ContentHandler: delivery.NewContentHandler(
			postRepo, portfolioRepo, serviceRepo, productRepo,
			testimonialRepo, partnerRepo, featureRepo,
		),
		FinanceHandler: delivery.NewFinanceHandler(txRepo),
		TradeHandler:   delivery.NewTradeHandler(tradeRepo, journal),
		HabitHandler:   delivery.NewHabitHandler(habitRepo, habitLogRepo, scheduler),
		LifeOSHandler:  delivery.NewLifeOSHandler(goalRepo, ruleRepo, reflectionRepo, quoteRepo),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().
		Str("addr", addr).
		Str("env", cfg.Server.Env).
		Str("timezone", cfg.App.Timezone).
		Msg("starting server")

	// Run server in goroutine
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
