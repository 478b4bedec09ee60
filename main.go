package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/greenmarket/admin-server/src/config"
	"github.com/greenmarket/admin-server/src/database"
	"github.com/greenmarket/admin-server/src/handlers"
	"github.com/greenmarket/admin-server/src/logging"
	"github.com/greenmarket/admin-server/src/middleware"
	"github.com/greenmarket/admin-server/src/repositories/postgres"
	"github.com/greenmarket/admin-server/src/services"
	"github.com/greenmarket/admin-server/src/validation"
)

func main() {
	cfg := config.Load()

	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Connect-or-exit: the process is useless without its store
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	tokens, err := middleware.NewTokenManager(cfg.AdminSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token manager")
	}

	adminRepo := postgres.NewAdminRepository(db.GetPool())
	categoryRepo := postgres.NewCategoryRepository(db.GetPool())
	productRepo := postgres.NewProductRepository(db.GetPool())

	adminService := services.NewAdminService(adminRepo)
	categoryService := services.NewCategoryService(categoryRepo, adminRepo)
	productService := services.NewProductService(productRepo, adminRepo)

	// Auto-seed the owner account on first run (if ADMIN_USERNAME and
	// ADMIN_PASSWORD are set). Owner-gated routes are unreachable without it.
	seedOwner(adminService, cfg)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	setupRoutes(router, db, tokens, adminService, categoryService, productService, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(router *gin.Engine, db *database.Database, tokens *middleware.TokenManager,
	adminService *services.AdminService, categoryService *services.CategoryService,
	productService *services.ProductService, cfg *config.Config) {

	healthHandler := handlers.NewHealthHandler(db)
	adminHandler := handlers.NewAdminHandler(adminService, tokens)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)

	auth := middleware.Auth(tokens)
	owner := middleware.RequireOwner()
	signInLimit := middleware.NewIPRateLimitingMiddleware(middleware.RateLimitConfig{
		RequestsPerMinute: cfg.SignInRatePerMinute,
		Burst:             cfg.SignInRateBurst,
	})

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)
	router.GET("/info", healthHandler.HandleInfo)

	// Admin routes
	router.GET("/admins", auth, owner, adminHandler.HandleList)
	router.GET("/admins/profile", auth, adminHandler.HandleProfile)
	router.GET("/admins/:id", auth, owner, adminHandler.HandleGetOne)
	router.POST("/admins/sign-up", auth, owner, adminHandler.HandleSignUp)
	router.POST("/admins/sign-in", signInLimit, adminHandler.HandleSignIn)
	router.PATCH("/admins/:id", auth, owner, adminHandler.HandleUpdate)
	router.DELETE("/admins/:id", auth, owner, adminHandler.HandleDelete)

	// Category routes
	router.GET("/category", auth, categoryHandler.HandleList)
	router.POST("/category", auth, categoryHandler.HandleCreate)
	router.PATCH("/category/:id", auth, categoryHandler.HandleUpdate)
	router.DELETE("/category/:id", auth, categoryHandler.HandleDelete)

	// Product routes
	router.GET("/products", auth, productHandler.HandleList)
	router.POST("/products", auth, productHandler.HandleCreate)
	router.PATCH("/products/:id", auth, productHandler.HandleUpdate)
	router.DELETE("/products/:id", auth, productHandler.HandleDelete)
}

// seedOwner creates the initial superadmin when the store holds no admins yet
func seedOwner(adminService *services.AdminService, cfg *config.Config) {
	if cfg.SeedUsername == "" || cfg.SeedPassword == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := adminService.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for existing admins")
		return
	}
	if len(existing) > 0 {
		return
	}

	email := cfg.SeedEmail
	if email == "" {
		email = cfg.SeedUsername + "@localhost"
	}

	req := validation.AdminSignUp{
		Username: cfg.SeedUsername,
		Fname:    cfg.SeedFirstName,
		Lname:    cfg.SeedLastName,
		Email:    email,
		Password: cfg.SeedPassword,
		Role:     "superadmin",
	}
	if err := validation.Struct(req); err != nil {
		log.Error().Err(err).Msg("invalid seed admin configuration")
		return
	}

	if _, err := adminService.SignUp(ctx, req); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error().Err(err).Msg("failed to create initial owner account")
		return
	}

	log.Info().Str("username", cfg.SeedUsername).Msg("initial owner account created")
}
