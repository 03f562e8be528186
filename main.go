package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"mindwork/internal/api"
	"mindwork/internal/config"
	"mindwork/internal/database"
	"mindwork/internal/logger"
	"mindwork/internal/middleware"
	"mindwork/internal/model"
	"mindwork/internal/repository"
	"mindwork/internal/service"
	"mindwork/internal/validator"
	"mindwork/migrations"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg)

	ctx := context.Background()

	// Connect to the database
	db := database.NewDatabase()
	if err := db.Connect(ctx, cfg.Database); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run pending database migrations
	if err := migrations.Up(database.ConnString(cfg.Database)); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize repository and services
	repo := repository.NewPostgresRepository(&db)
	authService := service.NewAuthService(repo, cfg.Auth)
	validationService := service.NewValidationService(repo)

	// Seed the default organization and admin account
	bootstrap := service.NewBootstrapService(repo)
	if err := bootstrap.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	handler := api.NewHandler(repo, authService, validationService, validator.New())

	// Set up Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	// Rate limiting for the credential endpoint
	loginLimiter := limiter.New(limiter.Config{
		Max:        5,                // 5 attempts
		Expiration: 15 * time.Minute, // per 15 minutes
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() // Limit by IP address
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many login attempts. Please try again later.",
			})
		},
	})

	requireAuth := middleware.RequireAuth(authService)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)

	v1 := app.Group("/api/v1")

	v1.Get("/health", handler.Health)
	v1.Post("/auth/login", loginLimiter, handler.Login)

	// Organization routes
	v1.Get("/organizations", requireAuth, handler.ListOrganizations)
	v1.Get("/organizations/:id", requireAuth, handler.GetOrganization)
	v1.Post("/organizations", requireAuth, requireAdmin, handler.CreateOrganization)
	v1.Put("/organizations/:id", requireAuth, requireAdmin, handler.UpdateOrganization)
	v1.Delete("/organizations/:id", requireAuth, requireAdmin, handler.DeleteOrganization)

	// User routes. Creating a user is public sign-up.
	v1.Get("/users", requireAuth, handler.ListUsers)
	v1.Get("/users/by-organization/:organizationId", requireAuth, handler.ListUsersByOrganization)
	v1.Get("/users/:id", requireAuth, handler.GetUser)
	v1.Post("/users", handler.CreateUser)
	v1.Put("/users/:id", requireAuth, handler.UpdateUser)
	v1.Delete("/users/:id", requireAuth, handler.DeleteUser)

	// Mood entry routes, append-only. Filtered lists register before
	// the :id route so fiber does not swallow them.
	v1.Get("/mood-entries", requireAuth, handler.ListMoodEntries)
	v1.Get("/mood-entries/by-user/:userId", requireAuth, handler.ListMoodEntriesByUser)
	v1.Get("/mood-entries/by-organization/:organizationId", requireAuth, handler.ListMoodEntriesByOrganization)
	v1.Get("/mood-entries/:id", requireAuth, handler.GetMoodEntry)
	v1.Post("/mood-entries", requireAuth, handler.CreateMoodEntry)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	appLogger.Info("Starting server", "addr", addr)
	log.Panic(app.Listen(addr))
}
