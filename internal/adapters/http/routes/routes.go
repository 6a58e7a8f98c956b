package routes

import (
	"booklend/internal/adapters/http/handlers"
	"booklend/internal/adapters/http/middleware"
	"booklend/internal/adapters/persistence/repositories"
	"booklend/internal/config"
	"booklend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	catalogService := services.NewCatalogService(bookRepo)
	lendingService := services.NewLendingService(bookRepo, transactionRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	bookHandler := handlers.NewBookHandler(catalogService, lendingService)

	// Health check
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")

	// Public routes
	api.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	api.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	api.Get("/books", bookHandler.ListBooks)

	// Protected routes (bearer token required)
	protected := api.Group("", middleware.AuthMiddleware(userRepo, cfg))
	protected.Post("/books/borrow/:id", bookHandler.Borrow)
	protected.Post("/books/return/:id", bookHandler.Return)
	protected.Get("/history", bookHandler.History)

	// Static frontend; unrecognized routes fall back to the SPA entry
	app.Static("/", "./public")
	app.Use(func(c *fiber.Ctx) error {
		return c.SendFile("./public/index.html")
	})
}
