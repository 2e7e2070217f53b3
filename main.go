// main.go
package main

import (
	"log"
	"os"
	"time"

	"fairway/database"
	"fairway/handlers"
	"fairway/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	database.InitDB()
	defer database.CloseDB()

	handlers.Init()

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)
	authGroup.Get("/profile", middleware.AuthMiddleware, handlers.GetProfile)

	// League routes
	leagueGroup := api.Group("/leagues")
	leagueGroup.Use(middleware.AuthMiddleware)
	leagueGroup.Post("/", handlers.CreateLeague)
	leagueGroup.Get("/", handlers.GetMyLeagues)
	leagueGroup.Get("/:leagueId/scoreboard", handlers.GetScoreboard)
	leagueGroup.Get("/:leagueId/schedule", handlers.GetSchedule)
	leagueGroup.Get("/:leagueId/current-picks", handlers.GetLeagueCurrentPicks)
	leagueGroup.Get("/:leagueId/upcoming-tournament", handlers.GetUpcomingTournament)
	leagueGroup.Get("/:leagueId/most-recent-tournament", handlers.GetMostRecentTournament)
	leagueGroup.Get("/members/:memberId/history", handlers.GetMemberHistory)

	// Pick routes, with a tighter rate limit on the write path
	pickGroup := api.Group("/picks")
	pickGroup.Use(middleware.AuthMiddleware)
	pickGroup.Post("/", middleware.FiberSubmitRateLimitMiddleware(), handlers.SubmitPick)
	pickGroup.Get("/current/:memberId", handlers.GetCurrentPick)
	pickGroup.Get("/history/:memberId", handlers.GetPickHistory)
	pickGroup.Get("/dropdown/:memberId", handlers.GetDropdown)

	// Tournament routes
	tournamentGroup := api.Group("/tournaments")
	tournamentGroup.Use(middleware.AuthMiddleware)
	tournamentGroup.Get("/:tournamentId/roster", handlers.GetRoster)

	// Commissioner routes
	commishGroup := api.Group("/commish")
	commishGroup.Use(middleware.AuthMiddleware)
	commishGroup.Post("/invite-codes", handlers.CreateInviteCode)
	commishGroup.Post("/invite-codes/redeem", handlers.RedeemInviteCode)
	commishGroup.Get("/leagues/:leagueId/manual-pick-data", handlers.GetManualPickData)
	commishGroup.Post("/manual-picks", handlers.CreateManualPick)

	// Admin routes: the field ingestion job posts snapshots here
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware)
	adminGroup.Post("/field-snapshots", handlers.ApplyFieldSnapshot)

	// Live scoreboard stream
	app.Use("/ws", handlers.WebSocketUpgrade)
	app.Get("/ws/leagues/:leagueId/scoreboard", handlers.LiveScoreboard)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
