package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell-studio/backoffice/internal/api/handler"
	"github.com/inkwell-studio/backoffice/internal/api/middleware"
	"github.com/inkwell-studio/backoffice/internal/core/service"
	"github.com/inkwell-studio/backoffice/internal/infrastructure/config"
	mongodb "github.com/inkwell-studio/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell-studio/backoffice/internal/infrastructure/db/redis"
	"github.com/inkwell-studio/backoffice/internal/infrastructure/http/handlers"
	"github.com/inkwell-studio/backoffice/internal/infrastructure/mail"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	cardRepo := mongodb.NewCardRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	mailFrom := cfg.SMTP.From
	if mailFrom == "" {
		mailFrom = cfg.SMTP.Username
	}
	mailTo := cfg.SMTP.ContactTo
	if mailTo == "" {
		mailTo = cfg.SMTP.Username
	}
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     mailFrom,
		To:       mailTo,
	})

	authService := service.NewAuthService(userRepo, sessionStore, log)
	cardService := service.NewCardService(cardRepo, log)
	postService := service.NewPostService(postRepo, log)
	userService := service.NewUserService(userRepo, log)
	contactService := service.NewContactService(mailer, log)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	cardHandler := handler.NewCardHandler(cardService)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))
	e.Use(middleware.Session(authService))

	requireLogin := middleware.RequireLogin()
	requireAdmin := middleware.RequireAdmin()

	// --- Auth & accounts ---
	e.POST("/admin/login", authHandler.Login)
	e.POST("/admin/logout", authHandler.Logout)
	e.GET("/users/me", authHandler.Me, requireLogin)
	e.POST("/users/register", authHandler.Register)

	// --- Task board ---
	kanban := e.Group("/api/kanban", requireLogin)
	kanban.GET("", cardHandler.List)
	kanban.POST("", cardHandler.Create)
	kanban.PUT("/:id", cardHandler.Update)
	kanban.PATCH("/:id/status", cardHandler.PatchStatus)
	// static /completed wins over /:id in echo's routing
	kanban.DELETE("/completed", cardHandler.ClearCompleted, requireAdmin)
	kanban.DELETE("/:id", cardHandler.Delete, requireAdmin)

	// --- Posts (public read, admin write) ---
	e.GET("/api/posts", postHandler.List)
	e.GET("/api/posts/:id", postHandler.Get)
	e.POST("/api/posts", postHandler.Create, requireAdmin)
	e.PUT("/api/posts/:id", postHandler.Update, requireAdmin)
	e.DELETE("/api/posts/:id", postHandler.Delete, requireAdmin)

	// --- Users (admin only) ---
	e.GET("/api/users", userHandler.List, requireAdmin)
	e.DELETE("/api/users/:id", userHandler.Delete, requireAdmin)

	// --- Contact ---
	e.POST("/api/contact", contactHandler.Send)

	// --- Observability & docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
