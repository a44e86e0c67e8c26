package routes

import (
	"time"

	"github.com/campusforum/backend/internal/config"
	"github.com/campusforum/backend/internal/handlers"
	"github.com/campusforum/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
	i18nHandler *handlers.I18nHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health and translations (public)
	api.Get("/health", healthHandler.Check)
	api.Get("/i18n/:locale", i18nHandler.GetLocale)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Reports — user endpoints (protected)
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.CreateReport)
	api.Get("/reports", middleware.JWTProtected(cfg), reportHandler.ListReports)
	api.Get("/reports/:id", middleware.JWTProtected(cfg), reportHandler.GetReport)

	// Notifications (protected)
	notifications := api.Group("/notifications", middleware.JWTProtected(cfg))
	notifications.Get("/", notificationHandler.ListNotifications)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.DeleteNotification)

	// Admin moderation panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/reports/:id/resolve", reportHandler.ResolveReport)
	admin.Post("/reports/:id/dismiss", reportHandler.DismissReport)
	admin.Post("/reports/:id/process", reportHandler.ProcessReport)
	admin.Get("/reports/target/:type/:target_id", reportHandler.TargetReports)
	admin.Get("/reports/:id/details", reportHandler.ReportDetails)

	// Admin user management
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Put("/users/:id/lock", adminHandler.LockUser)
	admin.Put("/users/:id/unlock", adminHandler.UnlockUser)
	admin.Put("/users/:id/role", adminHandler.ChangeRole)
	admin.Get("/audit-logs", adminHandler.ListAuditLogs)

	// Admin translation management
	admin.Put("/i18n/:locale/:key", i18nHandler.SetKey)
	admin.Delete("/i18n/:locale/:key", i18nHandler.DeleteKey)
}
