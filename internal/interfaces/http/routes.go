package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerConfig agrupa lo que el router necesita además de los handlers
type ServerConfig struct {
	AllowOrigins string
	Gatherer     prometheus.Gatherer
}

// NewApp arma la aplicación fiber con middlewares y rutas
func NewApp(cfg ServerConfig, chatbot *ChatbotHandler, health *HealthHandler) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))

	app.Get("/health", health.Health)
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	chat := api.Group("/chatbot")
	chat.Post("/chat", chatbot.Chat)
	chat.Get("/quick-replies", chatbot.QuickReplies)
	chat.Get("/faqs", chatbot.ListFaqs)
	chat.Get("/conversation/:id", chatbot.GetConversation)

	return app
}
