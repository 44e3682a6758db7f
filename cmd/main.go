package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"

	"github.com/imehub/maritime-assistant-web/internal/engine"
	"github.com/imehub/maritime-assistant-web/internal/handlers"
	"github.com/imehub/maritime-assistant-web/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	port := getEnv("PORT", "3000")
	userID := getEnv("USER_ID", "web-client")

	// Empty BACKEND_URL means the in-process engine answers the chat
	// contract, which keeps the app usable without the remote service.
	var backend services.ChatBackend
	if backendURL := os.Getenv("BACKEND_URL"); backendURL != "" {
		log.Printf("Using remote maritime AI backend at %s", backendURL)
		backend = services.NewHTTPBackend(backendURL)
	} else {
		log.Println("Using built-in chat engine")
		backend = engine.New()
	}

	sessions := services.NewSessionService(backend, userID)
	documents := services.NewDocumentService()

	alerts := services.NewAlertFeed()
	alerts.StartRotation()
	defer alerts.StopRotation()

	features := services.NewFeatureCarousel()
	features.StartRotation()
	defer features.StopRotation()

	h := handlers.NewHandler(sessions, documents, alerts, features)
	ws := handlers.NewWebSocketHandler(sessions)

	viewEngine := html.New("./static", ".html")
	app := fiber.New(fiber.Config{
		Views: viewEngine,
	})
	app.Use(logger.New())

	app.Get("/", h.LandingPage)
	app.Get("/dashboard", h.DashboardPage)
	app.Get("/api/feature", h.Feature)

	app.Post("/api/session/message", h.SendMessage)
	app.Post("/api/session/agent", h.SelectAgent)
	app.Post("/api/session/clear", h.ClearSession)
	app.Get("/api/session/transcript", h.Transcript)
	app.Post("/api/session/documents", h.UploadDocuments)
	app.Get("/api/session/progress", h.UploadProgress)

	app.Get("/api/alerts", h.AlertFeed)
	app.Post("/api/alerts/focus", h.AlertFocus)
	app.Post("/api/alerts/:id/dismiss", h.AlertDismiss)

	app.Get("/ws/:session", ws.WebSocketMiddleware, websocket.New(ws.HandleWebSocket))

	log.Printf("🚢 Maritime assistant listening on :%s", port)
	log.Fatal(app.Listen(":" + port))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
