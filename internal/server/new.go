package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/nguyentantai21042004/ai-transcriber/internal/config"
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
	"github.com/nguyentantai21042004/ai-transcriber/internal/summarizer"
	"github.com/nguyentantai21042004/ai-transcriber/internal/transcription"
)

// Server exposes the transcription and summary proxies over HTTP.
type Server struct {
	app         *fiber.App
	addr        string
	transcriber transcription.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New builds the fiber app and registers all routes.
func New(cfg config.ServerConfig, tr transcription.Transcriber, sum summarizer.Summarizer, log logger.Logger) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.BodyLimitMB * 1024 * 1024,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	s := &Server{
		app:         app,
		addr:        cfg.Addr,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
	}
	s.routes()

	return s
}

// App returns the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
