package server

import "github.com/gofiber/fiber/v2"

func (s *Server) routes() {
	s.app.Get("/healthz", s.handleHealth)

	s.app.Post("/transcribe", s.handleTranscribe)
	s.app.All("/transcribe", methodNotAllowed)

	s.app.Post("/summarize", s.handleSummarize)
	s.app.All("/summarize", methodNotAllowed)
}

func methodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).SendString("Method Not Allowed")
}
