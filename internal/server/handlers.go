package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
	"github.com/nguyentantai21042004/ai-transcriber/internal/summarizer"
	"github.com/nguyentantai21042004/ai-transcriber/internal/transcription"
)

const (
	msgMissingParameters = "Missing required parameters."
	msgInvalidBody       = "Invalid request body."
	msgTranscribeFailed  = "Failed to process transcription."
	msgSummarizeFailed   = "Failed to generate summary."
)

type summaryResponse struct {
	Summary string `json:"summary"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) handleTranscribe(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	var req transcription.Request
	if err := decodeBody(c, &req); err != nil {
		s.logger.Warn(ctx, "Rejected transcribe body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString(msgInvalidBody)
	}

	transcript, err := s.transcriber.Transcribe(ctx, req)
	if err != nil {
		return s.fail(ctx, c, err, msgTranscribeFailed)
	}

	return c.JSON(transcript)
}

func (s *Server) handleSummarize(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	var req summarizer.Request
	if err := decodeBody(c, &req); err != nil {
		s.logger.Warn(ctx, "Rejected summarize body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString(msgInvalidBody)
	}

	summary, err := s.summarizer.Summarize(ctx, req)
	if err != nil {
		return s.fail(ctx, c, err, msgSummarizeFailed)
	}

	return c.JSON(summaryResponse{Summary: summary})
}

// decodeBody reads the body as JSON whatever Content-Type the caller sent.
func decodeBody(c *fiber.Ctx, v interface{}) error {
	return c.App().Config().JSONDecoder(c.Body(), v)
}

// fail maps validation errors to 400 with a plain-text reason and everything
// else (configuration, upstream) to 500 with {error, details}.
func (s *Server) fail(ctx context.Context, c *fiber.Ctx, err error, msg string) error {
	if models.IsValidationError(err) {
		s.logger.Warn(ctx, "Rejected request: %v", err)
		reason := msgInvalidBody
		if errors.Is(err, models.ErrMissingParameters) {
			reason = msgMissingParameters
		}
		return c.Status(fiber.StatusBadRequest).SendString(reason)
	}

	s.logger.Error(ctx, "%s %v", msg, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   msg,
		"details": err.Error(),
	})
}

func (s *Server) requestContext(c *fiber.Ctx) context.Context {
	return logger.WithRequestID(c.UserContext(), c.GetRespHeader(fiber.HeaderXRequestID))
}
