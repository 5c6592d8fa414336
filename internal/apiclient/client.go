package apiclient

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
)

const (
	transcribeFailed = "The transcription request failed."
	summarizeFailed  = "The summary request failed."
)

type transcribeRequest struct {
	FileData string                      `json:"fileData"`
	MimeType string                      `json:"mimeType"`
	Options  models.TranscriptionOptions `json:"options"`
}

type summarizeRequest struct {
	Transcript string                `json:"transcript"`
	Options    models.SummaryOptions `json:"options"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Transcribe uploads the file at path and returns the transcript. One attempt, no retries.
func (c *implClient) Transcribe(ctx context.Context, path string, opts models.TranscriptionOptions) (models.Transcript, error) {
	const op = "transcribe"

	payload, err := EncodeFile(path)
	if err != nil {
		return nil, &Error{Op: op, Message: "Could not read the selected file.", Err: err}
	}

	c.logger.Debug(ctx, "Uploading %s (%s, %d base64 bytes)", path, payload.MimeType, len(payload.FileData))

	body, err := c.post(ctx, op, "/transcribe", transcribeRequest{
		FileData: payload.FileData,
		MimeType: payload.MimeType,
		Options:  opts,
	}, transcribeFailed)
	if err != nil {
		return nil, err
	}

	var transcript models.Transcript
	if err := json.Unmarshal(body, &transcript); err != nil {
		return nil, &Error{Op: op, StatusCode: fiber.StatusOK, Message: transcribeFailed, Err: err}
	}
	return transcript, nil
}

// Summarize sends the edited transcript text and returns the summary.
func (c *implClient) Summarize(ctx context.Context, transcript string, opts models.SummaryOptions) (string, error) {
	const op = "summarize"

	body, err := c.post(ctx, op, "/summarize", summarizeRequest{
		Transcript: transcript,
		Options:    opts,
	}, summarizeFailed)
	if err != nil {
		return "", err
	}

	var res summarizeResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return "", &Error{Op: op, StatusCode: fiber.StatusOK, Message: summarizeFailed, Err: err}
	}
	return res.Summary, nil
}

func (c *implClient) post(ctx context.Context, op, path string, payload interface{}, fallback string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: op, Message: fallback, Err: err}
	}

	agent := fiber.Post(c.baseURL + path).JSON(payload)
	if err := agent.Parse(); err != nil {
		return nil, &Error{Op: op, Message: fallback, Err: err}
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, &Error{Op: op, Message: fallback, Err: errors.Join(errs...)}
	}

	if code < 200 || code > 299 {
		msg := fallback
		var res errorResponse
		if err := json.Unmarshal(body, &res); err == nil && res.Error != "" {
			msg = res.Error
		}
		c.logger.Warn(ctx, "%s returned %d: %s", path, code, msg)
		return nil, &Error{Op: op, StatusCode: code, Message: msg}
	}

	return body, nil
}
