package session

import (
	"context"
	"path/filepath"

	"github.com/nguyentantai21042004/ai-transcriber/internal/export"
)

// Format is an export file format.
type Format string

const (
	FormatText Format = "txt"
	FormatDocx Format = "docx"
)

// ExportTranscript writes the edited transcript into dir and returns the file path.
// Failures set the transcription error message and leave the session usable.
func (s *Session) ExportTranscript(ctx context.Context, dir string, format Format) (string, error) {
	s.mu.Lock()
	content, source := s.edited, s.file
	s.mu.Unlock()

	if content == "" {
		return "", ErrNothingToExport
	}

	path := filepath.Join(dir, exportName(source, "transcript", format))
	if err := write(format, content, path, false); err != nil {
		s.logger.Error(ctx, "Transcript export to %s failed: %v", path, err)
		s.mu.Lock()
		s.err = failureMessage(format)
		s.mu.Unlock()
		return "", err
	}

	s.logger.Info(ctx, "Transcript exported: %s", path)
	return path, nil
}

// ExportSummary writes the summary into dir and returns the file path.
func (s *Session) ExportSummary(ctx context.Context, dir string, format Format) (string, error) {
	s.mu.Lock()
	summary, source := s.summary, s.file
	s.mu.Unlock()

	if summary == nil || *summary == "" {
		return "", ErrNothingToExport
	}

	path := filepath.Join(dir, exportName(source, "summary", format))
	if err := write(format, *summary, path, true); err != nil {
		s.logger.Error(ctx, "Summary export to %s failed: %v", path, err)
		s.mu.Lock()
		s.summaryErr = failureMessage(format)
		s.mu.Unlock()
		return "", err
	}

	s.logger.Info(ctx, "Summary exported: %s", path)
	return path, nil
}

func write(format Format, content, path string, markdown bool) error {
	if format == FormatDocx {
		if markdown {
			return export.SummaryDocx(content, path)
		}
		return export.TranscriptDocx(content, path)
	}
	return export.Text(content, path)
}

func exportName(source, kind string, format Format) string {
	if format != FormatDocx {
		format = FormatText
	}
	if export.BaseName(source) == "" {
		source = "untitled"
	}
	return export.FileName(source, kind, string(format))
}

func failureMessage(format Format) string {
	if format == FormatDocx {
		return MsgDocxFailed
	}
	return MsgTextFailed
}
