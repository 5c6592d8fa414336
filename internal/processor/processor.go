package processor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
	"github.com/nguyentantai21042004/ai-transcriber/internal/session"
)

type exportFunc func(ctx context.Context, dir string, format session.Format) (string, error)

var formats = []session.Format{session.FormatText, session.FormatDocx}

// Process runs one file through a fresh Session: transcribe, apply the
// configured speaker names, export, and optionally summarize.
func (p *implProcessor) Process(ctx context.Context, mediaPath string) error {
	startTime := time.Now()
	p.logger.Info(ctx, "Processing: %s", mediaPath)

	if _, err := os.Stat(mediaPath); err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	uploadPath := mediaPath
	if p.shouldExtract(ctx, mediaPath) {
		if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
			return fmt.Errorf("create temp dir: %w", err)
		}
		tempDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "extract-*")
		if err != nil {
			return fmt.Errorf("create temp dir: %w", err)
		}
		defer p.cleanupTempDir(ctx, tempDir)

		audioPath, err := p.extractAudio(ctx, mediaPath, tempDir)
		if err != nil {
			return fmt.Errorf("extract audio: %w", err)
		}
		uploadPath = audioPath
	}

	sess := session.New(p.api, p.logger)
	p.configure(sess)
	sess.SelectFile(uploadPath)

	if err := sess.Transcribe(ctx); err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	for label, name := range p.cfg.Watch.Speakers {
		sess.SetSpeakerName(label, name)
	}

	var outputs []string
	if sess.EditedText() == "" {
		p.logger.Warn(ctx, "No speech found in %s, nothing to export", mediaPath)
	} else {
		paths, err := p.export(ctx, sess.ExportTranscript)
		if err != nil {
			return fmt.Errorf("export transcript: %w", err)
		}
		outputs = append(outputs, paths...)

		if p.cfg.Watch.Summarize {
			if err := sess.Summarize(ctx); err != nil {
				return fmt.Errorf("summarize: %w", err)
			}
			paths, err := p.export(ctx, sess.ExportSummary)
			if err != nil {
				return fmt.Errorf("export summary: %w", err)
			}
			outputs = append(outputs, paths...)
		}
	}

	if p.archive {
		if err := p.moveToArchived(ctx, mediaPath); err != nil {
			p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
		}
	}

	for _, path := range outputs {
		p.logger.Info(ctx, "Output: %s", path)
	}
	p.logger.Info(ctx, "Finished %s in %s", mediaPath, time.Since(startTime).Round(time.Millisecond))
	return nil
}

// configure applies the watch options to a new session.
func (p *implProcessor) configure(sess *session.Session) {
	w := p.cfg.Watch
	if !w.Diarization || !w.Timestamps {
		sess.SetAllOptions(false)
		sess.SetOptions(models.TranscriptionOptions{Diarization: w.Diarization, Timestamps: w.Timestamps})
	}
	sess.SetSummaryOptions(models.SummaryOptions{
		KeyPoints:        w.KeyPoints,
		TaskList:         w.TaskList,
		PreserveLanguage: w.PreserveLanguage,
	})
}

func (p *implProcessor) export(ctx context.Context, fn exportFunc) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path, err := fn(ctx, p.cfg.Paths.Output, f)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
