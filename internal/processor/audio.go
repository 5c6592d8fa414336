package processor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/ai-transcriber/internal/apiclient"
	"github.com/nguyentantai21042004/ai-transcriber/internal/export"
)

// shouldExtract reports whether the audio track of mediaPath should be
// uploaded instead of the whole file.
func (p *implProcessor) shouldExtract(ctx context.Context, mediaPath string) bool {
	if !p.cfg.FFmpeg.ExtractAudio || !apiclient.IsVideoFile(mediaPath) {
		return false
	}
	if !p.executor.Available(p.cfg.FFmpeg.BinaryPath) {
		p.logger.Warn(ctx, "%s not found, uploading %s as is", p.cfg.FFmpeg.BinaryPath, mediaPath)
		return false
	}
	return true
}

// extractAudio writes the audio track of videoPath as 16kHz mono WAV into dir.
// The file keeps the video's base name so exports are named after the source.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath, dir string) (string, error) {
	audioPath := filepath.Join(dir, export.BaseName(filepath.Base(videoPath))+".wav")

	p.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
