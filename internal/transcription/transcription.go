package transcription

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
	"google.golang.org/genai"
	"lukechampine.com/blake3"
)

// Transcribe validates req, sends the prompt and media to the model and
// returns the parsed segments. No partial results are ever returned.
func (t *implTranscriber) Transcribe(ctx context.Context, req Request) (models.Transcript, error) {
	if req.FileData == "" || req.MimeType == "" || req.Options == nil {
		return nil, models.ErrMissingParameters
	}

	media, err := decodeMedia(req.FileData)
	if err != nil {
		return nil, fmt.Errorf("decode fileData: %w", models.ErrInvalidRequest)
	}

	digest := mediaDigest(media)

	gen, err := t.provider.Open(ctx)
	if err != nil {
		t.logger.Error(ctx, "Transcription of blake3 %s not started: %v", digest, err)
		return nil, err
	}

	t.logger.Info(ctx, "Transcribing %s (%d bytes, blake3 %s, diarization=%t, timestamps=%t)",
		req.MimeType, len(media), digest, req.Options.Diarization, req.Options.Timestamps)

	startTime := time.Now()
	parts := []*genai.Part{
		genai.NewPartFromText(BuildPrompt(*req.Options)),
		genai.NewPartFromBytes(media, req.MimeType),
	}

	raw, err := gen.Generate(ctx, parts, generateConfig())
	if err != nil {
		t.logger.Error(ctx, "Transcription of blake3 %s failed: %v", digest, err)
		return nil, err
	}

	transcript, err := ParseReply(raw)
	if err != nil {
		t.logger.Error(ctx, "Transcription of blake3 %s returned a bad reply (%d chars): %v", digest, len(raw), err)
		return nil, err
	}

	t.logger.Info(ctx, "Transcription of blake3 %s completed: %d segments in %s", digest, len(transcript), time.Since(startTime))
	return transcript, nil
}

// mediaDigest is a short blake3 fingerprint of the upload used to correlate
// log lines for one file across requests.
func mediaDigest(media []byte) string {
	sum := blake3.Sum256(media)
	return hex.EncodeToString(sum[:8])
}

// decodeMedia accepts plain base64 or a data URL.
func decodeMedia(data string) ([]byte, error) {
	if strings.HasPrefix(data, "data:") {
		if i := strings.Index(data, ","); i >= 0 {
			data = data[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(data)
}

type rawSegment struct {
	Speaker   *string `json:"speaker"`
	Timestamp *string `json:"timestamp"`
	Text      *string `json:"text"`
}

type rawReply struct {
	Transcript *[]rawSegment `json:"transcript"`
}

// ParseReply decodes the model's JSON reply. Any deviation from the schema is
// reported as models.ErrMalformedReply.
func ParseReply(raw string) (models.Transcript, error) {
	var reply rawReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedReply, err)
	}
	if reply.Transcript == nil {
		return nil, fmt.Errorf("%w: missing transcript array", models.ErrMalformedReply)
	}

	transcript := make(models.Transcript, 0, len(*reply.Transcript))
	for i, seg := range *reply.Transcript {
		if seg.Text == nil || strings.TrimSpace(*seg.Text) == "" {
			return nil, fmt.Errorf("%w: segment %d has no text", models.ErrMalformedReply, i)
		}
		transcript = append(transcript, models.TranscriptSegment{
			Speaker:   seg.Speaker,
			Timestamp: seg.Timestamp,
			Text:      *seg.Text,
		})
	}
	return transcript, nil
}
