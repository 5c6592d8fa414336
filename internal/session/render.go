package session

import (
	"strings"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Render formats a transcript as one line per segment:
// "[timestamp] speaker: text", each prefix only when enabled and present.
func Render(t models.Transcript, opts models.TranscriptionOptions, names models.SpeakerNameMap) string {
	lines := make([]string, 0, len(t))
	for _, seg := range t {
		var sb strings.Builder
		if opts.Timestamps && seg.Timestamp != nil && *seg.Timestamp != "" {
			sb.WriteString(*seg.Timestamp)
			sb.WriteString(" ")
		}
		if opts.Diarization && seg.Speaker != nil && *seg.Speaker != "" {
			sb.WriteString(names.Resolve(*seg.Speaker))
			sb.WriteString(": ")
		}
		// keep one line per segment
		sb.WriteString(lineBreaks.Replace(seg.Text))
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
