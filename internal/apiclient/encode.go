package apiclient

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Payload is a file ready to be sent inline to the transcription endpoint.
type Payload struct {
	FileData string
	MimeType string
}

var mediaTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".opus": "audio/ogg",
	".flac": "audio/flac",
	".webm": "video/webm",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".m4v":  "video/mp4",
	".flv":  "video/x-flv",
}

// EncodeFile reads the whole file and returns its base64 payload and MIME type.
func EncodeFile(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, fmt.Errorf("read file: %w", err)
	}

	return Payload{
		FileData: base64.StdEncoding.EncodeToString(data),
		MimeType: DetectMimeType(path, data),
	}, nil
}

// DetectMimeType resolves a MIME type by extension, falling back to content sniffing.
func DetectMimeType(path string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := mediaTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return stripParams(t)
	}
	return stripParams(http.DetectContentType(data))
}

func stripParams(t string) string {
	if i := strings.Index(t, ";"); i >= 0 {
		return strings.TrimSpace(t[:i])
	}
	return t
}

// IsMediaFile reports whether path has a known audio or video extension.
func IsMediaFile(path string) bool {
	_, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

// IsVideoFile reports whether path has a known video extension.
func IsVideoFile(path string) bool {
	return strings.HasPrefix(mediaTypes[strings.ToLower(filepath.Ext(path))], "video/")
}
