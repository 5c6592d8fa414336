package apiclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
	"github.com/stretchr/testify/require"
)

func writeMedia(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestEncodeFile(t *testing.T) {
	path := writeMedia(t, "meeting.mp3", []byte("ID3fake"))

	p, err := EncodeFile(path)
	require.NoError(t, err)
	require.Equal(t, "audio/mpeg", p.MimeType)
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("ID3fake")), p.FileData)
}

func TestEncodeFileMissing(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "missing.mp3"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		path string
		data []byte
		want string
	}{
		{"a.MP4", nil, "video/mp4"},
		{"a.m4a", nil, "audio/mp4"},
		{"a.wav", nil, "audio/wav"},
		{"a.unknownext", []byte("RIFF\x00\x00\x00\x00WAVEfmt "), "audio/wave"},
		{"noext", []byte("plain words"), "text/plain"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, DetectMimeType(tt.path, tt.data), tt.path)
	}
}

func TestTranscribe(t *testing.T) {
	var got transcribeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transcribe", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"speaker":"SPEAKER_00","timestamp":"[00:00:01.000]","text":"Hello"}]`))
	}))
	defer srv.Close()

	path := writeMedia(t, "clip.wav", []byte("RIFF"))
	c := New(srv.URL+"/", logger.New("error"))

	tr, err := c.Transcribe(context.Background(), path, models.TranscriptionOptions{Diarization: true})
	require.NoError(t, err)
	require.Len(t, tr, 1)
	require.Equal(t, "SPEAKER_00", *tr[0].Speaker)
	require.Equal(t, "Hello", tr[0].Text)

	require.Equal(t, "audio/wav", got.MimeType)
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("RIFF")), got.FileData)
	require.True(t, got.Options.Diarization)
	require.False(t, got.Options.Timestamps)
}

func TestTranscribeErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode int
	}{
		{"server error with message", http.StatusInternalServerError, `{"error":"Failed to process transcription.","details":"quota"}`, "Failed to process transcription.", 500},
		{"plain text bad request", http.StatusBadRequest, `Missing required parameters.`, transcribeFailed, 400},
		{"json without error field", http.StatusBadGateway, `{"message":"upstream"}`, transcribeFailed, 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, logger.New("error"))
			_, err := c.Transcribe(context.Background(), writeMedia(t, "a.mp3", []byte("x")), models.TranscriptionOptions{})

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tt.wantMsg, apiErr.Message)
			require.Equal(t, tt.wantCode, apiErr.StatusCode)
			require.Equal(t, "transcribe", apiErr.Op)
		})
	}
}

func TestTranscribeUnreadableFile(t *testing.T) {
	c := New("http://127.0.0.1:1", logger.New("error"))
	_, err := c.Transcribe(context.Background(), filepath.Join(t.TempDir(), "gone.mp3"), models.TranscriptionOptions{})

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTranscribeNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, logger.New("error"))
	_, err := c.Transcribe(context.Background(), writeMedia(t, "a.mp3", []byte("x")), models.TranscriptionOptions{})

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, transcribeFailed, apiErr.Message)
	require.Zero(t, apiErr.StatusCode)
}

func TestTranscribeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New("http://127.0.0.1:1", logger.New("error"))
	_, err := c.Transcribe(ctx, writeMedia(t, "a.mp3", []byte("x")), models.TranscriptionOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	var got summarizeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/summarize", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"summary":"## Key Points"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, logger.New("error"))
	summary, err := c.Summarize(context.Background(), "Alice: hi", models.SummaryOptions{KeyPoints: true, PreserveLanguage: true})
	require.NoError(t, err)
	require.Equal(t, "## Key Points", summary)
	require.Equal(t, "Alice: hi", got.Transcript)
	require.True(t, got.Options.KeyPoints)
	require.False(t, got.Options.TaskList)
	require.True(t, got.Options.PreserveLanguage)
}

func TestSummarizeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, logger.New("error"))
	_, err := c.Summarize(context.Background(), "x", models.SummaryOptions{KeyPoints: true})

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, summarizeFailed, apiErr.Message)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestErrorString(t *testing.T) {
	require.Equal(t, "summarize: boom", (&Error{Op: "summarize", Message: "boom"}).Error())
	require.Equal(t, "summarize: boom: eof", (&Error{Op: "summarize", Message: "boom", Err: errors.New("eof")}).Error())
}

func TestIsMediaFile(t *testing.T) {
	require.True(t, IsMediaFile("/in/a.MP3"))
	require.True(t, IsMediaFile("b.mkv"))
	require.False(t, IsMediaFile("notes.txt"))
	require.False(t, IsMediaFile("noext"))

	require.True(t, IsVideoFile("b.mov"))
	require.True(t, IsVideoFile("b.webm"))
	require.False(t, IsVideoFile("a.wav"))
	require.False(t, IsVideoFile("notes.txt"))
}
