package transcription

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/nguyentantai21042004/ai-transcriber/internal/gemini"
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type stubGenerator struct {
	reply string
	err   error
	parts []*genai.Part
	cfg   *genai.GenerateContentConfig
}

func (g *stubGenerator) Generate(_ context.Context, parts []*genai.Part, cfg *genai.GenerateContentConfig) (string, error) {
	g.parts = parts
	g.cfg = cfg
	return g.reply, g.err
}

type stubProvider struct {
	gen     *stubGenerator
	openErr error
	opened  int
}

func (p *stubProvider) Open(context.Context) (gemini.Generator, error) {
	p.opened++
	if p.openErr != nil {
		return nil, p.openErr
	}
	return p.gen, nil
}

func newTestTranscriber(p *stubProvider) Transcriber {
	return New(p, logger.New("error"))
}

var media = base64.StdEncoding.EncodeToString([]byte("fake-audio"))

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name string
		opts models.TranscriptionOptions
		want string
	}{
		{"base only", models.TranscriptionOptions{}, basePrompt},
		{"diarization", models.TranscriptionOptions{Diarization: true}, basePrompt + " " + diarizationPrompt},
		{"timestamps", models.TranscriptionOptions{Timestamps: true}, basePrompt + " " + timestampsPrompt},
		{"both in fixed order", models.TranscriptionOptions{Diarization: true, Timestamps: true}, basePrompt + " " + diarizationPrompt + " " + timestampsPrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, BuildPrompt(tt.opts))
		})
	}
}

func TestResponseSchema(t *testing.T) {
	s := ResponseSchema()
	require.Equal(t, genai.TypeObject, s.Type)

	items := s.Properties["transcript"].Items
	require.Equal(t, genai.TypeArray, s.Properties["transcript"].Type)
	require.Equal(t, []string{"text"}, items.Required)
	require.True(t, *items.Properties["speaker"].Nullable)
	require.True(t, *items.Properties["timestamp"].Nullable)
	require.Nil(t, items.Properties["text"].Nullable)
}

func TestTranscribeValidation(t *testing.T) {
	opts := &models.TranscriptionOptions{}

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"missing fileData", Request{MimeType: "audio/mpeg", Options: opts}, models.ErrMissingParameters},
		{"missing mimeType", Request{FileData: media, Options: opts}, models.ErrMissingParameters},
		{"missing options", Request{FileData: media, MimeType: "audio/mpeg"}, models.ErrMissingParameters},
		{"invalid base64", Request{FileData: "%%%", MimeType: "audio/mpeg", Options: opts}, models.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &stubProvider{gen: &stubGenerator{}}
			_, err := newTestTranscriber(p).Transcribe(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			require.Zero(t, p.opened)
		})
	}
}

func TestTranscribeMissingKey(t *testing.T) {
	p := &stubProvider{openErr: models.ErrMissingAPIKey}
	_, err := newTestTranscriber(p).Transcribe(context.Background(), Request{
		FileData: media,
		MimeType: "audio/mpeg",
		Options:  &models.TranscriptionOptions{},
	})
	require.ErrorIs(t, err, models.ErrMissingAPIKey)
}

func TestTranscribe(t *testing.T) {
	gen := &stubGenerator{
		reply: `{"transcript":[{"speaker":"SPEAKER_00","timestamp":"[00:00:01.000]","text":"Hello"},{"speaker":null,"text":"World"}]}`,
	}
	p := &stubProvider{gen: gen}

	tr, err := newTestTranscriber(p).Transcribe(context.Background(), Request{
		FileData: media,
		MimeType: "audio/mpeg",
		Options:  &models.TranscriptionOptions{Diarization: true, Timestamps: true},
	})
	require.NoError(t, err)
	require.Len(t, tr, 2)
	require.Equal(t, "SPEAKER_00", *tr[0].Speaker)
	require.Equal(t, "[00:00:01.000]", *tr[0].Timestamp)
	require.Equal(t, "Hello", tr[0].Text)
	require.Nil(t, tr[1].Speaker)
	require.Nil(t, tr[1].Timestamp)
	require.Equal(t, "World", tr[1].Text)

	require.Len(t, gen.parts, 2)
	require.Equal(t, BuildPrompt(models.TranscriptionOptions{Diarization: true, Timestamps: true}), gen.parts[0].Text)
	require.NotNil(t, gen.parts[1].InlineData)
	require.Equal(t, "audio/mpeg", gen.parts[1].InlineData.MIMEType)
	require.Equal(t, []byte("fake-audio"), gen.parts[1].InlineData.Data)
	require.Equal(t, "application/json", gen.cfg.ResponseMIMEType)
	require.NotNil(t, gen.cfg.ResponseSchema)
}

func TestTranscribeDataURL(t *testing.T) {
	gen := &stubGenerator{reply: `{"transcript":[]}`}
	p := &stubProvider{gen: gen}

	tr, err := newTestTranscriber(p).Transcribe(context.Background(), Request{
		FileData: "data:audio/wav;base64," + media,
		MimeType: "audio/wav",
		Options:  &models.TranscriptionOptions{},
	})
	require.NoError(t, err)
	require.Empty(t, tr)
	require.Equal(t, []byte("fake-audio"), gen.parts[1].InlineData.Data)
}

func TestTranscribeUpstreamError(t *testing.T) {
	boom := errors.New("quota exceeded")
	p := &stubProvider{gen: &stubGenerator{err: boom}}

	_, err := newTestTranscriber(p).Transcribe(context.Background(), Request{
		FileData: media,
		MimeType: "audio/mpeg",
		Options:  &models.TranscriptionOptions{},
	})
	require.ErrorIs(t, err, boom)
}

func TestParseReply(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{"empty transcript", `{"transcript":[]}`, 0, false},
		{"text only", `{"transcript":[{"text":"a"},{"text":"b"}]}`, 2, false},
		{"extra fields ignored", `{"transcript":[{"text":"a","confidence":0.9}],"language":"en"}`, 1, false},
		{"not json", `Here is your transcript`, 0, true},
		{"markdown fenced", "```json\n{\"transcript\":[]}\n```", 0, true},
		{"missing transcript", `{"segments":[]}`, 0, true},
		{"transcript not array", `{"transcript":"hello"}`, 0, true},
		{"missing text", `{"transcript":[{"speaker":"SPEAKER_00"}]}`, 0, true},
		{"blank text", `{"transcript":[{"text":"a"},{"text":"  "}]}`, 0, true},
		{"speaker wrong type", `{"transcript":[{"speaker":1,"text":"a"}]}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := ParseReply(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrMalformedReply)
				require.Nil(t, tr)
				return
			}
			require.NoError(t, err)
			require.Len(t, tr, tt.wantLen)
		})
	}
}

func TestTranscribeFailuresLogDigest(t *testing.T) {
	want := mediaDigest([]byte("fake-audio"))
	require.Len(t, want, 16)

	tests := []struct {
		name     string
		provider *stubProvider
	}{
		{"missing credential", &stubProvider{openErr: models.ErrMissingAPIKey}},
		{"upstream error", &stubProvider{gen: &stubGenerator{err: errors.New("quota exceeded")}}},
		{"malformed reply", &stubProvider{gen: &stubGenerator{reply: "not json"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tr := New(tt.provider, logger.NewWithFormat("error", "text", &buf))

			_, err := tr.Transcribe(context.Background(), Request{
				FileData: media,
				MimeType: "audio/mpeg",
				Options:  &models.TranscriptionOptions{},
			})
			require.Error(t, err)
			require.Contains(t, buf.String(), "blake3 "+want)
		})
	}
}

func TestMediaDigestDistinguishesUploads(t *testing.T) {
	require.Equal(t, mediaDigest([]byte("a")), mediaDigest([]byte("a")))
	require.NotEqual(t, mediaDigest([]byte("a")), mediaDigest([]byte("b")))
}
