package transcription

import (
	"strings"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
	"google.golang.org/genai"
)

const (
	basePrompt = "You are an expert audio transcription service. Transcribe the content of the provided audio file. " +
		"The final output must be a JSON object matching the provided schema. " +
		"Do not include any other text, comments, or markdown formatting in your response. Only the JSON object is allowed."
	diarizationPrompt = "Perform speaker diarization, labeling speakers as 'SPEAKER_00', 'SPEAKER_01', etc."
	timestampsPrompt  = "Include timestamps for each segment in the format [HH:MM:SS.mmm]."
)

// BuildPrompt returns the instruction text for opts. Sections always appear
// in the order base, diarization, timestamps.
func BuildPrompt(opts models.TranscriptionOptions) string {
	parts := []string{basePrompt}
	if opts.Diarization {
		parts = append(parts, diarizationPrompt)
	}
	if opts.Timestamps {
		parts = append(parts, timestampsPrompt)
	}
	return strings.Join(parts, " ")
}

// ResponseSchema is the structured output the model is constrained to.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"transcript": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"speaker":   {Type: genai.TypeString, Nullable: genai.Ptr(true)},
						"timestamp": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
						"text":      {Type: genai.TypeString},
					},
					Required: []string{"text"},
				},
			},
		},
		Required: []string{"transcript"},
	}
}

func generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ResponseSchema(),
	}
}
