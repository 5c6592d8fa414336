package summarizer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
)

const (
	rolePrompt      = "You are an expert assistant specialized in summarizing meeting transcripts and conversations."
	keyPointsOutput = "a concise summary of the key points and main decisions"
	taskListOutput  = "a detailed task list of all action items, including assigned individuals and deadlines if mentioned"
	preservePrompt  = "When generating the output, try to preserve the original tone and specific phrasing from the transcript where appropriate."
	headingsPrompt  = "Structure your response with clear headings for each section (e.g., 'Key Points', 'Task List')."

	transcriptFrame = "\n\n--- TRANSCRIPT START ---\n\n%s\n\n--- TRANSCRIPT END ---"
)

// BuildPrompt returns the instruction text for opts. With no section selected
// the key-points summary is requested.
func BuildPrompt(opts models.SummaryOptions) string {
	var requested []string
	if opts.KeyPoints {
		requested = append(requested, keyPointsOutput)
	}
	if opts.TaskList {
		requested = append(requested, taskListOutput)
	}
	if len(requested) == 0 {
		requested = append(requested, keyPointsOutput)
	}

	parts := []string{
		rolePrompt,
		fmt.Sprintf("Based on the following transcript, please generate %s.", strings.Join(requested, " and ")),
	}
	if opts.PreserveLanguage {
		parts = append(parts, preservePrompt)
	}
	parts = append(parts, headingsPrompt)

	return strings.Join(parts, " ")
}

// frameTranscript wraps the transcript in explicit start/end markers.
func frameTranscript(transcript string) string {
	return fmt.Sprintf(transcriptFrame, transcript)
}
