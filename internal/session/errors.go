package session

import "errors"

// Messages shown to the user. Details are logged, never shown.
const (
	MsgNoFile           = "Please select a file first."
	MsgTranscribeFailed = "Failed to transcribe the audio. Please try again."
	MsgEmptyTranscript  = "The transcript is empty."
	MsgNoSummarySection = `Please select at least "Summarize key points" or "Make a task list".`
	MsgSummarizeFailed  = "Failed to generate summary. Please try again."
	MsgDocxFailed       = "Failed to create DOCX file."
	MsgTextFailed       = "Failed to create TXT file."
)

var (
	ErrNoFile           = errors.New("no file selected")
	ErrBusy             = errors.New("request already in flight")
	ErrEmptyTranscript  = errors.New("transcript is empty")
	ErrNoSummarySection = errors.New("no summary section selected")
	ErrNothingToExport  = errors.New("nothing to export")

	// ErrStale is returned when the selected file changed while a request was in flight.
	ErrStale = errors.New("result discarded: file changed")
)
