package session

import (
	"maps"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
)

// State is a point-in-time copy of everything a view needs to render.
type State struct {
	File           string
	Options        models.TranscriptionOptions
	AllOptions     bool
	Transcript     models.Transcript
	DisplayText    string
	EditedText     string
	Speakers       []string
	SpeakerNames   models.SpeakerNameMap
	Transcribing   bool
	Error          string
	SummaryOptions models.SummaryOptions
	Summary        string
	HasSummary     bool
	Summarizing    bool
	SummaryError   string
	CanTranscribe  bool
	CanSummarize   bool
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		File:           s.file,
		Options:        s.options,
		AllOptions:     s.allOptions,
		Transcript:     append(models.Transcript(nil), s.transcript...),
		DisplayText:    Render(s.transcript, s.options, s.speakerNames),
		EditedText:     s.edited,
		Speakers:       s.uniqueSpeakersLocked(),
		SpeakerNames:   maps.Clone(s.speakerNames),
		Transcribing:   s.transcribing,
		Error:          s.err,
		SummaryOptions: s.summaryOptions,
		Summarizing:    s.summarizing,
		SummaryError:   s.summaryErr,
		CanTranscribe:  s.file != "" && !s.transcribing,
		CanSummarize:   s.edited != "" && !s.summarizing,
	}
	if s.summary != nil {
		st.Summary = *s.summary
		st.HasSummary = true
	}
	return st
}

// DisplayText is the transcript recomputed from the current options and names.
func (s *Session) DisplayText() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Render(s.transcript, s.options, s.speakerNames)
}

// EditedText is the editable buffer, seeded from DisplayText.
func (s *Session) EditedText() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.edited
}

// UniqueSpeakers lists the speaker labels offered for naming. It is empty
// when diarization is off.
func (s *Session) UniqueSpeakers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.uniqueSpeakersLocked()
}

func (s *Session) uniqueSpeakersLocked() []string {
	if !s.options.Diarization {
		return nil
	}
	return s.transcript.Speakers()
}

// Options returns the current transcription options.
func (s *Session) Options() models.TranscriptionOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.options
}

// Summary returns the last summary and whether one exists.
func (s *Session) Summary() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summary == nil {
		return "", false
	}
	return *s.summary, true
}
