package session

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/ai-transcriber/internal/apiclient"
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
)

// Option names a transcription option that can be toggled individually.
type Option int

const (
	OptionDiarization Option = iota
	OptionTimestamps
)

// SummaryOption names a summary option.
type SummaryOption int

const (
	SummaryKeyPoints SummaryOption = iota
	SummaryTaskList
	SummaryPreserveLanguage
)

// Session owns all user-facing state of one transcription workspace.
// All transitions go through its methods; the mutex is released while a
// network call is outstanding so readers never block on the model.
type Session struct {
	mu     sync.Mutex
	api    apiclient.API
	logger logger.Logger

	file       string
	generation uint64

	options      models.TranscriptionOptions
	allOptions   bool
	transcript   models.Transcript
	edited       string
	dirty        bool
	speakerNames models.SpeakerNameMap
	transcribing bool
	err          string

	summaryOptions models.SummaryOptions
	summary        *string
	summarizing    bool
	summaryErr     string
}

// New creates a Session with all transcription options on and the
// key-points summary selected.
func New(api apiclient.API, log logger.Logger) *Session {
	return &Session{
		api:            api,
		logger:         log,
		options:        models.TranscriptionOptions{Diarization: true, Timestamps: true},
		allOptions:     true,
		speakerNames:   models.SpeakerNameMap{},
		summaryOptions: models.SummaryOptions{KeyPoints: true},
	}
}

// SelectFile makes path the source file and discards everything derived from
// the previous one.
func (s *Session) SelectFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.file = path
	s.resetLocked()
}

// ClearFile removes the selected file.
func (s *Session) ClearFile() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.file = ""
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.generation++
	s.transcript = nil
	s.edited = ""
	s.dirty = false
	s.speakerNames = models.SpeakerNameMap{}
	s.err = ""
	s.summary = nil
	s.summaryErr = ""
}

// SetAllOptions turns the "all options" toggle on or off. Turning it on
// forces every transcription option on; turning it off keeps the values.
func (s *Session) SetAllOptions(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.allOptions = on
	if on {
		s.options = models.TranscriptionOptions{Diarization: true, Timestamps: true}
		s.refreshLocked()
	}
}

// ToggleOption flips a single transcription option. It has no effect while
// "all options" is on and reports whether the toggle was applied.
func (s *Session) ToggleOption(opt Option) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.allOptions {
		return false
	}

	switch opt {
	case OptionDiarization:
		s.options.Diarization = !s.options.Diarization
	case OptionTimestamps:
		s.options.Timestamps = !s.options.Timestamps
	default:
		return false
	}
	s.refreshLocked()
	return true
}

// SetOptions replaces both transcription options. Like ToggleOption it has
// no effect while "all options" is on.
func (s *Session) SetOptions(opts models.TranscriptionOptions) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.allOptions {
		return false
	}
	s.options = opts
	s.refreshLocked()
	return true
}

// SetSpeakerName assigns a display name to a raw speaker label.
func (s *Session) SetSpeakerName(label, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.speakerNames[label] = name
	s.refreshLocked()
}

// SetEditedText replaces the editable transcript buffer with user edits.
// Later option or name changes no longer overwrite it.
func (s *Session) SetEditedText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edited = text
	s.dirty = true
}

// ToggleSummaryOption flips one summary option.
func (s *Session) ToggleSummaryOption(opt SummaryOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch opt {
	case SummaryKeyPoints:
		s.summaryOptions.KeyPoints = !s.summaryOptions.KeyPoints
	case SummaryTaskList:
		s.summaryOptions.TaskList = !s.summaryOptions.TaskList
	case SummaryPreserveLanguage:
		s.summaryOptions.PreserveLanguage = !s.summaryOptions.PreserveLanguage
	}
}

// SetSummaryOptions replaces all summary options at once.
func (s *Session) SetSummaryOptions(opts models.SummaryOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summaryOptions = opts
}

// Transcribe sends the selected file for transcription and replaces the
// current transcript with the result. A second call while one is in flight
// returns ErrBusy without touching state.
func (s *Session) Transcribe(ctx context.Context) error {
	s.mu.Lock()
	if s.file == "" {
		s.err = MsgNoFile
		s.mu.Unlock()
		return ErrNoFile
	}
	if s.transcribing {
		s.mu.Unlock()
		return ErrBusy
	}

	s.transcribing = true
	s.err = ""
	s.setTranscriptLocked(nil)
	file, opts, gen := s.file, s.options, s.generation
	s.mu.Unlock()

	transcript, err := s.api.Transcribe(ctx, file, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcribing = false

	if gen != s.generation {
		s.logger.Debug(ctx, "Discarding transcription of %s: file changed", file)
		return ErrStale
	}
	if err != nil {
		s.logger.Error(ctx, "Transcription of %s failed: %v", file, err)
		s.err = MsgTranscribeFailed
		return err
	}

	s.setTranscriptLocked(transcript)
	s.logger.Info(ctx, "Transcribed %s: %d segments", file, len(transcript))
	return nil
}

// Summarize requests a summary of the edited transcript. Empty text or no
// selected section fail locally without calling the API.
func (s *Session) Summarize(ctx context.Context) error {
	s.mu.Lock()
	if s.edited == "" {
		s.summaryErr = MsgEmptyTranscript
		s.mu.Unlock()
		return ErrEmptyTranscript
	}
	if !s.summaryOptions.HasSection() {
		s.summaryErr = MsgNoSummarySection
		s.mu.Unlock()
		return ErrNoSummarySection
	}
	if s.summarizing {
		s.mu.Unlock()
		return ErrBusy
	}

	s.summarizing = true
	s.summary = nil
	s.summaryErr = ""
	text, opts, gen := s.edited, s.summaryOptions, s.generation
	s.mu.Unlock()

	summary, err := s.api.Summarize(ctx, text, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.summarizing = false

	if gen != s.generation {
		return ErrStale
	}
	if err != nil {
		s.logger.Error(ctx, "Summary failed: %v", err)
		s.summaryErr = MsgSummarizeFailed
		return err
	}

	s.summary = &summary
	return nil
}

// setTranscriptLocked replaces the transcript and reseeds the edit buffer.
func (s *Session) setTranscriptLocked(t models.Transcript) {
	s.transcript = t
	s.dirty = false
	s.refreshLocked()
}

// refreshLocked recomputes the derived text; an edited buffer is kept.
func (s *Session) refreshLocked() {
	if s.dirty {
		return
	}
	s.edited = Render(s.transcript, s.options, s.speakerNames)
}
