package models

// TranscriptionOptions selects what the model is asked to produce besides text.
type TranscriptionOptions struct {
	Diarization bool `json:"diarization"`
	Timestamps  bool `json:"timestamps"`
}

// TranscriptSegment is one unit of transcribed speech.
// Speaker and Timestamp are nil when the model did not supply them.
type TranscriptSegment struct {
	Speaker   *string `json:"speaker,omitempty"`
	Timestamp *string `json:"timestamp,omitempty"`
	Text      string  `json:"text"`
}

// Transcript holds segments in the order they were spoken.
type Transcript []TranscriptSegment

// Speakers returns the distinct speaker labels in order of first appearance.
func (t Transcript) Speakers() []string {
	seen := make(map[string]bool)
	var speakers []string
	for _, seg := range t {
		if seg.Speaker == nil || *seg.Speaker == "" {
			continue
		}
		if seen[*seg.Speaker] {
			continue
		}
		seen[*seg.Speaker] = true
		speakers = append(speakers, *seg.Speaker)
	}
	return speakers
}

// SummaryOptions selects the sections of a generated summary.
type SummaryOptions struct {
	KeyPoints        bool `json:"keyPoints"`
	TaskList         bool `json:"taskList"`
	PreserveLanguage bool `json:"preserveLanguage"`
}

// HasSection reports whether at least one output section is requested.
func (o SummaryOptions) HasSection() bool {
	return o.KeyPoints || o.TaskList
}

// SpeakerNameMap maps raw speaker labels such as SPEAKER_00 to display names.
type SpeakerNameMap map[string]string

// Resolve returns the display name for label, falling back to the label itself.
func (m SpeakerNameMap) Resolve(label string) string {
	if name := m[label]; name != "" {
		return name
	}
	return label
}

// StringPtr is a helper for building segments.
func StringPtr(s string) *string {
	return &s
}
