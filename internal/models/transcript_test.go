package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscriptSpeakers(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var tr Transcript
		require.Empty(t, tr.Speakers())
	})

	t.Run("first appearance order", func(t *testing.T) {
		tr := Transcript{
			{Speaker: StringPtr("SPEAKER_01"), Text: "a"},
			{Speaker: StringPtr("SPEAKER_00"), Text: "b"},
			{Text: "c"},
			{Speaker: StringPtr("SPEAKER_01"), Text: "d"},
			{Speaker: StringPtr(""), Text: "e"},
		}
		require.Equal(t, []string{"SPEAKER_01", "SPEAKER_00"}, tr.Speakers())
	})
}

func TestSpeakerNameMapResolve(t *testing.T) {
	m := SpeakerNameMap{"SPEAKER_00": "Alice", "SPEAKER_01": ""}
	require.Equal(t, "Alice", m.Resolve("SPEAKER_00"))
	require.Equal(t, "SPEAKER_01", m.Resolve("SPEAKER_01"))
	require.Equal(t, "SPEAKER_02", m.Resolve("SPEAKER_02"))

	var empty SpeakerNameMap
	require.Equal(t, "SPEAKER_00", empty.Resolve("SPEAKER_00"))
}

func TestSummaryOptionsHasSection(t *testing.T) {
	require.False(t, SummaryOptions{PreserveLanguage: true}.HasSection())
	require.True(t, SummaryOptions{KeyPoints: true}.HasSection())
	require.True(t, SummaryOptions{TaskList: true}.HasSection())
}

func TestSegmentJSON(t *testing.T) {
	t.Run("absent optionals are omitted", func(t *testing.T) {
		b, err := json.Marshal(TranscriptSegment{Text: "hi"})
		require.NoError(t, err)
		require.JSONEq(t, `{"text":"hi"}`, string(b))
	})

	t.Run("null optionals decode as absent", func(t *testing.T) {
		var seg TranscriptSegment
		require.NoError(t, json.Unmarshal([]byte(`{"speaker":null,"timestamp":"","text":"hi"}`), &seg))
		require.Nil(t, seg.Speaker)
		require.NotNil(t, seg.Timestamp)
		require.Equal(t, "", *seg.Timestamp)
	})
}

func TestIsValidationError(t *testing.T) {
	require.True(t, IsValidationError(fmt.Errorf("transcribe: %w", ErrMissingParameters)))
	require.True(t, IsValidationError(ErrInvalidRequest))
	require.False(t, IsValidationError(ErrMissingAPIKey))
	require.False(t, IsValidationError(errors.New("boom")))
}
