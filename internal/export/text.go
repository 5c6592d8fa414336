package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Text writes content verbatim as a UTF-8 text file.
func Text(content, outputPath string) error {
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

// BaseName returns the file name up to its first dot, as used for export names.
// "meeting.2024.mp3" becomes "meeting".
func BaseName(filename string) string {
	name := filepath.Base(filename)
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

// FileName builds "<base>_<kind>.<ext>", e.g. "meeting_transcript.docx".
func FileName(source, kind, ext string) string {
	return fmt.Sprintf("%s_%s.%s", BaseName(source), kind, ext)
}
