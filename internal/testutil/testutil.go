// Package testutil provides shared test helpers for writing bank,
// history, and config fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteLines writes raw lines joined by newlines to path, creating
// parent directories as needed.
func WriteLines(t *testing.T, path string, lines ...string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	contents := strings.Join(lines, "\n")
	if contents != "" {
		contents += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

// BankLine formats a minimal valid question-bank line.
func BankLine(id, questionType string, tags ...string) string {
	if len(tags) == 0 {
		return fmt.Sprintf(`{"id":%q,"type":%q,"tags":[]}`, id, questionType)
	}
	quoted := make([]string, 0, len(tags))
	for _, tag := range tags {
		quoted = append(quoted, fmt.Sprintf("%q", tag))
	}
	return fmt.Sprintf(`{"id":%q,"type":%q,"tags":[%s]}`, id, questionType, strings.Join(quoted, ","))
}

// HistoryLine formats a progress-log line.
func HistoryLine(questionID string, attempts int, seconds float64, correct bool, timestamp float64) string {
	return fmt.Sprintf(`{"question_id":%q,"attempts":%d,"seconds":%g,"correct":%t,"timestamp":%g}`,
		questionID, attempts, seconds, correct, timestamp)
}

// SetupTestConfig creates a config file pointing every path into
// tmpDir and returns its path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`bank:
  file: %s
  qbank_directory: %s
history:
  file: %s
assets:
  root: %s
  audio_directory: tone_perfect
  xml_directory: tone_perfect-2
  index_file: %s
generation:
  common_syllables_file: %s
  tricky_sets_file: %s
  tone_syllables_file: %s
`,
		filepath.Join(tmpDir, "question_bank.jsonl"),
		filepath.Join(tmpDir, "Qbank"),
		filepath.Join(tmpDir, "progress.jsonl"),
		tmpDir,
		filepath.Join(tmpDir, "syllables.json"),
		filepath.Join(tmpDir, "mostCommonSyllables.txt"),
		filepath.Join(tmpDir, "trickySyllables.json"),
		filepath.Join(tmpDir, "tones.txt"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
