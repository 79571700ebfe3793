package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/palette/internal/logging"
)

const sampleLog = `{"level":"info","session_id":"20251217_205106_a7b3","component":"host","time":"2025-12-17T20:51:06Z","message":"native host started"}
{"level":"debug","session_id":"20251217_205106_a7b3","component":"host","time":"2025-12-17T20:51:07Z","message":"query"}
not json at all
{"level":"info","session_id":"20251218_090000_bbbb","component":"cli","time":"2025-12-18T09:00:00Z","message":"places database opened"}
{"level":"warn","session_id":"20251217_205106_a7b3","component":"host","time":"2025-12-17T20:52:00Z","message":"browser closed the connection"}
`

func writeSampleLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), logging.LogFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o600))
	return path
}

func TestCollectSessions_GroupsBySessionNewestFirst(t *testing.T) {
	lines, err := readLogLines(writeSampleLog(t))
	require.NoError(t, err)
	require.Len(t, lines, 5)

	sessions := collectSessions(lines)
	require.Len(t, sessions, 2)

	require.Equal(t, "bbbb", sessions[0].ShortID)
	require.Equal(t, "cli", sessions[0].Component)

	host := sessions[1]
	require.Equal(t, "20251217_205106_a7b3", host.SessionID)
	require.Equal(t, 3, host.Lines)
	require.Equal(t, time.Date(2025, 12, 17, 20, 51, 6, 0, time.UTC), host.StartedAt)
	require.Equal(t, time.Date(2025, 12, 17, 20, 52, 0, 0, time.UTC), host.LastAt)
}

func TestReadLogLines_MissingFileIsEmpty(t *testing.T) {
	lines, err := readLogLines(filepath.Join(t.TempDir(), "nope.log"))
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestFindSession_ShortAndPartialMatch(t *testing.T) {
	lines, err := readLogLines(writeSampleLog(t))
	require.NoError(t, err)
	sessions := collectSessions(lines)

	info, err := findSession(sessions, "A7B3")
	require.NoError(t, err)
	require.Equal(t, "20251217_205106_a7b3", info.SessionID)

	info, err = findSession(sessions, "20251218")
	require.NoError(t, err)
	require.Equal(t, "bbbb", info.ShortID)

	_, err = findSession(sessions, "2025")
	require.ErrorContains(t, err, "multiple sessions")

	_, err = findSession(sessions, "zzzz")
	require.ErrorContains(t, err, "no session matching")

	_, err = findSession(nil, "a7b3")
	require.ErrorContains(t, err, "no sessions found")
}

func TestLastSessionLines(t *testing.T) {
	lines, err := readLogLines(writeSampleLog(t))
	require.NoError(t, err)

	got := lastSessionLines(lines, "20251217_205106_a7b3", 2)
	require.Len(t, got, 2)
	require.True(t, strings.Contains(got[0], `"message":"query"`))
	require.True(t, strings.Contains(got[1], "browser closed"))

	require.Len(t, lastSessionLines(lines, "20251217_205106_a7b3", 0), 3)
}

func TestClearLogs(t *testing.T) {
	dir := t.TempDir()
	current := filepath.Join(dir, logging.LogFileName)
	oldBackup := filepath.Join(dir, logging.LogFileName+".2025-01-01-00-00-00.000000.gz")
	newBackup := filepath.Join(dir, logging.LogFileName+".2025-12-01-00-00-00.000000.gz")
	unrelated := filepath.Join(dir, "other.txt")
	for _, p := range []string{current, oldBackup, newBackup, unrelated} {
		require.NoError(t, os.WriteFile(p, []byte("x\n"), 0o600))
	}
	cutoff := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(oldBackup, cutoff.Add(-48*time.Hour), cutoff.Add(-48*time.Hour)))

	removed, err := clearLogs(dir, cutoff, false)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Base(oldBackup)}, removed)
	require.FileExists(t, newBackup)

	removed, err = clearLogs(dir, cutoff, true)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{logging.LogFileName, filepath.Base(newBackup)}, removed)
	require.FileExists(t, unrelated)

	info, err := os.Stat(current)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}
