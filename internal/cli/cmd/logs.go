package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/palette/internal/cli/styles"
	"github.com/bnema/palette/internal/infrastructure/config"
	"github.com/bnema/palette/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	// maxLogLine bounds a single JSON log line.
	maxLogLine = 1 << 20
)

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View application logs",
	Long: `View palette logs by session.

Every native host and CLI run tags its lines with a session id.
Without arguments, lists the sessions found in the current log file.
With a session ID (or partial match), shows logs for that session.

Examples:
  palette logs                 # List all sessions
  palette logs a7b3            # View logs for session ending in 'a7b3'
  palette logs -f a7b3         # Follow logs in real-time
  palette logs -n 100 a7b3     # Show last 100 lines`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

// SessionInfo summarizes one session found in the log file.
type SessionInfo struct {
	SessionID string
	ShortID   string
	Component string
	StartedAt time.Time
	LastAt    time.Time
	Lines     int
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Session   string `json:"session_id"`
	Component string `json:"component"`
}

// logLine is one raw line with its parsed form, when it parsed.
type logLine struct {
	raw    string
	entry  logEntry
	parsed bool
}

func runLogs(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath := filepath.Join(getLogDir(app.Config.Logging.LogDir), logging.LogFileName)

	lines, err := readLogLines(logPath)
	if err != nil {
		return err
	}
	sessions := collectSessions(lines)

	// List sessions if no argument provided
	if len(args) == 0 {
		return listSessions(sessions, app.Theme)
	}

	session, err := findSession(sessions, args[0])
	if err != nil {
		return err
	}

	if logsFollow {
		return tailSession(logPath, session.SessionID, app.Theme)
	}

	for _, line := range lastSessionLines(lines, session.SessionID, logsLines) {
		fmt.Println(colorizeLogLine(line, app.Theme))
	}
	return nil
}

// getLogDir returns the log directory path.
func getLogDir(configured string) string {
	if configured != "" {
		return configured
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		// Fallback to XDG default
		stateDir := os.Getenv("XDG_STATE_HOME")
		if stateDir == "" {
			home, _ := os.UserHomeDir()
			stateDir = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateDir, "palette", "logs")
	}
	return logDir
}

// readLogLines reads every line of the log file. A missing file is empty.
func readLogLines(logPath string) (lines []logLine, retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLine)
	for scanner.Scan() {
		lines = append(lines, parseLogLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return lines, nil
}

func parseLogLine(raw string) logLine {
	line := logLine{raw: raw}
	if err := json.Unmarshal([]byte(raw), &line.entry); err == nil {
		line.parsed = true
	}
	return line
}

// collectSessions groups lines by session id, newest session first.
func collectSessions(lines []logLine) []SessionInfo {
	byID := make(map[string]*SessionInfo)
	var order []string

	for _, line := range lines {
		id := line.entry.Session
		if !line.parsed || id == "" {
			continue
		}
		s, ok := byID[id]
		if !ok {
			s = &SessionInfo{SessionID: id, ShortID: logging.ShortSessionID(id), Component: line.entry.Component}
			byID[id] = s
			order = append(order, id)
		}
		s.Lines++
		if t, err := time.Parse(time.RFC3339, line.entry.Time); err == nil {
			if s.StartedAt.IsZero() || t.Before(s.StartedAt) {
				s.StartedAt = t
			}
			if t.After(s.LastAt) {
				s.LastAt = t
			}
		}
		if s.Component == "" {
			s.Component = line.entry.Component
		}
	}

	sessions := make([]SessionInfo, 0, len(order))
	for _, id := range order {
		sessions = append(sessions, *byID[id])
	}
	// Session ids start with their timestamp, so they sort chronologically.
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].SessionID > sessions[j].SessionID
	})
	return sessions
}

// listSessions displays all available log sessions.
func listSessions(sessions []SessionInfo, theme *styles.Theme) error {
	if len(sessions) == 0 {
		fmt.Println(theme.Subtle.Render("No sessions found. Logs appear once the browser starts the host."))
		return nil
	}

	// Header
	fmt.Println(theme.Title.Render("Sessions (newest first):"))
	fmt.Println()

	// Table format: ShortID | DateTime | Component | Lines
	for i := range sessions {
		s := &sessions[i]
		started := s.StartedAt
		if started.IsZero() {
			started, _ = logging.SessionStart(s.SessionID)
		}
		timeStr := "?"
		if !started.IsZero() {
			timeStr = started.Local().Format("2006-01-02 15:04:05")
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			theme.Highlight.Render(s.ShortID),
			theme.Subtle.Render(timeStr),
			s.Component,
			theme.Subtle.Render(fmt.Sprintf("(%d lines)", s.Lines)),
		)
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println(theme.Subtle.Render("Use 'palette logs <id>' to view a session"))
	return nil
}

// findSession finds a session by partial ID match.
func findSession(sessions []SessionInfo, query string) (*SessionInfo, error) {
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions found")
	}

	queryNormalized := strings.ToLower(strings.TrimSpace(query))

	// Try exact short ID match first.
	for i := range sessions {
		if strings.EqualFold(sessions[i].ShortID, queryNormalized) {
			return &sessions[i], nil
		}
	}

	// Try partial match on full session ID
	var matches []SessionInfo
	for i := range sessions {
		if strings.Contains(strings.ToLower(sessions[i].SessionID), queryNormalized) {
			matches = append(matches, sessions[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		// Multiple matches - show them and ask user to be more specific
		var ids []string
		for i := range matches {
			ids = append(ids, matches[i].ShortID)
		}
		return nil, fmt.Errorf("multiple sessions match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// lastSessionLines returns the last n raw lines of one session.
func lastSessionLines(lines []logLine, sessionID string, n int) []string {
	var out []string
	for _, line := range lines {
		if line.entry.Session == sessionID {
			out = append(out, line.raw)
		}
	}
	if n > 0 && len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}

// tailSession follows the log file, printing lines of one session.
func tailSession(logPath, sessionID string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Seek to end
	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Println()

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// No full line yet; keep partial data.
				pending += chunk
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return fmt.Errorf("read log file: %w", err)
		}

		pending += chunk
		for {
			idx := strings.IndexByte(pending, '\n')
			if idx == -1 {
				break
			}
			line := pending[:idx]
			pending = pending[idx+1:]
			if parseLogLine(line).entry.Session == sessionID {
				fmt.Println(colorizeLogLine(line, theme))
			}
		}
	}
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	// Try to parse as JSON
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// Fallback to pattern matching for non-JSON logs
	switch {
	case containsAny(line, "ERR", "ERROR", "error"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "WARN", "warn"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "DEBUG", "debug"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	// Parse time if present
	timeStr := ""
	if entry.Time != "" {
		if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
			timeStr = t.Format("15:04:05")
		} else {
			timeStr = entry.Time
		}
	}

	// Level styling
	var levelStr string
	switch entry.Level {
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, entry.Message)
}

// containsAny checks if s contains any of the substrings.
func containsAny(s string, substrs ...string) bool {
	sLower := strings.ToLower(s)
	for _, substr := range substrs {
		if strings.Contains(sLower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}

// logsClearCmd removes rotated log files.
var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear old log files",
	Long: `Remove rotated log files.

By default, removes backups older than the configured max_age (default 7 days).
Use --all to remove every backup and truncate the current log.`,
	RunE: runLogsClear,
}

func init() {
	logsCmd.AddCommand(logsClearCmd)
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all log files")
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// Get MaxAge from config (default 7 days)
	maxAge := 7
	if app.Config.Logging.MaxAge > 0 {
		maxAge = app.Config.Logging.MaxAge
	}

	logDir := getLogDir(app.Config.Logging.LogDir)
	removed, err := clearLogs(logDir, time.Now().AddDate(0, 0, -maxAge), logsClearAll)
	if err != nil {
		return err
	}

	for _, name := range removed {
		fmt.Printf("%s %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), name)
	}

	if len(removed) == 0 {
		fmt.Println(app.Theme.Subtle.Render("No logs older than " + fmt.Sprintf("%d days", maxAge)))
	} else {
		fmt.Printf("\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d file(s)", len(removed))))
	}

	return nil
}

// clearLogs removes backups modified before cutoff, or every log file with all.
// It returns the names of the removed or truncated files.
func clearLogs(logDir string, cutoff time.Time, all bool) ([]string, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var removed []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logging.LogFileName) {
			continue
		}

		path := filepath.Join(logDir, name)
		if name == logging.LogFileName {
			// The current file may be open by a running host.
			if all {
				if err := os.Truncate(path, 0); err != nil {
					return removed, fmt.Errorf("truncate log file: %w", err)
				}
				removed = append(removed, name)
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !all && !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("remove log file: %w", err)
		}
		removed = append(removed, name)
	}
	return removed, nil
}
