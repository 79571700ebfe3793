package logging

import (
	"time"

	"github.com/google/uuid"
)

// sessionTimeLayout prefixes every session id, so ids sort chronologically.
const sessionTimeLayout = "20060102_150405"

const shortIDLen = 4

// GenerateSessionID returns "<start time>_<4 hex>", e.g. 20261014_093012_a7b3.
func GenerateSessionID() string {
	return time.Now().Format(sessionTimeLayout) + "_" + uuid.NewString()[:shortIDLen]
}

// ShortSessionID returns the random suffix users type to pick a session.
func ShortSessionID(sessionID string) string {
	if len(sessionID) < shortIDLen {
		return sessionID
	}
	return sessionID[len(sessionID)-shortIDLen:]
}

// SessionStart parses the local start time encoded in a session id.
func SessionStart(sessionID string) (time.Time, bool) {
	if len(sessionID) < len(sessionTimeLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(sessionTimeLayout, sessionID[:len(sessionTimeLayout)], time.Local)
	return t, err == nil
}
