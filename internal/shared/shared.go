// package shared defines shared helpers for the soundvault catalog service
package shared

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}

// MarshalJSON marshals data to JSON, optionally indented with two spaces.
func MarshalJSON(data any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// FormatDuration renders a whole-second duration as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// VisibilityString returns "Public" or "Private" for a playlist visibility flag.
func VisibilityString(public bool) string {
	if public {
		return "Public"
	}
	return "Private"
}

// NormalizeTrackKey builds a case-insensitive, whitespace-collapsed key for
// matching a track by title and artist name.
func NormalizeTrackKey(title, artist string) string {
	return normalizePart(title) + "|" + normalizePart(artist)
}

func normalizePart(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
