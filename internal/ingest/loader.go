package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/shared"
)

// loadedPassword is the placeholder credential assigned to bulk-loaded
// users; real credentials never appear in snapshot files.
const loadedPassword = "default_password"

// Result aggregates loaded and errored record counts across a load.
type Result struct {
	Loaded int
	Errors int
}

func (r *Result) merge(other Result) {
	r.Loaded += other.Loaded
	r.Errors += other.Errors
}

// Loader runs the format parsers over the configured sources in a fixed
// order: the JSON source fully, then the XML source. The order makes the
// parsers' duplicate policies deterministic.
type Loader struct {
	log  *log.Logger
	json *JSONParser
	xml  *XMLParser
}

// NewLoader creates a Loader with both parsers sharing logger.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Loader{
		log:  logger,
		json: NewJSONParser(logger),
		xml:  NewXMLParser(logger),
	}
}

// Load reads both sources into lib and aggregates their counts.
//
// Each path is independently optional: an empty path or a missing file is
// skipped and contributes nothing to either counter. A malformed source
// aborts that source only; the other source still runs. The first fatal
// error is returned alongside the counts accumulated by whichever sources
// succeeded.
func (l *Loader) Load(lib *library.Library, jsonPath, xmlPath string) (Result, error) {
	var out Result
	var firstErr error

	if data, ok := l.readSource(jsonPath); ok {
		res, err := l.json.Parse(lib, data)
		out.merge(res)
		if err != nil {
			firstErr = fmt.Errorf("loading %s: %w", jsonPath, err)
			l.log.Error("failed to load JSON source", "path", jsonPath, "err", err)
		} else {
			l.log.Info("loaded JSON source", "path", jsonPath, "loaded", res.Loaded, "errors", res.Errors)
		}
	}

	if data, ok := l.readSource(xmlPath); ok {
		res, err := l.xml.Parse(lib, data)
		out.merge(res)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("loading %s: %w", xmlPath, err)
			}
			l.log.Error("failed to load XML source", "path", xmlPath, "err", err)
		} else {
			l.log.Info("loaded XML source", "path", xmlPath, "loaded", res.Loaded, "errors", res.Errors)
		}
	}

	return out, firstErr
}

// readSource reads an optional source file. A missing file is a skip, not
// an error; any other read failure is logged and also skipped.
func (l *Loader) readSource(path string) ([]byte, bool) {
	if path == "" {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Debug("source file absent, skipping", "path", path)
		} else {
			l.log.Warn("source file unreadable, skipping", "path", path, "err", err)
		}
		return nil, false
	}
	return data, true
}
