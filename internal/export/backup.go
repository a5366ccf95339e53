package export

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/shared"
)

// DefaultBackupDir is where backups land when no directory is configured.
const DefaultBackupDir = "backups"

// backupTokenLayout gives the shared timestamp token one-second resolution.
const backupTokenLayout = "20060102_150405"

// BackupResult reports the files produced by one backup invocation.
type BackupResult struct {
	Token    string
	JSONPath string
	XMLPath  string
}

// Backup exports the catalog to both formats at once.
//
// One timestamp token is computed and embedded in both filenames. The two
// exports run concurrently; if either fails, any partial product is removed
// and the operation reports failure. A token collision with an existing
// backup is detected and refused rather than silently overwritten.
func (e *Exporter) Backup(lib *library.Library, dir string) (*BackupResult, error) {
	if dir == "" {
		dir = DefaultBackupDir
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	token := e.now().Format(backupTokenLayout)
	result := &BackupResult{
		Token:    token,
		JSONPath: filepath.Join(dir, fmt.Sprintf("music_backup_%s.json", token)),
		XMLPath:  filepath.Join(dir, fmt.Sprintf("music_backup_%s.xml", token)),
	}

	for _, path := range []string{result.JSONPath, result.XMLPath} {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%w: %s", shared.ErrBackupConflict, path)
		}
	}

	var g errgroup.Group
	g.Go(func() error { return e.WriteJSON(lib, result.JSONPath) })
	g.Go(func() error { return e.WriteXML(lib, result.XMLPath) })

	if err := g.Wait(); err != nil {
		// No partial-backup state is retained as valid.
		os.Remove(result.JSONPath)
		os.Remove(result.XMLPath)
		return nil, fmt.Errorf("backup failed: %w", err)
	}

	e.log.Info("backup created", "token", token, "json", result.JSONPath, "xml", result.XMLPath)
	return result, nil
}
