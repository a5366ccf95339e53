package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/formatter"
	"github.com/soundvault/soundvault/internal/models"
	"github.com/soundvault/soundvault/internal/shared"
)

// Engine runs long-running catalog operations.
type Engine struct {
	log *log.Logger
}

// NewEngine creates an Engine logging to logger.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Engine{log: logger}
}

// BulkExportOpts contains configuration for bulk playlist exports.
type BulkExportOpts struct {
	Format     string // Export format: csv, markdown, txt
	OutputDir  string // Base output directory (default: playlist_export_{epoch})
	NumWorkers int    // Concurrent workers (default: 5)
}

// PlaylistExportJob carries one playlist through the worker pool.
type PlaylistExportJob struct {
	Playlist *models.Playlist
}

// PlaylistExportResult records the outcome for a single playlist.
type PlaylistExportResult struct {
	PlaylistID   string `json:"playlist_id"`
	PlaylistName string `json:"playlist_name"`
	File         string `json:"file,omitempty"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`

	Error error `json:"-"`
}

// BulkExportResult summarizes a completed bulk export.
type BulkExportResult struct {
	TotalPlaylists    int                    `json:"total_playlists"`
	SuccessfulExports int                    `json:"successful_exports"`
	FailedExports     int                    `json:"failed_exports"`
	Format            string                 `json:"format"`
	OutputDirectory   string                 `json:"output_directory"`
	ManifestPath      string                 `json:"-"`
	Results           []PlaylistExportResult `json:"results"`
}

// BulkExport renders multiple playlists to disk concurrently.
//
// This method implements a worker pool pattern: playlists are queued on a
// jobs channel, a fixed set of workers renders them through the formatter,
// and a manifest file summarizing the results is written last. Partial
// failures are recorded per playlist and never abort the batch.
func (e *Engine) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	playlists []*models.Playlist,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("playlist_export_%d", time.Now().Unix())
	}
	if opts.Format == "" {
		opts.Format = "csv"
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalPlaylists:  len(playlists),
		Format:          opts.Format,
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, len(playlists)),
	}

	jobs := make(chan PlaylistExportJob, len(playlists))
	results := make(chan PlaylistExportResult, len(playlists))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		for i, playlist := range playlists {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			jobs <- PlaylistExportJob{Playlist: playlist}
			e.sendProgress(prog, exportingPlaylistUpdate(i+1, len(playlists), playlist.Name))
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, len(playlists), res.PlaylistName))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, len(playlists), res.PlaylistName, res.Error))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := e.writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	e.sendProgress(prog, manifestUpdate(manifestPath))
	return result, nil
}

// exportWorker is a worker goroutine that renders playlists from the jobs channel.
func (e *Engine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan PlaylistExportJob,
	results chan<- PlaylistExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- e.exportSinglePlaylist(job, opts)
	}
}

// exportSinglePlaylist renders a single playlist in the configured format.
func (e *Engine) exportSinglePlaylist(j PlaylistExportJob, opts BulkExportOpts) PlaylistExportResult {
	result := PlaylistExportResult{
		PlaylistID:   j.Playlist.ID,
		PlaylistName: j.Playlist.Name,
	}

	path := filepath.Join(opts.OutputDir, j.Playlist.ID+"."+formatExtension(opts.Format))
	if err := formatter.WriteExport(j.Playlist, opts.Format, path); err != nil {
		result.Error = err
		result.ErrorMessage = err.Error()
		return result
	}

	result.File = path
	result.Success = true
	return result
}

func (e *Engine) writeManifest(result *BulkExportResult, path string) error {
	data, err := shared.MarshalJSON(result, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// sendProgress delivers an update without blocking; a nil or full channel
// drops the update.
func (e *Engine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}

func formatExtension(format string) string {
	switch format {
	case "markdown", "md":
		return "md"
	case "txt", "text":
		return "txt"
	default:
		return format
	}
}
