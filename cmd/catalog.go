package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/soundvault/soundvault/internal/shared"
	"github.com/urfave/cli/v3"
)

// Load reads the configured snapshot sources and reports the counts.
func (r *Runner) Load(ctx context.Context, cmd *cli.Command) error {
	res, err := r.loadCatalog()

	if cmd.Bool("json") {
		if werr := r.writeJSON(map[string]int{"loaded": res.Loaded, "errors": res.Errors}, r.config.Export.Pretty); werr != nil {
			return werr
		}
	} else {
		r.writePlain("Loaded %d records (%d errors)\n", res.Loaded, res.Errors)
	}

	return err
}

// Export writes the catalog to a single file in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format := cmd.StringArg("format")
	if format == "" {
		return fmt.Errorf("%w: format argument (json or xml) is required", shared.ErrMissingArgument)
	}

	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	output := cmd.String("output")
	if output == "" {
		output = filepath.Join(r.config.Export.Dir, "music_catalog."+format)
	}

	switch format {
	case "json":
		if err := r.exporter.WriteJSON(r.lib, output); err != nil {
			return err
		}
	case "xml":
		if err := r.exporter.WriteXML(r.lib, output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	r.writePlain("Catalog exported to %s\n", output)
	return nil
}

// Backup writes timestamped JSON & XML backups of the catalog.
func (r *Runner) Backup(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	dir := cmd.String("dir")
	if dir == "" {
		dir = r.config.Backup.Dir
	}

	result, err := r.exporter.Backup(r.lib, dir)
	if err != nil {
		return err
	}

	r.writePlain("Backup %s complete\n", result.Token)
	r.writePlain("  JSON: %s\n", result.JSONPath)
	r.writePlain("  XML:  %s\n", result.XMLPath)
	return nil
}

// Stats prints the catalog statistics block.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	stats := r.service.Statistics()

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Catalog Statistics")
	r.writePlain("Users:     %d\n", stats.Users)
	r.writePlain("Artists:   %d\n", stats.Artists)
	r.writePlain("Tracks:    %d\n", stats.Tracks)
	r.writePlain("Albums:    %d\n", stats.Albums)
	r.writePlain("Playlists: %d\n", stats.Playlists)
	r.writePlain("Streams:   %d\n", stats.TotalStreams)
	return nil
}

// Search finds tracks whose title or artist matches the query.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query is required", shared.ErrMissingArgument)
	}

	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	results := r.service.SearchTracks(query)

	if cmd.Bool("json") {
		type hit struct {
			ID       string `json:"track_id"`
			Title    string `json:"title"`
			Artist   string `json:"artist"`
			Duration int    `json:"duration"`
		}
		hits := make([]hit, 0, len(results))
		for _, track := range results {
			hits = append(hits, hit{track.ID, track.Title, track.Artist.Name, track.Duration})
		}
		return r.writeJSON(hits, r.config.Export.Pretty)
	}

	if len(results) == 0 {
		r.writePlain("No tracks matched %q\n", query)
		return nil
	}

	r.writePlain("Found %d tracks:\n", len(results))
	for _, track := range results {
		r.writePlain("  %s - %s [%s]\n", track.Artist.Name, track.Title, shared.FormatDuration(track.Duration))
	}
	return nil
}
