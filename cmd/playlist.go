package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/soundvault/soundvault/internal/formatter"
	"github.com/soundvault/soundvault/internal/shared"
	"github.com/soundvault/soundvault/internal/tasks"
	"github.com/urfave/cli/v3"
)

// PlaylistCreate creates a playlist owned by the authenticated user.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: playlist name argument is required", shared.ErrMissingArgument)
	}

	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	sess, err := r.login(cmd)
	if err != nil {
		return err
	}

	playlist, err := r.service.CreatePlaylist(sess, name, cmd.String("description"), cmd.Bool("public"))
	if err != nil {
		return err
	}
	r.logger.Info("playlist created", "id", playlist.ID, "name", playlist.Name)

	if cmd.Bool("save") {
		if err := r.saveSnapshot(); err != nil {
			return err
		}
	}

	r.writePlain("✓ Created playlist %s (%s)\n", playlist.Name, playlist.ID)
	return nil
}

// PlaylistAdd appends a track to a playlist.
func (r *Runner) PlaylistAdd(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	playlist, ok := r.lib.Playlist(cmd.String("playlist-id"))
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, cmd.String("playlist-id"))
	}
	track, ok := r.lib.Track(cmd.String("track-id"))
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, cmd.String("track-id"))
	}

	playlist.AddTrack(track)

	if cmd.Bool("save") {
		if err := r.saveSnapshot(); err != nil {
			return err
		}
	}

	r.writePlain("✓ Added %s to %s (%d tracks)\n", track.Title, playlist.Name, len(playlist.Entries))
	return nil
}

// PlaylistRemove removes a track from a playlist, renumbering positions.
func (r *Runner) PlaylistRemove(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	playlist, ok := r.lib.Playlist(cmd.String("playlist-id"))
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, cmd.String("playlist-id"))
	}

	if err := playlist.RemoveTrack(cmd.String("track-id")); err != nil {
		return err
	}

	if cmd.Bool("save") {
		if err := r.saveSnapshot(); err != nil {
			return err
		}
	}

	r.writePlain("✓ Removed %s from %s (%d tracks)\n", cmd.String("track-id"), playlist.Name, len(playlist.Entries))
	return nil
}

// PlaylistShow prints one playlist with its ordered tracks.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: playlist id argument is required", shared.ErrMissingArgument)
	}

	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	playlist, ok := r.lib.Playlist(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	r.writePlainHeader(playlist.Name)
	if playlist.Description != "" {
		r.writePlain("%s\n", playlist.Description)
	}
	if playlist.Owner != nil {
		r.writePlain("Owner: %s\n", playlist.Owner.Username)
	}
	r.writePlain("Visibility: %s\n\n", shared.VisibilityString(playlist.Public))

	for _, entry := range playlist.Entries {
		r.writePlain("%2d. %s - %s [%s]\n",
			entry.Position, entry.Track.Artist.Name, entry.Track.Title,
			shared.FormatDuration(entry.Track.Duration))
	}
	return nil
}

// PlaylistExport renders one playlist to CSV, Markdown or plain text, or
// every playlist concurrently with --all.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" && !cmd.Bool("all") {
		return fmt.Errorf("%w: playlist id argument is required", shared.ErrMissingArgument)
	}

	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	if cmd.Bool("all") {
		return r.exportAllPlaylists(ctx, cmd)
	}

	playlist, ok := r.lib.Playlist(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	format := cmd.String("format")
	output := cmd.String("output")
	if output == "" {
		name := strings.ToLower(strings.Join(strings.Fields(playlist.Name), "_"))
		output = filepath.Join(r.config.Export.Dir, name+"."+format)
	}

	if err := formatter.WriteExport(playlist, format, output); err != nil {
		return err
	}

	r.writePlain("Playlist exported to %s\n", output)
	return nil
}

// exportAllPlaylists renders the full playlist collection through the bulk
// export worker pool.
func (r *Runner) exportAllPlaylists(ctx context.Context, cmd *cli.Command) error {
	outputDir := cmd.String("output")
	if outputDir == "" {
		outputDir = filepath.Join(r.config.Export.Dir, "playlists")
	}

	engine := tasks.NewEngine(r.logger)
	result, err := engine.BulkExport(ctx, nil, r.lib.Playlists(), tasks.BulkExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  outputDir,
		NumWorkers: int(cmd.Int("workers")),
	})
	if err != nil {
		return err
	}

	r.writePlain("Exported %d/%d playlists to %s\n", result.SuccessfulExports, result.TotalPlaylists, result.OutputDirectory)
	for _, res := range result.Results {
		if !res.Success {
			r.writePlain("  ✗ %s: %s\n", res.PlaylistName, res.ErrorMessage)
		}
	}
	r.writePlain("Manifest: %s\n", result.ManifestPath)
	return nil
}
