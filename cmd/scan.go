package main

import (
	"context"
	"fmt"

	"github.com/soundvault/soundvault/internal/scan"
	"github.com/soundvault/soundvault/internal/shared"
	"github.com/urfave/cli/v3"
)

// Scan imports tagged .mp3 files from a directory into the catalog.
func (r *Runner) Scan(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("dir")
	if dir == "" {
		dir = r.config.Library.MusicDir
	}
	if dir == "" {
		return fmt.Errorf("%w: pass a directory or set library.music_dir", shared.ErrMissingArgument)
	}

	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	res, err := scan.NewScanner(r.lib, r.logger).Scan(dir)
	if err != nil {
		return err
	}

	if cmd.Bool("save") {
		if err := r.saveSnapshot(); err != nil {
			return err
		}
	}

	r.writePlain("Scanned %s: %d tracks added, %d skipped\n", dir, res.Loaded, res.Skipped)
	return nil
}
