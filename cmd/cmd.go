// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// credentialFlags are shared by commands that act as a specific user.
func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "email",
			Usage:    "Account email",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Usage:    "Account password",
			Required: true,
		},
	}
}

// saveFlag controls writing the catalog back to the JSON snapshot.
func saveFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "save",
		Usage: "Persist the catalog back to the JSON snapshot",
		Value: true,
	}
}

// setupCommand initializes a config file from the embedded template.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a starter configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// loadCommand reads the configured snapshot sources into the catalog.
func loadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "Load the catalog from the configured JSON & XML snapshots",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output load counts as JSON",
			},
		},
		Action: r.Load,
	}
}

// exportCommand writes the catalog out in a single format.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the catalog to JSON or XML",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "format",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
			},
		},
		Action: r.Export,
	}
}

// backupCommand runs the timestamped dual-format backup.
func backupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "backup",
		Usage: "Write timestamped JSON & XML backups of the catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Backup directory (defaults to the configured one)",
			},
		},
		Action: r.Backup,
	}
}

// statsCommand prints catalog statistics.
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show catalog statistics",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Stats,
	}
}

// searchCommand searches tracks by title or artist.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search tracks by title or artist name",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Search,
	}
}

// userCommand handles account operations
func userCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Account operations",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Register a new account",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Usage:    "Display name",
						Required: true,
					},
					saveFlag(),
				}, credentialFlags()...),
				Action: r.UserRegister,
			},
			{
				Name:   "login",
				Usage:  "Verify account credentials",
				Flags:  credentialFlags(),
				Action: r.UserLogin,
			},
			{
				Name:   "upgrade",
				Usage:  "Upgrade the account to premium",
				Flags:  append([]cli.Flag{saveFlag()}, credentialFlags()...),
				Action: r.UserUpgrade,
			},
		},
	}
}

// playlistCommand handles playlist operations
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a playlist owned by the authenticated user",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "description",
						Usage: "Playlist description",
					},
					&cli.BoolFlag{
						Name:  "public",
						Usage: "Make the playlist public",
						Value: true,
					},
					saveFlag(),
				}, credentialFlags()...),
				Action: r.PlaylistCreate,
			},
			{
				Name:  "add",
				Usage: "Append a track to a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "playlist-id",
						Usage:    "Playlist to modify",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "track-id",
						Usage:    "Track to append",
						Required: true,
					},
					saveFlag(),
				},
				Action: r.PlaylistAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a track from a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "playlist-id",
						Usage:    "Playlist to modify",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "track-id",
						Usage:    "Track to remove",
						Required: true,
					},
					saveFlag(),
				},
				Action: r.PlaylistRemove,
			},
			{
				Name:  "show",
				Usage: "Print a playlist and its tracks",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:  "export",
				Usage: "Render a playlist to CSV, Markdown or plain text",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: csv, markdown or txt",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (directory when --all)",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Export every playlist concurrently",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent export workers with --all",
						Value: 5,
					},
				},
				Action: r.PlaylistExport,
			},
		},
	}
}

// scanCommand imports tracks from tagged files on disk.
func scanCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "Scan a directory of .mp3 files into the catalog",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "dir",
			},
		},
		Flags: []cli.Flag{
			saveFlag(),
		},
		Action: r.Scan,
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive catalog browser",
		Action:  r.TUI,
	}
}
