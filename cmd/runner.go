package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/export"
	"github.com/soundvault/soundvault/internal/ingest"
	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	lib        *library.Library
	service    *library.Service
	loader     *ingest.Loader
	exporter   *export.Exporter
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Library    *library.Library
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Library == nil {
		opts.Library = library.New()
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		lib:        opts.Library,
		service:    library.NewService(opts.Library),
		loader:     ingest.NewLoader(opts.Logger),
		exporter:   export.NewExporter(opts.Logger, opts.Config.Export.Pretty),
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, loadCommand, exportCommand, backupCommand, statsCommand,
		searchCommand, userCommand, playlistCommand, scanCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadCatalog reads the configured snapshot sources into the runner's
// library. Missing sources are skipped; a malformed source surfaces as an
// error after the other source has run.
func (r *Runner) loadCatalog() (ingest.Result, error) {
	return r.loader.Load(r.lib, r.config.Data.JSONPath, r.config.Data.XMLPath)
}

// saveSnapshot writes the catalog back to the configured JSON source so the
// next invocation sees the mutation. A blank json_path disables persistence.
func (r *Runner) saveSnapshot() error {
	if r.config.Data.JSONPath == "" {
		r.logger.Debug("no json_path configured, skipping snapshot save")
		return nil
	}
	if err := r.exporter.WriteJSON(r.lib, r.config.Data.JSONPath); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	r.logger.Info("snapshot saved", "path", r.config.Data.JSONPath)
	return nil
}

// login authenticates against the --email and --password flags shared by the
// commands that need an acting user.
func (r *Runner) login(cmd *cli.Command) (*library.Session, error) {
	email := cmd.String("email")
	password := cmd.String("password")
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: --email and --password are required", shared.ErrMissingArgument)
	}
	return r.service.Login(email, password)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
