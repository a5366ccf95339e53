package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/shared"
	"github.com/soundvault/soundvault/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive catalog browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	// Quiet the logger so log lines don't interfere with TUI rendering
	shared.SetLogLevel(r.logger, log.ErrorLevel)

	model := ui.NewModel(r.lib)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
