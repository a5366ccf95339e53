package main

import (
	"context"
	"fmt"
	"os"

	"github.com/soundvault/soundvault/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates a starter config.toml from the embedded template.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	r.logger.Info("config file created", "path", configPath)

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load created config: %w", err)
	}
	r.config = config
	r.configPath = configPath

	r.writePlain("✓ Configuration written to %s\n", configPath)
	r.writePlainln("Next steps:")
	r.writePlain("1. Point data.json_path / data.xml_path at your snapshot files\n")
	r.writePlain("2. Run 'soundvault load' to check the sources parse cleanly\n")
	r.writePlain("3. Run 'soundvault stats' to see what was loaded\n")

	return nil
}
