package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/translint/translint/api"
	"github.com/translint/translint/pkg/config"
)

type InitArgs struct {
	ConfigPath string
	Force      bool
}

func NewInitCmd() *cobra.Command {
	ia := &InitArgs{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration file and its JSON schema.

Writes to the user-level config directory unless --config names a path.
Existing files are backed up before being replaced when --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return initConfig(ia)
		},
	}

	cmd.Flags().StringVar(&ia.ConfigPath, "config", "", "Path to write the configuration file")
	cmd.Flags().BoolVar(&ia.Force, "force", false, "Overwrite an existing configuration file")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}

	bindEnvVars(cmd)

	return cmd
}

func initConfig(ia *InitArgs) error {
	configPath := ia.ConfigPath
	if configPath == "" {
		configPath = config.GetPath()
	}

	err := api.WriteDefaultFile(configPath, config.DefaultYAML(), ia.Force, "config")
	if err != nil {
		return fmt.Errorf("write default config: %w", err)
	}

	slog.Info("wrote configuration", slog.String("path", configPath))

	return nil
}
