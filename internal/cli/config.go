package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"colorsearch/internal/config"
	"colorsearch/internal/eventbus"
	"colorsearch/internal/logging"
)

func newConfigCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the colorsearch config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Long: `Writes a config file with default values. The path defaults to --config,
or $XDG_CONFIG_HOME/colorsearch/config.toml when neither is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if len(args) == 1 {
				path = args[0]
			}
			return runConfigInit(cmd, opts, path, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func runConfigInit(cmd *cobra.Command, opts *options, path string, force bool) error {
	logger, err := logging.New(opts.logFile, opts.debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	bus := eventbus.New(logger)
	defer bus.Close()
	subscribeLogging(bus, logger)

	svc := config.NewConfigServiceWithBus(path, bus)
	if _, err := os.Stat(svc.Path()); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", svc.Path())
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
	return nil
}
