// Package cli wires configuration, logging, the event bus and the lookup
// service into the colorsearch commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"colorsearch/internal/config"
	"colorsearch/internal/eventbus"
	"colorsearch/internal/logging"
	"colorsearch/internal/lookup"
	"colorsearch/internal/ui"
)

// ErrSearchFailed is returned by the search command after the failure
// message has been printed
var ErrSearchFailed = errors.New("search failed")

// options holds the flags shared by every command
type options struct {
	configPath  string
	apiURL      string
	fixtures    string
	debug       bool
	logFile     string
	noAltScreen bool
}

// session is everything a command needs once flags, files and environment
// have been resolved
type session struct {
	cfg    *config.Config
	path   string
	logger *zap.Logger
	bus    eventbus.EventBus
	lookup lookup.Service
}

func (s *session) Close() {
	if s.bus != nil {
		s.bus.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

// NewRootCommand builds the colorsearch command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "colorsearch",
		Short: "Look up favorite colors by first name",
		Long: `colorsearch is a terminal search form for the color lookup service.

Type a first name and press enter to list every match with its favorite
color. Run without arguments to start the interactive form.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/colorsearch/config.toml)")
	flags.StringVar(&opts.apiURL, "api-url", "", "base URL of the color service")
	flags.StringVar(&opts.fixtures, "fixtures", "", "answer searches from a TOML fixture file instead of the service")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (interactive mode defaults to "+logging.DefaultFile+")")
	root.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	root.AddCommand(newSearchCommand(opts))
	root.AddCommand(newConfigCommand(opts))

	return root
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	return execute(NewRootCommand(), os.Args[1:], os.Stderr)
}

func execute(cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrSearchFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func runInteractive(cmd *cobra.Command, opts *options) error {
	logPath := opts.logFile
	if !cmd.Flags().Changed("log-file") {
		logPath = logging.DefaultFile
	}

	sess, err := openSession(cmd, opts, logPath)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(ui.Options{
		Config:  sess.cfg,
		Lookup:  sess.lookup,
		Bus:     sess.bus,
		Logger:  sess.logger,
		Context: ctx,
	})
	defer model.Close()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if sess.cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	sess.logger.Info("starting interactive form",
		zap.String("config", sess.path),
		zap.String("base_url", sess.cfg.API.BaseURL),
		zap.Bool("fixtures", opts.fixtures != ""),
	)

	p := tea.NewProgram(model, programOpts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// openSession resolves configuration in order file, .env and environment,
// then flags, and builds the collaborators from it
func openSession(cmd *cobra.Command, opts *options, logPath string) (*session, error) {
	if err := config.LoadDotEnv("."); err != nil {
		return nil, err
	}

	svc := config.NewConfigService(opts.configPath)
	if cmd.Flags().Changed("config") {
		if _, err := os.Stat(svc.Path()); err != nil {
			return nil, fmt.Errorf("config file not found: %s", svc.Path())
		}
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}

	config.ApplyEnv(cfg, os.Getenv)
	applyFlags(cmd, opts, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logPath, cfg.Debug)
	if err != nil {
		return nil, err
	}

	bus := eventbus.New(logger)
	subscribeLogging(bus, logger)
	bus.Publish(eventbus.ConfigLoadedEvent{Path: svc.Path(), BaseURL: cfg.API.BaseURL})

	svcLookup, err := newLookup(cfg, opts, logger)
	if err != nil {
		bus.Close()
		return nil, err
	}

	return &session{
		cfg:    cfg,
		path:   svc.Path(),
		logger: logger,
		bus:    bus,
		lookup: svcLookup,
	}, nil
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.API.BaseURL = opts.apiURL
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("no-alt-screen") {
		cfg.UISettings.AltScreen = !opts.noAltScreen
	}
}

func newLookup(cfg *config.Config, opts *options, logger *zap.Logger) (lookup.Service, error) {
	if opts.fixtures != "" {
		svc, err := lookup.LoadFixtures(opts.fixtures)
		if err != nil {
			return nil, err
		}
		logger.Debug("using fixture lookup", zap.String("path", opts.fixtures))
		return svc, nil
	}

	return lookup.NewHTTPClient(lookup.HTTPOptions{
		BaseURL:    cfg.API.BaseURL,
		SearchPath: cfg.API.SearchPath,
		QueryParam: cfg.API.QueryParam,
		Timeout:    cfg.API.Timeout(),
		Logger:     logger,
	}), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
