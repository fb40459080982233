package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rickdex/internal/api"
	"rickdex/internal/config"
	"rickdex/internal/logging"
)

// Group of the non-interactive commands
var queryGroup = &cobra.Group{
	ID:    "query",
	Title: "Query commands",
}

// env is what every command needs, built from the persistent flags
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	client *api.Client
}

type rootOptions struct {
	configPath string
	apiURL     string
	logLevel   string
	logFile    string
}

// NewRootCommand builds the command tree. Running it without a subcommand
// opens the browser.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "rickdex",
		Short:         "Browse Rick and Morty characters",
		Long:          `Search, page through and filter characters of the Rick and Morty API from the terminal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()
			return runTUI(cmd.Context(), e)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath(), "path to the config file")
	flags.StringVar(&opts.apiURL, "api-url", "", "API base URL (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "log file, empty to disable (overrides config)")

	cmd.AddGroup(queryGroup)
	cmd.AddCommand(
		newSearchCommand(opts),
		newSuggestCommand(opts),
		newOptionsCommand(opts),
		newConfigCommand(opts),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *rootOptions) setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	o.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("api", cfg.API.BaseURL))

	return &env{cfg: cfg, logger: logger, client: client}, nil
}

// applyFlags copies the persistent flags the user set onto cfg
func (o *rootOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.API.BaseURL = o.apiURL
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
}
