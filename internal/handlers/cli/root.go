package cli

import (
	"fmt"
	"io"

	settingsadapter "github.com/AntonioJCosta/minish/internal/adapters/settings"
	"github.com/AntonioJCosta/minish/internal/adapters/logging"
	"github.com/AntonioJCosta/minish/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/minish/internal/core/domain/settings"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/core/services/builtins"
	"github.com/AntonioJCosta/minish/internal/handlers/repl"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/AntonioJCosta/minish/internal/repositories/history"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Dependencies are the adapters that do not depend on user settings.
type Dependencies struct {
	Env       ports.Environment
	Launcher  ports.ProcessLauncher
	NewReader func() (ports.LineReader, error)
	Out       io.Writer
	ErrOut    io.Writer
}

type rootFlags struct {
	configPath  string
	historySize int
	noColor     bool
	logFile     string
	logLevel    string
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "minish",
		Short: "minish is a minimal interactive command interpreter.",
		Long: `minish reads commands line by line, runs the builtins cd, help,
history and exit itself, and launches everything else as a child process.
The last commands typed are kept in a small circular history.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Env == nil || deps.Launcher == nil || deps.NewReader == nil {
				return fmt.Errorf("interpreter dependencies not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, flags, deps)
		},
	}

	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to the settings file (default $HOME/.minish.yaml).")
	rootCmd.Flags().IntVar(&flags.historySize, "history-size", settings.DefaultHistorySize, "Number of commands kept in history.")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output.")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write a JSON event log to this file.")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", settings.DefaultLogLevel, "Event log level (debug, info, warn, error).")

	return rootCmd
}

// runShell resolves settings, builds the interpreter and runs it to completion.
func runShell(cmd *cobra.Command, flags rootFlags, deps Dependencies) error {
	cfg, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}
	ui.SetColorEnabled(cfg.Color)

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	hb, err := history.NewRingBuffer(cfg.HistorySize, cfg.MaxLineBytes)
	if err != nil {
		return fmt.Errorf("could not create history: %w", err)
	}

	reader, err := deps.NewReader()
	if err != nil {
		return fmt.Errorf("could not open input: %w", err)
	}
	defer reader.Close()

	logger.Info("session started",
		zap.Int("history_size", hb.Capacity()),
		zap.Int("max_args", cfg.MaxArgs),
		zap.Int("max_line_bytes", cfg.MaxLineBytes))

	loop := repl.NewLoop(repl.Deps{
		Reader:     reader,
		History:    hb,
		Tokenizer:  tokenizer.NewWhitespaceTokenizer(cfg.MaxArgs),
		Dispatcher: builtins.NewService(hb, deps.Env, deps.Out, deps.ErrOut),
		Launcher:   deps.Launcher,
		Env:        deps.Env,
		Out:        deps.Out,
		ErrOut:     deps.ErrOut,
		Name:       cfg.PromptName,
		Logger:     logger,
	})
	if err := loop.Run(); err != nil {
		return err
	}
	logger.Info("session ended", zap.Int("commands", hb.Total()))
	return nil
}

// loadSettings reads the settings file and applies explicitly set flags on top.
func loadSettings(cmd *cobra.Command, flags rootFlags) (settings.Settings, error) {
	path := flags.configPath
	if path == "" {
		defaultPath, err := settingsadapter.DefaultPath()
		if err != nil {
			return settings.Settings{}, fmt.Errorf("could not locate settings file: %w", err)
		}
		path = defaultPath
	}

	provider, err := settingsadapter.NewYAMLProvider(path)
	if err != nil {
		return settings.Settings{}, err
	}
	cfg, err := provider.LoadSettings()
	if err != nil {
		return settings.Settings{}, fmt.Errorf("could not load settings: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed("history-size") {
		cfg.HistorySize = flags.historySize
	}
	if fs.Changed("no-color") {
		cfg.Color = !flags.noColor
	}
	if fs.Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return settings.Settings{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
