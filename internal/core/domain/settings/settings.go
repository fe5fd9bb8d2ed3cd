/*
Package settings defines the interpreter's user-tunable configuration.
*/
package settings

import "fmt"

const (
	DefaultHistorySize  = 10
	DefaultMaxLineBytes = 1023
	DefaultMaxArgs      = 64
	DefaultPromptName   = "minish"
	DefaultLogLevel     = "info"
)

// Settings is loaded from the YAML config file and overridden by flags.
type Settings struct {
	HistorySize  int    `yaml:"history_size"`
	MaxLineBytes int    `yaml:"max_line_bytes"`
	MaxArgs      int    `yaml:"max_args"`
	PromptName   string `yaml:"prompt_name"`
	Color        bool   `yaml:"color"`
	LogFile      string `yaml:"log_file"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Settings {
	return Settings{
		HistorySize:  DefaultHistorySize,
		MaxLineBytes: DefaultMaxLineBytes,
		MaxArgs:      DefaultMaxArgs,
		PromptName:   DefaultPromptName,
		Color:        true,
		LogLevel:     DefaultLogLevel,
	}
}

// Validate checks that the numeric limits are usable.
func (s Settings) Validate() error {
	if s.HistorySize < 1 {
		return fmt.Errorf("history_size must be at least 1, got %d", s.HistorySize)
	}
	if s.MaxLineBytes < 1 {
		return fmt.Errorf("max_line_bytes must be at least 1, got %d", s.MaxLineBytes)
	}
	// One slot is always reserved for the end-of-arguments marker.
	if s.MaxArgs < 2 {
		return fmt.Errorf("max_args must be at least 2, got %d", s.MaxArgs)
	}
	return nil
}
