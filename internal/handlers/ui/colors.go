package ui

import "github.com/fatih/color"

// Diagnostic Colors
var (
	ErrorColor = color.New(color.FgRed).SprintFunc()
)

// Prompt Colors
var (
	PromptCountColor = color.New(color.FgYellow).SprintFunc()
	PromptDirColor   = color.New(color.FgBlue, color.Bold).SprintFunc()
	PromptNameColor  = color.New(color.FgMagenta).SprintFunc()
)

// SetColorEnabled turns colored output on or off for the whole process.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}
