package ui

import "fmt"

// UnknownDir is shown in the prompt when the working directory cannot be read.
const UnknownDir = "?"

// Prompt renders "[#<count> <cwd>] <name>> ".
func Prompt(count int, cwd, name string) string {
	if cwd == "" {
		cwd = UnknownDir
	}
	return fmt.Sprintf("[%s %s] %s> ",
		PromptCountColor(fmt.Sprintf("#%d", count)),
		PromptDirColor(cwd),
		PromptNameColor(name))
}
