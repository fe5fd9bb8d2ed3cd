package main

import (
	"os"

	"github.com/AntonioJCosta/minish/internal/adapters/linereader"
	"github.com/AntonioJCosta/minish/internal/adapters/oscommand"
	"github.com/AntonioJCosta/minish/internal/adapters/osenv"
	"github.com/AntonioJCosta/minish/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	deps := cli.Dependencies{
		Env:       osenv.NewOSEnvironment(),
		Launcher:  oscommand.NewOSProcessLauncher(),
		NewReader: linereader.NewDefault,
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
	}

	rootCmd := cli.NewRootCommand(Version, deps)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
