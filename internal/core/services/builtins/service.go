package builtins

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/olekukonko/tablewriter"
)

// Help describes one builtin for the help listing.
type Help struct {
	Usage string
	Desc  string
}

// Builtins lists the supported builtins in the order help prints them.
var Builtins = []Help{
	{Usage: "help", Desc: "Show this list of builtins."},
	{Usage: "cd [dir]", Desc: "Change directory (defaults to $HOME)."},
	{Usage: "history", Desc: "Show the most recent commands."},
	{Usage: "exit", Desc: "Leave the shell."},
}

type service struct {
	history ports.HistoryBuffer
	env     ports.Environment
	out     io.Writer
	errOut  io.Writer
}

// NewService creates a builtin dispatcher that prints to out and reports
// failures to errOut.
// It panics if any collaborator is nil.
func NewService(hb ports.HistoryBuffer, env ports.Environment, out, errOut io.Writer) ports.BuiltinDispatcher {
	if hb == nil {
		panic("history buffer cannot be nil")
	}
	if env == nil {
		panic("environment cannot be nil")
	}
	if out == nil || errOut == nil {
		panic("output writers cannot be nil")
	}
	return &service{history: hb, env: env, out: out, errOut: errOut}
}

// Dispatch runs args as a builtin when it names one. Builtins never fail the
// interpreter: errors are reported to errOut and the command counts as handled.
func (s *service) Dispatch(args []string) command.Outcome {
	if len(args) == 0 {
		return command.Handled
	}

	switch args[0] {
	case "exit":
		return command.Terminate
	case "cd":
		s.changeDir(args)
	case "help":
		s.printHelp()
	case "history":
		s.printHistory()
	default:
		return command.Delegate
	}
	return command.Handled
}

// changeDir must run in the interpreter's own process; a child's working
// directory never propagates back.
func (s *service) changeDir(args []string) {
	target := "."
	if len(args) >= 2 {
		target = args[1]
	} else if home, ok := s.env.LookupEnv("HOME"); ok {
		target = home
	}

	if err := s.env.Chdir(target); err != nil {
		fmt.Fprintf(s.errOut, "cd: %v\n", err)
	}
}

func (s *service) printHelp() {
	fmt.Fprintln(s.out, "Builtins:")
	table := tablewriter.NewWriter(s.out)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for _, b := range Builtins {
		table.Append([]string{b.Usage, b.Desc})
	}
	table.Render()
}

func (s *service) printHistory() {
	entries := s.history.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No history.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "%d  %s\n", e.Number, e.Command)
	}
}
