package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"go.uber.org/zap"
)

// Deps holds the collaborators of a Loop.
type Deps struct {
	Reader     ports.LineReader
	History    ports.HistoryBuffer
	Tokenizer  ports.Tokenizer
	Dispatcher ports.BuiltinDispatcher
	Launcher   ports.ProcessLauncher
	Env        ports.Environment
	Out        io.Writer
	ErrOut     io.Writer
	Name       string      // shown in the prompt and diagnostics
	Logger     *zap.Logger // optional
}

/*
Loop is the interactive command cycle: prompt, read, record, tokenize,
dispatch and, for non-builtins, launch and wait. Exactly one command runs at a
time; the loop is blocked either on input or on a child, never on both.
*/
type Loop struct {
	deps Deps
	log  *zap.Logger
}

// NewLoop creates a Loop. It panics if a required collaborator is nil.
func NewLoop(d Deps) *Loop {
	switch {
	case d.Reader == nil:
		panic("line reader cannot be nil")
	case d.History == nil:
		panic("history buffer cannot be nil")
	case d.Tokenizer == nil:
		panic("tokenizer cannot be nil")
	case d.Dispatcher == nil:
		panic("dispatcher cannot be nil")
	case d.Launcher == nil:
		panic("launcher cannot be nil")
	case d.Env == nil:
		panic("environment cannot be nil")
	case d.Out == nil || d.ErrOut == nil:
		panic("output writers cannot be nil")
	}
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{deps: d, log: log}
}

// Run executes commands until exit or end of input. Failures of individual
// commands are reported and never stop the loop.
func (l *Loop) Run() error {
	for count := 1; ; count++ {
		line, err := l.deps.Reader.ReadLine(l.prompt(count))
		switch {
		case errors.Is(err, ports.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(l.deps.Out, "\nexit")
			l.log.Debug("end of input", zap.Int("prompts", count))
			return nil
		case err != nil:
			// Unreadable input ends the session just like end of input.
			fmt.Fprintln(l.deps.ErrOut, ui.ErrorColor(fmt.Sprintf("%s: reading input: %v", l.deps.Name, err)))
			l.log.Warn("read failed", zap.Error(err))
			return nil
		}

		if !l.step(line) {
			l.log.Debug("exit requested", zap.Int("recorded", l.deps.History.Total()))
			return nil
		}
	}
}

// step handles one input line and reports whether the loop should continue.
func (l *Loop) step(line string) bool {
	// Record first: every non-blank line typed is kept, whatever it turns out to be.
	l.deps.History.Append(line)
	args := l.deps.Tokenizer.Tokenize(line)

	outcome := l.deps.Dispatcher.Dispatch(args)
	if len(args) > 0 {
		l.log.Debug("dispatched",
			zap.String("program", args[0]),
			zap.Int("argc", len(args)),
			zap.Stringer("outcome", outcome))
	}

	switch outcome {
	case command.Terminate:
		return false
	case command.Delegate:
		l.execute(args)
	}
	return true
}

// execute launches an external program and reports how it ended.
func (l *Loop) execute(args []string) {
	result, err := l.deps.Launcher.Launch(args)
	switch {
	case errors.Is(err, command.ErrNotFound):
		l.reportf("%s: command not found (status %d)", args[0], result.ExitCode)
		l.log.Warn("launch failed", zap.String("program", args[0]), zap.Int("status", result.ExitCode), zap.Error(err))
	case err != nil:
		l.reportf("%v", err)
		l.log.Warn("launch failed", zap.String("program", args[0]), zap.Error(err))
	case result.Signaled:
		l.reportf("%s: killed by signal: %s", args[0], result.Signal)
		l.log.Info("child signaled", zap.String("program", args[0]), zap.Int("pid", result.Pid), zap.String("signal", result.Signal))
	default:
		l.log.Debug("child exited",
			zap.String("program", args[0]),
			zap.Int("pid", result.Pid),
			zap.Int("status", result.ExitCode),
			zap.Bool("success", result.Success()))
	}
}

func (l *Loop) reportf(format string, a ...any) {
	msg := fmt.Sprintf("%s: %s", l.deps.Name, fmt.Sprintf(format, a...))
	fmt.Fprintln(l.deps.ErrOut, ui.ErrorColor(msg))
}

func (l *Loop) prompt(count int) string {
	cwd, err := l.deps.Env.Getwd()
	if err != nil {
		cwd = ui.UnknownDir
	}
	return ui.Prompt(count, cwd, l.deps.Name)
}
