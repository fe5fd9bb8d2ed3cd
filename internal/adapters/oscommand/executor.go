package oscommand

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

const fallbackShell = "/bin/sh"

// OSProcessLauncher implements the ProcessLauncher interface with os/exec.
// Children inherit the given streams and the interpreter's environment.
type OSProcessLauncher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewOSProcessLauncher creates a launcher wired to the process's standard streams.
func NewOSProcessLauncher() ports.ProcessLauncher {
	return NewOSProcessLauncherWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewOSProcessLauncherWithStreams creates a launcher whose children use the given streams.
func NewOSProcessLauncherWithStreams(stdin io.Reader, stdout, stderr io.Writer) ports.ProcessLauncher {
	return &OSProcessLauncher{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Launch starts args[0], resolved through PATH, and blocks until it exits.
// A non-zero exit status is not an error. Errors wrap command.ErrNotFound,
// command.ErrSpawn or command.ErrWait.
func (l *OSProcessLauncher) Launch(args []string) (command.LaunchResult, error) {
	if len(args) == 0 {
		return command.LaunchResult{}, command.ErrEmptyCommand
	}

	cmd, err := l.spawn(args)
	if err != nil {
		result := command.LaunchResult{Program: args[0]}
		if errors.Is(err, command.ErrNotFound) {
			result.ExitCode = command.NotFoundStatus
		}
		return result, err
	}
	return l.wait(args[0], cmd)
}

// spawn creates the child process. Like execvp, an executable file that the
// kernel rejects as ENOEXEC (a script without a "#!" line) is run with /bin/sh.
func (l *OSProcessLauncher) spawn(args []string) (*exec.Cmd, error) {
	cmd := l.command(args[0], args[1:]...)

	// exec.Command records lookup failures in cmd.Err; Start returns it.
	err := cmd.Start()
	if errors.Is(err, syscall.ENOEXEC) {
		cmd = l.command(fallbackShell, append([]string{cmd.Path}, args[1:]...)...)
		err = cmd.Start()
	}
	if err != nil {
		if isNotExecutable(err) {
			return nil, fmt.Errorf("%w: %s: %v", command.ErrNotFound, args[0], err)
		}
		return nil, fmt.Errorf("%w: %s: %v", command.ErrSpawn, args[0], err)
	}
	return cmd, nil
}

func (l *OSProcessLauncher) command(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	return cmd
}

// wait blocks until the child terminates and collects its status.
func (l *OSProcessLauncher) wait(program string, cmd *exec.Cmd) (command.LaunchResult, error) {
	result := command.LaunchResult{Program: program, Pid: cmd.Process.Pid}

	err := cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The child may have exited before stream copying failed.
			result.ExitCode = -1
			if cmd.ProcessState != nil {
				fillStatus(&result, cmd.ProcessState)
			}
			return result, fmt.Errorf("%w: %s (pid %d): %v", command.ErrWait, program, result.Pid, err)
		}
	}

	fillStatus(&result, cmd.ProcessState)
	return result, nil
}

func fillStatus(result *command.LaunchResult, state *os.ProcessState) {
	result.ExitCode = state.ExitCode()
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		result.Signaled = true
		result.Signal = ws.Signal().String()
	}
}

// isNotExecutable reports whether err means the program could not be found or
// executed, as opposed to the OS failing to create a process at all.
func isNotExecutable(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, exec.ErrDot) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.ENOEXEC)
}
