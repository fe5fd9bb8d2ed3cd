package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/minish/internal/adapters/linereader"
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/core/testutil"
	"github.com/fatih/color"
)

type rootFixture struct {
	deps     Dependencies
	launcher *testutil.MockProcessLauncher
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

func newRootFixture(t *testing.T, input string) *rootFixture {
	t.Helper()
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })
	// Keep the real home directory's settings file out of the test.
	t.Setenv("HOME", t.TempDir())

	launcher := &testutil.MockProcessLauncher{
		LaunchFunc: func(args []string) (command.LaunchResult, error) {
			return command.LaunchResult{Program: args[0], Pid: 1}, nil
		},
	}
	var out, errOut bytes.Buffer
	return &rootFixture{
		deps: Dependencies{
			Env:      &testutil.MockEnvironment{Dir: "/work", Vars: map[string]string{}},
			Launcher: launcher,
			NewReader: func() (ports.LineReader, error) {
				return linereader.NewStreamReader(strings.NewReader(input), io.Discard), nil
			},
			Out:    &out,
			ErrOut: &errOut,
		},
		launcher: launcher,
		out:      &out,
		errOut:   &errOut,
	}
}

func (f *rootFixture) execute(args ...string) error {
	cmd := NewRootCommand("test", f.deps)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minish.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create config file %s: %v", path, err)
	}
	return path
}

func TestRootCommand_RunsSession(t *testing.T) {
	f := newRootFixture(t, "ls -l\nhelp\nhistory\n")

	if err := f.execute("--no-color"); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	out := f.out.String()
	for _, want := range []string{"Builtins:", "1  ls -l\n2  help\n3  history\n", "\nexit\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if len(f.launcher.LaunchCalls) != 1 || f.launcher.LaunchCalls[0][0] != "ls" {
		t.Errorf("launched %q, want a single ls", f.launcher.LaunchCalls)
	}
}

func TestRootCommand_HistorySizeFromConfigAndFlag(t *testing.T) {
	input := "a\nb\nc\nhistory\n"

	tests := []struct {
		name string
		args func(t *testing.T) []string
		want string
	}{
		{
			name: "config file",
			args: func(t *testing.T) []string {
				return []string{"--config", writeConfig(t, "history_size: 3\ncolor: false\n")}
			},
			want: "2  b\n3  c\n4  history\n",
		},
		{
			name: "flag overrides config file",
			args: func(t *testing.T) []string {
				return []string{"--config", writeConfig(t, "history_size: 3\n"), "--history-size", "2", "--no-color"}
			},
			want: "3  c\n4  history\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRootFixture(t, input)
			if err := f.execute(tt.args(t)...); err != nil {
				t.Fatalf("Execute() returned error: %v", err)
			}
			if got := strings.TrimSuffix(f.out.String(), "\nexit\n"); got != tt.want {
				t.Errorf("history output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCommand_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{name: "unknown config key", args: func(t *testing.T) []string {
			return []string{"--config", writeConfig(t, "bogus: 1\n")}
		}},
		{name: "zero history size flag", args: func(t *testing.T) []string {
			return []string{"--history-size", "0"}
		}},
		{name: "bad log level", args: func(t *testing.T) []string {
			return []string{"--log-file", filepath.Join(t.TempDir(), "x.log"), "--log-level", "loud"}
		}},
		{name: "positional arguments rejected", args: func(t *testing.T) []string {
			return []string{"script.sh"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRootFixture(t, "ls\n")
			if err := f.execute(tt.args(t)...); err == nil {
				t.Fatal("Execute() expected error, got nil")
			}
			if len(f.launcher.LaunchCalls) != 0 {
				t.Errorf("session should not start, but launched %q", f.launcher.LaunchCalls)
			}
		})
	}
}

func TestRootCommand_WritesEventLog(t *testing.T) {
	f := newRootFixture(t, "lsxyz123\n")
	logPath := filepath.Join(t.TempDir(), "minish.log")

	if err := f.execute("--no-color", "--log-file", logPath, "--log-level", "debug"); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	for _, want := range []string{"session started", `"history_size":10`, "dispatched", "child exited", `"success":true`, "session ended"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q:\n%s", want, data)
		}
	}
}

func TestRootCommand_MissingDependencies(t *testing.T) {
	f := newRootFixture(t, "")
	f.deps.Launcher = nil
	if err := f.execute(); err == nil {
		t.Fatal("Execute() expected error with missing launcher, got nil")
	}
}
