package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/minish/internal/core/domain/settings"
)

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider("/tmp/minish.yaml")
	if err != nil {
		t.Errorf("NewYAMLProvider() unexpected error = %v", err)
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}

	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("NewYAMLProvider(\"\") expected error, got nil")
	}
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() returned error: %v", err)
	}
	if want := filepath.Join(home, DefaultFileName); got != want {
		t.Errorf("DefaultPath() = %s, want %s", got, want)
	}
}

func TestYAMLProvider_LoadSettings(t *testing.T) {
	withOverrides := settings.Default()
	withOverrides.HistorySize = 25
	withOverrides.PromptName = "sh"
	withOverrides.Color = false
	withOverrides.LogFile = "/tmp/minish.log"
	withOverrides.LogLevel = "debug"

	tests := []struct {
		name                string
		content             *string // nil means the file is not created
		want                settings.Settings
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:    "missing file yields defaults",
			content: nil,
			want:    settings.Default(),
		},
		{
			name:    "empty file yields defaults",
			content: strPtr(""),
			want:    settings.Default(),
		},
		{
			name:    "comments only yields defaults",
			content: strPtr("# nothing here\n"),
			want:    settings.Default(),
		},
		{
			name: "partial overrides keep remaining defaults",
			content: strPtr(`
history_size: 25
prompt_name: sh
color: false
log_file: /tmp/minish.log
log_level: debug
`),
			want: withOverrides,
		},
		{
			name:                "unknown field rejected",
			content:             strPtr("history_lines: 5\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal settings",
		},
		{
			name:                "invalid history size rejected",
			content:             strPtr("history_size: 0\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "history_size must be at least 1",
		},
		{
			name:                "invalid max args rejected",
			content:             strPtr("max_args: 1\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "max_args must be at least 2",
		},
		{
			name:                "malformed yaml",
			content:             strPtr("history_size: [1, 2\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "minish.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0600); err != nil {
					t.Fatalf("Failed to create test file %s: %v", path, err)
				}
			}
			provider, _ := NewYAMLProvider(path)

			got, err := provider.LoadSettings()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("LoadSettings() error = %q, want it to contain %q", err, tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LoadSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
