package osenv

import (
	"os"
	"path/filepath"
	"testing"
)

// restoreWd puts the process back in its original directory after the test.
func restoreWd(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Logf("Cleanup warning: failed to restore working directory %s: %v", wd, err)
		}
	})
}

func TestOSEnvironment_Chdir(t *testing.T) {
	restoreWd(t)
	env := NewOSEnvironment()
	target := t.TempDir()

	if err := env.Chdir(target); err != nil {
		t.Fatalf("Chdir(%s) returned error: %v", target, err)
	}
	got, err := env.Getwd()
	if err != nil {
		t.Fatalf("Getwd() returned error: %v", err)
	}
	// TempDir may sit behind a symlink (macOS /var -> /private/var).
	wantResolved, _ := filepath.EvalSymlinks(target)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("Getwd() = %s, want %s", got, target)
	}
}

func TestOSEnvironment_ChdirNonexistent(t *testing.T) {
	restoreWd(t)
	env := NewOSEnvironment()
	before, _ := env.Getwd()

	missing := filepath.Join(t.TempDir(), "nonexistent")
	if err := env.Chdir(missing); err == nil {
		t.Fatalf("Chdir(%s) succeeded, want error", missing)
	}
	after, _ := env.Getwd()
	if before != after {
		t.Errorf("working directory changed from %s to %s after failed Chdir", before, after)
	}
}

func TestOSEnvironment_LookupEnv(t *testing.T) {
	env := NewOSEnvironment()
	t.Setenv("MINISH_TEST_VAR", "value")

	if v, ok := env.LookupEnv("MINISH_TEST_VAR"); !ok || v != "value" {
		t.Errorf("LookupEnv() = (%q, %v), want (%q, true)", v, ok, "value")
	}
	if _, ok := env.LookupEnv("MINISH_TEST_VAR_UNSET_123"); ok {
		t.Error("LookupEnv() found a variable that was never set")
	}
}
