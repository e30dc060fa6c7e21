package main

// Notes:
// - Tests that set GENICON_* variables use t.Setenv and therefore cannot run
//   in parallel.
// - Permission failures are skipped when running as root.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rbi-app/genicon"
)

// iconPath returns the icon location for base.
func iconPath(base string) string {
	return filepath.Join(base, "src-tauri", "app-icon.svg")
}

// writeFile creates path with content, including parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ---------------------------------------------------------------------------
// TestRunGenerate - Base directory resolution and output
// ---------------------------------------------------------------------------

func TestRunGenerate(t *testing.T) {
	t.Parallel()

	t.Run("base-dir flag absolute", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		env := newTestEnv(t, t.TempDir())

		if err := runGenerate([]string{"--base-dir", base}, env.Environment); err != nil {
			t.Fatalf("runGenerate() unexpected error: %v", err)
		}
		if !strings.Contains(env.stdout.String(), iconPath(base)) {
			t.Errorf("stdout should report %s, got %q", iconPath(base), env.stdout.String())
		}
	})

	t.Run("base-dir flag relative to working directory", func(t *testing.T) {
		t.Parallel()

		wd := t.TempDir()
		env := newTestEnv(t, wd)

		if err := runGenerate([]string{"-d", filepath.Join("modules", "remote-desktop")}, env.Environment); err != nil {
			t.Fatalf("runGenerate() unexpected error: %v", err)
		}
		if _, err := os.Stat(iconPath(filepath.Join(wd, "modules", "remote-desktop"))); err != nil {
			t.Errorf("icon not written: %v", err)
		}
	})

	t.Run("existing icon is replaced", func(t *testing.T) {
		t.Parallel()

		wd := t.TempDir()
		writeFile(t, iconPath(wd), "<svg>old</svg>")
		env := newTestEnv(t, wd)

		if err := runGenerate(nil, env.Environment); err != nil {
			t.Fatalf("runGenerate() unexpected error: %v", err)
		}
		got, _ := os.ReadFile(iconPath(wd))
		if string(got) != genicon.SVGTemplate {
			t.Error("existing icon was not replaced with SVGTemplate")
		}
	})

	t.Run("quiet flag", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, t.TempDir())
		if err := runGenerate([]string{"--quiet"}, env.Environment); err != nil {
			t.Fatalf("runGenerate() unexpected error: %v", err)
		}
		if env.stdout.Len() != 0 {
			t.Errorf("stdout should be empty, got %q", env.stdout.String())
		}
	})

	t.Run("verbose diagnostics go to stderr", func(t *testing.T) {
		t.Parallel()

		wd := t.TempDir()
		env := newTestEnv(t, wd)
		if err := runGenerate([]string{"-v"}, env.Environment); err != nil {
			t.Fatalf("runGenerate() unexpected error: %v", err)
		}
		if !strings.Contains(env.stderr.String(), "Base directory: "+wd) {
			t.Errorf("stderr = %q, should name the base directory", env.stderr.String())
		}
		if strings.Count(env.stdout.String(), "\n") != 2 {
			t.Errorf("stdout should hold exactly two lines, got %q", env.stdout.String())
		}
	})

	t.Run("working directory unavailable", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, "")
		env.Getwd = failingGetwd
		err := runGenerate(nil, env.Environment)
		if err == nil || !strings.Contains(err.Error(), "working directory") {
			t.Errorf("runGenerate() error = %v, want working directory error", err)
		}
	})

	t.Run("write failure keeps the sentinel", func(t *testing.T) {
		t.Parallel()

		wd := t.TempDir()
		if err := os.MkdirAll(iconPath(wd), 0o750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		env := newTestEnv(t, wd)

		err := runGenerate(nil, env.Environment)
		if !errors.Is(err, genicon.ErrWriteIcon) {
			t.Errorf("runGenerate() error = %v, want %v", err, genicon.ErrWriteIcon)
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		t.Parallel()
		if os.Geteuid() == 0 {
			t.Skip("root ignores directory permissions")
		}

		wd := t.TempDir()
		if err := os.Chmod(wd, 0o500); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Cleanup(func() { _ = os.Chmod(wd, 0o700) })
		env := newTestEnv(t, wd)

		err := runGenerate(nil, env.Environment)
		if exitCodeFor(err) != ExitIO {
			t.Errorf("exitCodeFor(%v) = %d, want %d", err, exitCodeFor(err), ExitIO)
		}
		if !strings.Contains(err.Error(), "is writable") {
			t.Errorf("error should carry a permission hint, got %q", err.Error())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunGenerate_Priority - flags > env > config file
// ---------------------------------------------------------------------------

func TestRunGenerate_Priority(t *testing.T) {
	root := t.TempDir()
	fileBase := filepath.Join(root, "from-file")
	envBase := filepath.Join(root, "from-env")
	flagBase := filepath.Join(root, "from-flag")

	cfgPath := filepath.Join(root, "genicon.yaml")
	writeFile(t, cfgPath, "baseDir: from-file\n")

	t.Run("config file only", func(t *testing.T) {
		env := newTestEnv(t, t.TempDir())
		if err := runGenerate([]string{"--config", cfgPath}, env.Environment); err != nil {
			t.Fatalf("runGenerate() unexpected error: %v", err)
		}
		if _, err := os.Stat(iconPath(fileBase)); err != nil {
			t.Errorf("icon not written under config baseDir: %v", err)
		}
	})

	t.Run("env beats config file", func(t *testing.T) {
		t.Setenv("GENICON_CONFIG", cfgPath)
		t.Setenv("GENICON_BASE_DIR", envBase)

		env := newTestEnv(t, t.TempDir())
		if err := runGenerate(nil, env.Environment); err != nil {
			t.Fatalf("runGenerate() unexpected error: %v", err)
		}
		if _, err := os.Stat(iconPath(envBase)); err != nil {
			t.Errorf("icon not written under env baseDir: %v", err)
		}
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv("GENICON_BASE_DIR", envBase)

		env := newTestEnv(t, t.TempDir())
		if err := runGenerate([]string{"--base-dir", flagBase}, env.Environment); err != nil {
			t.Fatalf("runGenerate() unexpected error: %v", err)
		}
		if _, err := os.Stat(iconPath(flagBase)); err != nil {
			t.Errorf("icon not written under flag baseDir: %v", err)
		}
	})

	t.Run("env quiet", func(t *testing.T) {
		t.Setenv("GENICON_QUIET", "true")

		env := newTestEnv(t, t.TempDir())
		if err := runGenerate(nil, env.Environment); err != nil {
			t.Fatalf("runGenerate() unexpected error: %v", err)
		}
		if env.stdout.Len() != 0 {
			t.Errorf("stdout should be empty, got %q", env.stdout.String())
		}
	})

	t.Run("config name not found carries hint", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		env := newTestEnv(t, t.TempDir())
		err := runGenerate([]string{"-c", "no-such-config-name"}, env.Environment)
		if exitCodeFor(err) != ExitUsage {
			t.Fatalf("exitCodeFor(%v) = %d, want %d", err, exitCodeFor(err), ExitUsage)
		}
		if !strings.Contains(err.Error(), "hint: use --config") {
			t.Errorf("error should carry a config hint, got %q", err.Error())
		}
	})
}
