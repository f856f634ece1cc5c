package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bochaoli95/go-mdresume/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunInit - Starter config generation
// ---------------------------------------------------------------------------

func TestRunInit_WritesLoadableConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "work.yaml")
	te := newTestEnv(t, nil)

	if code := runMain([]string{"mdresume", "init", path}, te.env); code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, te.stderr.String())
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%s) error = %v", path, err)
	}
	if cfg.Backbone != config.DefaultBackbone || cfg.Instance != config.DefaultInstance {
		t.Errorf("round-tripped config = %+v, want defaults", cfg)
	}
	if !strings.Contains(te.stdout.String(), path) {
		t.Errorf("stdout should name the file, got %q", te.stdout.String())
	}
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "work.yaml", "instance: editor\n")
	te := newTestEnv(t, nil)

	err := runInit(path, false, te.env)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("runInit() error = %v, want ErrConfigExists", err)
	}
	if got := readFile(t, path); got != "instance: editor\n" {
		t.Errorf("file was modified: %q", got)
	}

	if err := runInit(path, true, te.env); err != nil {
		t.Fatalf("runInit(force) error = %v", err)
	}
	if got := readFile(t, path); got == "instance: editor\n" {
		t.Error("force should overwrite the file")
	}
}

func TestRunInit_Stdout(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, nil)
	if err := runInit("-", false, te.env); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if !strings.Contains(te.stdout.String(), "backbone: default") {
		t.Errorf("stdout should hold the YAML config, got %q", te.stdout.String())
	}
}
