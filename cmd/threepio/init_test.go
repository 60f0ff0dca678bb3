package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fortyfoot/threepio/internal/config"
	"github.com/fortyfoot/threepio/internal/stylesheet"
)

func TestRunInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dome")
	initForce, initLegacy = false, true
	t.Cleanup(func() { initForce, initLegacy = false, false })

	if err := runInit(initCmd, []string{dir}); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	sheet, err := stylesheet.Load(filepath.Join(dir, "stylesheet.yaml"))
	if err != nil {
		t.Fatalf("Load stylesheet: %v", err)
	}
	if sheet != stylesheet.Legacy() {
		t.Errorf("sheet = %+v, want legacy", sheet)
	}

	cfg, err := config.LoadFromPath(filepath.Join(dir, ".threepio.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Stylesheet.Path != filepath.Join(dir, "stylesheet.yaml") {
		t.Errorf("stylesheet.path = %q", cfg.Stylesheet.Path)
	}
}

func TestRunInit_KeepsExisting(t *testing.T) {
	dir := t.TempDir()
	sheetPath := filepath.Join(dir, "stylesheet.yaml")
	if err := os.WriteFile(sheetPath, []byte("chart: \"#010101\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	initForce, initLegacy = false, false
	if err := runInit(initCmd, []string{dir}); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	sheet, err := stylesheet.Load(sheetPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sheet.Chart != "#010101" {
		t.Errorf("existing stylesheet was overwritten: %+v", sheet)
	}
}
