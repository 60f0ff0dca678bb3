package stylesheet

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Errorf("got %+v, want default", s)
	}
}

func TestParse_FillsDefaults(t *testing.T) {
	s, err := Parse([]byte("chart: \"#abcdef\"\nbackground: \"#000000\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Chart != "#abcdef" {
		t.Errorf("Chart = %q", s.Chart)
	}
	if s.Background != "#000000" {
		t.Errorf("Background = %q", s.Background)
	}
	if s.Accent != Default().Accent {
		t.Errorf("Accent = %q, want default %q", s.Accent, Default().Accent)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("chart: [unterminated")); err == nil {
		t.Error("expected parse error")
	}
}

func TestWriteLegacy_OverwritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stylesheet.yaml")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s, err := WriteLegacy(path)
	if err != nil {
		t.Fatalf("WriteLegacy: %v", err)
	}
	if s.Background != "#00ff00" || s.Foreground != "#ff0000" {
		t.Errorf("legacy sheet = %+v", s)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != Legacy() {
		t.Errorf("loaded %+v, want legacy", loaded)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stylesheet.yaml")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	changes := make(chan Sheet, 8)
	w, err := Watch(path, func(s Sheet, err error) {
		if err == nil {
			changes <- s
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("chart: \"#123456\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-changes:
			if s.Chart == "#123456" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestShouldReload(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if shouldReload(empty) {
		t.Error("empty file should not be reloaded")
	}

	full := filepath.Join(dir, "full.yaml")
	if err := os.WriteFile(full, []byte("chart: \"#123456\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !shouldReload(full) {
		t.Error("non-empty file should be reloaded")
	}

	if !shouldReload(filepath.Join(dir, "absent.yaml")) {
		t.Error("missing file should reload to the default sheet")
	}
}

func TestWatch_SkipsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stylesheet.yaml")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	changes := make(chan Sheet, 8)
	w, err := Watch(path, func(s Sheet, err error) {
		if err == nil {
			changes <- s
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	// Truncate first, then write, as editors do on save
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if err := os.WriteFile(path, []byte("chart: \"#123456\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-changes:
			if s.Chart != "#123456" {
				t.Fatalf("reloaded an intermediate sheet %+v", s)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
