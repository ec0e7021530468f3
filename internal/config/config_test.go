package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxArrayPreview != 0 {
		t.Fatalf("got MaxArrayPreview %d, want 0", cfg.MaxArrayPreview)
	}
}

func TestLoadDecodesKnownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golox.yaml")
	contents := "prelude_path: /tmp/house.lox\nhistory_file: /tmp/history\nmax_array_preview: 10\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PreludePath != "/tmp/house.lox" {
		t.Fatalf("got PreludePath %q", cfg.PreludePath)
	}
	if cfg.HistoryFile != "/tmp/history" {
		t.Fatalf("got HistoryFile %q", cfg.HistoryFile)
	}
	if cfg.MaxArrayPreview != 10 {
		t.Fatalf("got MaxArrayPreview %d, want 10", cfg.MaxArrayPreview)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golox.yaml")
	if err := os.WriteFile(path, []byte("not_a_real_field: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an unknown configuration field")
	}
}

func TestLoadEmptyFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxArrayPreview != 0 {
		t.Fatalf("got MaxArrayPreview %d, want 0", cfg.MaxArrayPreview)
	}
}
