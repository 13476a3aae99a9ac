package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("with explicit path", func(t *testing.T) {
		dir, err := New("/tmp/test-indexcards")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.Path() != "/tmp/test-indexcards" {
			t.Errorf("expected path /tmp/test-indexcards, got %s", dir.Path())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		dir, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, DefaultDirName)
		if dir.Path() != expected {
			t.Errorf("expected path %s, got %s", expected, dir.Path())
		}
	})
}

func TestDir_Paths(t *testing.T) {
	dir, _ := New("/tmp/test-indexcards")

	t.Run("ConfigPath", func(t *testing.T) {
		expected := "/tmp/test-indexcards/config.yaml"
		if dir.ConfigPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.ConfigPath())
		}
	})

	t.Run("DBPath", func(t *testing.T) {
		expected := "/tmp/test-indexcards/indexcards.db"
		if dir.DBPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.DBPath())
		}
	})

	t.Run("BatchImagePath", func(t *testing.T) {
		expected := "/tmp/test-indexcards/batch_images/B1/card1.jpg"
		if got := dir.BatchImagePath("B1", "card1.jpg"); got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})

	t.Run("BatchExportsDir", func(t *testing.T) {
		expected := "/tmp/test-indexcards/exports/B1"
		if got := dir.BatchExportsDir("B1"); got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})
}

func TestDir_EnsureExists(t *testing.T) {
	tmpDir := t.TempDir()
	homePath := filepath.Join(tmpDir, "indexcards-test")

	dir, err := New(homePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dir.Exists() {
		t.Error("directory should not exist before EnsureExists")
	}

	if err := dir.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}

	if !dir.Exists() {
		t.Error("directory should exist after EnsureExists")
	}

	for _, sub := range []string{dir.BatchImagesDir(), dir.ExportsDir()} {
		if _, err := os.Stat(sub); os.IsNotExist(err) {
			t.Errorf("%s should exist after EnsureExists", sub)
		}
	}
}

func TestDir_ConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	dir, _ := New(tmpDir)

	if dir.ConfigExists() {
		t.Error("config should not exist initially")
	}

	if err := os.WriteFile(dir.ConfigPath(), []byte("test: true\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if !dir.ConfigExists() {
		t.Error("config should exist after creation")
	}
}
