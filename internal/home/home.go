package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the indexcards home directory.
	DefaultDirName = ".indexcards"

	// BatchImagesDirName is the subdirectory holding scanned card images,
	// one subdirectory per batch. It backs the /batches-static mount.
	BatchImagesDirName = "batch_images"

	// ExportsDirName is the subdirectory for generated export documents.
	ExportsDirName = "exports"

	// DBFileName is the sqlite database file name.
	DBFileName = "indexcards.db"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the indexcards home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.indexcards).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// DBPath returns the path to the sqlite database file.
func (d *Dir) DBPath() string {
	return filepath.Join(d.path, DBFileName)
}

// BatchImagesDir returns the root directory for batch images.
func (d *Dir) BatchImagesDir() string {
	return filepath.Join(d.path, BatchImagesDirName)
}

// BatchImageDir returns the image directory for one batch.
func (d *Dir) BatchImageDir(batchName string) string {
	return filepath.Join(d.BatchImagesDir(), batchName)
}

// BatchImagePath returns the path to a specific scanned card image.
func (d *Dir) BatchImagePath(batchName, filename string) string {
	return filepath.Join(d.BatchImageDir(batchName), filename)
}

// ExportsDir returns the directory for generated export documents.
func (d *Dir) ExportsDir() string {
	return filepath.Join(d.path, ExportsDirName)
}

// BatchExportsDir returns the export directory for one batch.
func (d *Dir) BatchExportsDir(batchID string) string {
	return filepath.Join(d.ExportsDir(), batchID)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	for _, dir := range []string{d.BatchImagesDir(), d.ExportsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureBatchImageDir creates the image directory for a batch.
func (d *Dir) EnsureBatchImageDir(batchName string) error {
	return os.MkdirAll(d.BatchImageDir(batchName), 0o755)
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
