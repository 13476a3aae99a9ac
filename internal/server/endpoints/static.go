package endpoints

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/api"
	"github.com/p5hema2/Indexcards-OCR/internal/export"
	"github.com/p5hema2/Indexcards-OCR/internal/svcctx"
)

// StaticEndpoint serves scanned card images from the home directory.
// Image links in EAD and METS exports resolve against this mount.
type StaticEndpoint struct{}

var _ api.Endpoint = (*StaticEndpoint)(nil)

func (e *StaticEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", export.StaticRoot + "/{batch_name}/{filename}", e.handler
}

func (e *StaticEndpoint) RequiresInit() bool {
	return false
}

func (e *StaticEndpoint) Command(_ func() string) *cobra.Command {
	return nil // No CLI command for static files
}

func (e *StaticEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	batchName := r.PathValue("batch_name")
	filename := r.PathValue("filename")

	// Reject any path escape attempt
	if strings.Contains(batchName, "..") || strings.Contains(filename, "..") ||
		batchName != filepath.Base(batchName) || filename != filepath.Base(filename) {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}

	homeDir := svcctx.HomeFrom(r.Context())
	if homeDir == nil {
		http.Error(w, "home directory not configured", http.StatusServiceUnavailable)
		return
	}

	http.ServeFile(w, r, homeDir.BatchImagePath(batchName, filename))
}
