package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/api"
	"github.com/p5hema2/Indexcards-OCR/internal/export"
	"github.com/p5hema2/Indexcards-OCR/internal/store"
	"github.com/p5hema2/Indexcards-OCR/internal/svcctx"
)

// ExportBatchEndpoint handles GET /api/batches/{batch_id}/export/{format}.
type ExportBatchEndpoint struct{}

func (e *ExportBatchEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/batches/{batch_id}/export/{format}", e.handler
}

func (e *ExportBatchEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Export a batch
//	@Description	Render a batch in one of the supported formats (csv, json, xlsx, lido, ead, darwincore, dublincore, marcxml, metsmods) and serve it as a download
//	@Tags			batches,export
//	@Produce		json
//	@Param			batch_id	path		string	true	"Batch ID"
//	@Param			format		path		string	true	"Export format"
//	@Success		200			{file}		file
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/api/batches/{batch_id}/export/{format} [get]
func (e *ExportBatchEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("batch_id")
	if batchID == "" {
		writeError(w, http.StatusBadRequest, "batch_id is required")
		return
	}

	format, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st := svcctx.StoreFrom(r.Context())
	if st == nil {
		writeError(w, http.StatusServiceUnavailable, "batch store not initialized")
		return
	}

	rec, err := st.GetBatch(r.Context(), batchID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "batch not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	doc, err := export.Export(format, rec.Results, rec.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", doc.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	w.Write(doc.Payload)
}

func (e *ExportBatchEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "export <batch_id> <format>",
		Short: "Export a batch and save the document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			batchID := args[0]

			format, err := export.ParseFormat(args[1])
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(ctx, fmt.Sprintf("/api/batches/%s/export/%s", batchID, format))
			if err != nil {
				return err
			}

			if outputPath == "" {
				outputPath, err = export.Filename(format, batchID)
				if err != nil {
					return err
				}
			}

			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}

			fmt.Printf("Downloaded to: %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	return cmd
}

// FormatInfo describes one export format.
type FormatInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListFormatsResponse is the response for listing export formats.
type ListFormatsResponse struct {
	Formats []FormatInfo `json:"formats"`
}

// ListFormatsEndpoint handles GET /api/formats.
type ListFormatsEndpoint struct{}

func (e *ListFormatsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/formats", e.handler
}

func (e *ListFormatsEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		List export formats
//	@Description	List all supported export formats
//	@Tags			export
//	@Produce		json
//	@Success		200	{object}	ListFormatsResponse
//	@Router			/api/formats [get]
func (e *ListFormatsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := ListFormatsResponse{}
	for _, f := range export.Formats() {
		resp.Formats = append(resp.Formats, FormatInfo{
			ID:   string(f),
			Name: export.DisplayName(f),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *ListFormatsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported export formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ListFormatsResponse
			if err := client.Get(cmd.Context(), "/api/formats", &resp); err != nil {
				return err
			}

			return api.Output(resp)
		},
	}
}
