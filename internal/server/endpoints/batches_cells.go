package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/api"
	"github.com/p5hema2/Indexcards-OCR/internal/store"
	"github.com/p5hema2/Indexcards-OCR/internal/svcctx"
)

// UpdateCellRequest is the body for correcting one field of a file.
type UpdateCellRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// UpdateCellResponse confirms a stored correction.
type UpdateCellResponse struct {
	BatchID  string `json:"batch_id"`
	Filename string `json:"filename"`
	Field    string `json:"field"`
	Value    string `json:"value"`
}

// UpdateCellEndpoint handles PATCH /api/batches/{batch_id}/results/{filename}.
type UpdateCellEndpoint struct{}

func (e *UpdateCellEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PATCH", "/api/batches/{batch_id}/results/{filename}", e.handler
}

func (e *UpdateCellEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Correct a field value
//	@Description	Store a reviewed value for one field of one file. An empty value is a deliberate override hiding the recognized text. Exports always prefer corrections over recognized values.
//	@Tags			batches
//	@Accept			json
//	@Produce		json
//	@Param			batch_id	path		string				true	"Batch ID"
//	@Param			filename	path		string				true	"Result filename"
//	@Param			body		body		UpdateCellRequest	true	"Correction"
//	@Success		200			{object}	UpdateCellResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/api/batches/{batch_id}/results/{filename} [patch]
func (e *UpdateCellEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("batch_id")
	filename := r.PathValue("filename")
	if batchID == "" || filename == "" {
		writeError(w, http.StatusBadRequest, "batch_id and filename are required")
		return
	}

	var req UpdateCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Field == "" {
		writeError(w, http.StatusBadRequest, "field is required")
		return
	}

	st := svcctx.StoreFrom(r.Context())
	if st == nil {
		writeError(w, http.StatusServiceUnavailable, "batch store not initialized")
		return
	}

	err := st.UpdateCell(r.Context(), batchID, filename, req.Field, req.Value)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "batch not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, UpdateCellResponse{
		BatchID:  batchID,
		Filename: filename,
		Field:    req.Field,
		Value:    req.Value,
	})
}

func (e *UpdateCellEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <batch_id> <filename> <field> <value>",
		Short: "Store a reviewed value for one field",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := UpdateCellRequest{
				Field: args[2],
				Value: args[3],
			}

			client := api.NewClient(getServerURL())
			var resp UpdateCellResponse
			path := fmt.Sprintf("/api/batches/%s/results/%s", args[0], args[1])
			if err := client.Patch(cmd.Context(), path, req, &resp); err != nil {
				return err
			}

			return api.Output(resp)
		},
	}
}
