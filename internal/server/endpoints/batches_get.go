package endpoints

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/api"
	"github.com/p5hema2/Indexcards-OCR/internal/store"
	"github.com/p5hema2/Indexcards-OCR/internal/svcctx"
)

// GetBatchResponse is a stored batch plus its run summary.
type GetBatchResponse struct {
	*store.BatchRecord
	Stats store.BatchStats `json:"stats"`
}

// GetBatchEndpoint handles GET /api/batches/{batch_id}.
type GetBatchEndpoint struct{}

func (e *GetBatchEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/batches/{batch_id}", e.handler
}

func (e *GetBatchEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get a batch
//	@Description	Fetch a batch with all its result rows
//	@Tags			batches
//	@Produce		json
//	@Param			batch_id	path		string	true	"Batch ID"
//	@Success		200			{object}	GetBatchResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/api/batches/{batch_id} [get]
func (e *GetBatchEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("batch_id")
	if batchID == "" {
		writeError(w, http.StatusBadRequest, "batch_id is required")
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

	writeJSON(w, http.StatusOK, GetBatchResponse{BatchRecord: rec, Stats: rec.Stats()})
}

func (e *GetBatchEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <batch_id>",
		Short: "Get a batch with all result rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp GetBatchResponse
			if err := client.Get(cmd.Context(), fmt.Sprintf("/api/batches/%s", args[0]), &resp); err != nil {
				return err
			}

			return api.Output(resp)
		},
	}
}

// DeleteBatchEndpoint handles DELETE /api/batches/{batch_id}.
type DeleteBatchEndpoint struct{}

func (e *DeleteBatchEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/batches/{batch_id}", e.handler
}

func (e *DeleteBatchEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Delete a batch
//	@Description	Remove a batch and its result rows
//	@Tags			batches
//	@Produce		json
//	@Param			batch_id	path	string	true	"Batch ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/batches/{batch_id} [delete]
func (e *DeleteBatchEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("batch_id")
	if batchID == "" {
		writeError(w, http.StatusBadRequest, "batch_id is required")
		return
	}

	st := svcctx.StoreFrom(r.Context())
	if st == nil {
		writeError(w, http.StatusServiceUnavailable, "batch store not initialized")
		return
	}

	err := st.DeleteBatch(r.Context(), batchID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "batch not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (e *DeleteBatchEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <batch_id>",
		Short: "Delete a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if err := client.Delete(cmd.Context(), fmt.Sprintf("/api/batches/%s", args[0])); err != nil {
				return err
			}
			fmt.Printf("Deleted batch %s\n", args[0])
			return nil
		},
	}
}
