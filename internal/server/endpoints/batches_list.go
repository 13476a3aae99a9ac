package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/api"
	"github.com/p5hema2/Indexcards-OCR/internal/store"
	"github.com/p5hema2/Indexcards-OCR/internal/svcctx"
)

// ListBatchesResponse is the response for listing batches.
type ListBatchesResponse struct {
	Batches []store.BatchSummary `json:"batches"`
}

// ListBatchesEndpoint handles GET /api/batches.
type ListBatchesEndpoint struct{}

func (e *ListBatchesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/batches", e.handler
}

func (e *ListBatchesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List batches
//	@Description	List all imported batches, newest first
//	@Tags			batches
//	@Produce		json
//	@Success		200	{object}	ListBatchesResponse
//	@Failure		500	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/batches [get]
func (e *ListBatchesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	if st == nil {
		writeError(w, http.StatusServiceUnavailable, "batch store not initialized")
		return
	}

	batches, err := st.ListBatches(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ListBatchesResponse{Batches: batches})
}

func (e *ListBatchesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ListBatchesResponse
			if err := client.Get(cmd.Context(), "/api/batches", &resp); err != nil {
				return err
			}

			return api.Output(resp)
		},
	}
}
