package endpoints

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/api"
	"github.com/p5hema2/Indexcards-OCR/internal/batch"
	"github.com/p5hema2/Indexcards-OCR/internal/svcctx"
)

// CreateBatchResponse is returned when a batch is imported.
type CreateBatchResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FileCount int    `json:"file_count"`
	CreatedAt string `json:"created_at"`
}

// CreateBatchEndpoint handles POST /api/batches.
type CreateBatchEndpoint struct{}

func (e *CreateBatchEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/batches", e.handler
}

func (e *CreateBatchEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Import a results batch
//	@Description	Validate and store an OCR results document. The body is either a named document {"name": ..., "results": [...]} or a bare results array.
//	@Tags			batches
//	@Accept			json
//	@Produce		json
//	@Param			name	query		string	false	"Batch name (overrides the document name)"
//	@Success		201		{object}	CreateBatchResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/batches [post]
func (e *CreateBatchEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	if st == nil {
		writeError(w, http.StatusServiceUnavailable, "batch store not initialized")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read body: %v", err))
		return
	}

	doc, err := batch.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = doc.Name
	}
	if name == "" {
		writeError(w, http.StatusBadRequest, "batch name is required (document name or ?name= parameter)")
		return
	}

	rec, err := st.SaveBatch(r.Context(), name, doc.Results)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save batch: %v", err))
		return
	}

	writeJSON(w, http.StatusCreated, CreateBatchResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		FileCount: len(rec.Results),
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	})
}

func (e *CreateBatchEndpoint) Command(getServerURL func() string) *cobra.Command {
	var batchName string
	cmd := &cobra.Command{
		Use:   "create <results.json>",
		Short: "Import a results file as a new batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			doc, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			if batchName != "" {
				doc.Name = batchName
			}

			client := api.NewClient(getServerURL())
			var resp CreateBatchResponse
			if err := client.Post(ctx, "/api/batches", doc, &resp); err != nil {
				return err
			}

			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&batchName, "name", "", "Batch name (defaults to the document name)")
	return cmd
}
