package endpoints

import (
	"github.com/p5hema2/Indexcards-OCR/internal/api"
	"github.com/p5hema2/Indexcards-OCR/internal/home"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	Home            *home.Dir
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatusEndpoint{},

		// Batch endpoints
		&CreateBatchEndpoint{},
		&ListBatchesEndpoint{},
		&GetBatchEndpoint{},
		&DeleteBatchEndpoint{},
		&UpdateCellEndpoint{},

		// Export endpoints
		&ExportBatchEndpoint{},
		&ListFormatsEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},

		// Batch image files
		&StaticEndpoint{},
	}
}

// BatchCommands returns endpoints for batch operations.
// This groups batch-related commands under the "batches" subcommand.
func BatchCommands() []api.Endpoint {
	return []api.Endpoint{
		&CreateBatchEndpoint{},
		&ListBatchesEndpoint{},
		&GetBatchEndpoint{},
		&DeleteBatchEndpoint{},
		&UpdateCellEndpoint{},
		&ExportBatchEndpoint{},
	}
}
