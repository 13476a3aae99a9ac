package batch

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var resultsSchema []byte

// Document is a named batch of extraction results, the wire shape used
// by both the import endpoint and the export CLI.
type Document struct {
	Name    string       `json:"name"`
	Results []*ResultRow `json:"results"`
}

// Parse decodes and validates a batch results document. A bare JSON
// array of rows is accepted as a document without a name.
func Parse(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		trimmed = append(append([]byte(`{"results":`), trimmed...), '}')
	}

	if err := validateResults(trimmed); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode results document: %w", err)
	}
	for _, row := range doc.Results {
		if row.EditedData == nil {
			row.EditedData = make(map[string]string)
		}
	}
	return &doc, nil
}

// Load reads and parses a batch results document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// validateResults checks the document against the embedded JSON Schema.
func validateResults(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("results.json", bytes.NewReader(resultsSchema)); err != nil {
		return fmt.Errorf("failed to load results schema: %w", err)
	}
	schema, err := compiler.Compile("results.json")
	if err != nil {
		return fmt.Errorf("failed to compile results schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("results document does not match schema: %w", err)
	}
	return nil
}
