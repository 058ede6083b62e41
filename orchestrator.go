package formdoc

import (
	"context"

	"github.com/goliatone/go-formdoc/pkg/definition"
	"github.com/goliatone/go-formdoc/pkg/model"
	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
	"github.com/goliatone/go-formdoc/pkg/orchestrator"
)

// Transformer aliases orchestrator.Transformer for callers importing only the
// root package.
type Transformer = orchestrator.Transformer

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Import loads the OpenAPI source and builds the form for the requested
// operation.
func Import(ctx context.Context, source pkgopenapi.Source, operationID string, options ...orchestrator.Option) (*model.Form, error) {
	gen := orchestrator.New(options...)
	return gen.Build(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
	})
}

// GenerateJSON is like Import but returns the canonical JSON document.
func GenerateJSON(ctx context.Context, source pkgopenapi.Source, operationID string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
	})
}

// GenerateJSONFromDocument builds the form from a pre-loaded document,
// bypassing the loader stage.
func GenerateJSONFromDocument(ctx context.Context, doc pkgopenapi.Document, operationID string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:    &doc,
		OperationID: operationID,
	})
}

// EncodeDefinition reads a JSON or YAML form definition and returns its
// canonical JSON.
func EncodeDefinition(path string, options ...definition.Option) ([]byte, error) {
	form, err := definition.LoadFile(path, options...)
	if err != nil {
		return nil, err
	}
	return model.Marshal(form)
}
