package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-formdoc/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formdoc/internal/openapi/parser"
	"github.com/goliatone/go-formdoc/pkg/builder"
	"github.com/goliatone/go-formdoc/pkg/model"
	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithBuilder injects a custom form builder.
func WithBuilder(b builder.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = b
	}
}

// WithTransformers registers transformers that mutate the built form in the
// order they are supplied.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// WithLogger sets the logger used by the orchestrator and by the default
// loader, parser and builder.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to form.
// Missing dependencies are initialised with the built-in implementations.
type Orchestrator struct {
	loader       pkgopenapi.Loader
	parser       pkgopenapi.Parser
	builder      builder.Builder
	transformers []Transformer
	logger       *zap.SugaredLogger
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to build a form from an OpenAPI
// operation.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when Document
	// is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader when they already have the
	// raw payload.
	Document *pkgopenapi.Document

	// OperationID selects which operation to convert.
	OperationID string

	// Indent pretty prints the output of Generate.
	Indent bool
}

// Build executes the loader → parser → builder → transformer sequence and
// returns the resulting form.
func (o *Orchestrator) Build(ctx context.Context, req Request) (*model.Form, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.OperationID == "" {
		return nil, errors.New("orchestrator: operation id is required")
	}

	operations, err := o.operations(ctx, req)
	if err != nil {
		return nil, err
	}

	op, ok := operations[req.OperationID]
	if !ok {
		return nil, fmt.Errorf("orchestrator: operation %q not found", req.OperationID)
	}

	form, err := o.builder.Build(op)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build form: %w", err)
	}

	if err := o.applyTransformers(ctx, form); err != nil {
		return nil, err
	}

	o.logger.Debugw("form built", "operation", op.ID, "fields", form.Len())
	return form, nil
}

// Generate builds the form like Build and returns its canonical JSON.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	var output []byte
	if req.Indent {
		output, err = model.MarshalIndent(form, "", "  ")
	} else {
		output, err = model.Marshal(form)
	}
	if err != nil {
		return nil, fmt.Errorf("orchestrator: encode form: %w", err)
	}
	return output, nil
}

// Operations lists the operation ids available in the requested document in
// lexical order. Request.OperationID is ignored.
func (o *Orchestrator) Operations(ctx context.Context, req Request) ([]string, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	operations, err := o.operations(ctx, req)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (o *Orchestrator) operations(ctx context.Context, req Request) (map[string]pkgopenapi.Operation, error) {
	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	return operations, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyTransformers(ctx context.Context, form *model.Form) error {
	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, form); err != nil {
			return fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = zap.NewNop().Sugar()
	}
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(
			pkgopenapi.WithLoaderLogger(o.logger),
		))
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions(
			pkgopenapi.WithParserLogger(o.logger),
		))
	}
	if o.builder == nil {
		o.builder = builder.NewBuilder(builder.WithLogger(o.logger))
	}
}
