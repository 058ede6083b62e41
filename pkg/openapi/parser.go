package openapi

import (
	"context"

	"go.uber.org/zap"
)

// Parser extracts the operations of a Document keyed by operation id.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// ParserOptions toggles parser behaviour.
type ParserOptions struct {
	// ResolveReferences validates the document and resolves $ref pointers,
	// external ones included. Defaults to true.
	ResolveReferences bool

	// AllowPartialDocuments accepts documents without paths, yielding an empty
	// operation set instead of an error.
	AllowPartialDocuments bool

	Logger *zap.SugaredLogger
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles eager reference resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithPartialDocuments toggles support for documents without operations.
func WithPartialDocuments(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowPartialDocuments = enabled
	}
}

// WithParserLogger routes parser diagnostics, such as skipped operations, to
// logger.
func WithParserLogger(logger *zap.SugaredLogger) ParserOption {
	return func(opts *ParserOptions) {
		opts.Logger = logger
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		ResolveReferences: true,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	return cfg
}
