// Package builder exposes the OpenAPI to form conversion.
package builder

import (
	"go.uber.org/zap"

	internalbuilder "github.com/goliatone/go-formdoc/internal/builder"
	"github.com/goliatone/go-formdoc/pkg/model"
	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

// Builder converts OpenAPI operations into forms.
type Builder interface {
	Build(op pkgopenapi.Operation) (*model.Form, error)
}

// Option configures the builder behaviour.
type Option func(*internalbuilder.Options)

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) Option {
	return func(opts *internalbuilder.Options) {
		opts.Labeler = labeler
	}
}

// WithSubmitLabel appends a submit button labelled label to every form.
func WithSubmitLabel(label string) Option {
	return func(opts *internalbuilder.Options) {
		opts.SubmitLabel = label
	}
}

// WithLogger receives warnings about properties that have no field mapping.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(opts *internalbuilder.Options) {
		opts.Logger = logger
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...Option) Builder {
	cfg := internalbuilder.Options{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return internalbuilder.New(cfg)
}

// Violation describes an x-formdoc extension the builder cannot honour.
type Violation = internalbuilder.Violation

// Lint reports unsupported or malformed x-formdoc extensions on op.
func Lint(op pkgopenapi.Operation) []Violation {
	return internalbuilder.Lint(op)
}

// ExtensionKeys lists the supported x-formdoc extension suffixes.
func ExtensionKeys() []string {
	return internalbuilder.ExtensionKeys()
}
