package formdoc

import (
	internalLoader "github.com/goliatone/go-formdoc/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formdoc/internal/openapi/parser"
	"github.com/goliatone/go-formdoc/pkg/builder"
	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewBuilder constructs the OpenAPI operation to form builder.
func NewBuilder(options ...builder.Option) builder.Builder {
	return builder.NewBuilder(options...)
}
