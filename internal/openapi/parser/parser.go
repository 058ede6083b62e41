// Package parser extracts operations from OpenAPI documents with kin-openapi.
package parser

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

// ExtensionNamespace prefixes the vendor extensions copied onto schemas and
// operations. Other extensions are dropped.
const ExtensionNamespace = "x-formdoc"

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
	logger  *zap.SugaredLogger
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) *Parser {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Parser{options: options, logger: logger}
}

var methods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPost,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodHead,
	http.MethodOptions,
	http.MethodTrace,
}

// Operations converts a Document into a map keyed by operationId. Operations
// without an id are keyed "method:path" with a lower-case method.
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !p.options.AllowPartialDocuments {
			return nil, errors.New("openapi parser: document does not contain any paths")
		}
	}

	// openapi3 validation only knows the 3.0 vocabulary and rejects 3.1 type
	// lists carrying "null".
	if p.options.ResolveReferences && isOpenAPI31(spec.OpenAPI) {
		p.logger.Debugw("document validation skipped", "openapi", spec.OpenAPI)
	} else if p.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	operations := make(map[string]pkgopenapi.Operation)
	if spec.Paths != nil {
		paths := spec.Paths.Map()
		keys := make([]string, 0, len(paths))
		for path := range paths {
			keys = append(keys, path)
		}
		sort.Strings(keys)

		for _, path := range keys {
			item := paths[path]
			if item == nil {
				continue
			}
			for _, method := range methods {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				p.collectOperation(operations, method, path, item.GetOperation(method))
			}
		}
	}

	if len(operations) == 0 && !p.options.AllowPartialDocuments {
		return nil, errors.New("openapi parser: no operations extracted")
	}

	p.logger.Debugw("openapi operations extracted", "location", doc.Location(), "count", len(operations))
	return operations, nil
}

func (p *Parser) collectOperation(target map[string]pkgopenapi.Operation, method, path string, operation *openapi3.Operation) {
	if operation == nil {
		return
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}
	if _, exists := target[opID]; exists {
		p.logger.Warnw("duplicate operation id skipped", "operation", opID, "method", method, "path", path)
		return
	}

	op, err := pkgopenapi.NewOperation(opID, method, path, extractRequestSchema(operation.RequestBody))
	if err != nil {
		p.logger.Warnw("invalid operation skipped", "operation", opID, "error", err)
		return
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	op.Extensions = extractExtensions(operation.Extensions)
	target[opID] = op
}

var formMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

func extractRequestSchema(requestBody *openapi3.RequestBodyRef) pkgopenapi.Schema {
	if requestBody == nil {
		return pkgopenapi.Schema{}
	}
	if requestBody.Value == nil {
		return pkgopenapi.Schema{Ref: requestBody.Ref}
	}
	content := requestBody.Value.Content
	for _, mediaType := range formMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return convertSchema(mt.Schema)
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil {
			return convertSchema(mt.Schema)
		}
	}
	return pkgopenapi.Schema{}
}

func convertSchema(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	return newConverter().convert(ref)
}

// converter tracks the schemas on the current descent so recursive
// references terminate with a Ref-only node.
type converter struct {
	visiting map[*openapi3.Schema]bool
}

func newConverter() *converter {
	return &converter{visiting: make(map[*openapi3.Schema]bool)}
}

func (c *converter) convert(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Value == nil {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	src := ref.Value
	if c.visiting[src] {
		return pkgopenapi.Schema{Ref: ref.Ref, Type: firstSchemaType(src.Type)}
	}
	c.visiting[src] = true
	defer delete(c.visiting, src)

	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Title:       src.Title,
		Description: src.Description,
		Default:     src.Default,
		Pattern:     src.Pattern,
		ReadOnly:    src.ReadOnly,
		Extensions:  extractExtensions(src.Extensions),
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = c.convert(property)
		}
	}
	if src.Items != nil {
		items := c.convert(src.Items)
		schema.Items = &items
	}
	if src.Min != nil {
		value := *src.Min
		schema.Minimum = &value
	}
	if src.Max != nil {
		value := *src.Max
		schema.Maximum = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		schema.MaxLength = &value
	}

	for _, part := range src.AllOf {
		c.mergeAllOf(&schema, part)
	}
	return schema
}

// mergeAllOf folds an allOf member into target. Properties, required names and
// extensions are unioned; scalar attributes already set on target win.
func (c *converter) mergeAllOf(target *pkgopenapi.Schema, ref *openapi3.SchemaRef) {
	part := c.convert(ref)
	if target.Type == "" {
		target.Type = part.Type
	}
	if target.Description == "" {
		target.Description = part.Description
	}
	for name, property := range part.Properties {
		if target.Properties == nil {
			target.Properties = make(map[string]pkgopenapi.Schema, len(part.Properties))
		}
		if _, exists := target.Properties[name]; !exists {
			target.Properties[name] = property
		}
	}
	for _, name := range part.Required {
		if !target.IsRequired(name) {
			target.Required = append(target.Required, name)
		}
	}
	for key, value := range part.Extensions {
		if target.Extensions == nil {
			target.Extensions = make(map[string]any, len(part.Extensions))
		}
		if _, exists := target.Extensions[key]; !exists {
			target.Extensions[key] = value
		}
	}
}

func isOpenAPI31(version string) bool {
	return strings.HasPrefix(strings.TrimSpace(version), "3.1")
}

// firstSchemaType picks the concrete type of an OpenAPI 3.1 type list. The
// "null" member only marks the property nullable.
func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	for _, value := range values {
		if value != openapi3.TypeNull {
			return value
		}
	}
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

func extractExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	result := make(map[string]any)
	for key, value := range raw {
		if key == ExtensionNamespace || strings.HasPrefix(key, ExtensionNamespace+"-") {
			result[key] = value
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
