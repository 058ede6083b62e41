// Package builder derives form documents from OpenAPI operations.
package builder

import (
	"fmt"
	"math"
	"strings"

	"github.com/goliatone/go-formdoc/pkg/model"
	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

// Builder converts OpenAPI operations into forms.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options. Zero valued options fall
// back to the defaults.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	if options.Logger != nil {
		opts.Logger = options.Logger
	}
	opts.SubmitLabel = options.SubmitLabel
	return &Builder{opts: opts}
}

// Build transforms the request body of op into a form. The operation id names
// the form, the method and path become method and action and the summary the
// title. Top level properties become fields in name order; nested objects are
// flattened behind a caption and their fields use dotted names.
func (b *Builder) Build(op pkgopenapi.Operation) (*model.Form, error) {
	if err := validateOperation(op); err != nil {
		return nil, err
	}

	form := model.NewForm(
		model.WithName(op.ID),
		model.WithMethod(strings.ToUpper(op.Method)),
		model.WithAction(op.Path),
	)
	if op.Summary != "" {
		form.Title = model.Ptr(op.Summary)
	}

	form.AddField(b.fieldsFromObject("", op.RequestBody)...)

	if b.opts.SubmitLabel != "" {
		form.AddField(model.SubmitButton("submit", b.opts.SubmitLabel))
	}

	b.opts.Logger.Debugw("form built from operation", "operation", op.ID, "fields", form.Len())
	return form, nil
}

func validateOperation(op pkgopenapi.Operation) error {
	switch {
	case op.ID == "":
		return fmt.Errorf("builder: operation id is required")
	case op.Method == "":
		return fmt.Errorf("builder: operation %q has no method", op.ID)
	case op.Path == "":
		return fmt.Errorf("builder: operation %q has no path", op.ID)
	}
	return nil
}

func (b *Builder) fieldsFromObject(prefix string, schema pkgopenapi.Schema) []model.Field {
	if schema.Ref != "" && schema.Type == "" && len(schema.Properties) == 0 {
		b.opts.Logger.Warnw("unresolved schema reference skipped", "field", prefix, "ref", schema.Ref)
		return nil
	}

	var fields []model.Field
	for _, name := range schema.PropertyNames() {
		property := schema.Properties[name]
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		fields = append(fields, b.fieldsFromSchema(path, name, property, schema.IsRequired(name))...)
	}
	return fields
}

func (b *Builder) fieldsFromSchema(path, name string, schema pkgopenapi.Schema, required bool) []model.Field {
	if schema.ReadOnly || boolExtension(schema, extSkip) {
		b.opts.Logger.Debugw("property skipped", "field", path)
		return nil
	}

	switch {
	case schema.Type == "object" || (schema.Type == "" && len(schema.Properties) > 0):
		caption := model.CaptionField(b.label(name, schema), schema.Description)
		return append([]model.Field{caption}, b.fieldsFromObject(path, schema)...)
	case schema.Type == "array":
		field, ok := b.fieldFromArray(path, name, schema, required)
		if !ok {
			b.opts.Logger.Warnw("array property skipped", "field", path, "schema", schema.DebugString())
			return nil
		}
		return []model.Field{field}
	case schema.Type == "":
		if schema.Ref != "" {
			b.opts.Logger.Warnw("unresolved schema reference skipped", "field", path, "ref", schema.Ref)
			return nil
		}
	}

	field, ok := b.fieldFromPrimitive(path, name, schema, required)
	if !ok {
		b.opts.Logger.Warnw("unsupported property skipped", "field", path, "type", schema.Type)
		return nil
	}
	return []model.Field{field}
}

// fieldFromArray maps arrays of enumerated scalars to a checkbox list. Other
// arrays have no field equivalent.
func (b *Builder) fieldFromArray(path, name string, schema pkgopenapi.Schema, required bool) (model.Field, bool) {
	if schema.Items == nil || len(schema.Items.Enum) == 0 {
		return nil, false
	}
	list := model.CheckboxList(path, b.enumItems(schema.Items.Enum, defaults(schema.Default)...)...)
	b.applyCommon(&list.Common, name, schema, required)
	return list, true
}

func (b *Builder) fieldFromPrimitive(path, name string, schema pkgopenapi.Schema, required bool) (model.Field, bool) {
	widget := stringExtension(schema, extWidget)

	var field model.Field
	switch {
	case len(schema.Enum) > 0:
		field = b.listField(path, schema, widget)
	case schema.Type == "boolean":
		box := model.CheckboxField(path)
		if checked, ok := schema.Default.(bool); ok {
			box.Checked = checked
		}
		field = box
	case schema.Type == "integer" || schema.Type == "number":
		field = numberField(path, schema)
	case schema.Type == "string":
		field = b.stringField(path, schema, widget)
	default:
		return nil, false
	}

	b.applyCommon(field.Attrs(), name, schema, required)
	return field, true
}

func (b *Builder) listField(path string, schema pkgopenapi.Schema, widget string) *model.List {
	items := b.enumItems(schema.Enum, defaults(schema.Default)...)
	if widget == widgetRadio {
		return model.RadioList(path, items...)
	}
	list := model.DropDownList(path, items...)
	if placeholder := stringExtension(schema, extPlaceholder); placeholder != "" {
		list.Placeholder = model.Ptr(placeholder)
	}
	return list
}

func numberField(path string, schema pkgopenapi.Schema) *model.NumberInput {
	number := model.NumberField(path)
	if schema.Minimum != nil {
		number.Min = model.Ptr(int(math.Ceil(*schema.Minimum)))
	}
	if schema.Maximum != nil {
		number.Max = model.Ptr(int(math.Floor(*schema.Maximum)))
	}
	if step, ok := intExtension(schema, extStep); ok {
		number.Step = model.Ptr(step)
	}
	if placeholder := stringExtension(schema, extPlaceholder); placeholder != "" {
		number.Placeholder = model.Ptr(placeholder)
	}
	number.Value = schema.Default
	return number
}

func (b *Builder) stringField(path string, schema pkgopenapi.Schema, widget string) model.Field {
	attrs := model.InputAttrs{}
	if schema.Pattern != "" {
		attrs.Pattern = model.Ptr(schema.Pattern)
	}
	if schema.MaxLength != nil {
		attrs.Size = model.Ptr(*schema.MaxLength)
	}
	if placeholder := stringExtension(schema, extPlaceholder); placeholder != "" {
		attrs.Placeholder = model.Ptr(placeholder)
	}

	if widget == widgetTextArea {
		area := model.TextAreaField(path)
		area.InputAttrs = attrs
		if rows, ok := intExtension(schema, extRows); ok {
			area.Rows = model.Ptr(rows)
		}
		area.Value = schema.Default
		return area
	}

	var input *model.Input
	switch {
	case widget == widgetHidden:
		input = model.HiddenField(path, schema.Default)
	case widget == widgetPassword || schema.Format == "password":
		input = model.PasswordField(path)
	case schema.Format == "email":
		input = model.EmailField(path)
	case schema.Format == "date":
		input = model.DateField(path)
	case schema.Format == "tel" || schema.Format == "phone":
		input = model.TelField(path)
	default:
		input = model.TextField(path)
	}
	input.InputAttrs = attrs
	input.Value = schema.Default
	return input
}

func (b *Builder) applyCommon(attrs *model.Common, name string, schema pkgopenapi.Schema, required bool) {
	if label := b.label(name, schema); label != "" {
		attrs.Label = model.Ptr(label)
	}
	if schema.Description != "" {
		attrs.Description = model.Ptr(schema.Description)
	}
	attrs.Required = required
}

func (b *Builder) label(name string, schema pkgopenapi.Schema) string {
	if label := stringExtension(schema, extLabel); label != "" {
		return label
	}
	if schema.Title != "" {
		return schema.Title
	}
	return b.opts.Labeler(name)
}

func (b *Builder) enumItems(values []any, checked ...string) []model.ListItem {
	items := make([]model.ListItem, 0, len(values))
	for _, value := range values {
		raw := fmt.Sprint(value)
		item := model.NewListItem(raw, b.opts.Labeler(raw))
		for _, def := range checked {
			if def == raw {
				item = item.WithChecked(true)
				break
			}
		}
		items = append(items, item)
	}
	return items
}

func defaults(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			out = append(out, fmt.Sprint(entry))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}
