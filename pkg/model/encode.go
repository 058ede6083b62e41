package model

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formdoc/internal/canonical"
)

// Field property ranks. Identity properties come first, variant properties in
// the middle, bulk payloads last.
const (
	rankType        = -99
	rankID          = -98
	rankName        = -97
	rankLabel       = -96
	rankDescription = -95
	rankRequired    = -94
	rankDisabled    = -93

	rankTitle       = 0
	rankPlaceholder = 10
	rankPattern     = 11
	rankSize        = 12
	rankMin         = 20
	rankMax         = 21
	rankStep        = 22
	rankRows        = 30
	rankChecked     = 40

	rankValue = 500
	rankItems = 510
)

// Form property ranks.
const (
	rankFormName   = -99
	rankFormTitle  = -98
	rankFormMethod = -97
	rankFormAction = -96
	rankFormFields = 500
	rankFormLabels = 510
)

var nullJSON = []byte("null")

// Marshal encodes a Form, Field or ListItem into canonical JSON. Other values
// are encoded with encoding/json semantics and HTML escaping disabled.
//
// Marshal and MarshalIndent are the only canonical encoders. json.Marshal and
// json.Encoder accept the MarshalJSON output but re-escape <, > and & as
// \u003c, \u003e and \u0026.
func Marshal(value any) ([]byte, error) {
	switch v := value.(type) {
	case *Form:
		if v == nil {
			return nullJSON, nil
		}
		return v.MarshalJSON()
	case Form:
		return v.MarshalJSON()
	case Field:
		return encodeField(v)
	case ListItem:
		return v.MarshalJSON()
	default:
		return canonical.Encode(value)
	}
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(value any, prefix, indent string) ([]byte, error) {
	compact, err := Marshal(value)
	if err != nil {
		return nil, err
	}
	return canonical.Indent(compact, prefix, indent)
}

// MarshalJSON writes the form in canonical order: name, title, method,
// action, fields and labels. fields is always present; labels only when
// non-empty. Use Marshal for byte-exact output; encoding/json escapes markup
// in the returned document.
func (f Form) MarshalJSON() ([]byte, error) {
	var obj canonical.Object
	obj.String("name", rankFormName, f.Name)
	obj.String("title", rankFormTitle, f.Title)
	obj.String("method", rankFormMethod, f.Method)
	obj.String("action", rankFormAction, f.Action)

	fields := make([][]byte, 0, len(f.Fields))
	for i, field := range f.Fields {
		if field == nil {
			continue
		}
		raw, err := encodeField(field)
		if err != nil {
			return nil, fmt.Errorf("model: encode fields[%d]: %w", i, err)
		}
		fields = append(fields, raw)
	}
	obj.Raw("fields", rankFormFields, canonical.Array(fields))

	if len(f.Labels) > 0 {
		labels, err := encodeLabels(f.Labels)
		if err != nil {
			return nil, err
		}
		obj.Raw("labels", rankFormLabels, labels)
	}
	return obj.Bytes()
}

func encodeLabels(labels map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var obj canonical.Object
	for _, key := range keys {
		obj.Text(key, 0, labels[key])
	}
	return obj.Bytes()
}

func (f *BaseField) MarshalJSON() ([]byte, error) { return encodeField(f) }

func (f *Input) MarshalJSON() ([]byte, error) { return encodeField(f) }

func (f *NumberInput) MarshalJSON() ([]byte, error) { return encodeField(f) }

func (f *TextArea) MarshalJSON() ([]byte, error) { return encodeField(f) }

func (f *Checkbox) MarshalJSON() ([]byte, error) { return encodeField(f) }

func (f *List) MarshalJSON() ([]byte, error) { return encodeField(f) }

func (f *Button) MarshalJSON() ([]byte, error) { return encodeField(f) }

func (f *Caption) MarshalJSON() ([]byte, error) { return encodeField(f) }

func encodeField(field Field) ([]byte, error) {
	attrs := attrsOf(field)
	if attrs == nil {
		return nullJSON, nil
	}
	if attrs.fieldType == "" {
		err := invalidFieldType("field type is required")
		err.Field = attrs.NameOrEmpty()
		return nil, err
	}

	var obj canonical.Object
	writeCommon(&obj, attrs)

	switch f := field.(type) {
	case *BaseField:
		obj.Value("value", rankValue, f.Value)
	case *Input:
		writeInputAttrs(&obj, f.InputAttrs)
		obj.Value("value", rankValue, f.Value)
	case *NumberInput:
		writeInputAttrs(&obj, f.InputAttrs)
		obj.Int("min", rankMin, f.Min)
		obj.Int("max", rankMax, f.Max)
		obj.Int("step", rankStep, f.Step)
		obj.Value("value", rankValue, f.Value)
	case *TextArea:
		writeInputAttrs(&obj, f.InputAttrs)
		obj.Int("rows", rankRows, f.Rows)
		obj.Value("value", rankValue, f.Value)
	case *Checkbox:
		obj.Bool("checked", rankChecked, f.Checked)
		obj.Value("value", rankValue, f.Value)
	case *List:
		obj.String("placeholder", rankPlaceholder, f.Placeholder)
		items, err := encodeItems(f.Items)
		obj.Fail(err)
		obj.Raw("items", rankItems, items)
	case *Button:
		obj.Value("value", rankValue, f.Value)
	case *Caption:
		obj.String("title", rankTitle, f.Title)
	}

	raw, err := obj.Bytes()
	if err != nil {
		return nil, fmt.Errorf("model: encode %s field %q: %w", attrs.Type(), attrs.NameOrEmpty(), err)
	}
	return raw, nil
}

func writeCommon(obj *canonical.Object, attrs *Common) {
	obj.Text("type", rankType, attrs.Type())
	obj.String("id", rankID, attrs.ID)
	obj.String("name", rankName, attrs.Name)
	obj.String("label", rankLabel, attrs.Label)
	obj.String("description", rankDescription, attrs.Description)
	obj.Flag("required", rankRequired, attrs.Required)
	obj.Flag("disabled", rankDisabled, attrs.Disabled)
}

func writeInputAttrs(obj *canonical.Object, attrs InputAttrs) {
	obj.String("placeholder", rankPlaceholder, attrs.Placeholder)
	obj.String("pattern", rankPattern, attrs.Pattern)
	obj.Int("size", rankSize, attrs.Size)
}

// attrsOf returns the common attributes of field, or nil for nil interfaces
// and typed nil pointers.
func attrsOf(field Field) *Common {
	switch f := field.(type) {
	case *BaseField:
		if f != nil {
			return &f.Common
		}
	case *Input:
		if f != nil {
			return &f.Common
		}
	case *NumberInput:
		if f != nil {
			return &f.Common
		}
	case *TextArea:
		if f != nil {
			return &f.Common
		}
	case *Checkbox:
		if f != nil {
			return &f.Common
		}
	case *List:
		if f != nil {
			return &f.Common
		}
	case *Button:
		if f != nil {
			return &f.Common
		}
	case *Caption:
		if f != nil {
			return &f.Common
		}
	}
	return nil
}
