package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formdoc/pkg/model"
)

// Transformer mutates a form after it has been built. Implementations can
// rename fields, patch labels or perform arbitrary rewrites.
type Transformer interface {
	Transform(ctx context.Context, form *model.Form) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.Form) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.Form) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// PresetTransformer applies declarative overrides loaded from a JSON or YAML
// document:
//
//	{
//	  "title": "Contact us",
//	  "labels": {"submit": "Send"},
//	  "fields": {
//	    "email": {"label": "Work email", "placeholder": "you@example.com"}
//	  }
//	}
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title  *string               `json:"title" yaml:"title"`
	Method *string               `json:"method" yaml:"method"`
	Action *string               `json:"action" yaml:"action"`
	Labels map[string]string     `json:"labels" yaml:"labels"`
	Fields map[string]fieldPatch `json:"fields" yaml:"fields"`
}

type fieldPatch struct {
	Label       *string `json:"label" yaml:"label"`
	Description *string `json:"description" yaml:"description"`
	Placeholder *string `json:"placeholder" yaml:"placeholder"`
	Required    *bool   `json:"required" yaml:"required"`
	Disabled    *bool   `json:"disabled" yaml:"disabled"`
	Rename      string  `json:"rename" yaml:"rename"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &document); err != nil {
			return nil, fmt.Errorf("preset transformer: parse document: %w", err)
		}
	} else if err := yaml.Unmarshal(trimmed, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches onto form. Every patched field must exist.
func (t *PresetTransformer) Transform(ctx context.Context, form *model.Form) error {
	if form == nil {
		return errors.New("preset transformer: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := t.document
	if doc.Title != nil {
		form.Title = model.Ptr(*doc.Title)
	}
	if doc.Method != nil {
		form.Method = model.Ptr(strings.ToUpper(*doc.Method))
	}
	if doc.Action != nil {
		form.Action = model.Ptr(*doc.Action)
	}
	for name, value := range doc.Labels {
		form.AddLabel(name, value)
	}

	names := make([]string, 0, len(doc.Fields))
	for name := range doc.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	// Targets are resolved against the names the form had before any rename.
	targets := make([]model.Field, len(names))
	for i, name := range names {
		field, ok := form.Lookup(name)
		if !ok {
			return fmt.Errorf("preset transformer: field %q not found", name)
		}
		targets[i] = field
	}
	for i, name := range names {
		if err := applyFieldPatch(targets[i], doc.Fields[name]); err != nil {
			return fmt.Errorf("preset transformer: field %q: %w", name, err)
		}
	}
	return nil
}

func applyFieldPatch(field model.Field, patch fieldPatch) error {
	attrs := field.Attrs()
	if patch.Label != nil {
		attrs.Label = model.Ptr(*patch.Label)
	}
	if patch.Description != nil {
		attrs.Description = model.Ptr(*patch.Description)
	}
	if patch.Required != nil {
		attrs.Required = *patch.Required
	}
	if patch.Disabled != nil {
		attrs.Disabled = *patch.Disabled
	}
	if patch.Placeholder != nil {
		target := placeholderOf(field)
		if target == nil {
			return fmt.Errorf("placeholder not supported for type %q", field.Type())
		}
		*target = model.Ptr(*patch.Placeholder)
	}
	if rename := strings.TrimSpace(patch.Rename); rename != "" {
		attrs.Name = model.Ptr(rename)
	}
	return nil
}

func placeholderOf(field model.Field) **string {
	switch f := field.(type) {
	case *model.Input:
		return &f.Placeholder
	case *model.NumberInput:
		return &f.Placeholder
	case *model.TextArea:
		return &f.Placeholder
	case *model.List:
		return &f.Placeholder
	}
	return nil
}
