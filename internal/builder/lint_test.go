package builder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdoc/internal/builder"
	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

func TestLint_CleanOperation(t *testing.T) {
	if got := builder.Lint(createContactOperation()); len(got) != 0 {
		t.Fatalf("expected no violations, got %#v", got)
	}
}

func TestLint_ReportsViolations(t *testing.T) {
	op := pkgopenapi.MustNewOperation("save", "post", "/save", pkgopenapi.Schema{
		Type:       "object",
		Extensions: map[string]any{"x-formdoc": "textarea"},
		Properties: map[string]pkgopenapi.Schema{
			"bio": {
				Type:       "string",
				Extensions: map[string]any{"x-formdoc-widget": "wysiwyg", "x-formdoc-rows": 2.5},
			},
			"code": {
				Type: "string",
				Extensions: map[string]any{
					"x-formdoc":        map[string]any{"label": 7, "skip": "yes"},
					"x-formdoc-colour": "red",
					"x-other":          "ignored",
				},
			},
		},
	})

	want := []builder.Violation{
		{Location: "save > requestBody", Message: "x-formdoc must be an object, found string"},
		{Location: "save > requestBody > properties.bio", Message: `value for "rows" must be an integer (got 2.5)`},
		{Location: "save > requestBody > properties.bio", Message: `unsupported widget "wysiwyg" (supported: hidden, password, radio, textarea)`},
		{Location: "save > requestBody > properties.code", Message: `unsupported extension key "colour" (supported: label, placeholder, rows, skip, step, widget)`},
		{Location: "save > requestBody > properties.code > label", Message: `value for "label" must be a string (got int)`},
		{Location: "save > requestBody > properties.code > skip", Message: `value for "skip" must be a boolean (got "yes")`},
	}
	if diff := cmp.Diff(want, builder.Lint(op)); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestExtensionKeys_ReturnsCopy(t *testing.T) {
	keys := builder.ExtensionKeys()
	keys[0] = "mutated"
	if builder.ExtensionKeys()[0] != "label" {
		t.Fatalf("ExtensionKeys must not expose internal state")
	}
}
