package parser

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

func loadFixture(t *testing.T, name string) pkgopenapi.Document {
	t.Helper()

	path := filepath.Join("testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile(path), data)
}

func TestOperationsKeyedByID(t *testing.T) {
	parser := New(pkgopenapi.NewParserOptions())

	ops, err := parser.Operations(context.Background(), loadFixture(t, "contact.yaml"))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}

	keys := make([]string, 0, len(ops))
	for key := range ops {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if diff := cmp.Diff([]string{"createContact", "get:/contacts"}, keys); diff != "" {
		t.Fatalf("operation keys mismatch (-want +got):\n%s", diff)
	}

	create := ops["createContact"]
	if create.Method != "POST" || create.Path != "/contacts" || create.Summary != "Create contact" {
		t.Fatalf("unexpected operation metadata: %+v", create)
	}
	if create.Description != "Registers a new contact." {
		t.Fatalf("unexpected description %q", create.Description)
	}
}

func TestRequestSchemaMergesAllOf(t *testing.T) {
	parser := New(pkgopenapi.NewParserOptions())

	ops, err := parser.Operations(context.Background(), loadFixture(t, "contact.yaml"))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	body := ops["createContact"].RequestBody

	if body.Ref != "#/components/schemas/Contact" {
		t.Fatalf("expected ref to be retained, got %q", body.Ref)
	}
	if body.Type != "object" {
		t.Fatalf("expected object type from allOf, got %q", body.Type)
	}
	if diff := cmp.Diff([]string{"age", "email", "fullName", "notes", "topic"}, body.PropertyNames()); diff != "" {
		t.Fatalf("property mismatch (-want +got):\n%s", diff)
	}
	if !body.IsRequired("email") || !body.IsRequired("fullName") || body.IsRequired("age") {
		t.Fatalf("unexpected required set %v", body.Required)
	}
	if body.Extension("x-formdoc-section") != "details" {
		t.Fatalf("expected allOf extension to merge, got %v", body.Extensions)
	}

	fullName := body.Properties["fullName"]
	if fullName.MaxLength == nil || *fullName.MaxLength != 80 || fullName.Pattern != "^[A-Za-z ]+$" {
		t.Fatalf("unexpected fullName schema: %s", fullName.DebugString())
	}

	age := body.Properties["age"]
	if age.Minimum == nil || *age.Minimum != 18 || age.Maximum == nil || *age.Maximum != 120 {
		t.Fatalf("unexpected age bounds: %+v", age)
	}

	notes := body.Properties["notes"]
	want := map[string]any{"x-formdoc-widget": "textarea"}
	if diff := cmp.Diff(want, notes.Extensions); diff != "" {
		t.Fatalf("extension mismatch (-want +got):\n%s", diff)
	}

	topic := body.Properties["topic"]
	if diff := cmp.Diff([]any{"sales", "support"}, topic.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if topic.Default != "support" {
		t.Fatalf("unexpected default %v", topic.Default)
	}
}

func TestOperationsRejectsEmptyPaths(t *testing.T) {
	const document = `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{}}`
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("empty.json"), []byte(document))

	if _, err := New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc); err == nil {
		t.Fatalf("expected error for document without paths")
	}

	partial := New(pkgopenapi.NewParserOptions(pkgopenapi.WithPartialDocuments(true)))
	ops, err := partial.Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("partial operations: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("expected no operations, got %d", len(ops))
	}
}

func TestOperationsRejectsInvalidPayload(t *testing.T) {
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("broken.json"), []byte(`{"openapi":`))
	if _, err := New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestOperationsHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(pkgopenapi.NewParserOptions()).Operations(ctx, loadFixture(t, "contact.yaml")); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestConvertSchemaHandlesRecursiveReferences(t *testing.T) {
	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Cycle", "version": "1.0.0" },
  "paths": {},
  "components": {
    "schemas": {
      "Node": {
        "type": "object",
        "properties": {
          "label": { "type": "string" },
          "parent": { "$ref": "#/components/schemas/Node" }
        }
      }
    }
  }
}`

	doc, err := openapi3.NewLoader().LoadFromData([]byte(document))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	node := convertSchema(doc.Components.Schemas["Node"])
	parent, ok := node.Properties["parent"]
	if !ok {
		t.Fatalf("expected parent property")
	}
	if parent.Ref != "#/components/schemas/Node" {
		t.Fatalf("expected recursive property to keep its ref, got %q", parent.Ref)
	}
}

func TestNullableTypeListKeepsConcreteType(t *testing.T) {
	parser := New(pkgopenapi.NewParserOptions())

	ops, err := parser.Operations(context.Background(), loadFixture(t, "profile.yaml"))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	props := ops["createProfile"].RequestBody.Properties
	got := map[string]string{"nick": props["nick"].Type, "age": props["age"].Type}
	if diff := cmp.Diff(map[string]string{"nick": "string", "age": "integer"}, got); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstSchemaType(t *testing.T) {
	tests := []struct {
		name  string
		types *openapi3.Types
		want  string
	}{
		{"nil", nil, ""},
		{"empty", &openapi3.Types{}, ""},
		{"single", &openapi3.Types{"string"}, "string"},
		{"nullable", &openapi3.Types{"string", "null"}, "string"},
		{"null first", &openapi3.Types{"null", "number"}, "number"},
		{"only null", &openapi3.Types{"null"}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstSchemaType(tt.types); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestIsOpenAPI31(t *testing.T) {
	for version, want := range map[string]bool{"3.1.0": true, " 3.1.1": true, "3.0.3": false, "": false} {
		if got := isOpenAPI31(version); got != want {
			t.Fatalf("%q: got %v want %v", version, got, want)
		}
	}
}
