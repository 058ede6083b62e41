// Package testsupport bundles the helpers shared by package tests: golden file
// management, fixture loading and output capture.
package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdoc/pkg/model"
	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

// UpdateGoldens reports whether golden files should be rewritten instead of
// compared. Set UPDATE_GOLDENS=1 to refresh them.
func UpdateGoldens() bool {
	return os.Getenv("UPDATE_GOLDENS") != ""
}

// LoadDocument reads an OpenAPI fixture and wraps it in a Document carrying a
// file source.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MarshalForm renders form as indented canonical JSON terminated by a newline,
// the layout used by every form golden in this module.
func MarshalForm(t *testing.T, form *model.Form) []byte {
	t.Helper()

	out, err := model.MarshalIndent(form, "", "  ")
	if err != nil {
		t.Fatalf("marshal form: %v", err)
	}
	return append(out, '\n')
}

// AssertFormGolden compares the canonical rendering of form against the golden
// at path, rewriting the golden when UPDATE_GOLDENS is set.
func AssertFormGolden(t *testing.T, path string, form *model.Form) {
	t.Helper()

	got := MarshalForm(t, form)
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(strings.TrimSpace(want), strings.TrimSpace(string(got))); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", filepath.Base(path), diff)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if !UpdateGoldens() {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput runs fn against a buffer and returns what it wrote. A non-nil
// error from fn fails the test.
func CaptureOutput(t *testing.T, fn func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		t.Fatalf("capture output: %v", err)
	}
	return buf.String()
}
