package builder

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

// Violation reports an extension the builder cannot honour.
type Violation struct {
	// Location is a " > " separated path such as
	// "createContact > requestBody > properties.notes".
	Location string
	Message  string
}

var (
	extensionKeys = []string{extLabel, extPlaceholder, extRows, extSkip, extStep, extWidget}
	widgets       = []string{widgetHidden, widgetPassword, widgetRadio, widgetTextArea}
)

// ExtensionKeys lists the supported extension suffixes in lexical order.
func ExtensionKeys() []string {
	return append([]string(nil), extensionKeys...)
}

// Lint walks the request body of op and reports unknown extension keys and
// values of the wrong shape. Violations are returned in location order.
func Lint(op pkgopenapi.Operation) []Violation {
	base := []string{op.ID}
	result := lintExtensions(base, op.Extensions)
	result = append(result, lintSchema(append(base, "requestBody"), op.RequestBody)...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Location < result[j].Location
	})
	return result
}

func lintSchema(path []string, schema pkgopenapi.Schema) []Violation {
	result := lintExtensions(path, schema.Extensions)
	for _, key := range schema.PropertyNames() {
		result = append(result, lintSchema(appendPath(path, "properties."+key), schema.Properties[key])...)
	}
	if schema.Items != nil {
		result = append(result, lintSchema(appendPath(path, "items"), *schema.Items)...)
	}
	return result
}

func lintExtensions(path []string, extensions map[string]any) []Violation {
	if len(extensions) == 0 {
		return nil
	}

	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var result []Violation
	for _, key := range keys {
		value := extensions[key]
		switch {
		case key == extensionNamespace:
			nested, ok := value.(map[string]any)
			if !ok {
				result = append(result, violation(path, "%s must be an object, found %T", extensionNamespace, value))
				continue
			}
			nestedKeys := make([]string, 0, len(nested))
			for nestedKey := range nested {
				nestedKeys = append(nestedKeys, nestedKey)
			}
			sort.Strings(nestedKeys)
			for _, nestedKey := range nestedKeys {
				result = append(result, validateHint(appendPath(path, nestedKey), nestedKey, nested[nestedKey])...)
			}
		case strings.HasPrefix(key, extensionNamespace+"-"):
			result = append(result, validateHint(path, strings.TrimPrefix(key, extensionNamespace+"-"), value)...)
		}
	}
	return result
}

func validateHint(path []string, key string, value any) []Violation {
	if key == "" {
		return []Violation{violation(path, "extension key is empty")}
	}

	probe := pkgopenapi.Schema{Extensions: map[string]any{extensionNamespace + "-" + key: value}}
	switch key {
	case extLabel, extPlaceholder:
		if _, ok := value.(string); !ok {
			return []Violation{violation(path, "value for %q must be a string (got %T)", key, value)}
		}
	case extRows, extStep:
		if _, ok := intExtension(probe, key); !ok {
			return []Violation{violation(path, "value for %q must be an integer (got %v)", key, value)}
		}
	case extSkip:
		switch v := value.(type) {
		case bool:
		case string:
			if v = strings.TrimSpace(v); v != "true" && v != "false" {
				return []Violation{violation(path, "value for %q must be a boolean (got %q)", key, v)}
			}
		default:
			return []Violation{violation(path, "value for %q must be a boolean (got %T)", key, value)}
		}
	case extWidget:
		widget := stringExtension(probe, key)
		if !slices.Contains(widgets, widget) {
			return []Violation{violation(path, "unsupported widget %q (supported: %s)", fmt.Sprint(value), strings.Join(widgets, ", "))}
		}
	default:
		return []Violation{violation(path, "unsupported extension key %q (supported: %s)", key, strings.Join(extensionKeys, ", "))}
	}
	return nil
}

func violation(path []string, format string, args ...any) Violation {
	return Violation{Location: strings.Join(path, " > "), Message: fmt.Sprintf(format, args...)}
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}
