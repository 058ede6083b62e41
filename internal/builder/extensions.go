package builder

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	pkgopenapi "github.com/goliatone/go-formdoc/pkg/openapi"
)

// Schema extensions understood by the builder. Each may also be given inside
// an "x-formdoc" object using the suffix as key, for example
// {"x-formdoc": {"widget": "textarea"}}.
const (
	extensionNamespace = "x-formdoc"

	extWidget      = "widget"
	extLabel       = "label"
	extPlaceholder = "placeholder"
	extRows        = "rows"
	extStep        = "step"
	extSkip        = "skip"
)

// Widget overrides selected through the widget extension.
const (
	widgetTextArea = "textarea"
	widgetHidden   = "hidden"
	widgetRadio    = "radio"
	widgetPassword = "password"
)

func extension(schema pkgopenapi.Schema, key string) (any, bool) {
	if len(schema.Extensions) == 0 {
		return nil, false
	}
	if value, ok := schema.Extensions[extensionNamespace+"-"+key]; ok {
		return value, true
	}
	if nested, ok := schema.Extensions[extensionNamespace].(map[string]any); ok {
		value, ok := nested[key]
		return value, ok
	}
	return nil, false
}

func stringExtension(schema pkgopenapi.Schema, key string) string {
	value, ok := extension(schema, key)
	if !ok {
		return ""
	}
	str, _ := value.(string)
	return strings.TrimSpace(str)
}

func intExtension(schema pkgopenapi.Schema, key string) (int, bool) {
	value, ok := extension(schema, key)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		parsed, err := v.Int64()
		return int(parsed), err == nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		return parsed, err == nil
	}
	return 0, false
}

func boolExtension(schema pkgopenapi.Schema, key string) bool {
	value, ok := extension(schema, key)
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	}
	return false
}
