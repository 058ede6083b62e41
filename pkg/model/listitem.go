package model

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/goliatone/go-formdoc/internal/canonical"
)

const (
	rankItemValue   = -99
	rankItemLabel   = -98
	rankItemChecked = 99
)

// ListItem is a single selectable entry of a list field. Items are immutable:
// WithChecked returns a modified copy.
type ListItem struct {
	value   string
	label   string
	checked bool
}

// NewListItem returns an unchecked item.
func NewListItem(value, label string) ListItem {
	return ListItem{value: value, label: label}
}

// IntItem returns an unchecked item whose value is the decimal form of value.
func IntItem(value int64, label string) ListItem {
	return ListItem{value: strconv.FormatInt(value, 10), label: label}
}

// UUIDItem returns an unchecked item whose value is the canonical
// hyphenated form of value.
func UUIDItem(value uuid.UUID, label string) ListItem {
	return ListItem{value: value.String(), label: label}
}

// WithChecked returns a copy of the item with the checked state replaced.
func (i ListItem) WithChecked(checked bool) ListItem {
	i.checked = checked
	return i
}

func (i ListItem) Value() string { return i.value }

func (i ListItem) Label() string { return i.label }

func (i ListItem) Checked() bool { return i.checked }

// MarshalJSON writes the item as {"value":..,"label":..,"checked":..}.
// checked is always present.
func (i ListItem) MarshalJSON() ([]byte, error) {
	var obj canonical.Object
	obj.Text("value", rankItemValue, i.value)
	obj.Text("label", rankItemLabel, i.label)
	obj.Bool("checked", rankItemChecked, i.checked)
	return obj.Bytes()
}

func encodeItems(items []ListItem) ([]byte, error) {
	encoded := make([][]byte, 0, len(items))
	for _, item := range items {
		raw, err := item.MarshalJSON()
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, raw)
	}
	return canonical.Array(encoded), nil
}
