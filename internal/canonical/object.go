// Package canonical writes JSON objects whose keys are emitted by rank rather
// than by insertion order, skipping absent or defaulted properties. Callers
// describe one object level at a time; nested objects are pre-encoded and
// attached as raw values.
package canonical

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

type property struct {
	key  string
	rank int
	raw  []byte
}

// Object collects the properties of a single JSON object. The zero value is
// ready to use. The first encoding failure is retained and reported by Bytes.
type Object struct {
	props []property
	err   error
}

// Text adds a string property that is always present.
func (o *Object) Text(key string, rank int, value string) *Object {
	return o.Value(key, rank, value)
}

// String adds an optional string property. A nil pointer omits the key.
func (o *Object) String(key string, rank int, value *string) *Object {
	if value == nil {
		return o
	}
	return o.Value(key, rank, *value)
}

// Int adds an optional integer property. A nil pointer omits the key.
func (o *Object) Int(key string, rank int, value *int) *Object {
	if value == nil {
		return o
	}
	return o.add(key, rank, []byte(strconv.Itoa(*value)))
}

// Bool adds a boolean property that is always present, false included.
func (o *Object) Bool(key string, rank int, value bool) *Object {
	if value {
		return o.add(key, rank, []byte("true"))
	}
	return o.add(key, rank, []byte("false"))
}

// Flag adds a boolean property that is omitted when false.
func (o *Object) Flag(key string, rank int, value bool) *Object {
	if !value {
		return o
	}
	return o.add(key, rank, []byte("true"))
}

// Value adds an arbitrary payload encoded with encoding/json semantics. A nil
// payload, including a typed nil pointer, map or slice, omits the key.
func (o *Object) Value(key string, rank int, value any) *Object {
	if isNil(value) {
		return o
	}
	raw, err := Encode(value)
	if err != nil {
		if o.err == nil {
			o.err = fmt.Errorf("canonical: encode %q: %w", key, err)
		}
		return o
	}
	return o.add(key, rank, raw)
}

// Raw attaches an already encoded JSON value. Empty input omits the key.
func (o *Object) Raw(key string, rank int, raw []byte) *Object {
	if len(raw) == 0 {
		return o
	}
	return o.add(key, rank, raw)
}

// Fail records an error produced while preparing a nested value so Bytes can
// surface it.
func (o *Object) Fail(err error) *Object {
	if err != nil && o.err == nil {
		o.err = err
	}
	return o
}

// Bytes returns the encoded object with properties sorted by ascending rank.
// Properties sharing a rank keep the order in which they were added.
func (o *Object) Bytes() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}

	props := append([]property(nil), o.props...)
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].rank < props[j].rank
	})

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range props {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := Encode(prop.key)
		if err != nil {
			return nil, fmt.Errorf("canonical: encode key %q: %w", prop.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(prop.raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Keys reports the keys in emission order. It is mainly useful in tests.
func (o *Object) Keys() []string {
	props := append([]property(nil), o.props...)
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].rank < props[j].rank
	})
	keys := make([]string, 0, len(props))
	for _, prop := range props {
		keys = append(keys, prop.key)
	}
	return keys
}

func (o *Object) add(key string, rank int, raw []byte) *Object {
	o.props = append(o.props, property{key: key, rank: rank, raw: raw})
	return o
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
