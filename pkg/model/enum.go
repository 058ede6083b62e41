package model

import (
	"fmt"

	"github.com/goliatone/go-formdoc/internal/casing"
)

// EnumMember describes one constant of an enumeration: its Go value, its
// identifier and an optional human readable annotation.
type EnumMember[T comparable] struct {
	Value       T
	Name        string
	Description string
}

// Describer is implemented by enumeration values carrying a display
// annotation. EnumOf uses it to fill EnumMember.Description.
type Describer interface {
	Description() string
}

// Enum is an ordered, closed set of members. The declaration order given to
// NewEnum or EnumOf is the order of the projected list items.
type Enum[T comparable] struct {
	members []EnumMember[T]
}

// NewEnum builds an enumeration from an explicit member table.
func NewEnum[T comparable](members ...EnumMember[T]) Enum[T] {
	return Enum[T]{members: append([]EnumMember[T](nil), members...)}
}

// EnumOf builds an enumeration from values whose String method yields the
// member identifier.
func EnumOf[T interface {
	comparable
	fmt.Stringer
}](values ...T) Enum[T] {
	members := make([]EnumMember[T], 0, len(values))
	for _, value := range values {
		member := EnumMember[T]{Value: value, Name: value.String()}
		if describer, ok := any(value).(Describer); ok {
			member.Description = describer.Description()
		}
		members = append(members, member)
	}
	return Enum[T]{members: members}
}

// Members returns a copy of the member table.
func (e Enum[T]) Members() []EnumMember[T] {
	return append([]EnumMember[T](nil), e.members...)
}

func (e Enum[T]) Len() int { return len(e.members) }

// Contains reports whether value is a member.
func (e Enum[T]) Contains(value T) bool {
	for _, member := range e.members {
		if member.Value == value {
			return true
		}
	}
	return false
}

// CheckDefault returns ErrInvalidEnumDefault when def is not a member.
// Projection never fails; this lets callers surface the mismatch themselves.
func (e Enum[T]) CheckDefault(def T) error {
	if e.Contains(def) {
		return nil
	}
	return &Error{
		Code:    CodeInvalidEnumDefault,
		Message: fmt.Sprintf("default %v is not one of %d members", def, len(e.members)),
	}
}

// Items projects every member into an unchecked list item.
func (e Enum[T]) Items() []ListItem {
	return e.project(func(EnumMember[T]) bool { return false })
}

// ItemsWithDefault projects every member, checking the one equal to def. A
// default outside the member set leaves every item unchecked.
func (e Enum[T]) ItemsWithDefault(def T) []ListItem {
	return e.project(func(member EnumMember[T]) bool { return member.Value == def })
}

func (e Enum[T]) project(checked func(EnumMember[T]) bool) []ListItem {
	items := make([]ListItem, 0, len(e.members))
	for _, member := range e.members {
		items = append(items, member.item(checked(member)))
	}
	return items
}

func (m EnumMember[T]) item(checked bool) ListItem {
	label := m.Description
	if label == "" {
		label = m.Name
	}
	return ListItem{value: casing.LowerCamel(m.Name), label: label, checked: checked}
}

// AppendEnum appends the unchecked projection of e to list.
func AppendEnum[T comparable](list *List, e Enum[T]) *List {
	return list.AddItem(e.Items()...)
}

// AppendEnumDefault appends the projection of e to list with def checked.
func AppendEnumDefault[T comparable](list *List, e Enum[T], def T) *List {
	return list.AddItem(e.ItemsWithDefault(def)...)
}
