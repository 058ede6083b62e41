package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Discriminators for the built-in field variants.
const (
	TypeText         = "text"
	TypeEmail        = "email"
	TypePassword     = "password"
	TypeTel          = "tel"
	TypeDate         = "date"
	TypeHidden       = "hidden"
	TypeNumber       = "number"
	TypeTextArea     = "textarea"
	TypeCheckbox     = "checkbox"
	TypeCheckboxList = "checkboxList"
	TypeRadioList    = "radioList"
	TypeDropDown     = "dropdown"
	TypeButton       = "button"
	TypeSubmit       = "submit"
	TypeReset        = "reset"
	TypeCaption      = "caption"
)

// Kind groups discriminators by the variant that represents them.
type Kind string

const (
	KindBase     Kind = "base"
	KindInput    Kind = "input"
	KindNumber   Kind = "number"
	KindTextArea Kind = "textarea"
	KindCheckbox Kind = "checkbox"
	KindList     Kind = "list"
	KindButton   Kind = "button"
	KindCaption  Kind = "caption"
)

var kindsByType = map[string]Kind{
	TypeText:         KindInput,
	TypeEmail:        KindInput,
	TypePassword:     KindInput,
	TypeTel:          KindInput,
	TypeDate:         KindInput,
	TypeHidden:       KindInput,
	TypeNumber:       KindNumber,
	TypeTextArea:     KindTextArea,
	TypeCheckbox:     KindCheckbox,
	TypeCheckboxList: KindList,
	TypeRadioList:    KindList,
	TypeDropDown:     KindList,
	TypeButton:       KindButton,
	TypeSubmit:       KindButton,
	TypeReset:        KindButton,
	TypeCaption:      KindCaption,
}

// KindOf reports the variant used for a discriminator. Unknown types map to
// KindBase.
func KindOf(fieldType string) Kind {
	if kind, ok := kindsByType[fieldType]; ok {
		return kind
	}
	return KindBase
}

// Field is implemented by every field variant: *BaseField, *Input,
// *NumberInput, *TextArea, *Checkbox, *List, *Button and *Caption. The set is
// closed; callers switch on the concrete type when they need variant data.
type Field interface {
	// Type returns the discriminator assigned at construction.
	Type() string
	// Attrs exposes the attributes shared by all variants.
	Attrs() *Common
	json.Marshaler

	isField()
}

// Common holds the attributes present on every field. Nil pointers mean the
// attribute was never set and is omitted from the serialised document.
// The discriminator is only assigned by NewField, the family constructors and
// the helpers in variants.go; a variant built as a struct literal has a blank
// type and fails to encode with ErrInvalidFieldType.
type Common struct {
	fieldType string

	ID          *string
	Name        *string
	Label       *string
	Description *string
	Required    bool
	Disabled    bool
}

func newCommon(fieldType string) Common {
	return Common{fieldType: fieldType}
}

func (c *Common) Type() string { return c.fieldType }

func (c *Common) Attrs() *Common { return c }

func (*Common) isField() {}

// NameOrEmpty returns the field name or "" when unset.
func (c *Common) NameOrEmpty() string {
	if c == nil || c.Name == nil {
		return ""
	}
	return *c.Name
}

// NewField constructs the variant matching fieldType. Blank types fail with
// ErrInvalidFieldType; unknown types produce a *BaseField.
func NewField(fieldType string) (Field, error) {
	fieldType, err := checkType(fieldType)
	if err != nil {
		return nil, err
	}
	common := newCommon(fieldType)
	switch KindOf(fieldType) {
	case KindInput:
		return &Input{Common: common}, nil
	case KindNumber:
		return &NumberInput{Common: common}, nil
	case KindTextArea:
		return &TextArea{Common: common}, nil
	case KindCheckbox:
		return &Checkbox{Common: common}, nil
	case KindList:
		return &List{Common: common, Items: []ListItem{}}, nil
	case KindButton:
		return &Button{Common: common}, nil
	case KindCaption:
		return &Caption{Common: common}, nil
	default:
		return &BaseField{Common: common}, nil
	}
}

// NewInput constructs an input-like field. Custom input types (for example
// "url" or "search") are accepted; types owned by another variant are not.
func NewInput(fieldType string) (*Input, error) {
	fieldType, err := checkFamily(fieldType, KindInput)
	if err != nil {
		return nil, err
	}
	return &Input{Common: newCommon(fieldType)}, nil
}

// NewList constructs a list-like field with an empty item sequence.
func NewList(fieldType string) (*List, error) {
	fieldType, err := checkFamily(fieldType, KindList)
	if err != nil {
		return nil, err
	}
	return &List{Common: newCommon(fieldType), Items: []ListItem{}}, nil
}

// NewButton constructs a button-like field.
func NewButton(fieldType string) (*Button, error) {
	fieldType, err := checkFamily(fieldType, KindButton)
	if err != nil {
		return nil, err
	}
	return &Button{Common: newCommon(fieldType)}, nil
}

// MustField panics when NewField fails. Useful for static fixtures.
func MustField(fieldType string) Field {
	field, err := NewField(fieldType)
	if err != nil {
		panic(err)
	}
	return field
}

func checkType(fieldType string) (string, error) {
	trimmed := strings.TrimSpace(fieldType)
	if trimmed == "" {
		return "", invalidFieldType("field type is required")
	}
	return trimmed, nil
}

func checkFamily(fieldType string, want Kind) (string, error) {
	trimmed, err := checkType(fieldType)
	if err != nil {
		return "", err
	}
	if kind, known := kindsByType[trimmed]; known && kind != want {
		return "", invalidFieldType(fmt.Sprintf("type %q is a %s field, not %s", trimmed, kind, want))
	}
	return trimmed, nil
}

// Ptr returns a pointer to value. It keeps optional attribute assignments to
// a single expression.
func Ptr[T any](value T) *T {
	return &value
}
