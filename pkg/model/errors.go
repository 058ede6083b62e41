package model

import "fmt"

// ErrorCode classifies model errors.
type ErrorCode string

const (
	CodeInvalidFieldType   ErrorCode = "invalid_field_type"
	CodeInvalidEnumDefault ErrorCode = "invalid_enum_default"
)

// Error describes a construction failure. Errors with the same Code match each
// other under errors.Is, so callers compare against the exported sentinels.
type Error struct {
	Code    ErrorCode
	Message string
	Field   string
	Cause   error
}

var (
	// ErrInvalidFieldType is reported when a field is constructed with a blank
	// discriminator or with a type outside the requested family.
	ErrInvalidFieldType = &Error{Code: CodeInvalidFieldType, Message: "field type is required"}
	// ErrInvalidEnumDefault is reported by Enum.CheckDefault when the default
	// value is not a member of the enumeration.
	ErrInvalidEnumDefault = &Error{Code: CodeInvalidEnumDefault, Message: "default value is not an enum member"}
)

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("model: [%s] field %q: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("model: [%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok || other == nil {
		return false
	}
	return other.Code == e.Code
}

func invalidFieldType(message string) *Error {
	return &Error{Code: CodeInvalidFieldType, Message: message}
}
