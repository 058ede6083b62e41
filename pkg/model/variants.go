package model

// BaseField represents custom discriminators that carry only the common
// attributes and an optional value.
//
// Variants must be obtained from NewField or the constructors below so they
// carry a discriminator.
type BaseField struct {
	Common
	Value any
}

// InputAttrs holds the attributes shared by text-like inputs. Pattern is a
// regular expression hint for the client and is never evaluated here.
type InputAttrs struct {
	Placeholder *string
	Pattern     *string
	Size        *int
}

// Input represents text, email, password, tel, date and hidden inputs.
type Input struct {
	Common
	InputAttrs
	Value any
}

// NumberInput represents a number input with optional bounds and step.
type NumberInput struct {
	Common
	InputAttrs
	Min   *int
	Max   *int
	Step  *int
	Value any
}

// TextArea represents a multi-line text control.
type TextArea struct {
	Common
	InputAttrs
	Rows  *int
	Value any
}

// Checkbox is a single boolean selector. Checked is always serialised.
type Checkbox struct {
	Common
	Checked bool
	Value   any
}

// List represents checkbox lists, radio lists and dropdowns. Selection state
// lives on the items; lists never carry a value.
type List struct {
	Common
	Placeholder *string
	Items       []ListItem
}

// AddItem appends items in order.
func (l *List) AddItem(items ...ListItem) *List {
	l.Items = append(l.Items, items...)
	return l
}

// Checked returns the items currently marked as checked.
func (l *List) Checked() []ListItem {
	var out []ListItem
	for _, item := range l.Items {
		if item.Checked() {
			out = append(out, item)
		}
	}
	return out
}

// Button represents button, submit and reset controls.
type Button struct {
	Common
	Value any
}

// Caption is a decorative heading with an optional title and description.
type Caption struct {
	Common
	Title *string
}

func named(fieldType, name string) Common {
	common := newCommon(fieldType)
	common.Name = &name
	return common
}

// TextField returns a "text" input.
func TextField(name string) *Input {
	return &Input{Common: named(TypeText, name)}
}

// EmailField returns an "email" input.
func EmailField(name string) *Input {
	return &Input{Common: named(TypeEmail, name)}
}

// PasswordField returns a "password" input.
func PasswordField(name string) *Input {
	return &Input{Common: named(TypePassword, name)}
}

// TelField returns a "tel" input.
func TelField(name string) *Input {
	return &Input{Common: named(TypeTel, name)}
}

// DateField returns a "date" input.
func DateField(name string) *Input {
	return &Input{Common: named(TypeDate, name)}
}

// HiddenField returns a "hidden" input carrying value.
func HiddenField(name string, value any) *Input {
	return &Input{Common: named(TypeHidden, name), Value: value}
}

// NumberField returns a "number" input.
func NumberField(name string) *NumberInput {
	return &NumberInput{Common: named(TypeNumber, name)}
}

// TextAreaField returns a "textarea" control.
func TextAreaField(name string) *TextArea {
	return &TextArea{Common: named(TypeTextArea, name)}
}

// CheckboxField returns an unchecked "checkbox".
func CheckboxField(name string) *Checkbox {
	return &Checkbox{Common: named(TypeCheckbox, name)}
}

// DropDownList returns a "dropdown" list.
func DropDownList(name string, items ...ListItem) *List {
	return newNamedList(TypeDropDown, name, items)
}

// RadioList returns a "radioList" list.
func RadioList(name string, items ...ListItem) *List {
	return newNamedList(TypeRadioList, name, items)
}

// CheckboxList returns a "checkboxList" list.
func CheckboxList(name string, items ...ListItem) *List {
	return newNamedList(TypeCheckboxList, name, items)
}

func newNamedList(fieldType, name string, items []ListItem) *List {
	list := &List{Common: named(fieldType, name), Items: make([]ListItem, 0, len(items))}
	return list.AddItem(items...)
}

// ButtonField returns a plain "button".
func ButtonField(name, label string) *Button {
	return newButton(TypeButton, name, label)
}

// SubmitButton returns a "submit" button.
func SubmitButton(name, label string) *Button {
	return newButton(TypeSubmit, name, label)
}

// ResetButton returns a "reset" button.
func ResetButton(name, label string) *Button {
	return newButton(TypeReset, name, label)
}

func newButton(fieldType, name, label string) *Button {
	button := &Button{Common: named(fieldType, name)}
	button.Label = &label
	return button
}

// CaptionField returns a caption. Empty title or description are left unset.
func CaptionField(title, description string) *Caption {
	caption := &Caption{Common: newCommon(TypeCaption)}
	if title != "" {
		caption.Title = &title
	}
	if description != "" {
		caption.Description = &description
	}
	return caption
}
