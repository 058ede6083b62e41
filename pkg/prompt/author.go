package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formdoc/internal/casing"
	"github.com/goliatone/go-formdoc/pkg/model"
)

// DefaultFieldTypes are offered by Author unless WithFieldTypes overrides them.
var DefaultFieldTypes = []string{
	model.TypeText,
	model.TypeEmail,
	model.TypePassword,
	model.TypeTel,
	model.TypeDate,
	model.TypeNumber,
	model.TypeTextArea,
	model.TypeCheckbox,
	model.TypeDropDown,
	model.TypeRadioList,
	model.TypeCheckboxList,
	model.TypeHidden,
	model.TypeCaption,
	model.TypeSubmit,
	model.TypeReset,
	model.TypeButton,
}

// DefaultMethods are offered for the form method.
var DefaultMethods = []string{"POST", "GET", "PUT", "PATCH"}

const finishChoice = "(finish)"

// Option configures Author.
type Option func(*author)

// WithFieldTypes restricts the field types offered while authoring.
func WithFieldTypes(types ...string) Option {
	return func(a *author) {
		if len(types) > 0 {
			a.types = append([]string(nil), types...)
		}
	}
}

// WithLogger records authoring progress.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(a *author) {
		if logger != nil {
			a.logger = logger
		}
	}
}

type author struct {
	driver PromptDriver
	types  []string
	logger *zap.SugaredLogger
}

// Author asks for the form metadata, then adds fields until the user picks
// finish. The collected form is returned even when it has no fields.
func Author(ctx context.Context, driver PromptDriver, options ...Option) (*model.Form, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}
	a := &author{
		driver: driver,
		types:  DefaultFieldTypes,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}

	form, err := a.metadata(ctx)
	if err != nil {
		return nil, err
	}

	choices := append(append([]string(nil), a.types...), finishChoice)
	for {
		idx, err := a.driver.Select(ctx, SelectConfig{
			Message:  "Add a field",
			Options:  choices,
			PageSize: len(choices),
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(a.types) {
			break
		}

		field, err := a.field(ctx, a.types[idx])
		if err != nil {
			return nil, err
		}
		form.AddField(field)
		a.logger.Debugw("field authored", "type", field.Type(), "name", field.Attrs().NameOrEmpty())
		if err := a.driver.Info(ctx, fmt.Sprintf("Added %s field %q", field.Type(), field.Attrs().NameOrEmpty())); err != nil {
			return nil, err
		}
	}
	return form, nil
}

func (a *author) metadata(ctx context.Context) (*model.Form, error) {
	form := model.NewForm()

	title, err := a.optional(ctx, "Form title")
	if err != nil {
		return nil, err
	}
	form.Title = title
	if title != nil {
		form.Name = model.Ptr(casing.LowerCamel(*title))
	}

	action, err := a.optional(ctx, "Submission URL")
	if err != nil {
		return nil, err
	}
	form.Action = action

	idx, err := a.driver.Select(ctx, SelectConfig{Message: "Method", Options: DefaultMethods})
	if err != nil {
		return nil, err
	}
	if idx >= 0 && idx < len(DefaultMethods) {
		form.Method = model.Ptr(DefaultMethods[idx])
	}
	return form, nil
}

func (a *author) field(ctx context.Context, fieldType string) (model.Field, error) {
	field, err := model.NewField(fieldType)
	if err != nil {
		return nil, err
	}
	if caption, ok := field.(*model.Caption); ok {
		if err := a.caption(ctx, caption); err != nil {
			return nil, err
		}
		return caption, nil
	}

	name, err := a.driver.Input(ctx, InputConfig{Message: "Field name", Validator: requireValue})
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	attrs := field.Attrs()
	attrs.Name = model.Ptr(name)

	label, err := a.driver.Input(ctx, InputConfig{Message: "Label", Default: casing.Humanize(name)})
	if err != nil {
		return nil, err
	}
	if label = strings.TrimSpace(label); label != "" {
		attrs.Label = model.Ptr(label)
	}

	kind := model.KindOf(fieldType)
	if kind != model.KindButton && fieldType != model.TypeHidden {
		required, err := a.driver.Confirm(ctx, ConfirmConfig{Message: "Required?"})
		if err != nil {
			return nil, err
		}
		attrs.Required = required
	}

	switch f := field.(type) {
	case *model.Input:
		err = a.input(ctx, f)
	case *model.NumberInput:
		err = a.number(ctx, f)
	case *model.TextArea:
		err = a.textArea(ctx, f)
	case *model.Checkbox:
		f.Checked, err = a.driver.Confirm(ctx, ConfirmConfig{Message: "Checked by default?"})
	case *model.List:
		err = a.list(ctx, f)
	}
	if err != nil {
		return nil, err
	}
	return field, nil
}

func (a *author) caption(ctx context.Context, caption *model.Caption) error {
	title, err := a.optional(ctx, "Caption title")
	if err != nil {
		return err
	}
	caption.Title = title
	description, err := a.optional(ctx, "Caption description")
	if err != nil {
		return err
	}
	caption.Description = description
	return nil
}

func (a *author) input(ctx context.Context, input *model.Input) error {
	if input.Type() == model.TypeHidden {
		value, err := a.optional(ctx, "Value")
		if err != nil {
			return err
		}
		if value != nil {
			input.Value = *value
		}
		return nil
	}
	placeholder, err := a.optional(ctx, "Placeholder")
	input.Placeholder = placeholder
	return err
}

func (a *author) number(ctx context.Context, number *model.NumberInput) error {
	var err error
	if number.Min, err = a.optionalInt(ctx, "Minimum"); err != nil {
		return err
	}
	if number.Max, err = a.optionalInt(ctx, "Maximum"); err != nil {
		return err
	}
	if number.Min != nil && number.Max != nil && *number.Min > *number.Max {
		return fmt.Errorf("prompt: minimum %d exceeds maximum %d", *number.Min, *number.Max)
	}
	return nil
}

func (a *author) textArea(ctx context.Context, area *model.TextArea) error {
	rows, err := a.optionalInt(ctx, "Rows")
	area.Rows = rows
	return err
}

func (a *author) list(ctx context.Context, list *model.List) error {
	raw, err := a.driver.Input(ctx, InputConfig{
		Message:   "Items",
		Help:      "Comma separated value=label pairs, for example: s=Small, m=Medium",
		Validator: func(value string) error { _, err := ParseItems(value); return err },
	})
	if err != nil {
		return err
	}
	items, err := ParseItems(raw)
	if err != nil {
		return err
	}

	if list.Type() == model.TypeDropDown {
		if list.Placeholder, err = a.optional(ctx, "Placeholder"); err != nil {
			return err
		}
	}

	options := []string{"(none)"}
	for _, item := range items {
		options = append(options, item.Label())
	}
	idx, err := a.driver.Select(ctx, SelectConfig{Message: "Checked item", Options: options})
	if err != nil {
		return err
	}
	if idx > 0 && idx <= len(items) {
		items[idx-1] = items[idx-1].WithChecked(true)
	}
	list.AddItem(items...)
	return nil
}

func (a *author) optional(ctx context.Context, message string) (*string, error) {
	value, err := a.driver.Input(ctx, InputConfig{Message: message})
	if err != nil {
		return nil, err
	}
	if value = strings.TrimSpace(value); value == "" {
		return nil, nil
	}
	return &value, nil
}

func (a *author) optionalInt(ctx context.Context, message string) (*int, error) {
	value, err := a.driver.Input(ctx, InputConfig{Message: message, Validator: optionalInteger})
	if err != nil {
		return nil, err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("prompt: %s: %w", strings.ToLower(message), err)
	}
	return &parsed, nil
}

// ParseItems reads comma separated value=label pairs. A bare value gets a
// humanized label.
func ParseItems(raw string) ([]model.ListItem, error) {
	var items []model.ListItem
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		value, label, found := strings.Cut(entry, "=")
		value, label = strings.TrimSpace(value), strings.TrimSpace(label)
		if value == "" {
			return nil, fmt.Errorf("prompt: item %q has no value", entry)
		}
		if !found || label == "" {
			label = casing.Humanize(value)
		}
		items = append(items, model.NewListItem(value, label))
	}
	if len(items) == 0 {
		return nil, errors.New("prompt: at least one item is required")
	}
	return items, nil
}

func requireValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func optionalInteger(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, err := strconv.Atoi(value); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}
