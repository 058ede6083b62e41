package definition

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formdoc/pkg/model"
)

// Variant specific attributes accepted by each field kind. Attributes given
// for another kind are ignored with a warning.
var attributesByKind = map[model.Kind][]string{
	model.KindBase:     {"value"},
	model.KindInput:    {"placeholder", "pattern", "size", "value"},
	model.KindNumber:   {"placeholder", "pattern", "size", "min", "max", "step", "value"},
	model.KindTextArea: {"placeholder", "pattern", "size", "rows", "value"},
	model.KindCheckbox: {"checked", "value"},
	model.KindList:     {"placeholder", "items", "enum"},
	model.KindButton:   {"value"},
	model.KindCaption:  {"title"},
}

func (c config) buildForm(file formFile, source string) (*model.Form, error) {
	form := model.NewForm()
	form.Name = file.Name
	form.Title = c.text(file.Title)
	if file.Method != nil {
		form.Method = model.Ptr(strings.TrimSpace(*file.Method))
	}
	form.Action = c.action(file, source)

	for index, def := range file.Fields {
		field, err := c.buildField(def, source, index)
		if err != nil {
			return nil, err
		}
		form.AddField(field)
	}
	for key, value := range file.Labels {
		form.AddLabel(key, c.plain(value))
	}
	return form, nil
}

// action resolves the submission target. action wins over endpointUrl, which
// wins over url.
func (c config) action(file formFile, source string) *string {
	candidates := []struct {
		key   string
		value *string
	}{
		{"action", file.Action},
		{"endpointUrl", file.EndpointURL},
		{"url", file.URL},
	}

	var (
		chosen    *string
		chosenKey string
	)
	for _, candidate := range candidates {
		if candidate.value == nil {
			continue
		}
		if chosen == nil {
			chosen, chosenKey = candidate.value, candidate.key
			if candidate.key != "action" {
				c.logger.Debugw("submission target alias used", "source", source, "key", candidate.key)
			}
			continue
		}
		if *candidate.value != *chosen {
			c.logger.Warnw("conflicting submission target ignored", "source", source, "key", candidate.key, "using", chosenKey)
		}
	}
	return chosen
}

func (c config) buildField(def fieldFile, source string, index int) (model.Field, error) {
	field, err := model.NewField(def.Type)
	if err != nil {
		return nil, fmt.Errorf("definition: %s fields[%d]: %w", source, index, err)
	}

	attrs := field.Attrs()
	attrs.ID = def.ID
	attrs.Name = def.Name
	attrs.Label = c.text(def.Label)
	attrs.Description = c.text(def.Description)
	attrs.Required = def.Required
	attrs.Disabled = def.Disabled

	switch f := field.(type) {
	case *model.BaseField:
		f.Value = def.Value
	case *model.Input:
		f.InputAttrs = c.inputAttrs(def)
		f.Value = def.Value
	case *model.NumberInput:
		f.InputAttrs = c.inputAttrs(def)
		f.Min, f.Max, f.Step = def.Min, def.Max, def.Step
		f.Value = def.Value
	case *model.TextArea:
		f.InputAttrs = c.inputAttrs(def)
		f.Rows = def.Rows
		f.Value = def.Value
	case *model.Checkbox:
		if def.Checked != nil {
			f.Checked = *def.Checked
		}
		f.Value = def.Value
	case *model.List:
		f.Placeholder = c.text(def.Placeholder)
		c.appendItems(f, def, source, index)
	case *model.Button:
		f.Value = def.Value
	case *model.Caption:
		f.Title = c.text(def.Title)
	}

	c.reportIgnored(def, field.Type(), source, index)
	return field, nil
}

func (c config) inputAttrs(def fieldFile) model.InputAttrs {
	return model.InputAttrs{
		Placeholder: c.text(def.Placeholder),
		Pattern:     def.Pattern,
		Size:        def.Size,
	}
}

func (c config) appendItems(list *model.List, def fieldFile, source string, index int) {
	for _, item := range def.Items {
		list.AddItem(model.NewListItem(item.Value, c.plain(item.Label)).WithChecked(item.Checked))
	}
	if def.Enum == nil {
		return
	}

	members := make([]model.EnumMember[string], 0, len(def.Enum.Members))
	for _, member := range def.Enum.Members {
		members = append(members, model.EnumMember[string]{
			Value:       member.Name,
			Name:        member.Name,
			Description: c.plain(member.Description),
		})
	}
	enum := model.NewEnum(members...)
	if def.Enum.Default == nil {
		model.AppendEnum(list, enum)
		return
	}
	if err := enum.CheckDefault(*def.Enum.Default); err != nil {
		c.logger.Warnw("enum default is not a member", "source", source, "index", index, "default", *def.Enum.Default)
	}
	model.AppendEnumDefault(list, enum, *def.Enum.Default)
}

func (c config) reportIgnored(def fieldFile, fieldType, source string, index int) {
	allowed := make(map[string]bool)
	for _, name := range attributesByKind[model.KindOf(fieldType)] {
		allowed[name] = true
	}
	for _, name := range presentAttributes(def) {
		if !allowed[name] {
			c.logger.Warnw("attribute ignored for field type", "source", source, "index", index, "type", fieldType, "attribute", name)
		}
	}
}

func presentAttributes(def fieldFile) []string {
	var names []string
	add := func(name string, present bool) {
		if present {
			names = append(names, name)
		}
	}
	add("placeholder", def.Placeholder != nil)
	add("pattern", def.Pattern != nil)
	add("size", def.Size != nil)
	add("min", def.Min != nil)
	add("max", def.Max != nil)
	add("step", def.Step != nil)
	add("rows", def.Rows != nil)
	add("checked", def.Checked != nil)
	add("title", def.Title != nil)
	add("value", def.Value != nil)
	add("items", len(def.Items) > 0)
	add("enum", def.Enum != nil)
	return names
}
