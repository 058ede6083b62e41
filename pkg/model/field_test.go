package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdoc/pkg/model"
)

func TestNewFieldRejectsBlankType(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		field, err := model.NewField(input)
		if err == nil {
			t.Fatalf("expected error for type %q", input)
		}
		if field != nil {
			t.Fatalf("expected nil field for type %q", input)
		}
		if !errors.Is(err, model.ErrInvalidFieldType) {
			t.Fatalf("expected ErrInvalidFieldType, got %v", err)
		}
		var modelErr *model.Error
		if !errors.As(err, &modelErr) || modelErr.Code != model.CodeInvalidFieldType {
			t.Fatalf("expected *model.Error with invalid_field_type code, got %#v", err)
		}
	}
}

func TestNewFieldSelectsVariant(t *testing.T) {
	cases := map[string]string{
		model.TypeText:         "*model.Input",
		model.TypeHidden:       "*model.Input",
		model.TypeNumber:       "*model.NumberInput",
		model.TypeTextArea:     "*model.TextArea",
		model.TypeCheckbox:     "*model.Checkbox",
		model.TypeDropDown:     "*model.List",
		model.TypeRadioList:    "*model.List",
		model.TypeCheckboxList: "*model.List",
		model.TypeSubmit:       "*model.Button",
		model.TypeCaption:      "*model.Caption",
		"signature":            "*model.BaseField",
	}

	for fieldType, want := range cases {
		field, err := model.NewField(fieldType)
		if err != nil {
			t.Fatalf("new field %q: %v", fieldType, err)
		}
		if got := typeName(field); got != want {
			t.Errorf("NewField(%q) = %s, want %s", fieldType, got, want)
		}
		if field.Type() != fieldType {
			t.Errorf("expected discriminator %q, got %q", fieldType, field.Type())
		}
	}
}

func typeName(field model.Field) string {
	switch field.(type) {
	case *model.BaseField:
		return "*model.BaseField"
	case *model.Input:
		return "*model.Input"
	case *model.NumberInput:
		return "*model.NumberInput"
	case *model.TextArea:
		return "*model.TextArea"
	case *model.Checkbox:
		return "*model.Checkbox"
	case *model.List:
		return "*model.List"
	case *model.Button:
		return "*model.Button"
	case *model.Caption:
		return "*model.Caption"
	}
	return "unknown"
}

func TestFamilyConstructors(t *testing.T) {
	input, err := model.NewInput("url")
	if err != nil {
		t.Fatalf("custom input type: %v", err)
	}
	if input.Type() != "url" {
		t.Fatalf("expected url type, got %q", input.Type())
	}

	if _, err := model.NewInput(model.TypeDropDown); !errors.Is(err, model.ErrInvalidFieldType) {
		t.Fatalf("expected dropdown to be rejected as an input, got %v", err)
	}
	if _, err := model.NewList(model.TypeText); !errors.Is(err, model.ErrInvalidFieldType) {
		t.Fatalf("expected text to be rejected as a list, got %v", err)
	}
	if _, err := model.NewButton(" "); !errors.Is(err, model.ErrInvalidFieldType) {
		t.Fatalf("expected blank button type to be rejected, got %v", err)
	}

	list, err := model.NewList(model.TypeRadioList)
	if err != nil {
		t.Fatalf("new list: %v", err)
	}
	if got := mustMarshal(t, list); got != `{"type":"radioList","items":[]}` {
		t.Fatalf("unexpected list output: %s", got)
	}
}

func TestCheckboxAlwaysEmitsChecked(t *testing.T) {
	box := model.CheckboxField("terms")
	if got := mustMarshal(t, box); got != `{"type":"checkbox","name":"terms","checked":false}` {
		t.Fatalf("unexpected checkbox output: %s", got)
	}

	box.Checked = true
	box.Value = "yes"
	if got := mustMarshal(t, box); got != `{"type":"checkbox","name":"terms","checked":true,"value":"yes"}` {
		t.Fatalf("unexpected checked checkbox output: %s", got)
	}
}

func TestRequiredDefaultOmission(t *testing.T) {
	field := model.TextField("name")
	field.Required = true
	if got := mustMarshal(t, field); got != `{"type":"text","name":"name","required":true}` {
		t.Fatalf("unexpected required output: %s", got)
	}

	field.Required = false
	if got := mustMarshal(t, field); got != `{"type":"text","name":"name"}` {
		t.Fatalf("expected required to be omitted, got %s", got)
	}

	field.Disabled = true
	if got := mustMarshal(t, field); got != `{"type":"text","name":"name","disabled":true}` {
		t.Fatalf("unexpected disabled output: %s", got)
	}
}

func TestUnsetAttributesAreOmitted(t *testing.T) {
	fields := []model.Field{
		model.MustField("signature"),
		model.TextField("a"),
		model.NumberField("b"),
		model.TextAreaField("c"),
		model.DropDownList("d"),
		model.ButtonField("e", "E"),
		model.CaptionField("", ""),
	}
	for _, field := range fields {
		got := mustMarshal(t, field)
		if strings.Contains(got, "null") {
			t.Errorf("%s: unexpected null in %s", field.Type(), got)
		}
		for _, key := range []string{"placeholder", "pattern", "size", "min", "max", "step", "rows", "description", "id", "value", "title"} {
			if strings.Contains(got, `"`+key+`"`) {
				t.Errorf("%s: expected %q to be omitted, got %s", field.Type(), key, got)
			}
		}
	}
}

func TestEmptyStringIsDistinctFromUnset(t *testing.T) {
	field := model.TextField("q")
	field.Placeholder = model.Ptr("")
	field.Size = model.Ptr(0)

	if got := mustMarshal(t, field); got != `{"type":"text","name":"q","placeholder":"","size":0}` {
		t.Fatalf("expected explicit empty values to be written, got %s", got)
	}
}

func TestTypedNilValueIsOmitted(t *testing.T) {
	var payload *string
	field := model.HiddenField("token", payload)
	if got := mustMarshal(t, field); got != `{"type":"hidden","name":"token"}` {
		t.Fatalf("expected typed nil value to be omitted, got %s", got)
	}
}

func TestOrderingIgnoresAssignmentOrder(t *testing.T) {
	first := model.NumberField("qty")
	first.Step = model.Ptr(2)
	first.Max = model.Ptr(10)
	first.Value = 4
	first.Label = model.Ptr("Quantity")
	first.Min = model.Ptr(0)
	first.Required = true
	first.Placeholder = model.Ptr("0")

	second := model.NumberField("qty")
	second.Placeholder = model.Ptr("0")
	second.Required = true
	second.Min = model.Ptr(0)
	second.Label = model.Ptr("Quantity")
	second.Value = 4
	second.Max = model.Ptr(10)
	second.Step = model.Ptr(2)

	want := `{"type":"number","name":"qty","label":"Quantity","required":true,"placeholder":"0","min":0,"max":10,"step":2,"value":4}`
	if got := mustMarshal(t, first); got != want {
		t.Fatalf("first: want %s, got %s", want, got)
	}
	if diff := cmp.Diff(mustMarshal(t, first), mustMarshal(t, second)); diff != "" {
		t.Fatalf("assignment order changed output (-first +second):\n%s", diff)
	}
}

func TestIdentityTierOrder(t *testing.T) {
	field := model.TextAreaField("bio")
	field.Rows = model.Ptr(4)
	field.Description = model.Ptr("About you")
	field.ID = model.Ptr("bio-field")
	field.Label = model.Ptr("Bio")
	field.Pattern = model.Ptr(".{10,}")
	field.Size = model.Ptr(80)
	field.Value = "Hello"

	want := `{"type":"textarea","id":"bio-field","name":"bio","label":"Bio","description":"About you","pattern":".{10,}","size":80,"rows":4,"value":"Hello"}`
	if got := mustMarshal(t, field); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestCaptionTitleFollowsIdentity(t *testing.T) {
	caption := model.CaptionField("Shipping", "Where should we send it?")
	want := `{"type":"caption","description":"Where should we send it?","title":"Shipping"}`
	if got := mustMarshal(t, caption); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestStructuredValue(t *testing.T) {
	field := model.MustField("signature").(*model.BaseField)
	field.Value = map[string]any{"z": 1, "a": []int{1, 2}}
	if got := mustMarshal(t, field); got != `{"type":"signature","value":{"a":[1,2],"z":1}}` {
		t.Fatalf("unexpected structured value output: %s", got)
	}
}

func TestMarkupIsNotEscaped(t *testing.T) {
	field := model.TextField("html")
	field.Label = model.Ptr("<b>Bold</b> & more")
	if got := mustMarshal(t, field); got != `{"type":"text","name":"html","label":"<b>Bold</b> & more"}` {
		t.Fatalf("unexpected escaping: %s", got)
	}
}

func TestUnencodableValueReturnsError(t *testing.T) {
	field := model.HiddenField("bad", func() {})
	if _, err := model.Marshal(field); err == nil {
		t.Fatalf("expected encode error for func value")
	} else if !strings.Contains(err.Error(), `"bad"`) {
		t.Fatalf("expected field name in error, got %v", err)
	}

	form := model.NewForm().AddField(field)
	if _, err := model.Marshal(form); err == nil {
		t.Fatalf("expected form encode to surface field error")
	}
}

func TestTypedNilFieldDoesNotPanic(t *testing.T) {
	var input *model.Input
	form := model.NewForm().AddField(input)

	if got := mustMarshal(t, form); got != `{"fields":[null]}` {
		t.Fatalf("unexpected output for typed nil field: %s", got)
	}
}

func TestMustField(t *testing.T) {
	if got := model.MustField("email").Type(); got != model.TypeEmail {
		t.Fatalf("type: got %q", got)
	}

	defer func() {
		recovered := recover()
		err, ok := recovered.(error)
		if !ok || !errors.Is(err, model.ErrInvalidFieldType) {
			t.Fatalf("expected ErrInvalidFieldType panic, got %v", recovered)
		}
	}()
	model.MustField(" ")
}

func TestStructLiteralWithoutTypeFailsToEncode(t *testing.T) {
	field := &model.Input{}
	field.Name = model.Ptr("nick")

	_, err := model.Marshal(field)
	if !errors.Is(err, model.ErrInvalidFieldType) {
		t.Fatalf("expected ErrInvalidFieldType, got %v", err)
	}
	if !strings.Contains(err.Error(), `"nick"`) {
		t.Fatalf("expected field name in error, got %v", err)
	}

	if _, err := model.Marshal(model.NewForm().AddField(field)); !errors.Is(err, model.ErrInvalidFieldType) {
		t.Fatalf("expected form encode to fail, got %v", err)
	}
}

func TestEncodingJSONEscapesMarkupUnlikeMarshal(t *testing.T) {
	form := model.NewForm().AddField(model.TextField("html"))
	form.Fields[0].Attrs().Label = model.Ptr("<b>A</b> & B")

	canonical, err := model.Marshal(form)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"fields":[{"type":"text","name":"html","label":"<b>A</b> & B"}]}`; string(canonical) != want {
		t.Fatalf("canonical: got %s want %s", canonical, want)
	}

	escaped, err := json.Marshal(form)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	if want := `{"fields":[{"type":"text","name":"html","label":"\u003cb\u003eA\u003c/b\u003e \u0026 B"}]}`; string(escaped) != want {
		t.Fatalf("encoding/json: got %s want %s", escaped, want)
	}
}
