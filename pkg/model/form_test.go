package model_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formdoc/pkg/model"
	"github.com/goliatone/go-formdoc/pkg/testsupport"
)

func mustMarshal(t *testing.T, value any) string {
	t.Helper()

	out, err := model.Marshal(value)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(out)
}

func TestEmptyForm(t *testing.T) {
	if got := mustMarshal(t, model.NewForm()); got != `{"fields":[]}` {
		t.Fatalf("unexpected empty form: %s", got)
	}

	var zero model.Form
	if got := mustMarshal(t, zero); got != `{"fields":[]}` {
		t.Fatalf("zero value form should keep fields: %s", got)
	}
}

func TestFormWithMethodAndAction(t *testing.T) {
	form := model.Form{
		Method: model.Ptr("POST"),
		Action: model.Ptr("/api/save"),
	}

	want := `{"method":"POST","action":"/api/save","fields":[]}`
	if got := mustMarshal(t, form); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}

	viaStdlib, err := json.Marshal(&form)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(viaStdlib) != want {
		t.Fatalf("json.Marshal diverged from canonical output: %s", viaStdlib)
	}
}

func TestDropDownPlaceholderRemoval(t *testing.T) {
	form := model.NewForm()
	ddl := model.DropDownList("hello")
	ddl.Placeholder = model.Ptr("Hello")
	form.AddField(ddl)

	want1 := strings.Join([]string{
		`{`,
		`  "fields": [`,
		`    {`,
		`      "type": "dropdown",`,
		`      "name": "hello",`,
		`      "placeholder": "Hello",`,
		`      "items": []`,
		`    }`,
		`  ]`,
		`}`,
	}, "\n")
	got1, err := model.MarshalIndent(form, "", "  ")
	if err != nil {
		t.Fatalf("marshal indent: %v", err)
	}
	if string(got1) != want1 {
		t.Fatalf("#1 mismatch\nwant:\n%s\ngot:\n%s", want1, got1)
	}

	ddl.Placeholder = nil

	want2 := `{"fields":[{"type":"dropdown","name":"hello","items":[]}]}`
	if got2 := mustMarshal(t, form); got2 != want2 {
		t.Fatalf("#2 mismatch\nwant: %s\n got: %s", want2, got2)
	}
}

func TestLabelsConditionalPresence(t *testing.T) {
	form := model.NewForm()
	if got := mustMarshal(t, form); strings.Contains(got, "labels") {
		t.Fatalf("expected labels to be omitted, got %s", got)
	}

	form.AddLabel("k", "v")
	if got := mustMarshal(t, form); got != `{"fields":[],"labels":{"k":"v"}}` {
		t.Fatalf("unexpected labels output: %s", got)
	}

	form.RemoveLabel("k")
	if got := mustMarshal(t, form); got != `{"fields":[]}` {
		t.Fatalf("expected labels to disappear after removal, got %s", got)
	}
}

func TestLabelsSortedByKey(t *testing.T) {
	form := model.NewForm().
		AddLabel("submit", "Send").
		AddLabel("cancel", "Back").
		AddLabel("required", "*")

	want := `{"fields":[],"labels":{"cancel":"Back","required":"*","submit":"Send"}}`
	if got := mustMarshal(t, form); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestFieldsPreserveInsertionOrder(t *testing.T) {
	form := model.NewForm()
	form.AddField(model.TextField("c"), nil, model.TextField("a"), model.TextField("b"))

	if form.Len() != 3 {
		t.Fatalf("expected nil fields to be skipped, got %d fields", form.Len())
	}

	want := `{"fields":[{"type":"text","name":"c"},{"type":"text","name":"a"},{"type":"text","name":"b"}]}`
	if got := mustMarshal(t, form); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}

	field, ok := form.Lookup("a")
	if !ok || field.Attrs().NameOrEmpty() != "a" {
		t.Fatalf("expected lookup to find field a")
	}
	if _, ok := form.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestSerializationIsDeterministic(t *testing.T) {
	form := contactForm()

	first := mustMarshal(t, form)
	for i := 0; i < 10; i++ {
		if again := mustMarshal(t, form); again != first {
			t.Fatalf("iteration %d produced different output:\n%s\n%s", i, first, again)
		}
	}
}

func TestContactFormGolden(t *testing.T) {
	got, err := model.MarshalIndent(contactForm(), "", "  ")
	if err != nil {
		t.Fatalf("marshal indent: %v", err)
	}

	goldenPath := filepath.Join("testdata", "contact_form.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, append(got, '\n')) {
		return
	}
	want := strings.TrimSpace(testsupport.MustReadGoldenString(t, goldenPath))
	if diff := testsupport.CompareGolden(want, string(got)); diff != "" {
		t.Fatalf("golden mismatch (-want +got):\n%s", diff)
	}
}

func contactForm() *model.Form {
	form := model.NewForm(
		model.WithName("contact"),
		model.WithTitle("Contact us"),
		model.WithMethod("POST"),
		model.WithAction("/api/contact"),
	)

	name := model.TextField("name")
	name.Label = model.Ptr("Name")
	name.Required = true
	name.Placeholder = model.Ptr("Jane Doe")
	name.Size = model.Ptr(40)

	email := model.EmailField("email")
	email.Label = model.Ptr("Email")
	email.Pattern = model.Ptr(`^[^@\s]+@[^@\s]+$`)

	age := model.NumberField("age")
	age.Min = model.Ptr(18)
	age.Max = model.Ptr(120)
	age.Step = model.Ptr(1)

	message := model.TextAreaField("message")
	message.Rows = model.Ptr(5)
	message.Description = model.Ptr("What's on your mind?")

	topic := model.DropDownList("topic",
		model.NewListItem("sales", "Sales"),
		model.NewListItem("support", "Support").WithChecked(true),
	)

	newsletter := model.CheckboxField("newsletter")
	newsletter.Label = model.Ptr("Subscribe")

	return form.
		AddField(
			model.CaptionField("Details", ""),
			name,
			email,
			age,
			message,
			topic,
			newsletter,
			model.SubmitButton("send", "Send"),
		).
		AddLabel("required", "Required field")
}
