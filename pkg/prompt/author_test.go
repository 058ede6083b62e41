package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdoc/pkg/model"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	confirm   []bool

	inputPos   int
	selectPos  int
	confirmPos int

	messages     []string
	infoMessages []string
	failAt       string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if cfg.Message == s.failAt {
		return "", ErrAborted
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted for " + cfg.Message)
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted for " + cfg.Message)
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted for " + cfg.Message)
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestAuthor_BuildsForm(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"Contact Us", "/contact",
			"full_name", "Full name", "Jane",
			"topic", "Topic", "s=Sales, support", "",
			"age", "Age", "18", "",
			"More", "",
			"send", "Send",
		},
		selectIdx: []int{0, 0, 8, 2, 5, 12, 13, 16},
		confirm:   []bool{true, false, false},
	}

	form, err := Author(context.Background(), driver)
	if err != nil {
		t.Fatalf("author: %v", err)
	}

	got, err := model.Marshal(form)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"contactUs","title":"Contact Us","method":"POST","action":"/contact","fields":[` +
		`{"type":"text","name":"full_name","label":"Full name","required":true,"placeholder":"Jane"},` +
		`{"type":"dropdown","name":"topic","label":"Topic","items":[{"value":"s","label":"Sales","checked":false},{"value":"support","label":"Support","checked":true}]},` +
		`{"type":"number","name":"age","label":"Age","min":18},` +
		`{"type":"caption","title":"More"},` +
		`{"type":"submit","name":"send","label":"Send"}]}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}

	if driver.inputPos != len(driver.inputs) || driver.selectPos != len(driver.selectIdx) || driver.confirmPos != len(driver.confirm) {
		t.Fatalf("prompts not consumed as expected: inputs=%d selects=%d confirms=%d", driver.inputPos, driver.selectPos, driver.confirmPos)
	}
	if len(driver.infoMessages) != 5 || driver.infoMessages[0] != `Added text field "full_name"` {
		t.Fatalf("unexpected info messages: %v", driver.infoMessages)
	}
}

func TestAuthor_EmptyForm(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", ""},
		selectIdx: []int{1, len(DefaultFieldTypes)},
	}

	form, err := Author(context.Background(), driver)
	if err != nil {
		t.Fatalf("author: %v", err)
	}
	got, err := model.Marshal(form)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `{"method":"GET","fields":[]}` {
		t.Fatalf("unexpected form: %s", got)
	}
}

func TestAuthor_RestrictedTypes(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", "agree", "I agree"},
		selectIdx: []int{0, 0, 1},
		confirm:   []bool{true, true},
	}

	form, err := Author(context.Background(), driver, WithFieldTypes(model.TypeCheckbox))
	if err != nil {
		t.Fatalf("author: %v", err)
	}
	got, err := model.Marshal(form)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"method":"POST","fields":[{"type":"checkbox","name":"agree","label":"I agree","required":true,"checked":true}]}`
	if string(got) != want {
		t.Fatalf("want %s\n got %s", want, got)
	}
}

func TestAuthor_Aborted(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Title", ""},
		selectIdx: []int{0, 0},
		failAt:    "Field name",
	}

	_, err := Author(context.Background(), driver)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestAuthor_RejectsInvertedBounds(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", "qty", "Qty", "10", "1"},
		selectIdx: []int{0, 5},
		confirm:   []bool{false},
	}

	if _, err := Author(context.Background(), driver); err == nil {
		t.Fatalf("expected error for minimum above maximum")
	}
}

func TestAuthor_NilDriver(t *testing.T) {
	if _, err := Author(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil driver")
	}
}

func TestParseItems(t *testing.T) {
	items, err := ParseItems(" xs = Extra small ,m,, l=")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := make([][2]string, 0, len(items))
	for _, item := range items {
		got = append(got, [2]string{item.Value(), item.Label()})
	}
	want := [][2]string{{"xs", "Extra small"}, {"m", "M"}, {"l", "L"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseItems(" , "); err == nil {
		t.Fatalf("expected error for empty item list")
	}
	if _, err := ParseItems("=Label"); err == nil {
		t.Fatalf("expected error for missing value")
	}
}
