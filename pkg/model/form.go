package model

// Form is the document root: metadata, the ordered field sequence and a
// client side label dictionary. Fields are rendered in insertion order.
type Form struct {
	Name   *string
	Title  *string
	Method *string
	// Action is the submission target.
	Action *string

	Fields []Field
	Labels map[string]string
}

// FormOption configures a Form created by NewForm.
type FormOption func(*Form)

// WithName sets the form name.
func WithName(name string) FormOption {
	return func(f *Form) { f.Name = &name }
}

// WithTitle sets the form title.
func WithTitle(title string) FormOption {
	return func(f *Form) { f.Title = &title }
}

// WithMethod sets the HTTP method hint.
func WithMethod(method string) FormOption {
	return func(f *Form) { f.Method = &method }
}

// WithAction sets the submission target.
func WithAction(action string) FormOption {
	return func(f *Form) { f.Action = &action }
}

// NewForm returns an empty form with the supplied options applied.
func NewForm(options ...FormOption) *Form {
	form := &Form{
		Fields: []Field{},
		Labels: map[string]string{},
	}
	for _, opt := range options {
		opt(form)
	}
	return form
}

// AddField appends fields in order. Nil interface values are skipped.
func (f *Form) AddField(fields ...Field) *Form {
	for _, field := range fields {
		if field == nil {
			continue
		}
		f.Fields = append(f.Fields, field)
	}
	return f
}

// AddLabel stores a label override, replacing an existing entry.
func (f *Form) AddLabel(name, value string) *Form {
	if f.Labels == nil {
		f.Labels = make(map[string]string)
	}
	f.Labels[name] = value
	return f
}

// RemoveLabel deletes a label override if present.
func (f *Form) RemoveLabel(name string) *Form {
	delete(f.Labels, name)
	return f
}

// Len reports the number of fields.
func (f *Form) Len() int {
	return len(f.Fields)
}

// Lookup returns the first field with the given name.
func (f *Form) Lookup(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field == nil {
			continue
		}
		if attrs := attrsOf(field); attrs != nil && attrs.NameOrEmpty() == name {
			return field, true
		}
	}
	return nil, false
}
