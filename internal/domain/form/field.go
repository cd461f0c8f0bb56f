package form

// Definition declares one input of a form layout.
type Definition struct {
	// Name identifies the field in events and snapshots.
	Name string
	// Label is the human-readable caption.
	Label string
	// Rule is the validator tag the value must satisfy on blur
	// (e.g. "required,email"). An empty rule accepts anything.
	Rule string
	// Secret marks fields whose value must not be echoed back to clients.
	Secret bool
}

// Field is the live state of one input.
type Field struct {
	Definition
	Value string
	State State
}

// FieldView is a read-only copy of a Field with its rendered border colour.
type FieldView struct {
	Name   string
	Label  string
	Value  string
	Secret bool
	State  State
	Border string
}

// Snapshot is an immutable view of a whole form.
type Snapshot struct {
	Fields []FieldView
	Notice Notice
	Focus  string
}

// Field returns the view of the named field.
func (s Snapshot) Field(name string) (FieldView, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldView{}, false
}
