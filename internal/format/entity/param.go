package entity

// Param is a decoded form field.
type Param struct {
	// name is the field name, immutable after construction.
	name string
	// Value is the decoded field value.
	Value string
}

// NewParam creates a form parameter.
func NewParam(name, value string) *Param {
	return &Param{name: name, Value: value}
}

// Name returns the parameter name.
func (p *Param) Name() string {
	return p.name
}

// Clone returns a copy of the parameter.
func (p *Param) Clone() *Param {
	return &Param{name: p.name, Value: p.Value}
}
