package dao

// Parameter narrows List results; Name is a record field such as a session user
// and Value is either one accepted string or a list of them.
type Parameter struct {
	Name  string
	Value interface{}
}

// Values returns the accepted strings, nil when Value holds anything else.
func (p *Parameter) Values() []string {
	switch actual := p.Value.(type) {
	case string:
		return []string{actual}
	case []string:
		return actual
	}
	return nil
}

// NewParameter creates a filter accepting any of values.
func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}
