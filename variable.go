package symdiff

// Variable is a named symbol leaf. Instances are interned by a Registry,
// so two variables are the same symbol exactly when their names match.
type Variable struct {
	name string
}

// Name returns the variable's unique name.
func (v *Variable) Name() string { return v.name }

func (v *Variable) Op() Op       { return OpVariable }
func (v *Variable) Args() []Node { return nil }

func (v *Variable) Diff(w *Variable) (Node, error) {
	if v.Equal(w) {
		return One, nil
	}
	return Zero, nil
}

func (v *Variable) Call(binds Bindings) (float64, error) {
	if val, ok := binds[v.name]; ok {
		return val, nil
	}
	return 0, &MissingBindingError{Name: v.name}
}

func (v *Variable) DependsOn(w *Variable) bool { return v.Equal(w) }

func (v *Variable) Equal(other Node) bool {
	o, ok := other.(*Variable)
	return ok && o.name == v.name
}

func (v *Variable) FreeVariables() []*Variable { return []*Variable{v} }

func (v *Variable) Render() string { return v.name }
func (v *Variable) LaTeX() string  { return v.name }
func (v *Variable) Source() string { return v.name }
