package symdiff

// DiffN differentiates n with respect to v order times.
func DiffN(n Node, v *Variable, order int) (Node, error) {
	cur := n
	for i := 0; i < order; i++ {
		d, err := cur.Diff(v)
		if err != nil {
			return nil, err
		}
		cur = d
	}
	return cur, nil
}

// Gradient returns the partial derivatives of n with respect to each
// variable, in order.
func Gradient(n Node, vars []*Variable) ([]Node, error) {
	out := make([]Node, len(vars))
	for i, v := range vars {
		d, err := n.Diff(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Hessian returns the matrix of second partial derivatives of n.
func Hessian(n Node, vars []*Variable) ([][]Node, error) {
	out := make([][]Node, len(vars))
	for i, vi := range vars {
		di, err := n.Diff(vi)
		if err != nil {
			return nil, err
		}
		row, err := Gradient(di, vars)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}
