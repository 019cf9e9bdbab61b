package symdiff

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Trees serialize to tagged JSON objects. Named canonical constants
// travel by name so the exact singleton (and infinities, which JSON
// numbers cannot carry) survives a round trip.

type treeJSON struct {
	Op    string     `json:"op"`
	Name  string     `json:"name,omitempty"`
	Value *float64   `json:"value,omitempty"`
	Args  []treeJSON `json:"args,omitempty"`
}

// MarshalTree encodes a tree as JSON.
func MarshalTree(n Node) ([]byte, error) {
	b, err := json.Marshal(encodeTree(n))
	return b, errors.Wrap(err, "marshal expression tree")
}

func encodeTree(n Node) treeJSON {
	switch t := n.(type) {
	case *Constant:
		if t.name != "" {
			return treeJSON{Op: OpConstant.String(), Name: t.name}
		}
		v := t.value
		return treeJSON{Op: OpConstant.String(), Value: &v}
	case *Variable:
		return treeJSON{Op: OpVariable.String(), Name: t.name}
	default:
		args := n.Args()
		out := treeJSON{Op: n.Op().String(), Args: make([]treeJSON, len(args))}
		for i, a := range args {
			out.Args[i] = encodeTree(a)
		}
		return out
	}
}

// UnmarshalTree decodes a tree encoded by MarshalTree. Variables resolve
// through the process-wide lookup-or-create entry point.
func UnmarshalTree(data []byte) (Node, error) {
	var t treeJSON
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "unmarshal expression tree")
	}
	return decodeTree(t)
}

func decodeTree(t treeJSON) (Node, error) {
	op, ok := opFromName(t.Op)
	if !ok {
		return nil, errors.Errorf("unknown operator %q", t.Op)
	}
	switch op {
	case OpConstant:
		if t.Name != "" {
			c, ok := canonicalByName(t.Name)
			if !ok {
				return nil, errors.Errorf("unknown named constant %q", t.Name)
			}
			return c, nil
		}
		if t.Value == nil {
			return nil, errors.New("constant needs a value or a name")
		}
		return Const(*t.Value), nil
	case OpVariable:
		if t.Name == "" {
			return nil, errors.New("variable needs a name")
		}
		return Var(t.Name), nil
	}
	if len(t.Args) != op.Arity() {
		return nil, errors.Errorf("%s takes %d arguments, got %d", op, op.Arity(), len(t.Args))
	}
	args := make([]Node, len(t.Args))
	for i, a := range t.Args {
		child, err := decodeTree(a)
		if err != nil {
			return nil, err
		}
		args[i] = child
	}
	if op.Arity() == 1 {
		return &unary{op: op, arg: args[0]}, nil
	}
	return &binary{op: op, left: args[0], right: args[1]}, nil
}
