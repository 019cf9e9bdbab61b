package symdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// WriteDOT emits n as a Graphviz digraph: one graph node per tree node,
// labeled with the operator name or leaf text, with ordered child edges.
// The walk is read-only.
func WriteDOT(w io.Writer, n Node) error {
	var sb strings.Builder
	sb.WriteString("digraph expression {\n")
	sb.WriteString("\tnode [shape=box];\n")
	next := 0
	var emit func(n Node) int
	emit = func(n Node) int {
		id := next
		next++
		fmt.Fprintf(&sb, "\tn%d [label=%q];\n", id, dotLabel(n))
		for _, child := range n.Args() {
			cid := emit(child)
			fmt.Fprintf(&sb, "\tn%d -> n%d;\n", id, cid)
		}
		return id
	}
	emit(n)
	sb.WriteString("}\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "write dot graph")
	}
	return nil
}

func dotLabel(n Node) string {
	switch t := n.(type) {
	case *Constant:
		return t.Render()
	case *Variable:
		return t.name
	default:
		return n.Op().String()
	}
}
