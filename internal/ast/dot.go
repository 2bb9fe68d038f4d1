package ast

import (
	"fmt"
	"io"
	"strconv"
)

// WriteDOT prints a Graphviz representation of the program to w.
func WriteDOT(w io.Writer, p *Program) error {
	d := &dotWriter{w: w}
	d.printf("digraph AST {\n")
	d.printf("    node [shape=box, fontname=\"monospace\"];\n")
	d.printf("    program [shape=point];\n")
	for _, s := range p.Statements {
		id := d.node(s)
		d.printf("    program -> n%d;\n", id)
	}
	d.printf("}\n")
	return d.err
}

type dotWriter struct {
	w    io.Writer
	next int
	err  error
}

func (d *dotWriter) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dotWriter) node(n Node) int {
	id := d.next
	d.next++
	shape := "box"
	switch n.(type) {
	case *Literal, *CharRange, *Wild, *Substitute:
		shape = "ellipse"
	}
	d.printf("    n%d [label=%s, shape=%s];\n", id, strconv.Quote(label(n)), shape)
	for _, c := range Children(n) {
		cid := d.node(c)
		d.printf("    n%d -> n%d;\n", id, cid)
	}
	return id
}

func label(n Node) string {
	switch n := n.(type) {
	case *ConstDef:
		return "const " + n.Name
	case *Repetition:
		return "Repetition " + n.Rep.String()
	case *Literal:
		return `"` + n.Value + `"`
	case *CharRange:
		return "[" + n.Value + "]"
	case *Substitute:
		if n.Bound {
			return "${" + n.Name + "} (bound)"
		}
		return "${" + n.Name + "}"
	default:
		return n.Kind().String()
	}
}
