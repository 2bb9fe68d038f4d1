package ast

import (
	"bytes"
	"fmt"
)

// binding strength used when printing; higher binds tighter
const (
	precAlternative = iota + 1
	precAnd
	precSequence
	precNot
	precRepetition
	precAtom
)

func precedence(n Node) int {
	switch n.(type) {
	case *Alternative:
		return precAlternative
	case *And:
		return precAnd
	case *Sequence:
		return precSequence
	case *Not:
		return precNot
	case *Repetition:
		return precRepetition
	default:
		return precAtom
	}
}

// String renders n as source text that parses back to the same tree.
func String(n Node) string {
	var out bytes.Buffer
	write(&out, n, 0)
	return out.String()
}

// String renders the whole program, one statement per line.
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		write(&out, s, 0)
		out.WriteString("\n")
	}
	return out.String()
}

func write(out *bytes.Buffer, n Node, outer int) {
	if n == nil {
		return
	}
	if precedence(n) < outer {
		out.WriteString("(")
		defer out.WriteString(")")
	}
	switch n := n.(type) {
	case *ConstDef:
		fmt.Fprintf(out, "const %s = ", n.Name)
		write(out, n.Regex, 0)
		out.WriteString(";")
	case *RootRegex:
		write(out, n.Expr, 0)
		out.WriteString(";")
	case *Alternative:
		write(out, n.Left, precAlternative)
		out.WriteString(" | ")
		write(out, n.Right, precAlternative+1)
	case *And:
		write(out, n.Left, precAnd)
		out.WriteString(" & ")
		write(out, n.Right, precAnd+1)
	case *Sequence:
		write(out, n.Left, precSequence)
		out.WriteString(" ")
		write(out, n.Right, precSequence+1)
	case *Not:
		out.WriteString("!")
		write(out, n.Expr, precNot)
	case *Repetition:
		write(out, n.Expr, precRepetition)
		out.WriteString(n.Rep.String())
	case *Literal:
		out.WriteString(`"` + n.Value + `"`)
	case *CharRange:
		out.WriteString("[" + n.Value + "]")
	case *Wild:
		out.WriteString(".")
	case *Substitute:
		out.WriteString("${" + n.Name + "}")
	default:
		panic(fmt.Sprintf("ast: unhandled node %T", n))
	}
}
