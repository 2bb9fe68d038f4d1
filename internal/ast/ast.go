package ast

import "fmt"

// Pos is a source position, 1-based.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

type Kind int

const (
	KindConstDef Kind = iota
	KindRootRegex
	KindSequence
	KindAlternative
	KindRepetition
	KindNot
	KindAnd
	KindLiteral
	KindWild
	KindCharRange
	KindSubstitute

	kindCount
)

var kindNames = [...]string{
	KindConstDef:    "ConstDef",
	KindRootRegex:   "RootRegex",
	KindSequence:    "Sequence",
	KindAlternative: "Alternative",
	KindRepetition:  "Repetition",
	KindNot:         "Not",
	KindAnd:         "And",
	KindLiteral:     "Literal",
	KindWild:        "Wild",
	KindCharRange:   "CharRange",
	KindSubstitute:  "Substitute",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Rep is the operator of a Repetition node.
type Rep int

const (
	RepNone     Rep = iota
	RepStar         // *
	RepPlus         // +
	RepQuestion     // ?
)

func (r Rep) String() string {
	switch r {
	case RepStar:
		return "*"
	case RepPlus:
		return "+"
	case RepQuestion:
		return "?"
	default:
		return ""
	}
}

// Node is one of the concrete node types declared in this file. The set is
// closed: isNode is unexported so no other package can add a variant.
type Node interface {
	Kind() Kind
	Position() Pos
	isNode()
}

type base struct {
	Pos Pos
}

func (b *base) Position() Pos { return b.Pos }
func (*base) isNode()         {}

// ConstDef is a top-level `const Name = Regex;` declaration.
type ConstDef struct {
	base
	Name  string
	Regex Node
}

// RootRegex wraps a top-level pattern statement.
type RootRegex struct {
	base
	Expr Node
}

type Sequence struct {
	base
	Left, Right Node
}

type Alternative struct {
	base
	Left, Right Node
}

type And struct {
	base
	Left, Right Node
}

type Not struct {
	base
	Expr Node
}

type Repetition struct {
	base
	Expr Node
	Rep  Rep
}

// Literal holds the text between the quotes, %x escapes left undecoded.
type Literal struct {
	base
	Value string
}

// CharRange holds the text between the brackets, %x escapes left undecoded.
type CharRange struct {
	base
	Value string
}

type Wild struct {
	base
}

// Substitute references a constant by name. Bound is set by the checker once
// Name resolves.
type Substitute struct {
	base
	Name  string
	Bound bool
}

func (*ConstDef) Kind() Kind    { return KindConstDef }
func (*RootRegex) Kind() Kind   { return KindRootRegex }
func (*Sequence) Kind() Kind    { return KindSequence }
func (*Alternative) Kind() Kind { return KindAlternative }
func (*And) Kind() Kind         { return KindAnd }
func (*Not) Kind() Kind         { return KindNot }
func (*Repetition) Kind() Kind  { return KindRepetition }
func (*Literal) Kind() Kind     { return KindLiteral }
func (*CharRange) Kind() Kind   { return KindCharRange }
func (*Wild) Kind() Kind        { return KindWild }
func (*Substitute) Kind() Kind  { return KindSubstitute }

func NewConstDef(name string, regex Node, pos Pos) *ConstDef {
	return &ConstDef{base: base{pos}, Name: name, Regex: regex}
}

func NewRootRegex(expr Node, pos Pos) *RootRegex {
	return &RootRegex{base: base{pos}, Expr: expr}
}

func NewSequence(left, right Node, pos Pos) *Sequence {
	return &Sequence{base: base{pos}, Left: left, Right: right}
}

func NewAlternative(left, right Node, pos Pos) *Alternative {
	return &Alternative{base: base{pos}, Left: left, Right: right}
}

func NewAnd(left, right Node, pos Pos) *And {
	return &And{base: base{pos}, Left: left, Right: right}
}

func NewNot(expr Node, pos Pos) *Not {
	return &Not{base: base{pos}, Expr: expr}
}

func NewRepetition(expr Node, rep Rep, pos Pos) *Repetition {
	return &Repetition{base: base{pos}, Expr: expr, Rep: rep}
}

func NewLiteral(value string, pos Pos) *Literal {
	return &Literal{base: base{pos}, Value: value}
}

func NewCharRange(value string, pos Pos) *CharRange {
	return &CharRange{base: base{pos}, Value: value}
}

func NewWild(pos Pos) *Wild {
	return &Wild{base: base{pos}}
}

func NewSubstitute(name string, pos Pos) *Substitute {
	return &Substitute{base: base{pos}, Name: name}
}

// Program is the ordered list of top-level statements of one source file.
// Each statement is a *ConstDef or a *RootRegex.
type Program struct {
	Statements []Node
}

// Children returns the subtrees owned by n, left to right. Nil children are
// omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case nil:
	case *ConstDef:
		add(n.Regex)
	case *RootRegex:
		add(n.Expr)
	case *Sequence:
		add(n.Left)
		add(n.Right)
	case *Alternative:
		add(n.Left)
		add(n.Right)
	case *And:
		add(n.Left)
		add(n.Right)
	case *Not:
		add(n.Expr)
	case *Repetition:
		add(n.Expr)
	case *Literal, *CharRange, *Wild, *Substitute:
	default:
		panic(fmt.Sprintf("ast: unhandled node %T", n))
	}
	return out
}

// Release detaches every subtree owned by n, depth first, so that nothing
// reachable from n keeps the tree alive. Releasing nil is a no-op.
func Release(n Node) {
	switch n := n.(type) {
	case nil:
	case *ConstDef:
		Release(n.Regex)
		n.Regex = nil
	case *RootRegex:
		Release(n.Expr)
		n.Expr = nil
	case *Sequence:
		Release(n.Left)
		Release(n.Right)
		n.Left, n.Right = nil, nil
	case *Alternative:
		Release(n.Left)
		Release(n.Right)
		n.Left, n.Right = nil, nil
	case *And:
		Release(n.Left)
		Release(n.Right)
		n.Left, n.Right = nil, nil
	case *Not:
		Release(n.Expr)
		n.Expr = nil
	case *Repetition:
		Release(n.Expr)
		n.Expr = nil
	case *Literal, *CharRange, *Wild, *Substitute:
	default:
		panic(fmt.Sprintf("ast: unhandled node %T", n))
	}
}

// Release releases every statement and empties the program.
func (p *Program) Release() {
	if p == nil {
		return
	}
	for _, s := range p.Statements {
		Release(s)
	}
	p.Statements = nil
}

// Walk visits n and its descendants in pre-order. If fn returns false the
// children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
