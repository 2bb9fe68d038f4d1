package ast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(line, col int) Pos { return Pos{Line: line, Column: col} }

// one node of every kind, each with fresh leaf children
func sampleNodes() []Node {
	leaf := func() Node { return NewLiteral("a", at(1, 1)) }
	return []Node{
		NewConstDef("A", leaf(), at(1, 1)),
		NewRootRegex(leaf(), at(1, 1)),
		NewSequence(leaf(), leaf(), at(1, 1)),
		NewAlternative(leaf(), leaf(), at(1, 1)),
		NewRepetition(leaf(), RepStar, at(1, 1)),
		NewNot(leaf(), at(1, 1)),
		NewAnd(leaf(), leaf(), at(1, 1)),
		NewLiteral("x", at(1, 1)),
		NewWild(at(1, 1)),
		NewCharRange("a-z", at(1, 1)),
		NewSubstitute("A", at(1, 1)),
	}
}

func TestSampleCoversEveryKind(t *testing.T) {
	seen := map[Kind]bool{}
	for _, n := range sampleNodes() {
		seen[n.Kind()] = true
	}
	for k := Kind(0); k < kindCount; k++ {
		assert.True(t, seen[k], "no sample for %v", k)
	}
}

func TestChildren(t *testing.T) {
	want := map[Kind]int{
		KindConstDef:    1,
		KindRootRegex:   1,
		KindSequence:    2,
		KindAlternative: 2,
		KindAnd:         2,
		KindNot:         1,
		KindRepetition:  1,
		KindLiteral:     0,
		KindCharRange:   0,
		KindWild:        0,
		KindSubstitute:  0,
	}
	for _, n := range sampleNodes() {
		assert.Len(t, Children(n), want[n.Kind()], n.Kind().String())
	}
	assert.Empty(t, Children(nil))
}

func TestReleaseDetachesEveryChild(t *testing.T) {
	for _, n := range sampleNodes() {
		Release(n)
		assert.Empty(t, Children(n), "%v still owns children after Release", n.Kind())
	}
	// nil and already released trees are no-ops
	Release(nil)
	seq := NewSequence(NewWild(at(1, 1)), nil, at(1, 1))
	Release(seq)
	Release(seq)
	assert.Nil(t, seq.Left)
}

func TestReleaseProgram(t *testing.T) {
	p := &Program{Statements: sampleNodes()}
	p.Release()
	assert.Empty(t, p.Statements)

	var nilProg *Program
	nilProg.Release()
}

func TestWalkPreOrder(t *testing.T) {
	tree := NewConstDef("A",
		NewAlternative(
			NewSequence(NewLiteral("a", at(1, 12)), NewWild(at(1, 16)), at(1, 12)),
			NewSubstitute("B", at(1, 20)),
			at(1, 12)),
		at(1, 1))

	var kinds []string
	Walk(tree, func(n Node) bool {
		kinds = append(kinds, n.Kind().String())
		return true
	})
	assert.Equal(t, []string{"ConstDef", "Alternative", "Sequence", "Literal", "Wild", "Substitute"}, kinds)

	count := 0
	Walk(tree, func(n Node) bool {
		count++
		return n.Kind() != KindAlternative
	})
	assert.Equal(t, 2, count)
}

func TestSubstituteStartsUnbound(t *testing.T) {
	s := NewSubstitute("X", at(3, 7))
	assert.False(t, s.Bound)
	assert.Equal(t, at(3, 7), s.Position())
	assert.Equal(t, "3:7", s.Position().String())
}

func TestString(t *testing.T) {
	lit := func(v string) Node { return NewLiteral(v, at(1, 1)) }
	tests := []struct {
		node Node
		want string
	}{
		{NewConstDef("A", lit("abc"), at(1, 1)), `const A = "abc";`},
		{NewRootRegex(NewSubstitute("A", at(1, 1)), at(1, 1)), `${A};`},
		{NewAlternative(lit("a"), NewAnd(lit("b"), lit("c"), at(1, 1)), at(1, 1)), `"a" | "b" & "c"`},
		{NewAnd(NewAlternative(lit("a"), lit("b"), at(1, 1)), lit("c"), at(1, 1)), `("a" | "b") & "c"`},
		{NewSequence(lit("a"), NewSequence(lit("b"), lit("c"), at(1, 1)), at(1, 1)), `"a" ("b" "c")`},
		{NewSequence(NewSequence(lit("a"), lit("b"), at(1, 1)), lit("c"), at(1, 1)), `"a" "b" "c"`},
		{NewNot(NewRepetition(NewWild(at(1, 1)), RepStar, at(1, 1)), at(1, 1)), `!.*`},
		{NewRepetition(NewNot(NewWild(at(1, 1)), at(1, 1)), RepPlus, at(1, 1)), `(!.)+`},
		{NewRepetition(NewRepetition(NewCharRange("0-9", at(1, 1)), RepPlus, at(1, 1)), RepQuestion, at(1, 1)), `[0-9]+?`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, String(tt.node))
	}
}

func TestProgramString(t *testing.T) {
	p := &Program{Statements: []Node{
		NewConstDef("D", NewCharRange("0-9", at(1, 11)), at(1, 1)),
		NewRootRegex(NewRepetition(NewSubstitute("D", at(2, 1)), RepPlus, at(2, 1)), at(2, 1)),
	}}
	assert.Equal(t, "const D = [0-9];\n${D}+;\n", p.String())
}

func TestWriteDOT(t *testing.T) {
	sub := NewSubstitute("A", at(2, 1))
	sub.Bound = true
	p := &Program{Statements: []Node{
		NewConstDef("A", NewLiteral(`a"b`, at(1, 11)), at(1, 1)),
		NewRootRegex(sub, at(2, 1)),
	}}
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, p))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph AST {"))
	assert.Contains(t, out, `n0 [label="const A", shape=box];`)
	assert.Contains(t, out, `n1 [label="\"a\"b\"", shape=ellipse];`)
	assert.Contains(t, out, "n0 -> n1;")
	assert.Contains(t, out, `label="${A} (bound)"`)
	assert.Contains(t, out, "program -> n2;")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "CharRange", KindCharRange.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, "", RepNone.String())
}
