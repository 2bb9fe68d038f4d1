package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regexdef/internal/ast"
	"regexdef/internal/symtab"
)

// MaxRepeatOps limits how many repetition operators may follow one atom.
const MaxRepeatOps = 10

var ErrTooManyRepeats = fmt.Errorf("more than %d repetition operators", MaxRepeatOps)

// Error is a syntax error, or a declaration the symbol table rejected.
type Error struct {
	Filename string
	Pos      ast.Pos
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Pos.Line, e.Pos.Column, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// ParseFile reads and parses the file at path. See Parse.
func ParseFile(path string, table *symtab.Table) (*ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(src), table)
}

// Parse parses src and inserts every constant definition into table in
// source order. A duplicate constant stops parsing with an error wrapping
// symtab.ErrAlreadyDefined.
func Parse(filename, src string, table *symtab.Table) (*ast.Program, error) {
	tree, err := grammar.ParseString(filename, src)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &Error{Filename: filename, Pos: position(perr.Position()), Msg: perr.Message(), Err: err}
		}
		return nil, err
	}
	b := &builder{filename: filename, table: table}
	prog := &ast.Program{}
	for _, s := range tree.Statements {
		n, err := b.statement(s)
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, n)
	}
	return prog, nil
}

func position(p lexer.Position) ast.Pos {
	return ast.Pos{Line: p.Line, Column: p.Column}
}

// builder turns the grammar structs into AST nodes.
type builder struct {
	filename string
	table    *symtab.Table
}

func (b *builder) errorf(p lexer.Position, err error) error {
	return &Error{Filename: b.filename, Pos: position(p), Msg: err.Error(), Err: err}
}

func (b *builder) statement(s *statement) (ast.Node, error) {
	if s.Const == nil {
		expr, err := b.alternation(s.Root)
		if err != nil {
			return nil, err
		}
		return ast.NewRootRegex(expr, position(s.Pos)), nil
	}
	c := s.Const
	regex, err := b.alternation(c.Regex)
	if err != nil {
		return nil, err
	}
	def := ast.NewConstDef(c.Name, regex, position(c.Pos))
	if err := b.table.Insert(c.Name, regex); err != nil {
		ast.Release(def)
		return nil, b.errorf(c.Pos, err)
	}
	return def, nil
}

func (b *builder) alternation(a *alternation) (ast.Node, error) {
	left, err := b.conjunction(a.Terms[0])
	if err != nil {
		return nil, err
	}
	for _, t := range a.Terms[1:] {
		right, err := b.conjunction(t)
		if err != nil {
			ast.Release(left)
			return nil, err
		}
		left = ast.NewAlternative(left, right, position(a.Pos))
	}
	return left, nil
}

func (b *builder) conjunction(c *conjunction) (ast.Node, error) {
	left, err := b.sequence(c.Terms[0])
	if err != nil {
		return nil, err
	}
	for _, t := range c.Terms[1:] {
		right, err := b.sequence(t)
		if err != nil {
			ast.Release(left)
			return nil, err
		}
		left = ast.NewAnd(left, right, position(c.Pos))
	}
	return left, nil
}

func (b *builder) sequence(s *sequence) (ast.Node, error) {
	left, err := b.unary(s.Items[0])
	if err != nil {
		return nil, err
	}
	for _, u := range s.Items[1:] {
		right, err := b.unary(u)
		if err != nil {
			ast.Release(left)
			return nil, err
		}
		left = ast.NewSequence(left, right, position(s.Pos))
	}
	return left, nil
}

func (b *builder) unary(u *unary) (ast.Node, error) {
	if u.Not != nil {
		expr, err := b.unary(u.Not)
		if err != nil {
			return nil, err
		}
		return ast.NewNot(expr, position(u.Pos)), nil
	}
	return b.repeat(u.Repeat)
}

func (b *builder) repeat(r *repeat) (ast.Node, error) {
	if len(r.Ops) > MaxRepeatOps {
		return nil, b.errorf(r.Pos, ErrTooManyRepeats)
	}
	expr, err := b.atom(r.Atom)
	if err != nil {
		return nil, err
	}
	for _, op := range r.Ops {
		expr = ast.NewRepetition(expr, repOf(op), position(r.Pos))
	}
	return expr, nil
}

func repOf(op string) ast.Rep {
	switch op {
	case "*":
		return ast.RepStar
	case "+":
		return ast.RepPlus
	case "?":
		return ast.RepQuestion
	default:
		return ast.RepNone
	}
}

func (b *builder) atom(a *atom) (ast.Node, error) {
	pos := position(a.Pos)
	switch {
	case a.Literal != nil:
		return ast.NewLiteral(trim(*a.Literal), pos), nil
	case a.Range != nil:
		return ast.NewCharRange(trim(*a.Range), pos), nil
	case a.Wild:
		return ast.NewWild(pos), nil
	case a.Subst != nil:
		return ast.NewSubstitute(*a.Subst, pos), nil
	case a.Group != nil:
		return b.alternation(a.Group)
	}
	return nil, b.errorf(a.Pos, errors.New("empty atom"))
}

// trim drops the delimiters of a String or Range token.
func trim(tok string) string {
	return tok[1 : len(tok)-1]
}
