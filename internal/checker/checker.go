package checker

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"regexdef/internal/ast"
	"regexdef/internal/symtab"
)

var (
	ErrUndefinedSubstitution = errors.New("undefined name in substitution")
	ErrSubstitutionCycle     = errors.New("substitution cycle")
)

// Diagnostic is one semantic error tied to the node that caused it.
type Diagnostic struct {
	Pos ast.Pos
	Err error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", d.Pos.Line, d.Pos.Column, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }

type Option func(*Checker)

// WithCollectAll makes composite nodes check every child even after one has
// failed, so that all independent errors are reported.
func WithCollectAll() Option {
	return func(c *Checker) { c.collectAll = true }
}

// WithCycleDetection rejects substitutions whose target definition refers
// back to the substituted name, directly or through other constants.
func WithCycleDetection() Option {
	return func(c *Checker) { c.detectCycles = true }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) { c.log = l }
}

// Checker validates an AST against a symbol table. By default it stops
// descending into a composite node as soon as one child fails, so only the
// first error along a depth-first, left-to-right walk is guaranteed to be
// reported.
type Checker struct {
	table        *symtab.Table
	collectAll   bool
	detectCycles bool
	log          *slog.Logger

	diags  []Diagnostic
	cycles map[string][]string
}

func New(table *symtab.Table, opts ...Option) *Checker {
	c := &Checker{table: table, log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check is a shorthand for New(table).Check(root).
func Check(root ast.Node, table *symtab.Table) bool {
	return New(table).Check(root)
}

// Check validates the tree rooted at root and marks every resolved
// substitution as bound. A nil root is valid.
func (c *Checker) Check(root ast.Node) bool {
	c.reset()
	return c.node(root)
}

// CheckProgram checks the statements of p in order, with the same
// short-circuit rule as composite nodes.
func (c *Checker) CheckProgram(p *ast.Program) bool {
	c.reset()
	if p == nil {
		return true
	}
	valid := true
	for _, s := range p.Statements {
		if !c.node(s) {
			valid = false
			if !c.collectAll {
				break
			}
		}
	}
	return valid
}

// Diagnostics returns the errors reported by the last Check or CheckProgram.
func (c *Checker) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), c.diags...)
}

func (c *Checker) reset() {
	c.diags = nil
	c.cycles = nil
}

func (c *Checker) node(n ast.Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *ast.ConstDef:
		return c.node(n.Regex)
	case *ast.RootRegex:
		return c.node(n.Expr)
	case *ast.Sequence:
		return c.both(n.Left, n.Right)
	case *ast.Alternative:
		return c.both(n.Left, n.Right)
	case *ast.And:
		return c.both(n.Left, n.Right)
	case *ast.Not:
		return c.node(n.Expr)
	case *ast.Repetition:
		return c.node(n.Expr)
	case *ast.Literal:
		return c.escapes(n, n.Value)
	case *ast.CharRange:
		return c.escapes(n, n.Value)
	case *ast.Substitute:
		return c.substitute(n)
	case *ast.Wild:
		return true
	default:
		panic(fmt.Sprintf("checker: unhandled node %T", n))
	}
}

func (c *Checker) both(left, right ast.Node) bool {
	if c.collectAll {
		l := c.node(left)
		r := c.node(right)
		return l && r
	}
	return c.node(left) && c.node(right)
}

func (c *Checker) escapes(n ast.Node, value string) bool {
	err := ValidateEscapes(value)
	if err == nil {
		return true
	}
	var esc *EscapeError
	errors.As(err, &esc)
	c.report(n.Position(), fmt.Errorf("%q: %w", value, err),
		slog.String("value", value),
		slog.Int("offset", esc.Offset),
		slog.String("reason", esc.Reason.String()))
	return false
}

func (c *Checker) substitute(n *ast.Substitute) bool {
	def, ok := c.table.Lookup(n.Name)
	if !ok {
		c.report(n.Position(), fmt.Errorf("%w: %s", ErrUndefinedSubstitution, n.Name),
			slog.String("name", n.Name))
		return false
	}
	n.Bound = true
	if c.detectCycles {
		if path := c.cycle(n.Name, def); path != nil {
			c.report(n.Position(), fmt.Errorf("%w: %s", ErrSubstitutionCycle, strings.Join(path, " -> ")),
				slog.String("name", n.Name))
			return false
		}
	}
	return true
}

// cycle returns the chain of names leading from name back to itself through
// def, or nil if name is not reachable from def.
func (c *Checker) cycle(name string, def ast.Node) []string {
	if path, ok := c.cycles[name]; ok {
		return path
	}
	visited := map[string]bool{}
	var path []string
	var reach func(ast.Node) bool
	reach = func(root ast.Node) bool {
		found := false
		ast.Walk(root, func(x ast.Node) bool {
			if found {
				return false
			}
			s, ok := x.(*ast.Substitute)
			if !ok {
				return true
			}
			if s.Name == name {
				path = append(path, s.Name)
				found = true
				return false
			}
			if visited[s.Name] {
				return false
			}
			visited[s.Name] = true
			target, ok := c.table.Lookup(s.Name)
			if !ok {
				return false
			}
			path = append(path, s.Name)
			if reach(target) {
				found = true
				return false
			}
			path = path[:len(path)-1]
			return false
		})
		return found
	}
	var result []string
	if reach(def) {
		result = append([]string{name}, path...)
	}
	if c.cycles == nil {
		c.cycles = make(map[string][]string)
	}
	c.cycles[name] = result
	return result
}

func (c *Checker) report(pos ast.Pos, err error, attrs ...slog.Attr) {
	d := Diagnostic{Pos: pos, Err: err}
	c.diags = append(c.diags, d)
	args := []any{slog.Int("line", pos.Line), slog.Int("column", pos.Column)}
	for _, a := range attrs {
		args = append(args, a)
	}
	c.log.Error(err.Error(), args...)
}
