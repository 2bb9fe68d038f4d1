package symtab

import (
	"errors"
	"fmt"

	"regexdef/internal/ast"
)

// ErrAlreadyDefined is matched by every error Insert returns.
var ErrAlreadyDefined = errors.New("already defined")

// DuplicateDefinitionError reports a second declaration of Name.
type DuplicateDefinitionError struct {
	Name string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("constant %q %v", e.Name, ErrAlreadyDefined)
}

func (e *DuplicateDefinitionError) Unwrap() error { return ErrAlreadyDefined }

// Table maps constant names to their regex subtrees. It does not own the
// subtrees; the AST does.
type Table struct {
	defs  map[string]ast.Node
	names []string
}

func New() *Table {
	return &Table{defs: make(map[string]ast.Node)}
}

// Insert records name -> def. A name can only be inserted once; later
// attempts leave the first definition in place.
func (t *Table) Insert(name string, def ast.Node) error {
	if _, ok := t.defs[name]; ok {
		return &DuplicateDefinitionError{Name: name}
	}
	t.defs[name] = def
	t.names = append(t.names, name)
	return nil
}

func (t *Table) Lookup(name string) (ast.Node, bool) {
	def, ok := t.defs[name]
	return def, ok
}

func (t *Table) Len() int { return len(t.names) }

// Names returns the declared names in declaration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

func (t *Table) String() string {
	return fmt.Sprint(t.names)
}
