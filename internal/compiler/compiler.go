package compiler

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"regexdef/internal/ast"
	"regexdef/internal/checker"
	"regexdef/internal/config"
	"regexdef/internal/parser"
	"regexdef/internal/symtab"
)

// ErrParse wraps every error that stopped a source from being parsed.
var ErrParse = errors.New("parsing failed")

// Session carries the results of one compilation from phase to phase.
type Session struct {
	Name        string
	Program     *ast.Program
	Table       *symtab.Table
	Valid       bool
	Diagnostics []checker.Diagnostic
}

// CompileFile parses and checks the file at path.
func CompileFile(path string, cfg config.Check, log *slog.Logger) (*Session, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return CompileString(path, string(src), cfg, log)
}

// CompileString parses and checks src. A returned error means the source
// could not be parsed; semantic problems are reported through
// Session.Valid and Session.Diagnostics instead.
func CompileString(name, src string, cfg config.Check, log *slog.Logger) (*Session, error) {
	s := &Session{Name: name, Table: symtab.New()}
	log = log.With(slog.String("file", name))

	prog, err := parser.Parse(name, src, s.Table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	s.Program = prog
	log.Debug("parsed", slog.Int("statements", len(prog.Statements)), slog.Int("constants", s.Table.Len()))

	c := checker.New(s.Table, Options(cfg, log)...)
	s.Valid = c.CheckProgram(prog)
	s.Diagnostics = c.Diagnostics()
	log.Debug("checked", slog.Bool("valid", s.Valid), slog.Int("diagnostics", len(s.Diagnostics)))
	return s, nil
}

// Options translates the check section of the configuration into checker
// options.
func Options(cfg config.Check, log *slog.Logger) []checker.Option {
	opts := []checker.Option{checker.WithLogger(log)}
	if cfg.Mode == config.CollectAll {
		opts = append(opts, checker.WithCollectAll())
	}
	if cfg.DetectCycles {
		opts = append(opts, checker.WithCycleDetection())
	}
	return opts
}

// Release drops the AST and the symbol table. The session must not be used
// afterwards.
func (s *Session) Release() {
	s.Table = nil
	s.Program.Release()
	s.Program = nil
}
