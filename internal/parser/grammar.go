package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`},
	{Name: "Range", Pattern: `\[(\\.|[^\]\\\n])*\]`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `\$\{|[}();=|&!*+?.]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// Grammar, loosest binding first:
//
//	program     = statement* ;
//	statement   = "const" Ident "=" alternation ";" | alternation ";" ;
//	alternation = conjunction ( "|" conjunction )* ;
//	conjunction = sequence ( "&" sequence )* ;
//	sequence    = unary+ ;
//	unary       = "!" unary | repeat ;
//	repeat      = atom ( "*" | "+" | "?" )* ;
//	atom        = String | Range | "." | "${" Ident "}" | "(" alternation ")" ;

type program struct {
	Statements []*statement `parser:"@@*"`
}

type statement struct {
	Pos   lexer.Position
	Const *constDecl   `parser:"  @@"`
	Root  *alternation `parser:"| @@ ';'"`
}

type constDecl struct {
	Pos   lexer.Position
	Name  string       `parser:"'const' @Ident '='"`
	Regex *alternation `parser:"@@ ';'"`
}

type alternation struct {
	Pos   lexer.Position
	Terms []*conjunction `parser:"@@ ( '|' @@ )*"`
}

type conjunction struct {
	Pos   lexer.Position
	Terms []*sequence `parser:"@@ ( '&' @@ )*"`
}

type sequence struct {
	Pos   lexer.Position
	Items []*unary `parser:"@@+"`
}

type unary struct {
	Pos    lexer.Position
	Not    *unary  `parser:"  '!' @@"`
	Repeat *repeat `parser:"| @@"`
}

type repeat struct {
	Pos  lexer.Position
	Atom *atom    `parser:"@@"`
	Ops  []string `parser:"@( '*' | '+' | '?' )*"`
}

type atom struct {
	Pos     lexer.Position
	Literal *string      `parser:"  @String"`
	Range   *string      `parser:"| @Range"`
	Wild    bool         `parser:"| @'.'"`
	Subst   *string      `parser:"| '${' @Ident '}'"`
	Group   *alternation `parser:"| '(' @@ ')'"`
}

var grammar = participle.MustBuild[program](
	participle.Lexer(regexLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)
