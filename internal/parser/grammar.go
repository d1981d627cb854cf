package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar is declared as tagged structs and compiled by participle.
// Keywords are matched case-insensitively; strings accept single or double
// quotes. The gram* structs are a parse-shaped mirror of the ast package
// and are lowered immediately after parsing.

var sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\n]*`},
	{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
	{Name: "Float", Pattern: `-?\d+\.\d+`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[(),;*=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var sqlParser = participle.MustBuild[gramScript](
	participle.Lexer(sqlLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(2),
)

type gramScript struct {
	Statements []*gramStatement `parser:"@@? ( ';' @@? )*"`
}

type gramStatement struct {
	Create *gramCreateTable `parser:"  @@"`
	Alter  *gramAlterTable  `parser:"| @@"`
	Drop   *gramDropTable   `parser:"| @@"`
	Insert *gramInsert      `parser:"| @@"`
	Update *gramUpdate      `parser:"| @@"`
	Delete *gramDelete      `parser:"| @@"`
	Select *gramSelect      `parser:"| @@"`
}

type gramCreateTable struct {
	IfNotExists bool          `parser:"'CREATE' 'TABLE' @('IF' 'NOT' 'EXISTS')?"`
	Name        string        `parser:"@Ident"`
	Columns     []*gramColumn `parser:"'(' @@ ( ',' @@ )* ')'"`
}

type gramColumn struct {
	Name       string  `parser:"@Ident"`
	Type       *string `parser:"@( 'INTEGER' | 'TEXT' )?"`
	PrimaryKey bool    `parser:"@( 'PRIMARY' 'KEY' )?"`
}

type gramAlterTable struct {
	Name     string      `parser:"'ALTER' 'TABLE' @Ident"`
	RenameTo *string     `parser:"( 'RENAME' 'TO' @Ident"`
	Add      *gramColumn `parser:"| 'ADD' 'COLUMN'? @@ )"`
}

type gramDropTable struct {
	Name string `parser:"'DROP' 'TABLE' @Ident"`
}

type gramInsert struct {
	Table    string       `parser:"'INSERT' 'INTO' @Ident"`
	Columns  []string     `parser:"( '(' @Ident ( ',' @Ident )* ')' )?"`
	Rows     []*gramTuple `parser:"( 'VALUES' @@ ( ',' @@ )*"`
	Select   *gramSelect  `parser:"| @@"`
	Defaults bool         `parser:"| @( 'DEFAULT' 'VALUES' ) )"`
}

type gramTuple struct {
	Values []*gramOperand `parser:"'(' @@ ( ',' @@ )* ')'"`
}

type gramUpdate struct {
	Table string            `parser:"'UPDATE' @Ident"`
	Set   []*gramAssignment `parser:"'SET' @@ ( ',' @@ )*"`
	Where *gramExpr         `parser:"( 'WHERE' @@ )?"`
}

type gramAssignment struct {
	Column string    `parser:"@Ident '='"`
	Value  *gramExpr `parser:"@@"`
}

type gramDelete struct {
	Table string    `parser:"'DELETE' 'FROM' @Ident"`
	Where *gramExpr `parser:"( 'WHERE' @@ )?"`
}

type gramSelect struct {
	Star  bool        `parser:"'SELECT' ( @'*'"`
	Exprs []*gramExpr `parser:"| @@ ( ',' @@ )* )"`
	From  []string    `parser:"( 'FROM' @Ident ( ',' @Ident )* )?"`
	Where *gramExpr   `parser:"( 'WHERE' @@ )?"`
}

type gramExpr struct {
	Left  *gramOperand `parser:"@@"`
	Right *gramOperand `parser:"( '=' @@ )?"`
}

type gramOperand struct {
	Null   bool     `parser:"  @'NULL'"`
	Real   *float64 `parser:"| @Float"`
	Int    *int64   `parser:"| @Int"`
	Str    *string  `parser:"| @String"`
	Column *string  `parser:"| @Ident"`
}
