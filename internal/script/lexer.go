package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer tokenizes replay scripts. Line breaks are significant so that an
// optional trailing argument never swallows the next statement.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "EOL", Pattern: `[\n\r]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},

	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},

	// Statement keywords are matched by value, so furniture ids may reuse them
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
})
