// Package suite reads and runs match suites: files recording which inputs a
// pattern must match or reject, and which patterns must fail to compile.
//
//	# comment
//	pattern "a|b" {
//	    match  "a"
//	    reject "c"
//	}
//	invalid "a("
//
// Strings follow Go's double-quoted literal syntax.
package suite

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Suite struct {
	Entries []*Entry `parser:"@@*"`
}

type Entry struct {
	Pos lexer.Position

	Pattern *PatternEntry `parser:"  @@"`
	Invalid *InvalidEntry `parser:"| @@"`
}

type PatternEntry struct {
	Pattern string  `parser:"'pattern' @String '{'"`
	Cases   []*Case `parser:"@@* '}'"`
}

type InvalidEntry struct {
	Pattern string `parser:"'invalid' @String"`
}

const (
	ExpectMatch  = "match"
	ExpectReject = "reject"
)

type Case struct {
	Pos lexer.Position

	Expect string `parser:"@('match' | 'reject')"`
	Input  string `parser:"@String"`
}

var suiteLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Keyword", Pattern: `[a-z]+`},
	{Name: "Punct", Pattern: `[{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var suiteParser = participle.MustBuild[Suite](
	participle.Lexer(suiteLexer),
	participle.Unquote("String"),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a suite from r. name appears in the positions of parse errors
// and of run failures.
func Parse(name string, r io.Reader) (*Suite, error) {
	s, err := suiteParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the match suite: %w", err)
	}
	return s, nil
}

func ParseString(name string, src string) (*Suite, error) {
	s, err := suiteParser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the match suite: %w", err)
	}
	return s, nil
}
