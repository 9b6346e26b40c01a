package compiler

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"testing"
)

func TestParser(t *testing.T) {
	tests := []struct {
		pattern string
		ast     astNode
	}{
		{
			pattern: "a",
			ast:     newSymbolNode('a'),
		},
		{
			pattern: "",
			ast:     newEmptyNode(),
		},
		{
			pattern: "()",
			ast:     newEmptyNode(),
		},
		{
			pattern: "abc",
			ast: newConcatNode(
				newConcatNode(
					newSymbolNode('a'),
					newSymbolNode('b'),
				),
				newSymbolNode('c'),
			),
		},
		{
			pattern: "a|b|c",
			ast: newAltNode(
				newAltNode(
					newSymbolNode('a'),
					newSymbolNode('b'),
				),
				newSymbolNode('c'),
			),
		},
		{
			pattern: "a|(bc)*",
			ast: newAltNode(
				newSymbolNode('a'),
				newRepeatNode(
					newConcatNode(
						newSymbolNode('b'),
						newSymbolNode('c'),
					),
				),
			),
		},
		{
			pattern: "a|",
			ast: newAltNode(
				newSymbolNode('a'),
				newEmptyNode(),
			),
		},
		{
			pattern: "|a",
			ast: newAltNode(
				newEmptyNode(),
				newSymbolNode('a'),
			),
		},
		{
			pattern: "a(b|)",
			ast: newConcatNode(
				newSymbolNode('a'),
				newAltNode(
					newSymbolNode('b'),
					newEmptyNode(),
				),
			),
		},
		{
			pattern: "ab*",
			ast: newConcatNode(
				newSymbolNode('a'),
				newRepeatNode(newSymbolNode('b')),
			),
		},
		{
			pattern: "\\(\\*\\)",
			ast: newConcatNode(
				newConcatNode(
					newSymbolNode('('),
					newSymbolNode('*'),
				),
				newSymbolNode(')'),
			),
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v %v", i, tt.pattern), func(t *testing.T) {
			ast, err := parse(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(ast, tt.ast) {
				fmt.Fprintf(os.Stdout, "expected:\n")
				printAST(os.Stdout, tt.ast, "", "")
				fmt.Fprintf(os.Stdout, "actual:\n")
				printAST(os.Stdout, ast, "", "")
				t.Fatalf("unexpected AST")
			}
		})
	}
}

func TestParser_SyntaxError(t *testing.T) {
	tests := []struct {
		pattern  string
		expected []string
		actual   string
		offset   int
	}{
		{
			pattern:  "a(",
			expected: []string{")"},
			actual:   "EOF",
			offset:   2,
		},
		{
			pattern:  "ab(cd",
			expected: []string{")"},
			actual:   "EOF",
			offset:   5,
		},
		{
			pattern:  ")h",
			expected: []string{"EOF"},
			actual:   ")",
			offset:   0,
		},
		{
			pattern:  "a)",
			expected: []string{"EOF"},
			actual:   ")",
			offset:   1,
		},
		{
			pattern:  "*",
			expected: []string{"EOF"},
			actual:   "*",
			offset:   0,
		},
		{
			pattern:  "e(*)f",
			expected: []string{")"},
			actual:   "*",
			offset:   2,
		},
		{
			pattern:  "i|*",
			expected: []string{"EOF"},
			actual:   "*",
			offset:   2,
		},
		{
			pattern:  "a**",
			expected: []string{"EOF"},
			actual:   "*",
			offset:   2,
		},
		{
			pattern:  "ab\\",
			expected: []string{"character"},
			actual:   "EOF",
			offset:   3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			ast, err := parse(tt.pattern)
			if ast != nil {
				t.Fatalf("parse must not return an AST on error; got: %v", ast)
			}
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("expected a syntax error; got: %v", err)
			}
			if !reflect.DeepEqual(synErr.Expected, tt.expected) {
				t.Errorf("unexpected expected tokens; want: %v, got: %v", tt.expected, synErr.Expected)
			}
			if synErr.Actual != tt.actual {
				t.Errorf("unexpected actual token; want: %v, got: %v", tt.actual, synErr.Actual)
			}
			if synErr.Offset != tt.offset {
				t.Errorf("unexpected offset; want: %v, got: %v", tt.offset, synErr.Offset)
			}
		})
	}
}
