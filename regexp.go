// Package dfare compiles regular expressions made of literal characters,
// alternation (|), zero-or-more repetition (*) and grouping into
// deterministic finite automata, and tests whole strings against them.
//
// A compiled Regexp is immutable and safe for concurrent use.
package dfare

import (
	"fmt"

	"github.com/nihei9/dfare/compiler"
	"github.com/nihei9/dfare/driver"
	"github.com/nihei9/dfare/spec"
)

type Regexp struct {
	compiled *spec.CompiledPattern
	matcher  *driver.Matcher
}

// Compile parses pattern and returns a Regexp recognizing it. A malformed
// pattern yields an error wrapping a *compiler.SyntaxError.
func Compile(pattern string, opts ...compiler.CompilerOption) (*Regexp, error) {
	cp, err := compiler.Compile(pattern, opts...)
	if err != nil {
		return nil, err
	}
	return FromCompiled(cp)
}

func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// FromCompiled wraps a compiled pattern, for instance one loaded from the
// JSON written by `dfare compile`.
func FromCompiled(cp *spec.CompiledPattern) (*Regexp, error) {
	if cp == nil {
		return nil, fmt.Errorf("FromCompiled() needs a compiled pattern")
	}
	m, err := driver.NewMatcher(cp.DFA)
	if err != nil {
		return nil, fmt.Errorf("cannot load the compiled pattern %q: %w", cp.Pattern, err)
	}
	return &Regexp{
		compiled: cp,
		matcher:  m,
	}, nil
}

// Match reports whether text as a whole belongs to the language of re.
func (re *Regexp) Match(text string) bool {
	return re.matcher.Match(text)
}

func (re *Regexp) MatchRunes(text []rune) bool {
	return re.matcher.MatchRunes(text)
}

func (re *Regexp) String() string {
	return re.compiled.Pattern
}

func (re *Regexp) Compiled() *spec.CompiledPattern {
	return re.compiled
}
