package compiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/nihei9/dfare/log"
	"github.com/nihei9/dfare/spec"
)

type CompilerOption func(c *compilerConfig) error

func EnableLogging(w io.Writer) CompilerOption {
	return func(c *compilerConfig) error {
		logger, err := log.NewLogger(w)
		if err != nil {
			return err
		}
		c.logger = logger
		return nil
	}
}

type compilerConfig struct {
	logger log.Logger
}

// Compile parses pattern and builds the DFA recognizing it. When pattern is
// malformed, the returned error wraps a *SyntaxError.
func Compile(pattern string, opts ...CompilerOption) (*spec.CompiledPattern, error) {
	config := &compilerConfig{
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		err := opt(config)
		if err != nil {
			return nil, err
		}
	}

	config.logger.Log("Pattern: %v", pattern)

	var root astNode
	{
		var err error
		root, err = parse(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %q: %w", pattern, err)
		}

		config.logger.LogBlock("AST", func(w io.Writer) {
			printAST(w, root, "", "")
		})
	}

	var fa *nfa
	{
		alloc := newNFAStateAllocator()
		fa = genNFA(root, alloc)

		config.logger.Log("NFA: %v states", alloc.count())
		config.logger.LogBlock("NFA transitions", func(w io.Writer) {
			printNFA(w, fa)
		})
	}

	var dfa *spec.DFA
	{
		dfa = genDFA(fa)

		config.logger.Log(`DFA:
  States: %v states
  Initial State: %v
  Accepting States: %v`, len(dfa.States()), dfa.InitialState, dfa.AcceptingStates)
		config.logger.LogBlock("DFA transitions", func(w io.Writer) {
			printDFA(w, dfa)
		})
	}

	return &spec.CompiledPattern{
		Pattern: pattern,
		DFA:     dfa,
	}, nil
}

func parse(pattern string) (astNode, error) {
	p := newParser(strings.NewReader(pattern))
	return p.parse()
}
