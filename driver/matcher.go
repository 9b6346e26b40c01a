package driver

import (
	"fmt"

	"github.com/nihei9/dfare/spec"
)

// Matcher runs a DFA over whole inputs. It holds no per-call state, so one
// Matcher can serve concurrent calls.
type Matcher struct {
	dfa *spec.DFA
}

func NewMatcher(dfa *spec.DFA) (*Matcher, error) {
	if dfa == nil {
		return nil, fmt.Errorf("NewMatcher() needs a DFA")
	}
	err := dfa.Validate()
	if err != nil {
		return nil, err
	}
	return &Matcher{
		dfa: dfa,
	}, nil
}

// Match reports whether the DFA accepts the whole of input.
func (m *Matcher) Match(input string) bool {
	state := m.dfa.InitialState
	for _, c := range input {
		next, ok := m.dfa.Next(state, c)
		if !ok {
			return false
		}
		state = next
	}
	return m.dfa.IsAccepting(state)
}

func (m *Matcher) MatchRunes(input []rune) bool {
	state := m.dfa.InitialState
	for _, c := range input {
		next, ok := m.dfa.Next(state, c)
		if !ok {
			return false
		}
		state = next
	}
	return m.dfa.IsAccepting(state)
}
