package spec

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// StateNum identifies a DFA state.
type StateNum int

func (n StateNum) String() string {
	return fmt.Sprintf("%v", int(n))
}

// DFA is a deterministic automaton with a partial transition function. A
// (state, symbol) pair absent from Transition has no successor; a matcher
// rejects the input when it meets one.
type DFA struct {
	InitialState    StateNum                       `json:"initial_state"`
	AcceptingStates []StateNum                     `json:"accepting_states"`
	Transition      map[StateNum]map[rune]StateNum `json:"transition"`
}

// Next returns the successor of state on char.
func (d *DFA) Next(state StateNum, char rune) (StateNum, bool) {
	next, ok := d.Transition[state][char]
	return next, ok
}

// IsAccepting reports whether state is an accepting state. AcceptingStates
// must be sorted in ascending order.
func (d *DFA) IsAccepting(state StateNum) bool {
	_, ok := slices.BinarySearch(d.AcceptingStates, state)
	return ok
}

// States returns all states appearing in d in ascending order.
func (d *DFA) States() []StateNum {
	seen := map[StateNum]struct{}{
		d.InitialState: {},
	}
	for _, s := range d.AcceptingStates {
		seen[s] = struct{}{}
	}
	for from, tab := range d.Transition {
		seen[from] = struct{}{}
		for _, to := range tab {
			seen[to] = struct{}{}
		}
	}
	states := make([]StateNum, 0, len(seen))
	for s := range seen {
		states = append(states, s)
	}
	slices.Sort(states)
	return states
}

// Validate checks the invariants a DFA loaded from outside the compiler must
// hold before a matcher can run it.
func (d *DFA) Validate() error {
	if d.InitialState < 0 {
		return fmt.Errorf("initial state must be a non-negative number; got: %v", d.InitialState)
	}
	var errs []error
	for i, s := range d.AcceptingStates {
		if s < 0 {
			errs = append(errs, fmt.Errorf("accepting state #%v must be a non-negative number; got: %v", i, s))
			continue
		}
		if i > 0 && d.AcceptingStates[i-1] >= s {
			errs = append(errs, fmt.Errorf("accepting states must be sorted without duplicates; %v follows %v", s, d.AcceptingStates[i-1]))
		}
	}
	for from, tab := range d.Transition {
		if from < 0 {
			errs = append(errs, fmt.Errorf("transition source must be a non-negative number; got: %v", from))
		}
		for c, to := range tab {
			if to < 0 {
				errs = append(errs, fmt.Errorf("transition %v --%q--> %v has a negative destination", from, c, to))
			}
		}
	}
	if len(errs) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "%v", errs[0])
		for _, err := range errs[1:] {
			fmt.Fprintf(&b, "\n%v", err)
		}
		return fmt.Errorf("invalid DFA: %v", b.String())
	}
	return nil
}

// CompiledPattern is a pattern together with the DFA recognizing it.
type CompiledPattern struct {
	Pattern string `json:"pattern"`
	DFA     *DFA   `json:"dfa"`
}

func (p *CompiledPattern) Validate() error {
	if p.DFA == nil {
		return fmt.Errorf("compiled pattern %q has no DFA", p.Pattern)
	}
	return p.DFA.Validate()
}
