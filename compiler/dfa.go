package compiler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/nihei9/dfare/spec"
	"golang.org/x/exp/slices"
)

// dfaStateTable assigns DFA states to sets of NFA states. Two sets get the
// same DFA state exactly when they contain the same NFA states. A table
// belongs to a single DFA construction.
type dfaStateTable struct {
	bound uint
	ids   map[string]spec.StateNum
	sets  []*bitset.BitSet
}

func newDFAStateTable(bound int) *dfaStateTable {
	return &dfaStateTable{
		bound: uint(bound),
		ids:   map[string]spec.StateNum{},
	}
}

func (t *dfaStateTable) newSet(states ...nfaState) *bitset.BitSet {
	set := bitset.New(t.bound)
	for _, s := range states {
		set.Set(uint(s))
	}
	return set
}

// stateOf returns the DFA state of set. The second result is true when the
// state has just been issued.
func (t *dfaStateTable) stateOf(set *bitset.BitSet) (spec.StateNum, bool) {
	key := canonicalKey(set)
	if id, ok := t.ids[key]; ok {
		return id, false
	}
	id := spec.StateNum(len(t.sets))
	t.ids[key] = id
	t.sets = append(t.sets, set)
	return id, true
}

// canonicalKey renders the members of set in ascending order, e.g. "0:3:5".
func canonicalKey(set *bitset.BitSet) string {
	var b strings.Builder
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if b.Len() > 0 {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	return b.String()
}

func epsilonClosure(n *nfa, set *bitset.BitSet) *bitset.BitSet {
	closure := set.Clone()
	var stack []nfaState
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		stack = append(stack, nfaState(i))
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for to := range n.nextStates(s, symbolEpsilon) {
			if closure.Test(uint(to)) {
				continue
			}
			closure.Set(uint(to))
			stack = append(stack, to)
		}
	}
	return closure
}

// outgoingSymbols returns, in ascending order, the symbols labeling the
// non-epsilon transitions leaving set.
func outgoingSymbols(n *nfa, set *bitset.BitSet) []rune {
	seen := map[rune]struct{}{}
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		for c := range n.transition[nfaState(i)] {
			if c == symbolEpsilon {
				continue
			}
			seen[c] = struct{}{}
		}
	}
	chars := make([]rune, 0, len(seen))
	for c := range seen {
		chars = append(chars, c)
	}
	slices.Sort(chars)
	return chars
}

func move(n *nfa, tab *dfaStateTable, set *bitset.BitSet, char rune) *bitset.BitSet {
	dest := tab.newSet()
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		for to := range n.nextStates(nfaState(i), char) {
			dest.Set(uint(to))
		}
	}
	return dest
}

// genDFA converts n into a DFA by subset construction.
func genDFA(n *nfa) *spec.DFA {
	tab := newDFAStateTable(n.stateBound())

	startSet := epsilonClosure(n, tab.newSet(n.start))
	start, _ := tab.stateOf(startSet)

	tranTab := map[spec.StateNum]map[rune]spec.StateNum{}
	{
		// A set is queued only when its DFA state is issued, so every set is
		// expanded exactly once and the loop ends after at most 2^|NFA| rounds.
		queue := []*bitset.BitSet{startSet}
		for len(queue) > 0 {
			set := queue[0]
			queue = queue[1:]
			from, _ := tab.stateOf(set)
			for _, c := range outgoingSymbols(n, set) {
				dest := epsilonClosure(n, move(n, tab, set, c))
				to, issued := tab.stateOf(dest)
				if _, ok := tranTab[from]; !ok {
					tranTab[from] = map[rune]spec.StateNum{}
				}
				tranTab[from][c] = to
				if issued {
					queue = append(queue, dest)
				}
			}
		}
	}

	var accTab []spec.StateNum
	{
		nfaAccepts := tab.newSet(n.accepts.sort()...)
		for id, set := range tab.sets {
			if set.IntersectionCardinality(nfaAccepts) > 0 {
				accTab = append(accTab, spec.StateNum(id))
			}
		}
	}

	return &spec.DFA{
		InitialState:    start,
		AcceptingStates: accTab,
		Transition:      tranTab,
	}
}

func printDFA(w io.Writer, dfa *spec.DFA) {
	fmt.Fprintf(w, "initial state: %v, accepting states: %v\n", dfa.InitialState, dfa.AcceptingStates)
	for _, from := range dfa.States() {
		tab, ok := dfa.Transition[from]
		if !ok {
			continue
		}
		chars := make([]rune, 0, len(tab))
		for c := range tab {
			chars = append(chars, c)
		}
		slices.Sort(chars)
		for _, c := range chars {
			fmt.Fprintf(w, "  %v --%q--> %v\n", from, c, tab[c])
		}
	}
}
