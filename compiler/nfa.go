package compiler

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// symbolEpsilon labels a transition that consumes no input. Decoding a Go
// string never yields a negative rune, so it cannot clash with a literal.
const symbolEpsilon = rune(-1)

type nfaState int

func (s nfaState) String() string {
	return fmt.Sprintf("q%v", int(s))
}

// nfaStateAllocator issues the states of one compilation. Sibling fragments
// built from the same allocator never share a state, so merging them is a
// plain union of their transition tables.
type nfaStateAllocator struct {
	next nfaState
}

func newNFAStateAllocator() *nfaStateAllocator {
	return &nfaStateAllocator{
		next: 0,
	}
}

func (a *nfaStateAllocator) newState() nfaState {
	s := a.next
	a.next++
	return s
}

func (a *nfaStateAllocator) count() int {
	return int(a.next)
}

type nfaStateSet map[nfaState]struct{}

func newNFAStateSet(states ...nfaState) nfaStateSet {
	s := nfaStateSet{}
	for _, state := range states {
		s.add(state)
	}
	return s
}

func (s nfaStateSet) add(state nfaState) nfaStateSet {
	s[state] = struct{}{}
	return s
}

func (s nfaStateSet) merge(t nfaStateSet) nfaStateSet {
	for state := range t {
		s.add(state)
	}
	return s
}

func (s nfaStateSet) contains(state nfaState) bool {
	_, ok := s[state]
	return ok
}

func (s nfaStateSet) sort() []nfaState {
	sorted := make([]nfaState, 0, len(s))
	for state := range s {
		sorted = append(sorted, state)
	}
	slices.Sort(sorted)
	return sorted
}

func (s nfaStateSet) String() string {
	states := s.sort()
	strs := make([]string, len(states))
	for i, state := range states {
		strs[i] = state.String()
	}
	return fmt.Sprintf("{%v}", strings.Join(strs, ", "))
}

type nfa struct {
	start      nfaState
	accepts    nfaStateSet
	transition map[nfaState]map[rune]nfaStateSet
}

func newNFA(start nfaState, accepts nfaStateSet) *nfa {
	return &nfa{
		start:      start,
		accepts:    accepts,
		transition: map[nfaState]map[rune]nfaStateSet{},
	}
}

func (n *nfa) addTransition(from nfaState, char rune, to nfaState) *nfa {
	tab, ok := n.transition[from]
	if !ok {
		tab = map[rune]nfaStateSet{}
		n.transition[from] = tab
	}
	dests, ok := tab[char]
	if !ok {
		dests = nfaStateSet{}
		tab[char] = dests
	}
	dests.add(to)
	return n
}

func (n *nfa) addEpsilonTransition(from, to nfaState) *nfa {
	return n.addTransition(from, symbolEpsilon, to)
}

func (n *nfa) mergeTransition(frag *nfa) *nfa {
	for from, tab := range frag.transition {
		for char, dests := range tab {
			for to := range dests {
				n.addTransition(from, char, to)
			}
		}
	}
	return n
}

// nextStates returns the destinations of the transitions from state labeled
// with char. The result must not be modified.
func (n *nfa) nextStates(state nfaState, char rune) nfaStateSet {
	return n.transition[state][char]
}

// stateBound returns a number greater than every state of n.
func (n *nfa) stateBound() int {
	top := n.start
	for s := range n.accepts {
		if s > top {
			top = s
		}
	}
	for from, tab := range n.transition {
		if from > top {
			top = from
		}
		for _, dests := range tab {
			for to := range dests {
				if to > top {
					top = to
				}
			}
		}
	}
	return int(top) + 1
}

// reach returns the states n occupies after consuming input, taking the
// epsilon-closure after every step. The result is empty when n gets stuck.
func (n *nfa) reach(input []rune) nfaStateSet {
	current := n.closure(newNFAStateSet(n.start))
	for _, c := range input {
		next := nfaStateSet{}
		for s := range current {
			next.merge(n.nextStates(s, c))
		}
		if len(next) == 0 {
			return next
		}
		current = n.closure(next)
	}
	return current
}

// run simulates n directly and reports whether it accepts input.
func (n *nfa) run(input []rune) bool {
	for s := range n.reach(input) {
		if n.accepts.contains(s) {
			return true
		}
	}
	return false
}

func (n *nfa) closure(states nfaStateSet) nfaStateSet {
	closure := nfaStateSet{}
	stack := states.sort()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if closure.contains(s) {
			continue
		}
		closure.add(s)
		for to := range n.nextStates(s, symbolEpsilon) {
			if !closure.contains(to) {
				stack = append(stack, to)
			}
		}
	}
	return closure
}

func printNFA(w io.Writer, n *nfa) {
	fmt.Fprintf(w, "start: %v, accepts: %v\n", n.start, n.accepts)
	froms := make([]nfaState, 0, len(n.transition))
	for from := range n.transition {
		froms = append(froms, from)
	}
	slices.Sort(froms)
	for _, from := range froms {
		tab := n.transition[from]
		chars := make([]rune, 0, len(tab))
		for c := range tab {
			chars = append(chars, c)
		}
		slices.Sort(chars)
		for _, c := range chars {
			label := "ε"
			if c != symbolEpsilon {
				label = fmt.Sprintf("%q", c)
			}
			fmt.Fprintf(w, "  %v --%v--> %v\n", from, label, tab[c])
		}
	}
}

// genNFA assembles the NFA of root by Thompson's construction.
func genNFA(root astNode, alloc *nfaStateAllocator) *nfa {
	switch n := root.(type) {
	case *symbolNode:
		start := alloc.newState()
		accept := alloc.newState()
		return newNFA(start, newNFAStateSet(accept)).
			addTransition(start, n.char, accept)
	case *emptyNode:
		start := alloc.newState()
		accept := alloc.newState()
		return newNFA(start, newNFAStateSet(accept)).
			addEpsilonTransition(start, accept)
	case *repeatNode:
		frag := genNFA(n.left, alloc)
		start := alloc.newState()
		accepts := newNFAStateSet(start).merge(frag.accepts)
		star := newNFA(start, accepts).
			mergeTransition(frag).
			addEpsilonTransition(start, frag.start)
		for accept := range frag.accepts {
			star.addEpsilonTransition(accept, frag.start)
		}
		return star
	case *altNode:
		frag1 := genNFA(n.left, alloc)
		frag2 := genNFA(n.right, alloc)
		start := alloc.newState()
		accepts := newNFAStateSet().merge(frag1.accepts).merge(frag2.accepts)
		return newNFA(start, accepts).
			mergeTransition(frag1).
			mergeTransition(frag2).
			addEpsilonTransition(start, frag1.start).
			addEpsilonTransition(start, frag2.start)
	case *concatNode:
		frag1 := genNFA(n.left, alloc)
		frag2 := genNFA(n.right, alloc)
		accepts := newNFAStateSet().merge(frag2.accepts)
		concat := newNFA(frag1.start, accepts).
			mergeTransition(frag1).
			mergeTransition(frag2)
		for accept := range frag1.accepts {
			concat.addEpsilonTransition(accept, frag2.start)
		}
		return concat
	}
	panic(fmt.Errorf("genNFA cannot handle %T type; AST: %v", root, root))
}
