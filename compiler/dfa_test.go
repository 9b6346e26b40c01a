package compiler

import (
	"fmt"
	"os"
	"reflect"
	"testing"

	"github.com/nihei9/dfare/spec"
)

func TestDFAStateTable(t *testing.T) {
	tab := newDFAStateTable(5)
	tests := []struct {
		states []nfaState
		id     spec.StateNum
		issued bool
	}{
		{states: []nfaState{0}, id: 0, issued: true},
		{states: []nfaState{0, 1}, id: 1, issued: true},
		{states: []nfaState{1, 2, 3}, id: 2, issued: true},
		{states: []nfaState{}, id: 3, issued: true},
		{states: []nfaState{0}, id: 0},
		{states: []nfaState{2, 1, 3}, id: 2},
		{states: []nfaState{3, 3, 1, 2, 1}, id: 2},
		{states: []nfaState{1, 0}, id: 1},
		{states: []nfaState{4}, id: 4, issued: true},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v %v", i, tt.states), func(t *testing.T) {
			id, issued := tab.stateOf(tab.newSet(tt.states...))
			if id != tt.id {
				t.Fatalf("unexpected DFA state; want: %v, got: %v", tt.id, id)
			}
			if issued != tt.issued {
				t.Fatalf("unexpected issued flag; want: %v, got: %v", tt.issued, issued)
			}
		})
	}
}

func TestCanonicalKey(t *testing.T) {
	tab := newDFAStateTable(4)
	if k := canonicalKey(tab.newSet(3, 0, 3, 2)); k != "0:2:3" {
		t.Fatalf("unexpected key; want: 0:2:3, got: %v", k)
	}
	if k := canonicalKey(tab.newSet()); k != "" {
		t.Fatalf("the key of the empty set must be empty; got: %v", k)
	}

	// The capacity of a set doesn't affect its key.
	small := newDFAStateTable(4).newSet(1, 2)
	large := newDFAStateTable(1024).newSet(2, 1)
	if canonicalKey(small) != canonicalKey(large) {
		t.Fatalf("keys of equal sets must be equal; small: %v, large: %v", canonicalKey(small), canonicalKey(large))
	}
}

func TestEpsilonClosure(t *testing.T) {
	// 0 --ε--> 1 --ε--> 2 --a--> 3 --ε--> 0
	//           \--ε--> 4
	n := newNFA(0, newNFAStateSet(3)).
		addEpsilonTransition(0, 1).
		addEpsilonTransition(1, 2).
		addEpsilonTransition(1, 4).
		addTransition(2, 'a', 3).
		addEpsilonTransition(3, 0)
	tab := newDFAStateTable(n.stateBound())
	tests := []struct {
		states  []nfaState
		closure string
	}{
		{states: []nfaState{0}, closure: "0:1:2:4"},
		{states: []nfaState{2}, closure: "2"},
		{states: []nfaState{3}, closure: "0:1:2:3:4"},
		{states: []nfaState{4, 2}, closure: "2:4"},
		{states: []nfaState{}, closure: ""},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.states), func(t *testing.T) {
			c := epsilonClosure(n, tab.newSet(tt.states...))
			if k := canonicalKey(c); k != tt.closure {
				t.Fatalf("unexpected closure; want: {%v}, got: {%v}", tt.closure, k)
			}
		})
	}
}

func TestGenDFA(t *testing.T) {
	tests := []struct {
		caption string
		nfa     *nfa
		dfa     *spec.DFA
	}{
		{
			// -> 0 --a--> 1
			// accept: 1
			caption: "simple",
			nfa: newNFA(0, newNFAStateSet(1)).
				addTransition(0, 'a', 1),
			dfa: &spec.DFA{
				InitialState:    0,
				AcceptingStates: []spec.StateNum{1},
				Transition: map[spec.StateNum]map[rune]spec.StateNum{
					0: {'a': 1},
				},
			},
		},
		{
			// -> 0 --a--> 1 --b--> 2
			// accept: 2
			caption: "concatenation",
			nfa: newNFA(0, newNFAStateSet(2)).
				addTransition(0, 'a', 1).
				addTransition(1, 'b', 2),
			dfa: &spec.DFA{
				InitialState:    0,
				AcceptingStates: []spec.StateNum{2},
				Transition: map[spec.StateNum]map[rune]spec.StateNum{
					0: {'a': 1},
					1: {'b': 2},
				},
			},
		},
		{
			//     /--ε--> 1 --a--> 2
			// -> 0
			//     \--ε--> 3 --b--> 4
			// accept: 2, 4
			caption: "alternation",
			nfa: newNFA(0, newNFAStateSet(2, 4)).
				addEpsilonTransition(0, 1).
				addEpsilonTransition(0, 3).
				addTransition(1, 'a', 2).
				addTransition(3, 'b', 4),
			dfa: &spec.DFA{
				InitialState:    0,
				AcceptingStates: []spec.StateNum{1, 2},
				Transition: map[spec.StateNum]map[rune]spec.StateNum{
					0: {'a': 1, 'b': 2},
				},
			},
		},
		{
			// -> 0 --ε--> 1 --a--> 2
			//              \<--ε--/
			// accept: 0, 2
			caption: "repeat",
			nfa: newNFA(0, newNFAStateSet(0, 2)).
				addEpsilonTransition(0, 1).
				addTransition(1, 'a', 2).
				addEpsilonTransition(2, 1),
			dfa: &spec.DFA{
				InitialState:    0,
				AcceptingStates: []spec.StateNum{0, 1},
				Transition: map[spec.StateNum]map[rune]spec.StateNum{
					0: {'a': 1},
					1: {'a': 1},
				},
			},
		},
		{
			// -> 0 --x--> 1
			//            /
			//    /<--ε---
			//    |         /<--ε--\
			//    4 --ε--> 2 --y--> 3
			//    \                /
			//     \        /<--ε--
			//      --ε--> 5 --z--> 6
			// accept: 6
			caption: "complex",
			nfa: newNFA(0, newNFAStateSet(6)).
				addTransition(0, 'x', 1).
				addEpsilonTransition(1, 2).
				addEpsilonTransition(1, 5).
				addTransition(2, 'y', 3).
				addTransition(5, 'z', 6).
				addEpsilonTransition(3, 2).
				addEpsilonTransition(3, 5),
			dfa: &spec.DFA{
				InitialState:    0,
				AcceptingStates: []spec.StateNum{3},
				Transition: map[spec.StateNum]map[rune]spec.StateNum{
					0: {'x': 1},
					1: {'y': 2, 'z': 3},
					2: {'y': 2, 'z': 3},
				},
			},
		},
		{
			// Two symbols lead from the start to the same NFA state set.
			//
			// -> 0 --a--> 1
			//     \--b--> 1
			// accept: 1
			caption: "shared destination",
			nfa: newNFA(0, newNFAStateSet(1)).
				addTransition(0, 'a', 1).
				addTransition(0, 'b', 1),
			dfa: &spec.DFA{
				InitialState:    0,
				AcceptingStates: []spec.StateNum{1},
				Transition: map[spec.StateNum]map[rune]spec.StateNum{
					0: {'a': 1, 'b': 1},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			dfa := genDFA(tt.nfa)
			if !reflect.DeepEqual(dfa, tt.dfa) {
				fmt.Fprintf(os.Stdout, "expected:\n")
				printDFA(os.Stdout, tt.dfa)
				fmt.Fprintf(os.Stdout, "actual:\n")
				printDFA(os.Stdout, dfa)
				t.Fatalf("unexpected DFA")
			}
		})
	}
}
