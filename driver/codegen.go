package driver

import (
	"bytes"
	"fmt"
	"go/token"

	"github.com/dave/jennifer/jen"
	"github.com/nihei9/dfare/spec"
	"golang.org/x/exp/slices"
)

// GenMatcher generates the source of a Go file declaring a function named
// funcName in package pkgName. The function reports whether a string as a
// whole matches the compiled pattern, and needs no dfare package at run time.
func GenMatcher(cp *spec.CompiledPattern, pkgName, funcName string) ([]byte, error) {
	if cp == nil {
		return nil, fmt.Errorf("GenMatcher() needs a compiled pattern")
	}
	err := cp.Validate()
	if err != nil {
		return nil, err
	}
	if !token.IsIdentifier(pkgName) {
		return nil, fmt.Errorf("invalid package name: %q", pkgName)
	}
	if !token.IsIdentifier(funcName) {
		return nil, fmt.Errorf("invalid function name: %q", funcName)
	}

	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by dfare. DO NOT EDIT.")
	f.Commentf("%v reports whether s as a whole matches %q.", funcName, cp.Pattern)
	f.Func().Id(funcName).Params(jen.Id("s").String()).Bool().Block(genMatcherBody(cp.DFA)...)

	var b bytes.Buffer
	err = f.Render(&b)
	if err != nil {
		return nil, fmt.Errorf("failed to render a matcher for %q: %w", cp.Pattern, err)
	}
	return b.Bytes(), nil
}

func genMatcherBody(dfa *spec.DFA) []jen.Code {
	// Without transitions, only the initial state can be occupied.
	if len(dfa.Transition) == 0 {
		if dfa.IsAccepting(dfa.InitialState) {
			return []jen.Code{
				jen.Return(jen.Len(jen.Id("s")).Op("==").Lit(0)),
			}
		}
		return []jen.Code{
			jen.Return(jen.False()),
		}
	}

	froms := make([]spec.StateNum, 0, len(dfa.Transition))
	for from := range dfa.Transition {
		froms = append(froms, from)
	}
	slices.Sort(froms)

	stateCases := make([]jen.Code, 0, len(froms)+1)
	for _, from := range froms {
		tab := dfa.Transition[from]
		chars := make([]rune, 0, len(tab))
		for c := range tab {
			chars = append(chars, c)
		}
		slices.Sort(chars)

		charCases := make([]jen.Code, 0, len(chars)+1)
		for _, c := range chars {
			charCases = append(charCases, jen.Case(jen.LitRune(c)).Block(
				jen.Id("state").Op("=").Lit(int(tab[c])),
			))
		}
		charCases = append(charCases, jen.Default().Block(
			jen.Return(jen.False()),
		))
		stateCases = append(stateCases, jen.Case(jen.Lit(int(from))).Block(
			jen.Switch(jen.Id("c")).Block(charCases...),
		))
	}
	stateCases = append(stateCases, jen.Default().Block(
		jen.Return(jen.False()),
	))

	code := []jen.Code{
		jen.Id("state").Op(":=").Lit(int(dfa.InitialState)),
		jen.For(jen.List(jen.Id("_"), jen.Id("c")).Op(":=").Range().Id("s")).Block(
			jen.Switch(jen.Id("state")).Block(stateCases...),
		),
	}
	if len(dfa.AcceptingStates) > 0 {
		accs := make([]jen.Code, len(dfa.AcceptingStates))
		for i, s := range dfa.AcceptingStates {
			accs[i] = jen.Lit(int(s))
		}
		code = append(code, jen.Switch(jen.Id("state")).Block(
			jen.Case(accs...).Block(jen.Return(jen.True())),
		))
	}
	code = append(code, jen.Return(jen.False()))
	return code
}
