package suite

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/nihei9/dfare"
	"github.com/nihei9/dfare/compiler"
)

// Failure describes an unmet expectation. Case is nil when the pattern
// itself failed.
type Failure struct {
	Pos     lexer.Position
	Pattern string
	Case    *Case
	Reason  string
}

func (f *Failure) String() string {
	if f.Case == nil {
		return fmt.Sprintf("%v: pattern %q: %v", f.Pos, f.Pattern, f.Reason)
	}
	return fmt.Sprintf("%v: pattern %q, input %q: %v", f.Pos, f.Pattern, f.Case.Input, f.Reason)
}

type Report struct {
	Patterns int
	Cases    int
	Failures []*Failure
}

func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

func (r *Report) Write(w io.Writer) {
	for _, f := range r.Failures {
		fmt.Fprintf(w, "FAIL %v\n", f)
	}
	fmt.Fprintf(w, "%v patterns, %v cases, %v failures\n", r.Patterns, r.Cases, len(r.Failures))
}

// Run compiles every pattern of s and checks each of its cases.
func Run(s *Suite, opts ...compiler.CompilerOption) *Report {
	r := &Report{}
	for _, e := range s.Entries {
		r.Patterns++
		switch {
		case e.Pattern != nil:
			runPatternEntry(r, e, opts)
		case e.Invalid != nil:
			runInvalidEntry(r, e, opts)
		}
	}
	return r
}

func runPatternEntry(r *Report, e *Entry, opts []compiler.CompilerOption) {
	re, err := dfare.Compile(e.Pattern.Pattern, opts...)
	if err != nil {
		r.Failures = append(r.Failures, &Failure{
			Pos:     e.Pos,
			Pattern: e.Pattern.Pattern,
			Reason:  fmt.Sprintf("failed to compile: %v", err),
		})
		return
	}
	for _, c := range e.Pattern.Cases {
		r.Cases++
		want := c.Expect == ExpectMatch
		got := re.Match(c.Input)
		if got == want {
			continue
		}
		r.Failures = append(r.Failures, &Failure{
			Pos:     c.Pos,
			Pattern: e.Pattern.Pattern,
			Case:    c,
			Reason:  fmt.Sprintf("expected %v but it did not", c.Expect),
		})
	}
}

func runInvalidEntry(r *Report, e *Entry, opts []compiler.CompilerOption) {
	_, err := dfare.Compile(e.Invalid.Pattern, opts...)
	var synErr *compiler.SyntaxError
	if errors.As(err, &synErr) {
		return
	}
	reason := "compiled although it is expected to be invalid"
	if err != nil {
		reason = fmt.Sprintf("failed with a non-syntax error: %v", err)
	}
	r.Failures = append(r.Failures, &Failure{
		Pos:     e.Pos,
		Pattern: e.Invalid.Pattern,
		Reason:  reason,
	})
}
