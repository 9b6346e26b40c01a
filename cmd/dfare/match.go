package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nihei9/dfare"
	"github.com/nihei9/dfare/spec"
	"github.com/spf13/cobra"
)

var matchFlags = struct {
	pattern *string
	quiet   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "match [compiled-pattern] [input...]",
		Short: "Test whether whole strings match a pattern",
		Long: `match tests each input against a pattern and prints true or false per input.
The pattern is either a file written by ` + "`dfare compile`" + ` or given with --pattern.
Without input arguments, each line of stdin is an input.`,
		Example: `  dfare match ab.json abab aba
  dfare match -p 'a|b' a c
  cat inputs.txt | dfare match -p '(ab)*'`,
		RunE: runMatch,
	}
	matchFlags.pattern = cmd.Flags().StringP("pattern", "p", "", "pattern to compile instead of reading a compiled pattern")
	matchFlags.quiet = cmd.Flags().BoolP("quiet", "q", false, "print nothing; exit with status 1 unless every input matches")
	rootCmd.AddCommand(cmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	var re *dfare.Regexp
	if *matchFlags.pattern != "" {
		var err error
		re, err = dfare.Compile(*matchFlags.pattern)
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("match needs a compiled pattern file or --pattern")
		}
		cp, err := readCompiledPattern(args[0])
		if err != nil {
			return fmt.Errorf("Cannot read a compiled pattern: %w", err)
		}
		re, err = dfare.FromCompiled(cp)
		if err != nil {
			return err
		}
		args = args[1:]
	}

	allMatched := true
	report := func(input string) {
		ok := re.Match(input)
		if !ok {
			allMatched = false
		}
		if !*matchFlags.quiet {
			fmt.Fprintf(os.Stdout, "%v\n", ok)
		}
	}
	if len(args) > 0 {
		for _, input := range args {
			report(input)
		}
	} else {
		err := scanLines(os.Stdin, report)
		if err != nil {
			return err
		}
	}

	if *matchFlags.quiet && !allMatched {
		return fmt.Errorf("some inputs did not match %q", re)
	}
	return nil
}

func scanLines(r io.Reader, f func(line string)) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		f(s.Text())
	}
	return s.Err()
}

func readCompiledPattern(path string) (*spec.CompiledPattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cp := &spec.CompiledPattern{}
	err = json.Unmarshal(data, cp)
	if err != nil {
		return nil, err
	}
	return cp, nil
}
