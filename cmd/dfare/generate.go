package main

import (
	"fmt"
	"os"

	"github.com/nihei9/dfare/compiler"
	"github.com/nihei9/dfare/driver"
	"github.com/nihei9/dfare/spec"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	pattern  *string
	pkgName  *string
	funcName *string
	output   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "generate [compiled-pattern]",
		Short: "Generate a Go matcher function",
		Long: `generate writes Go source declaring a function that matches whole strings against a pattern.
The pattern is either a file written by ` + "`dfare compile`" + ` or given with --pattern.`,
		Example: `  dfare generate ab.json --package lexer --func MatchAB -o match_ab.go
  dfare generate -p '(p(erl|ython|hp)|ruby)' --func IsScriptingLanguage`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}
	generateFlags.pattern = cmd.Flags().StringP("pattern", "p", "", "pattern to compile instead of reading a compiled pattern")
	generateFlags.pkgName = cmd.Flags().String("package", "main", "package name")
	generateFlags.funcName = cmd.Flags().String("func", "Match", "function name")
	generateFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var cp *spec.CompiledPattern
	if *generateFlags.pattern != "" {
		var err error
		cp, err = compiler.Compile(*generateFlags.pattern)
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("generate needs a compiled pattern file or --pattern")
		}
		var err error
		cp, err = readCompiledPattern(args[0])
		if err != nil {
			return fmt.Errorf("Cannot read a compiled pattern: %w", err)
		}
	}

	src, err := driver.GenMatcher(cp, *generateFlags.pkgName, *generateFlags.funcName)
	if err != nil {
		return fmt.Errorf("Failed to generate a matcher: %w", err)
	}

	w := os.Stdout
	if *generateFlags.output != "" {
		f, err := os.OpenFile(*generateFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Failed to create an output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	_, err = w.Write(src)
	if err != nil {
		return fmt.Errorf("Failed to write matcher source code: %w", err)
	}
	return nil
}
