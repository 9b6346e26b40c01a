package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nihei9/dfare/compiler"
	"github.com/nihei9/dfare/spec"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	debug  *bool
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "compile pattern",
		Short: "Compile a regular expression into a DFA",
		Long:  `compile takes a regular expression and generates a DFA accepting exactly the strings it describes.`,
		Example: `  Write to the specified file:
    dfare compile '(ab)*' -o ab.json
  Write to stdout:
    dfare compile 'a|b'`,
		Args: cobra.ExactArgs(1),
		RunE: runCompile,
	}
	compileFlags.debug = cmd.Flags().BoolP("debug", "d", false, "enable logging")
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) (retErr error) {
	var opts []compiler.CompilerOption
	if *compileFlags.debug {
		fileName := "dfare-compile.log"
		f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Cannot open the log file %s: %w", fileName, err)
		}
		defer f.Close()
		fmt.Fprintf(f, `dfare compile starts.
Date time: %v
---
`, time.Now().Format(time.RFC3339))
		defer func() {
			fmt.Fprintf(f, "---\n")
			if retErr != nil {
				fmt.Fprintf(f, "dfare compile failed: %v\n", retErr)
			} else {
				fmt.Fprintf(f, "dfare compile succeeded.\n")
			}
		}()

		opts = append(opts, compiler.EnableLogging(f))
	}

	cp, err := compiler.Compile(args[0], opts...)
	if err != nil {
		return err
	}
	err = writeCompiledPattern(cp, *compileFlags.output)
	if err != nil {
		return fmt.Errorf("Cannot write a compiled pattern: %w", err)
	}

	return nil
}

func writeCompiledPattern(cp *spec.CompiledPattern, path string) error {
	out, err := json.Marshal(cp)
	if err != nil {
		return err
	}
	w := os.Stdout
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Cannot open the output file %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	fmt.Fprintf(w, "%v\n", string(out))
	return nil
}
