package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dfare",
	Short: "Compile regular expressions into DFAs and test strings against them",
	Long: `dfare provides four features:
* Compiles a regular expression into a portable DFA.
* Tests whether whole strings belong to the language of a pattern.
* Runs match suites recording the expected behavior of patterns.
* Generates Go matcher functions from patterns.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
