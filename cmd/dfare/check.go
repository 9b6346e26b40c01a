package main

import (
	"fmt"
	"os"

	"github.com/nihei9/dfare/suite"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check suite-file",
		Short: "Run a match suite",
		Long: `check compiles every pattern of a match suite and verifies the inputs it must match or reject
and the patterns that must fail to compile.`,
		Example: `  dfare check testdata/basic.suite`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("Cannot open the suite file %s: %w", args[0], err)
	}
	defer f.Close()
	s, err := suite.Parse(args[0], f)
	if err != nil {
		return err
	}
	report := suite.Run(s)
	report.Write(os.Stdout)
	if !report.OK() {
		return fmt.Errorf("%v of the expectations in %s failed", len(report.Failures), args[0])
	}
	return nil
}
