package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arena/internal/services/calculator"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression...",
	Short: "Evaluate a postfix expression",
	Long: `Evaluate reads a whitespace separated postfix expression such as "4 8 + 7 5 - /"
and prints the single value it reduces to`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Bool("verbose", false, "echo the parsed expression with the result")
}

func runEval(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	result, err := calculator.NewService().Evaluate(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose {
		_, err = color.New(color.FgGreen).Fprintln(out, result.String())
		return err
	}
	_, err = fmt.Fprintln(out, result.Value)
	return err
}
