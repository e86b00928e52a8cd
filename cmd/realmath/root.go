package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	precision int
	radix     int
	degrees   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "realmath [expression]",
		Short: "An arbitrary-precision calculator over exact real arithmetic",
		Long: "realmath evaluates arithmetic expressions against unified reals:\n" +
			"rational and symbolic values display exactly, everything else is\n" +
			"approximated to the requested precision.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision < 1 {
				return errors.Errorf("--precision must be positive, got %d", opts.precision)
			}
			if opts.radix < 2 || opts.radix > 36 {
				return errors.Errorf("--radix must be between 2 and 36, got %d", opts.radix)
			}
			if len(args) > 0 {
				return evalLine(cmd, strings.Join(args, " "), opts)
			}
			return runREPL(cmd, opts)
		},
	}

	cmd.PersistentFlags().IntVar(&opts.precision, "precision", 16, "decimal digits of precision for non-exact results")
	cmd.PersistentFlags().IntVar(&opts.radix, "radix", 10, "display radix for non-exact results")
	cmd.PersistentFlags().BoolVar(&opts.degrees, "degrees", false, "use degrees instead of radians for trig functions")

	return cmd
}

// runREPL evaluates one expression per line from the command's input
// stream until EOF, writing each result (or error) to its output stream.
func runREPL(cmd *cobra.Command, opts *options) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := evalLine(cmd, line, opts); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
	return scanner.Err()
}

func evalLine(cmd *cobra.Command, expr string, opts *options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("evaluating %q: %v", expr, r)
		}
	}()

	result, evalErr := Evaluate(expr, opts.degrees)
	if evalErr != nil {
		return errors.Wrapf(evalErr, "evaluating %q", expr)
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatResult(result, opts))
	return nil
}
