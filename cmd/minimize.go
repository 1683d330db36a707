package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gnolang/qmc/internal/input"
	tt "github.com/gnolang/qmc/internal/types"
	"github.com/gnolang/qmc/minimize"
)

// minimize command flags
var (
	numVars    int
	varNames   string
	showPrimes bool
	jsonOutput bool
	outPath    string
)

var minimizeCmd = &cobra.Command{
	Use:     "minimize [minterms...]",
	Aliases: []string{"min"},
	Short:   "Minimize a single function",
	Long: `Minimizes the function whose minterms are given as arguments.
Minterms may be separated by spaces or commas, written as ranges, or wrapped in m(...).
Without minterms the variable count and minterms are read interactively.
Example) qmc minimize -n 4 4,8,10-12,15`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := runMinimize(ctx, logger, os.Stdin, cmd.OutOrStdout(), args); err != nil {
			logger.Error("Error minimizing function", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	addMinimizeFlags(minimizeCmd.Flags())
}

func addMinimizeFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&numVars, "variables", "n", 0, "Number of variables")
	fs.StringVar(&varNames, "names", "", "Comma-separated variable names, most significant first")
	addOutputFlags(fs, &showPrimes, &jsonOutput, &outPath)
}

// addOutputFlags registers the flags shared by commands printing outcomes.
func addOutputFlags(fs *pflag.FlagSet, primes, isJSON *bool, out *string) {
	fs.BoolVar(primes, "primes", false, "Also print the prime implicant chart")
	fs.BoolVar(isJSON, "json", false, "Output results in JSON format")
	fs.StringVarP(out, "output", "o", "", "Output path (when using JSON)")
}

func runMinimize(ctx context.Context, logger *zap.Logger, in io.Reader, out io.Writer, args []string) error {
	config, err := minimize.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if varNames != "" {
		config.Output.VariableNames = splitNames(varNames)
	}
	engine := minimize.NewWithConfig(config, logger)

	fn, err := readFunction(in, out, args, numVars, config.MaxVariables)
	if errors.Is(err, input.ErrNoMinterms) {
		fmt.Fprintln(out, "No minterms to minimize.")
		return nil
	}
	if err != nil {
		return err
	}

	var outcome tt.Outcome
	if err := runWithTimeout(ctx, func() {
		outcome = engine.Minimize(fn)
	}); err != nil {
		return err
	}
	if outcome.Failed() {
		return errors.New(outcome.Error)
	}

	return printOutcomes(out, []tt.Outcome{outcome}, config.Output, showPrimes, jsonOutput, outPath)
}

// readFunction builds the function from the arguments, or asks for it
// interactively when no minterms are given.
func readFunction(in io.Reader, out io.Writer, args []string, n, maxVars int) (tt.Function, error) {
	fn := tt.Function{Name: "F"}
	if len(args) == 0 {
		vars, minterms, err := input.Prompt(in, out, maxVars)
		if err != nil {
			return fn, err
		}
		fn.Variables, fn.Minterms = vars, minterms
		return fn, nil
	}

	if n == 0 {
		return fn, fmt.Errorf("%w: use -n to give the variable count", input.ErrInvalidVariables)
	}
	if err := input.CheckVariables(n, maxVars); err != nil {
		return fn, err
	}
	minterms, err := input.ParseMinterms(args, n)
	if err != nil {
		return fn, err
	}
	fn.Variables, fn.Minterms = n, minterms
	return fn, nil
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func runWithTimeout(ctx context.Context, f func()) error {
	done := make(chan struct{})
	go func() {
		f()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("minimizer timed out: %w", ctx.Err())
	case <-done:
		return nil
	}
}
