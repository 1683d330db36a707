package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/gnolang/qmc/formatter"
	tt "github.com/gnolang/qmc/internal/types"
)

var failureStyle = color.New(color.FgRed, color.Bold)

func printOutcomes(w io.Writer, outcomes []tt.Outcome, style formatter.Style, primes, isJSON bool, jsonOutput string) error {
	if isJSON {
		d, err := json.MarshalIndent(outcomes, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling outcomes to JSON: %w", err)
		}
		if jsonOutput == "" {
			_, err = fmt.Fprintln(w, string(d))
			return err
		}
		if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
			return fmt.Errorf("error writing JSON output file: %w", err)
		}
		return nil
	}

	// text output
	lastFile := ""
	for i, o := range outcomes {
		if o.Filename != "" && o.Filename != lastFile {
			fmt.Fprintf(w, "--> %s\n", o.Filename)
			lastFile = o.Filename
		}
		if o.Failed() {
			fmt.Fprintf(w, "%s %s: %s\n", failureStyle.Sprint("error:"), o.Function.Name, o.Error)
			continue
		}
		fmt.Fprint(w, formatter.Report(o.Function.Name, o.Solution, style, primes))
		if i < len(outcomes)-1 {
			fmt.Fprintln(w)
		}
	}
	return nil
}

func countFailed(outcomes []tt.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}
