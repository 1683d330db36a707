package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/qmc/internal/cache"
	"github.com/gnolang/qmc/minimize"
)

// batch command flags
var (
	batchPrimes bool
	batchJSON   bool
	batchOut    string
	cacheDir    string
)

var batchCmd = &cobra.Command{
	Use:   "batch [paths...]",
	Short: "Minimize every function of function files",
	Long: `Reads YAML or JSON function files, or every such file below a directory, and minimizes each function.
Example) qmc batch --cache-dir .qmc-cache functions/`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		failed, err := runBatch(ctx, logger, cmd.OutOrStdout(), args)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	addOutputFlags(batchCmd.Flags(), &batchPrimes, &batchJSON, &batchOut)
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Directory of the result cache (disabled when empty)")
}

// runBatch minimizes every function of the given paths and returns the
// number of functions that failed.
func runBatch(ctx context.Context, logger *zap.Logger, out io.Writer, paths []string) (int, error) {
	engine, err := minimize.New(cfgFile, logger)
	if err != nil {
		return 0, err
	}

	if cacheDir != "" {
		c, err := cache.New(cacheDir, cfgFile)
		if err != nil {
			return 0, err
		}
		engine.UseCache(c)
	}

	outcomes, err := minimize.ProcessFiles(ctx, logger, engine, paths, minimize.ProcessFile)
	if err != nil {
		return 0, err
	}

	if err := printOutcomes(out, outcomes, engine.Config().Output, batchPrimes, batchJSON, batchOut); err != nil {
		return 0, err
	}

	failed := countFailed(outcomes)
	if failed > 0 {
		logger.Warn("Some functions could not be minimized", zap.Int("failed", failed), zap.Int("total", len(outcomes)))
	}
	return failed, nil
}
