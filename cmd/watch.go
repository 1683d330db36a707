package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tt "github.com/gnolang/qmc/internal/types"
	"github.com/gnolang/qmc/minimize"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Minimize function files again whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := runWatch(ctx, logger, cmd.OutOrStdout(), args); err != nil {
			logger.Error("Error watching files", zap.Error(err))
			os.Exit(1)
		}
	},
}

func runWatch(ctx context.Context, logger *zap.Logger, out io.Writer, paths []string) error {
	engine, err := minimize.New(cfgFile, logger)
	if err != nil {
		return err
	}
	style := engine.Config().Output

	report := func(filename string, outcomes []tt.Outcome) {
		if err := printOutcomes(out, outcomes, style, false, false, ""); err != nil {
			logger.Error("Error printing outcomes", zap.String("file", filename), zap.Error(err))
		}
	}

	w, err := minimize.NewWatcher(engine, logger, report)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, path := range paths {
		if err := w.Add(path); err != nil {
			return err
		}
	}

	initial, err := minimize.ProcessFiles(ctx, logger, engine, paths, minimize.ProcessFile)
	if err != nil {
		return err
	}
	report("", initial)

	logger.Info("Watching for changes", zap.Strings("paths", paths))
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
