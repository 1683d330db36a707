package minimize

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	tt "github.com/gnolang/qmc/internal/types"
)

// progressOutput receives the progress bar drawn while processing
// directories.
var progressOutput io.Writer = os.Stderr

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine MinimizeEngine,
	paths []string,
	processor func(MinimizeEngine, string) ([]tt.Outcome, error),
) ([]tt.Outcome, error) {
	var allOutcomes []tt.Outcome
	for _, path := range paths {
		outcomes, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allOutcomes = append(allOutcomes, outcomes...)
	}

	return allOutcomes, nil
}

// ProcessPath processes a function file, or every function file below a
// directory using one worker per CPU. Outcomes follow the lexical order of
// file names. Files that fail to process are logged and skipped.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine MinimizeEngine,
	path string,
	processor func(MinimizeEngine, string) ([]tt.Outcome, error),
) ([]tt.Outcome, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return processor(engine, path)
	}

	var files []string
	err = filepath.WalkDir(path, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(progressOutput),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	results := make([][]tt.Outcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, filePath := range files {
		if gctx.Err() != nil {
			break
		}
		i, filePath := i, filePath
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes, err := processor(engine, filePath)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", filePath), zap.Error(err))
				}
			} else {
				results[i] = outcomes
			}
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = bar.Finish()
	fmt.Fprintln(progressOutput)

	var outcomes []tt.Outcome
	for _, r := range results {
		outcomes = append(outcomes, r...)
	}
	return outcomes, nil
}

func ProcessFile(engine MinimizeEngine, filePath string) ([]tt.Outcome, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine MinimizeEngine, source []byte) ([]tt.Outcome, error) {
	return engine.RunSource(source)
}
