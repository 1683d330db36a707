// Package minimize runs the Quine–McCluskey minimizer over functions given
// on the command line or in function files.
package minimize

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gnolang/qmc/formatter"
	"github.com/gnolang/qmc/internal/cache"
	"github.com/gnolang/qmc/internal/input"
	"github.com/gnolang/qmc/internal/qmc"
	tt "github.com/gnolang/qmc/internal/types"
)

type MinimizeEngine interface {
	Minimize(fn tt.Function) tt.Outcome
	Run(filePath string) ([]tt.Outcome, error)
	RunSource(source []byte) ([]tt.Outcome, error)
}

// Engine minimizes functions according to a Config.
type Engine struct {
	config    Config
	minimizer *qmc.Minimizer
	logger    *zap.Logger
	cache     *cache.Cache
}

// New creates an engine using the configuration file at configurationPath.
func New(configurationPath string, logger *zap.Logger) (*Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return NewWithConfig(config, logger), nil
}

func NewWithConfig(config Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		config:    config,
		minimizer: qmc.NewWithConfig(config.MinimizerConfig()),
		logger:    logger,
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// UseCache makes Run consult and fill c.
func (e *Engine) UseCache(c *cache.Cache) {
	e.cache = c
}

// Minimize minimizes a single function. Failures are reported in the
// outcome rather than returned.
func (e *Engine) Minimize(fn tt.Function) tt.Outcome {
	outcome := tt.Outcome{Function: fn}

	if err := input.CheckVariables(fn.Variables, e.config.MaxVariables); err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	if err := e.config.Output.Validate(fn.Variables); err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	sol, err := e.minimizer.Minimize(fn.Variables, fn.Minterms)
	if err != nil {
		e.logger.Error("Failed to minimize function", zap.String("function", fn.Name), zap.Error(err))
		outcome.Error = err.Error()
		return outcome
	}

	for _, r := range sol.Rounds {
		e.logger.Debug("Generation round",
			zap.String("function", fn.Name),
			zap.Int("round", r.Round),
			zap.Int("terms", r.Terms),
			zap.Int("combined", r.Combined),
			zap.Int("primes", r.Primes),
		)
	}
	e.logger.Debug("Cover selected",
		zap.String("function", fn.Name),
		zap.Int("primes", len(sol.Primes)),
		zap.Ints("essential", sol.Essential),
		zap.Ints("selected", sol.Selected),
	)

	outcome.Solution = sol
	outcome.Expression = formatter.FormatExpression(sol.Cover(), sol.NumVariables, e.config.Output)
	return outcome
}

// RunSource minimizes every function of a function file's content.
func (e *Engine) RunSource(source []byte) ([]tt.Outcome, error) {
	functions, err := ParseFunctions(source)
	if err != nil {
		return nil, err
	}

	outcomes := make([]tt.Outcome, 0, len(functions))
	for _, fn := range functions {
		outcomes = append(outcomes, e.Minimize(fn))
	}
	return outcomes, nil
}

// Run minimizes every function of the function file at filePath.
func (e *Engine) Run(filePath string) ([]tt.Outcome, error) {
	if e.cache != nil {
		if outcomes, ok := e.cache.Get(filePath); ok {
			e.logger.Debug("Cache hit", zap.String("file", filePath))
			return outcomes, nil
		}
	}

	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filePath, err)
	}

	outcomes, err := e.RunSource(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	for i := range outcomes {
		outcomes[i].Filename = filePath
	}

	if e.cache != nil {
		if err := e.cache.Set(filePath, outcomes); err != nil {
			e.logger.Warn("Failed to update cache", zap.String("file", filePath), zap.Error(err))
		}
	}
	return outcomes, nil
}
