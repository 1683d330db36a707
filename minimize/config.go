package minimize

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/qmc/formatter"
	"github.com/gnolang/qmc/internal/input"
	"github.com/gnolang/qmc/internal/qmc"
)

// DefaultConfigFile is the configuration read when no path is given.
const DefaultConfigFile = ".qmc.yaml"

// Config represents the .qmc.yaml configuration file.
type Config struct {
	Name               string          `yaml:"name"`
	MaxVariables       int             `yaml:"max_variables"`
	MaxTerms           int             `yaml:"max_terms"`
	Verify             bool            `yaml:"verify"`
	VerifyMaxVariables int             `yaml:"verify_max_variables"`
	Output             formatter.Style `yaml:"output"`
}

func DefaultConfig() Config {
	mc := qmc.DefaultConfig()
	return Config{
		Name:               "qmc",
		MaxVariables:       input.DefaultMaxVariables,
		MaxTerms:           mc.MaxTerms,
		VerifyMaxVariables: mc.VerifyMaxVariables,
		Output:             formatter.DefaultStyle(),
	}
}

// LoadConfig reads the configuration at path on top of the defaults. A
// missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, err
	}

	if config.MaxVariables <= 0 || config.MaxVariables > qmc.MaxVariables {
		config.MaxVariables = input.DefaultMaxVariables
	}
	return config, nil
}

// MinimizerConfig returns the core minimizer settings.
func (c Config) MinimizerConfig() qmc.Config {
	return qmc.Config{
		MaxTerms:           c.MaxTerms,
		Verify:             c.Verify,
		VerifyMaxVariables: c.VerifyMaxVariables,
	}
}

// WriteConfig writes config as YAML to path.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}
