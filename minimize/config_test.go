package minimize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/qmc/formatter"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	config, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigOverlay(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".qmc.yaml")
	content := `name: custom
max_variables: 8
verify: true
output:
  variable_names: [A, B, C]
  and_symbol: ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "custom", config.Name)
	assert.Equal(t, 8, config.MaxVariables)
	assert.True(t, config.Verify)
	assert.Equal(t, DefaultConfig().MaxTerms, config.MaxTerms)
	assert.Equal(t, []string{"A", "B", "C"}, config.Output.VariableNames)
	assert.Equal(t, "", config.Output.AndSymbol)
	assert.Equal(t, formatter.DefaultStyle().OrSymbol, config.Output.OrSymbol)

	mc := config.MinimizerConfig()
	assert.True(t, mc.Verify)
	assert.Equal(t, config.MaxTerms, mc.MaxTerms)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".qmc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_variables: [1, 2]\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".qmc.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".qmc.yaml")

	require.NoError(t, WriteConfig(path, DefaultConfig()))
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}
