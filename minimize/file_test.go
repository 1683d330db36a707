package minimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnolang/qmc/internal/types"
)

func TestParseFunctions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		source string
		want   []tt.Function
	}{
		{
			name: "yaml",
			source: `functions:
  - name: classic
    variables: 4
    minterms: [4, 8, 10, 11, 12, 15]
  - variables: 2
    minterms:
      - 0
`,
			want: []tt.Function{
				{Name: "classic", Variables: 4, Minterms: []uint64{4, 8, 10, 11, 12, 15}},
				{Name: "F1", Variables: 2, Minterms: []uint64{0}},
			},
		},
		{
			name:   "json",
			source: `{"functions": [{"name": "xor", "variables": 2, "minterms": [1, 2]}]}`,
			want: []tt.Function{
				{Name: "xor", Variables: 2, Minterms: []uint64{1, 2}},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFunctions([]byte(tc.source))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFunctionsInvalid(t *testing.T) {
	t.Parallel()
	_, err := ParseFunctions([]byte("functions: [{minterms: [-1]}]"))
	assert.Error(t, err)

	_, err = ParseFunctions([]byte("functions: {"))
	assert.Error(t, err)
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()
	assert.True(t, hasDesiredExtension("a/b.yaml"))
	assert.True(t, hasDesiredExtension("b.yml"))
	assert.True(t, hasDesiredExtension("b.json"))
	assert.False(t, hasDesiredExtension("b.go"))
}
