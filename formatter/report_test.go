package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/qmc/internal/qmc"
)

func classicSolution(t *testing.T) *qmc.Solution {
	t.Helper()
	sol, err := qmc.New().Minimize(4, []uint64{4, 8, 10, 11, 12, 15})
	require.NoError(t, err)
	return sol
}

func TestReport(t *testing.T) {
	t.Parallel()
	expected := `=== Minimized Result (SOP form) ===
F(x3, x2, x1, x0) = ∑m(4, 8, 10, 11, 12, 15)

F = (x2⋅x1'⋅x0') + (x3⋅x2'⋅x0') + (x3⋅x1⋅x0)
`
	assert.Equal(t, expected, Report("", classicSolution(t), DefaultStyle(), false))
}

func TestReportWithPrimes(t *testing.T) {
	t.Parallel()
	expected := `=== Minimized Result (SOP form) ===
G(x3, x2, x1, x0) = ∑m(4, 8, 10, 11, 12, 15)

G = (x2⋅x1'⋅x0') + (x3⋅x2'⋅x0') + (x3⋅x1⋅x0)

=== Prime Implicants ===
P0   -100  x2⋅x1'⋅x0'  m(4, 12)  essential
P1   10-0  x3⋅x2'⋅x0'  m(8, 10)  selected
P2   1-00  x3⋅x1'⋅x0'  m(8, 12)
P3   101-  x3⋅x2'⋅x1   m(10, 11)
P4   1-11  x3⋅x1⋅x0    m(11, 15)  essential
`
	assert.Equal(t, expected, Report("G", classicSolution(t), DefaultStyle(), true))
}

func TestReportConstantOne(t *testing.T) {
	t.Parallel()
	sol, err := qmc.New().Minimize(2, []uint64{0, 1, 2, 3})
	require.NoError(t, err)

	assert.Contains(t, Report("", sol, DefaultStyle(), false), "F = (1)\n")

	noParens := DefaultStyle()
	noParens.Parens = false
	assert.Equal(t, "F = 1", Summary("", sol, noParens))
}

func TestSummary(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "classic = (x2⋅x1'⋅x0') + (x3⋅x2'⋅x0') + (x3⋅x1⋅x0)",
		Summary("classic", classicSolution(t), DefaultStyle()))
}
