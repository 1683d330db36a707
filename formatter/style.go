package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnolang/qmc/internal/qmc"
)

// Style controls how terms are rendered.
type Style struct {
	// VariablePrefix names variable i as prefix+i when VariableNames is empty.
	VariablePrefix string `yaml:"variable_prefix" json:"variable_prefix"`
	// VariableNames lists names from the most significant variable down.
	VariableNames []string `yaml:"variable_names,omitempty" json:"variable_names,omitempty"`
	AndSymbol     string   `yaml:"and_symbol" json:"and_symbol"`
	OrSymbol      string   `yaml:"or_symbol" json:"or_symbol"`
	Complement    string   `yaml:"complement" json:"complement"`
	// Parens wraps every product of a sum in parentheses.
	Parens bool `yaml:"parens" json:"parens"`
}

// DefaultStyle renders x3⋅x1'⋅x0 style products joined by " + ".
func DefaultStyle() Style {
	return Style{
		VariablePrefix: "x",
		AndSymbol:      "⋅",
		OrSymbol:       " + ",
		Complement:     "'",
		Parens:         true,
	}
}

// Validate checks that names, when given, match the variable count.
func (s Style) Validate(numVars int) error {
	if len(s.VariableNames) == 0 {
		return nil
	}
	if len(s.VariableNames) != numVars {
		return fmt.Errorf("got %d variable names for %d variables", len(s.VariableNames), numVars)
	}
	return nil
}

// VariableName returns the name of bit position i in an n-variable function.
func (s Style) VariableName(i, n int) string {
	if k := n - 1 - i; k >= 0 && k < len(s.VariableNames) {
		return s.VariableNames[k]
	}
	return s.VariablePrefix + strconv.Itoa(i)
}

// Variables lists variable names from the most significant down.
func (s Style) Variables(n int) []string {
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, s.VariableName(i, n))
	}
	return out
}

// FormatTerm renders t as a product of literals. A term without literals
// is the constant 1.
func FormatTerm(t qmc.Term, n int, s Style) string {
	var literals []string
	for i := n - 1; i >= 0; i-- {
		bit := uint64(1) << uint(i)
		if t.Mask&bit != 0 {
			continue
		}
		name := s.VariableName(i, n)
		if t.Bits&bit == 0 {
			name += s.Complement
		}
		literals = append(literals, name)
	}
	if len(literals) == 0 {
		return "1"
	}
	return strings.Join(literals, s.AndSymbol)
}

// FormatExpression renders terms as a sum of products. An empty sum is the
// constant 0.
func FormatExpression(terms []qmc.Term, n int, s Style) string {
	if len(terms) == 0 {
		return "0"
	}
	products := make([]string, len(terms))
	for i, t := range terms {
		p := FormatTerm(t, n, s)
		if s.Parens {
			p = "(" + p + ")"
		}
		products[i] = p
	}
	return strings.Join(products, s.OrSymbol)
}

// Pattern renders t in cube notation, most significant bit first, with '-'
// for eliminated variables.
func Pattern(t qmc.Term, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := n - 1; i >= 0; i-- {
		bit := uint64(1) << uint(i)
		switch {
		case t.Mask&bit != 0:
			b.WriteByte('-')
		case t.Bits&bit != 0:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
	}
	return b.String()
}

func joinMinterms(minterms []uint64) string {
	parts := make([]string, len(minterms))
	for i, m := range minterms {
		parts[i] = strconv.FormatUint(m, 10)
	}
	return strings.Join(parts, ", ")
}
