// Package input reads the variable count and minterm list of a function
// from command-line arguments or an interactive terminal dialogue.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxVariables is the widest function accepted from user input.
const DefaultMaxVariables = 16

var (
	ErrInvalidVariables = errors.New("invalid variable count")
	ErrInvalidMinterm   = errors.New("invalid minterm")
	ErrNoMinterms       = errors.New("no minterms")
)

// ParseVariables parses a variable count in the range 1..max.
func ParseVariables(s string, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVariables, s)
	}
	if err := CheckVariables(n, max); err != nil {
		return 0, err
	}
	return n, nil
}

// CheckVariables reports whether n is in the range 1..max.
func CheckVariables(n, max int) error {
	if n < 1 || n > max {
		return fmt.Errorf("%w: %d (must be in range 1 ~ %d)", ErrInvalidVariables, n, max)
	}
	return nil
}

// ParseMinterms parses minterms of an n-variable function. Arguments may
// hold several values separated by commas or spaces, inclusive ranges such
// as 4-7, and may be wrapped in m(...) or ∑m(...). Duplicates are dropped.
func ParseMinterms(args []string, n int) ([]uint64, error) {
	max := maxMinterm(n)
	seen := make(map[uint64]struct{})
	var out []uint64
	add := func(v uint64) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for _, tok := range tokenize(args) {
		lo, hi, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		if hi > max {
			return nil, fmt.Errorf("%w: %d (must be in range 0 ~ %d)", ErrInvalidMinterm, hi, max)
		}
		for v := lo; ; v++ {
			add(v)
			if v == hi {
				break
			}
		}
	}

	if len(out) == 0 {
		return nil, ErrNoMinterms
	}
	return out, nil
}

func tokenize(args []string) []string {
	joined := strings.Join(args, " ")
	joined = strings.TrimSpace(joined)
	for _, prefix := range []string{"∑m(", "m("} {
		if strings.HasPrefix(joined, prefix) && strings.HasSuffix(joined, ")") {
			joined = strings.TrimSuffix(strings.TrimPrefix(joined, prefix), ")")
			break
		}
	}
	return strings.FieldsFunc(joined, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func parseToken(tok string) (uint64, uint64, error) {
	if lo, hi, ok := strings.Cut(tok, "-"); ok && lo != "" {
		from, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMinterm, tok)
		}
		to, err := strconv.ParseUint(hi, 10, 64)
		if err != nil || to < from {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMinterm, tok)
		}
		return from, to, nil
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMinterm, tok)
	}
	return v, v, nil
}

func maxMinterm(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}
