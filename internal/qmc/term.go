package qmc

import (
	"fmt"
	"math/bits"
)

// MaxVariables is the widest function the minimizer accepts.
const MaxVariables = 64

// MaxEnumeratedFree is the most eliminated variables Term.Minterms expands.
const MaxEnumeratedFree = 24

// Term is an implicant. Bit i of Mask set means variable i is eliminated.
// Masked positions of Bits are always zero, so two terms describing the
// same cube compare equal.
type Term struct {
	Bits uint64 `json:"bits" yaml:"bits"`
	Mask uint64 `json:"mask" yaml:"mask"`
}

// Minterm returns the zero-mask term for m.
func Minterm(m uint64) Term {
	return Term{Bits: m}
}

// Covers reports whether m agrees with t on every unmasked position.
func (t Term) Covers(m uint64) bool {
	return m&^t.Mask == t.Bits&^t.Mask
}

// combine merges t and o when they share a mask and differ in exactly one
// unmasked bit.
func (t Term) combine(o Term) (Term, bool) {
	if t.Mask != o.Mask {
		return Term{}, false
	}
	diff := t.Bits ^ o.Bits
	if diff == 0 || diff&(diff-1) != 0 {
		return Term{}, false
	}
	return Term{Bits: t.Bits & o.Bits, Mask: t.Mask | diff}, true
}

// Literals returns the number of literals t has in an n-variable function.
func (t Term) Literals(n int) int {
	return n - bits.OnesCount64(t.Mask&widthMask(n))
}

// Minterms lists the minterms of an n-variable function covered by t, in
// ascending order. A term with more than MaxEnumeratedFree eliminated
// variables fails with ErrTermLimit instead of expanding 2^k values.
func (t Term) Minterms(n int) ([]uint64, error) {
	free := t.Mask & widthMask(n)
	k := bits.OnesCount64(free)
	if k > MaxEnumeratedFree {
		return nil, fmt.Errorf("%w: term covers 2^%d minterms (max 2^%d)", ErrTermLimit, k, MaxEnumeratedFree)
	}
	out := make([]uint64, 0, 1<<uint(k))
	// enumerate subsets of the free positions
	sub := uint64(0)
	for {
		out = append(out, t.Bits|sub)
		if sub == free {
			break
		}
		sub = (sub - free) & free
	}
	return out, nil
}

func widthMask(n int) uint64 {
	if n >= MaxVariables {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}
