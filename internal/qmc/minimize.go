package qmc

import "fmt"

// Minimizer runs Quine–McCluskey minimization. A Minimizer holds no state
// between calls and is safe for concurrent use.
type Minimizer struct {
	config Config
}

// New creates a Minimizer with the default configuration.
func New() *Minimizer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Minimizer with the given configuration.
func NewWithConfig(config Config) *Minimizer {
	return &Minimizer{config: config}
}

// Config returns the configuration of m.
func (m *Minimizer) Config() Config {
	return m.config
}

// Solution is the outcome of one minimization.
type Solution struct {
	NumVariables int         `json:"variables"`
	Minterms     []uint64    `json:"minterms"`
	Primes       []Term      `json:"primes"`
	Selected     []int       `json:"selected"`
	Essential    []int       `json:"essential"`
	Rounds       []RoundStat `json:"rounds,omitempty"`
}

// Cover returns the selected primes in generation order.
func (s *Solution) Cover() []Term {
	out := make([]Term, 0, len(s.Selected))
	for _, i := range s.Selected {
		out = append(out, s.Primes[i])
	}
	return out
}

// Literals returns the total literal count of the cover.
func (s *Solution) Literals() int {
	n := 0
	for _, t := range s.Cover() {
		n += t.Literals(s.NumVariables)
	}
	return n
}

// IsSelected reports whether prime i is part of the cover.
func (s *Solution) IsSelected(i int) bool {
	return contains(s.Selected, i)
}

// IsEssential reports whether prime i was selected by the essential pass.
func (s *Solution) IsEssential(i int) bool {
	return contains(s.Essential, i)
}

func contains(sorted []int, i int) bool {
	for _, v := range sorted {
		if v == i {
			return true
		}
		if v > i {
			return false
		}
	}
	return false
}

// Validate checks the minimizer's preconditions.
func Validate(numVars int, minterms []uint64) error {
	if numVars < 1 || numVars > MaxVariables {
		return fmt.Errorf("%w: variable count %d out of range 1..%d", ErrInvalidInput, numVars, MaxVariables)
	}
	if len(minterms) == 0 {
		return fmt.Errorf("%w: no minterms", ErrInvalidInput)
	}
	limit := widthMask(numVars)
	for _, mt := range minterms {
		if mt > limit {
			return fmt.Errorf("%w: minterm %d out of range 0..%d", ErrInvalidInput, mt, limit)
		}
	}
	return nil
}

// Dedup returns minterms without duplicates, keeping first occurrences.
func Dedup(minterms []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(minterms))
	out := make([]uint64, 0, len(minterms))
	for _, mt := range minterms {
		if _, ok := seen[mt]; ok {
			continue
		}
		seen[mt] = struct{}{}
		out = append(out, mt)
	}
	return out
}

// Minimize computes a sum-of-products cover for the numVars-variable
// function whose minterms are given.
func (m *Minimizer) Minimize(numVars int, minterms []uint64) (*Solution, error) {
	if err := Validate(numVars, minterms); err != nil {
		return nil, err
	}
	minterms = Dedup(minterms)

	primes, rounds, err := m.PrimeImplicants(minterms)
	if err != nil {
		return nil, err
	}

	sel := SelectCover(primes, minterms)
	sol := &Solution{
		NumVariables: numVars,
		Minterms:     minterms,
		Primes:       primes,
		Selected:     sel.Selected,
		Essential:    sel.Essential,
		Rounds:       rounds,
	}

	if err := CheckCover(minterms, sol.Cover()); err != nil {
		return nil, err
	}
	if m.config.Verify && numVars <= m.config.VerifyMaxVariables {
		if err := Verify(numVars, minterms, sol.Cover()); err != nil {
			return nil, err
		}
	}

	return sol, nil
}

// CheckCover returns ErrCoverageInvariantViolated if some minterm is not
// covered by any of the terms.
func CheckCover(minterms []uint64, cover []Term) error {
	for _, mt := range minterms {
		if !coveredBy(mt, cover) {
			return fmt.Errorf("%w: minterm %d is not covered", ErrCoverageInvariantViolated, mt)
		}
	}
	return nil
}

// Verify evaluates the cover on every input of an n-variable function and
// checks that it is true exactly on the minterms.
func Verify(numVars int, minterms []uint64, cover []Term) error {
	if numVars < 1 || numVars >= MaxVariables {
		return fmt.Errorf("%w: cannot enumerate %d variables", ErrInvalidInput, numVars)
	}
	on := make(map[uint64]struct{}, len(minterms))
	for _, mt := range minterms {
		on[mt] = struct{}{}
	}
	for x := uint64(0); x <= widthMask(numVars); x++ {
		_, want := on[x]
		if got := coveredBy(x, cover); got != want {
			return fmt.Errorf("%w: input %d evaluates to %t, want %t", ErrCoverageInvariantViolated, x, got, want)
		}
	}
	return nil
}

func coveredBy(x uint64, cover []Term) bool {
	for _, t := range cover {
		if t.Covers(x) {
			return true
		}
	}
	return false
}
