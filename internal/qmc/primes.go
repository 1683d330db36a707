package qmc

import "fmt"

// RoundStat describes one generation round.
type RoundStat struct {
	Round    int `json:"round"`
	Terms    int `json:"terms"`
	Combined int `json:"combined"`
	Primes   int `json:"primes"`
}

// termSet is an insertion-ordered set of terms.
type termSet struct {
	terms []Term
	index map[Term]struct{}
}

func newTermSet(capacity int) *termSet {
	return &termSet{
		terms: make([]Term, 0, capacity),
		index: make(map[Term]struct{}, capacity),
	}
}

// add inserts t unless present and reports whether it was inserted.
func (s *termSet) add(t Term) bool {
	if _, ok := s.index[t]; ok {
		return false
	}
	s.index[t] = struct{}{}
	s.terms = append(s.terms, t)
	return true
}

func (s *termSet) len() int { return len(s.terms) }

// PrimeImplicants returns the prime implicants of the function whose
// minterms are given, in the order they were found, along with per-round
// statistics. Duplicate minterms are ignored.
func (m *Minimizer) PrimeImplicants(minterms []uint64) ([]Term, []RoundStat, error) {
	initial := newTermSet(len(minterms))
	for _, mt := range minterms {
		initial.add(Minterm(mt))
	}
	if err := m.checkLimit(initial.len(), 0); err != nil {
		return nil, nil, err
	}

	current := initial.terms
	primes := newTermSet(len(current))
	var stats []RoundStat

	for round := 0; len(current) > 0; round++ {
		combined := make([]bool, len(current))
		next := newTermSet(len(current))

		for i := range current {
			for j := i + 1; j < len(current); j++ {
				merged, ok := current[i].combine(current[j])
				if !ok {
					continue
				}
				combined[i], combined[j] = true, true
				if next.add(merged) {
					if err := m.checkLimit(next.len(), primes.len()); err != nil {
						return nil, nil, fmt.Errorf("round %d: %w", round, err)
					}
				}
			}
		}

		stat := RoundStat{Round: round, Terms: len(current)}
		for i, t := range current {
			if combined[i] {
				stat.Combined++
				continue
			}
			if primes.add(t) {
				stat.Primes++
			}
		}
		stats = append(stats, stat)

		current = next.terms
	}

	return primes.terms, stats, nil
}

func (m *Minimizer) checkLimit(round, primes int) error {
	if m.config.MaxTerms <= 0 {
		return nil
	}
	if round+primes > m.config.MaxTerms {
		return fmt.Errorf("%w: %d terms held, limit is %d", ErrTermLimit, round+primes, m.config.MaxTerms)
	}
	return nil
}
