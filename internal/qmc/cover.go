package qmc

// Selection is the result of cover selection. Both slices hold indices into
// the prime list in ascending order; Essential is a subset of Selected.
type Selection struct {
	Selected  []int
	Essential []int
}

// SelectCover picks a subset of primes covering every minterm.
//
// The essential pass scans minterms once, in input order: a minterm with
// exactly one covering prime selects it. The pass is not repeated after a
// selection. The greedy pass then repeatedly adds the unselected prime that
// covers the most uncovered minterms, preferring the lowest index on ties,
// and stops early when no prime covers anything new.
func SelectCover(primes []Term, minterms []uint64) Selection {
	selected := make([]bool, len(primes))
	essential := make([]bool, len(primes))
	covered := make([]bool, len(minterms))

	take := func(p int) {
		selected[p] = true
		for k, mt := range minterms {
			if primes[p].Covers(mt) {
				covered[k] = true
			}
		}
	}

	for _, mt := range minterms {
		count, only := 0, -1
		for j, p := range primes {
			if p.Covers(mt) {
				count++
				only = j
			}
		}
		if count == 1 {
			essential[only] = true
			take(only)
		}
	}

	for !allSet(covered) {
		best, bestCount := -1, 0
		for i, p := range primes {
			if selected[i] {
				continue
			}
			count := 0
			for k, mt := range minterms {
				if !covered[k] && p.Covers(mt) {
					count++
				}
			}
			if count > bestCount {
				best, bestCount = i, count
			}
		}
		if best < 0 {
			break
		}
		take(best)
	}

	return Selection{
		Selected:  indices(selected),
		Essential: indices(essential),
	}
}

func allSet(flags []bool) bool {
	for _, f := range flags {
		if !f {
			return false
		}
	}
	return true
}

func indices(flags []bool) []int {
	out := make([]int, 0, len(flags))
	for i, f := range flags {
		if f {
			out = append(out, i)
		}
	}
	return out
}
