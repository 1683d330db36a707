package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const endOfInput = -1

// Prompt runs the interactive dialogue: it asks for the variable count, then
// reads minterms one at a time until -1, end of input, a non-numeric entry,
// or every possible minterm has been entered. Out-of-range values are
// reported on w and skipped. Duplicates are dropped. A missing or invalid
// variable count ends the dialogue with ErrNoMinterms, still matching
// ErrInvalidVariables.
func Prompt(r io.Reader, w io.Writer, maxVars int) (int, []uint64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	fmt.Fprintf(w, "Number of variables (1 ~ %d): ", maxVars)
	if !sc.Scan() {
		return 0, nil, fmt.Errorf("%w: %w: no input", ErrNoMinterms, ErrInvalidVariables)
	}
	n, err := ParseVariables(sc.Text(), maxVars)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrNoMinterms, err)
	}

	max := maxMinterm(n)
	limit := max + 1
	if limit == 0 {
		limit = max
	}
	fmt.Fprintf(w, "Enter minterms (0 ~ %d, max %d values, end with %d):\n", max, limit, endOfInput)

	seen := make(map[uint64]struct{})
	var minterms []uint64
	for count := uint64(0); count < limit; {
		fmt.Fprintf(w, "minterm #%d: ", count+1)
		if !sc.Scan() {
			break
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil || v == endOfInput {
			break
		}
		if v < 0 || uint64(v) > max {
			fmt.Fprintf(w, "Invalid minterm: %d (must be in range 0 ~ %d)\n", v, max)
			continue
		}
		count++
		if _, ok := seen[uint64(v)]; ok {
			continue
		}
		seen[uint64(v)] = struct{}{}
		minterms = append(minterms, uint64(v))
	}
	fmt.Fprintln(w)

	if len(minterms) == 0 {
		return n, nil, ErrNoMinterms
	}
	return n, minterms, sc.Err()
}
