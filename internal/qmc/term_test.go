package qmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermCovers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		term    Term
		minterm uint64
		want    bool
	}{
		{"exact match", Term{Bits: 0b0101}, 0b0101, true},
		{"exact mismatch", Term{Bits: 0b0101}, 0b0100, false},
		{"masked bit ignored", Term{Bits: 0b0100, Mask: 0b1000}, 0b1100, true},
		{"unmasked bit differs", Term{Bits: 0b0100, Mask: 0b1000}, 0b1101, false},
		{"all masked", Term{Mask: 0b11}, 0b10, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.term.Covers(tt.minterm))
		})
	}
}

func TestTermCombine(t *testing.T) {
	t.Parallel()

	merged, ok := Term{Bits: 0b0100}.combine(Term{Bits: 0b1100})
	assert.True(t, ok)
	assert.Equal(t, Term{Bits: 0b0100, Mask: 0b1000}, merged)

	_, ok = Term{Bits: 0b0000}.combine(Term{Bits: 0b0011})
	assert.False(t, ok, "two differing bits must not combine")

	_, ok = Term{Bits: 0b0001}.combine(Term{Bits: 0b0001})
	assert.False(t, ok, "identical terms must not combine")

	_, ok = Term{Bits: 0b0000, Mask: 0b0001}.combine(Term{Bits: 0b0100, Mask: 0b0010})
	assert.False(t, ok, "different masks must not combine")
}

func TestTermLiterals(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, Term{Bits: 5}.Literals(4))
	assert.Equal(t, 2, Term{Bits: 0b1000, Mask: 0b0101}.Literals(4))
	assert.Equal(t, 0, Term{Mask: 0b11}.Literals(2))
}

func TestTermMinterms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		term Term
		n    int
		want []uint64
	}{
		{Term{Bits: 4}, 3, []uint64{4}},
		{Term{Bits: 0b0100, Mask: 0b1000}, 4, []uint64{4, 12}},
		{Term{Mask: 0b11}, 2, []uint64{0, 1, 2, 3}},
		{Term{Bits: 0b1000, Mask: 0b0101}, 4, []uint64{8, 9, 12, 13}},
	}
	for _, tt := range tests {
		got, err := tt.term.Minterms(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestTermMintermsWide(t *testing.T) {
	t.Parallel()
	got, err := Term{Mask: widthMask(10)}.Minterms(10)
	require.NoError(t, err)
	assert.Len(t, got, 1<<10)

	for _, n := range []int{MaxEnumeratedFree + 1, 63, 64} {
		_, err := Term{Mask: widthMask(n)}.Minterms(n)
		assert.ErrorIs(t, err, ErrTermLimit, "n=%d", n)
	}
	// only free positions inside the function width count
	got, err = Term{Bits: 1, Mask: ^uint64(0) &^ 1}.Minterms(3)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 5, 7}, got)
}
