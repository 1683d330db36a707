package qmc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimeImplicants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		minterms []uint64
		want     []Term
	}{
		{
			name:     "single minterm",
			minterms: []uint64{0},
			want:     []Term{{Bits: 0, Mask: 0}},
		},
		{
			name:     "all minterms of two variables",
			minterms: []uint64{0, 1, 2, 3},
			want:     []Term{{Bits: 0, Mask: 0b11}},
		},
		{
			name:     "no pair differs in one bit",
			minterms: []uint64{0, 3, 5},
			want:     []Term{{Bits: 0}, {Bits: 3}, {Bits: 5}},
		},
		{
			name:     "classic textbook",
			minterms: []uint64{4, 8, 10, 11, 12, 15},
			want: []Term{
				{Bits: 0b0100, Mask: 0b1000}, // -100
				{Bits: 0b1000, Mask: 0b0010}, // 10-0
				{Bits: 0b1000, Mask: 0b0100}, // 1-00
				{Bits: 0b1010, Mask: 0b0001}, // 101-
				{Bits: 0b1011, Mask: 0b0100}, // 1-11
			},
		},
		{
			name:     "mixed levels",
			minterms: []uint64{0, 1, 2, 3, 7},
			want: []Term{
				{Bits: 0b011, Mask: 0b100}, // -11
				{Bits: 0b000, Mask: 0b011}, // 0--
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			primes, rounds, err := New().PrimeImplicants(tt.minterms)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, primes); diff != "" {
				t.Errorf("PrimeImplicants() mismatch (-want +got):\n%s", diff)
			}
			assert.NotEmpty(t, rounds)
		})
	}
}

func TestPrimeImplicantsRounds(t *testing.T) {
	t.Parallel()

	_, rounds, err := New().PrimeImplicants([]uint64{0, 1, 2, 3})
	require.NoError(t, err)

	want := []RoundStat{
		{Round: 0, Terms: 4, Combined: 4, Primes: 0},
		{Round: 1, Terms: 4, Combined: 4, Primes: 0},
		{Round: 2, Terms: 1, Combined: 0, Primes: 1},
	}
	assert.Equal(t, want, rounds)
}

func TestPrimeImplicantsDuplicates(t *testing.T) {
	t.Parallel()
	m := New()

	withDup, _, err := m.PrimeImplicants([]uint64{4, 8, 4, 10, 11, 12, 15, 8, 15})
	require.NoError(t, err)
	without, _, err := m.PrimeImplicants([]uint64{4, 8, 10, 11, 12, 15})
	require.NoError(t, err)

	assert.Equal(t, without, withDup)
}

func TestPrimeImplicantsTermLimit(t *testing.T) {
	t.Parallel()

	_, _, err := NewWithConfig(Config{MaxTerms: 2}).PrimeImplicants([]uint64{0, 1, 2, 3})
	assert.True(t, errors.Is(err, ErrTermLimit))

	// the initial eight terms fit, the twelve merged pairs of round 0 do not
	_, _, err = NewWithConfig(Config{MaxTerms: 8}).PrimeImplicants([]uint64{0, 1, 2, 3, 4, 5, 6, 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTermLimit)
	assert.Contains(t, err.Error(), "round 0")

	_, _, err = NewWithConfig(Config{}).PrimeImplicants([]uint64{0, 1, 2, 3, 4, 5, 6, 7})
	assert.NoError(t, err, "zero MaxTerms disables the limit")
}
