// Package qmc implements two-level Boolean minimization with the
// Quine–McCluskey method.
//
// A function is given as the list of its minterms. Minimization runs in
// two phases:
//   - prime implicant generation: terms differing in exactly one unmasked
//     bit are merged round by round until nothing combines; every term that
//     never merged in its round is a prime implicant
//   - cover selection: primes that are the only cover of some minterm are
//     selected first (single scan in minterm order), then the prime covering
//     the most uncovered minterms is added until every minterm is covered
//
// The cover pass is greedy. It does not search for an exact minimum cost
// cover and don't-care terms are not supported.
package qmc
