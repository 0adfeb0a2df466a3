package mle

import (
	"fmt"

	"github.com/zkspartan/spartan-core/field"
)

// Factor is the length-2 table (1-t_i, t_i) for a single variable x_i:
// eq̃_t(x) = prod_i (t_i*x_i + (1-t_i)*(1-x_i)) factors into one such table
// per variable.
type Factor [2]field.Scalar

// Factors builds the per-variable eq-extension factors for t. With them the
// verifier evaluates eq̃_t at a point in O(n) (EvalFactorsAt) without
// expanding the full 2^n table. The prover's first sumcheck instead uses
// the dense table from Expand as one multilinear factor, which adds one to
// the degree of each product it appears in.
func Factors(t []field.Scalar) []Factor {
	out := make([]Factor, len(t))
	for i, ti := range t {
		out[i] = Factor{field.One().Sub(ti), ti}
	}
	return out
}

// Expand builds the full length-2^n table of eq̃_t via iterative tensor
// doubling: after processing t[0..k), entry b of the length-2^k table holds
// eq̃_{t[0..k)}(bits(b)), with bit i of b (little-endian) standing for x_i.
// Processing t[k] doubles the table.
func Expand(t []field.Scalar) []field.Scalar {
	table := []field.Scalar{field.One()}
	for _, ti := range t {
		oneMinusTi := field.One().Sub(ti)
		half := len(table)
		next := make([]field.Scalar, half*2)
		for b, v := range table {
			next[b] = v.Mul(oneMinusTi)
			next[b+half] = v.Mul(ti)
		}
		table = next
	}
	return table
}

// ExpandFromIndex returns the length-2^k table of eq̃ over the last k
// variables x_{n-k}..x_{n-1}, i.e. Expand(t[n-k:]) for the suffix t[n-k:].
// This gives the per-level table a fixed-base commitment setup needs: for
// k from n down to 1, the length-2^k sub-table is Expand(t[n-k:]).
func ExpandFromIndex(t []field.Scalar, k int) []field.Scalar {
	n := len(t)
	return Expand(t[n-k:])
}

// EvalFactorsAt evaluates the product of factors at a field point x (used
// to check eq̃_τ(r_x) against the first sumcheck's sub-claim).
func EvalFactorsAt(factors []Factor, x []field.Scalar) (field.Scalar, error) {
	if len(factors) != len(x) {
		return field.Scalar{}, fmt.Errorf("mle: eq-factor arity mismatch: %d factors, %d coordinates", len(factors), len(x))
	}
	acc := field.One()
	for i, xi := range x {
		// factor_i(x_i) = (1-x_i)*factor[0] + x_i*factor[1], but since x is
		// itself a field point (not necessarily boolean) we use the same
		// affine form as the MLE it linearly interpolates.
		term := factors[i][0].Mul(field.One().Sub(xi)).Add(factors[i][1].Mul(xi))
		acc = acc.Mul(term)
	}
	return acc, nil
}
