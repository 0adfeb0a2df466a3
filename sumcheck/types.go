package sumcheck

import (
	"fmt"

	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/mle"
)

// Combination is Sum_j Prod_i f_{j,i}(x_0,...,x_{n-1}), a sum of products of
// dense MLEs of matching arity n. Each product may have a different number
// of factors; the round polynomial's degree is the longest product's factor
// count.
type Combination struct {
	NumVars  int
	Products [][]mle.Poly
}

// NewCombination validates that every factor of every product has arity
// NumVars.
func NewCombination(numVars int, products [][]mle.Poly) (Combination, error) {
	for pi, product := range products {
		for fi, f := range product {
			if f.NumVars() != numVars {
				return Combination{}, fmt.Errorf(
					"sumcheck: product %d factor %d has arity %d, want %d", pi, fi, f.NumVars(), numVars)
			}
		}
	}
	return Combination{NumVars: numVars, Products: products}, nil
}

// MaxDegree returns the longest product's factor count, i.e. the degree of
// every round polynomial this combination produces.
func (c Combination) MaxDegree() int {
	d := 0
	for _, product := range c.Products {
		if len(product) > d {
			d = len(product)
		}
	}
	return d
}

// Info is the public shape of a sumcheck instance, everything the verifier
// needs to know ahead of time.
type Info struct {
	NumVars   int
	MaxDegree int
}

// evalUnivariate evaluates, at field point x, the degree-len(evals)-1
// polynomial whose values at 0,1,...,len(evals)-1 are evals, via direct
// Lagrange interpolation. Degrees here are always <= 3 so this stays cheap.
func evalUnivariate(evals []field.Scalar, x field.Scalar) field.Scalar {
	acc := field.Zero()
	n := len(evals)
	for i := 0; i < n; i++ {
		term := evals[i]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			xi := field.FromUint64(uint64(i))
			xj := field.FromUint64(uint64(j))
			num := x.Sub(xj)
			den := xi.Sub(xj)
			term = term.Mul(num).Mul(den.Inverse())
		}
		acc = acc.Add(term)
	}
	return acc
}
