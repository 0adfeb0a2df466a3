package mle

import (
	"fmt"
	"math/bits"

	"github.com/zkspartan/spartan-core/field"
)

// Poly is the multilinear extension f̃ of arity n, represented by its
// evaluation table over the boolean hypercube {0,1}^n. len(Table) is always
// a power of two; NumVars() == log2(len(Table)).
//
// Poly is mutated in place by BindFirst, which is the fundamental sumcheck
// step: it halves the table and decrements the arity. Once NumVars reaches
// 0 the table holds a single scalar.
type Poly struct {
	Table []field.Scalar
}

// FromTable constructs a Poly from an evaluation table. Fails if len(table)
// is not a power of two.
func FromTable(table []field.Scalar) (Poly, error) {
	n := len(table)
	if n == 0 || n&(n-1) != 0 {
		return Poly{}, fmt.Errorf("mle: table length %d is not a power of two", n)
	}
	return Poly{Table: table}, nil
}

// Zeros returns the all-zero MLE of arity n.
func Zeros(n int) Poly {
	return Poly{Table: make([]field.Scalar, 1<<uint(n))}
}

func (p Poly) NumVars() int {
	if len(p.Table) == 0 {
		return 0
	}
	return bits.Len(uint(len(p.Table))) - 1
}

// Clone returns a deep copy so callers can bind a polynomial without
// disturbing a shared original (e.g. sumcheck rebinding a matrix-derived
// MLE owned by the prover key).
func (p Poly) Clone() Poly {
	t := make([]field.Scalar, len(p.Table))
	copy(t, p.Table)
	return Poly{Table: t}
}

// EvalAt evaluates f̃ at an arbitrary point p of length NumVars, in
// O(2^n) time: builds eq̃_p on the cube via tensor doubling and takes the
// inner product with Table.
func (p Poly) EvalAt(point []field.Scalar) (field.Scalar, error) {
	if len(point) != p.NumVars() {
		return field.Scalar{}, fmt.Errorf("mle: EvalAt expected %d coordinates, got %d", p.NumVars(), len(point))
	}
	eqTable := Expand(point)
	acc := field.Zero()
	for i, v := range p.Table {
		acc = acc.Add(v.Mul(eqTable[i]))
	}
	return acc, nil
}

// SumOverCube returns sum_b Table[b].
func (p Poly) SumOverCube() field.Scalar {
	acc := field.Zero()
	for _, v := range p.Table {
		acc = acc.Add(v)
	}
	return acc
}

// BindFirst destructively binds the lowest-order variable x_0 to r, replacing
// Table with a table of half the length: T'[b] = (1-r)*T[2b] + r*T[2b+1].
func (p *Poly) BindFirst(r field.Scalar) {
	n := len(p.Table) / 2
	out := make([]field.Scalar, n)
	oneMinusR := field.One().Sub(r)
	for b := 0; b < n; b++ {
		lo := p.Table[2*b]
		hi := p.Table[2*b+1]
		out[b] = oneMinusR.Mul(lo).Add(r.Mul(hi))
	}
	p.Table = out
}

// Negate returns the pointwise negation.
func (p Poly) Negate() Poly {
	out := make([]field.Scalar, len(p.Table))
	for i, v := range p.Table {
		out[i] = v.Neg()
	}
	return Poly{Table: out}
}

// ScalarMul returns the pointwise scalar multiple c*f̃.
func (p Poly) ScalarMul(c field.Scalar) Poly {
	out := make([]field.Scalar, len(p.Table))
	for i, v := range p.Table {
		out[i] = c.Mul(v)
	}
	return Poly{Table: out}
}

// Add returns the pointwise sum of two MLEs of matching arity.
func (p Poly) Add(q Poly) (Poly, error) {
	if len(p.Table) != len(q.Table) {
		return Poly{}, fmt.Errorf("mle: Add arity mismatch: %d vs %d", p.NumVars(), q.NumVars())
	}
	out := make([]field.Scalar, len(p.Table))
	for i := range out {
		out[i] = p.Table[i].Add(q.Table[i])
	}
	return Poly{Table: out}, nil
}

// LinearCombination returns ra*a + rb*b + rc*c, all of matching arity. This
// is the pre-combination used to keep the second sumcheck's product length
// at 2 instead of summing three separate length-2 products.
func LinearCombination(ra, rb, rc field.Scalar, a, b, c Poly) (Poly, error) {
	n := len(a.Table)
	if len(b.Table) != n || len(c.Table) != n {
		return Poly{}, fmt.Errorf("mle: LinearCombination arity mismatch")
	}
	out := make([]field.Scalar, n)
	for i := 0; i < n; i++ {
		out[i] = ra.Mul(a.Table[i]).Add(rb.Mul(b.Table[i])).Add(rc.Mul(c.Table[i]))
	}
	return Poly{Table: out}, nil
}
