package commitment

import (
	"fmt"

	"github.com/zkspartan/spartan-core/curve"
	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/mle"
)

// Opening is an evaluation proof: one G2 element pi_i per bound variable,
// pi_i = h^{q̃_i(t_{i+1},...,t_{n-1})}, where the q̃_i come from repeatedly
// dividing f - value by (x_i - point_i) over the boolean hypercube.
type Opening struct {
	Pi []curve.G2
}

// Open evaluates f at point and produces an Opening proof for that claimed
// value. It runs the standard multilinear long division: at each level the
// table is folded in half, the difference between the high and low halves
// is committed (that's q_i), and the next table interpolates between them at
// point[i].
func Open(pp PublicParams, f mle.Poly, point []field.Scalar) (field.Scalar, Opening, error) {
	n := pp.NumVars
	if f.NumVars() != n {
		return field.Scalar{}, Opening{}, fmt.Errorf("commitment: poly has %d vars, params sized for %d", f.NumVars(), n)
	}
	if len(point) != n {
		return field.Scalar{}, Opening{}, fmt.Errorf("commitment: point has %d coordinates, expected %d", len(point), n)
	}

	r := f.Clone()
	pis := make([]curve.G2, n)

	for k := n; k >= 1; k-- {
		i := n - k
		half := len(r.Table) / 2
		q := make([]field.Scalar, half)
		next := make([]field.Scalar, half)
		pi := point[i]
		oneMinusPi := field.One().Sub(pi)
		for b := 0; b < half; b++ {
			lo := r.Table[2*b]
			hi := r.Table[2*b+1]
			q[b] = hi.Sub(lo)
			next[b] = oneMinusPi.Mul(lo).Add(pi.Mul(hi))
		}

		bases, ok := pp.PowersOfH[k-1]
		if !ok {
			return field.Scalar{}, Opening{}, fmt.Errorf("commitment: no powers-of-h table at level %d", k-1)
		}
		piPoint, err := curve.MSMG2(bases, q)
		if err != nil {
			return field.Scalar{}, Opening{}, fmt.Errorf("commitment: committing quotient %d: %w", i, err)
		}
		pis[i] = piPoint

		next2, err := mle.FromTable(next)
		if err != nil {
			return field.Scalar{}, Opening{}, fmt.Errorf("commitment: folding quotient table: %w", err)
		}
		r = next2
	}

	return r.Table[0], Opening{Pi: pis}, nil
}
