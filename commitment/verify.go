package commitment

import (
	"fmt"

	"github.com/zkspartan/spartan-core/curve"
	"github.com/zkspartan/spartan-core/field"
)

// Verify checks that Commitment c opens to value at point, given proof. It
// rewrites the pairing identity
//
//	e(c / g^value, h) == prod_i e(g^{t_i} / g^{point_i}, pi_i)
//
// into a single batched check e(c/g^value, h) * prod_i e(-(g^{t_i}/g^{point_i}), pi_i) == 1
// so only one final exponentiation is paid regardless of n.
func Verify(vp VerifierParams, c Commitment, point []field.Scalar, value field.Scalar, proof Opening) (bool, error) {
	n := vp.NumVars
	if len(point) != n {
		return false, fmt.Errorf("commitment: point has %d coordinates, expected %d", len(point), n)
	}
	if len(proof.Pi) != n {
		return false, fmt.Errorf("commitment: opening has %d pi elements, expected %d", len(proof.Pi), n)
	}

	gy := vp.G.ScalarMul(value)
	lhs := c.C.Add(gy.Neg())

	g1s := make([]curve.G1, 0, n+1)
	g2s := make([]curve.G2, 0, n+1)
	g1s = append(g1s, lhs)
	g2s = append(g2s, vp.H)

	for i := 0; i < n; i++ {
		diff := vp.GToT[i].Add(vp.G.ScalarMul(point[i]).Neg())
		g1s = append(g1s, diff.Neg())
		g2s = append(g2s, proof.Pi[i])
	}

	ok, err := curve.MultiPairingEqualsOne(g1s, g2s)
	if err != nil {
		return false, fmt.Errorf("commitment: verifying opening: %w", err)
	}
	return ok, nil
}
