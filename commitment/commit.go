package commitment

import (
	"fmt"

	"github.com/zkspartan/spartan-core/curve"
	"github.com/zkspartan/spartan-core/mle"
)

// Commitment is the prover's binding commitment to a dense multilinear
// polynomial, g^{f(t)}.
type Commitment struct {
	C curve.G1
}

// Bytes returns the compressed G1 encoding.
func (c Commitment) Bytes() []byte { return c.C.Bytes() }

// Commit computes g^{f(t)} as a single variable-base MSM (curve.MSMG1)
// against the top-level powers-of-g table.
func Commit(pp PublicParams, f mle.Poly) (Commitment, error) {
	if f.NumVars() != pp.NumVars {
		return Commitment{}, fmt.Errorf("commitment: poly has %d vars, params sized for %d", f.NumVars(), pp.NumVars)
	}
	bases, ok := pp.PowersOfG[pp.NumVars]
	if !ok {
		return Commitment{}, fmt.Errorf("commitment: no powers-of-g table at level %d", pp.NumVars)
	}
	c, err := curve.MSMG1(bases, f.Table)
	if err != nil {
		return Commitment{}, fmt.Errorf("commitment: computing commitment: %w", err)
	}
	return Commitment{C: c}, nil
}
