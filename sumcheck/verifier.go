package sumcheck

import (
	"errors"
	"fmt"

	"github.com/zkspartan/spartan-core/field"
)

// ErrSumcheckMismatch is returned when a round polynomial fails the
// poly(0)+poly(1) == S_k consistency check.
var ErrSumcheckMismatch = errors.New("sumcheck: round consistency check failed")

// Verifier drives the sumcheck verifier side. It never touches the prover's
// MLE tables directly: each round it only sees the claimed round polynomial
// and a source of randomness.
type Verifier struct {
	info       Info
	round      int
	sum        field.Scalar
	challenges []field.Scalar
}

// NewVerifier records the instance shape and the claimed sum S_0.
func NewVerifier(info Info, claimedSum field.Scalar) *Verifier {
	return &Verifier{info: info, sum: claimedSum}
}

// Round checks poly(0)+poly(1) == S_k, samples a challenge via sample, and
// advances S_{k+1} = poly(r_k). Returns the sampled challenge.
func (v *Verifier) Round(poly []field.Scalar, sample func() field.Scalar) (field.Scalar, error) {
	if v.round >= v.info.NumVars {
		return field.Scalar{}, fmt.Errorf("sumcheck: verifier already completed all %d rounds", v.info.NumVars)
	}
	if len(poly) != v.info.MaxDegree+1 {
		return field.Scalar{}, fmt.Errorf("sumcheck: round %d polynomial has %d evaluations, want %d",
			v.round, len(poly), v.info.MaxDegree+1)
	}
	lhs := poly[0].Add(poly[1])
	if !lhs.Equal(v.sum) {
		return field.Scalar{}, fmt.Errorf("%w: round %d", ErrSumcheckMismatch, v.round)
	}
	r := sample()
	v.sum = evalUnivariate(poly, r)
	v.challenges = append(v.challenges, r)
	v.round++
	return r, nil
}

// Subclaim returns the sampled-point / expected-evaluation pair once all
// rounds have completed. The caller must separately verify that
// expected_evaluation equals the oracle value of the combined polynomial at
// point — the sumcheck engine has no oracle access of its own.
func (v *Verifier) Subclaim() ([]field.Scalar, field.Scalar, error) {
	if v.round != v.info.NumVars {
		return nil, field.Scalar{}, fmt.Errorf("sumcheck: Subclaim called after %d of %d rounds", v.round, v.info.NumVars)
	}
	return append([]field.Scalar(nil), v.challenges...), v.sum, nil
}
