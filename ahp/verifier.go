package ahp

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zkspartan/spartan-core/commitment"
	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/mle"
	"github.com/zkspartan/spartan-core/sumcheck"
	"github.com/zkspartan/spartan-core/transcript"
)

// Verify replays the Fiat-Shamir-simulated verifier against a proof and
// runs its five final checks. Every rejection returns false with a non-nil
// error: witness-kind failures wrap the matching sentinel, and structural
// failures (a proof shape that does not match vk) wrap ErrInvalidArg.
func Verify(vp commitment.VerifierParams, vk VerifierKey, proof Proof) (bool, error) {
	n := vk.LogN

	// Assert the proof's own round counts agree with the verifier key's n
	// rather than silently trusting either side.
	if len(proof.Sumcheck1) != n || len(proof.Sumcheck2) != n || len(proof.Pi0) != n || len(proof.Pi1) != n {
		return false, fmt.Errorf("%w: proof round counts do not match VK.LogN=%d", ErrInvalidArg, n)
	}

	d := transcript.New(transcriptLabel)
	d.Feed(encodeIndex(vk))

	// P1 / V1.
	feedG1(d, proof.CZ)
	rv := d.SampleFieldVec(vk.LogV)

	// P2 / V2.
	feedField(d, proof.Y0)
	feedG2Vec(d, proof.Pi0)
	tau := d.SampleFieldVec(n)

	// Check 1: commitment.Verify on (C_z, r_v‖0, y0, pi0), and ṽ(r_v) == y0.
	point0 := append(append([]field.Scalar(nil), rv...), zerosOfLen(n-vk.LogV)...)
	okOpen0, err := commitment.Verify(vp, commitment.Commitment{C: proof.CZ}, point0, proof.Y0, commitment.Opening{Pi: proof.Pi0})
	if err != nil {
		return false, fmt.Errorf("ahp: verifying opening pi0: %w", err)
	}
	if !okOpen0 {
		return false, fmt.Errorf("%w: pi0 failed pairing check", ErrOpeningMismatch)
	}
	vPoly, err := mle.FromTable(vk.V)
	if err != nil {
		return false, fmt.Errorf("ahp: building v MLE: %w", err)
	}
	vAtRv, err := vPoly.EvalAt(rv)
	if err != nil {
		return false, fmt.Errorf("ahp: evaluating v at r_v: %w", err)
	}
	if !vAtRv.Equal(proof.Y0) {
		return false, fmt.Errorf("%w: ṽ(r_v) != y0", ErrPublicInputMismatch)
	}

	// P3 / V3: first sumcheck. Per-round consistency failures are
	// SumcheckMismatch, distinct from the final oracle check (FirstSubclaim).
	rx, expected1, err := runVerifierSumcheck(d, n, 3, proof.Sumcheck1, field.Zero())
	if err != nil {
		return false, err
	}

	// P4 / V4.
	feedField(d, proof.Va)
	feedField(d, proof.Vb)
	feedField(d, proof.Vc)
	coeffs := d.SampleFieldVec(3)
	ra, rb, rc := coeffs[0], coeffs[1], coeffs[2]

	// Check 2: first sumcheck subclaim.
	eqFactors := mle.Factors(tau)
	eqAtRx, err := mle.EvalFactorsAt(eqFactors, rx)
	if err != nil {
		return false, fmt.Errorf("ahp: evaluating eq_tau at r_x: %w", err)
	}
	lhs1 := proof.Va.Mul(proof.Vb).Sub(proof.Vc).Mul(eqAtRx)
	if !lhs1.Equal(expected1) {
		return false, fmt.Errorf("%w: first sumcheck oracle check failed", ErrFirstSubclaim)
	}

	// P5 / V5: second sumcheck. Check 3: claimed sum at init.
	claimedSum2 := ra.Mul(proof.Va).Add(rb.Mul(proof.Vb)).Add(rc.Mul(proof.Vc))
	ry, expected2, err := runVerifierSumcheck(d, n, 2, proof.Sumcheck2, claimedSum2)
	if err != nil {
		return false, err
	}

	// P6.
	feedField(d, proof.Y1)
	feedG2Vec(d, proof.Pi1)

	// Check 4: second sumcheck subclaim, via eval_on_x(r_x).eval_at(r_y).
	aRxRy, err := evalMatrixAt(vk.A, rx, ry)
	if err != nil {
		return false, fmt.Errorf("ahp: Ã(r_x,r_y): %w", err)
	}
	bRxRy, err := evalMatrixAt(vk.B, rx, ry)
	if err != nil {
		return false, fmt.Errorf("ahp: B̃(r_x,r_y): %w", err)
	}
	cRxRy, err := evalMatrixAt(vk.C, rx, ry)
	if err != nil {
		return false, fmt.Errorf("ahp: C̃(r_x,r_y): %w", err)
	}
	combinedAtRy := ra.Mul(aRxRy).Add(rb.Mul(bRxRy)).Add(rc.Mul(cRxRy))
	lhs2 := combinedAtRy.Mul(proof.Y1)
	if !lhs2.Equal(expected2) {
		return false, fmt.Errorf("%w: second sumcheck oracle check failed", ErrSecondSubclaim)
	}

	// Check 5: commitment.Verify on (C_z, r_y, y1, pi1).
	okOpen1, err := commitment.Verify(vp, commitment.Commitment{C: proof.CZ}, ry, proof.Y1, commitment.Opening{Pi: proof.Pi1})
	if err != nil {
		return false, fmt.Errorf("ahp: verifying opening pi1: %w", err)
	}
	if !okOpen1 {
		return false, fmt.Errorf("%w: pi1 failed pairing check", ErrOpeningMismatch)
	}

	log.Debug().Int("n", n).Msg("ahp: proof accepted")
	return true, nil
}

// runVerifierSumcheck replays one n-round sumcheck against the transcript,
// feeding each claimed round polynomial, checking its consistency, and
// sampling the matching challenge in lockstep with the prover.
func runVerifierSumcheck(d *transcript.Driver, n, degree int, rounds [][]field.Scalar, claimedSum field.Scalar) ([]field.Scalar, field.Scalar, error) {
	v := sumcheck.NewVerifier(sumcheck.Info{NumVars: n, MaxDegree: degree}, claimedSum)
	for k, poly := range rounds {
		feedRoundMessage(d, poly)
		_, err := v.Round(poly, d.SampleField)
		if err != nil {
			return nil, field.Scalar{}, fmt.Errorf("round %d: %w", k, err)
		}
	}
	point, value, err := v.Subclaim()
	if err != nil {
		return nil, field.Scalar{}, err
	}
	return point, value, nil
}

// evalMatrixAt computes M̃(rx, ry) via eval_on_x(rx).eval_at(ry), the
// composition the final verifier check uses directly.
func evalMatrixAt(m interface {
	EvalOnX(rx []field.Scalar) (mle.Poly, error)
}, rx, ry []field.Scalar) (field.Scalar, error) {
	p, err := m.EvalOnX(rx)
	if err != nil {
		return field.Scalar{}, err
	}
	return p.EvalAt(ry)
}
