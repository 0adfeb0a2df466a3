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

// transcriptLabel is the fixed domain separator seeding every Spartan
// transcript. Prove is deterministic given (PK, v, w) precisely because
// this label never varies and the driver samples no external entropy.
const transcriptLabel = "zkspartan/spartan-core/v1"

// Prove runs the six prover rounds of the Spartan AHP against a
// Fiat-Shamir-simulated verifier and returns the resulting non-interactive
// proof.
func Prove(pp commitment.PublicParams, pk ProverKey) (Proof, error) {
	n := pk.LogN
	vk := pk.VK()

	d := transcript.New(transcriptLabel)
	d.Feed(encodeIndex(vk))

	z, err := mle.FromTable(pk.Z())
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: building z MLE: %w", err)
	}

	// P1: commitment to z.
	cz, err := commitment.Commit(pp, z)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: committing to z: %w", err)
	}
	feedG1(d, cz.C)

	// V1: r_v.
	rv := d.SampleFieldVec(pk.LogV)

	// P2: y0 = z̃(r_v ‖ 0^{n-log_v}) with opening pi0.
	point0 := append(append([]field.Scalar(nil), rv...), zerosOfLen(n-pk.LogV)...)
	y0, pi0, err := commitment.Open(pp, z, point0)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: opening z at (r_v,0): %w", err)
	}
	feedField(d, y0)
	feedG2Vec(d, pi0.Pi)

	// V2: tau.
	tau := d.SampleFieldVec(n)

	// P3: first sumcheck.
	az, err := pk.A.SumOverY(z)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: A·z: %w", err)
	}
	bz, err := pk.B.SumOverY(z)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: B·z: %w", err)
	}
	cZv, err := pk.C.SumOverY(z)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: C·z: %w", err)
	}
	eqTau, err := mle.FromTable(mle.Expand(tau))
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: building eq_tau: %w", err)
	}

	comb1, err := sumcheck.NewCombination(n, [][]mle.Poly{
		{az, bz, eqTau},
		{cZv.Negate(), eqTau},
	})
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: building first sumcheck combination: %w", err)
	}

	sc1Rounds, rx, err := runProverSumcheck(d, comb1, n)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: first sumcheck: %w", err)
	}

	// P4: v_a, v_b, v_c.
	va, err := az.EvalAt(rx)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: evaluating A_z at r_x: %w", err)
	}
	vb, err := bz.EvalAt(rx)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: evaluating B_z at r_x: %w", err)
	}
	vc, err := cZv.EvalAt(rx)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: evaluating C_z at r_x: %w", err)
	}
	feedField(d, va)
	feedField(d, vb)
	feedField(d, vc)

	// V4: r_a, r_b, r_c.
	coeffs := d.SampleFieldVec(3)
	ra, rb, rc := coeffs[0], coeffs[1], coeffs[2]

	// P5: second sumcheck.
	aRx, err := pk.A.EvalOnX(rx)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: Ã(r_x,·): %w", err)
	}
	bRx, err := pk.B.EvalOnX(rx)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: B̃(r_x,·): %w", err)
	}
	cRx, err := pk.C.EvalOnX(rx)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: C̃(r_x,·): %w", err)
	}
	combined, err := mle.LinearCombination(ra, rb, rc, aRx, bRx, cRx)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: combining matrix evaluations: %w", err)
	}

	comb2, err := sumcheck.NewCombination(n, [][]mle.Poly{
		{combined, z},
	})
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: building second sumcheck combination: %w", err)
	}

	sc2Rounds, ry, err := runProverSumcheck(d, comb2, n)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: second sumcheck: %w", err)
	}

	// P6: y1 = z̃(r_y) with opening pi1.
	y1, pi1, err := commitment.Open(pp, z, ry)
	if err != nil {
		return Proof{}, fmt.Errorf("ahp: opening z at r_y: %w", err)
	}
	feedField(d, y1)
	feedG2Vec(d, pi1.Pi)

	log.Debug().Int("n", n).Int("log_v", pk.LogV).Msg("ahp: proof generated")

	return Proof{
		CZ:         cz.C,
		Y0:         y0,
		Pi0:        pi0.Pi,
		Sumcheck1:  sc1Rounds,
		Va:         va,
		Vb:         vb,
		Vc:         vc,
		Sumcheck2:  sc2Rounds,
		Y1:         y1,
		Pi1:        pi1.Pi,
	}, nil
}

// runProverSumcheck drives a full n-round sumcheck against the transcript,
// feeding each round polynomial and sampling the next challenge in strict
// feed-then-sample order, and returns the emitted round messages plus the
// final challenge vector.
func runProverSumcheck(d *transcript.Driver, comb sumcheck.Combination, n int) ([][]field.Scalar, []field.Scalar, error) {
	prover := sumcheck.NewProver(comb)
	rounds := make([][]field.Scalar, n)
	var prev *field.Scalar
	var challenges []field.Scalar

	for k := 0; k < n; k++ {
		poly, err := prover.Round(prev)
		if err != nil {
			return nil, nil, fmt.Errorf("round %d: %w", k, err)
		}
		rounds[k] = poly
		feedRoundMessage(d, poly)
		r := d.SampleField()
		challenges = append(challenges, r)
		prev = &r
	}

	if _, err := prover.Finalize(*prev); err != nil {
		return nil, nil, fmt.Errorf("finalizing: %w", err)
	}

	return rounds, challenges, nil
}

func zerosOfLen(n int) []field.Scalar {
	if n <= 0 {
		return nil
	}
	out := make([]field.Scalar, n)
	for i := range out {
		out[i] = field.Zero()
	}
	return out
}
