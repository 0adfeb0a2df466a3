package sumcheck

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/mle"
)

// Prover drives the sumcheck prover side through its n rounds. Round is
// called once per round; it binds the previous round's challenge into every
// MLE factor (except at round 0, where there is none yet) and returns the
// univariate round polynomial as a list of degree+1 evaluations at
// 0,1,...,degree.
type Prover struct {
	comb       Combination
	round      int
	challenges []field.Scalar
}

// NewProver records the product structure to sum-check. The asserted sum is
// tracked by the verifier side, not here: the prover just emits round
// polynomials consistent with whatever the combination's tables actually
// are.
func NewProver(comb Combination) *Prover {
	return &Prover{comb: comb}
}

// Round returns the round-(p.round) polynomial. prevChallenge must be nil on
// the very first call and non-nil on every subsequent call.
func (p *Prover) Round(prevChallenge *field.Scalar) ([]field.Scalar, error) {
	if p.round >= p.comb.NumVars {
		return nil, fmt.Errorf("sumcheck: prover already completed all %d rounds", p.comb.NumVars)
	}
	if p.round == 0 && prevChallenge != nil {
		return nil, fmt.Errorf("sumcheck: round 0 must not receive a challenge")
	}
	if p.round > 0 && prevChallenge == nil {
		return nil, fmt.Errorf("sumcheck: round %d requires the previous challenge", p.round)
	}
	if prevChallenge != nil {
		p.challenges = append(p.challenges, *prevChallenge)
		for pi := range p.comb.Products {
			for fi := range p.comb.Products[pi] {
				p.comb.Products[pi][fi].BindFirst(*prevChallenge)
			}
		}
	}

	degree := p.comb.MaxDegree()
	evals := make([]field.Scalar, degree+1)

	var g errgroup.Group
	results := make([][]field.Scalar, len(p.comb.Products))
	for pi, product := range p.comb.Products {
		pi, product := pi, product
		g.Go(func() error {
			results[pi] = productRoundEvals(product, degree)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, r := range results {
		for j := range evals {
			evals[j] = evals[j].Add(r[j])
		}
	}

	p.round++
	return evals, nil
}

// productRoundEvals computes, for one product of MLE factors sharing the
// current table length, the evaluations of
// X -> sum_{b in {0,1}^{m-1}} prod_i factor_i(X, b)
// at X = 0, 1, ..., degree, where m is the factors' current arity.
func productRoundEvals(product []mle.Poly, degree int) []field.Scalar {
	out := make([]field.Scalar, degree+1)
	if len(product) == 0 {
		return out
	}
	half := len(product[0].Table) / 2
	for b := 0; b < half; b++ {
		for x := 0; x <= degree; x++ {
			xs := field.FromUint64(uint64(x))
			oneMinusX := field.One().Sub(xs)
			term := field.One()
			for _, f := range product {
				lo := f.Table[2*b]
				hi := f.Table[2*b+1]
				val := oneMinusX.Mul(lo).Add(xs.Mul(hi))
				term = term.Mul(val)
			}
			out[x] = out[x].Add(term)
		}
	}
	return out
}

// Challenges returns the challenges sampled (bound) so far.
func (p *Prover) Challenges() []field.Scalar {
	return append([]field.Scalar(nil), p.challenges...)
}

// Finalize binds the last sampled challenge (for the final round, which has
// no following Round call to apply it) and returns the fully-bound scalar
// value of the combination, i.e. the oracle value the verifier's sub-claim
// must match. ahp's prover calls it only to bind the final challenge and
// discards the returned value.
func (p *Prover) Finalize(lastChallenge field.Scalar) (field.Scalar, error) {
	if p.round != p.comb.NumVars {
		return field.Scalar{}, fmt.Errorf("sumcheck: Finalize called after %d of %d rounds", p.round, p.comb.NumVars)
	}
	p.challenges = append(p.challenges, lastChallenge)
	acc := field.Zero()
	for _, product := range p.comb.Products {
		term := field.One()
		for fi := range product {
			product[fi].BindFirst(lastChallenge)
			term = term.Mul(product[fi].Table[0])
		}
		acc = acc.Add(term)
	}
	return acc, nil
}
