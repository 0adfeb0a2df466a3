package commitment

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/zkspartan/spartan-core/curve"
	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/mle"
)

// Conf selects between a production-grade setup and a fast, insecure one
// for tests: Secure samples the toxic waste t from crypto/rand, TestOnly
// accepts a caller-supplied (possibly seeded, possibly deterministic)
// io.Reader so deterministic, byte-identical proofs under a fixed seed are
// reproducible without weakening the default path.
type Conf int

const (
	Secure Conf = iota
	TestOnly
)

// PublicParams is the prover's setup output: for k = 0..n, the length-2^k
// table of g^{eq̃_{t[n-k:]}(b)} and h^{eq̃_{t[n-k:]}(b)}.
type PublicParams struct {
	NumVars   int
	G         curve.G1
	H         curve.G2
	PowersOfG map[int][]curve.G1
	PowersOfH map[int][]curve.G2
}

// VerifierParams is the verifier's setup output: g, h, and g^{t_i} for
// i = 0..n-1.
type VerifierParams struct {
	NumVars int
	G       curve.G1
	H       curve.G2
	GToT    []curve.G1
}

// Setup samples t_0..t_{n-1} (per conf) and builds pp/vp. t is zeroised
// before Setup returns; it is never stored or returned, since it is the
// scheme's toxic waste and must not outlive this call.
func Setup(n int, conf Conf, seed io.Reader) (PublicParams, VerifierParams, error) {
	if n <= 0 {
		return PublicParams{}, VerifierParams{}, fmt.Errorf("commitment: n must be positive, got %d", n)
	}
	reader := seed
	if conf == Secure {
		reader = rand.Reader
	}
	if reader == nil {
		return PublicParams{}, VerifierParams{}, fmt.Errorf("commitment: TestOnly setup requires a seed reader")
	}

	t := make([]field.Scalar, n)
	for i := range t {
		s, err := field.Random(reader)
		if err != nil {
			return PublicParams{}, VerifierParams{}, fmt.Errorf("commitment: sampling toxic waste: %w", err)
		}
		t[i] = s
	}
	defer func() {
		for i := range t {
			t[i].Zeroize()
		}
	}()

	g, h := curve.Generators()

	powersOfG := make(map[int][]curve.G1, n+1)
	powersOfH := make(map[int][]curve.G2, n+1)

	var eg errgroup.Group
	eg.Go(func() error {
		for k := 0; k <= n; k++ {
			table := mle.ExpandFromIndex(t, k)
			jac := curve.JacobianG1FromScalarTable(g, table)
			powersOfG[k] = curve.BatchNormalizeG1(jac)
			log.Debug().Int("level", k).Int("size", len(powersOfG[k])).Msg("commitment: g-side power table built")
		}
		return nil
	})
	eg.Go(func() error {
		for k := 0; k <= n; k++ {
			table := mle.ExpandFromIndex(t, k)
			jac := curve.JacobianG2FromScalarTable(h, table)
			powersOfH[k] = curve.BatchNormalizeG2(jac)
			log.Debug().Int("level", k).Int("size", len(powersOfH[k])).Msg("commitment: h-side power table built")
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return PublicParams{}, VerifierParams{}, err
	}

	gToT := make([]curve.G1, n)
	for i := range gToT {
		gToT[i] = g.ScalarMul(t[i])
	}

	pp := PublicParams{NumVars: n, G: g, H: h, PowersOfG: powersOfG, PowersOfH: powersOfH}
	vp := VerifierParams{NumVars: n, G: g, H: h, GToT: gToT}
	log.Debug().Int("n", n).Msg("commitment: setup complete")
	return pp, vp, nil
}
