package spartan

import (
	"fmt"
	"io"

	"github.com/zkspartan/spartan-core/ahp"
	"github.com/zkspartan/spartan-core/commitment"
	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/matrix"
)

// SetupConf selects between a production-grade commitment setup and a fast,
// seed-driven one for tests, re-exporting the Secure/TestOnly split one
// layer down in commitment.Conf.
type SetupConf = commitment.Conf

const (
	Secure   = commitment.Secure
	TestOnly = commitment.TestOnly
)

// Index compiles sparse R1CS matrices and a public/private witness split
// into a ProverKey/VerifierKey pair. See ahp.Index for the exact validation
// rules.
func Index(rowsA, rowsB, rowsC [][]matrix.Entry, v, w []field.Scalar) (ProverKey, VerifierKey, error) {
	return ahp.Index(rowsA, rowsB, rowsC, v, w)
}

// Setup builds the commitment public parameters for instances of dimension
// N = 2^numVars. conf selects Secure (crypto/rand toxic waste) or TestOnly
// (caller-supplied seed reader, for reproducible tests and benchmarks).
func Setup(numVars int, conf SetupConf, seed io.Reader) (commitment.PublicParams, commitment.VerifierParams, error) {
	return commitment.Setup(numVars, conf, seed)
}

// Prove runs the Spartan AHP to produce a non-interactive proof that pk's
// witness satisfies the instance pk was indexed from.
func Prove(pp commitment.PublicParams, pk ProverKey) (Proof, error) {
	return ahp.Prove(pp, pk)
}

// Verify checks proof against vk under the commitment parameters vp. It
// returns (false, err) for any rejection, with err wrapping one of this
// package's sentinel errors; a non-nil, non-witness-related error (e.g.
// malformed proof shape) is also reported through err.
func Verify(vp commitment.VerifierParams, vk VerifierKey, proof Proof) (bool, error) {
	return ahp.Verify(vp, vk, proof)
}

// SelfCheck verifies that pk's witness satisfies its own R1CS instance,
// without running the argument. Useful for catching a broken witness
// before spending a Prove call on it.
func SelfCheck(pk ProverKey) error {
	if err := ahp.SelfCheck(pk); err != nil {
		return fmt.Errorf("spartan: %w", err)
	}
	return nil
}
