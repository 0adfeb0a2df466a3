package ahp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkspartan/spartan-core/ahp"
	"github.com/zkspartan/spartan-core/commitment"
	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/sumcheck"
	"github.com/zkspartan/spartan-core/testutils"
)

func TestEndToEndIdentity(t *testing.T) {
	rowsA, rowsB, rowsC, v, w := testutils.IdentityR1CS()
	pk, vk, err := ahp.Index(rowsA, rowsB, rowsC, v, w)
	require.NoError(t, err)
	require.NoError(t, ahp.SelfCheck(pk))

	r := testutils.SeededReader("ahp-identity")
	pp, vp, err := commitment.Setup(pk.LogN, commitment.TestOnly, r)
	require.NoError(t, err)

	proof, err := ahp.Prove(pp, pk)
	require.NoError(t, err)

	ok, err := ahp.Verify(vp, vk, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEndToEndMultiplication(t *testing.T) {
	rowsA, rowsB, rowsC, v, w := testutils.MultiplicationR1CS()
	pk, vk, err := ahp.Index(rowsA, rowsB, rowsC, v, w)
	require.NoError(t, err)
	require.NoError(t, ahp.SelfCheck(pk))

	r := testutils.SeededReader("ahp-multiplication")
	pp, vp, err := commitment.Setup(pk.LogN, commitment.TestOnly, r)
	require.NoError(t, err)

	proof, err := ahp.Prove(pp, pk)
	require.NoError(t, err)

	ok, err := ahp.Verify(vp, vk, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInvalidWitnessRejected(t *testing.T) {
	rowsA, rowsB, rowsC, v, w := testutils.MultiplicationR1CS()
	w[1] = w[1].Add(field.One()) // breaks w1 = v0*v1

	pk, vk, err := ahp.Index(rowsA, rowsB, rowsC, v, w)
	require.NoError(t, err)
	require.ErrorIs(t, ahp.SelfCheck(pk), ahp.ErrWitnessUnsatisfied)

	r := testutils.SeededReader("ahp-invalid-witness")
	pp, vp, err := commitment.Setup(pk.LogN, commitment.TestOnly, r)
	require.NoError(t, err)

	proof, err := ahp.Prove(pp, pk)
	require.NoError(t, err) // Prove does not self-check; it produces a (rejectable) proof.

	ok, verr := ahp.Verify(vp, vk, proof)
	require.False(t, ok)
	require.Error(t, verr)
	// A witness that fails the global R1CS identity breaks the first
	// sumcheck's claimed sum (0) at round 0 with overwhelming probability
	// over the random tau, which surfaces as a round-level SumcheckMismatch
	// rather than the final FirstSubclaim/SecondSubclaim oracle check — both
	// are valid rejections of an unsatisfying witness.
	rejected := errors.Is(verr, ahp.ErrFirstSubclaim) ||
		errors.Is(verr, ahp.ErrSecondSubclaim) ||
		errors.Is(verr, sumcheck.ErrSumcheckMismatch)
	require.True(t, rejected, "expected a sumcheck/subclaim rejection, got %v", verr)
}

func TestEndToEndRandomSparse(t *testing.T) {
	const logN, logV, nnz = 8, 2, 4
	r := testutils.SeededReader("ahp-random-sparse")
	rowsA, rowsB, rowsC, v, w, err := testutils.RandomSparseR1CS(r, logN, logV, nnz)
	require.NoError(t, err)

	pk, vk, err := ahp.Index(rowsA, rowsB, rowsC, v, w)
	require.NoError(t, err)
	require.NoError(t, ahp.SelfCheck(pk))

	setupReader := testutils.SeededReader("ahp-random-sparse-setup")
	pp, vp, err := commitment.Setup(pk.LogN, commitment.TestOnly, setupReader)
	require.NoError(t, err)

	proof1, err := ahp.Prove(pp, pk)
	require.NoError(t, err)
	bytes1, err := proof1.MarshalBinary()
	require.NoError(t, err)

	proof2, err := ahp.Prove(pp, pk)
	require.NoError(t, err)
	bytes2, err := proof2.MarshalBinary()
	require.NoError(t, err)

	require.Equal(t, bytes1, bytes2, "Prove must be deterministic given the same PK")

	ok, err := ahp.Verify(vp, vk, proof1)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTamperedProofRejected(t *testing.T) {
	rowsA, rowsB, rowsC, v, w := testutils.IdentityR1CS()
	pk, vk, err := ahp.Index(rowsA, rowsB, rowsC, v, w)
	require.NoError(t, err)

	r := testutils.SeededReader("ahp-tamper")
	pp, vp, err := commitment.Setup(pk.LogN, commitment.TestOnly, r)
	require.NoError(t, err)

	proof, err := ahp.Prove(pp, pk)
	require.NoError(t, err)

	proof.Y0 = proof.Y0.Add(field.One())

	ok, verr := ahp.Verify(vp, vk, proof)
	require.False(t, ok)
	require.Error(t, verr)
}

func TestRoundTripProofSerialization(t *testing.T) {
	rowsA, rowsB, rowsC, v, w := testutils.IdentityR1CS()
	pk, vk, err := ahp.Index(rowsA, rowsB, rowsC, v, w)
	require.NoError(t, err)

	r := testutils.SeededReader("ahp-serialization")
	pp, vp, err := commitment.Setup(pk.LogN, commitment.TestOnly, r)
	require.NoError(t, err)

	proof, err := ahp.Prove(pp, pk)
	require.NoError(t, err)

	data, err := proof.MarshalBinary()
	require.NoError(t, err)

	var decoded ahp.Proof
	require.NoError(t, decoded.UnmarshalBinary(data, pk.LogN))

	ok, err := ahp.Verify(vp, vk, decoded)
	require.NoError(t, err)
	require.True(t, ok)
}
