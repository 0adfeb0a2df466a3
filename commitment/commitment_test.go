package commitment_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkspartan/spartan-core/commitment"
	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/mle"
)

func seededReader(label string) *deterministicReader {
	return &deterministicReader{seed: sha256.Sum256([]byte(label))}
}

// deterministicReader is a tiny counter-mode stream used only to drive
// TestOnly setups deterministically; it is not a substitute for crypto/rand
// and must never be reachable from commitment.Secure.
type deterministicReader struct {
	seed    [32]byte
	counter uint64
}

func (d *deterministicReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		d.counter++
		h := sha256.New()
		h.Write(d.seed[:])
		var ctr [8]byte
		for i := 0; i < 8; i++ {
			ctr[i] = byte(d.counter >> (8 * i))
		}
		h.Write(ctr[:])
		chunk := h.Sum(nil)
		n += copy(p[n:], chunk)
	}
	return n, nil
}

func randomPoly(t *testing.T, r *deterministicReader, numVars int) mle.Poly {
	t.Helper()
	table := make([]field.Scalar, 1<<uint(numVars))
	for i := range table {
		s, err := field.Random(r)
		require.NoError(t, err)
		table[i] = s
	}
	p, err := mle.FromTable(table)
	require.NoError(t, err)
	return p
}

func TestCommitOpenVerifyRoundTrip(t *testing.T) {
	const numVars = 4
	r := seededReader("commitment-roundtrip")

	pp, vp, err := commitment.Setup(numVars, commitment.TestOnly, r)
	require.NoError(t, err)

	f := randomPoly(t, r, numVars)

	c, err := commitment.Commit(pp, f)
	require.NoError(t, err)

	point := make([]field.Scalar, numVars)
	for i := range point {
		s, err := field.Random(r)
		require.NoError(t, err)
		point[i] = s
	}

	value, proof, err := commitment.Open(pp, f, point)
	require.NoError(t, err)

	want, err := f.EvalAt(point)
	require.NoError(t, err)
	require.True(t, value.Equal(want))

	ok, err := commitment.Verify(vp, c, point, value, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyRejectsWrongValue(t *testing.T) {
	const numVars = 3
	r := seededReader("commitment-wrong-value")

	pp, vp, err := commitment.Setup(numVars, commitment.TestOnly, r)
	require.NoError(t, err)

	f := randomPoly(t, r, numVars)

	c, err := commitment.Commit(pp, f)
	require.NoError(t, err)

	point := make([]field.Scalar, numVars)
	for i := range point {
		s, err := field.Random(r)
		require.NoError(t, err)
		point[i] = s
	}

	value, proof, err := commitment.Open(pp, f, point)
	require.NoError(t, err)

	tampered := value.Add(field.One())
	ok, err := commitment.Verify(vp, c, point, tampered, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsWrongPoint(t *testing.T) {
	const numVars = 3
	r := seededReader("commitment-wrong-point")

	pp, vp, err := commitment.Setup(numVars, commitment.TestOnly, r)
	require.NoError(t, err)

	f := randomPoly(t, r, numVars)
	c, err := commitment.Commit(pp, f)
	require.NoError(t, err)

	point := make([]field.Scalar, numVars)
	for i := range point {
		s, err := field.Random(r)
		require.NoError(t, err)
		point[i] = s
	}
	value, proof, err := commitment.Open(pp, f, point)
	require.NoError(t, err)

	otherPoint := make([]field.Scalar, numVars)
	copy(otherPoint, point)
	otherPoint[0] = otherPoint[0].Add(field.One())

	ok, err := commitment.Verify(vp, c, otherPoint, value, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCommitRejectsArityMismatch(t *testing.T) {
	r := seededReader("commitment-arity-mismatch")
	pp, _, err := commitment.Setup(4, commitment.TestOnly, r)
	require.NoError(t, err)

	f := randomPoly(t, r, 3)
	_, err = commitment.Commit(pp, f)
	require.Error(t, err)
}

func TestSetupRequiresSeedWhenNotSecure(t *testing.T) {
	_, _, err := commitment.Setup(2, commitment.TestOnly, nil)
	require.Error(t, err)
}
