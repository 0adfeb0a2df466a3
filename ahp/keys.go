package ahp

import (
	"fmt"
	"math/bits"

	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/matrix"
)

// ProverKey is PK = (Ã, B̃, C̃, log_n, log_v, v, w): the indexed matrices
// plus the full witness assignment.
type ProverKey struct {
	A, B, C    matrix.Sparse
	LogN, LogV int
	V, W       []field.Scalar
}

// VerifierKey is VK = (Ã, B̃, C̃, log_n, log_v, v): the same indexed
// matrices and dimensions, with the private witness dropped.
type VerifierKey struct {
	A, B, C    matrix.Sparse
	LogN, LogV int
	V          []field.Scalar
}

// VK projects a ProverKey down to its VerifierKey, dropping W. Indexer
// idempotence follows directly: PK.VK() == Index(...).vk for any ProverKey
// returned by Index.
func (pk ProverKey) VK() VerifierKey {
	return VerifierKey{A: pk.A, B: pk.B, C: pk.C, LogN: pk.LogN, LogV: pk.LogV, V: pk.V}
}

// NumVars returns n = log_n, the arity shared by z̃ and every matrix MLE.
func (vk VerifierKey) NumVars() int { return vk.LogN }

// Index derives a ProverKey/VerifierKey pair from three sparse R1CS
// matrices and a public/private split of the witness assignment z = v‖w.
// Fails with ErrInvalidArg if len(v)+len(w) is not a power of two, if
// len(v) is not a power of two, or if any matrix row names a column
// ≥ len(v)+len(w).
func Index(rowsA, rowsB, rowsC [][]matrix.Entry, v, w []field.Scalar) (ProverKey, VerifierKey, error) {
	n := len(v) + len(w)
	if n == 0 || n&(n-1) != 0 {
		return ProverKey{}, VerifierKey{}, fmt.Errorf("%w: |v|+|w|=%d is not a power of two", ErrInvalidArg, n)
	}
	vLen := len(v)
	if vLen == 0 || vLen&(vLen-1) != 0 {
		return ProverKey{}, VerifierKey{}, fmt.Errorf("%w: |v|=%d is not a power of two", ErrInvalidArg, vLen)
	}

	a, err := matrix.New(rowsA, n)
	if err != nil {
		return ProverKey{}, VerifierKey{}, fmt.Errorf("%w: matrix A: %v", ErrInvalidArg, err)
	}
	b, err := matrix.New(rowsB, n)
	if err != nil {
		return ProverKey{}, VerifierKey{}, fmt.Errorf("%w: matrix B: %v", ErrInvalidArg, err)
	}
	c, err := matrix.New(rowsC, n)
	if err != nil {
		return ProverKey{}, VerifierKey{}, fmt.Errorf("%w: matrix C: %v", ErrInvalidArg, err)
	}

	logN := bits.Len(uint(n)) - 1
	logV := bits.Len(uint(vLen)) - 1

	pk := ProverKey{
		A: a, B: b, C: c,
		LogN: logN, LogV: logV,
		V: append([]field.Scalar(nil), v...),
		W: append([]field.Scalar(nil), w...),
	}
	return pk, pk.VK(), nil
}

// Z returns the full witness assignment v‖w.
func (pk ProverKey) Z() []field.Scalar {
	z := make([]field.Scalar, 0, len(pk.V)+len(pk.W))
	z = append(z, pk.V...)
	z = append(z, pk.W...)
	return z
}
