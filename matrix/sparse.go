package matrix

import (
	"fmt"
	"math/bits"

	"github.com/bits-and-blooms/bitset"

	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/mle"
)

// Entry is one non-zero (col, value) pair in a sparse row.
type Entry struct {
	Col int
	Val field.Scalar
}

// Sparse is an N x N matrix over F stored row-major as sparse rows, where
// N = 2^n. Rows beyond NumConstraints are the zero row (the indexer's
// padding policy). Sparse is immutable after construction.
type Sparse struct {
	Rows           [][]Entry
	N              int
	NumConstraints int
}

// New wraps rows (one per constraint, NumConstraints == len(rows)) as a
// Sparse matrix of dimension N. Fails if N is not a power of two, if any
// entry's column is out of range, or if a row repeats a column.
func New(rows [][]Entry, n int) (Sparse, error) {
	if n <= 0 || n&(n-1) != 0 {
		return Sparse{}, fmt.Errorf("matrix: N=%d is not a power of two", n)
	}
	for ri, row := range rows {
		seen := bitset.New(uint(n))
		for _, e := range row {
			if e.Col < 0 || e.Col >= n {
				return Sparse{}, fmt.Errorf("matrix: row %d column %d out of range [0,%d)", ri, e.Col, n)
			}
			if seen.Test(uint(e.Col)) {
				return Sparse{}, fmt.Errorf("matrix: row %d repeats column %d", ri, e.Col)
			}
			seen.Set(uint(e.Col))
		}
	}
	return Sparse{Rows: rows, N: n, NumConstraints: len(rows)}, nil
}

// NumVars returns log2(N), the arity of the derived MLE Ã.
func (m Sparse) NumVars() int {
	return bits.Len(uint(m.N)) - 1
}

// SumOverY computes the dense MLE A_z with A_z[x] = sum_y Ã(x,y)*z[y], for
// z an MLE over the cube of size N. Only the actual constraint rows are
// scanned; padding rows contribute zero.
func (m Sparse) SumOverY(z mle.Poly) (mle.Poly, error) {
	if len(z.Table) != m.N {
		return mle.Poly{}, fmt.Errorf("matrix: SumOverY expected z of length %d, got %d", m.N, len(z.Table))
	}
	out := make([]field.Scalar, m.N)
	for x := 0; x < m.NumConstraints; x++ {
		acc := field.Zero()
		for _, e := range m.Rows[x] {
			acc = acc.Add(e.Val.Mul(z.Table[e.Col]))
		}
		out[x] = acc
	}
	return mle.Poly{Table: out}, nil
}

// EvalOnX computes the dense MLE y -> Ã(r_x, y) for an arbitrary point r_x
// of arity NumVars. It builds eq̃_{r_x} on the cube in O(N) via tensor
// doubling, then for each sparse entry (x,y,val) accumulates
// eq̃_{r_x}[x] * val into A_rx[y]; this equals Ã(r_x,y) because
// Ã(x,y) = sum_{x0 in {0,1}^n} eq̃_{x0}(x) * M[x0][y].
func (m Sparse) EvalOnX(rx []field.Scalar) (mle.Poly, error) {
	if len(rx) != m.NumVars() {
		return mle.Poly{}, fmt.Errorf("matrix: EvalOnX expected %d coordinates, got %d", m.NumVars(), len(rx))
	}
	eqTable := mle.Expand(rx)
	out := make([]field.Scalar, m.N)
	for x := 0; x < m.NumConstraints; x++ {
		weight := eqTable[x]
		if weight.IsZero() {
			continue
		}
		for _, e := range m.Rows[x] {
			out[e.Col] = out[e.Col].Add(weight.Mul(e.Val))
		}
	}
	return mle.Poly{Table: out}, nil
}

// Dense materialises the full N x N table; intended for tests and small
// fixtures only — the whole point of the sparse representation is to avoid
// this in the hot path.
func (m Sparse) Dense() [][]field.Scalar {
	out := make([][]field.Scalar, m.N)
	for i := range out {
		out[i] = make([]field.Scalar, m.N)
	}
	for x := 0; x < m.NumConstraints; x++ {
		for _, e := range m.Rows[x] {
			out[x][e.Col] = e.Val
		}
	}
	return out
}
