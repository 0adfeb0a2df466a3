package testutils

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/matrix"
)

// IdentityR1CS returns the trivial N=2 instance: a single constraint row
// that picks z0 on every side, z0*z0 = z0, satisfied whenever z0 = 1.
// v = [1], w = [1] is a satisfying assignment.
func IdentityR1CS() (rowsA, rowsB, rowsC [][]matrix.Entry, v, w []field.Scalar) {
	one := field.One()
	row := []matrix.Entry{{Col: 0, Val: one}}
	rows := [][]matrix.Entry{row}
	return rows, rows, rows, []field.Scalar{one}, []field.Scalar{one}
}

// MultiplicationR1CS returns an N=4 instance (log_v=1, log_w=1) with a
// single real constraint w1 = v0 * v1, so that mutating w1 alone breaks the
// constraint without touching any other wire. v = [1,1], w = [1,1] is a
// satisfying assignment (w0 is an unused free wire, w1 = v0*v1 = 1).
func MultiplicationR1CS() (rowsA, rowsB, rowsC [][]matrix.Entry, v, w []field.Scalar) {
	one := field.One()
	a := [][]matrix.Entry{{{Col: 0, Val: one}}} // picks v0
	b := [][]matrix.Entry{{{Col: 1, Val: one}}} // picks v1
	c := [][]matrix.Entry{{{Col: 3, Val: one}}} // picks w1
	return a, b, c, []field.Scalar{one, one}, []field.Scalar{one, one}
}

// RandomSparseR1CS builds a forward-solvable random sparse R1CS of
// dimension N = 2^logN with a public input of length 2^logV: each private
// wire w[k] is defined as a random linear combination of up to nnzPerRow
// earlier wires (the A side) times another such combination (the B side),
// so the witness can always be solved by evaluating wires in order. This
// gives genuinely sparse, randomly structured A/B/C matrices with a known
// satisfying witness, useful for property tests that need instances larger
// than the two hand-written fixtures above.
func RandomSparseR1CS(r io.Reader, logN, logV, nnzPerRow int) (rowsA, rowsB, rowsC [][]matrix.Entry, v, w []field.Scalar, err error) {
	n := 1 << uint(logN)
	vLen := 1 << uint(logV)
	if vLen >= n {
		return nil, nil, nil, nil, nil, fmt.Errorf("testutils: log_v=%d leaves no room for private wires in N=%d", logV, n)
	}
	wLen := n - vLen

	z := make([]field.Scalar, n)
	v = make([]field.Scalar, vLen)
	for i := range v {
		s, e := field.Random(r)
		if e != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("testutils: sampling v[%d]: %w", i, e)
		}
		v[i] = s
		z[i] = s
	}

	rowsA = make([][]matrix.Entry, wLen)
	rowsB = make([][]matrix.Entry, wLen)
	rowsC = make([][]matrix.Entry, wLen)
	w = make([]field.Scalar, wLen)

	for k := 0; k < wLen; k++ {
		available := vLen + k
		width := nnzPerRow
		if width > available {
			width = available
		}
		if width == 0 {
			width = 1
			available = 1 // column 0 always exists once v is non-empty
		}

		rowA, evalA, err := randomLinearRow(r, available, width, z)
		if err != nil {
			return nil, nil, nil, nil, nil, err
		}
		rowB, evalB, err := randomLinearRow(r, available, width, z)
		if err != nil {
			return nil, nil, nil, nil, nil, err
		}

		wk := evalA.Mul(evalB)
		col := vLen + k
		rowC := []matrix.Entry{{Col: col, Val: field.One()}}

		rowsA[k] = rowA
		rowsB[k] = rowB
		rowsC[k] = rowC
		w[k] = wk
		z[col] = wk
	}

	return rowsA, rowsB, rowsC, v, w, nil
}

// randomLinearRow builds a row of up to width distinct random (col, coeff)
// entries with col in [0, available), and returns both the row and its
// evaluation sum(coeff_i * z[col_i]) against the already-assigned prefix z.
func randomLinearRow(r io.Reader, available, width int, z []field.Scalar) ([]matrix.Entry, field.Scalar, error) {
	used := make(map[int]bool, width)
	row := make([]matrix.Entry, 0, width)
	eval := field.Zero()
	for len(row) < width {
		col, err := randIntn(r, available)
		if err != nil {
			return nil, field.Scalar{}, err
		}
		if used[col] {
			continue
		}
		used[col] = true
		coeff, err := field.Random(r)
		if err != nil {
			return nil, field.Scalar{}, fmt.Errorf("testutils: sampling coefficient: %w", err)
		}
		row = append(row, matrix.Entry{Col: col, Val: coeff})
		eval = eval.Add(coeff.Mul(z[col]))
	}
	return row, eval, nil
}

// randIntn draws a uniform integer in [0, limit) from r.
func randIntn(r io.Reader, limit int) (int, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("testutils: sampling index: %w", err)
	}
	x := binary.BigEndian.Uint64(buf[:])
	return int(x % uint64(limit)), nil
}
