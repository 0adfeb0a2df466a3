package frontend

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	gnarkfrontend "github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/matrix"
)

// CompileR1CS compiles circuit over the BLS12-381 scalar field using
// gnark's R1CS builder rather than its PLONK-oriented scs.NewBuilder:
// Spartan needs an actual R1CS, not a PLONK-style constraint system, so we
// swap builders rather than backends.
func CompileR1CS(circuit gnarkfrontend.Circuit) (constraint.ConstraintSystem, error) {
	ccs, err := gnarkfrontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("frontend: compiling R1CS: %w", err)
	}
	return ccs, nil
}

// FromGnarkR1CS walks a compiled gnark R1CS and returns the sparse A/B/C
// rows ahp.Index consumes. Column 0 carries the constant wire, columns
// [1, 1+nbPublic) the public inputs, and the remainder the private wires —
// the same layout gnark itself uses, so no renumbering is needed beyond
// shifting gnark's coefficient strings into field.Scalar.
func FromGnarkR1CS(ccs constraint.ConstraintSystem) (rowsA, rowsB, rowsC [][]matrix.Entry, err error) {
	r1, ok := ccs.(constraint.R1CS)
	if !ok {
		return nil, nil, nil, fmt.Errorf("frontend: constraint system %T is not an R1CS", ccs)
	}

	constraints := r1.GetR1Cs()
	rowsA = make([][]matrix.Entry, len(constraints))
	rowsB = make([][]matrix.Entry, len(constraints))
	rowsC = make([][]matrix.Entry, len(constraints))

	for i, c := range constraints {
		if rowsA[i], err = convertLinearExpression(ccs, c.L); err != nil {
			return nil, nil, nil, fmt.Errorf("frontend: constraint %d, L: %w", i, err)
		}
		if rowsB[i], err = convertLinearExpression(ccs, c.R); err != nil {
			return nil, nil, nil, fmt.Errorf("frontend: constraint %d, R: %w", i, err)
		}
		if rowsC[i], err = convertLinearExpression(ccs, c.O); err != nil {
			return nil, nil, nil, fmt.Errorf("frontend: constraint %d, O: %w", i, err)
		}
	}
	return rowsA, rowsB, rowsC, nil
}

func convertLinearExpression(ccs constraint.ConstraintSystem, le constraint.LinearExpression) ([]matrix.Entry, error) {
	entries := make([]matrix.Entry, 0, len(le))
	for _, term := range le {
		coeffID, wireID, _ := term.Unpack()
		coeffStr := ccs.CoeffToString(coeffID)
		var bi big.Int
		if _, ok := bi.SetString(coeffStr, 10); !ok {
			return nil, fmt.Errorf("frontend: parsing coefficient %q as decimal", coeffStr)
		}
		entries = append(entries, matrix.Entry{Col: wireID, Val: field.FromBigInt(&bi)})
	}
	return entries, nil
}

// FromDenseRows converts dense A/B/C matrices (one []field.Scalar row per
// constraint, one column per wire) into the sparse row form Index expects,
// dropping explicit zeros. Useful for hand-written small instances and for
// adapting circuit descriptions that aren't gnark R1CS at all.
func FromDenseRows(a, b, c [][]field.Scalar) (rowsA, rowsB, rowsC [][]matrix.Entry, err error) {
	if len(a) != len(b) || len(b) != len(c) {
		return nil, nil, nil, fmt.Errorf("frontend: A/B/C have mismatched row counts: %d/%d/%d", len(a), len(b), len(c))
	}
	rowsA = make([][]matrix.Entry, len(a))
	rowsB = make([][]matrix.Entry, len(b))
	rowsC = make([][]matrix.Entry, len(c))
	for i := range a {
		rowsA[i] = denseRowToEntries(a[i])
		rowsB[i] = denseRowToEntries(b[i])
		rowsC[i] = denseRowToEntries(c[i])
	}
	return rowsA, rowsB, rowsC, nil
}

func denseRowToEntries(row []field.Scalar) []matrix.Entry {
	entries := make([]matrix.Entry, 0, len(row))
	for col, v := range row {
		if v.IsZero() {
			continue
		}
		entries = append(entries, matrix.Entry{Col: col, Val: v})
	}
	return entries
}
