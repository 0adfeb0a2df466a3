package ahp

import (
	"fmt"

	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/matrix"
)

// SelfCheck runs the R1CS constraint directly against the witness, without
// running Fiat-Shamir or the sumcheck engine at all: it checks
// (A·z)[x] * (B·z)[x] == (C·z)[x] for every x, the entrywise identity the
// first sumcheck is a succinct argument *for*. Prove does not call this
// automatically: a witness that fails this check is a caller error to
// catch before proving, not something Prove should guard against at
// runtime. Callers who want an early, precise diagnosis of a broken
// witness should call it themselves before Prove.
func SelfCheck(pk ProverKey) error {
	z := pk.Z()
	n := 1 << uint(pk.LogN)
	if len(z) != n {
		return fmt.Errorf("%w: witness length %d does not match N=%d", ErrInvalidArg, len(z), n)
	}

	for x := 0; x < pk.A.NumConstraints; x++ {
		az := evalRow(pk.A.Rows[x], z)
		bz := evalRow(pk.B.Rows[x], z)
		cz := evalRow(pk.C.Rows[x], z)
		if !az.Mul(bz).Equal(cz) {
			return fmt.Errorf("%w: constraint %d: (A·z)*(B·z) != C·z", ErrWitnessUnsatisfied, x)
		}
	}
	return nil
}

func evalRow(row []matrix.Entry, z []field.Scalar) field.Scalar {
	acc := field.Zero()
	for _, e := range row {
		acc = acc.Add(e.Val.Mul(z[e.Col]))
	}
	return acc
}
