package curve

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/zkspartan/spartan-core/field"
)

// G1CompressedSize and G2CompressedSize are the compressed encoding widths
// used throughout the proof wire format.
const (
	G1CompressedSize = bls12381.SizeOfG1AffineCompressed
	G2CompressedSize = bls12381.SizeOfG2AffineCompressed
)

// G1 and G2 wrap the BLS12-381 affine group elements.
type G1 struct{ inner bls12381.G1Affine }
type G2 struct{ inner bls12381.G2Affine }

// GT is the pairing target group.
type GT struct{ inner bls12381.GT }

// Generators returns the canonical G1 and G2 generators g, h.
func Generators() (G1, G2) {
	_, _, g1, g2 := bls12381.Generators()
	return G1{g1}, G2{g2}
}

func (p G1) Add(q G1) G1 {
	var j, pj, qj bls12381.G1Jac
	pj.FromAffine(&p.inner)
	qj.FromAffine(&q.inner)
	j.Set(&pj).AddAssign(&qj)
	var out bls12381.G1Affine
	out.FromJacobian(&j)
	return G1{out}
}

func (p G1) ScalarMul(s field.Scalar) G1 {
	b := s.BigInt()
	var out bls12381.G1Affine
	out.ScalarMultiplication(&p.inner, b)
	return G1{out}
}

func (p G1) IsInfinity() bool { return p.inner.IsInfinity() }

func (p G1) Neg() G1 {
	var out bls12381.G1Affine
	out.Neg(&p.inner)
	return G1{out}
}

// Bytes returns the compressed encoding.
func (p G1) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

func G1FromBytes(b []byte) (G1, error) {
	if len(b) != G1CompressedSize {
		return G1{}, fmt.Errorf("curve: expected %d bytes for G1, got %d", G1CompressedSize, len(b))
	}
	var out bls12381.G1Affine
	var buf [bls12381.SizeOfG1AffineCompressed]byte
	copy(buf[:], b)
	if _, err := out.SetBytes(buf[:]); err != nil {
		return G1{}, fmt.Errorf("curve: decoding G1 point: %w", err)
	}
	return G1{out}, nil
}

func (p G2) Neg() G2 {
	var out bls12381.G2Affine
	out.Neg(&p.inner)
	return G2{out}
}

func (p G2) Add(q G2) G2 {
	var j, pj, qj bls12381.G2Jac
	pj.FromAffine(&p.inner)
	qj.FromAffine(&q.inner)
	j.Set(&pj).AddAssign(&qj)
	var out bls12381.G2Affine
	out.FromJacobian(&j)
	return G2{out}
}

func (p G2) ScalarMul(s field.Scalar) G2 {
	b := s.BigInt()
	var out bls12381.G2Affine
	out.ScalarMultiplication(&p.inner, b)
	return G2{out}
}

func (p G2) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

func G2FromBytes(b []byte) (G2, error) {
	if len(b) != G2CompressedSize {
		return G2{}, fmt.Errorf("curve: expected %d bytes for G2, got %d", G2CompressedSize, len(b))
	}
	var out bls12381.G2Affine
	var buf [bls12381.SizeOfG2AffineCompressed]byte
	copy(buf[:], b)
	if _, err := out.SetBytes(buf[:]); err != nil {
		return G2{}, fmt.Errorf("curve: decoding G2 point: %w", err)
	}
	return G2{out}, nil
}

// MSMG1 computes sum_i scalars[i] * points[i] in G1 via variable-base
// multi-scalar-multiplication.
func MSMG1(points []G1, scalars []field.Scalar) (G1, error) {
	if len(points) != len(scalars) {
		return G1{}, fmt.Errorf("curve: MSM size mismatch: %d points, %d scalars", len(points), len(scalars))
	}
	affs := make([]bls12381.G1Affine, len(points))
	frs := make([]fr.Element, len(points))
	for i := range points {
		affs[i] = points[i].inner
		frs[i] = scalarToFr(scalars[i])
	}
	var out bls12381.G1Affine
	if _, err := out.MultiExp(affs, frs, ecc.MultiExpConfig{}); err != nil {
		return G1{}, fmt.Errorf("curve: G1 MSM: %w", err)
	}
	return G1{out}, nil
}

// MSMG2 is the G2 analogue of MSMG1, used to build the opening proof's
// h^{q_i(t)} terms.
func MSMG2(points []G2, scalars []field.Scalar) (G2, error) {
	if len(points) != len(scalars) {
		return G2{}, fmt.Errorf("curve: MSM size mismatch: %d points, %d scalars", len(points), len(scalars))
	}
	affs := make([]bls12381.G2Affine, len(points))
	frs := make([]fr.Element, len(points))
	for i := range points {
		affs[i] = points[i].inner
		frs[i] = scalarToFr(scalars[i])
	}
	var out bls12381.G2Affine
	if _, err := out.MultiExp(affs, frs, ecc.MultiExpConfig{}); err != nil {
		return G2{}, fmt.Errorf("curve: G2 MSM: %w", err)
	}
	return G2{out}, nil
}

// BatchNormalizeG1 converts Jacobian accumulators to affine in one batched
// field-inversion pass, following gnark-crypto's own batch-affine idiom for
// fixed-base table construction during commitment Setup.
func BatchNormalizeG1(jac []bls12381.G1Jac) []G1 {
	affs := bls12381.BatchJacobianToAffineG1(jac)
	out := make([]G1, len(affs))
	for i, a := range affs {
		out[i] = G1{a}
	}
	return out
}

func BatchNormalizeG2(jac []bls12381.G2Jac) []G2 {
	affs := bls12381.BatchJacobianToAffineG2(jac)
	out := make([]G2, len(affs))
	for i, a := range affs {
		out[i] = G2{a}
	}
	return out
}

// Pair computes e(p, q).
func Pair(p G1, q G2) (GT, error) {
	res, err := bls12381.Pair([]bls12381.G1Affine{p.inner}, []bls12381.G2Affine{q.inner})
	if err != nil {
		return GT{}, fmt.Errorf("curve: pairing: %w", err)
	}
	return GT{res}, nil
}

// PairingsEqual checks e(p1,q1) == e(p2,q2) via the standard trick
// e(p1,q1) * e(-p2,q2) == 1, avoiding two final exponentiations.
func PairingsEqual(p1 G1, q1 G2, p2 G1, q2 G2) (bool, error) {
	var negP2 bls12381.G1Affine
	negP2.Neg(&p2.inner)
	res, err := bls12381.Pair([]bls12381.G1Affine{p1.inner, negP2}, []bls12381.G2Affine{q1.inner, q2.inner})
	if err != nil {
		return false, fmt.Errorf("curve: pairing product: %w", err)
	}
	var one bls12381.GT
	one.SetOne()
	return res.Equal(&one), nil
}

func (a GT) Equal(b GT) bool { return a.inner.Equal(&b.inner) }

// MultiPairingEqualsOne checks that prod_i e(g1s[i], g2s[i]) == 1 in GT using
// a single multi-Miller-loop plus one final exponentiation, the standard way
// to batch a pairing-equation check: callers rewrite a pairing equality
// into this shape by negating one side before calling in.
func MultiPairingEqualsOne(g1s []G1, g2s []G2) (bool, error) {
	if len(g1s) != len(g2s) {
		return false, fmt.Errorf("curve: multi-pairing size mismatch: %d vs %d", len(g1s), len(g2s))
	}
	affG1 := make([]bls12381.G1Affine, len(g1s))
	affG2 := make([]bls12381.G2Affine, len(g2s))
	for i := range g1s {
		affG1[i] = g1s[i].inner
		affG2[i] = g2s[i].inner
	}
	res, err := bls12381.Pair(affG1, affG2)
	if err != nil {
		return false, fmt.Errorf("curve: multi-pairing: %w", err)
	}
	var one bls12381.GT
	one.SetOne()
	return res.Equal(&one), nil
}

func scalarToFr(s field.Scalar) fr.Element {
	var e fr.Element
	b := s.Bytes()
	e.SetBytes(b[:])
	return e
}

// JacobianG1FromScalarTable is a helper for fixed-base table construction:
// given a base point and a table of scalars (the eq-extension evaluation
// table), returns scalar*base for each entry as Jacobian points so the
// caller can batch-normalize once at the end instead of paying an inversion
// per entry.
func JacobianG1FromScalarTable(base G1, scalars []field.Scalar) []bls12381.G1Jac {
	var baseJac bls12381.G1Jac
	baseJac.FromAffine(&base.inner)
	out := make([]bls12381.G1Jac, len(scalars))
	for i, s := range scalars {
		b := s.BigInt()
		out[i].ScalarMultiplication(&baseJac, b)
	}
	return out
}

func JacobianG2FromScalarTable(base G2, scalars []field.Scalar) []bls12381.G2Jac {
	var baseJac bls12381.G2Jac
	baseJac.FromAffine(&base.inner)
	out := make([]bls12381.G2Jac, len(scalars))
	for i, s := range scalars {
		b := s.BigInt()
		out[i].ScalarMultiplication(&baseJac, b)
	}
	return out
}
