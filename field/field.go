package field

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ByteSize is the canonical fixed-width encoding length of a Scalar.
const ByteSize = fr.Bytes

// Scalar is an element of the BLS12-381 scalar field Fr.
type Scalar struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() Scalar { return Scalar{} }

// One returns the multiplicative identity.
func One() Scalar {
	var s Scalar
	s.inner.SetOne()
	return s
}

// FromUint64 lifts a small integer into the field.
func FromUint64(x uint64) Scalar {
	var s Scalar
	s.inner.SetUint64(x)
	return s
}

// FromBytes decodes the canonical fixed-width big-endian encoding produced by
// Bytes. Returns an error if b is not exactly ByteSize long or encodes a
// value not below the field order.
func FromBytes(b []byte) (Scalar, error) {
	if len(b) != ByteSize {
		return Scalar{}, fmt.Errorf("field: expected %d bytes, got %d", ByteSize, len(b))
	}
	var s Scalar
	s.inner.SetBytes(b)
	if canon := s.Bytes(); !bytes.Equal(canon[:], b) {
		return Scalar{}, fmt.Errorf("field: encoding is not canonical (value not below the field order)")
	}
	return s, nil
}

// Bytes returns the canonical fixed-width big-endian encoding.
func (a Scalar) Bytes() [ByteSize]byte {
	return a.inner.Bytes()
}

// Random samples a uniform field element from r. It over-reads the field's
// byte size before reducing modulo the field order to keep the statistical
// bias on the result negligible.
func Random(r io.Reader) (Scalar, error) {
	buf := make([]byte, ByteSize+16)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Scalar{}, fmt.Errorf("field: sampling randomness: %w", err)
	}
	v := new(big.Int).SetBytes(buf)
	v.Mod(v, fr.Modulus())
	var s Scalar
	s.inner.SetBigInt(v)
	return s, nil
}

// Secure samples a uniform field element from crypto/rand.
func Secure() (Scalar, error) {
	return Random(rand.Reader)
}

func (a Scalar) Add(b Scalar) Scalar {
	var s Scalar
	s.inner.Add(&a.inner, &b.inner)
	return s
}

func (a Scalar) Sub(b Scalar) Scalar {
	var s Scalar
	s.inner.Sub(&a.inner, &b.inner)
	return s
}

func (a Scalar) Mul(b Scalar) Scalar {
	var s Scalar
	s.inner.Mul(&a.inner, &b.inner)
	return s
}

func (a Scalar) Neg() Scalar {
	var s Scalar
	s.inner.Neg(&a.inner)
	return s
}

// Inverse returns the multiplicative inverse of a. Panics if a is zero: the
// only caller, the sumcheck verifier's Lagrange interpolation, inverts
// differences of distinct small integers, so a zero here is an internal
// invariant violation.
func (a Scalar) Inverse() Scalar {
	if a.IsZero() {
		panic("field: inverse of zero")
	}
	var s Scalar
	s.inner.Inverse(&a.inner)
	return s
}

func (a Scalar) IsZero() bool { return a.inner.IsZero() }

func (a Scalar) IsOne() bool { return a.inner.IsOne() }

func (a Scalar) Equal(b Scalar) bool { return a.inner.Equal(&b.inner) }

func (a Scalar) String() string { return a.inner.String() }

// BigInt returns the canonical big.Int representation, mostly for tests and
// diagnostics.
func (a Scalar) BigInt() *big.Int {
	var v big.Int
	a.inner.BigInt(&v)
	return &v
}

// FromBigInt reduces x modulo the field order, accepting negative values.
// Used by the gnark R1CS adapter, whose constraint coefficients arrive as
// signed big.Int values.
func FromBigInt(x *big.Int) Scalar {
	var s Scalar
	s.inner.SetBigInt(x)
	return s
}

// Zeroize overwrites the element's limbs with zero. Used to destroy the
// commitment scheme's toxic waste (the setup secret t) before Setup
// returns.
func (a *Scalar) Zeroize() {
	a.inner.SetZero()
}
