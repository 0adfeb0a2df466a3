package ahp

import (
	"encoding/binary"

	"github.com/zkspartan/spartan-core/curve"
	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/matrix"
	"github.com/zkspartan/spartan-core/transcript"
)

// encodeUint64 appends the big-endian encoding of x to buf.
func encodeUint64(buf []byte, x uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], x)
	return append(buf, tmp[:]...)
}

// encodeFieldVec appends the canonical fixed-width encoding of each scalar
// in order.
func encodeFieldVec(buf []byte, vs []field.Scalar) []byte {
	for _, v := range vs {
		b := v.Bytes()
		buf = append(buf, b[:]...)
	}
	return buf
}

// encodeSparse appends a canonical encoding of a sparse matrix: dimension,
// constraint count, then per row a length-prefixed list of (col, val)
// pairs. Used only to seed the transcript — it is never part of the
// mandated Proof wire format.
func encodeSparse(buf []byte, m matrix.Sparse) []byte {
	buf = encodeUint64(buf, uint64(m.N))
	buf = encodeUint64(buf, uint64(m.NumConstraints))
	for _, row := range m.Rows {
		buf = encodeUint64(buf, uint64(len(row)))
		for _, e := range row {
			buf = encodeUint64(buf, uint64(e.Col))
			valBytes := e.Val.Bytes()
			buf = append(buf, valBytes[:]...)
		}
	}
	return buf
}

// encodeIndex builds the canonical byte encoding of (Ã, B̃, C̃, v) that
// seeds the Fiat-Shamir transcript before round 1.
func encodeIndex(vk VerifierKey) []byte {
	var buf []byte
	buf = encodeUint64(buf, uint64(vk.LogN))
	buf = encodeUint64(buf, uint64(vk.LogV))
	buf = encodeSparse(buf, vk.A)
	buf = encodeSparse(buf, vk.B)
	buf = encodeSparse(buf, vk.C)
	buf = encodeFieldVec(buf, vk.V)
	return buf
}

// feedG1 feeds one G1 element's compressed bytes into the transcript.
func feedG1(d *transcript.Driver, p curve.G1) { d.Feed(p.Bytes()) }

// feedG2Vec feeds a vector of G2 elements in order.
func feedG2Vec(d *transcript.Driver, ps []curve.G2) {
	for _, p := range ps {
		d.Feed(p.Bytes())
	}
}

// feedField feeds one field element's canonical bytes.
func feedField(d *transcript.Driver, s field.Scalar) {
	b := s.Bytes()
	d.Feed(b[:])
}

// feedFieldVec feeds a vector of field elements in order.
func feedFieldVec(d *transcript.Driver, ss []field.Scalar) {
	for _, s := range ss {
		feedField(d, s)
	}
}

// feedRoundMessage feeds one sumcheck round's evaluation list.
func feedRoundMessage(d *transcript.Driver, round []field.Scalar) {
	feedFieldVec(d, round)
}
