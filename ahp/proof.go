package ahp

import (
	"encoding/binary"
	"fmt"

	"github.com/zkspartan/spartan-core/curve"
	"github.com/zkspartan/spartan-core/field"
)

// Proof is the non-interactive Spartan argument transcript: the commitment
// to z, the two opening proofs for its evaluations, and the two sumcheck
// message lists.
type Proof struct {
	CZ        curve.G1
	Y0        field.Scalar
	Pi0       []curve.G2         // length n
	Sumcheck1 [][]field.Scalar   // n rounds, each a degree+1 evaluation list
	Va, Vb, Vc field.Scalar
	Sumcheck2 [][]field.Scalar // n rounds, each a degree+1 evaluation list
	Y1        field.Scalar
	Pi1       []curve.G2 // length n
}

// MarshalBinary encodes the proof in a fixed byte order: C_z, y0, pi0 (x n),
// sumcheck1 (u32 round count then per-round u32 len + F values), v_a/v_b/v_c,
// sumcheck2 (same shape), y1, pi1 (x n).
func (p Proof) MarshalBinary() ([]byte, error) {
	var buf []byte

	// 1. G1 compressed: C_z.
	buf = append(buf, p.CZ.Bytes()...)

	// 2. F: y0.
	y0 := p.Y0.Bytes()
	buf = append(buf, y0[:]...)

	// 3. G2 compressed x n: pi0.
	for _, g := range p.Pi0 {
		buf = append(buf, g.Bytes()...)
	}

	// 4. u32 (= n), then per round: u32 len, then that many F values.
	buf = appendRoundMessages(buf, p.Sumcheck1)

	// 5. F x3: v_a, v_b, v_c.
	for _, v := range []field.Scalar{p.Va, p.Vb, p.Vc} {
		b := v.Bytes()
		buf = append(buf, b[:]...)
	}

	// 6. u32 (= n), same shape for sumcheck 2.
	buf = appendRoundMessages(buf, p.Sumcheck2)

	// 7. F: y1.
	y1 := p.Y1.Bytes()
	buf = append(buf, y1[:]...)

	// 8. G2 compressed x n: pi1.
	for _, g := range p.Pi1 {
		buf = append(buf, g.Bytes()...)
	}

	return buf, nil
}

func appendRoundMessages(buf []byte, rounds [][]field.Scalar) []byte {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(rounds)))
	buf = append(buf, n[:]...)
	for _, round := range rounds {
		var l [4]byte
		binary.BigEndian.PutUint32(l[:], uint32(len(round)))
		buf = append(buf, l[:]...)
		for _, v := range round {
			b := v.Bytes()
			buf = append(buf, b[:]...)
		}
	}
	return buf
}

// UnmarshalBinary decodes a proof produced by MarshalBinary. numVars must
// be supplied by the caller (derived from the VerifierKey being used to
// verify) since the wire format's per-list round counts are a consistency
// check, not a self-sufficient schema.
func (p *Proof) UnmarshalBinary(data []byte, numVars int) error {
	r := &byteReader{data: data}

	cz, err := r.readG1()
	if err != nil {
		return fmt.Errorf("%w: decoding C_z: %v", ErrSerialization, err)
	}
	y0, err := r.readField()
	if err != nil {
		return fmt.Errorf("%w: decoding y0: %v", ErrSerialization, err)
	}
	pi0, err := r.readG2Vec(numVars)
	if err != nil {
		return fmt.Errorf("%w: decoding pi0: %v", ErrSerialization, err)
	}
	sc1, err := r.readRounds()
	if err != nil {
		return fmt.Errorf("%w: decoding sumcheck1: %v", ErrSerialization, err)
	}
	va, err := r.readField()
	if err != nil {
		return fmt.Errorf("%w: decoding v_a: %v", ErrSerialization, err)
	}
	vb, err := r.readField()
	if err != nil {
		return fmt.Errorf("%w: decoding v_b: %v", ErrSerialization, err)
	}
	vc, err := r.readField()
	if err != nil {
		return fmt.Errorf("%w: decoding v_c: %v", ErrSerialization, err)
	}
	sc2, err := r.readRounds()
	if err != nil {
		return fmt.Errorf("%w: decoding sumcheck2: %v", ErrSerialization, err)
	}
	y1, err := r.readField()
	if err != nil {
		return fmt.Errorf("%w: decoding y1: %v", ErrSerialization, err)
	}
	pi1, err := r.readG2Vec(numVars)
	if err != nil {
		return fmt.Errorf("%w: decoding pi1: %v", ErrSerialization, err)
	}
	if !r.atEnd() {
		return fmt.Errorf("%w: %d trailing bytes after decoding proof", ErrSerialization, r.remaining())
	}

	*p = Proof{
		CZ: cz, Y0: y0, Pi0: pi0,
		Sumcheck1:  sc1,
		Va:         va,
		Vb:         vb,
		Vc:         vc,
		Sumcheck2:  sc2,
		Y1:         y1,
		Pi1:        pi1,
	}
	return nil
}

// byteReader is a minimal cursor over a proof's encoded bytes.
type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) remaining() int { return len(r.data) - r.pos }
func (r *byteReader) atEnd() bool    { return r.pos == len(r.data) }

func (r *byteReader) take(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("ahp: unexpected end of proof bytes: need %d, have %d", n, r.remaining())
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *byteReader) readG1() (curve.G1, error) {
	b, err := r.take(curve.G1CompressedSize)
	if err != nil {
		return curve.G1{}, err
	}
	return curve.G1FromBytes(b)
}

func (r *byteReader) readG2() (curve.G2, error) {
	b, err := r.take(curve.G2CompressedSize)
	if err != nil {
		return curve.G2{}, err
	}
	return curve.G2FromBytes(b)
}

func (r *byteReader) readG2Vec(n int) ([]curve.G2, error) {
	out := make([]curve.G2, n)
	for i := range out {
		g, err := r.readG2()
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}

func (r *byteReader) readField() (field.Scalar, error) {
	b, err := r.take(field.ByteSize)
	if err != nil {
		return field.Scalar{}, err
	}
	return field.FromBytes(b)
}

func (r *byteReader) readUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *byteReader) readRounds() ([][]field.Scalar, error) {
	n, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	rounds := make([][]field.Scalar, n)
	for i := range rounds {
		l, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		vals := make([]field.Scalar, l)
		for j := range vals {
			v, err := r.readField()
			if err != nil {
				return nil, err
			}
			vals[j] = v
		}
		rounds[i] = vals
	}
	return rounds, nil
}
