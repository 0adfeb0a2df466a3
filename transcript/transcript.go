package transcript

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/zkspartan/spartan-core/field"
)

// Driver is the Fiat-Shamir transcript PRNG. It is seeded with a fixed
// label and the canonical byte encoding of the index (Ã, B̃, C̃, v), then
// driven strictly feed-then-sample: every prover message is fed in before
// the verifier randomness it unlocks is sampled. Ordering divergence
// between prove and verify breaks soundness, so Driver exposes no way to
// sample before feeding.
type Driver struct {
	state   [64]byte
	counter uint64
}

// New seeds a transcript from a fixed domain-separation label.
func New(label string) *Driver {
	return &Driver{state: blake2b.Sum512([]byte(label))}
}

// Feed absorbs bytes into the transcript state.
func (d *Driver) Feed(data []byte) {
	h, _ := blake2b.New512(nil) // New512 with a nil key never errors.
	h.Write(d.state[:])
	h.Write(data)
	copy(d.state[:], h.Sum(nil))
}

// expand derives the next 64 pseudorandom bytes from the current state in
// counter mode, without mutating state — repeated calls (for sampling a
// vector of challenges between feeds) advance the counter, not the state
// itself, since the state only changes on Feed.
func (d *Driver) expand() [64]byte {
	d.counter++
	h, _ := blake2b.New512(nil)
	h.Write(d.state[:])
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], d.counter)
	h.Write(ctr[:])
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SampleField draws one uniform field element.
func (d *Driver) SampleField() field.Scalar {
	buf := d.expand()
	s, err := field.Random(bytes.NewReader(buf[:]))
	if err != nil {
		// expand() always yields 64 bytes, well over field.Random's
		// ByteSize+16 requirement; this can only happen if that invariant
		// is broken, which is a programming error, not a runtime failure.
		panic("transcript: unreachable: " + err.Error())
	}
	return s
}

// SampleFieldVec draws n uniform field elements in order.
func (d *Driver) SampleFieldVec(n int) []field.Scalar {
	out := make([]field.Scalar, n)
	for i := range out {
		out[i] = d.SampleField()
	}
	return out
}
