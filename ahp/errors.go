package ahp

import "errors"

// Sentinel errors fall into three kinds: structural (checked at the entry
// to Index/Prove/Verify, or while decoding a proof), witness (checked
// during Verify against a proof that decoded fine), and self-check
// (SelfCheck's witness-satisfaction check, which Prove does not run).
var (
	// ErrInvalidArg is returned when Index is given malformed dimensions or
	// out-of-range matrix entries.
	ErrInvalidArg = errors.New("ahp: invalid argument")

	// ErrSerialization is returned when a proof cannot be decoded: truncated
	// or trailing bytes, an out-of-range field encoding, or a malformed
	// group element.
	ErrSerialization = errors.New("ahp: proof serialization error")

	// ErrPublicInputMismatch is returned when the opening of z̃ at
	// (r_v, 0^{n-v_bits}) does not match the public input's own MLE
	// evaluated at r_v.
	ErrPublicInputMismatch = errors.New("ahp: public input evaluation mismatch")

	// ErrFirstSubclaim is returned when the first sumcheck's final oracle
	// check fails.
	ErrFirstSubclaim = errors.New("ahp: first sumcheck subclaim failed")

	// ErrSecondSubclaim is returned when the second sumcheck's final oracle
	// check fails.
	ErrSecondSubclaim = errors.New("ahp: second sumcheck subclaim failed")

	// ErrOpeningMismatch is returned when a commitment opening proof fails
	// pairing verification.
	ErrOpeningMismatch = errors.New("ahp: commitment opening verification failed")

	// ErrWitnessUnsatisfied is returned by SelfCheck when the witness does
	// not satisfy the R1CS instance.
	ErrWitnessUnsatisfied = errors.New("ahp: witness does not satisfy constraints")
)
