package spartan

import "github.com/zkspartan/spartan-core/ahp"

// Proof, ProverKey and VerifierKey are aliases onto the ahp package's
// types rather than copies: ahp.Prove/ahp.Verify construct and consume
// these directly, and this package imports ahp, so defining them here
// and having ahp import back would cycle. The alias keeps one canonical
// definition (including MarshalBinary/UnmarshalBinary) while letting
// callers write spartan.Proof without ever touching the ahp import path.
type (
	Proof       = ahp.Proof
	ProverKey   = ahp.ProverKey
	VerifierKey = ahp.VerifierKey
)
