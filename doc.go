// package spartan is the top-level entry point for the succinct
// zero-knowledge argument: Index compiles an R1CS instance and witness into
// a prover/verifier key pair, Setup builds the commitment public
// parameters, and Prove/Verify run the non-interactive argument end to end.
// The protocol itself lives in the ahp subpackage; this package re-exports
// its types and wires them to commitment.Setup the way a caller who only
// wants "prove and verify" expects, without needing to import ahp
// directly.
package spartan
