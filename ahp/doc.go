// package ahp implements the Spartan algebraic holographic proof: the
// indexer that derives a prover/verifier key pair from an R1CS instance,
// and the six-message prover / five-challenge verifier state machines that
// chain two sumchecks into a single argument that (A·z)∘(B·z) = C·z for
// z = v‖w.
package ahp
