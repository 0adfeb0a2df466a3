// package sumcheck implements the multilinear sumcheck prover and verifier
// state machines over an "arithmetic combination": a sum of products of
// dense MLEs of matching arity. The Spartan argument's two invocations use
// product lengths 2 and 3, giving round-polynomial degrees <= 2 and <= 3
// respectively.
package sumcheck
