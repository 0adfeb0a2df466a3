// package transcript implements a Fiat-Shamir driver: a deterministic
// transcript PRNG seeded from a fixed domain separator, exposing Feed and
// SampleField. The driver enforces feed-then-sample ordering by
// construction — there is no API to sample without having fed whatever
// came before it into the state first.
package transcript
