// package commitment implements a pairing-based multilinear polynomial
// commitment scheme: a libra-style KZG over the boolean hypercube. Setup
// builds fixed-base tables of g^{eq̃_t(b)} and h^{eq̃_t(b)} from a one-time
// secret t; Commit, Open and Verify follow the polynomial-division
// identity f̃(x) - y = sum_i (x_i - p_i) q̃_i(x).
package commitment
