// package mle implements dense multilinear extensions and the eq-extension
// algebra they're built from: a length-2^n evaluation table, variable
// binding that halves the table each round, full evaluation at an
// arbitrary point, and the tensor-product expansion used both by
// commitment setup and by the sumcheck-composed polynomial.
package mle
