// package curve adapts the BLS12-381 groups G1, G2, GT and their pairing to
// the narrow surface spartan-core needs: addition, scalar multiplication,
// fixed-base and variable-base multi-scalar-multiplication, batch affine
// normalization, the pairing e (single and multi-pairing), and GT equality. Everything
// above this package works with G1/G2 only through these wrappers.
package curve
