// package frontend adapts external circuit representations into the sparse
// R1CS row form ahp.Index consumes: a compiled gnark R1CS constraint system
// (CompileR1CS + FromGnarkR1CS), or a plain dense matrix description
// (FromDenseRows) for callers that already have A/B/C in hand. Neither
// path runs the argument itself; both stop at producing rows for Index.
package frontend
