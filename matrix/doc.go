// package matrix implements the sparse-matrix multilinear extension: an
// R1CS matrix A stored row-major as sparse (col, value) rows, exposing the
// two specialised evaluations the Spartan argument needs — sum_over_y(z)
// and eval_on_x(r) — without ever materialising the dense N x N table
// Ã(x,y) represents.
package matrix
