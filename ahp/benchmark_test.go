package ahp_test

import (
	"testing"

	"github.com/zkspartan/spartan-core/ahp"
	"github.com/zkspartan/spartan-core/commitment"
	"github.com/zkspartan/spartan-core/testutils"
)

// benchmarkShape fixes a (log_n, log_v, nnz-per-row) instance shape and
// reuses it across the Index/Prove/Verify benchmarks below, mirroring the
// source's benchmark harness: report prove/verify wall-clock and proof size
// for a given shape rather than microbenchmarking individual primitives.
func benchmarkShape(b *testing.B, logN, logV, nnz int) (ahp.ProverKey, ahp.VerifierKey, commitment.PublicParams, commitment.VerifierParams) {
	b.Helper()
	r := testutils.SeededReader("ahp-benchmark-shape")
	rowsA, rowsB, rowsC, v, w, err := testutils.RandomSparseR1CS(r, logN, logV, nnz)
	if err != nil {
		b.Fatalf("building fixture: %v", err)
	}
	pk, vk, err := ahp.Index(rowsA, rowsB, rowsC, v, w)
	if err != nil {
		b.Fatalf("indexing: %v", err)
	}
	setupReader := testutils.SeededReader("ahp-benchmark-setup")
	pp, vp, err := commitment.Setup(logN, commitment.TestOnly, setupReader)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	return pk, vk, pp, vp
}

func BenchmarkProve(b *testing.B) {
	pk, _, pp, _ := benchmarkShape(b, 8, 2, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ahp.Prove(pp, pk); err != nil {
			b.Fatalf("prove: %v", err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	pk, vk, pp, vp := benchmarkShape(b, 8, 2, 4)
	proof, err := ahp.Prove(pp, pk)
	if err != nil {
		b.Fatalf("prove: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := ahp.Verify(vp, vk, proof)
		if err != nil || !ok {
			b.Fatalf("verify: ok=%v err=%v", ok, err)
		}
	}
}

func BenchmarkProofSize(b *testing.B) {
	pk, _, pp, _ := benchmarkShape(b, 8, 2, 4)
	proof, err := ahp.Prove(pp, pk)
	if err != nil {
		b.Fatalf("prove: %v", err)
	}
	data, err := proof.MarshalBinary()
	if err != nil {
		b.Fatalf("marshal: %v", err)
	}
	b.ReportMetric(float64(len(data)), "bytes/proof")
}
