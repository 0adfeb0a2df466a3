// package utils contains functions to aid serialization and deserialization
// of prover/verifier keys, persisting an indexed instance to a file so it
// doesn't need to be rebuilt on every run.
package utils

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/zkspartan/spartan-core/ahp"
	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/matrix"
)

// gobSparse/gobKey mirror ahp.ProverKey/VerifierKey field-for-field; gob
// cannot encode matrix.Sparse/field.Scalar directly since their exported
// fields alone don't round-trip an fr.Element, so we go through these
// plain structs instead of teaching gob about the crypto types.
type gobEntry struct {
	Col int
	Val []byte
}

type gobSparse struct {
	Rows           [][]gobEntry
	N              int
	NumConstraints int
}

type gobProverKey struct {
	A, B, C    gobSparse
	LogN, LogV int
	V, W       [][]byte
}

type gobVerifierKey struct {
	A, B, C    gobSparse
	LogN, LogV int
	V          [][]byte
}

func toGobSparse(m matrix.Sparse) gobSparse {
	rows := make([][]gobEntry, len(m.Rows))
	for i, row := range m.Rows {
		gr := make([]gobEntry, len(row))
		for j, e := range row {
			b := e.Val.Bytes()
			gr[j] = gobEntry{Col: e.Col, Val: b[:]}
		}
		rows[i] = gr
	}
	return gobSparse{Rows: rows, N: m.N, NumConstraints: m.NumConstraints}
}

func fromGobSparse(g gobSparse) (matrix.Sparse, error) {
	rows := make([][]matrix.Entry, len(g.Rows))
	for i, row := range g.Rows {
		r := make([]matrix.Entry, len(row))
		for j, e := range row {
			s, err := field.FromBytes(e.Val)
			if err != nil {
				return matrix.Sparse{}, fmt.Errorf("utils: decoding matrix entry: %w", err)
			}
			r[j] = matrix.Entry{Col: e.Col, Val: s}
		}
		rows[i] = r
	}
	return matrix.New(rows, g.N)
}

func toGobVec(vs []field.Scalar) [][]byte {
	out := make([][]byte, len(vs))
	for i, s := range vs {
		b := s.Bytes()
		out[i] = b[:]
	}
	return out
}

func fromGobVec(bs [][]byte) ([]field.Scalar, error) {
	out := make([]field.Scalar, len(bs))
	for i, b := range bs {
		s, err := field.FromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("utils: decoding field vector: %w", err)
		}
		out[i] = s
	}
	return out, nil
}

// SavePK writes pk to filepath as a gob-encoded blob.
func SavePK(pk ahp.ProverKey, filepath string) error {
	g := gobProverKey{
		A: toGobSparse(pk.A), B: toGobSparse(pk.B), C: toGobSparse(pk.C),
		LogN: pk.LogN, LogV: pk.LogV,
		V: toGobVec(pk.V), W: toGobVec(pk.W),
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g); err != nil {
		return fmt.Errorf("utils: encoding prover key: %w", err)
	}
	if err := os.WriteFile(filepath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("utils: writing prover key to %s: %w", filepath, err)
	}
	return nil
}

// LoadPK reads a ProverKey previously written by SavePK.
func LoadPK(filepath string) (ahp.ProverKey, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return ahp.ProverKey{}, fmt.Errorf("utils: reading prover key from %s: %w", filepath, err)
	}
	var g gobProverKey
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return ahp.ProverKey{}, fmt.Errorf("utils: decoding prover key: %w", err)
	}
	a, err := fromGobSparse(g.A)
	if err != nil {
		return ahp.ProverKey{}, err
	}
	b, err := fromGobSparse(g.B)
	if err != nil {
		return ahp.ProverKey{}, err
	}
	c, err := fromGobSparse(g.C)
	if err != nil {
		return ahp.ProverKey{}, err
	}
	v, err := fromGobVec(g.V)
	if err != nil {
		return ahp.ProverKey{}, err
	}
	w, err := fromGobVec(g.W)
	if err != nil {
		return ahp.ProverKey{}, err
	}
	return ahp.ProverKey{A: a, B: b, C: c, LogN: g.LogN, LogV: g.LogV, V: v, W: w}, nil
}

// SaveVK writes vk to filepath as a gob-encoded blob.
func SaveVK(vk ahp.VerifierKey, filepath string) error {
	g := gobVerifierKey{
		A: toGobSparse(vk.A), B: toGobSparse(vk.B), C: toGobSparse(vk.C),
		LogN: vk.LogN, LogV: vk.LogV,
		V: toGobVec(vk.V),
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g); err != nil {
		return fmt.Errorf("utils: encoding verifier key: %w", err)
	}
	if err := os.WriteFile(filepath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("utils: writing verifier key to %s: %w", filepath, err)
	}
	return nil
}

// LoadVK reads a VerifierKey previously written by SaveVK.
func LoadVK(filepath string) (ahp.VerifierKey, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return ahp.VerifierKey{}, fmt.Errorf("utils: reading verifier key from %s: %w", filepath, err)
	}
	var g gobVerifierKey
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return ahp.VerifierKey{}, fmt.Errorf("utils: decoding verifier key: %w", err)
	}
	a, err := fromGobSparse(g.A)
	if err != nil {
		return ahp.VerifierKey{}, err
	}
	b, err := fromGobSparse(g.B)
	if err != nil {
		return ahp.VerifierKey{}, err
	}
	c, err := fromGobSparse(g.C)
	if err != nil {
		return ahp.VerifierKey{}, err
	}
	v, err := fromGobVec(g.V)
	if err != nil {
		return ahp.VerifierKey{}, err
	}
	return ahp.VerifierKey{A: a, B: b, C: c, LogN: g.LogN, LogV: g.LogV, V: v}, nil
}

// ShouldRecompile returns true if targetPath is missing, or older than any
// of sourcePaths. Callers persisting a cached ProverKey/VerifierKey via
// SavePK/SaveVK use this to decide whether the cached artifact is still
// fresh relative to whatever generated it, rather than re-indexing on
// every run unconditionally.
func ShouldRecompile(targetPath string, sourcePaths ...string) bool {
	targetFile, err := os.Stat(targetPath)
	if err != nil {
		return true
	}
	targetModTime := targetFile.ModTime()
	for _, sourcePath := range sourcePaths {
		sourceFile, err := os.Stat(sourcePath)
		if err != nil {
			return true
		}
		if sourceFile.ModTime().After(targetModTime) {
			return true
		}
	}
	return false
}
