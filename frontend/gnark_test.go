package frontend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkspartan/spartan-core/field"
	"github.com/zkspartan/spartan-core/frontend"
)

func TestFromDenseRowsDropsZeros(t *testing.T) {
	one := field.One()
	zero := field.Zero()

	a := [][]field.Scalar{{one, zero, zero}}
	b := [][]field.Scalar{{zero, one, zero}}
	c := [][]field.Scalar{{zero, zero, one}}

	rowsA, rowsB, rowsC, err := frontend.FromDenseRows(a, b, c)
	require.NoError(t, err)
	require.Len(t, rowsA, 1)
	require.Len(t, rowsA[0], 1)
	require.Equal(t, 0, rowsA[0][0].Col)
	require.Len(t, rowsB[0], 1)
	require.Equal(t, 1, rowsB[0][0].Col)
	require.Len(t, rowsC[0], 1)
	require.Equal(t, 2, rowsC[0][0].Col)
}

func TestFromDenseRowsRejectsRowCountMismatch(t *testing.T) {
	a := [][]field.Scalar{{field.One()}}
	b := [][]field.Scalar{}
	c := [][]field.Scalar{{field.One()}}

	_, _, _, err := frontend.FromDenseRows(a, b, c)
	require.Error(t, err)
}
