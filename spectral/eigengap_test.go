// SPDX-License-Identifier: MIT
package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/spectral"
)

func TestEigengap_Auto(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		values []float64
		want   int
	}{
		{"reference", []float64{0, 0.1, 0.15, 0.9, 0.95}, 3},
		{"single", []float64{0.3}, 1},
		{"pair", []float64{0, 1}, 1},
		{"tie keeps first", []float64{0, 0.5, 1, 1.5}, 1},
		{"gap outside window ignored", []float64{0, 0.1, 0.3, 0.6, 1.9, 2}, 3},
		{"flat", []float64{1, 1, 1}, 1},
	}
	for _, tc := range cases {
		k, err := spectral.Eigengap(tc.values, 0)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, k, tc.name)
	}
}

func TestEigengap_Explicit(t *testing.T) {
	t.Parallel()

	vals := []float64{0, 0.1, 0.15, 0.9, 0.95}
	for k := 1; k <= len(vals); k++ {
		got, err := spectral.Eigengap(vals, k)
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := spectral.Eigengap(vals, 6)
	require.ErrorIs(t, err, spectral.ErrInvalidK)
}

func TestEigengap_Errors(t *testing.T) {
	t.Parallel()

	_, err := spectral.Eigengap(nil, 0)
	require.ErrorIs(t, err, spectral.ErrInvalidInput)
	_, err = spectral.Eigengap([]float64{1, 0}, 0)
	require.ErrorIs(t, err, spectral.ErrInvalidInput)
}

func TestEmbed(t *testing.T) {
	t.Parallel()

	v, err := matrix.NewFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	u, err := spectral.Embed(v, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {4, 5}}, u.ToRows())

	_, err = spectral.Embed(v, 0)
	require.ErrorIs(t, err, spectral.ErrInvalidK)
	_, err = spectral.Embed(v, 4)
	require.ErrorIs(t, err, spectral.ErrInvalidK)
	_, err = spectral.Embed(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
