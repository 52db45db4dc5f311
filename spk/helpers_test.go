// SPDX-License-Identifier: MIT
package spk_test

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// twoSquares is two unit squares with their centers, 20 apart on both axes.
func twoSquares() [][]float64 {
	return [][]float64{
		{0, 0}, {0, 1}, {1, 0}, {1, 1}, {0.5, 0.5},
		{20, 20}, {20, 21}, {21, 20}, {21, 21}, {20.5, 20.5},
	}
}

// requireSplit asserts the first five and the last five points form the
// two clusters.
func requireSplit(t *testing.T, assignment []int) {
	t.Helper()
	require.Len(t, assignment, 10)
	a, b := assignment[0], assignment[5]
	require.NotEqual(t, a, b)
	for i := 0; i < 5; i++ {
		require.Equal(t, a, assignment[i], "point %d", i)
		require.Equal(t, b, assignment[5+i], "point %d", 5+i)
	}
}

// metricValue returns the counter value (or histogram sample count) of the
// series name{labels} in families, failing when it is absent.
func metricValue(t *testing.T, families []*dto.MetricFamily, name string, labels map[string]string) float64 {
	t.Helper()
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				return float64(h.GetSampleCount())
			}
		}
	}
	require.Failf(t, "metric not found", "%s%v", name, labels)

	return 0
}
