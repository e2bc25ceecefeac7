package chart_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probkit/probkit/chart"
	"github.com/probkit/probkit/randvar"
)

func payout(t *testing.T) *randvar.RandVar {
	t.Helper()
	v, err := randvar.New(
		[]float64{1, 5, 10},
		[]float64{0.5, 0.3, 0.2},
		randvar.WithName("payout"),
	)
	require.NoError(t, err)

	return v
}

// TestWriteHTML_SingleVariable renders a page and spot-checks its content.
func TestWriteHTML_SingleVariable(t *testing.T) {
	var buf bytes.Buffer

	err := chart.WriteHTML(&buf, "loot odds", payout(t))
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "loot odds", "page title present")
	assert.Contains(t, html, "payout pmf", "pmf chart title present")
	assert.Contains(t, html, "payout cmf", "cmf chart title present")
	assert.Contains(t, html, "mean=4.000", "moment summary present")
}

// TestWriteHTML_MultipleVariables emits a pair of charts per variable.
func TestWriteHTML_MultipleVariables(t *testing.T) {
	v := payout(t)
	other, err := randvar.New([]float64{0, 1}, []float64{0.5, 0.5}, randvar.WithName("coin"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, chart.WriteHTML(&buf, "report", v, other))

	html := buf.String()
	assert.Contains(t, html, "payout pmf")
	assert.Contains(t, html, "coin pmf")
	assert.Contains(t, html, "coin cmf")
}

// TestWriteHTML_Preconditions rejects empty and nil inputs before any
// rendering happens.
func TestWriteHTML_Preconditions(t *testing.T) {
	var buf bytes.Buffer

	err := chart.WriteHTML(&buf, "empty")
	assert.ErrorIs(t, err, chart.ErrNoVariables)
	assert.Zero(t, buf.Len(), "nothing is written on error")

	err = chart.WriteHTML(&buf, "nil", payout(t), nil)
	assert.ErrorIs(t, err, chart.ErrNilVariable)
	assert.Zero(t, buf.Len(), "nothing is written on error")
}

// TestPMFBar_SeriesValues checks that every support point lands in the
// rendered chart data.
func TestPMFBar_SeriesValues(t *testing.T) {
	bar := chart.PMFBar(payout(t))

	var buf bytes.Buffer
	require.NoError(t, bar.Render(&buf))

	html := buf.String()
	for _, label := range []string{`"1"`, `"5"`, `"10"`} {
		assert.True(t, strings.Contains(html, label), "support label %s present", label)
	}
	assert.Contains(t, html, "0.5", "largest mass present in series data")
}

// TestCMFLine_TerminalValue: the last cumulative point is ≈1.
func TestCMFLine_TerminalValue(t *testing.T) {
	line := chart.CMFLine(payout(t))

	var buf bytes.Buffer
	require.NoError(t, line.Render(&buf))
	assert.Contains(t, buf.String(), "payout cmf")
}
