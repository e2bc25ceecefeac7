package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/probkit/probkit/randvar"
)

var (
	// ErrNoVariables is returned when WriteHTML receives nothing to plot.
	ErrNoVariables = errors.New("chart: at least one random variable is required")

	// ErrNilVariable is returned when any supplied variable is nil.
	ErrNilVariable = errors.New("chart: nil random variable")
)

// PMFBar builds a bar chart of v's probability mass function. The
// subtitle carries the summary statistics a reader wants next to the
// shape: mean, standard deviation and range.
func PMFBar(v *randvar.RandVar) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    v.Name() + " pmf",
			Subtitle: summaryLine(v),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, v.Len())
	items := make([]opts.BarData, v.Len())
	for i := 0; i < v.Len(); i++ {
		labels[i] = fmt.Sprintf("%g", v.At(i))
		items[i] = opts.BarData{Value: v.ProbAt(i)}
	}
	bar.SetXAxis(labels).
		AddSeries("p", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return bar
}

// CMFLine builds a line chart of v's cumulative mass function over the
// support, ending at ≈1.
func CMFLine(v *randvar.RandVar) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    v.Name() + " cmf",
			Subtitle: summaryLine(v),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, v.Len())
	items := make([]opts.LineData, v.Len())
	for i := 0; i < v.Len(); i++ {
		x := v.At(i)
		labels[i] = fmt.Sprintf("%g", x)
		items[i] = opts.LineData{Value: v.CMF(x)}
	}
	line.SetXAxis(labels).
		AddSeries("P(X ≤ x)", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return line
}

// WriteHTML assembles a single page with a pmf and a cmf chart for every
// variable, in argument order, and renders it to w.
func WriteHTML(w io.Writer, title string, vs ...*randvar.RandVar) error {
	if len(vs) == 0 {
		return ErrNoVariables
	}
	for _, v := range vs {
		if v == nil {
			return ErrNilVariable
		}
	}

	page := components.NewPage()
	page.PageTitle = title
	for _, v := range vs {
		page.AddCharts(PMFBar(v), CMFLine(v))
	}

	return page.Render(w)
}

// summaryLine formats the moment summary shown under chart titles.
func summaryLine(v *randvar.RandVar) string {
	return fmt.Sprintf("mean=%.3f, std=%.3f, range=%g", v.Expectation(nil), v.StdDev(), v.Range())
}
