// Package chart renders validated random variables as self-contained
// HTML reports using go-echarts.
//
// Two views per variable:
//   - PMFBar  — a bar chart of the probability mass function, with the
//     first two moments and the range in the subtitle
//   - CMFLine — the cumulative mass function as a line over the support
//
// WriteHTML assembles one page holding both views for every variable and
// renders it to a caller-supplied io.Writer; the package owns no files,
// flags or paths. Only *randvar.RandVar values are accepted, so every
// chart is backed by an already-validated distribution; there is no path
// that plots a raw, unchecked vector.
//
// Usage:
//
//	f, _ := os.Create("report.html")
//	defer f.Close()
//	if err := chart.WriteHTML(f, "loot odds", payout, total); err != nil { ... }
package chart
