package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// SynchronyChart renders the downsampled per-community synchrony series as
// one terminal chart, one line per community, fixed to the [0,1] range.
func SynchronyChart(rows [][]float64, height, width int) string {
	if len(rows) == 0 {
		return "no synchrony data"
	}

	nc := len(rows[0])
	series := make([][]float64, nc)
	for c := 0; c < nc; c++ {
		series[c] = make([]float64, len(rows))
		for t, row := range rows {
			series[c][t] = row[c]
		}
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption("community synchrony over downsampled time"),
	)
}

// MeanSynchronyChart renders the community-averaged synchrony trace.
func MeanSynchronyChart(rows [][]float64, height, width int) string {
	if len(rows) == 0 {
		return "no synchrony data"
	}

	data := make([]float64, len(rows))
	for t, row := range rows {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		data[t] = sum / float64(len(row))
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption("mean synchrony"),
	)
}

// StatsSummary formats run statistics to three decimal places.
func StatsSummary(lambda, chi, phi float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "metastability (lambda): %.3f\n", lambda)
	fmt.Fprintf(&sb, "chimera index (chi):    %.3f\n", chi)
	fmt.Fprintf(&sb, "mean synchrony (phi):   %.3f", phi)
	return sb.String()
}
