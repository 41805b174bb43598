package viz

import (
	"fmt"
	"strings"

	"chimera/internal/dynamo"
	"chimera/internal/synchrony"
)

// Dial cell geometry. Width is doubled relative to height to compensate
// for terminal cell aspect ratio.
const (
	dialWidth  = 21
	dialHeight = 11
)

// DialPlot renders each community as a unit-circle scatter of its
// oscillator phases, perRow dials per text row, captioned with the
// community index and its order parameter.
func DialPlot(theta []float64, n0, n1, perRow int) string {
	if perRow <= 0 {
		perRow = 4
	}
	order := synchrony.OrderParameters(theta, n0, n1)

	dials := make([][]string, n1)
	for c := 0; c < n1; c++ {
		dials[c] = renderDial(theta[c*n0:(c+1)*n0], c, order[c])
	}

	var sb strings.Builder
	for start := 0; start < n1; start += perRow {
		end := start + perRow
		if end > n1 {
			end = n1
		}
		// All dials have the same line count; stitch them side by side.
		for line := 0; line < len(dials[start]); line++ {
			for c := start; c < end; c++ {
				sb.WriteString(dials[c][line])
				sb.WriteString("  ")
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderDial(phases []float64, community int, order float64) []string {
	grid := make([][]rune, dialHeight)
	for y := range grid {
		grid[y] = make([]rune, dialWidth)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	cx := dialWidth / 2
	cy := dialHeight / 2
	rx := float64(dialWidth-1) / 2
	ry := float64(dialHeight-1) / 2
	grid[cy][cx] = '+'

	for _, theta := range phases {
		sin, cos := dynamo.FastSinCos(theta)
		x := cx + int(cos*rx+0.5*sign(cos))
		y := cy - int(sin*ry+0.5*sign(sin))
		if x >= 0 && x < dialWidth && y >= 0 && y < dialHeight {
			switch grid[y][x] {
			case ' ', '+':
				grid[y][x] = 'o'
			case 'o':
				grid[y][x] = 'O'
			default:
				grid[y][x] = '@'
			}
		}
	}

	lines := make([]string, 0, dialHeight+1)
	for _, row := range grid {
		lines = append(lines, string(row))
	}
	caption := fmt.Sprintf("c%-2d r=%.3f", community, order)
	lines = append(lines, pad(caption, dialWidth))
	return lines
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}
