package stripchart

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles controls how a frame is drawn.
type Styles struct {
	Line  lipgloss.Style
	Axis  lipgloss.Style
	Empty lipgloss.Style
}

// DefaultStyles returns plain styles.
func DefaultStyles() Styles {
	return Styles{
		Line:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Axis:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

const (
	dot  = '•'
	vert = '│'
)

// Render draws the frame as a line chart of the given size. The leftmost
// columns hold the max/min axis labels.
func Render(f Frame, width, height int, st Styles) string {
	if height < 2 {
		height = 2
	}
	maxLabel := strconv.FormatInt(int64(f.Max), 10)
	minLabel := strconv.FormatInt(int64(f.Min), 10)
	labelWidth := max(len(maxLabel), len(minLabel))
	plotWidth := width - labelWidth - 1
	if plotWidth < 4 {
		plotWidth = 4
	}

	if f.Empty() {
		blank := strings.Repeat(" ", plotWidth)
		lines := make([]string, height)
		for i := range lines {
			lines[i] = blank
		}
		lines[height/2] = lipgloss.PlaceHorizontal(plotWidth, lipgloss.Center, "no readings")
		return st.Empty.Render(strings.Join(lines, "\n"))
	}

	columns := sample(f, plotWidth)
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", len(columns)))
	}

	prev := -1
	for x, v := range columns {
		row := scale(v, float64(f.Min), float64(f.Max), height)
		if prev >= 0 {
			lo, hi := min(prev, row), max(prev, row)
			for y := lo + 1; y < hi; y++ {
				grid[y][x] = vert
			}
		}
		grid[row][x] = dot
		prev = row
	}

	var b strings.Builder
	for i, line := range grid {
		// row 0 is the top of the chart
		label := ""
		switch i {
		case 0:
			label = maxLabel
		case height - 1:
			label = minLabel
		}
		b.WriteString(st.Axis.Render(padLeft(label, labelWidth) + "┤"))
		b.WriteString(st.Line.Render(string(line)))
		if i < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// sample picks at most width values evenly spread across the frame.
func sample(f Frame, width int) []float64 {
	n := len(f.Points)
	if n <= width {
		out := make([]float64, n)
		for i, p := range f.Points {
			out[i] = float64(p.Y)
		}
		return out
	}
	out := make([]float64, width)
	step := float64(n-1) / float64(width-1)
	for i := range out {
		idx := int(math.Round(float64(i) * step))
		if idx >= n {
			idx = n - 1
		}
		out[i] = float64(f.Points[idx].Y)
	}
	return out
}

// scale maps v in [lo, hi] to a grid row, top row for hi.
func scale(v, lo, hi float64, height int) int {
	if hi == lo {
		return height / 2
	}
	r := (v - lo) / (hi - lo)
	row := height - 1 - int(math.Round(r*float64(height-1)))
	return min(max(row, 0), height-1)
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
