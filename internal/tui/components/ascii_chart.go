package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/tui/tuistyles"
)

// ChartSeries is one line in the MRR chart.
type ChartSeries struct {
	Name   string
	Points []decimal.Decimal
	Color  lipgloss.Color
}

// MRRChart draws projection series as an ASCII line chart.
type MRRChart struct {
	Title      string
	Series     []*ChartSeries
	Labels     []string // X-axis labels, one per point
	Width      int
	Height     int
	ShowLegend bool
}

// NewMRRChart creates a chart with the default dimensions.
func NewMRRChart(title string) *MRRChart {
	return &MRRChart{
		Title:      title,
		Width:      60,
		Height:     12,
		ShowLegend: true,
	}
}

// AddSeries adds a line to the chart.
func (c *MRRChart) AddSeries(name string, points []decimal.Decimal, color lipgloss.Color) *MRRChart {
	c.Series = append(c.Series, &ChartSeries{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the X-axis labels.
func (c *MRRChart) WithLabels(labels []string) *MRRChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions.
func (c *MRRChart) WithSize(width, height int) *MRRChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart.
func (c *MRRChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// bounds finds the value range across all series, padded 10% each way.
func (c *MRRChart) bounds() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)

	for _, series := range c.Series {
		for _, p := range series.Points {
			v, _ := p.Float64()
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}

	padding := (maxVal - minVal) * 0.1
	return minVal - padding, maxVal + padding
}

// renderGrid plots every series onto a rune grid with a labeled Y axis.
func (c *MRRChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth
	if chartWidth < 8 {
		chartWidth = 8
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for seriesIdx, series := range c.Series {
		if len(series.Points) == 0 {
			continue
		}
		char := seriesChar(seriesIdx)

		prevX, prevY := -1, -1
		for i, p := range series.Points {
			v, _ := p.Float64()

			x := 0
			if len(series.Points) > 1 {
				x = int(float64(i) / float64(len(series.Points)-1) * float64(chartWidth-1))
			}
			y := c.Height - 1
			if maxVal > minVal {
				y = c.Height - 1 - int((v-minVal)/(maxVal-minVal)*float64(c.Height-1))
			}

			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = char
			}
			if prevX >= 0 {
				drawLine(grid, prevX, prevY, x, y, char)
			}
			prevX, prevY = x, y
		}
	}

	var output strings.Builder
	valueRange := maxVal - minVal
	yAxisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		output.WriteString(yAxisStyle.Render(tuistyles.FormatCurrency(decimal.NewFromFloat(yValue))))
		output.WriteString(" │ ")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")

	if len(c.Labels) > 0 {
		output.WriteString(c.renderXAxisLabels(yAxisWidth, chartWidth))
	}

	return output.String()
}

// renderXAxisLabels spreads the month labels under the axis.
func (c *MRRChart) renderXAxisLabels(yAxisWidth, chartWidth int) string {
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	var output strings.Builder
	output.WriteString(strings.Repeat(" ", yAxisWidth+3))

	spacing := chartWidth / len(c.Labels)
	if spacing < 2 {
		spacing = 2
	}
	for i, label := range c.Labels {
		if i > 0 {
			pad := spacing - len(c.Labels[i-1])
			if pad < 1 {
				pad = 1
			}
			output.WriteString(strings.Repeat(" ", pad))
		}
		output.WriteString(labelStyle.Render(label))
	}

	return output.String()
}

// renderLegend lists the series with their plot characters.
func (c *MRRChart) renderLegend() string {
	var items []string
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesChar(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(series.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).
		Render("Legend: " + strings.Join(items, "   "))
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine connects two grid cells with Bresenham's algorithm, never
// overwriting an already plotted point.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := intAbs(x1 - x0)
	dy := intAbs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] == ' ' {
			grid[y][x] = char
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
