package distribution

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when a distribution has nothing to draw.
var ErrNoData = errors.New("no data available for selected cancer type")

// Format selects the chart output encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ChartOptions sizes the rendered chart.
type ChartOptions struct {
	Width  int
	Height int
	Format Format
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width <= 0 {
		o.Width = 512
	}
	if o.Height <= 0 {
		o.Height = 384
	}
	if o.Format == "" {
		o.Format = FormatSVG
	}
	return o
}

// LegendLabel is the "Pattern 011: 3 (42.9%)" text of bucket i.
func (d Distribution) LegendLabel(i int) string {
	return fmt.Sprintf("Pattern %s: %d (%s)", d.Labels[i], d.Counts[i], FormatPercentage(d.Percentage(i)))
}

// Render draws d as a pie chart. Empty buckets are omitted; a distribution
// with no counted records yields ErrNoData.
func Render(w io.Writer, d Distribution, opts ChartOptions) error {
	opts = opts.withDefaults()

	var values []chart.Value
	for i, c := range d.Counts {
		if c == 0 {
			continue
		}
		col := drawing.ColorFromHex(strings.TrimPrefix(Palette[i], "#"))
		values = append(values, chart.Value{
			Value: float64(c),
			Label: d.LegendLabel(i),
			Style: chart.Style{
				FillColor:   col,
				StrokeColor: col,
				StrokeWidth: 2,
			},
		})
	}
	if len(values) == 0 {
		return ErrNoData
	}

	pie := chart.PieChart{
		Width:  opts.Width,
		Height: opts.Height,
		Values: values,
	}

	provider := chart.SVG
	if opts.Format == FormatPNG {
		provider = chart.PNG
	}
	if err := pie.Render(provider, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}
