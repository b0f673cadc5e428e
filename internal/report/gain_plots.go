package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/Manalokosdev/Ribossome/internal/analysis"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CreateGainBarChart renders gain_abs for every row with a derived gain
// as a PNG bar chart, one bar per promoter/modifier pair. Rows without
// a derived gain (non-param1 sensors, missing lookups) are skipped.
func CreateGainBarChart(records []analysis.SensorGainRecord) ([]byte, error) {
	labels := make([]string, 0, len(records))
	values := make(plotter.Values, 0, len(records))
	for _, r := range records {
		if math.IsNaN(r.GainAbs) {
			continue
		}
		labels = append(labels, fmt.Sprintf("%s+%s", r.PromoterCode, r.ModifierCode))
		values = append(values, r.GainAbs)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no derived gains to plot")
	}

	p := plot.New()
	p.Title.Text = "Sensor gain by promoter/modifier pair"
	p.X.Label.Text = "Promoter + Modifier"
	p.Y.Label.Text = "gain_abs"
	p.Add(plotter.NewGrid())

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return nil, fmt.Errorf("failed to create bar chart: %v", err)
	}
	bars.Color = color.RGBA{G: 128, B: 128, A: 255}
	bars.LineStyle.Width = vg.Points(0.5)
	p.Add(bars)
	p.NominalX(labels...)

	writer, err := p.WriterTo(vg.Points(800), vg.Points(400), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %v", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %v", err)
	}
	return buf.Bytes(), nil
}
