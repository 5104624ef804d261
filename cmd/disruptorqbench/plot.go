// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"code.hybscloud.com/disruptorq/internal/bench"
)

// renderThroughputChart draws a bar chart of items/sec across the
// scenarios in results and saves it as a PNG at path.
func renderThroughputChart(results []bench.Result, path string) error {
	p := plot.New()
	p.Title.Text = "disruptorq scenario throughput"
	p.Y.Label.Text = "items/sec"

	values := make(plotter.Values, len(results))
	labels := make([]string, len(results))
	for i, r := range results {
		values[i] = r.Throughput
		labels[i] = r.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("new bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
