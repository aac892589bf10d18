// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"errors"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

// WriteChart renders an SVG bar chart with one bar per codec. Each bar is
// the mean of the codec's valid results across all rows.
func WriteChart(w io.Writer, title string, results [][]Result, codecs []string) error {
	var bars []chart.Value
	for j, c := range codecs {
		var sum float64
		var cnt int
		for _, row := range results {
			if r := row[j].R; r != 0 && !math.IsNaN(r) && !math.IsInf(r, 0) {
				sum += r
				cnt++
			}
		}
		if cnt > 0 {
			bars = append(bars, chart.Value{Label: c, Value: sum / float64(cnt)})
		}
	}
	if len(bars) == 0 {
		return errors.New("bench: no results to chart")
	}

	const barWidth, barSpacing = 40, 20
	graph := chart.BarChart{
		Title:      title,
		Height:     512,
		Width:      160 + len(bars)*(barWidth+barSpacing),
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Bars:       bars,
	}
	return graph.Render(chart.SVG, w)
}
