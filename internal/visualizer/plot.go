// internal/visualizer/plot.go
package visualizer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mwiater/reportviz/internal/logging"
	"github.com/mwiater/reportviz/internal/render"
	"github.com/mwiater/reportviz/internal/report"
	"github.com/mwiater/reportviz/internal/util"
)

// Histogram table columns.
const (
	ColumnBin   = "bin"
	ColumnLower = "lower"
	ColumnUpper = "upper"
	ColumnCount = "count"
)

// sample is one module's value for the feature being plotted. idx is the
// module's 1-based position among the selected modules and is the x axis.
type sample struct {
	idx   int
	fqn   string
	value report.Value
}

// plottableSamples collects the tensor values of feature across the modules
// matching moduleFilter. The feature name must match exactly.
func (v *Visualizer) plottableSamples(feature, moduleFilter string) ([]sample, bool, error) {
	filtered := v.filter("", moduleFilter)

	var samples []sample
	found := false
	for i, fqn := range filtered.Modules() {
		features, _ := filtered.Features(fqn)
		value, ok := features[feature]
		if !ok {
			continue
		}
		found = true
		if !value.Plottable() {
			continue
		}
		samples = append(samples, sample{idx: i + 1, fqn: fqn, value: value})
	}
	if !found {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
	}
	if len(samples) == 0 {
		return nil, false, fmt.Errorf("%w: %q holds no tensor data", ErrNotPlottable, feature)
	}

	perChannel := samples[0].value.PerChannel()
	for _, s := range samples[1:] {
		if s.value.PerChannel() != perChannel {
			logging.LogEvent("[VISUALIZER] feature %q on %q is %s, expected %s", feature, s.fqn, kindLabel(s.value.PerChannel()), kindLabel(perChannel))
			return nil, false, fmt.Errorf("%w: %s (%s)", ErrMixedFeatureKind, feature, s.fqn)
		}
	}
	return samples, perChannel, nil
}

// PlotView builds line plot data for one plottable feature. Tensor level
// features give one series over the selected modules; per channel features
// give one series per channel. The x axis is the module idx.
//
// The returned table is:
//
//	idx  layer_fqn  <feature>            (tensor level)
//	idx  layer_fqn  channel  <feature>   (per channel)
//
// and the string is the chart drawn by the configured Charter. NaN and
// infinite values stay in the table but are left out of the series.
func (v *Visualizer) PlotView(feature, moduleFilter string) (report.Table, string, error) {
	samples, perChannel, err := v.plottableSamples(feature, moduleFilter)
	if err != nil {
		return nil, "", err
	}

	var (
		table  report.Table
		series []render.Series
	)
	if !perChannel {
		table = report.Table{{ColumnIdx, ColumnLayerFQN, feature}}
		line := render.Series{Name: feature}
		for _, s := range samples {
			y, _ := s.value.Float()
			table = append(table, []any{s.idx, s.fqn, y})
			if !finite(y) {
				logging.LogEvent("[VISUALIZER] not plotting non-finite %q value on %q", feature, s.fqn)
				continue
			}
			line.Points = append(line.Points, render.Point{X: float64(s.idx), Y: y})
		}
		series = append(series, line)
	} else {
		table = report.Table{{ColumnIdx, ColumnLayerFQN, ColumnChannel, feature}}
		numChannels := 0
		for _, s := range samples {
			if s.value.Len() > numChannels {
				numChannels = s.value.Len()
			}
		}
		series = make([]render.Series, numChannels)
		for c := range series {
			series[c].Name = fmt.Sprintf("channel %d", c)
		}
		for _, s := range samples {
			for c, y := range s.value.Floats() {
				table = append(table, []any{s.idx, s.fqn, c, y})
				if !finite(y) {
					logging.LogEvent("[VISUALIZER] not plotting non-finite %q value on %q channel %d", feature, s.fqn, c)
					continue
				}
				series[c].Points = append(series[c].Points, render.Point{X: float64(s.idx), Y: y})
			}
		}
	}

	title := plotTitle(feature, moduleFilter)
	logging.LogView("plot", feature, moduleFilter, map[string]int{"series": len(series), "rows": len(table) - 1})
	return table, v.charter.LineChart(title, series), nil
}

// HistogramView buckets every value of one plottable feature, scalars and
// channel entries alike, into equal-width bins over [min, max]. The last bin
// is closed. When all values are equal the range becomes [v-0.5, v+0.5].
//
// The returned table is:
//
//	bin  lower  upper  count
//
// and the string is the bar chart drawn by the configured Charter.
func (v *Visualizer) HistogramView(feature, moduleFilter string) (report.Table, string, error) {
	samples, _, err := v.plottableSamples(feature, moduleFilter)
	if err != nil {
		return nil, "", err
	}

	var values []float64
	for _, s := range samples {
		for _, y := range s.value.Floats() {
			if !finite(y) {
				logging.LogEvent("[VISUALIZER] skipping non-finite %q value on %q", feature, s.fqn)
				continue
			}
			values = append(values, y)
		}
	}

	table := report.Table{{ColumnBin, ColumnLower, ColumnUpper, ColumnCount}}
	title := plotTitle(feature, moduleFilter)
	if len(values) == 0 {
		logging.LogView("histogram", feature, moduleFilter, map[string]int{"values": 0, "bins": 0})
		return table, v.charter.BarChart(title, nil), nil
	}

	edges, counts := histogram(values, v.bins)
	bars := make([]render.Bar, len(counts))
	for i, count := range counts {
		table = append(table, []any{i + 1, edges[i], edges[i+1], count})
		closing := ")"
		if i == len(counts)-1 {
			closing = "]"
		}
		bars[i] = render.Bar{
			Label: "[" + formatEdge(edges[i]) + ", " + formatEdge(edges[i+1]) + closing,
			Count: count,
		}
	}

	logging.LogView("histogram", feature, moduleFilter, map[string]int{"values": len(values), "bins": len(counts)})
	return table, v.charter.BarChart(title, bars), nil
}

// histogram returns bins+1 edges and the count of values in each bin.
func histogram(values []float64, bins int) ([]float64, []int) {
	lo, hi := values[0], values[0]
	for _, x := range values[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	// hi-lo can overflow, so edges and bin indexes are computed from
	// positions within the range instead of a bin width.
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = util.Lerp(lo, hi, float64(i)/float64(bins))
	}

	counts := make([]int, bins)
	for _, x := range values {
		i := int(util.Fraction(x, lo, hi) * float64(bins))
		counts[util.Clamp(i, 0, bins-1)]++
	}
	return edges, counts
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatEdge(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func plotTitle(feature, moduleFilter string) string {
	if moduleFilter == "" {
		return feature
	}
	return fmt.Sprintf("%s (modules matching %q)", feature, moduleFilter)
}
