// internal/visualizer/visualizer.go
// Package visualizer renders a collected model report as tables, plots and histograms.
//
// Every view takes an optional module filter. The module filter matches any
// fqn that contains it as a substring, not only fqns that start with it, so
// "conv" selects both "features.0.conv" and "conv1".
package visualizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mwiater/reportviz/internal/logging"
	"github.com/mwiater/reportviz/internal/render"
	"github.com/mwiater/reportviz/internal/report"
)

var (
	// ErrMixedFeatureKind is returned when one feature name is reported as a
	// scalar by some modules and per channel by others.
	ErrMixedFeatureKind = errors.New("feature mixes tensor and channel values")
	// ErrUnknownFeature is returned when no selected module reports the feature.
	ErrUnknownFeature = errors.New("feature not found")
	// ErrNotPlottable is returned when a feature holds no tensor data.
	ErrNotPlottable = errors.New("feature is not plottable")
)

// Fixed table columns.
const (
	ColumnIdx      = "idx"
	ColumnLayerFQN = "layer_fqn"
	ColumnChannel  = "channel"
)

// DefaultHistogramBins is the bin count used when none is configured.
const DefaultHistogramBins = 10

// Visualizer renders views over a report. It holds a private copy of the
// report and never modifies it, so one Visualizer is safe for concurrent use.
type Visualizer struct {
	report    *report.Report
	formatter render.Formatter
	charter   render.Charter
	bins      int
}

// Option configures a Visualizer.
type Option func(*Visualizer)

// WithFormatter sets the table formatter used for the printable table view.
func WithFormatter(f render.Formatter) Option {
	return func(v *Visualizer) {
		if f != nil {
			v.formatter = f
		}
	}
}

// WithCharter sets the chart renderer used by the plot and histogram views.
func WithCharter(c render.Charter) Option {
	return func(v *Visualizer) {
		if c != nil {
			v.charter = c
		}
	}
}

// WithHistogramBins sets the number of histogram bins. Non-positive values are ignored.
func WithHistogramBins(n int) Option {
	return func(v *Visualizer) {
		if n > 0 {
			v.bins = n
		}
	}
}

// New returns a Visualizer over a copy of r.
func New(r *report.Report, opts ...Option) *Visualizer {
	v := &Visualizer{
		report:    r.Clone(),
		formatter: render.Simple{},
		charter:   render.NewChart(0, 0, false),
		bins:      DefaultHistogramBins,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ModuleFQNs returns the set of module fqns in the report.
func (v *Visualizer) ModuleFQNs() map[string]struct{} {
	out := make(map[string]struct{}, v.report.Len())
	for _, fqn := range v.report.Modules() {
		out[fqn] = struct{}{}
	}
	return out
}

// OrderedModuleFQNs returns the module fqns in report order.
func (v *Visualizer) OrderedModuleFQNs() []string {
	return v.report.Modules()
}

// FeatureNames returns the union of feature names across modules. With
// plottable set, only names holding tensor data in at least one module count.
func (v *Visualizer) FeatureNames(plottable bool) map[string]struct{} {
	out := make(map[string]struct{})
	for _, fqn := range v.report.Modules() {
		features, _ := v.report.Features(fqn)
		for name, value := range features {
			if plottable && !value.Plottable() {
				continue
			}
			out[name] = struct{}{}
		}
	}
	return out
}

// SortedFeatureNames is FeatureNames in lexical order.
func (v *Visualizer) SortedFeatureNames(plottable bool) []string {
	return sortedKeys(v.FeatureNames(plottable))
}

// filter returns the modules whose fqn contains moduleFilter, keeping only the
// features whose name contains featureFilter. Empty filters match everything.
// Modules left without features are kept.
func (v *Visualizer) filter(featureFilter, moduleFilter string) *report.Report {
	out := report.New()
	for _, fqn := range v.report.Modules() {
		if moduleFilter != "" && !strings.Contains(fqn, moduleFilter) {
			continue
		}
		features, _ := v.report.Features(fqn)
		out.Add(fqn, nil)
		for _, name := range v.report.FeatureOrder(fqn) {
			if featureFilter == "" || strings.Contains(name, featureFilter) {
				out.Set(fqn, name, features[name])
			}
		}
	}
	return out
}

// featureKinds declares each feature name channel-level or tensor-level from
// its first occurrence and rejects later occurrences of the other kind.
func featureKinds(r *report.Report) (map[string]bool, error) {
	perChannel := make(map[string]bool)
	var mixed []string
	for _, fqn := range r.Modules() {
		features, _ := r.Features(fqn)
		for _, name := range r.FeatureOrder(fqn) {
			isChannel := features[name].PerChannel()
			declared, seen := perChannel[name]
			if !seen {
				perChannel[name] = isChannel
				continue
			}
			if declared != isChannel {
				logging.LogEvent("[VISUALIZER] feature %q on %q is %s, expected %s", name, fqn, kindLabel(isChannel), kindLabel(declared))
				mixed = append(mixed, fmt.Sprintf("%s (%s)", name, fqn))
			}
		}
	}
	if len(mixed) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMixedFeatureKind, strings.Join(mixed, ", "))
	}
	return perChannel, nil
}

func kindLabel(perChannel bool) string {
	if perChannel {
		return "per channel"
	}
	return "per tensor"
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
