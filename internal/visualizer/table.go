// internal/visualizer/table.go
package visualizer

import (
	"sort"
	"strings"

	"github.com/mwiater/reportviz/internal/logging"
	"github.com/mwiater/reportviz/internal/report"
)

// TableView builds the tensor level and channel level tables for the modules
// matching moduleFilter and the features matching featureFilter, and returns
// them together with a printable rendering.
//
// Tensor table columns:
//
//	idx  layer_fqn  feature_1 ... feature_n
//
// Channel table columns:
//
//	idx  layer_fqn  channel  feature_1 ... feature_n
//
// Every selected module gets one tensor row and one channel row per channel,
// where the channel count is the longest per channel feature selected.
// Features a module does not report, and channels past the end of a module's
// own sequence, are filled with report.NotApplicable.
func (v *Visualizer) TableView(featureFilter, moduleFilter string) (report.TableBundle, string, error) {
	filtered := v.filter(featureFilter, moduleFilter)

	kinds, err := featureKinds(filtered)
	if err != nil {
		return nil, "", err
	}

	var tensorFeatures, channelFeatures []string
	for name, perChannel := range kinds {
		if perChannel {
			channelFeatures = append(channelFeatures, name)
		} else {
			tensorFeatures = append(tensorFeatures, name)
		}
	}
	sort.Strings(tensorFeatures)
	sort.Strings(channelFeatures)

	numChannels := channelCount(filtered, channelFeatures)

	bundle := report.TableBundle{
		report.TensorKey:  tensorTable(filtered, tensorFeatures),
		report.ChannelKey: channelTable(filtered, channelFeatures, numChannels),
	}

	var sections []string
	if len(tensorFeatures) > 0 {
		sections = append(sections, report.TensorHeading+"\n"+v.formatter.Format(bundle.Tensor()))
	}
	if len(channelFeatures) > 0 {
		sections = append(sections, report.ChannelHeading+"\n"+v.formatter.Format(bundle.Channel()))
	}
	text := strings.Join(sections, "\n\n")
	if text == "" {
		text = report.NoDataMessage
	}

	logging.LogView("table", featureFilter, moduleFilter, map[string]int{
		"modules":          filtered.Len(),
		"tensor_features":  len(tensorFeatures),
		"channel_features": len(channelFeatures),
		"channels":         numChannels,
	})
	return bundle, text, nil
}

// channelCount returns the longest sequence among the channel features and
// logs modules whose sequences are shorter.
func channelCount(r *report.Report, channelFeatures []string) int {
	numChannels := 0
	for _, fqn := range r.Modules() {
		features, _ := r.Features(fqn)
		for _, name := range channelFeatures {
			if value, ok := features[name]; ok && value.Len() > numChannels {
				numChannels = value.Len()
			}
		}
	}
	for _, fqn := range r.Modules() {
		features, _ := r.Features(fqn)
		for _, name := range channelFeatures {
			if value, ok := features[name]; ok && value.Len() < numChannels {
				logging.LogEvent("[VISUALIZER] feature %q on %q has %d channels, table has %d", name, fqn, value.Len(), numChannels)
			}
		}
	}
	return numChannels
}

func tensorTable(r *report.Report, features []string) report.Table {
	headers := []any{ColumnIdx, ColumnLayerFQN}
	for _, name := range features {
		headers = append(headers, name)
	}
	table := report.Table{headers}

	for i, fqn := range r.Modules() {
		values, _ := r.Features(fqn)
		row := []any{i + 1, fqn}
		for _, name := range features {
			value, ok := values[name]
			if !ok {
				row = append(row, report.NotApplicable)
				continue
			}
			row = append(row, value.Cell())
		}
		table = append(table, row)
	}
	return table
}

func channelTable(r *report.Report, features []string, numChannels int) report.Table {
	headers := []any{ColumnIdx, ColumnLayerFQN, ColumnChannel}
	for _, name := range features {
		headers = append(headers, name)
	}
	table := report.Table{headers}

	idx := 1
	for _, fqn := range r.Modules() {
		values, _ := r.Features(fqn)
		for channel := 0; channel < numChannels; channel++ {
			row := []any{idx, fqn, channel}
			for _, name := range features {
				value, ok := values[name]
				if !ok {
					row = append(row, report.NotApplicable)
					continue
				}
				element, ok := value.At(channel)
				if !ok {
					row = append(row, report.NotApplicable)
					continue
				}
				row = append(row, element)
			}
			table = append(table, row)
			idx++
		}
	}
	return table
}
