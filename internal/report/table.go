// internal/report/table.go
package report

const (
	// TensorKey is the bundle key holding the tensor level table.
	TensorKey = "tensor_level_info"
	// ChannelKey is the bundle key holding the channel level table.
	ChannelKey = "channel_level_info"
)

// Table is a list of rows. Row 0 holds the column headers as strings; data
// cells are int, string, float64, bool or NotApplicable.
type Table [][]any

// Headers returns the header row as strings.
func (t Table) Headers() []string {
	if len(t) == 0 {
		return nil
	}
	headers := make([]string, len(t[0]))
	for i, h := range t[0] {
		if s, ok := h.(string); ok {
			headers[i] = s
		}
	}
	return headers
}

// Rows returns the data rows, without the header.
func (t Table) Rows() [][]any {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// Column returns the index of the named header, or -1.
func (t Table) Column(name string) int {
	for i, h := range t.Headers() {
		if h == name {
			return i
		}
	}
	return -1
}

// TableBundle maps TensorKey and ChannelKey to their tables.
type TableBundle map[string]Table

// Tensor returns the tensor level table.
func (b TableBundle) Tensor() Table { return b[TensorKey] }

// Channel returns the channel level table.
func (b TableBundle) Channel() Table { return b[ChannelKey] }

// NoDataMessage is printed when a table view has no feature columns.
const NoDataMessage = "No data points to generate table with."

// Section headings used by every table view rendering.
const (
	TensorHeading  = "Tensor Level Information"
	ChannelHeading = "Channel Level Information"
)

const (
	tensorFixedColumns  = 2 // idx, layer_fqn
	channelFixedColumns = 3 // idx, layer_fqn, channel
)

// HasTensorFeatures reports whether the tensor table has any feature column.
func (b TableBundle) HasTensorFeatures() bool {
	return len(b.Tensor().Headers()) > tensorFixedColumns
}

// HasChannelFeatures reports whether the channel table has any feature column.
func (b TableBundle) HasChannelFeatures() bool {
	return len(b.Channel().Headers()) > channelFixedColumns
}
