// internal/report/value.go
// Package report holds the data model shared by the visualizer, the loaders and the renderers.
package report

import (
	"fmt"
	"strconv"
)

// NotApplicable is the cell rendered when a module does not report a feature.
const NotApplicable = "Not Applicable"

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNumber is a single numeric value.
	KindNumber Kind = iota
	// KindSequence is one numeric value per channel.
	KindSequence
	// KindText is a free-form string value.
	KindText
	// KindBool is a boolean flag value.
	KindBool
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSequence:
		return "sequence"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a single feature value. The zero value is Number(0).
//
// Tensor values (zero-dimensional tensors unwrapped to a number, or
// per-channel tensors) are the only plottable values.
type Value struct {
	kind   Kind
	tensor bool
	num    float64
	seq    []float64
	text   string
	flag   bool
}

// Number returns a plain scalar value.
func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// Tensor returns a zero-dimensional numeric tensor, already unwrapped to its number.
func Tensor(v float64) Value {
	return Value{kind: KindNumber, tensor: true, num: v}
}

// Sequence returns a plain per-channel list.
func Sequence(vs ...float64) Value {
	return Value{kind: KindSequence, seq: append([]float64(nil), vs...)}
}

// TensorSequence returns a per-channel numeric tensor.
func TensorSequence(vs ...float64) Value {
	return Value{kind: KindSequence, tensor: true, seq: append([]float64(nil), vs...)}
}

// Text returns a string value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsTensor reports whether v came from a numeric tensor.
func (v Value) IsTensor() bool { return v.tensor }

// PerChannel reports whether v holds one entry per channel.
func (v Value) PerChannel() bool { return v.kind == KindSequence }

// Plottable reports whether v is tensor data a chart can draw.
func (v Value) Plottable() bool {
	return v.tensor && (v.kind == KindNumber || v.kind == KindSequence)
}

// Len returns the number of channels for a sequence and 0 otherwise.
func (v Value) Len() int {
	if v.kind != KindSequence {
		return 0
	}
	return len(v.seq)
}

// Float returns the numeric scalar held by v.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Floats returns a copy of every numeric entry in v: the scalar, or each channel.
func (v Value) Floats() []float64 {
	switch v.kind {
	case KindNumber:
		return []float64{v.num}
	case KindSequence:
		return append([]float64(nil), v.seq...)
	default:
		return nil
	}
}

// At returns the channel entry at index i. ok is false when v is not a
// sequence or i is out of range.
func (v Value) At(i int) (float64, bool) {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return 0, false
	}
	return v.seq[i], true
}

// Cell returns the value as a table cell: float64, string, bool, or a
// []float64 copy for sequences.
func (v Value) Cell() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindSequence:
		return append([]float64(nil), v.seq...)
	case KindText:
		return v.text
	case KindBool:
		return v.flag
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same variant and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.tensor != o.tensor {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if v.seq[i] != o.seq[i] {
				return false
			}
		}
		return true
	case KindText:
		return v.text == o.text
	case KindBool:
		return v.flag == o.flag
	}
	return false
}

// String renders v for logs and debug output.
func (v Value) String() string {
	prefix := ""
	if v.tensor {
		prefix = "tensor"
	}
	switch v.kind {
	case KindNumber:
		n := strconv.FormatFloat(v.num, 'g', -1, 64)
		if prefix != "" {
			return prefix + "(" + n + ")"
		}
		return n
	case KindSequence:
		return fmt.Sprintf("%s%v", prefix, v.seq)
	case KindText:
		return strconv.Quote(v.text)
	case KindBool:
		return strconv.FormatBool(v.flag)
	}
	return "<invalid>"
}
