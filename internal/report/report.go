// internal/report/report.go
package report

import (
	"bytes"
	"encoding/json"
	"sort"
)

// FeatureMap maps a feature name to the value a module reported for it.
type FeatureMap map[string]Value

// Clone returns a deep copy of the map.
func (f FeatureMap) Clone() FeatureMap {
	out := make(FeatureMap, len(f))
	for name, v := range f {
		out[name] = v.clone()
	}
	return out
}

// Names returns the feature names in lexical order.
func (f FeatureMap) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Report is an ordered mapping from module fqn to the features collected for it.
// Iteration order is insertion order.
type Report struct {
	order   []string
	modules map[string]FeatureMap
	// features keeps per-module feature order for encoding.
	features map[string][]string
}

// New returns an empty report.
func New() *Report {
	return &Report{
		modules:  make(map[string]FeatureMap),
		features: make(map[string][]string),
	}
}

// Add appends a module. Adding an fqn that already exists replaces its
// features and keeps its position.
func (r *Report) Add(fqn string, features FeatureMap) {
	if _, exists := r.modules[fqn]; !exists {
		r.order = append(r.order, fqn)
	}
	if features == nil {
		features = FeatureMap{}
	}
	r.modules[fqn] = features.Clone()
	r.features[fqn] = features.Names()
}

// Set records a single feature on a module, appending the module if needed.
func (r *Report) Set(fqn, feature string, v Value) {
	fm, exists := r.modules[fqn]
	if !exists {
		r.order = append(r.order, fqn)
		fm = FeatureMap{}
		r.modules[fqn] = fm
	}
	if _, seen := fm[feature]; !seen {
		r.features[fqn] = append(r.features[fqn], feature)
	}
	fm[feature] = v.clone()
}

// Len returns the number of modules.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Modules returns the module fqns in insertion order.
func (r *Report) Modules() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Features returns the feature map for fqn. The map is owned by the report
// and must not be modified.
func (r *Report) Features(fqn string) (FeatureMap, bool) {
	if r == nil {
		return nil, false
	}
	fm, ok := r.modules[fqn]
	return fm, ok
}

// FeatureOrder returns the feature names of fqn in the order they were recorded.
func (r *Report) FeatureOrder(fqn string) []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.features[fqn]...)
}

// Clone returns a deep copy that shares nothing with r.
func (r *Report) Clone() *Report {
	out := New()
	if r == nil {
		return out
	}
	for _, fqn := range r.order {
		out.order = append(out.order, fqn)
		out.modules[fqn] = r.modules[fqn].Clone()
		out.features[fqn] = append([]string(nil), r.features[fqn]...)
	}
	return out
}

// Equal reports whether both reports hold the same modules, in the same
// order, with equal feature values.
func (r *Report) Equal(o *Report) bool {
	if r.Len() != o.Len() {
		return false
	}
	for i, fqn := range r.Modules() {
		if o.order[i] != fqn {
			return false
		}
		a, b := r.modules[fqn], o.modules[fqn]
		if len(a) != len(b) {
			return false
		}
		for name, v := range a {
			w, ok := b[name]
			if !ok || !v.Equal(w) {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes the report in the loader's document format, keeping
// module and feature order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fqn := range r.Modules() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fqn)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":{")
		fm := r.modules[fqn]
		for j, name := range r.features[fqn] {
			if j > 0 {
				buf.WriteByte(',')
			}
			nameKey, err := json.Marshal(name)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(encodeValue(fm[name]))
			if err != nil {
				return nil, err
			}
			buf.Write(nameKey)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeValue(v Value) any {
	var raw any
	switch v.kind {
	case KindNumber:
		raw = v.num
	case KindSequence:
		seq := v.seq
		if seq == nil {
			seq = []float64{}
		}
		raw = seq
	case KindText:
		raw = v.text
	case KindBool:
		raw = v.flag
	}
	if v.tensor {
		return map[string]any{tensorKey: raw}
	}
	return raw
}

func (v Value) clone() Value {
	if v.kind == KindSequence {
		v.seq = append([]float64(nil), v.seq...)
	}
	return v
}
