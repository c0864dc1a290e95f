// internal/report/loader.go
package report

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// tensorKey marks a value as tensor data in report documents: {"tensor": 1.5}.
const tensorKey = "tensor"

// ErrInvalidReport is returned when a document does not match the report schema.
var ErrInvalidReport = errors.New("invalid report document")

// reportSchema describes a report document. JSON and YAML documents share it.
const reportSchema = `{
  "$schema": "http://json-schema.org/draft-04/schema#",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": { "$ref": "#/definitions/value" }
  },
  "definitions": {
    "numbers": { "type": "array", "items": { "type": "number" } },
    "value": {
      "oneOf": [
        { "type": ["number", "string", "boolean"] },
        { "$ref": "#/definitions/numbers" },
        {
          "type": "object",
          "required": ["tensor"],
          "additionalProperties": false,
          "properties": {
            "tensor": {
              "oneOf": [
                { "type": "number" },
                { "$ref": "#/definitions/numbers" }
              ]
            }
          }
        }
      ]
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(reportSchema)

// Load reads a JSON or YAML report document from path.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read report %q: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("report %q: %w", path, err)
	}
	return r, nil
}

// Parse decodes a JSON or YAML report document, keeping module and feature order.
func Parse(data []byte) (*Report, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if doc == nil {
		return New(), nil
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return fromNode(&root)
}

func validate(doc any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidReport, strings.Join(problems, "; "))
}

func fromNode(root *yaml.Node) (*Report, error) {
	r := New()
	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return r, nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidReport)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		fqn := node.Content[i].Value
		features := node.Content[i+1]
		if _, exists := r.modules[fqn]; !exists {
			r.order = append(r.order, fqn)
			r.modules[fqn] = FeatureMap{}
		}
		for j := 0; j+1 < len(features.Content); j += 2 {
			name := features.Content[j].Value
			v, err := decodeValue(features.Content[j+1])
			if err != nil {
				return nil, fmt.Errorf("module %q feature %q: %w", fqn, name, err)
			}
			r.Set(fqn, name, v)
		}
	}
	return r, nil
}

func decodeValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int", "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return Value{}, err
			}
			return Number(f), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return Value{}, err
			}
			return Bool(b), nil
		default:
			return Text(n.Value), nil
		}
	case yaml.SequenceNode:
		seq, err := decodeNumbers(n)
		if err != nil {
			return Value{}, err
		}
		return Sequence(seq...), nil
	case yaml.MappingNode:
		if len(n.Content) != 2 || n.Content[0].Value != tensorKey {
			return Value{}, fmt.Errorf("%w: mapping values must be {%q: ...}", ErrInvalidReport, tensorKey)
		}
		inner := n.Content[1]
		if inner.Kind == yaml.SequenceNode {
			seq, err := decodeNumbers(inner)
			if err != nil {
				return Value{}, err
			}
			return TensorSequence(seq...), nil
		}
		var f float64
		if err := inner.Decode(&f); err != nil {
			return Value{}, err
		}
		return Tensor(f), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported value", ErrInvalidReport)
}

func decodeNumbers(n *yaml.Node) ([]float64, error) {
	seq := make([]float64, 0, len(n.Content))
	for _, item := range n.Content {
		var f float64
		if err := item.Decode(&f); err != nil {
			return nil, err
		}
		seq = append(seq, f)
	}
	return seq, nil
}
