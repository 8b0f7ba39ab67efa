// decode.go — document bridge: YAML/JSON configuration documents → Value.
//
// Map-like data reaches the comparison core from three places; the one that
// lives on disk is configuration documents. This bridge decodes them through
// the yaml.v3 node API instead of Unmarshal-into-map so mapping key order
// survives into the Record — Go maps would scramble it and break the
// canonical key list. YAML is a JSON superset, so plain JSON documents
// decode through the same path.

package mobx

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeDocument parses a YAML or JSON document into a Value:
// mappings become records (key order preserved), sequences become arrays,
// scalars map onto null/bool/int/num/str. An empty document decodes to Null.
// Anchors/aliases are followed; alias chains deeper than MaxEqualDepth fail
// rather than loop, since decoded values feed straight into Equal, which
// requires acyclic input.
func DecodeDocument(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Null, fmt.Errorf("decode document: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null, nil
	}
	return nodeValue(root.Content[0], 0)
}

func nodeValue(n *yaml.Node, depth int) (Value, error) {
	if depth > MaxEqualDepth {
		return Null, fmt.Errorf("decode document: nesting deeper than %d at line %d", MaxEqualDepth, n.Line)
	}
	switch n.Kind {
	case yaml.AliasNode:
		return nodeValue(n.Alias, depth+1)
	case yaml.ScalarNode:
		return scalarValue(n)
	case yaml.SequenceNode:
		xs := make([]Value, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeValue(c, depth+1)
			if err != nil {
				return Null, err
			}
			xs[i] = v
		}
		return Arr(xs), nil
	case yaml.MappingNode:
		r := NewRecord()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, c := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return Null, fmt.Errorf("decode document: non-scalar mapping key at line %d", k.Line)
			}
			v, err := nodeValue(c, depth+1)
			if err != nil {
				return Null, err
			}
			if err := r.Set(k.Value, v); err != nil {
				return Null, err
			}
		}
		return RecVal(r), nil
	default:
		return Null, fmt.Errorf("decode document: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

func scalarValue(n *yaml.Node) (Value, error) {
	switch n.Tag {
	case "!!null":
		return Null, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return Null, fmt.Errorf("decode document: bad bool %q at line %d", n.Value, n.Line)
		}
		return Bool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return Null, fmt.Errorf("decode document: bad int %q at line %d", n.Value, n.Line)
		}
		return Int(i), nil
	case "!!float":
		switch strings.ToLower(n.Value) {
		case ".inf", "+.inf":
			return Num(math.Inf(1)), nil
		case "-.inf":
			return Num(math.Inf(-1)), nil
		case ".nan":
			return Num(math.NaN()), nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return Null, fmt.Errorf("decode document: bad float %q at line %d", n.Value, n.Line)
		}
		return Num(f), nil
	default:
		// !!str and any unrecognized scalar tag (timestamps etc.) stay text
		return Str(n.Value), nil
	}
}
