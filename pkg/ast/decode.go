package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode parses upstream parser output. The payload is either a JSON array
// of nodes or a single node object.
func Decode(data []byte) ([]*Node, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var nodes []*Node
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return nil, fmt.Errorf("ast: decode node list: %w", err)
		}
		return nodes, nil
	}
	var node Node
	if err := json.Unmarshal(trimmed, &node); err != nil {
		return nil, fmt.Errorf("ast: decode node: %w", err)
	}
	return []*Node{&node}, nil
}

// knownKeys are the structural fields of Node. Any other key on a node
// object is an upstream named argument and is promoted into Args.
var knownKeys = map[string]bool{
	"type":           true,
	"expressionType": true,
	"location":       true,
	"text":           true,
	"raw":            true,
	"value":          true,
	"name":           true,
	"operator":       true,
	"left":           true,
	"right":          true,
	"operand":        true,
	"condition":      true,
	"then":           true,
	"else":           true,
	"elements":       true,
	"expression":     true,
	"parameters":     true,
	"children":       true,
}

// UnmarshalJSON decodes a node, promoting unrecognized keys into Args so
// that both the normalized shape ({"type":"cube","size":[1,2,3]}) and the
// raw parameter-list shape ({"type":"cube","parameters":{"size":...}})
// arrive as the same Go structure.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	scalar := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		return json.Unmarshal(v, dst)
	}

	if err := scalar("type", &n.Type); err != nil {
		return fmt.Errorf("ast: type: %w", err)
	}
	if err := scalar("expressionType", &n.Expr); err != nil {
		return fmt.Errorf("ast: expressionType: %w", err)
	}
	if err := scalar("location", &n.Location); err != nil {
		return fmt.Errorf("ast: location: %w", err)
	}
	if err := scalar("text", &n.Text); err != nil {
		return fmt.Errorf("ast: text: %w", err)
	}
	if n.Text == "" {
		if err := scalar("raw", &n.Text); err != nil {
			return fmt.Errorf("ast: raw: %w", err)
		}
	}
	if err := scalar("value", &n.Value); err != nil {
		return fmt.Errorf("ast: value: %w", err)
	}
	if err := scalar("name", &n.Name); err != nil {
		return fmt.Errorf("ast: name: %w", err)
	}
	if err := scalar("operator", &n.Operator); err != nil {
		return fmt.Errorf("ast: operator: %w", err)
	}
	for key, dst := range map[string]**Node{
		"left":       &n.Left,
		"right":      &n.Right,
		"operand":    &n.Operand,
		"condition":  &n.Condition,
		"then":       &n.Then,
		"else":       &n.Else,
		"expression": &n.Inner,
	} {
		if v, ok := raw[key]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				return fmt.Errorf("ast: %s: %w", key, err)
			}
		}
	}
	if v, ok := raw["elements"]; ok {
		if err := json.Unmarshal(v, &n.Elements); err != nil {
			return fmt.Errorf("ast: elements: %w", err)
		}
	}
	if v, ok := raw["children"]; ok {
		if err := json.Unmarshal(v, &n.Children); err != nil {
			return fmt.Errorf("ast: children: %w", err)
		}
	}

	if v, ok := raw["parameters"]; ok {
		params, err := decodeArgMap(v)
		if err != nil {
			return fmt.Errorf("ast: parameters: %w", err)
		}
		n.Params = params
	}

	for key, v := range raw {
		if knownKeys[key] {
			continue
		}
		arg, err := valueToNode(v)
		if err != nil {
			return fmt.Errorf("ast: argument %q: %w", key, err)
		}
		if arg == nil {
			continue
		}
		if n.Args == nil {
			n.Args = make(map[string]*Node)
		}
		n.Args[key] = arg
	}
	return nil
}

func decodeArgMap(data json.RawMessage) (map[string]*Node, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]*Node, len(raw))
	for key, v := range raw {
		node, err := valueToNode(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if node != nil {
			out[key] = node
		}
	}
	return out, nil
}

// valueToNode lifts a bare JSON value into an expression node. Objects are
// assumed to already be nodes; scalars become literals and arrays become
// vector expressions, so downstream evaluation sees a uniform tree.
func valueToNode(data json.RawMessage) (*Node, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	switch trimmed[0] {
	case '{':
		var node Node
		if err := json.Unmarshal(trimmed, &node); err != nil {
			return nil, err
		}
		return &node, nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, err
		}
		vec := &Node{Type: "expression", Expr: ExprVector}
		for _, e := range elems {
			elem, err := valueToNode(e)
			if err != nil {
				return nil, err
			}
			vec.Elements = append(vec.Elements, elem)
		}
		return vec, nil
	default:
		var value any
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return nil, err
		}
		return &Node{Type: "expression", Expr: ExprLiteral, Value: value}, nil
	}
}
