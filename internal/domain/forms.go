package domain

import (
	"encoding/json"
	"fmt"
)

// FormNode is one level of a word's inflection table. A branch node keys
// child nodes by feature value (e.g. "masculine" → …); a leaf node holds
// the surface forms for one fully specified feature combination.
//
// JSON encoding: branches are objects, leaves are arrays of strings.
// Invariable words store their single surface form as a bare leaf.
type FormNode struct {
	Children map[string]*FormNode
	Surface  []string
}

// Leaf builds a leaf node from surface forms.
func Leaf(surface ...string) *FormNode {
	return &FormNode{Surface: surface}
}

// Branch builds a branch node from child nodes.
func Branch(children map[string]*FormNode) *FormNode {
	return &FormNode{Children: children}
}

// IsLeaf reports whether the node carries surface forms directly.
func (n *FormNode) IsLeaf() bool { return n != nil && n.Children == nil }

// IsEmpty reports whether the node has neither children nor surface forms.
func (n *FormNode) IsEmpty() bool {
	return n == nil || (len(n.Children) == 0 && len(n.Surface) == 0)
}

// At descends one level by feature value. Returns nil if the key is
// absent or the node is a leaf.
func (n *FormNode) At(key string) *FormNode {
	if n == nil || n.Children == nil {
		return nil
	}
	return n.Children[key]
}

func (n FormNode) MarshalJSON() ([]byte, error) {
	if n.Children != nil {
		return json.Marshal(n.Children)
	}
	if n.Surface == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(n.Surface)
}

func (n *FormNode) UnmarshalJSON(data []byte) error {
	n.Children = nil
	n.Surface = nil

	if len(data) == 0 {
		return fmt.Errorf("forms: empty JSON value")
	}

	switch data[0] {
	case '{':
		children := make(map[string]*FormNode)
		if err := json.Unmarshal(data, &children); err != nil {
			return fmt.Errorf("forms: %w", err)
		}
		n.Children = children
		return nil
	case '[':
		var surface []string
		if err := json.Unmarshal(data, &surface); err != nil {
			return fmt.Errorf("forms: %w", err)
		}
		if surface == nil {
			surface = []string{}
		}
		n.Surface = surface
		return nil
	default:
		return fmt.Errorf("forms: expected object or array, got %q", data[0])
	}
}
