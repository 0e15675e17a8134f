package scene

import (
	"encoding/json"
)

// NoParent is the fileID Unity writes for a Transform without a parent.
const NoParent = "0"

// GameObject is a scene object record.
type GameObject struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Active bool   `json:"active" yaml:"active"`
}

// Transform is a placement record. It positions exactly one GameObject and
// carries the parent/child links of the hierarchy.
type Transform struct {
	ID         string   `json:"id" yaml:"id"`
	GameObject string   `json:"game_object" yaml:"game_object"`
	Father     string   `json:"father,omitempty" yaml:"father,omitempty"`
	Children   []string `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsRoot reports whether the transform has no parent.
func (t *Transform) IsRoot() bool {
	return t.Father == "" || t.Father == NoParent
}

// Kind classifies a record block.
type Kind int

const (
	KindUnknown Kind = iota
	KindObject
	KindTransform
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "GameObject"
	case KindTransform:
		return "Transform"
	default:
		return "unknown"
	}
}

// Record is the result of extracting one block. At most one of Object and
// Transform is set, matching Kind. A classified block whose required fields
// were missing keeps its Kind but has a nil payload.
type Record struct {
	Kind      Kind
	Object    *GameObject
	Transform *Transform
}

// Node is one object in a resolved hierarchy tree.
type Node struct {
	ObjectID    string  `json:"object_id" yaml:"object_id"`
	TransformID string  `json:"transform_id,omitempty" yaml:"transform_id,omitempty"`
	Name        string  `json:"name" yaml:"name"`
	Active      bool    `json:"active" yaml:"active"`
	Children    []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// String returns a JSON representation of the Node for debugging.
func (n *Node) String() string {
	b, _ := json.MarshalIndent(n, "", "  ")
	return string(b)
}

// Stats summarises a parsed scene.
type Stats struct {
	Objects    int `json:"objects" yaml:"objects"`
	Transforms int `json:"transforms" yaml:"transforms"`
	Roots      int `json:"roots" yaml:"roots"`
	Active     int `json:"active" yaml:"active"`
	Inactive   int `json:"inactive" yaml:"inactive"`
	Orphans    int `json:"orphans" yaml:"orphans"`
	Reachable  int `json:"reachable" yaml:"reachable"` // objects drawn under some root
	Leaves     int `json:"leaves" yaml:"leaves"`
	MaxDepth   int `json:"max_depth" yaml:"max_depth"`
}
