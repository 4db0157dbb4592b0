package uniql

import (
	"encoding/json"
	"fmt"
)

// nodeView is the JSON and YAML shape of a Node.
type nodeView struct {
	Name   string       `json:"name" yaml:"name"`
	Fields []*nodeView  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Query  string       `json:"query,omitempty" yaml:"query,omitempty"`
	Page   *PageRequest `json:"page,omitempty" yaml:"page,omitempty"`
	Sort   *sortView    `json:"sort,omitempty" yaml:"sort,omitempty"`
}

type sortView struct {
	Direction string   `json:"direction" yaml:"direction"`
	Fields    []string `json:"fields" yaml:"fields"`
}

func (n *Node) view() *nodeView {
	v := &nodeView{Name: n.name, Query: n.query, Page: n.page}
	for _, child := range n.Fields() {
		v.Fields = append(v.Fields, child.view())
	}
	if n.sort != nil {
		v.Sort = &sortView{Direction: n.sort.Direction.String(), Fields: n.sort.Fields}
	}
	return v
}

func (v *nodeView) node() (*Node, error) {
	n := &Node{name: v.Name, query: v.Query}
	if v.Page != nil {
		p := *v.Page
		n.page = &p
	}
	if v.Sort != nil {
		dir, err := ParseDirection(v.Sort.Direction)
		if err != nil {
			return nil, fmt.Errorf("sort of %q: %w", v.Name, err)
		}
		n.sort = &SortRequest{Direction: dir, Fields: append([]string(nil), v.Sort.Fields...)}
	}
	for _, fv := range v.Fields {
		if fv == nil {
			continue
		}
		child, err := fv.node()
		if err != nil {
			return nil, err
		}
		n.AddNode(child)
	}
	return n, nil
}

// MarshalJSON encodes the node as {"name","fields","query","page","sort"}.
// Fields are emitted in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.view())
}

// UnmarshalJSON decodes the shape produced by MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	var v nodeView
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	decoded, err := v.node()
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (n *Node) MarshalYAML() (any, error) {
	return n.view(), nil
}
