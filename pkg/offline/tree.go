// Package offline serves a canned decision tree for advice without network
// coverage, and syncs the interactions taken against it.
package offline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Answer struct {
	Text     string `yaml:"text" json:"text"`
	Organic  string `yaml:"organic,omitempty" json:"organic,omitempty"`
	Chemical string `yaml:"chemical,omitempty" json:"chemical,omitempty"`
	Safety   string `yaml:"safety,omitempty" json:"safety,omitempty"`
}

type Node struct {
	ID       string            `yaml:"id" json:"id"`
	Label    map[string]string `yaml:"label" json:"label"` // language code -> text
	Children []*Node           `yaml:"children,omitempty" json:"children,omitempty"`
	Answer   *Answer           `yaml:"answer,omitempty" json:"answer,omitempty"`
}

type Tree struct {
	Version int     `yaml:"version" json:"version"`
	Roots   []*Node `yaml:"roots" json:"roots"`
}

func LoadTree(path string) (*Tree, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Tree
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tree) validate() error {
	seen := map[string]bool{}
	var walk func(n *Node) error
	walk = func(n *Node) error {
		if n.ID == "" {
			return fmt.Errorf("node without id")
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
		if len(n.Children) == 0 && n.Answer == nil {
			return fmt.Errorf("leaf %q has no answer", n.ID)
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range t.Roots {
		if err := walk(r); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the node with the given id, or nil.
func (t *Tree) Find(id string) *Node {
	var find func(n *Node) *Node
	find = func(n *Node) *Node {
		if n.ID == id {
			return n
		}
		for _, c := range n.Children {
			if got := find(c); got != nil {
				return got
			}
		}
		return nil
	}
	for _, r := range t.Roots {
		if got := find(r); got != nil {
			return got
		}
	}
	return nil
}

// LabelIn returns the node label in the requested language, falling back to
// English.
func (n *Node) LabelIn(lang string) string {
	if v, ok := n.Label[lang]; ok && v != "" {
		return v
	}
	return n.Label["en"]
}
