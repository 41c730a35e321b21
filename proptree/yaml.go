// SPDX-License-Identifier: MIT
package proptree

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
)

const mergeTag = "!!merge"

// FromYAML derives the child-map of a YAML document, keeping its key order.
//
// Only mappings are descended; an empty document yields an empty map.
func FromYAML(r io.Reader, opts ...Option) (m *childmap.ChildMap[string], err error) {
	var doc yaml.Node
	if err = yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return childmap.New[string](), nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolve(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: yaml %s", ErrNotObject, root.Tag)
	}

	t := newTree(opts)
	if err = t.walkYAML(nil, root); err != nil {
		return nil, err
	}

	return t.m, nil
}

func (t *tree) walkYAML(parent []string, mapping *yaml.Node) error {
	for index := 0; index+1 < len(mapping.Content); index += 2 {
		key, valueNode := mapping.Content[index], resolve(mapping.Content[index+1])

		// Merged mappings contribute their keys in place.
		if key.ShortTag() == mergeTag {
			if err := t.walkMerge(parent, valueNode); err != nil {
				return err
			}
			continue
		}

		var value any
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("decode yaml (%s) line %d: %w", key.Value, key.Line, err)
		}

		path, ok := t.add(parent, key.Value, value)
		if !ok || valueNode.Kind != yaml.MappingNode {
			continue
		}
		if err := t.walkYAML(path, valueNode); err != nil {
			return err
		}
	}

	return nil
}

func (t *tree) walkMerge(parent []string, value *yaml.Node) error {
	sources := []*yaml.Node{value}
	if value.Kind == yaml.SequenceNode {
		sources = value.Content
	}

	for _, source := range sources {
		if source = resolve(source); source.Kind != yaml.MappingNode {
			continue
		}
		if err := t.walkYAML(parent, source); err != nil {
			return err
		}
	}

	return nil
}

// resolve follows aliases to their anchors.
func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}
