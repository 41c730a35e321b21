// SPDX-License-Identifier: MIT
package proptree

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
)

// FromTOML derives the child-map of a TOML document, keeping its key order.
//
// Tables are descended; arrays of tables are recorded as leaves.
func FromTOML(r io.Reader, opts ...Option) (*childmap.ChildMap[string], error) {
	var doc map[string]any

	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	t := newTree(opts)

	// Keys of excluded or undescended properties are skipped along with their descendants.
	skipped := make(map[string]struct{})
	for _, key := range meta.Keys() {
		parent := key[:len(key)-1]
		if len(parent) > 0 {
			if _, skip := skipped[parent.String()]; skip {
				skipped[key.String()] = struct{}{}
				continue
			}
		}

		value, found := lookup(doc, key)
		if !found {
			skipped[key.String()] = struct{}{}
			continue
		}

		if _, ok := t.add(parent, key[len(key)-1], value); !ok {
			skipped[key.String()] = struct{}{}
			continue
		}
		if _, isMap := value.(map[string]any); !isMap {
			skipped[key.String()] = struct{}{}
		}
	}

	return t.m, nil
}

// lookup retrieves the value at key, descending tables only.
func lookup(doc map[string]any, key toml.Key) (value any, found bool) {
	current := doc
	for index, part := range key {
		if value, found = current[part]; !found {
			return
		}
		if index == len(key)-1 {
			return
		}

		if current, found = value.(map[string]any); !found {
			return nil, false
		}
	}

	return
}
