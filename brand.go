// SPDX-License-Identifier: MIT
package hierarchy

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Branding errors.
var (
	ErrInvalidBrand   = errors.New("invalid brand")
	ErrAlreadyBranded = errors.New("is already branded")
)

// Brand locks the Node to the owner identified by token.
//
// The returned unbrand function clears the brand; it may be called repeatedly.
func (n *Node[I]) Brand(token uuid.UUID) (unbrand func(), err error) {
	if token == uuid.Nil {
		err = fmt.Errorf("%w (%v)", ErrInvalidBrand, token)
		return
	}
	if n.IsBranded() {
		err = fmt.Errorf(nodeFmt, n.item, ErrAlreadyBranded)
		return
	}

	n.brand = token

	released := false
	unbrand = func() {
		if released {
			return
		}
		released = true

		if n.brand == token {
			n.brand = uuid.Nil
		}
	}

	return
}

// BrandToken retrieves the Node's brand, uuid.Nil when unbranded.
func (n *Node[I]) BrandToken() uuid.UUID { return n.brand }

// IsBranded checks whether the Node is locked to an owner.
func (n *Node[I]) IsBranded() bool { return n.brand != uuid.Nil }

// IsBrandCompatible checks whether the Node & other may be linked.
//
// Both must be unbranded or share the brand.
func (n *Node[I]) IsBrandCompatible(other *Node[I]) bool { return n.brand == other.brand }
