// SPDX-License-Identifier: MIT
package hierarchy

import (
	"context"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
	"gitlab.com/fisherprime/hierarchy/v4/lexer"
)

// Serialize renders the Hierarchy's child-map as text.
//
// Roots & children keep their attachment order, so the output deserializes to an equal Hierarchy.
// Ids holding a reserved rune fail with childmap.ErrInvalidID.
func (h *Hierarchy[I, K]) Serialize(ctx context.Context, opts ...lexer.Option) (output string, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
	}

	if output, err = childmap.Render(h.ToChildMap(), opts...); err != nil {
		return
	}

	if h.cfg.Debug {
		h.cfg.Logger.Debugf("hierarchy: serialized %d nodes", h.Len())
	}

	return
}
