// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Item type holding token, value & item type of scanned rune
	Item struct {
		Err  error
		Val  string // The value of this Item
		ID   ItemID // The type of this Item
		Line int    // The line, starting at 1, holding this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_             = iota // Consume 0 to start actual numbering at 1.
	ItemError            // Notify occurrence of an `error`.
	ItemSeparator        // ':'.
	ItemSplitter         // ','.
	ItemLineEnd          // '\n'.
	ItemEOF              // End of the file
	ItemValue            // Identifier data.
)

func (i ItemID) String() string {
	switch i {
	case ItemError:
		return "error"
	case ItemSeparator:
		return "separator"
	case ItemSplitter:
		return "splitter"
	case ItemLineEnd:
		return "line end"
	case ItemEOF:
		return "EOF"
	case ItemValue:
		return "value"
	default:
		return fmt.Sprintf("item(%d)", int(i))
	}
}
