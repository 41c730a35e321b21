// SPDX-License-Identifier: MIT
package traverse

type (
	// Order selects the traversal discipline.
	Order uint8

	// Option defines the traversal functional option type.
	Option func(*config)

	config struct {
		order        Order
		includeSelf  bool
		reverse      bool
		detectCycles bool
	}
)

// Traversal disciplines.
const (
	BreadthFirst Order = iota
	DepthFirst
)

func (o Order) String() string {
	switch o {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	default:
		return "unknown"
	}
}

func newConfig(includeSelf bool, opts []Option) (cfg config) {
	cfg.includeSelf = includeSelf
	for _, opt := range opts {
		opt(&cfg)
	}

	return
}

// WithOrder configures the traversal discipline, breadth-first by default.
func WithOrder(order Order) Option { return func(c *config) { c.order = order } }

// WithIncludeSelf configures whether the starting nodes are yielded.
func WithIncludeSelf(include bool) Option { return func(c *config) { c.includeSelf = include } }

// WithReverse configures the traversal to visit siblings last to first.
func WithReverse(reverse bool) Option { return func(c *config) { c.reverse = reverse } }

// WithCycleDetection configures the traversal to drop nodes it has already visited.
func WithCycleDetection(detect bool) Option { return func(c *config) { c.detectCycles = detect } }
