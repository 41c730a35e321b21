// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/hierarchy/v4"
	"gitlab.com/fisherprime/hierarchy/v4/childmap"
	"gitlab.com/fisherprime/hierarchy/v4/random"
	"gitlab.com/fisherprime/hierarchy/v4/traverse"
)

var (
	rootStyle       = lipgloss.NewStyle().Bold(true)
	enumeratorStyle = lipgloss.NewStyle().Faint(true)
)

// errNoCommonAncestor is returned by the common command when the ids share no ancestor.
var errNoCommonAncestor = errors.New("no common ancestor")

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Render the forest as trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.load(cmd)
			if err != nil {
				return err
			}

			for _, root := range h.Roots() {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), renderTree(root)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// renderTree renders the subtree at node.
func renderTree(node *hierarchy.Node[string]) *tree.Tree {
	t := tree.Root(node.Item()).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle).
		RootStyle(rootStyle)

	for _, child := range node.Children() {
		if child.IsLeaf() {
			t.Child(child.Item())
			continue
		}
		t.Child(renderTree(child))
	}

	return t
}

func (a *app) newAncestorsCmd() *cobra.Command {
	var includeSelf bool

	cmd := &cobra.Command{
		Use:   "ancestors ID...",
		Short: "List the ancestors of ids, innermost first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load(cmd)
			if err != nil {
				return err
			}

			ids, err := h.AncestorIDs(args, includeSelf)
			if err != nil {
				return err
			}

			return printIDs(cmd.OutOrStdout(), ids)
		},
	}
	cmd.Flags().BoolVarP(&includeSelf, "self", "s", false, "include the given ids")

	return cmd
}

func (a *app) newDescendantsCmd() *cobra.Command {
	var includeSelf, depthFirst bool

	cmd := &cobra.Command{
		Use:   "descendants ID...",
		Short: "List the descendants of ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load(cmd)
			if err != nil {
				return err
			}

			order := traverse.BreadthFirst
			if depthFirst {
				order = traverse.DepthFirst
			}

			ids, err := h.DescendantIDs(args, includeSelf, traverse.WithOrder(order))
			if err != nil {
				return err
			}

			return printIDs(cmd.OutOrStdout(), ids)
		},
	}
	cmd.Flags().BoolVarP(&includeSelf, "self", "s", false, "include the given ids")
	cmd.Flags().BoolVarP(&depthFirst, "depth-first", "d", false, "walk depth-first")

	return cmd
}

func (a *app) newCommonCmd() *cobra.Command {
	var includeSelf bool

	cmd := &cobra.Command{
		Use:   "common ID...",
		Short: "Find the closest common ancestor of ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load(cmd)
			if err != nil {
				return err
			}

			id, ok := h.FindCommonAncestorID(args, includeSelf)
			if !ok {
				return fmt.Errorf("%v: %w", args, errNoCommonAncestor)
			}

			return printIDs(cmd.OutOrStdout(), []string{id})
		},
	}
	cmd.Flags().BoolVarP(&includeSelf, "self", "s", false, "allow the given ids as the ancestor")

	return cmd
}

func (a *app) newSearchCmd() *cobra.Command {
	var matches, ancestors, descendants bool

	cmd := &cobra.Command{
		Use:   "search ID...",
		Short: "Extract the part of the forest around ids",
		Long: `Extract the part of the forest around ids as a child-map.

Without facet flags, the matches, their ancestors & their descendants are kept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load(cmd)
			if err != nil {
				return err
			}

			var facets []hierarchy.Facet
			if matches {
				facets = append(facets, hierarchy.FacetMatches)
			}
			if ancestors {
				facets = append(facets, hierarchy.FacetAncestors)
			}
			if descendants {
				facets = append(facets, hierarchy.FacetDescendants)
			}

			result, err := h.Search(h.Match(args...), facets...)
			if err != nil {
				return err
			}

			text, err := childmap.Render(result.ToChildMap())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)

			return err
		},
	}
	cmd.Flags().BoolVarP(&matches, "matches", "m", false, "keep the matches")
	cmd.Flags().BoolVarP(&ancestors, "ancestors", "a", false, "keep the ancestors of the matches")
	cmd.Flags().BoolVarP(&descendants, "descendants", "d", false, "keep the descendants of the matches")

	return cmd
}

func (a *app) newRelationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relations",
		Short: "List the edges & isolated ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.childMap(cmd)
			if err != nil {
				return err
			}

			for _, relation := range childmap.ToRelations(m) {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), relation); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the input describes a forest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.childMap(cmd)
			if err != nil {
				return err
			}

			if err = childmap.Validate(m); err != nil {
				var merr *multierror.Error
				if errors.As(err, &merr) {
					for _, violation := range merr.Errors {
						a.logger.Error(violation)
					}
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d entries, roots %v\n", m.Len(), m.RootIDs())

			return err
		},
	}
}

func (a *app) newGenerateCmd() *cobra.Command {
	var (
		roots, depth, maxChildren int
		full                      bool
		seed                      uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random forest child-map",
		Args:  cobra.NoArgs,
		// Generation reads no input.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := random.Generate(
				random.WithRoots(roots), random.WithDepth(depth), random.WithMaxChildren(maxChildren),
				random.WithFull(full), random.WithSeed(seed), random.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			text, err := childmap.Render(m)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)

			return err
		},
	}

	defaults := random.DefConfig()
	cmd.Flags().IntVar(&roots, "roots", defaults.Roots, "number of roots (1-9)")
	cmd.Flags().IntVar(&depth, "depth", defaults.Depth, "deepest level, roots are level 0")
	cmd.Flags().IntVar(&maxChildren, "max-children", defaults.MaxChildren, "children cap (1-9)")
	cmd.Flags().BoolVar(&full, "full", false, "give every internal node the maximum children")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")

	return cmd
}
