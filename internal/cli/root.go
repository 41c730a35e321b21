// SPDX-License-Identifier: MIT

// Package cli implements the hierarchyctl commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/hierarchy/v4"
	"gitlab.com/fisherprime/hierarchy/v4/childmap"
	"gitlab.com/fisherprime/hierarchy/v4/proptree"
)

type (
	// app holds the state shared by the commands.
	app struct {
		input  string
		format string
		debug  bool

		logger *logrus.Logger
	}

	idHierarchy = hierarchy.Hierarchy[string, string]
)

// Input formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatTOML = "toml"

	stdinInput = "-"
)

// Execute runs the hierarchyctl CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logrus.New()}

	root := &cobra.Command{
		Use:          "hierarchyctl",
		Short:        "Inspect forests described as child-maps, YAML or TOML documents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.SetOutput(cmd.ErrOrStderr())
			a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if a.debug {
				a.logger.SetLevel(logrus.DebugLevel)
			}
			hierarchy.SetLogger(a.logger)

			switch a.format {
			case formatText, formatYAML, formatTOML:
				return nil
			default:
				return fmt.Errorf("unsupported format (%s)", a.format)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.input, "input", "i", stdinInput, "input file, - for stdin")
	flags.StringVarP(&a.format, "format", "f", formatText, "input format: text, yaml or toml")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		a.newShowCmd(),
		a.newAncestorsCmd(),
		a.newDescendantsCmd(),
		a.newCommonCmd(),
		a.newSearchCmd(),
		a.newRelationsCmd(),
		a.newValidateCmd(),
		a.newGenerateCmd(),
	)

	return root
}

// childMap reads the input as a child-map.
func (a *app) childMap(cmd *cobra.Command) (m *childmap.ChildMap[string], err error) {
	var r io.Reader = cmd.InOrStdin()
	if a.input != stdinInput {
		f, err := os.Open(a.input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	switch a.format {
	case formatYAML:
		m, err = proptree.FromYAML(r, proptree.WithLogger(a.logger), proptree.WithDebug(a.debug))
	case formatTOML:
		m, err = proptree.FromTOML(r, proptree.WithLogger(a.logger), proptree.WithDebug(a.debug))
	default:
		m, err = childmap.Parse(cmd.Context(), r)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s input: %w", a.format, err)
	}

	a.logger.WithFields(logrus.Fields{"entries": m.Len(), "format": a.format}).Debug("input read")

	return
}

// load reads the input as an id Hierarchy.
func (a *app) load(cmd *cobra.Command) (*idHierarchy, error) {
	m, err := a.childMap(cmd)
	if err != nil {
		return nil, err
	}

	return hierarchy.AssembleIDHierarchy(m, hierarchy.WithLogger(a.logger), hierarchy.WithDebug(a.debug))
}

func printIDs(w io.Writer, ids []string) error {
	if len(ids) < 1 {
		return nil
	}

	_, err := fmt.Fprintln(w, strings.Join(ids, "\n"))
	return err
}
