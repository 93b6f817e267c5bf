// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/pkg/pipeline"
	"github.com/mesh-intelligence/stencil/pkg/stacks"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List the built-in plugins",
	Args:  cobra.NoArgs,
	RunE:  runPlugins,
}

func runPlugins(cmd *cobra.Command, args []string) error {
	reg := pipeline.NewRegistry()
	stacks.Register(reg)

	plugins := reg.All()
	sort.Slice(plugins, func(i, j int) bool { return plugins[i].ID() < plugins[j].ID() })

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVERSION\tPHASE\tDEPENDENCIES")
	for _, p := range plugins {
		phase := p.Phase()
		if phase == "" {
			phase = pipeline.PhaseRender
		}
		deps := strings.Join(p.Dependencies(), ", ")
		if deps == "" {
			deps = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID(), p.Version(), phase, deps)
	}
	return w.Flush()
}
