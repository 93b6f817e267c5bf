// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stencil/pkg/policy"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

var presetName string

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Print the resolved effective policy for a strictness preset",
	Args:  cobra.NoArgs,
	RunE:  runPolicy,
}

func init() {
	policyCmd.Flags().StringVar(&presetName, "preset", "startup",
		"strictness preset ("+strings.Join(policy.Presets(), ", ")+")")
}

func runPolicy(cmd *cobra.Command, args []string) error {
	pol, err := policy.Resolve(project.Config{StrictnessPreset: presetName})
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(&pol)
	if err != nil {
		return fmt.Errorf("encoding policy: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s", data)
	return nil
}
