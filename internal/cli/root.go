// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cli implements the stencil command line interface. All I/O —
// reading configs, scanning existing files, writing output — happens
// here; the pipeline packages stay pure.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stencil/internal/logging"
	"github.com/mesh-intelligence/stencil/pkg/pipeline"
)

var (
	logLevel string
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:           "stencil",
	Short:         "Deterministic project scaffolding generator",
	Long:          "stencil renders a project scaffold from a validated configuration and a\nresolved policy, producing output files plus a manifest proving what was\nproduced and why.",
	Version:       pipeline.GeneratorVersion,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(pluginsCmd)
	rootCmd.AddCommand(policyCmd)
}

// Execute runs the CLI, exiting non-zero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the run logger from the persistent flags.
func newLogger() (*zap.Logger, error) {
	return logging.New(logLevel, logJSON)
}
