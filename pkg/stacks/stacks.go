// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stacks provides the built-in stack and provider plugins: the
// concrete byte producers the pipeline executes. Stack plugins apply by
// project type; provider plugins apply when the config lists them under
// providers.
package stacks

import (
	"github.com/mesh-intelligence/stencil/pkg/pipeline"
	"github.com/mesh-intelligence/stencil/pkg/policy"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

// Plugin ids.
const (
	IDNextJS        = "nextjs"
	IDGoService     = "go-service"
	IDGitHubActions = "github-actions"
	IDEditorConfig  = "editorconfig"
	IDLicense       = "license"
)

// Register wires the built-in plugin set into reg. It panics on a wiring
// error; ids are static, so a failure is a programming mistake.
func Register(reg *pipeline.Registry) {
	reg.MustRegister(NewNextJS())
	reg.MustRegister(NewGoService())
	reg.MustRegister(NewGitHubActions())
	reg.MustRegister(NewEditorConfig())
	reg.MustRegister(NewLicense())
}

// providerEnabled reports whether the config lists the provider id.
func providerEnabled(cfg project.Config, id string) bool {
	for _, p := range cfg.Providers {
		if p == id {
			return true
		}
	}
	return false
}

// orDefault returns val if non-empty, otherwise fallback.
func orDefault(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}

// versionRange renders a dependency version according to the policy's
// version posture.
func versionRange(posture policy.Posture, exact string) string {
	switch posture {
	case policy.PosturePinnedExact:
		return exact
	case policy.PosturePinnedMinor:
		return "~" + exact
	default:
		return "^" + exact
	}
}
