// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pipeline implements the deterministic generation pipeline:
// plugin registration, dependency resolution, phase-ordered execution,
// conflict detection, content normalization, and manifest construction.
//
// The pipeline performs no I/O and no logging. It operates on in-memory
// data, calls plugin code synchronously, and either returns a complete
// Result or fails with an error describing why no output was produced.
package pipeline

import (
	"github.com/mesh-intelligence/stencil/pkg/project"
)

// Phase is one of the four fixed execution stages. Phases always run in
// the order pre, render, post, ci.
type Phase string

const (
	PhasePre    Phase = "pre"
	PhaseRender Phase = "render"
	PhasePost   Phase = "post"
	PhaseCI     Phase = "ci"
)

// phaseOrder is the fixed execution sequence.
var phaseOrder = [4]Phase{PhasePre, PhaseRender, PhasePost, PhaseCI}

// Phases returns the fixed phase execution order.
func Phases() []Phase {
	return append([]Phase(nil), phaseOrder[:]...)
}

// validPhase reports whether p names a known phase. The empty string is
// valid and means "defaulted to render".
func validPhase(p Phase) bool {
	switch p {
	case "", PhasePre, PhaseRender, PhasePost, PhaseCI:
		return true
	}
	return false
}

// ConflictPolicy declares how a plugin treats another plugin writing the
// same output path.
type ConflictPolicy string

const (
	// ConflictError aborts the whole render when the path has more than
	// one writer. This is the default.
	ConflictError ConflictPolicy = "error"

	// ConflictLastWins tolerates the overwrite; the last plugin to write
	// the path in phase-then-id order determines the retained content.
	ConflictLastWins ConflictPolicy = "last-wins"
)

// Plugin is a unit of generation logic that conditionally contributes
// files given a project configuration. Plugins are supplied by stack and
// provider packages; the pipeline treats them as opaque.
type Plugin interface {
	// ID is the globally unique identifier within a registry.
	ID() string

	// Version is the plugin's own version string, independent of the
	// generator version.
	Version() string

	// Dependencies lists the ids of plugins that must execute before
	// this one. Every listed id must be registered.
	Dependencies() []string

	// Phase is the declared execution phase. An empty value defaults
	// to render.
	Phase() Phase

	// ConflictPolicy is the declared conflict handling. An empty value
	// defaults to error.
	ConflictPolicy() ConflictPolicy

	// AppliesTo reports whether the plugin participates in a render for
	// the given configuration.
	AppliesTo(cfg project.Config) bool

	// Apply contributes files to the context. An error aborts the whole
	// render and is propagated to the caller verbatim.
	Apply(ctx *Context) error
}

// Validator is optionally implemented by plugins that want a final check
// over the assembled context after all phases have executed.
type Validator interface {
	Validate(ctx *Context) ValidationResult
}

// ValidationResult is the outcome of a plugin's Validate call.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Info carries a plugin's static descriptor fields and implements the
// descriptor half of the Plugin interface. Concrete plugins embed an
// Info and add AppliesTo and Apply.
type Info struct {
	PluginID      string
	PluginVersion string
	Deps          []string
	RunPhase      Phase
	OnConflict    ConflictPolicy
}

func (i Info) ID() string                     { return i.PluginID }
func (i Info) Version() string                { return i.PluginVersion }
func (i Info) Dependencies() []string         { return i.Deps }
func (i Info) Phase() Phase                   { return i.RunPhase }
func (i Info) ConflictPolicy() ConflictPolicy { return i.OnConflict }

// phaseOf returns the plugin's phase with the default applied.
func phaseOf(p Plugin) Phase {
	if ph := p.Phase(); ph != "" {
		return ph
	}
	return PhaseRender
}

// conflictPolicyOf returns the plugin's conflict policy with the default
// applied.
func conflictPolicyOf(p Plugin) ConflictPolicy {
	if cp := p.ConflictPolicy(); cp != "" {
		return cp
	}
	return ConflictError
}
