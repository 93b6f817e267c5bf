// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/mesh-intelligence/stencil/pkg/policy"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

// Renderer drives the generation pipeline against one registry. It is
// deterministic for fixed inputs: two renders with the same config,
// policy, and registered plugins produce byte-identical results.
type Renderer struct {
	registry *Registry
}

// NewRenderer creates a renderer over the given registry.
func NewRenderer(reg *Registry) *Renderer {
	return &Renderer{registry: reg}
}

// Render executes the full pipeline: filter applicable plugins, resolve
// their order, execute phases against one shared context, detect write
// conflicts, normalize content, and assemble the manifest.
//
// existing optionally pre-seeds the context with files already present
// at the destination, letting plugins check HasFile without the pipeline
// performing I/O. Seeded files a plugin never writes are not part of the
// output.
//
// Any failure aborts the whole render; no partial result is returned.
// A plugin apply error propagates to the caller verbatim.
func (r *Renderer) Render(cfg project.Config, pol policy.Policy, existing map[string][]byte) (*Result, error) {
	var applicable []Plugin
	for _, p := range r.registry.All() {
		if p.AppliesTo(cfg) {
			applicable = append(applicable, p)
		}
	}

	ordered, err := ResolveOrder(applicable, r.registry)
	if err != nil {
		return nil, err
	}
	buckets := GroupByPhase(ordered)

	ctx := newContext(cfg, pol, existing)

	// Phases run strictly in the fixed order; within a phase plugins run
	// strictly sequentially in sorted order, each applied synchronously
	// against the one shared context.
	for _, ph := range Phases() {
		for _, p := range buckets[ph] {
			ctx.beginPlugin(p.ID())
			err := p.Apply(ctx)
			ctx.endPlugin()
			if err != nil {
				return nil, err
			}
		}
	}

	if err := r.validate(ctx, buckets); err != nil {
		return nil, err
	}
	if err := r.detectConflicts(ctx); err != nil {
		return nil, err
	}

	paths := ctx.writtenPaths()
	files := make([]File, 0, len(paths))
	entries := make([]ManifestEntry, 0, len(paths))
	for _, path := range paths {
		content := normalizeLineEndings(ctx.files[path])
		files = append(files, File{Path: path, Content: content})
		entries = append(entries, ManifestEntry{Path: path, SHA256: hashBytes(content)})
	}

	configHash, err := HashConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("building manifest: %w", err)
	}

	return &Result{
		Files: files,
		Manifest: Manifest{
			GeneratorVersion: GeneratorVersion,
			PolicyVersion:    pol.Version,
			ConfigHash:       configHash,
			Files:            entries,
		},
	}, nil
}

// validate runs the optional Validate hook of every executed plugin, in
// phase-then-id order. The first invalid result aborts the render.
func (r *Renderer) validate(ctx *Context, buckets map[Phase][]Plugin) error {
	for _, ph := range Phases() {
		for _, p := range buckets[ph] {
			v, ok := p.(Validator)
			if !ok {
				continue
			}
			res := v.Validate(ctx)
			if !res.Valid {
				return &ValidationError{Plugin: p.ID(), Problems: res.Errors}
			}
		}
	}
	return nil
}

// detectConflicts checks every multi-writer path. If any contributing
// plugin declares the error conflict policy the render fails, naming the
// path and all contributing plugin ids. When every contributor declares
// last-wins the overwrite stands: the last plugin to write in
// phase-then-id execution order determined the retained content.
func (r *Renderer) detectConflicts(ctx *Context) error {
	for _, path := range ctx.writtenPaths() {
		writers := ctx.writers[path]
		if len(writers) < 2 {
			continue
		}
		for _, id := range writers {
			p, ok := r.registry.Get(id)
			if !ok {
				continue
			}
			if conflictPolicyOf(p) == ConflictError {
				return &FileConflictError{Path: path, Writers: writers}
			}
		}
	}
	return nil
}
