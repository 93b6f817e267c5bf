// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
)

// Registry is a lookup table from plugin id to plugin instance. It is an
// explicit owned collection passed to the Renderer; there is no
// process-wide instance. Access is single-threaded, matching the
// pipeline's synchronous execution model.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register adds a plugin. It fails with ErrDuplicatePlugin if the id is
// already present, and rejects empty ids and unknown phases outright so
// that later stages can rely on well-formed descriptors.
func (r *Registry) Register(p Plugin) error {
	id := p.ID()
	if id == "" {
		return fmt.Errorf("register: plugin id is required")
	}
	if !validPhase(p.Phase()) {
		return fmt.Errorf("register %s: unknown phase %q", id, p.Phase())
	}
	if _, exists := r.plugins[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePlugin, id)
	}
	r.plugins[id] = p
	return nil
}

// MustRegister registers a plugin and panics on error. Use for static
// wiring of built-in plugin sets at startup.
func (r *Registry) MustRegister(p Plugin) {
	if err := r.Register(p); err != nil {
		panic(fmt.Sprintf("registering plugin %s: %v", p.ID(), err))
	}
}

// Get returns the plugin with the given id.
func (r *Registry) Get(id string) (Plugin, bool) {
	p, ok := r.plugins[id]
	return p, ok
}

// Has reports whether a plugin with the given id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.plugins[id]
	return ok
}

// All returns every registered plugin. The order is not significant;
// callers must not rely on it and the Renderer never does.
func (r *Registry) All() []Plugin {
	out := make([]Plugin, 0, len(r.plugins))
	for _, p := range r.plugins {
		out = append(out, p)
	}
	return out
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.plugins)
}
