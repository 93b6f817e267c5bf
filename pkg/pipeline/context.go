// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"sort"

	"github.com/mesh-intelligence/stencil/pkg/policy"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

// Context is the in-memory accumulator plugins write into during one
// render call. It owns a single path -> bytes map plus read-only access
// to the config and policy. It is created fresh per render, exclusively
// owned by the Renderer, and never performs I/O; existing files enter it
// only through caller-supplied seeding.
type Context struct {
	cfg   project.Config
	pol   policy.Policy
	files map[string][]byte

	// writers maps each path to the plugin ids that wrote it this run,
	// in first-write order with each id recorded once. Seeded files have
	// no writers.
	writers map[string][]string

	// current is the id of the plugin whose Apply is executing; empty
	// outside plugin execution.
	current string
}

// newContext builds a context for one render call, defensively copying
// any caller-supplied existing files.
func newContext(cfg project.Config, pol policy.Policy, existing map[string][]byte) *Context {
	c := &Context{
		cfg:     cfg,
		pol:     pol,
		files:   make(map[string][]byte, len(existing)),
		writers: make(map[string][]string),
	}
	for path, content := range existing {
		c.files[path] = append([]byte(nil), content...)
	}
	return c
}

// AddFile stores content under path, overwriting any previous content.
// At the context level the last write in call order wins; whether that
// overwrite is legal is decided by conflict detection after all phases.
func (c *Context) AddFile(path string, content []byte) {
	c.files[path] = append([]byte(nil), content...)
	if c.current == "" {
		return
	}
	for _, id := range c.writers[path] {
		if id == c.current {
			return
		}
	}
	c.writers[path] = append(c.writers[path], c.current)
}

// HasFile reports whether path is present, either seeded or written.
func (c *Context) HasFile(path string) bool {
	_, ok := c.files[path]
	return ok
}

// GetFile returns a copy of the content stored under path. The copy
// keeps plugins from mutating the map through a retained slice.
func (c *Context) GetFile(path string) ([]byte, bool) {
	content, ok := c.files[path]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), content...), true
}

// Config returns the immutable project configuration.
func (c *Context) Config() project.Config {
	return c.cfg
}

// Policy returns the resolved effective policy.
func (c *Context) Policy() policy.Policy {
	return c.pol
}

// beginPlugin marks the plugin whose writes are being attributed.
func (c *Context) beginPlugin(id string) { c.current = id }

// endPlugin clears write attribution after a plugin's Apply returns.
func (c *Context) endPlugin() { c.current = "" }

// writtenPaths returns the paths written by at least one plugin this
// run, in ascending order. Seeded paths no plugin touched are excluded:
// the run did not produce them.
func (c *Context) writtenPaths() []string {
	out := make([]string, 0, len(c.writers))
	for path := range c.writers {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}
