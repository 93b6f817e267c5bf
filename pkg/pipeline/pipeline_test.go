// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/mesh-intelligence/stencil/pkg/policy"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

// fakePlugin is the configurable test double used across the package
// tests. Zero-value applies/apply mean "applies to everything" and
// "writes nothing".
type fakePlugin struct {
	id       string
	version  string
	deps     []string
	phase    Phase
	conflict ConflictPolicy
	applies  func(project.Config) bool
	apply    func(*Context) error
}

func (p *fakePlugin) ID() string                     { return p.id }
func (p *fakePlugin) Version() string                { return p.version }
func (p *fakePlugin) Dependencies() []string         { return p.deps }
func (p *fakePlugin) Phase() Phase                   { return p.phase }
func (p *fakePlugin) ConflictPolicy() ConflictPolicy { return p.conflict }

func (p *fakePlugin) AppliesTo(cfg project.Config) bool {
	if p.applies == nil {
		return true
	}
	return p.applies(cfg)
}

func (p *fakePlugin) Apply(ctx *Context) error {
	if p.apply == nil {
		return nil
	}
	return p.apply(ctx)
}

// validatingPlugin adds a Validate hook to fakePlugin.
type validatingPlugin struct {
	fakePlugin
	validate func(*Context) ValidationResult
}

func (p *validatingPlugin) Validate(ctx *Context) ValidationResult {
	return p.validate(ctx)
}

// plug builds a minimal applicable plugin with the given id.
func plug(id string, deps ...string) *fakePlugin {
	return &fakePlugin{id: id, version: "1.0.0", deps: deps}
}

// writer builds a plugin that writes content under path when applied.
func writer(id, path, content string) *fakePlugin {
	p := plug(id)
	p.apply = func(ctx *Context) error {
		ctx.AddFile(path, []byte(content))
		return nil
	}
	return p
}

// testConfig is the fixed config used where the test only needs a valid
// value.
func testConfig() project.Config {
	return project.Config{
		Name:             "demo",
		ProjectType:      project.TypeNextJS,
		PackageManager:   "npm",
		StrictnessPreset: "startup",
	}
}

// testPolicy resolves the effective policy for testConfig.
func testPolicy() policy.Policy {
	pol, err := policy.Resolve(testConfig())
	if err != nil {
		panic(err)
	}
	return pol
}

// registryOf registers the given plugins, panicking on wiring errors.
func registryOf(plugins ...Plugin) *Registry {
	reg := NewRegistry()
	for _, p := range plugins {
		reg.MustRegister(p)
	}
	return reg
}
