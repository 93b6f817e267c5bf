// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package stacks

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/stencil/pkg/pipeline"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

// Pinned upstream versions the posture ranges are derived from.
const (
	nextVersion       = "15.3.2"
	reactVersion      = "19.1.0"
	typescriptVersion = "5.8.3"
)

type nextJS struct {
	pipeline.Info
}

// NewNextJS returns the Next.js stack plugin. It emits package.json and
// tsconfig.json for projects of type "nextjs".
func NewNextJS() pipeline.Plugin {
	return &nextJS{Info: pipeline.Info{
		PluginID:      IDNextJS,
		PluginVersion: "1.2.0",
		RunPhase:      pipeline.PhaseRender,
	}}
}

func (p *nextJS) AppliesTo(cfg project.Config) bool {
	return cfg.ProjectType == project.TypeNextJS
}

type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type tsConfigJSON struct {
	CompilerOptions tsCompilerOptions `json:"compilerOptions"`
	Include         []string          `json:"include"`
	Exclude         []string          `json:"exclude"`
}

type tsCompilerOptions struct {
	Target           string `json:"target"`
	Module           string `json:"module"`
	ModuleResolution string `json:"moduleResolution"`
	Strict           bool   `json:"strict"`
	SkipLibCheck     bool   `json:"skipLibCheck"`
	NoEmit           bool   `json:"noEmit"`
	Jsx              string `json:"jsx"`
}

func (p *nextJS) Apply(ctx *pipeline.Context) error {
	cfg := ctx.Config()
	pol := ctx.Policy()
	posture := pol.VersionPosture

	pkg := packageJSON{
		Name:    orDefault(cfg.Name, "app"),
		Version: "0.1.0",
		Private: true,
		Scripts: map[string]string{
			"dev":   "next dev",
			"build": "next build",
			"start": "next start",
			"lint":  "next lint",
			"test":  "vitest run",
		},
		Dependencies: map[string]string{
			"next":      versionRange(posture, nextVersion),
			"react":     versionRange(posture, reactVersion),
			"react-dom": versionRange(posture, reactVersion),
		},
		DevDependencies: map[string]string{
			"typescript": versionRange(posture, typescriptVersion),
		},
	}
	if err := addJSON(ctx, "package.json", pkg); err != nil {
		return err
	}

	ts := tsConfigJSON{
		CompilerOptions: tsCompilerOptions{
			Target:           "es2022",
			Module:           "esnext",
			ModuleResolution: "bundler",
			Strict:           pol.Safety.StrictTypeChecks,
			SkipLibCheck:     true,
			NoEmit:           true,
			Jsx:              "preserve",
		},
		Include: []string{"**/*.ts", "**/*.tsx"},
		Exclude: []string{"node_modules"},
	}
	return addJSON(ctx, "tsconfig.json", ts)
}

// addJSON marshals v with two-space indentation and stores it under
// path with a trailing newline. encoding/json emits map keys sorted, so
// the bytes are deterministic.
func addJSON(ctx *pipeline.Context, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	ctx.AddFile(path, append(data, '\n'))
	return nil
}
