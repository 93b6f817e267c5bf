// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package stacks

import (
	"github.com/mesh-intelligence/stencil/pkg/pipeline"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

const editorConfigContent = `root = true

[*]
charset = utf-8
end_of_line = lf
insert_final_newline = true
indent_style = space
indent_size = 2

[*.go]
indent_style = tab
`

type editorConfig struct {
	pipeline.Info
}

// NewEditorConfig returns the editorconfig provider plugin. It runs in
// the pre phase so later plugins can inspect the conventions it sets.
func NewEditorConfig() pipeline.Plugin {
	return &editorConfig{Info: pipeline.Info{
		PluginID:      IDEditorConfig,
		PluginVersion: "1.0.2",
		RunPhase:      pipeline.PhasePre,
	}}
}

func (p *editorConfig) AppliesTo(cfg project.Config) bool {
	return providerEnabled(cfg, IDEditorConfig)
}

func (p *editorConfig) Apply(ctx *pipeline.Context) error {
	ctx.AddFile(".editorconfig", []byte(editorConfigContent))
	return nil
}
