// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package stacks

import (
	"fmt"

	"github.com/mesh-intelligence/stencil/pkg/pipeline"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

const licenseTemplate = `MIT License

Copyright (c) %d %s

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`

// licenseYear is fixed so renders stay deterministic; bumped on release.
const licenseYear = 2026

type license struct {
	pipeline.Info
}

// NewLicense returns the license provider plugin. It runs in the post
// phase and skips projects that already carry a LICENSE file, which is
// the reason existing-file seeding exists.
func NewLicense() pipeline.Plugin {
	return &license{Info: pipeline.Info{
		PluginID:      IDLicense,
		PluginVersion: "1.0.0",
		RunPhase:      pipeline.PhasePost,
	}}
}

func (p *license) AppliesTo(cfg project.Config) bool {
	return providerEnabled(cfg, IDLicense)
}

func (p *license) Apply(ctx *pipeline.Context) error {
	if ctx.HasFile("LICENSE") {
		return nil
	}
	name := orDefault(ctx.Config().Name, "app")
	ctx.AddFile("LICENSE", []byte(fmt.Sprintf(licenseTemplate, licenseYear, name)))
	return nil
}
