// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package stacks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stencil/pkg/pipeline"
	"github.com/mesh-intelligence/stencil/pkg/policy"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

// render runs the full pipeline with the built-in plugin set.
func render(t *testing.T, cfg project.Config, existing map[string][]byte) *pipeline.Result {
	t.Helper()
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	pol, err := policy.Resolve(cfg)
	require.NoError(t, err)

	reg := pipeline.NewRegistry()
	Register(reg)
	res, err := pipeline.NewRenderer(reg).Render(cfg, pol, existing)
	require.NoError(t, err)
	return res
}

func TestNextJSStartup(t *testing.T) {
	cfg := project.Config{Name: "shop", ProjectType: project.TypeNextJS}
	res := render(t, cfg, nil)

	m := res.FileMap()
	require.Contains(t, m, "package.json")
	require.Contains(t, m, "tsconfig.json")

	pkg := string(m["package.json"])
	assert.Contains(t, pkg, `"name": "shop"`)
	assert.Contains(t, pkg, `"next": "^15.3.2"`)
	assert.Contains(t, pkg, `"react": "^19.1.0"`)
	assert.Contains(t, pkg, `"typescript": "^5.8.3"`)

	assert.Contains(t, string(m["tsconfig.json"]), `"strict": true`)

	// Manifest entries come out sorted by path.
	paths := make([]string, 0, len(res.Manifest.Files))
	for _, e := range res.Manifest.Files {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"package.json", "tsconfig.json"}, paths)
}

func TestNextJSVersionPosture(t *testing.T) {
	tests := []struct {
		preset string
		want   string
	}{
		{"startup", `"next": "^15.3.2"`},
		{"growth", `"next": "~15.3.2"`},
		{"enterprise", `"next": "15.3.2"`},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			cfg := project.Config{ProjectType: project.TypeNextJS, StrictnessPreset: tt.preset}
			res := render(t, cfg, nil)
			assert.Contains(t, string(res.FileMap()["package.json"]), tt.want)
		})
	}
}

func TestRenderDeterministicAcrossRuns(t *testing.T) {
	cfg := project.Config{
		Name:        "shop",
		ProjectType: project.TypeNextJS,
		Providers:   []string{IDGitHubActions, IDEditorConfig, IDLicense},
	}

	first := render(t, cfg, nil)
	second := render(t, cfg, nil)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("renders differ (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Manifest.ConfigHash, second.Manifest.ConfigHash)
}

func TestGoService(t *testing.T) {
	cfg := project.Config{Name: "gateway", ProjectType: project.TypeGoService}
	res := render(t, cfg, nil)

	m := res.FileMap()
	require.Contains(t, m, "cmd/gateway/main.go")
	require.Contains(t, m, ".golangci.yml")

	main := string(m["cmd/gateway/main.go"])
	assert.Contains(t, main, "package main")
	assert.Contains(t, main, `log.Printf("gateway listening on %s", addr)`)

	lint := string(m[".golangci.yml"])
	assert.Contains(t, lint, "staticcheck")
	assert.NotContains(t, lint, "gosec") // startup does not forbid unsafe deps
}

func TestGoServiceGrowthEnablesSecurityLinters(t *testing.T) {
	cfg := project.Config{ProjectType: project.TypeGoService, StrictnessPreset: "growth"}
	res := render(t, cfg, nil)

	lint := string(res.FileMap()[".golangci.yml"])
	assert.Contains(t, lint, "gosec")
	assert.Contains(t, lint, "depguard")
}

func TestGitHubActionsWorkflow(t *testing.T) {
	cfg := project.Config{
		Name:             "shop",
		ProjectType:      project.TypeNextJS,
		StrictnessPreset: "growth",
		Providers:        []string{IDGitHubActions},
	}
	res := render(t, cfg, nil)

	data, ok := res.FileMap()[".github/workflows/ci.yml"]
	require.True(t, ok)

	var wf struct {
		Name string `yaml:"name"`
		Jobs map[string]struct {
			Steps []struct {
				Name string `yaml:"name"`
				Uses string `yaml:"uses"`
				Run  string `yaml:"run"`
			} `yaml:"steps"`
		} `yaml:"jobs"`
	}
	require.NoError(t, yaml.Unmarshal(data, &wf))

	assert.Equal(t, "ci", wf.Name)
	for _, check := range []string{"lint", "test", "typecheck", "vulnerability-scan"} {
		assert.Contains(t, wf.Jobs, check)
	}

	lint := wf.Jobs["lint"]
	require.NotEmpty(t, lint.Steps)
	assert.Equal(t, "actions/checkout@v4", lint.Steps[0].Uses)
	assert.Equal(t, "npm run lint", lint.Steps[len(lint.Steps)-1].Run)

	// CODEOWNERS only appears when the policy requires code owners.
	assert.NotContains(t, res.FileMap(), ".github/CODEOWNERS")
}

func TestGitHubActionsEnterpriseCodeOwners(t *testing.T) {
	cfg := project.Config{
		Name:             "bank",
		ProjectType:      project.TypeGoService,
		StrictnessPreset: "enterprise",
		Providers:        []string{IDGitHubActions},
	}
	res := render(t, cfg, nil)

	m := res.FileMap()
	assert.Equal(t, "* @bank-maintainers\n", string(m[".github/CODEOWNERS"]))

	wf := string(m[".github/workflows/ci.yml"])
	assert.Contains(t, wf, "golangci-lint run")
	assert.Contains(t, wf, "govulncheck ./...")
	assert.Contains(t, wf, "syft . -o cyclonedx-json")
}

func TestEditorConfigProvider(t *testing.T) {
	with := render(t, project.Config{ProjectType: project.TypeNextJS, Providers: []string{IDEditorConfig}}, nil)
	assert.Contains(t, with.FileMap(), ".editorconfig")

	without := render(t, project.Config{ProjectType: project.TypeNextJS}, nil)
	assert.NotContains(t, without.FileMap(), ".editorconfig")
}

func TestLicenseProvider(t *testing.T) {
	cfg := project.Config{Name: "shop", ProjectType: project.TypeNextJS, Providers: []string{IDLicense}}

	res := render(t, cfg, nil)
	lic := string(res.FileMap()["LICENSE"])
	assert.Contains(t, lic, "MIT License")
	assert.Contains(t, lic, "Copyright (c) 2026 shop")
}

func TestLicenseSkipsExistingFile(t *testing.T) {
	cfg := project.Config{ProjectType: project.TypeNextJS, Providers: []string{IDLicense}}
	existing := map[string][]byte{"LICENSE": []byte("Apache-2.0, hands off")}

	res := render(t, cfg, existing)
	assert.NotContains(t, res.FileMap(), "LICENSE")
}

func TestRegisterIsReRegistrable(t *testing.T) {
	// Two independent registries must not interfere.
	a, b := pipeline.NewRegistry(), pipeline.NewRegistry()
	Register(a)
	Register(b)
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 5, b.Len())
}

func TestVersionRange(t *testing.T) {
	assert.Equal(t, "^1.2.3", versionRange(policy.PostureLatestMajor, "1.2.3"))
	assert.Equal(t, "~1.2.3", versionRange(policy.PosturePinnedMinor, "1.2.3"))
	assert.Equal(t, "1.2.3", versionRange(policy.PosturePinnedExact, "1.2.3"))
}
