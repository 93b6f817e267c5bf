// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package stacks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stencil/pkg/pipeline"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

const workflowPath = ".github/workflows/ci.yml"

type gitHubActions struct {
	pipeline.Info
}

// NewGitHubActions returns the GitHub Actions provider plugin. It runs
// in the ci phase after the stack plugins and emits one workflow job per
// required check, plus CODEOWNERS when the policy requires code owners.
func NewGitHubActions() pipeline.Plugin {
	return &gitHubActions{Info: pipeline.Info{
		PluginID:      IDGitHubActions,
		PluginVersion: "1.3.1",
		RunPhase:      pipeline.PhaseCI,
		Deps:          []string{IDNextJS, IDGoService},
	}}
}

func (p *gitHubActions) AppliesTo(cfg project.Config) bool {
	return providerEnabled(cfg, IDGitHubActions)
}

type workflow struct {
	Name string         `yaml:"name"`
	On   workflowOn     `yaml:"on"`
	Jobs map[string]job `yaml:"jobs"`
}

type workflowOn struct {
	Push        branchRule `yaml:"push"`
	PullRequest branchRule `yaml:"pull_request"`
}

type branchRule struct {
	Branches []string `yaml:"branches"`
}

type job struct {
	RunsOn string `yaml:"runs-on"`
	Steps  []step `yaml:"steps"`
}

type step struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Run  string            `yaml:"run,omitempty"`
}

func (p *gitHubActions) Apply(ctx *pipeline.Context) error {
	cfg := ctx.Config()
	pol := ctx.Policy()

	jobs := make(map[string]job, len(pol.RequiredChecks))
	for _, check := range pol.RequiredChecks {
		jobs[check] = job{
			RunsOn: "ubuntu-latest",
			Steps: append(setupSteps(cfg), step{
				Name: check,
				Run:  checkCommand(cfg, check),
			}),
		}
	}

	wf := workflow{
		Name: "ci",
		On: workflowOn{
			Push:        branchRule{Branches: []string{"main"}},
			PullRequest: branchRule{Branches: []string{"main"}},
		},
		Jobs: jobs,
	}
	data, err := yaml.Marshal(&wf)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", workflowPath, err)
	}
	ctx.AddFile(workflowPath, data)

	if pol.Process.RequireCodeOwners {
		owners := fmt.Sprintf("* @%s-maintainers\n", orDefault(cfg.Name, "app"))
		ctx.AddFile(".github/CODEOWNERS", []byte(owners))
	}
	return nil
}

// Validate confirms the emitted workflow carries a job for every
// required check.
func (p *gitHubActions) Validate(ctx *pipeline.Context) pipeline.ValidationResult {
	data, ok := ctx.GetFile(workflowPath)
	if !ok {
		return pipeline.ValidationResult{Errors: []string{workflowPath + " was not generated"}}
	}
	var wf workflow
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return pipeline.ValidationResult{Errors: []string{fmt.Sprintf("parsing %s: %v", workflowPath, err)}}
	}
	var missing []string
	for _, check := range ctx.Policy().RequiredChecks {
		if _, ok := wf.Jobs[check]; !ok {
			missing = append(missing, fmt.Sprintf("no job for required check %q", check))
		}
	}
	return pipeline.ValidationResult{Valid: len(missing) == 0, Errors: missing}
}

// setupSteps returns the checkout and toolchain setup steps for the
// project's stack.
func setupSteps(cfg project.Config) []step {
	steps := []step{{Uses: "actions/checkout@v4"}}
	switch cfg.ProjectType {
	case project.TypeGoService:
		steps = append(steps,
			step{Uses: "actions/setup-go@v5", With: map[string]string{"go-version": "stable"}},
		)
	default:
		steps = append(steps,
			step{Uses: "actions/setup-node@v4", With: map[string]string{"node-version": "22"}},
			step{Name: "install", Run: installCommand(cfg.PackageManager)},
		)
	}
	return steps
}

// installCommand returns the dependency install invocation for the
// package manager.
func installCommand(pm string) string {
	switch pm {
	case "pnpm":
		return "pnpm install --frozen-lockfile"
	case "yarn":
		return "yarn install --immutable"
	case "bun":
		return "bun install --frozen-lockfile"
	default:
		return "npm ci"
	}
}

// checkCommand maps a required check to the command its job runs.
func checkCommand(cfg project.Config, check string) string {
	if cfg.ProjectType == project.TypeGoService {
		switch check {
		case "lint":
			return "golangci-lint run"
		case "test":
			return "go test ./..."
		case "typecheck":
			return "go vet ./..."
		case "vulnerability-scan":
			return "govulncheck ./..."
		case "license-audit":
			return "go-licenses check ./..."
		case "sbom":
			return "syft . -o cyclonedx-json"
		}
		return "make " + check
	}

	pm := orDefault(cfg.PackageManager, "npm")
	switch check {
	case "vulnerability-scan":
		return pm + " audit"
	case "license-audit":
		return "npx license-checker --summary"
	case "sbom":
		return "npx @cyclonedx/cyclonedx-npm --output-file sbom.json"
	default:
		return fmt.Sprintf("%s run %s", pm, check)
	}
}
