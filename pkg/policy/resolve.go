// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package policy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mesh-intelligence/stencil/pkg/project"
)

// ErrUnknownPreset reports a strictness preset with no definition.
var ErrUnknownPreset = errors.New("unknown strictness preset")

// overlay is a preset's delta over the base policy. Pointer fields mean
// "not overridden": a preset touching one nested flag leaves sibling
// flags at their base values.
type overlay struct {
	requiredChecks []string
	posture        Posture
	safety         safetyOverlay
	process        processOverlay
}

type safetyOverlay struct {
	strictTypeChecks *bool
	forbidUnsafeDeps *bool
	sandboxScripts   *bool
}

type processOverlay struct {
	requireCodeOwners *bool
	requireAuditTrail *bool
}

// presets defines the three strictness tiers. Required-check sets grow
// strictly from tier to tier and the version posture tightens from
// latest-major through pinned-minor to pinned-exact. Process
// requirements turn on only at the strictest tier.
var presets = map[string]overlay{
	"startup": {
		requiredChecks: []string{"lint", "test"},
		posture:        PostureLatestMajor,
	},
	"growth": {
		requiredChecks: []string{"lint", "test", "typecheck", "vulnerability-scan"},
		posture:        PosturePinnedMinor,
		safety: safetyOverlay{
			forbidUnsafeDeps: on(),
		},
	},
	"enterprise": {
		requiredChecks: []string{"lint", "test", "typecheck", "vulnerability-scan", "license-audit", "sbom"},
		posture:        PosturePinnedExact,
		safety: safetyOverlay{
			forbidUnsafeDeps: on(),
			sandboxScripts:   on(),
		},
		process: processOverlay{
			requireCodeOwners: on(),
			requireAuditTrail: on(),
		},
	},
}

func on() *bool {
	v := true
	return &v
}

// Presets returns the defined preset names in ascending order.
func Presets() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve merges the base policy with the preset matching the config's
// strictness preset and returns the effective policy.
func Resolve(cfg project.Config) (Policy, error) {
	ov, ok := presets[cfg.StrictnessPreset]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPreset, cfg.StrictnessPreset)
	}

	p := base()
	if ov.requiredChecks != nil {
		p.RequiredChecks = append([]string(nil), ov.requiredChecks...)
	}
	if ov.posture != "" {
		p.VersionPosture = ov.posture
	}
	p.Safety = mergeSafety(p.Safety, ov.safety)
	p.Process = mergeProcess(p.Process, ov.process)
	return p, nil
}

// mergeSafety overlays the runtime-safety group field by field.
func mergeSafety(b SafetyFlags, ov safetyOverlay) SafetyFlags {
	if ov.strictTypeChecks != nil {
		b.StrictTypeChecks = *ov.strictTypeChecks
	}
	if ov.forbidUnsafeDeps != nil {
		b.ForbidUnsafeDeps = *ov.forbidUnsafeDeps
	}
	if ov.sandboxScripts != nil {
		b.SandboxScripts = *ov.sandboxScripts
	}
	return b
}

// mergeProcess overlays the process group field by field.
func mergeProcess(b ProcessFlags, ov processOverlay) ProcessFlags {
	if ov.requireCodeOwners != nil {
		b.RequireCodeOwners = *ov.requireCodeOwners
	}
	if ov.requireAuditTrail != nil {
		b.RequireAuditTrail = *ov.requireAuditTrail
	}
	return b
}
