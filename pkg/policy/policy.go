// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package policy defines the effective ruleset a render runs under and
// resolves it from a project's strictness preset. Policies are explicit
// structs merged field by field; there is no reflection-based merging.
package policy

// Version identifies the policy schema; it is recorded in manifests as
// policyVersion.
const Version = "1.4.0"

// Posture is the version-pinning stance generated files follow when they
// reference third-party package versions.
type Posture string

const (
	PostureLatestMajor Posture = "latest-major"
	PosturePinnedMinor Posture = "pinned-minor"
	PosturePinnedExact Posture = "pinned-exact"
)

// SafetyFlags are the runtime-safety switches generated configuration
// honors.
type SafetyFlags struct {
	StrictTypeChecks bool `yaml:"strict_type_checks"`
	ForbidUnsafeDeps bool `yaml:"forbid_unsafe_deps"`
	SandboxScripts   bool `yaml:"sandbox_scripts"`
}

// ProcessFlags are the development-process requirements a preset can
// turn on.
type ProcessFlags struct {
	RequireCodeOwners bool `yaml:"require_code_owners"`
	RequireAuditTrail bool `yaml:"require_audit_trail"`
}

// Policy is the resolved, effective ruleset for one render. Immutable
// once resolved.
type Policy struct {
	Version        string       `yaml:"version"`
	RequiredChecks []string     `yaml:"required_checks"`
	VersionPosture Posture      `yaml:"version_posture"`
	Safety         SafetyFlags  `yaml:"safety"`
	Process        ProcessFlags `yaml:"process"`
}

// base returns the fixed base policy every preset overlays.
func base() Policy {
	return Policy{
		Version:        Version,
		RequiredChecks: []string{"lint", "test"},
		VersionPosture: PostureLatestMajor,
		Safety: SafetyFlags{
			StrictTypeChecks: true,
		},
	}
}
