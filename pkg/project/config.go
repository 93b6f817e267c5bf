// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package project holds the validated project configuration the pipeline
// reads. Consuming tools either construct a Config in Go code or place a
// stencil.yaml at the project root and call Load.
package project

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a configuration that failed validation.
var ErrInvalidConfig = errors.New("invalid project config")

// Known project types.
const (
	TypeNextJS    = "nextjs"
	TypeGoService = "go-service"
)

// projectTypes maps each known project type to its default package
// manager.
var projectTypes = map[string]string{
	TypeNextJS:    "npm",
	TypeGoService: "go",
}

// packageManagers is the set of accepted package manager values.
var packageManagers = map[string]bool{
	"npm":  true,
	"pnpm": true,
	"yarn": true,
	"bun":  true,
	"go":   true,
}

// Config is the immutable, validated project configuration. The pipeline
// only reads it; it is produced and validated before a render starts.
type Config struct {
	// Name is the project name used in generated files (e.g. the
	// package.json name). Defaults to "app" when empty.
	Name string `yaml:"name" json:"name"`

	// ProjectType selects the stack plugin set (e.g. "nextjs").
	ProjectType string `yaml:"project_type" json:"projectType"`

	// PackageManager selects the toolchain generated scripts assume.
	// Defaults per project type.
	PackageManager string `yaml:"package_manager" json:"packageManager"`

	// StrictnessPreset names the policy tier ("startup", "growth",
	// "enterprise"). Validated by policy.Resolve.
	StrictnessPreset string `yaml:"strictness_preset" json:"strictnessPreset"`

	// Providers lists the provider plugins to enable by id
	// (e.g. "github-actions", "editorconfig", "license").
	Providers []string `yaml:"providers,omitempty" json:"providers,omitempty"`
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "app"
	}
	if c.PackageManager == "" {
		c.PackageManager = projectTypes[c.ProjectType]
	}
	if c.StrictnessPreset == "" {
		c.StrictnessPreset = "startup"
	}
}

// Validate checks the enum fields. It does not consult the plugin
// registry or the policy presets; those are validated where they are
// resolved.
func (c Config) Validate() error {
	if c.ProjectType == "" {
		return fmt.Errorf("%w: project_type is required", ErrInvalidConfig)
	}
	if _, ok := projectTypes[c.ProjectType]; !ok {
		return fmt.Errorf("%w: unknown project_type %q", ErrInvalidConfig, c.ProjectType)
	}
	if c.PackageManager != "" && !packageManagers[c.PackageManager] {
		return fmt.Errorf("%w: unknown package_manager %q", ErrInvalidConfig, c.PackageManager)
	}
	return nil
}

// Load reads a configuration YAML file, applies defaults, and validates
// the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
