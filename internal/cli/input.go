// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/mesh-intelligence/stencil/pkg/project"
)

// envPrefix is the namespace for environment overrides. STENCIL_PROJECT_TYPE
// overrides project_type, STENCIL_STRICTNESS_PRESET overrides
// strictness_preset, and so on.
const envPrefix = "STENCIL_"

// loadConfig layers the YAML config file and STENCIL_ environment
// variables (env wins), then applies defaults and validates.
func loadConfig(path string) (project.Config, error) {
	k := koanf.New(".")

	data, err := os.ReadFile(path)
	if err != nil {
		return project.Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := k.Load(rawbytes.Provider(data), kyaml.Parser()); err != nil {
		return project.Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return project.Config{}, fmt.Errorf("reading environment overrides: %w", err)
	}

	cfg := project.Config{
		Name:             k.String("name"),
		ProjectType:      k.String("project_type"),
		PackageManager:   k.String("package_manager"),
		StrictnessPreset: k.String("strictness_preset"),
		Providers:        k.Strings("providers"),
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return project.Config{}, err
	}
	return cfg, nil
}
