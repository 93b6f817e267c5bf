// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package stacks

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stencil/pkg/pipeline"
	"github.com/mesh-intelligence/stencil/pkg/project"
)

type goService struct {
	pipeline.Info
}

// NewGoService returns the Go service stack plugin. It emits a main.go
// skeleton and a golangci-lint configuration for projects of type
// "go-service".
func NewGoService() pipeline.Plugin {
	return &goService{Info: pipeline.Info{
		PluginID:      IDGoService,
		PluginVersion: "1.1.0",
		RunPhase:      pipeline.PhaseRender,
	}}
}

func (p *goService) AppliesTo(cfg project.Config) bool {
	return cfg.ProjectType == project.TypeGoService
}

const mainTemplate = `package main

import (
	"log"
	"net/http"
	"os"
)

func main() {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	log.Printf("{{name}} listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
`

type golangciConfig struct {
	Run     golangciRun     `yaml:"run"`
	Linters golangciLinters `yaml:"linters"`
}

type golangciRun struct {
	Timeout string `yaml:"timeout"`
}

type golangciLinters struct {
	Enable []string `yaml:"enable"`
}

func (p *goService) Apply(ctx *pipeline.Context) error {
	name := orDefault(ctx.Config().Name, "app")

	main := strings.ReplaceAll(mainTemplate, "{{name}}", name)
	ctx.AddFile(fmt.Sprintf("cmd/%s/main.go", name), []byte(main))

	enable := []string{"errcheck", "govet", "staticcheck", "unused"}
	if ctx.Policy().Safety.ForbidUnsafeDeps {
		enable = append(enable, "gosec", "depguard")
	}
	lint := golangciConfig{
		Run:     golangciRun{Timeout: "5m"},
		Linters: golangciLinters{Enable: enable},
	}
	data, err := yaml.Marshal(&lint)
	if err != nil {
		return fmt.Errorf("encoding .golangci.yml: %w", err)
	}
	ctx.AddFile(".golangci.yml", data)
	return nil
}
