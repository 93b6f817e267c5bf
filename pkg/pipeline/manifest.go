// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/stencil/pkg/project"
)

// GeneratorVersion is recorded in every manifest.
const GeneratorVersion = "0.6.1"

// Manifest is the record of a generation run: versions, config hash, and
// per-file content hashes. Files is always sorted ascending by path.
type Manifest struct {
	GeneratorVersion string          `json:"generatorVersion"`
	PolicyVersion    string          `json:"policyVersion"`
	ConfigHash       string          `json:"configHash"`
	Files            []ManifestEntry `json:"files"`
}

// ManifestEntry records one output file and the SHA-256 of its
// normalized content.
type ManifestEntry struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
}

// File is one produced output: a path and its normalized content.
type File struct {
	Path    string
	Content []byte
}

// Result is the sole value returned by a successful render: the sorted
// file list plus the manifest. It is immutable once returned.
type Result struct {
	Files    []File
	Manifest Manifest
}

// FileMap returns the result's files as a path -> content map.
func (r *Result) FileMap() map[string][]byte {
	out := make(map[string][]byte, len(r.Files))
	for _, f := range r.Files {
		out[f.Path] = f.Content
	}
	return out
}

// hashBytes returns the hex SHA-256 digest of b.
func hashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// HashConfig returns the hex SHA-256 of the canonical serialization of
// cfg. The config is round-tripped through a generic map so the final
// encoding uses sorted keys: structurally equal configs hash identically
// regardless of how they were built.
func HashConfig(cfg project.Config) (string, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("serializing config: %w", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("canonicalizing config: %w", err)
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("canonicalizing config: %w", err)
	}
	return hashBytes(canonical), nil
}
