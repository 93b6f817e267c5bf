// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stencil/pkg/project"
)

func TestHashConfig_StructurallyEqualConfigsHashIdentically(t *testing.T) {
	a := project.Config{Name: "demo", ProjectType: "nextjs", PackageManager: "npm", StrictnessPreset: "startup"}
	b := project.Config{StrictnessPreset: "startup", PackageManager: "npm", ProjectType: "nextjs", Name: "demo"}

	ha, err := HashConfig(a)
	require.NoError(t, err)
	hb, err := HashConfig(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
	assert.Len(t, ha, 64) // hex sha-256
}

func TestHashConfig_SensitiveToAnyField(t *testing.T) {
	base := testConfig()
	baseHash, err := HashConfig(base)
	require.NoError(t, err)

	changed := base
	changed.PackageManager = "pnpm"
	changedHash, err := HashConfig(changed)
	require.NoError(t, err)

	assert.NotEqual(t, baseHash, changedHash)
}

func TestResult_FileMap(t *testing.T) {
	res := &Result{Files: []File{
		{Path: "a", Content: []byte("1")},
		{Path: "b", Content: []byte("2")},
	}}
	m := res.FileMap()
	require.Len(t, m, 2)
	assert.Equal(t, "1", string(m["a"]))
	assert.Equal(t, "2", string(m["b"]))
}

func TestHashBytes(t *testing.T) {
	// sha256("") is a well-known constant.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hashBytes(nil))
}
