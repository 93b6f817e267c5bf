// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(plug("a")))
	require.NoError(t, reg.Register(plug("b")))
	assert.Equal(t, 2, reg.Len())

	p, ok := reg.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", p.ID())

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_DuplicateID(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(plug("a")))

	err := reg.Register(plug("a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicatePlugin)
	assert.Contains(t, err.Error(), "a")
}

func TestRegistry_EmptyID(t *testing.T) {
	err := NewRegistry().Register(plug(""))
	require.Error(t, err)
}

func TestRegistry_UnknownPhase(t *testing.T) {
	p := plug("a")
	p.phase = "deploy"
	err := NewRegistry().Register(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deploy")
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	reg := registryOf(plug("a"))
	assert.Panics(t, func() { reg.MustRegister(plug("a")) })
}

func TestRegistry_All(t *testing.T) {
	reg := registryOf(plug("c"), plug("a"), plug("b"))
	all := reg.All()
	require.Len(t, all, 3)

	seen := map[string]bool{}
	for _, p := range all {
		seen[p.ID()] = true
	}
	assert.True(t, seen["a"] && seen["b"] && seen["c"])
}
