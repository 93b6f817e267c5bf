// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Errors for pipeline operations. All are fatal to the current render:
// no partial file map or manifest is ever returned.
var (
	ErrDuplicatePlugin    = errors.New("duplicate plugin id")
	ErrUnregisteredPlugin = errors.New("plugin not registered")
	ErrMissingDependency  = errors.New("missing dependency")
	ErrDependencyCycle    = errors.New("dependency cycle")
	ErrFileConflict       = errors.New("file conflict")
	ErrPluginValidation   = errors.New("plugin validation failed")
)

// CycleError reports every cycle found among the applicable plugins,
// not just the first.
type CycleError struct {
	// Cycles holds one "a -> b -> a" path description per cycle, in the
	// deterministic order cycle detection discovered them.
	Cycles []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDependencyCycle, strings.Join(e.Cycles, "; "))
}

func (e *CycleError) Unwrap() error { return ErrDependencyCycle }

// MissingDependencyError reports a declared dependency id that is not
// present in the registry. This is distinct from a candidate plugin that
// appears in the graph but was never registered (ErrUnregisteredPlugin).
type MissingDependencyError struct {
	Plugin     string
	Dependency string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s: plugin %q depends on unregistered %q", ErrMissingDependency, e.Plugin, e.Dependency)
}

func (e *MissingDependencyError) Unwrap() error { return ErrMissingDependency }

// FileConflictError reports a path written by two or more plugins where
// at least one writer declared the error conflict policy.
type FileConflictError struct {
	Path string
	// Writers lists every contributing plugin id in first-write order.
	Writers []string
}

func (e *FileConflictError) Error() string {
	return fmt.Sprintf("%s: %s written by %s", ErrFileConflict, e.Path, strings.Join(e.Writers, ", "))
}

func (e *FileConflictError) Unwrap() error { return ErrFileConflict }

// ValidationError reports a plugin whose Validate call returned an
// invalid result.
type ValidationError struct {
	Plugin   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrPluginValidation, e.Plugin, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrPluginValidation }
