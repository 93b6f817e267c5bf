// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// Graph is the directed dependency graph over plugin ids. Nodes include
// ids that appear only as dependencies, so dangling references are
// visible to cycle and missing-dependency checks.
type Graph struct {
	Nodes map[string]struct{}
	Edges map[string]map[string]struct{} // plugin id -> ids it depends on
}

// BuildGraph constructs the dependency graph for the given plugins.
func BuildGraph(plugins []Plugin) *Graph {
	g := &Graph{
		Nodes: make(map[string]struct{}),
		Edges: make(map[string]map[string]struct{}),
	}
	for _, p := range plugins {
		id := p.ID()
		g.Nodes[id] = struct{}{}
		for _, dep := range p.Dependencies() {
			g.Nodes[dep] = struct{}{}
			if g.Edges[id] == nil {
				g.Edges[id] = make(map[string]struct{})
			}
			g.Edges[id][dep] = struct{}{}
		}
	}
	return g
}

// sortedNodes returns all node ids in ascending order.
func (g *Graph) sortedNodes() []string {
	out := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// sortedDeps returns the dependency ids of id in ascending order.
func (g *Graph) sortedDeps(id string) []string {
	deps := g.Edges[id]
	if len(deps) == 0 {
		return nil
	}
	out := make([]string, 0, len(deps))
	for dep := range deps {
		out = append(out, dep)
	}
	sort.Strings(out)
	return out
}

// DetectCycles runs a depth-first traversal from every unvisited node,
// maintaining the set of nodes on the active recursion stack. Each cycle
// is described as the path from where the revisited node first appeared
// back to itself, e.g. "a -> b -> a". Nodes and dependency sets are
// visited in ascending-id order so the same graph always produces the
// same descriptions, independent of input ordering.
func (g *Graph) DetectCycles() []string {
	visited := make(map[string]bool, len(g.Nodes))
	onStack := make(map[string]bool, len(g.Nodes))
	var stack []string
	var cycles []string

	var visit func(id string)
	visit = func(id string) {
		visited[id] = true
		onStack[id] = true
		stack = append(stack, id)
		for _, dep := range g.sortedDeps(id) {
			if !visited[dep] {
				visit(dep)
				continue
			}
			if !onStack[dep] {
				continue
			}
			// Back edge: describe the loop from dep's first appearance
			// on the stack back to itself.
			start := 0
			for i, n := range stack {
				if n == dep {
					start = i
					break
				}
			}
			path := make([]string, 0, len(stack)-start+1)
			path = append(path, stack[start:]...)
			path = append(path, dep)
			cycles = append(cycles, strings.Join(path, " -> "))
		}
		onStack[id] = false
		stack = stack[:len(stack)-1]
	}

	for _, id := range g.sortedNodes() {
		if !visited[id] {
			visit(id)
		}
	}
	return cycles
}

// ResolveOrder produces the deterministic topological execution order for
// the candidate plugins. It is a pure function of the plugin set and its
// dependency edges: any permutation of the input yields the same result,
// and independent plugins come out sorted by id.
//
// Failure modes, checked in order:
//  1. a candidate plugin id missing from the registry (ErrUnregisteredPlugin)
//  2. one or more dependency cycles (ErrDependencyCycle, all enumerated)
//  3. a declared dependency id missing from the registry (ErrMissingDependency)
func ResolveOrder(plugins []Plugin, reg *Registry) ([]Plugin, error) {
	byID := make(map[string]Plugin, len(plugins))
	ids := make([]string, 0, len(plugins))
	for _, p := range plugins {
		byID[p.ID()] = p
		ids = append(ids, p.ID())
	}
	sort.Strings(ids)

	for _, id := range ids {
		if !reg.Has(id) {
			return nil, fmt.Errorf("%w: %s", ErrUnregisteredPlugin, id)
		}
	}

	g := BuildGraph(plugins)
	if cycles := g.DetectCycles(); len(cycles) > 0 {
		return nil, &CycleError{Cycles: cycles}
	}

	for _, id := range ids {
		for _, dep := range sortedStrings(byID[id].Dependencies()) {
			if !reg.Has(dep) {
				return nil, &MissingDependencyError{Plugin: id, Dependency: dep}
			}
		}
	}

	// Depth-first topological visitation: candidates in ascending-id
	// order at the top level, each plugin's dependencies in ascending-id
	// order before the plugin itself. A fully visited plugin is never
	// revisited or duplicated. Dependencies outside the candidate set
	// (registered but not applicable) contribute no execution slot.
	done := make(map[string]bool, len(plugins))
	order := make([]Plugin, 0, len(plugins))

	var visit func(id string)
	visit = func(id string) {
		if done[id] {
			return
		}
		done[id] = true
		p, ok := byID[id]
		if !ok {
			return
		}
		for _, dep := range sortedStrings(p.Dependencies()) {
			visit(dep)
		}
		order = append(order, p)
	}

	for _, id := range ids {
		visit(id)
	}
	return order, nil
}

// sortedStrings returns a sorted copy of ss, leaving the input untouched.
func sortedStrings(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}
