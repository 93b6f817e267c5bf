// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"sort"
)

// GroupByPhase partitions plugins into the four fixed execution phases.
// All four buckets are always present, possibly empty. Plugins without a
// declared phase default to render. Within each bucket plugins are sorted
// by id: phase grouping does not preserve topological order, so the only
// ordering a plugin author can rely on across plugins is cross-phase.
func GroupByPhase(plugins []Plugin) map[Phase][]Plugin {
	buckets := map[Phase][]Plugin{
		PhasePre:    {},
		PhaseRender: {},
		PhasePost:   {},
		PhaseCI:     {},
	}
	for _, p := range plugins {
		ph := phaseOf(p)
		buckets[ph] = append(buckets[ph], p)
	}
	for ph := range buckets {
		b := buckets[ph]
		sort.Slice(b, func(i, j int) bool { return b[i].ID() < b[j].ID() })
	}
	return buckets
}
