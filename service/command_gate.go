package service

import (
	"sort"
	"strings"
)

// ReconcileDisabledCommands computes the next disabled-command set from the
// stored set plus the enable/disable lists of a dashboard request.
//
// Names are lowercased and empty strings dropped. Enables are removed first,
// then disables are added, so a name appearing in both lists ends up disabled.
// Disable winning on overlap is a deliberate policy: gating a command off is
// the safer action when the request contradicts itself.
//
// The result is duplicate-free and sorted lexicographically so persisted sets
// and serialized responses are reproducible regardless of input order.
func ReconcileDisabledCommands(current, enable, disable []string) []string {
	working := make(map[string]struct{}, len(current))
	for _, name := range current {
		if name = normalizeCommandName(name); name != "" {
			working[name] = struct{}{}
		}
	}

	for _, name := range enable {
		if name = normalizeCommandName(name); name != "" {
			delete(working, name)
		}
	}

	// Disables run last so they win over enables.
	for _, name := range disable {
		if name = normalizeCommandName(name); name != "" {
			working[name] = struct{}{}
		}
	}

	result := make([]string, 0, len(working))
	for name := range working {
		result = append(result, name)
	}
	sort.Strings(result)

	return result
}

func normalizeCommandName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
