package report

import (
	"sort"
	"strings"
)

// Cross-document joins (solution title to analysis title, raw persona name
// to persona key) run through ordered lists of matcher functions. Each
// matcher is a pure predicate; the first one that succeeds wins. Keeping
// them separate keeps each rule independently testable.

type matcherFn func(a, b string) bool

func matchExact(a, b string) bool {
	return a == b
}

func matchFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// matchContains succeeds when either normalized string contains the other.
func matchContains(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

var titleMatchers = []matcherFn{matchExact, matchFold, matchContains}

// matchTitle returns the index of the first scenario whose title matches the
// feedback block title, trying each matcher over the whole list before
// relaxing to the next.
func matchTitle(title string, scenarios []ScenarioSection) int {
	for _, match := range titleMatchers {
		for i, sc := range scenarios {
			if match(title, sc.Title) {
				return i
			}
		}
	}
	return -1
}

// ResolvePersona looks up a raw feedback name against the persona map:
// exact lower-cased key first, then bidirectional substring in sorted key
// order so ambiguous matches resolve the same way on every run. Returns
// false when nothing matches.
func ResolvePersona(raw string, personas PersonaMap) (Persona, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return Persona{}, false
	}
	if p, ok := personas[key]; ok {
		return p, true
	}
	names := make([]string, 0, len(personas))
	for name := range personas {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return personas[name], true
		}
	}
	return Persona{}, false
}
