// Package specialization defines the framework families that frontend agents
// target, together with the static descriptor table consumed by agents for
// introspection and request validation.
package specialization

import (
	"fmt"
	"sort"
	"strings"
)

// Specialization identifies the framework family an agent instance targets.
type Specialization string

const (
	NextJS Specialization = "nextjs"
	React  Specialization = "react"
	Vue    Specialization = "vue"
	UI     Specialization = "ui"
)

// ErrUnknownFramework is returned when no specialization declares support
// for a requested framework.
var ErrUnknownFramework = fmt.Errorf("unknown framework")

// Descriptor is the static per-specialization configuration surface:
// supported framework names and aliases, feature and use-case descriptions,
// and default generation options.
type Descriptor struct {
	Frameworks    []string
	Features      []string
	UseCases      []string
	Defaults      map[string]any
	DevServerPort int
}

// baseFeatures are shared by every specialization.
var baseFeatures = []string{
	"Code generation with LLMs",
	"Template collaboration",
	"Protocol integration",
	"TypeScript support",
}

var descriptors = map[Specialization]Descriptor{
	NextJS: {
		Frameworks: []string{"nextjs", "next"},
		Features:   []string{"App Router", "Server Components", "Static Generation"},
		UseCases: []string{
			"Generate full Next.js applications",
			"Create pages and layouts",
			"Setup routing and navigation",
			"Configure TypeScript and Tailwind",
		},
		Defaults: map[string]any{
			"typescript":   true,
			"app_router":   true,
			"tailwind_css": true,
			"eslint":       true,
			"import_alias": "@/*",
		},
		DevServerPort: 3000,
	},
	React: {
		Frameworks: []string{"react", "cra"},
		Features:   []string{"SPA development", "State management", "Component libraries"},
		UseCases: []string{
			"Generate React SPAs",
			"Create reusable components",
			"Setup state management",
			"Configure build tools",
		},
		Defaults: map[string]any{
			"typescript":       true,
			"build_tool":       "vite",
			"state_management": "zustand",
			"testing":          true,
		},
		DevServerPort: 5173,
	},
	Vue: {
		Frameworks: []string{"vue", "vue3"},
		Features:   []string{"Composition API", "Single File Components", "Reactive state"},
		UseCases: []string{
			"Generate Vue 3 applications",
			"Create Vue components",
			"Setup Pinia stores",
			"Configure Vue Router",
		},
		Defaults: map[string]any{
			"typescript":       true,
			"vue_version":      "3",
			"state_management": "pinia",
			"build_tool":       "vite",
		},
		DevServerPort: 5173,
	},
	UI: {
		Frameworks: []string{"design", "ui", "components"},
		Features:   []string{"Design systems", "Color palettes", "Component libraries"},
		UseCases: []string{
			"Create design systems",
			"Generate color palettes",
			"Build component libraries",
			"Setup design tokens",
		},
		Defaults: map[string]any{
			"design_system": "custom",
			"dark_mode":     true,
			"accessibility": true,
		},
		DevServerPort: 6006,
	},
}

// All returns the known specializations in a stable order.
func All() []Specialization {
	return []Specialization{NextJS, React, Vue, UI}
}

// Valid reports whether s is a known specialization.
func (s Specialization) Valid() bool {
	_, ok := descriptors[s]
	return ok
}

// Descriptor returns the static descriptor for s. Unknown specializations
// get a zero descriptor.
func (s Specialization) Descriptor() Descriptor {
	return descriptors[s]
}

// Frameworks returns the framework names and aliases s declares support for.
func (s Specialization) Frameworks() []string {
	d := descriptors[s]
	out := make([]string, len(d.Frameworks))
	copy(out, d.Frameworks)
	return out
}

// Features returns the shared base features plus the ones specific to s.
func (s Specialization) Features() []string {
	out := make([]string, 0, len(baseFeatures)+len(descriptors[s].Features))
	out = append(out, baseFeatures...)
	out = append(out, descriptors[s].Features...)
	return out
}

// UseCases returns the use-case descriptions for s.
func (s Specialization) UseCases() []string {
	d := descriptors[s]
	out := make([]string, len(d.UseCases))
	copy(out, d.UseCases)
	return out
}

// Supports reports whether s declares support for the named framework.
// The test is an exact, case-insensitive membership check against the
// declared framework set, not a substring match.
func (s Specialization) Supports(framework string) bool {
	framework = strings.ToLower(strings.TrimSpace(framework))
	for _, f := range descriptors[s].Frameworks {
		if f == framework {
			return true
		}
	}
	return false
}

// RequiresFramework reports whether requests to this specialization must
// carry an explicit framework parameter. Only the design/UI specialization
// accepts framework-less requests.
func (s Specialization) RequiresFramework() bool {
	return s != UI
}

// ForFramework resolves a framework name or alias to the specialization that
// handles it.
func ForFramework(framework string) (Specialization, error) {
	name := strings.ToLower(strings.TrimSpace(framework))
	if s := Specialization(name); s.Valid() {
		return s, nil
	}
	for _, s := range All() {
		if s.Supports(name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownFramework, framework,
		strings.Join(SupportedFrameworks(), ", "))
}

// SupportedFrameworks returns the sorted union of every framework name and
// alias declared by any specialization.
func SupportedFrameworks() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range descriptors {
		for _, f := range d.Frameworks {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	sort.Strings(out)
	return out
}
