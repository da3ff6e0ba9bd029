// Package validate holds the pure validation passes applied to frontend
// requests and generated code. Validation never raises: each pass returns
// human-readable findings and the caller decides what is fatal.
package validate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/genesis-engine/genesis-frontend/internal/protocol"
	"github.com/genesis-engine/genesis-frontend/internal/specialization"
)

// Request checks task parameters against the structural rules for the given
// specialization. All applicable checks run; findings are appended in order
// (output path, framework presence, framework support). An empty result
// means the request is acceptable.
func Request(params map[string]any, spec specialization.Specialization) []string {
	var errs []string

	if protocol.StringParam(params, "output_path", "") == "" {
		errs = append(errs, "output_path is required")
	}

	framework := strings.ToLower(protocol.StringParam(params, "framework", ""))
	if framework == "" && spec.RequiresFramework() {
		errs = append(errs, "framework is required")
	}

	if framework != "" && !spec.Supports(framework) {
		errs = append(errs, "framework \""+framework+"\" not supported by "+string(spec)+
			" (supported: "+strings.Join(spec.Frameworks(), ", ")+")")
	}

	return errs
}

// Code runs heuristic lint signals over generated source text. Only blank
// input is an error; everything else is at most a warning, so these checks
// annotate output without ever blocking it.
func Code(code, language string) protocol.ValidationResult {
	res := protocol.ValidationResult{
		Valid:       true,
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if strings.TrimSpace(code) == "" {
		res.Valid = false
		res.Errors = append(res.Errors, "empty code")
		return res
	}

	switch strings.ToLower(language) {
	case "typescript", "tsx":
		// Brace-balance signal, not a parser: every interface needs at
		// least one opening brace.
		if strings.Contains(code, "interface") &&
			strings.Count(code, "{") < strings.Count(code, "interface") {
			res.Warnings = append(res.Warnings, "possible syntax problem in interfaces")
		}
	case "javascript", "jsx":
		if strings.Count(code, "{") != strings.Count(code, "}") {
			res.Warnings = append(res.Warnings, "possibly unbalanced braces")
		}
	case "vue":
		if !strings.Contains(code, "<template>") {
			res.Warnings = append(res.Warnings, "vue component without template")
		}
	}

	return res
}

// Artifacts runs Code over a batch of artifacts, keyed by path.
func Artifacts(artifacts []protocol.CodeArtifact) map[string]protocol.ValidationResult {
	out := make(map[string]protocol.ValidationResult, len(artifacts))
	for _, a := range artifacts {
		out[a.Path] = Code(a.Content, a.Language)
	}
	return out
}

var npmNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ProjectName checks a project name against npm package naming rules.
func ProjectName(name string) []string {
	var errs []string
	if name == "" {
		errs = append(errs, "project name is required")
		return errs
	}
	if len(name) > 214 {
		errs = append(errs, "project name must be 214 characters or fewer")
	}
	if name != strings.ToLower(name) {
		errs = append(errs, "project name must be lowercase")
	}
	if strings.ContainsAny(name, " \t") {
		errs = append(errs, "project name must not contain spaces")
	} else if !npmNameRe.MatchString(strings.ToLower(name)) {
		errs = append(errs, "project name contains invalid characters")
	}
	return errs
}

// ComponentName sanitizes an arbitrary string into a PascalCase component
// identifier. Empty or fully invalid input yields "Component".
func ComponentName(name string) string {
	var parts []string
	var cur strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}

	var b strings.Builder
	for _, p := range parts {
		runes := []rune(p)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}

	out := b.String()
	// Identifiers cannot start with a digit.
	for out != "" && unicode.IsDigit(rune(out[0])) {
		out = out[1:]
	}
	if out == "" {
		return "Component"
	}
	return out
}
