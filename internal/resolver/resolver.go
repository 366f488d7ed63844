// Package resolver turns manifest contents into OCI label field values.
//
// Each (ecosystem, field) pair has a resolution recipe: a dotted manifest
// path, an ordered fallback chain of paths and special handlers, or a bare
// special handler. The resolver walks the chain against the manifest and
// returns the first candidate that produces a usable value, then applies
// the field's registered transform.
//
// An exhausted chain is not an error; it resolves to "". Callers that need
// a field (a build needs TITLE and VERSION) enforce non-emptiness
// themselves.
package resolver

import (
	"ocimeta/internal/ecosystem"
	"ocimeta/internal/logging"
	"ocimeta/internal/manifest"
)

// Resolver resolves label fields for one project.
type Resolver struct {
	eco      ecosystem.Ecosystem
	root     string
	manifest *manifest.Manifest
}

// New creates a resolver for a project root whose ecosystem has already
// been detected or supplied.
func New(eco ecosystem.Ecosystem, root string, m *manifest.Manifest) *Resolver {
	return &Resolver{eco: eco, root: root, manifest: m}
}

// Ecosystem returns the ecosystem this resolver was built for.
func (r *Resolver) Ecosystem() ecosystem.Ecosystem {
	return r.eco
}

// Root returns the validated project root the resolver operates on.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the value of a field, or "" when the field has no recipe
// for this ecosystem or no candidate produced a value. Errors are reserved
// for broken machinery: unreadable manifest, no parser for the family.
func (r *Resolver) Resolve(field Field) (string, error) {
	recipe := fieldSpecs[r.eco][field]
	if len(recipe) == 0 {
		return "", nil
	}

	// A sole handler reference short-circuits: no fallback, no transform.
	if id, ok := recipe.bareHandler(); ok {
		return r.invokeHandler(id)
	}

	var winner string
	for _, candidate := range recipe {
		var raw string
		var err error
		if candidate.handler != handlerNone {
			raw, err = r.invokeHandler(candidate.handler)
		} else {
			raw, _, err = r.manifest.Query(candidate.path)
		}
		if err != nil {
			return "", err
		}

		value := stripQuotes(raw)
		if value != "" && value != "null" {
			winner = value
			break
		}
	}
	if winner == "" {
		logging.Debug("Field resolved empty", "ecosystem", r.eco.String(), "field", field.String())
		return "", nil
	}

	if transform, ok := fieldTransforms[field]; ok {
		return transform(r, winner)
	}
	return winner, nil
}

// stripQuotes removes one pair of matching surrounding quote characters.
func stripQuotes(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
