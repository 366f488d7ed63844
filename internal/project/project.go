// Package project wires ecosystem detection, manifest access, and field
// resolution together for one project root.
package project

import (
	"ocimeta/internal/ecosystem"
	"ocimeta/internal/logging"
	"ocimeta/internal/manifest"
	"ocimeta/internal/resolver"
	"ocimeta/pkg/fileops"
)

// Load validates the project root and returns a resolver for it.
//
// When override is non-empty it bypasses detection and is validated against
// the supported ecosystems; otherwise the marker files decide.
func Load(root, override string, registry *manifest.Registry) (*resolver.Resolver, error) {
	cleanRoot, err := fileops.ValidateProjectRoot(root)
	if err != nil {
		return nil, err
	}

	var eco ecosystem.Ecosystem
	if override != "" {
		eco, err = ecosystem.Parse(override)
	} else {
		eco, err = ecosystem.Detect(cleanRoot)
	}
	if err != nil {
		return nil, err
	}
	logging.Debug("Project classified", "root", cleanRoot, "ecosystem", eco.String())

	m := manifest.New(eco, cleanRoot, registry)
	return resolver.New(eco, cleanRoot, m), nil
}
