// Package manifest reads values out of per-ecosystem manifest files.
//
// A Manifest binds a project's manifest file to the parser engine for its
// family and answers dotted-path queries against it. The file content is
// read once and cached, and the engine binding is resolved once per
// registry; both are write-once values guarded for concurrent use.
//
// Dotted paths address nested fields ("project.urls.Homepage") and array
// elements ("project.authors[0].name"). A missing path is not an error: it
// yields an empty value with found=false, and the resolver decides what to
// do about it.
package manifest

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"ocimeta/internal/ecosystem"
)

// Manifest is a lazily-read manifest file plus the parser binding for its
// ecosystem's family.
type Manifest struct {
	path     string
	family   ecosystem.Family
	registry *Registry

	loadOnce sync.Once
	content  []byte
	loadErr  error
}

// New returns a manifest for the given ecosystem under root. The file is not
// read until the first query.
func New(eco ecosystem.Ecosystem, root string, registry *Registry) *Manifest {
	return &Manifest{
		path:     eco.ManifestPath(root),
		family:   eco.Family(),
		registry: registry,
	}
}

// Path returns the manifest file path.
func (m *Manifest) Path() string {
	return m.path
}

// Content returns the raw manifest bytes, reading the file on first use.
func (m *Manifest) Content() ([]byte, error) {
	m.loadOnce.Do(func() {
		m.content, m.loadErr = os.ReadFile(m.path)
		if m.loadErr != nil {
			m.loadErr = fmt.Errorf("failed to read manifest %s: %w", m.path, m.loadErr)
		}
	})
	return m.content, m.loadErr
}

// Query resolves a dotted path against the manifest file.
func (m *Manifest) Query(path string) (string, bool, error) {
	content, err := m.Content()
	if err != nil {
		return "", false, err
	}
	engine, err := m.registry.Bind(m.family)
	if err != nil {
		return "", false, err
	}
	return engine.Query(content, path)
}

// QueryJSON resolves a dotted path against a literal JSON snippet rather
// than the manifest file. Transforms use this to unwrap embedded objects
// (for example a package.json "repository" object) through the same engine
// binding discipline as regular queries.
func (m *Manifest) QueryJSON(literal, path string) (string, bool, error) {
	engine, err := m.registry.Bind(ecosystem.FamilyJSON)
	if err != nil {
		return "", false, err
	}
	return engine.Query([]byte(literal), path)
}

// splitPath breaks a dotted path into engine segments, separating "[n]"
// array indices into their own segments: "project.authors[0].name" becomes
// ["project", "authors", "[0]", "name"].
func splitPath(path string) []string {
	parts := strings.Split(path, ".")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				if part != "" {
					segments = append(segments, part)
				}
				break
			}
			if open > 0 {
				segments = append(segments, part[:open])
			}
			end := strings.IndexByte(part[open:], ']')
			if end < 0 {
				segments = append(segments, part[open:])
				break
			}
			segments = append(segments, part[open:open+end+1])
			part = part[open+end+1:]
		}
	}
	return segments
}
