// Package ecosystem classifies a project root into a packaging ecosystem
// based on which manifest marker file is present.
//
// Detection follows a fixed priority order, so a project carrying several
// marker files always classifies deterministically (package.json wins over
// Cargo.toml, and so on). Callers can bypass detection entirely with an
// explicit ecosystem name, which is validated against the closed set of
// supported ecosystems.
package ecosystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ecosystem identifies the packaging/language family of a project.
type Ecosystem int

const (
	// Node projects carry a package.json manifest.
	Node Ecosystem = iota
	// Python projects carry a pyproject.toml manifest.
	Python
	// Rust projects carry a Cargo.toml manifest.
	Rust
	// PHP projects carry a composer.json manifest.
	PHP
	// Go projects carry a go.mod manifest.
	Go
)

// Family is the parser family required to read an ecosystem's manifest.
type Family int

const (
	FamilyJSON Family = iota
	FamilyTOML
	// FamilyGoMod covers go.mod, which has its own line-oriented directive
	// syntax and is read without a structured-document parser.
	FamilyGoMod
)

// String returns the family name used in error messages ("json", "toml").
func (f Family) String() string {
	switch f {
	case FamilyJSON:
		return "json"
	case FamilyTOML:
		return "toml"
	case FamilyGoMod:
		return "gomod"
	default:
		return "unknown"
	}
}

// detectionOrder is the fixed marker priority. Order matters: a project
// containing both package.json and Cargo.toml classifies as Node.
var detectionOrder = []Ecosystem{Node, Python, Rust, PHP, Go}

// String returns the lowercase ecosystem name used on the CLI and in config.
func (e Ecosystem) String() string {
	switch e {
	case Node:
		return "node"
	case Python:
		return "python"
	case Rust:
		return "rust"
	case PHP:
		return "php"
	case Go:
		return "go"
	default:
		return "unknown"
	}
}

// Marker returns the manifest filename whose presence identifies the ecosystem.
func (e Ecosystem) Marker() string {
	switch e {
	case Node:
		return "package.json"
	case Python:
		return "pyproject.toml"
	case Rust:
		return "Cargo.toml"
	case PHP:
		return "composer.json"
	case Go:
		return "go.mod"
	default:
		return ""
	}
}

// Family returns the parser family needed for the ecosystem's manifest.
func (e Ecosystem) Family() Family {
	switch e {
	case Node, PHP:
		return FamilyJSON
	case Python, Rust:
		return FamilyTOML
	case Go:
		return FamilyGoMod
	default:
		return FamilyJSON
	}
}

// All returns the supported ecosystems in detection priority order.
func All() []Ecosystem {
	return append([]Ecosystem(nil), detectionOrder...)
}

// NotFoundError is returned by Detect when no manifest marker exists under
// the project root.
type NotFoundError struct {
	Root     string
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"no manifest found in %s (searched for %s): add one of these files or pass an explicit ecosystem",
		e.Root, strings.Join(e.Searched, ", "))
}

// UnknownEcosystemError is returned by Parse when an explicit override names
// an ecosystem outside the supported set.
type UnknownEcosystemError struct {
	Value string
}

func (e *UnknownEcosystemError) Error() string {
	names := make([]string, 0, len(detectionOrder))
	for _, eco := range detectionOrder {
		names = append(names, eco.String())
	}
	return fmt.Sprintf("unknown ecosystem %q (supported: %s)", e.Value, strings.Join(names, ", "))
}

// Parse validates an explicit ecosystem name against the supported set.
func Parse(value string) (Ecosystem, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, eco := range detectionOrder {
		if eco.String() == normalized {
			return eco, nil
		}
	}
	return 0, &UnknownEcosystemError{Value: value}
}

// Detect returns the first ecosystem whose marker file exists under root,
// following the fixed detection priority.
func Detect(root string) (Ecosystem, error) {
	searched := make([]string, 0, len(detectionOrder))
	for _, eco := range detectionOrder {
		marker := filepath.Join(root, eco.Marker())
		searched = append(searched, eco.Marker())
		info, err := os.Stat(marker)
		if err == nil && info.Mode().IsRegular() {
			return eco, nil
		}
	}
	return 0, &NotFoundError{Root: root, Searched: searched}
}

// ManifestPath returns the path of the ecosystem's manifest under root.
func (e Ecosystem) ManifestPath(root string) string {
	return filepath.Join(root, e.Marker())
}
