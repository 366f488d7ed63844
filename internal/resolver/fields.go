package resolver

import (
	"fmt"
	"strings"

	"ocimeta/internal/ecosystem"
)

// Field is one of the logical OCI label fields resolved from a manifest.
// CREATED and REVISION are computed during label assembly, not resolved
// here.
type Field int

const (
	Title Field = iota
	Description
	Version
	Authors
	Vendor
	Licenses
	URL
	Documentation
	Source
)

// fieldOrder is the fixed declared order used for label output.
var fieldOrder = []Field{Title, Description, Version, Authors, Vendor, Licenses, URL, Documentation, Source}

// Fields returns the resolver-backed fields in label output order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// String returns the lowercase field name used on the CLI.
func (f Field) String() string {
	switch f {
	case Title:
		return "title"
	case Description:
		return "description"
	case Version:
		return "version"
	case Authors:
		return "authors"
	case Vendor:
		return "vendor"
	case Licenses:
		return "licenses"
	case URL:
		return "url"
	case Documentation:
		return "documentation"
	case Source:
		return "source"
	default:
		return "unknown"
	}
}

// Key returns the uppercase key used in label output.
func (f Field) Key() string {
	return strings.ToUpper(f.String())
}

// ParseField validates a field name from the CLI.
func ParseField(value string) (Field, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, f := range fieldOrder {
		if f.String() == normalized {
			return f, nil
		}
	}
	names := make([]string, 0, len(fieldOrder))
	for _, f := range fieldOrder {
		names = append(names, f.String())
	}
	return 0, fmt.Errorf("unknown field %q (supported: %s)", value, strings.Join(names, ", "))
}

// handlerID names a special-case extractor. Handlers cover values that no
// manifest path can produce, like anything derived from a go.mod module
// directive.
type handlerID int

const (
	handlerNone handlerID = iota
	handlerDocsFromRepo
	handlerRustDocs
	handlerGoName
	handlerGoVersion
	handlerGoHomepage
	handlerGoRepository
	handlerGoDocs
)

// step is one candidate in a field's resolution recipe: either a dotted
// manifest path or a special handler.
type step struct {
	path    string
	handler handlerID
}

// spec is an ordered fallback chain of candidates. An empty spec means the
// field is unsupported for the ecosystem and resolves to "".
type spec []step

// bareHandler reports whether the spec is a sole special-handler reference,
// which short-circuits the resolution algorithm: the handler result is
// returned verbatim with no fallback and no transform.
func (s spec) bareHandler() (handlerID, bool) {
	if len(s) == 1 && s[0].handler != handlerNone {
		return s[0].handler, true
	}
	return handlerNone, false
}

func p(pathExpr string) step { return step{path: pathExpr} }
func h(id handlerID) step    { return step{handler: id} }

// fieldSpecs maps each ecosystem's fields to their resolution recipes.
// Absent fields resolve to "" without error.
var fieldSpecs = map[ecosystem.Ecosystem]map[Field]spec{
	ecosystem.Node: {
		Title:       {p("name")},
		Description: {p("description")},
		Version:     {p("version")},
		// author is either {"name": ...} or a plain "Name <email>" string
		Authors:       {p("author.name"), p("author")},
		Vendor:        {p("author.name"), p("author")},
		Licenses:      {p("license")},
		URL:           {p("homepage")},
		Documentation: {h(handlerDocsFromRepo)},
		// repository is either {"url": ...} or a plain string; the embedded
		// object form is unwrapped by the source transform either way
		Source: {p("repository.url"), p("repository")},
	},
	ecosystem.Python: {
		Title:       {p("project.name")},
		Description: {p("project.description")},
		Version:     {p("project.version")},
		// PEP 621 authors entries are {name, email} tables or plain strings
		Authors:       {p("project.authors[0].name"), p("project.authors[0]")},
		Vendor:        {p("project.authors[0].name"), p("project.authors[0]")},
		Licenses:      {p("project.license.text"), p("project.license")},
		URL:           {p("project.urls.Homepage"), p("project.urls.homepage")},
		Documentation: {p("project.urls.Documentation"), h(handlerDocsFromRepo)},
		Source:        {p("project.urls.Repository"), p("project.urls.Source"), p("project.urls.repository")},
	},
	ecosystem.Rust: {
		Title:         {p("package.name")},
		Description:   {p("package.description")},
		Version:       {p("package.version")},
		Authors:       {p("package.authors[0]")},
		Vendor:        {p("package.authors[0]")},
		Licenses:      {p("package.license")},
		URL:           {p("package.homepage")},
		Documentation: {p("package.documentation"), h(handlerRustDocs)},
		Source:        {p("package.repository")},
	},
	ecosystem.PHP: {
		Title:       {p("name")},
		Description: {p("description")},
		Version:     {p("version")},
		Authors:     {p("authors[0].name")},
		Vendor:      {p("authors[0].name")},
		// composer license is a string or an array of identifiers
		Licenses:      {p("license[0]"), p("license")},
		URL:           {p("homepage")},
		Documentation: {p("support.docs"), h(handlerDocsFromRepo)},
		Source:        {p("support.source"), p("source.url")},
	},
	// go.mod carries nothing beyond the module directive, so everything
	// derivable comes from special handlers and the rest stays empty.
	ecosystem.Go: {
		Title:         {h(handlerGoName)},
		Version:       {h(handlerGoVersion)},
		URL:           {h(handlerGoHomepage)},
		Documentation: {h(handlerGoDocs)},
		Source:        {h(handlerGoRepository)},
	},
}
