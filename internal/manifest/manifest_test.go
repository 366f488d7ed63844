package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocimeta/internal/ecosystem"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"name", []string{"name"}},
		{"author.name", []string{"author", "name"}},
		{"project.authors[0].name", []string{"project", "authors", "[0]", "name"}},
		{"project.authors[0]", []string{"project", "authors", "[0]"}},
		{"license[0]", []string{"license", "[0]"}},
		{"matrix[1][2]", []string{"matrix", "[1]", "[2]"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, splitPath(tt.path))
		})
	}
}

func TestJSONEngineQuery(t *testing.T) {
	content := []byte(`{
		"name": "widget",
		"author": {"name": "Ada", "email": "ada@example.com"},
		"contributors": [{"name": "Grace"}, "Linus"],
		"repository": {"url": "git+https://example.com/x.git"},
		"homepage": null
	}`)
	engine := &jsonEngine{}

	tests := []struct {
		name      string
		path      string
		want      string
		wantFound bool
	}{
		{"top-level string", "name", "widget", true},
		{"nested field", "author.name", "Ada", true},
		{"array index object", "contributors[0].name", "Grace", true},
		{"array index string", "contributors[1]", "Linus", true},
		{"missing key", "description", "", false},
		{"key path through string", "name.url", "", false},
		{"null surfaces literally", "homepage", "null", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := engine.Query(content, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONEngineReturnsRawObjects(t *testing.T) {
	content := []byte(`{"repository": {"url": "https://example.com/x.git"}}`)
	engine := &jsonEngine{}

	got, found, err := engine.Query(content, "repository")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"url": "https://example.com/x.git"}`, got)
}

func TestTOMLEngineQuery(t *testing.T) {
	content := []byte(`
[package]
name = "widget"
version = "1.2.3"
edition = "2021"

[project]
description = "a widget"
authors = [{ name = "Ada" }, "Grace"]
keywords = ["a", "b"]

[project.urls]
Homepage = "https://example.com"
`)
	engine := &tomlEngine{}

	tests := []struct {
		name      string
		path      string
		want      string
		wantFound bool
	}{
		{"nested table", "package.name", "widget", true},
		{"version", "package.version", "1.2.3", true},
		{"inline table in array", "project.authors[0].name", "Ada", true},
		{"plain string in array", "project.authors[1]", "Grace", true},
		{"deep table", "project.urls.Homepage", "https://example.com", true},
		{"missing key", "package.license", "", false},
		{"missing table", "tool.poetry.name", "", false},
		{"index out of range", "project.keywords[9]", "", false},
		{"table has no string form", "project.urls", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := engine.Query(content, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTOMLEngineInvalidDocument(t *testing.T) {
	engine := &tomlEngine{}
	_, _, err := engine.Query([]byte("= broken"), "name")
	assert.Error(t, err)
}

func TestRegistryBind(t *testing.T) {
	t.Run("default registry covers both families", func(t *testing.T) {
		registry := DefaultRegistry()

		jsonEng, err := registry.Bind(ecosystem.FamilyJSON)
		require.NoError(t, err)
		assert.Equal(t, "jsonparser", jsonEng.Name())

		tomlEng, err := registry.Bind(ecosystem.FamilyTOML)
		require.NoError(t, err)
		assert.Equal(t, "burntsushi-toml", tomlEng.Name())
	})

	t.Run("empty registry yields NoParserError", func(t *testing.T) {
		registry := NewRegistry()

		_, err := registry.Bind(ecosystem.FamilyJSON)
		var noParser *NoParserError
		require.True(t, errors.As(err, &noParser))
		assert.Equal(t, ecosystem.FamilyJSON, noParser.Family)
		assert.Contains(t, err.Error(), "no json parser available")
	})

	t.Run("binding skips unavailable engines and is cached", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(ecosystem.FamilyJSON, &fakeEngine{name: "broken", available: false})
		registry.Register(ecosystem.FamilyJSON, &fakeEngine{name: "working", available: true})

		first, err := registry.Bind(ecosystem.FamilyJSON)
		require.NoError(t, err)
		assert.Equal(t, "working", first.Name())

		// later registrations do not disturb an existing binding
		registry.Register(ecosystem.FamilyJSON, &fakeEngine{name: "latecomer", available: true})
		second, err := registry.Bind(ecosystem.FamilyJSON)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})
}

type fakeEngine struct {
	name      string
	available bool
}

func (f *fakeEngine) Name() string    { return f.name }
func (f *fakeEngine) Available() bool { return f.available }
func (f *fakeEngine) Query(content []byte, path string) (string, bool, error) {
	return "", false, nil
}

func TestManifestQuery(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "widget"}`), 0o644))

	m := New(ecosystem.Node, root, DefaultRegistry())
	assert.Equal(t, path, m.Path())

	value, found, err := m.Query("name")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "widget", value)

	// content is cached after the first read: deleting the file on disk
	// does not affect later queries
	require.NoError(t, os.Remove(path))
	value, found, err = m.Query("name")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "widget", value)
}

func TestManifestQueryMissingFile(t *testing.T) {
	m := New(ecosystem.Node, t.TempDir(), DefaultRegistry())
	_, _, err := m.Query("name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestManifestQueryJSON(t *testing.T) {
	m := New(ecosystem.Node, t.TempDir(), DefaultRegistry())

	value, found, err := m.QueryJSON(`{"url": "https://example.com/x.git"}`, "url")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "https://example.com/x.git", value)
}
