package ecosystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMarkers creates a temp project root containing the given marker files.
func writeMarkers(t *testing.T, markers ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, marker := range markers {
		if err := os.WriteFile(filepath.Join(root, marker), []byte("{}"), 0o644); err != nil {
			t.Fatalf("Failed to write marker %s: %v", marker, err)
		}
	}
	return root
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		markers []string
		want    Ecosystem
	}{
		{"node", []string{"package.json"}, Node},
		{"python", []string{"pyproject.toml"}, Python},
		{"rust", []string{"Cargo.toml"}, Rust},
		{"php", []string{"composer.json"}, PHP},
		{"go", []string{"go.mod"}, Go},
		// priority order: node beats rust when both markers exist
		{"node wins over rust", []string{"package.json", "Cargo.toml"}, Node},
		{"node wins over everything", []string{"go.mod", "composer.json", "Cargo.toml", "pyproject.toml", "package.json"}, Node},
		{"python wins over go", []string{"go.mod", "pyproject.toml"}, Python},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeMarkers(t, tt.markers...)
			got, err := Detect(root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectNotFound(t *testing.T) {
	root := t.TempDir()

	_, err := Detect(root)
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, root, notFound.Root)
	assert.Equal(t, []string{"package.json", "pyproject.toml", "Cargo.toml", "composer.json", "go.mod"}, notFound.Searched)

	// the message should tell users what was searched and how to recover
	assert.Contains(t, err.Error(), "package.json")
	assert.Contains(t, err.Error(), "explicit ecosystem")
}

func TestDetectIgnoresDirectoryMarkers(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "package.json"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))

	got, err := Detect(root)
	require.NoError(t, err)
	assert.Equal(t, Go, got)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Ecosystem
		wantErr bool
	}{
		{"node", Node, false},
		{"python", Python, false},
		{"rust", Rust, false},
		{"php", PHP, false},
		{"go", Go, false},
		{" Node ", Node, false},
		{"RUST", Rust, false},
		{"ruby", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				var unknown *UnknownEcosystemError
				require.True(t, errors.As(err, &unknown))
				assert.Contains(t, err.Error(), "supported: node, python, rust, php, go")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttributes(t *testing.T) {
	assert.Equal(t, "package.json", Node.Marker())
	assert.Equal(t, FamilyJSON, Node.Family())
	assert.Equal(t, FamilyTOML, Python.Family())
	assert.Equal(t, FamilyTOML, Rust.Family())
	assert.Equal(t, FamilyJSON, PHP.Family())
	assert.Equal(t, FamilyGoMod, Go.Family())
	assert.Equal(t, "json", FamilyJSON.String())
	assert.Equal(t, "toml", FamilyTOML.String())
}

func TestManifestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/proj", "Cargo.toml"), Rust.ManifestPath("/proj"))
}
