package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocimeta/internal/ecosystem"
)

func TestTransformRepositoryURL(t *testing.T) {
	r := newTestResolver(t, ecosystem.Node, `{"name": "widget"}`)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"embedded object", `{"url":"git+https://example.com/x.git"}`, "https://example.com/x"},
		{"plain url with git suffix", "https://example.com/x.git", "https://example.com/x"},
		{"plain url untouched", "https://example.com/x", "https://example.com/x"},
		{"git+ prefix only", "git+ssh://example.com/x", "ssh://example.com/x"},
		{"empty input", "", ""},
		{"object without url", `{"type":"git"}`, ""},
		{"object with null url", `{"url":null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transformRepositoryURL(r, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
