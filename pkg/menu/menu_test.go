package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMenu(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeMenu(t, `
title: Photo
options:
  - Save this image
  - Delete post
  - Report post
hide:
  - "Delete*"
`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Photo", m.Title)
	assert.Len(t, m.Options, 3)

	visible, err := m.Visible()
	require.NoError(t, err)
	assert.Equal(t, []string{"Save this image", "Report post"}, visible)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"not yaml", "options: [unterminated", "failed to parse"},
		{"no options", "title: Empty\n", "no options"},
		{"empty label", "options: [\"ok\", \"\"]\n", "label cannot be empty"},
		{"bad pattern", "options: [a]\nhide: [\"[\"]\n", "invalid hide pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeMenu(t, tt.content))
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name string
		hide []string
		want []string
	}{
		{"no patterns", nil, []string{"Save this image", "Delete post", "More info", "Follow account"}},
		{"exact", []string{"More info"}, []string{"Save this image", "Delete post", "Follow account"}},
		{"wildcard", []string{"*post*", "Follow *"}, []string{"Save this image", "More info"}},
		{"alternatives", []string{"{Save,Delete}*"}, []string{"More info", "Follow account"}},
		{"everything", []string{"*"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Default()
			m.Hide = tt.hide
			got, err := m.Visible()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
