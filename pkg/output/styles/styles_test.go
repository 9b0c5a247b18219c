package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{"Title", "ID", "Name", "Confirm", "Success", "Error", "Warning", "Muted", "NoContent"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, Has(name), "style %s should be loaded", name)
		})
	}
}

func TestGetStyleFallback(t *testing.T) {
	assert.False(t, Has("Missing"))
	assert.Equal(t, "plain", GetStyle("Missing").Render("plain"))
}

func TestBuildStyle(t *testing.T) {
	style := buildStyle(StyleDef{Width: 6, Align: "right"}, nil)
	assert.Equal(t, "    42", style.Render("42"))

	style = buildStyle(StyleDef{PaddingLeft: 2}, nil)
	assert.Equal(t, "  x", style.Render("x"))
}

func TestLoadStylesFromFile(t *testing.T) {
	t.Cleanup(ResetStyles)

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  Custom:\n    bold: true\n"), 0644))

	require.NoError(t, LoadStylesFromFile(path))
	assert.True(t, Has("Custom"))
	assert.False(t, Has("Title"))

	ResetStyles()
	assert.True(t, Has("Title"))
}

func TestLoadStylesErrors(t *testing.T) {
	t.Cleanup(ResetStyles)

	assert.Error(t, LoadStylesFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, LoadStyles([]byte("styles: [unclosed")))
	assert.True(t, Has("Title"), "a failed load keeps the current styles")
}
