package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	root := t.TempDir()
	m := Assemble(Inputs{Now: fixedNow})

	written, err := Write(root, m)
	require.NoError(t, err)
	require.Len(t, written, 8)

	assert.Equal(t, filepath.Join(root, "manifest.json"), written[0])
	assert.FileExists(t, filepath.Join(root, "manifest.json"))

	dataDir := filepath.Join(root, "@docs", "data")
	for _, name := range []string{
		"manifest.json",
		"plugin.json",
		"display.json",
		"console_metadata.json",
		"url_sitemap.json",
		"workflows.json",
		"installation.json",
	} {
		assert.FileExists(t, filepath.Join(dataDir, name))
	}
}

func TestWriteDocsCopyMatchesPrimary(t *testing.T) {
	root := t.TempDir()
	_, err := Write(root, Assemble(Inputs{Now: fixedNow}))
	require.NoError(t, err)

	primary, err := os.ReadFile(filepath.Join(root, "manifest.json"))
	require.NoError(t, err)
	mirror, err := os.ReadFile(filepath.Join(root, "@docs", "data", "manifest.json"))
	require.NoError(t, err)
	assert.Equal(t, primary, mirror)
}

func TestWriteInstallGuideGrouping(t *testing.T) {
	root := t.TempDir()
	m := Assemble(Inputs{
		Descriptor: map[string]any{
			"installation":  map[string]any{"method": "marketplace"},
			"prerequisites": []any{"git", "chrome"},
			"compatibility": map[string]any{"claude_code": ">=1.0"},
		},
		Now: fixedNow,
	})
	_, err := Write(root, m)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "@docs", "data", "installation.json"))
	require.NoError(t, err)

	var guide map[string]any
	require.NoError(t, json.Unmarshal(data, &guide))
	assert.Equal(t, map[string]any{"method": "marketplace"}, guide["installation"])
	assert.Equal(t, []any{"git", "chrome"}, guide["prerequisites"])
	assert.Equal(t, map[string]any{"claude_code": ">=1.0"}, guide["compatibility"])
}

func TestWriteSectionSlicesAreVerbatim(t *testing.T) {
	root := t.TempDir()
	m := Assemble(Inputs{
		Descriptor: map[string]any{"name": "f5xc-console", "icon": "icon.svg"},
		Now:        fixedNow,
	})
	_, err := Write(root, m)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "@docs", "data", "plugin.json"))
	require.NoError(t, err)
	var plugin Plugin
	require.NoError(t, json.Unmarshal(data, &plugin))
	assert.Equal(t, m.Plugin, plugin)

	data, err = os.ReadFile(filepath.Join(root, "@docs", "data", "display.json"))
	require.NoError(t, err)
	var display Display
	require.NoError(t, json.Unmarshal(data, &display))
	assert.Equal(t, m.Display, display)
}

func TestWriteOverwritesPrevious(t *testing.T) {
	root := t.TempDir()

	first := Assemble(Inputs{Descriptor: map[string]any{"version": "1.0.0"}, Now: fixedNow})
	_, err := Write(root, first)
	require.NoError(t, err)

	second := Assemble(Inputs{Descriptor: map[string]any{"version": "2.0.0"}, Now: fixedNow})
	_, err = Write(root, second)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "manifest.json"))
	require.NoError(t, err)
	var doc Manifest
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2.0.0", doc.Plugin.Version)
}
