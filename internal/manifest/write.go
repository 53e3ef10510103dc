package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robinmordasiewicz/xc-manifest/internal/config"
)

// Write serializes the manifest to the primary location, mirrors it into the
// docs data directory, and emits the per-section data files the MkDocs macros
// consume. Every write is a whole-file overwrite. Returns the paths written,
// in write order.
func Write(root string, m *Manifest) ([]string, error) {
	var written []string

	primary := config.ManifestPath(root)
	if err := writeJSON(primary, m); err != nil {
		return written, err
	}
	written = append(written, primary)

	dataDir := config.DocsDataDir(root)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return written, fmt.Errorf("failed to create %s: %w", dataDir, err)
	}

	sections := []struct {
		name string
		doc  any
	}{
		{"manifest.json", m},
		{"plugin.json", m.Plugin},
		{"display.json", m.Display},
		{"console_metadata.json", m.ConsoleMetadata},
		{"url_sitemap.json", m.URLSitemap},
		{"workflows.json", m.Workflows},
		{"installation.json", InstallGuide{
			Installation:  m.Installation,
			Prerequisites: m.Prerequisites,
			Compatibility: m.Compatibility,
		}},
	}
	for _, section := range sections {
		path := filepath.Join(dataDir, section.name)
		if err := writeJSON(path, section.doc); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func writeJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
