package source

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDocument reads a JSON document into a loose map. A missing file is not
// an error and yields an empty map, so callers can fall back to defaults
// field by field. Content that is present but unparseable is an error; no
// schema validation happens beyond that.
func LoadDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc, nil
}
