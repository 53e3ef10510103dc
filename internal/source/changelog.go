package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ChangelogEntry is one versioned section of CHANGELOG.md
type ChangelogEntry struct {
	Version string   `json:"version"`
	Changes []string `json:"changes"`
}

// ParseChangelog extracts up to limit entries from the changelog at path. A
// line starting with "## " opens an entry whose version is the rest of the
// line; "- " lines below it become its changes. A missing file yields no
// entries. Parsing stops as soon as limit entries are complete, so trailing
// history is never scanned.
func ParseChangelog(path string, limit int) ([]ChangelogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read changelog: %w", err)
	}
	defer f.Close()

	var entries []ChangelogEntry
	var current *ChangelogEntry

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "## "):
			if current != nil {
				entries = append(entries, *current)
			}
			if len(entries) >= limit {
				return entries, nil
			}
			current = &ChangelogEntry{
				Version: strings.TrimSpace(strings.TrimPrefix(line, "## ")),
				Changes: []string{},
			}
		case current != nil && strings.HasPrefix(line, "- "):
			current.Changes = append(current.Changes, strings.TrimSpace(line[2:]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read changelog: %w", err)
	}

	if current != nil && len(entries) < limit {
		entries = append(entries, *current)
	}

	return entries, nil
}
