package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// SkillFile is the per-skill description filename
	SkillFile = "SKILL.md"
	// frontMatterDelimiter separates the metadata block at the top of a SKILL.md
	frontMatterDelimiter = "---"
)

// Skill holds the front-matter fields of one skill directory, keyed verbatim.
// "id" and "path" are synthesized from the directory layout but a front-matter
// line of the same name overwrites them; the last line wins.
type Skill map[string]string

// ID returns the skill identifier
func (s Skill) ID() string {
	return s["id"]
}

// Name returns the front-matter display name, if any
func (s Skill) Name() string {
	return s["name"]
}

// Description returns the front-matter description, if any
func (s Skill) Description() string {
	return s["description"]
}

// EnumerateSkills scans the immediate subdirectories of skillsRoot for SKILL.md
// files and returns one entry per skill, sorted by directory name. A missing
// skills root yields no skills. Subdirectories without a SKILL.md, or whose
// front matter is missing or unterminated, are skipped rather than reported.
// The recorded path is relative to the parent of skillsRoot.
func EnumerateSkills(skillsRoot string) ([]Skill, error) {
	entries, err := os.ReadDir(skillsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read skills directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var skills []Skill
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(skillsRoot, name, SkillFile))
		if err != nil {
			continue
		}

		matter, ok := frontMatter(string(data))
		if !ok {
			continue
		}

		skill := Skill{
			"id":   name,
			"path": filepath.ToSlash(filepath.Join(filepath.Base(skillsRoot), name)),
		}
		for _, line := range strings.Split(matter, "\n") {
			key, value, found := strings.Cut(line, ":")
			if !found {
				continue
			}
			skill[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}

		skills = append(skills, skill)
	}

	return skills, nil
}

// frontMatter extracts the block between the first two delimiter markers.
// Content before the opening marker is discarded; a block without a closing
// marker does not count as front matter.
func frontMatter(content string) (string, bool) {
	if !strings.HasPrefix(content, frontMatterDelimiter) {
		return "", false
	}
	parts := strings.SplitN(content, frontMatterDelimiter, 3)
	if len(parts) < 3 {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
