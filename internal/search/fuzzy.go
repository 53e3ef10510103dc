package search

import (
	"strings"

	"github.com/robinmordasiewicz/xc-manifest/internal/source"
	"github.com/sahilm/fuzzy"
)

// skillSource wraps skills for fuzzy matching
type skillSource []source.Skill

// String returns the searchable text for one skill
func (s skillSource) String(i int) string {
	skill := s[i]
	parts := []string{skill.ID()}

	if name := skill.Name(); name != "" {
		parts = append(parts, name)
	}
	if desc := skill.Description(); desc != "" {
		parts = append(parts, desc)
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// Len returns the number of skills
func (s skillSource) Len() int {
	return len(s)
}

// FilterSkills returns the skills fuzzy-matching query, best match first.
// The match runs over id, name, and description.
func FilterSkills(skills []source.Skill, query string) []source.Skill {
	matches := fuzzy.FindFrom(strings.ToLower(query), skillSource(skills))

	filtered := make([]source.Skill, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, skills[match.Index])
	}
	return filtered
}
