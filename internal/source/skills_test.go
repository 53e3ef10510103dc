package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, skillsRoot, name, content string) {
	t.Helper()
	dir := filepath.Join(skillsRoot, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, SkillFile), []byte(content), 0644))
}

func TestEnumerateSkills(t *testing.T) {
	skillsRoot := filepath.Join(t.TempDir(), "skills")
	writeSkill(t, skillsRoot, "xc-console", "---\nname: XC Console\ndescription: Drive the console UI\n---\n\n# Instructions\n")

	// no SKILL.md, skipped
	require.NoError(t, os.MkdirAll(filepath.Join(skillsRoot, "scratch"), 0755))

	skills, err := EnumerateSkills(skillsRoot)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "xc-console", skills[0].ID())
	assert.Equal(t, "XC Console", skills[0].Name())
	assert.Equal(t, "Drive the console UI", skills[0].Description())
	assert.Equal(t, "skills/xc-console", skills[0]["path"])
}

func TestEnumerateSkillsFrontMatterOverridesID(t *testing.T) {
	skillsRoot := filepath.Join(t.TempDir(), "skills")
	writeSkill(t, skillsRoot, "demo-dir", "---\nid: demo\nversion: 1.0\n---\n")

	skills, err := EnumerateSkills(skillsRoot)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "demo", skills[0].ID())
	assert.Equal(t, "1.0", skills[0]["version"])
	assert.Equal(t, "skills/demo-dir", skills[0]["path"])
}

func TestEnumerateSkillsDuplicateKeyLastWins(t *testing.T) {
	skillsRoot := filepath.Join(t.TempDir(), "skills")
	writeSkill(t, skillsRoot, "dup", "---\nname: First\nname: Second\n---\n")

	skills, err := EnumerateSkills(skillsRoot)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Second", skills[0].Name())
}

func TestEnumerateSkillsSortedByName(t *testing.T) {
	skillsRoot := filepath.Join(t.TempDir(), "skills")
	writeSkill(t, skillsRoot, "zeta", "---\nname: Z\n---\n")
	writeSkill(t, skillsRoot, "alpha", "---\nname: A\n---\n")

	skills, err := EnumerateSkills(skillsRoot)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "alpha", skills[0].ID())
	assert.Equal(t, "zeta", skills[1].ID())
}

func TestEnumerateSkillsUnterminatedFrontMatter(t *testing.T) {
	skillsRoot := filepath.Join(t.TempDir(), "skills")
	writeSkill(t, skillsRoot, "broken", "---\nname: Never Closed\n")
	writeSkill(t, skillsRoot, "no-matter", "# Just a heading\n")

	skills, err := EnumerateSkills(skillsRoot)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestEnumerateSkillsValueWithColon(t *testing.T) {
	skillsRoot := filepath.Join(t.TempDir(), "skills")
	writeSkill(t, skillsRoot, "links", "---\nhomepage: https://example.com/docs\n---\n")

	skills, err := EnumerateSkills(skillsRoot)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "https://example.com/docs", skills[0]["homepage"])
}

func TestEnumerateSkillsMissingRoot(t *testing.T) {
	skills, err := EnumerateSkills(filepath.Join(t.TempDir(), "skills"))
	require.NoError(t, err)
	assert.Empty(t, skills)
}
