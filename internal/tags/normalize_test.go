package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DefaultListWithoutContext(t *testing.T) {
	out := Normalize([]string{"Tag 1", "Tag 2"}, "")

	require.Len(t, out, 2)
	assert.Equal(t, "Problem Solving", out[0])
	assert.Equal(t, "Software Design", out[1])
}

func TestNormalize_ContextSelectsRule(t *testing.T) {
	out := Normalize([]string{"Tag 1", "Tag 2"}, "ITCS241 - Database Management Systems")

	assert.Equal(t, []string{"Database Design", "SQL Querying"}, out)
}

func TestNormalize_ZeroScoreKeepsDefault(t *testing.T) {
	out := Normalize([]string{"Tag 1"}, "Philosophy of Mind")

	assert.Equal(t, []string{"Problem Solving"}, out)
}

func TestNormalize_TieKeepsFirstDeclaredRule(t *testing.T) {
	// "sql" hits the database rule and "server" hits the backend rule, one
	// keyword each; the earlier-declared database rule must win.
	out := Normalize([]string{"Tag 1"}, "SQL Server Administration")

	assert.Equal(t, []string{"Database Design"}, out)
}

func TestNormalize_PlaceholderWrapsModuloListLength(t *testing.T) {
	out := Normalize([]string{"Tag 7"}, "")

	// Default list has six entries; Tag 7 wraps back to the first.
	assert.Equal(t, []string{"Problem Solving"}, out)
}

func TestNormalize_NonPlaceholderPassesThrough(t *testing.T) {
	in := []string{"Machine Learning", "  SQL  ", "Tagging", "Tag 0"}
	out := Normalize(in, "web frontend react")

	assert.Equal(t, []string{"Machine Learning", "SQL", "Tagging", "Tag 0"}, out)
}

func TestNormalize_PlaceholderPatternIsCaseInsensitive(t *testing.T) {
	out := Normalize([]string{"tag 1", "TAG 2", "tag3"}, "")

	assert.Equal(t, []string{"Problem Solving", "Software Design", "Technical Communication"}, out)
}

func TestNormalize_Deterministic(t *testing.T) {
	first := Normalize([]string{"Tag 1", "Tag 2"}, "web programming")
	second := Normalize([]string{"Tag 1", "Tag 2"}, "web programming")

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestNormalize_PreservesLengthAndAlignment(t *testing.T) {
	in := []string{"Tag 2", "Custom Skill", "Tag 1"}
	out := Normalize(in, "database schema design")

	require.Len(t, out, len(in))
	assert.Equal(t, "SQL Querying", out[0])
	assert.Equal(t, "Custom Skill", out[1])
	assert.Equal(t, "Database Design", out[2])
}
