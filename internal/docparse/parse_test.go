package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spark-portfolio/spark/internal/types"
)

func TestSections_EmptyContent(t *testing.T) {
	assert.Empty(t, Sections(""))
}

func TestSections_GarbageContent(t *testing.T) {
	assert.Empty(t, Sections("not a document\n\t\n}{[]!@#$\nstill nothing"))
}

func TestSections_DropsContentBeforeFirstHeading(t *testing.T) {
	content := "# Title\nstray line\n\n## First\nkept"

	sections := Sections(content)

	require.Len(t, sections, 1)
	assert.Equal(t, "First", sections[0].Heading)
	assert.Equal(t, []string{"kept"}, sections[0].Lines)
}

func TestSections_StripsPrefixesAndSkipsBlanks(t *testing.T) {
	content := "## Basic Information\n- Career Focus: **Data Analyst**\n\n### 1) Sales Dashboard\nplain line\n"

	sections := Sections(content)

	require.Len(t, sections, 1)
	assert.Equal(t, []string{
		"Career Focus: **Data Analyst**",
		"1) Sales Dashboard",
		"plain line",
	}, sections[0].Lines)
}

func TestSections_MultipleSectionsKeepOrder(t *testing.T) {
	content := "## A\none\n## B\ntwo\n## C\n"

	sections := Sections(content)

	require.Len(t, sections, 3)
	assert.Equal(t, "A", sections[0].Heading)
	assert.Equal(t, "B", sections[1].Heading)
	assert.Equal(t, "C", sections[2].Heading)
	assert.Empty(t, sections[2].Lines)
}

func TestSectionByHeading_CaseInsensitive(t *testing.T) {
	sections := []types.DocumentSection{
		{Heading: "Short Description", Lines: []string{"hi"}},
	}

	assert.NotNil(t, SectionByHeading(sections, "short description"))
	assert.Nil(t, SectionByHeading(sections, "Long Description"))
}

func TestLineValue(t *testing.T) {
	lines := []string{
		"Career Focus: **Data Analyst**",
		"Use SPARK Personal Info: **Yes**",
		"Empty Field:",
	}

	assert.Equal(t, "Data Analyst", LineValue(lines, "Career Focus:"))
	assert.Equal(t, "Yes", LineValue(lines, "Use SPARK Personal Info:"))
	assert.Equal(t, Missing, LineValue(lines, "Empty Field:"))
	assert.Equal(t, Missing, LineValue(lines, "Absent Field:"))
}

func TestProjectNames(t *testing.T) {
	lines := []string{
		"(none)",
		"1. **Sales Dashboard** — ITCS241 • Year 2 Semester 1 • Individual",
		"2. **Course Registration System** — ITCS212 • Year 2 Semester 2 • Group",
		"note between entries",
		"3. **Bare Entry**",
	}

	names := ProjectNames(lines)

	assert.Equal(t, []string{"Sales Dashboard", "Course Registration System", "Bare Entry"}, names)
}

func TestProjectNames_NoneMarkerYieldsEmpty(t *testing.T) {
	assert.Empty(t, ProjectNames([]string{"(none)"}))
}

func TestDescription(t *testing.T) {
	section := &types.DocumentSection{
		Heading: "Short Description",
		Lines:   []string{"First sentence.", "_Second_ sentence."},
	}

	assert.Equal(t, "First sentence. Second sentence.", Description(section))
	assert.Equal(t, Missing, Description(nil))
	assert.Equal(t, Missing, Description(&types.DocumentSection{Heading: "Short Description"}))
}

func TestStripInline(t *testing.T) {
	assert.Equal(t, "Data Analyst", StripInline("**Data Analyst**"))
	assert.Equal(t, "No projects selected.", StripInline("_No projects selected._"))
	assert.Equal(t, "plain", StripInline("plain"))
}
