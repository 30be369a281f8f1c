package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_DocumentMarkup(t *testing.T) {
	doc := Document{
		Title:       "Internship CV",
		StudentName: "Yaowapa Sabkasedkid",
		StudentID:   "u6588087",
		Date:        "15/03/2026",
		CareerFocus: "Data Analyst",
		HardSkills:  []string{"Database Design"},
		SoftSkills:  []string{"Team Collaboration"},
		Projects: []RenderedProject{
			{Name: "Sales Dashboard", CourseName: "ITCS241", YearSemester: "Year 2 Semester 1", Description: "d"},
		},
		ShortDescription: "Short.",
	}

	markup, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, markup, `<article class="docPaper">`)
	assert.Contains(t, markup, "Internship CV")
	assert.Contains(t, markup, "<li>Database Design</li>")
	assert.Contains(t, markup, "<b>Sales Dashboard</b> (ITCS241, Year 2 Semester 1)")
	assert.Contains(t, markup, "Contact Information Slip (For HR)")
}

func TestHTML_EmptyProjects(t *testing.T) {
	markup, err := HTML(Document{Title: "Empty"})
	require.NoError(t, err)

	assert.Contains(t, markup, "No project selected.")
}

func TestHTML_EscapesUserContent(t *testing.T) {
	markup, err := HTML(Document{Title: `<script>alert("x")</script>`})
	require.NoError(t, err)

	assert.NotContains(t, markup, "<script>alert")
}
