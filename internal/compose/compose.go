package compose

import (
	"fmt"
	"strings"

	"github.com/spark-portfolio/spark/internal/types"
)

// Canonical content convention: "#" document title, "##" sections, "###"
// subsections, "- " list items, blank lines as separators. This is the wire
// contract with the docparse package; changes must stay round-trip-compatible.

// Compose serializes document metadata and selected assessments into canonical
// content. Title and short description must be non-empty after trimming; a
// violation returns a *ValidationError naming the field.
func Compose(meta types.ComposeMeta, selected []types.SelectedItem) (string, error) {
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		return "", &ValidationError{Field: "title", Message: "Title is required"}
	}
	shortDescription := strings.TrimSpace(meta.ShortDescription)
	if shortDescription == "" {
		return "", &ValidationError{Field: "shortDescription", Message: "Short description is required"}
	}

	personalInfo := "No"
	if meta.UsePersonalInfo {
		personalInfo = "Yes"
	}

	var lines []string

	lines = append(lines, "# "+title)
	lines = append(lines, "")

	lines = append(lines, "## Basic Information")
	lines = append(lines, fmt.Sprintf("- Career Focus: **%s**", meta.CareerFocus))
	lines = append(lines, fmt.Sprintf("- Use SPARK Personal Info: **%s**", personalInfo))
	lines = append(lines, "")

	lines = append(lines, "## Short Description")
	lines = append(lines, shortDescription)
	lines = append(lines, "")

	lines = append(lines, "## Selected Projects")
	if len(selected) == 0 {
		lines = append(lines, "- (none)")
	} else {
		for i, item := range selected {
			lines = append(lines, projectLine(i+1, item))
		}
	}
	lines = append(lines, "")

	lines = append(lines, "## Project Summaries")
	if len(selected) == 0 {
		lines = append(lines, "_No projects selected._")
	} else {
		for i, item := range selected {
			lines = append(lines, fmt.Sprintf("### %d) %s", i+1, item.Label))
			lines = append(lines, "- Summary:")
			lines = append(lines, "")
			lines = append(lines, "- Key responsibilities:")
			lines = append(lines, "")
			lines = append(lines, "- Tools / Technologies:")
			lines = append(lines, "")
			lines = append(lines, "- Outcome / Impact:")
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n"), nil
}

// projectLine formats one selected project entry. Missing metadata fields are
// omitted rather than blanked.
func projectLine(index int, item types.SelectedItem) string {
	var metaParts []string
	if item.CourseName != "" {
		metaParts = append(metaParts, item.CourseName)
	}
	if item.YearSemester != "" {
		metaParts = append(metaParts, item.YearSemester)
	}
	if item.Type != "" {
		metaParts = append(metaParts, item.Type)
	}

	line := fmt.Sprintf("%d. **%s**", index, item.Label)
	if len(metaParts) > 0 {
		line += " — " + strings.Join(metaParts, " • ")
	}
	return line
}
