// Package docparse reconstitutes canonical sectioned document content into
// structured sections. Parsing never fails: malformed input degrades to an
// empty section list and absent fields resolve to the Missing sentinel.
package docparse

import (
	"regexp"
	"strings"

	"github.com/spark-portfolio/spark/internal/types"
)

// Missing is the sentinel returned when an extracted field is absent, so
// rendered documents are always fully populated.
const Missing = "—"

var numberedLine = regexp.MustCompile(`^\d+\.`)

// Sections splits canonical content into ordered document sections. A line
// starting with "## " opens a new section; "### " and "- " prefixes are
// stripped from content lines; other non-blank lines are kept verbatim; blank
// lines are skipped; content before the first heading is dropped.
func Sections(content string) []types.DocumentSection {
	var sections []types.DocumentSection
	var current *types.DocumentSection

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)

		if after, ok := strings.CutPrefix(line, "## "); ok {
			sections = append(sections, types.DocumentSection{Heading: strings.TrimSpace(after)})
			current = &sections[len(sections)-1]
			continue
		}

		if current == nil || line == "" {
			continue
		}

		if after, ok := strings.CutPrefix(line, "### "); ok {
			current.Lines = append(current.Lines, strings.TrimSpace(after))
			continue
		}
		if after, ok := strings.CutPrefix(line, "- "); ok {
			current.Lines = append(current.Lines, strings.TrimSpace(after))
			continue
		}

		current.Lines = append(current.Lines, line)
	}

	return sections
}

// SectionByHeading finds a section by heading, case-insensitively. Returns nil
// when no section matches.
func SectionByHeading(sections []types.DocumentSection, heading string) *types.DocumentSection {
	for i := range sections {
		if strings.EqualFold(sections[i].Heading, heading) {
			return &sections[i]
		}
	}
	return nil
}

// StripInline removes literal "**" and "_" emphasis markers from a line
// without interpreting nested markup.
func StripInline(line string) string {
	return strings.ReplaceAll(strings.ReplaceAll(line, "**", ""), "_", "")
}

// LineValue extracts the value following a literal line prefix within a
// section's lines, e.g. LineValue(lines, "Career Focus:"). Absent or empty
// values resolve to the Missing sentinel.
func LineValue(lines []string, prefix string) string {
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			value := StripInline(strings.TrimSpace(line[len(prefix):]))
			if value == "" {
				return Missing
			}
			return value
		}
	}
	return Missing
}

// ProjectLines returns the numbered entries of a "Selected Projects" section.
func ProjectLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if numberedLine.MatchString(strings.TrimSpace(line)) {
			out = append(out, line)
		}
	}
	return out
}

// ProjectNames extracts the project labels from numbered "Selected Projects"
// lines, dropping the index prefix and the em-dash-joined metadata.
func ProjectNames(lines []string) []string {
	var names []string
	for _, line := range ProjectLines(lines) {
		name := numberedLine.ReplaceAllString(strings.TrimSpace(line), "")
		name, _, _ = strings.Cut(name, "—")
		name = strings.TrimSpace(StripInline(name))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Description joins a "Short Description" section into a single paragraph,
// stripping emphasis markers. An empty section resolves to the Missing sentinel.
func Description(section *types.DocumentSection) string {
	if section == nil {
		return Missing
	}
	parts := make([]string, 0, len(section.Lines))
	for _, line := range section.Lines {
		parts = append(parts, StripInline(line))
	}
	joined := strings.TrimSpace(strings.Join(parts, " "))
	if joined == "" {
		return Missing
	}
	return joined
}
