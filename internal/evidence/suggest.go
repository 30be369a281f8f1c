package evidence

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spark-portfolio/spark/internal/schemas"
	"github.com/spark-portfolio/spark/internal/types"
)

// Suggestion is a course the student has not taken yet that would strengthen a
// competency axis. The catalog is external configuration data, not core logic.
type Suggestion struct {
	CourseCode       string `json:"courseCode"`
	CourseName       string `json:"courseName"`
	RelevancePercent int    `json:"relevancePercent"`
}

// Catalog maps a competency axis to its suggested courses, ordered by relevance
// as declared in the catalog file.
type Catalog map[types.CompetencyAxis][]Suggestion

// Suggest returns the catalog entries for an axis. An unknown axis yields an
// empty list.
func (c Catalog) Suggest(axis types.CompetencyAxis) []Suggestion {
	return c[axis]
}

// LoadCatalog reads a suggestion catalog from a JSON file, validating it
// against the catalog schema. Keys that do not name a known axis are dropped.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suggestion catalog %s: %w", path, err)
	}

	if err := schemas.Validate(schemas.SuggestionCatalogSchema, data); err != nil {
		return nil, fmt.Errorf("invalid suggestion catalog %s: %w", path, err)
	}

	var raw map[string][]Suggestion
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion catalog %s: %w", path, err)
	}

	catalog := Catalog{}
	for name, suggestions := range raw {
		axis, ok := types.ParseAxis(name)
		if !ok {
			continue
		}
		catalog[axis] = suggestions
	}
	return catalog, nil
}

// DefaultCatalog returns the built-in suggestion catalog used when no catalog
// file is configured.
func DefaultCatalog() Catalog {
	return Catalog{
		types.AxisDataAnalysis: {
			{CourseCode: "ITCS443", CourseName: "Data Analytics", RelevancePercent: 92},
			{CourseCode: "ITCS371", CourseName: "Statistics for Data Science", RelevancePercent: 84},
		},
		types.AxisProgramming: {
			{CourseCode: "ITCS414", CourseName: "Advanced Programming Practice", RelevancePercent: 90},
			{CourseCode: "ITCS227", CourseName: "Algorithm Design", RelevancePercent: 82},
		},
		types.AxisSystemDesign: {
			{CourseCode: "ITCS424", CourseName: "Software Architecture", RelevancePercent: 88},
		},
	}
}
