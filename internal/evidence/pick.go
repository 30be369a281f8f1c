// Package evidence ranks courses and assessments as proof of competency in a
// career-relevance axis.
package evidence

import (
	"fmt"
	"sort"

	"github.com/spark-portfolio/spark/internal/types"
)

// DefaultLimit is the number of evidence items returned when the caller does
// not ask for a specific count.
const DefaultLimit = 2

// practiceWeighted holds the axes for which hands-on assessment evidence
// outranks coursework on ties. Pool order only affects tie-breaking; the sort
// key is always relevance.
var practiceWeighted = map[types.CompetencyAxis]bool{
	types.AxisProblemSolving:    true,
	types.AxisProgramming:       true,
	types.AxisTeamCollaboration: true,
}

// Pick merges the course and assessment pools into ranked evidence for an axis
// and truncates to limit items (DefaultLimit when limit <= 0). The sort is
// stable: equal relevance preserves pool-merge order. Empty pools yield an
// empty result.
func Pick(axis types.CompetencyAxis, courses []types.Course, assessments []types.Assessment, limit int) []types.EvidenceItem {
	if limit <= 0 {
		limit = DefaultLimit
	}

	courseItems := make([]types.EvidenceItem, 0, len(courses))
	for _, c := range courses {
		courseItems = append(courseItems, types.EvidenceItem{
			ID:               c.ID,
			Label:            fmt.Sprintf("%s — %s", c.CourseCode, c.CourseName),
			Source:           types.SourceCourse,
			RelevancePercent: c.RelevancePercent,
		})
	}

	assessmentItems := make([]types.EvidenceItem, 0, len(assessments))
	for _, a := range assessments {
		assessmentItems = append(assessmentItems, types.EvidenceItem{
			ID:               a.ID,
			Label:            fmt.Sprintf("%s — %s", a.ProjectName, a.CourseName),
			Source:           types.SourceAssessment,
			RelevancePercent: a.RelevancePercent,
		})
	}

	var merged []types.EvidenceItem
	if practiceWeighted[axis] {
		merged = append(assessmentItems, courseItems...)
	} else {
		merged = append(courseItems, assessmentItems...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RelevancePercent > merged[j].RelevancePercent
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
