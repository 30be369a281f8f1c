package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spark-portfolio/spark/internal/types"
)

func course(code, name string, pct int) types.Course {
	return types.Course{
		ID:               code,
		CourseCode:       code,
		CourseName:       name,
		RelevancePercent: pct,
	}
}

func assessment(project, courseName string, pct int) types.Assessment {
	return types.Assessment{
		ID:               project,
		ProjectName:      project,
		CourseName:       courseName,
		RelevancePercent: pct,
	}
}

func TestPick_RanksByRelevanceAndTruncates(t *testing.T) {
	courses := []types.Course{
		course("ITCS125", "Programming I", 90),
		course("ITCS241", "Database Management Systems", 60),
		course("ITCS333", "Data Mining", 75),
	}

	picked := Pick(types.AxisDataAnalysis, courses, nil, 2)

	require.Len(t, picked, 2)
	assert.Equal(t, 90, picked[0].RelevancePercent)
	assert.Equal(t, 75, picked[1].RelevancePercent)
}

func TestPick_DefaultLimit(t *testing.T) {
	courses := []types.Course{
		course("A", "Alpha", 50),
		course("B", "Beta", 60),
		course("C", "Gamma", 70),
	}

	picked := Pick(types.AxisCommunication, courses, nil, 0)

	assert.Len(t, picked, DefaultLimit)
}

func TestPick_PracticeAxisPrefersAssessmentsOnTie(t *testing.T) {
	courses := []types.Course{
		course("ITCS125", "Programming I", 85),
	}
	assessments := []types.Assessment{
		assessment("Final Project", "Programming I", 85),
	}

	picked := Pick(types.AxisProgramming, courses, assessments, 2)

	require.Len(t, picked, 2)
	assert.Equal(t, types.SourceAssessment, picked[0].Source)
	assert.Equal(t, types.SourceCourse, picked[1].Source)
}

func TestPick_TheoryAxisPrefersCoursesOnTie(t *testing.T) {
	courses := []types.Course{
		course("ITCS241", "Database Management Systems", 85),
	}
	assessments := []types.Assessment{
		assessment("Sales Dashboard", "Database Management Systems", 85),
	}

	picked := Pick(types.AxisDataAnalysis, courses, assessments, 2)

	require.Len(t, picked, 2)
	assert.Equal(t, types.SourceCourse, picked[0].Source)
	assert.Equal(t, types.SourceAssessment, picked[1].Source)
}

func TestPick_EmptyPools(t *testing.T) {
	picked := Pick(types.AxisSystemDesign, nil, nil, 2)

	assert.Empty(t, picked)
}

func TestPick_Labels(t *testing.T) {
	courses := []types.Course{
		course("ITCS241", "Database Management Systems", 80),
	}
	assessments := []types.Assessment{
		assessment("Sales Dashboard", "Database Management Systems", 70),
	}

	picked := Pick(types.AxisDataAnalysis, courses, assessments, 2)

	require.Len(t, picked, 2)
	assert.Equal(t, "ITCS241 — Database Management Systems", picked[0].Label)
	assert.Equal(t, "Sales Dashboard — Database Management Systems", picked[1].Label)
}
