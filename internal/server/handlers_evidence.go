package server

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/spark-portfolio/spark/internal/evidence"
	"github.com/spark-portfolio/spark/internal/types"
)

// CourseResponse is a course record with its competency tags normalized
// against the course name.
type CourseResponse struct {
	types.Course
	NormalizedTags []string `json:"normalizedTags"`
}

// handleListCourses returns all course records.
func (s *Server) handleListCourses(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.dataset.Courses())
}

// handleGetCourse returns one course with normalized competency tags.
func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, course := range s.dataset.Courses() {
		if course.ID == id {
			s.jsonResponse(w, http.StatusOK, CourseResponse{
				Course:         course,
				NormalizedTags: s.ruleset.Normalize(course.CompetencyTags, course.CourseName),
			})
			return
		}
	}
	s.errorResponse(w, http.StatusNotFound, "Course not found")
}

// handleListProjects returns assessment records, ranked by relevance
// (highest first) when a careerFocus is given.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects := append([]types.Assessment(nil), s.dataset.Assessments()...)

	if focus := r.URL.Query().Get("careerFocus"); focus != "" {
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].RelevancePercent > projects[j].RelevancePercent
		})
	}

	s.jsonResponse(w, http.StatusOK, projects)
}

// handleEvidence returns ranked evidence items for a competency axis.
func (s *Server) handleEvidence(w http.ResponseWriter, r *http.Request) {
	axis, ok := types.ParseAxis(r.URL.Query().Get("axis"))
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Unknown competency axis")
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	items := evidence.Pick(axis, s.dataset.Courses(), s.dataset.Assessments(), limit)
	s.jsonResponse(w, http.StatusOK, items)
}

// handleSuggestions returns catalog course suggestions for a competency axis.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	axis, ok := types.ParseAxis(r.URL.Query().Get("axis"))
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Unknown competency axis")
		return
	}

	suggestions := s.catalog.Suggest(axis)
	if suggestions == nil {
		suggestions = []evidence.Suggestion{}
	}
	s.jsonResponse(w, http.StatusOK, suggestions)
}
