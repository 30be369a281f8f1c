// Package types provides type definitions for structured data used throughout the SPARK portfolio system.
package types

import "time"

// CompetencyAxis is one of the fixed skill dimensions used for evidence display.
// The declaration order is the display order.
type CompetencyAxis string

const (
	AxisDataAnalysis      CompetencyAxis = "Data Analysis"
	AxisProgramming       CompetencyAxis = "Programming"
	AxisProblemSolving    CompetencyAxis = "Problem Solving"
	AxisCommunication     CompetencyAxis = "Communication"
	AxisTeamCollaboration CompetencyAxis = "Team Collaboration"
	AxisSystemDesign      CompetencyAxis = "System Design"
)

// Axes returns all competency axes in display order.
func Axes() []CompetencyAxis {
	return []CompetencyAxis{
		AxisDataAnalysis,
		AxisProgramming,
		AxisProblemSolving,
		AxisCommunication,
		AxisTeamCollaboration,
		AxisSystemDesign,
	}
}

// ParseAxis resolves a competency axis from its display name.
// Returns false if the name does not match any axis.
func ParseAxis(name string) (CompetencyAxis, bool) {
	for _, axis := range Axes() {
		if string(axis) == name {
			return axis, true
		}
	}
	return "", false
}

// CareerFocus is a user-selected target occupation used to weight relevance
// and frame generated descriptions.
type CareerFocus string

const (
	FocusDataAnalyst      CareerFocus = "Data Analyst"
	FocusDataEngineer     CareerFocus = "Data Engineer"
	FocusSoftwareEngineer CareerFocus = "Software Engineer"
)

// CareerFocuses returns the supported career focus options.
func CareerFocuses() []CareerFocus {
	return []CareerFocus{FocusDataAnalyst, FocusDataEngineer, FocusSoftwareEngineer}
}

// ParseCareerFocus resolves a career focus from its display name.
func ParseCareerFocus(name string) (CareerFocus, bool) {
	for _, focus := range CareerFocuses() {
		if string(focus) == name {
			return focus, true
		}
	}
	return "", false
}

// Course represents a completed course record consumed as plain data.
type Course struct {
	ID               string   `json:"id" yaml:"id"`
	CourseCode       string   `json:"courseCode" yaml:"courseCode"`
	CourseName       string   `json:"courseName" yaml:"courseName"`
	CompetencyTags   []string `json:"competencyTags" yaml:"competencyTags"`
	RelevancePercent int      `json:"relevancePercent" yaml:"relevancePercent"`
	Grade            string   `json:"grade" yaml:"grade"`
}

// AssessmentType distinguishes group and individual assessments.
const (
	AssessmentGroup      = "Group"
	AssessmentIndividual = "Individual"
)

// Assessment represents a project/assessment record consumed as plain data.
type Assessment struct {
	ID               string   `json:"id" yaml:"id"`
	ProjectName      string   `json:"projectName" yaml:"projectName"`
	CourseName       string   `json:"courseName" yaml:"courseName"`
	YearSemester     string   `json:"yearSemester" yaml:"yearSemester"`
	Type             string   `json:"type" yaml:"type"`
	CompetencyTags   []string `json:"competencyTags" yaml:"competencyTags"`
	RelevancePercent int      `json:"relevancePercent" yaml:"relevancePercent"`
}

// EvidenceSource identifies the pool an evidence item came from.
type EvidenceSource string

const (
	SourceCourse     EvidenceSource = "Course"
	SourceAssessment EvidenceSource = "Assessment"
)

// EvidenceItem is a read-only projection of a course or assessment cited as
// proof of competency in a given axis. Recomputed per query, never mutated.
type EvidenceItem struct {
	ID               string         `json:"id"`
	Label            string         `json:"label"`
	Source           EvidenceSource `json:"source"`
	RelevancePercent int            `json:"relevancePercent"`
}

// Profile represents a student profile record consumed as plain data.
type Profile struct {
	StudentID     string `json:"studentId" yaml:"studentId"`
	Name          string `json:"name" yaml:"name"`
	Surname       string `json:"surname" yaml:"surname"`
	Faculty       string `json:"faculty" yaml:"faculty"`
	Minor         string `json:"minor" yaml:"minor"`
	Year          int    `json:"year" yaml:"year"`
	Email         string `json:"email" yaml:"email"`
	ContactNumber string `json:"contactNumber" yaml:"contactNumber"`
	Address       string `json:"address" yaml:"address"`
	LinkedinURL   string `json:"linkedinUrl" yaml:"linkedinUrl"`
	GithubURL     string `json:"githubUrl" yaml:"githubUrl"`
	DateOfBirth   string `json:"dateOfBirth" yaml:"dateOfBirth"` // YYYY-MM-DD
}

// DocumentSection is one parsed section of canonical document content.
type DocumentSection struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

// PortfolioDocument is a generated portfolio document. Content is the canonical
// sectioned text and is the single source of truth: the rendered view is always
// recomputed from it, never cached.
type PortfolioDocument struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Content   string    `json:"content,omitempty"`
}

// Lite returns the document without its content, for list responses.
func (d PortfolioDocument) Lite() PortfolioDocument {
	d.Content = ""
	return d
}

// ComposeMeta holds the user-entered metadata for document composition.
type ComposeMeta struct {
	Title            string
	CareerFocus      string
	UsePersonalInfo  bool
	ShortDescription string
}

// SelectedItem is one assessment chosen for inclusion in a composed document.
// Empty metadata fields are omitted from the composed line, not blanked.
type SelectedItem struct {
	Label        string `json:"label"`
	CourseName   string `json:"courseName,omitempty"`
	YearSemester string `json:"yearSemester,omitempty"`
	Type         string `json:"type,omitempty"`
}
