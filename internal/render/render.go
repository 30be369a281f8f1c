// Package render projects a stored portfolio document plus live profile and
// assessment data into a fully populated document view. Rendering is a pure
// recomputation: the stored document is never mutated, and every field falls
// back to a sentinel rather than staying empty.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spark-portfolio/spark/internal/docparse"
	"github.com/spark-portfolio/spark/internal/tags"
	"github.com/spark-portfolio/spark/internal/types"
)

const (
	universityName     = "Mahidol University"
	programLengthYears = 4
)

// RenderedProject is one project entry of the rendered document. Fallback
// entries come from the stored project lines when no live assessment matches.
type RenderedProject struct {
	Name         string `json:"name"`
	CourseName   string `json:"courseName,omitempty"`
	YearSemester string `json:"yearSemester,omitempty"`
	Description  string `json:"description"`
	Fallback     bool   `json:"fallback,omitempty"`
}

// Identity groups the contact fields shown in the profile section and the
// contact slip.
type Identity struct {
	Birthdate   string `json:"birthdate"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedinUrl"`
	GithubURL   string `json:"githubUrl"`
}

// Education holds the rendered education subsection.
type Education struct {
	Level          string `json:"level"`
	Faculty        string `json:"faculty"`
	University     string `json:"university"`
	GraduationYear string `json:"graduationYear"`
}

// Document is the rendered view of a portfolio document.
type Document struct {
	Title            string            `json:"title"`
	StudentName      string            `json:"studentName"`
	StudentID        string            `json:"studentId"`
	Date             string            `json:"date"`
	FacultyLine      string            `json:"facultyLine"`
	CareerFocus      string            `json:"careerFocus"`
	About            string            `json:"about"`
	Identity         Identity          `json:"identity"`
	Education        Education         `json:"education"`
	HardSkills       []string          `json:"hardSkills"`
	SoftSkills       []string          `json:"softSkills"`
	Projects         []RenderedProject `json:"projects"`
	ShortDescription string            `json:"shortDescription"`
}

// Render assembles the document view from stored canonical content, the
// current profile record, and the current assessment pool. Selected project
// labels are matched case-insensitively against assessment names; misses fall
// back to the stored line text with a generic relevance sentence.
func Render(doc types.PortfolioDocument, profile types.Profile, assessments []types.Assessment) Document {
	sections := docparse.Sections(doc.Content)

	basic := docparse.SectionByHeading(sections, "Basic Information")
	short := docparse.SectionByHeading(sections, "Short Description")
	selected := docparse.SectionByHeading(sections, "Selected Projects")

	var basicLines, selectedLines []string
	if basic != nil {
		basicLines = basic.Lines
	}
	if selected != nil {
		selectedLines = selected.Lines
	}

	careerFocus := docparse.LineValue(basicLines, "Career Focus:")
	studentName := strings.TrimSpace(profile.Name + " " + profile.Surname)
	if studentName == "" {
		studentName = "Student"
	}

	matched := matchAssessments(docparse.ProjectNames(selectedLines), assessments)

	rendered := Document{
		Title:            doc.Title,
		StudentName:      studentName,
		StudentID:        orMissing(profile.StudentID),
		Date:             doc.CreatedAt.Format("02/01/2006"),
		FacultyLine:      fmt.Sprintf("%s, %s, %s", universityName, orMissing(profile.Faculty), orMissing(profile.Minor)),
		CareerFocus:      careerFocus,
		About:            aboutParagraph(studentName, careerFocus),
		Identity:         identityOf(profile),
		Education:        educationOf(profile),
		HardSkills:       hardSkills(matched),
		SoftSkills:       softSkills(matched),
		Projects:         projects(matched, selectedLines, careerFocus),
		ShortDescription: docparse.Description(short),
	}
	return rendered
}

// matchAssessments joins stored project labels against the live assessment
// pool by name, case-insensitively, preserving pool order.
func matchAssessments(names []string, assessments []types.Assessment) []types.Assessment {
	if len(names) == 0 {
		return nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[strings.ToLower(name)] = true
	}
	var matched []types.Assessment
	for _, a := range assessments {
		if want[strings.ToLower(a.ProjectName)] {
			matched = append(matched, a)
		}
	}
	return matched
}

func identityOf(profile types.Profile) Identity {
	return Identity{
		Birthdate:   formatBirthDate(profile.DateOfBirth),
		Phone:       orMissing(profile.ContactNumber),
		Email:       orMissing(profile.Email),
		LinkedinURL: orMissing(profile.LinkedinURL),
		GithubURL:   orMissing(profile.GithubURL),
	}
}

func educationOf(profile types.Profile) Education {
	return Education{
		Level:          "Bachelor's Degree",
		Faculty:        orMissing(profile.Faculty),
		University:     universityName,
		GraduationYear: GraduationYear(profile.Year),
	}
}

// GraduationYear projects the expected graduation year from the study year and
// the fixed four-year program length. Non-positive years yield the sentinel.
func GraduationYear(studyYear int) string {
	if studyYear <= 0 {
		return docparse.Missing
	}
	yearsLeft := programLengthYears - studyYear
	if yearsLeft < 0 {
		yearsLeft = 0
	}
	return strconv.Itoa(time.Now().Year() + yearsLeft)
}

// hardSkills aggregates the union of matched assessments' competency tags,
// first-seen order, with placeholder tags normalized against the assessment's
// course name.
func hardSkills(matched []types.Assessment) []string {
	seen := make(map[string]bool)
	var skills []string
	for _, a := range matched {
		for _, tag := range tags.Normalize(a.CompetencyTags, a.CourseName) {
			if !seen[tag] {
				seen[tag] = true
				skills = append(skills, tag)
			}
		}
	}
	return skills
}

// softSkills returns the fixed baseline triplet plus a collaboration tag
// derived from the matched assessments' types.
func softSkills(matched []types.Assessment) []string {
	skills := []string{"Team Collaboration", "Communication", "Problem Solving"}
	for _, a := range matched {
		if a.Type == types.AssessmentGroup {
			return append(skills, "Cross-functional teamwork")
		}
	}
	return append(skills, "Independent ownership")
}

func projects(matched []types.Assessment, selectedLines []string, careerFocus string) []RenderedProject {
	if len(matched) > 0 {
		out := make([]RenderedProject, 0, len(matched))
		for _, a := range matched {
			out = append(out, RenderedProject{
				Name:         a.ProjectName,
				CourseName:   a.CourseName,
				YearSemester: a.YearSemester,
				Description:  focusDescription(a, careerFocus),
			})
		}
		return out
	}

	// No live assessment matched any stored label; fall back to the stored
	// project lines with a generic relevance sentence.
	var out []RenderedProject
	for _, line := range docparse.ProjectLines(selectedLines) {
		out = append(out, RenderedProject{
			Name:        docparse.StripInline(line),
			Description: fmt.Sprintf("Relevant to %s through applied coursework and deliverables.", careerFocus),
			Fallback:    true,
		})
	}
	return out
}

// focusDescription frames a project description for the chosen career focus.
// The stored focus is free text, so it is resolved to the supported focus enum
// with Data Analyst as the fallback arm.
func focusDescription(a types.Assessment, careerFocus string) string {
	focus, ok := types.ParseCareerFocus(careerFocus)
	if !ok {
		focus = types.FocusDataAnalyst
	}
	switch focus {
	case types.FocusSoftwareEngineer:
		return fmt.Sprintf("%s demonstrates delivery-oriented software engineering through %s implementation, code collaboration, and practical system building.",
			a.ProjectName, strings.ToLower(a.Type))
	case types.FocusDataEngineer:
		return fmt.Sprintf("%s aligns with data engineering goals by emphasizing data systems usage, structured implementation, and technical reliability.",
			a.ProjectName)
	default:
		return fmt.Sprintf("%s supports analyst outcomes by showing data interpretation, evidence-based insights, and communication of project results.",
			a.ProjectName)
	}
}

func aboutParagraph(studentName, careerFocus string) string {
	return fmt.Sprintf("%s is a %s candidate with expertise in ICT coursework and project-based delivery. "+
		"Career goal: contribute to impactful %s work and continue growing through real-world systems and team collaboration.",
		studentName, careerFocus, strings.ToLower(careerFocus))
}

func orMissing(value string) string {
	if strings.TrimSpace(value) == "" {
		return docparse.Missing
	}
	return value
}

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// formatBirthDate renders an ISO date as DD/MM/YYYY. Unparseable values pass
// through as written; empty values yield the sentinel.
func formatBirthDate(value string) string {
	if value == "" {
		return docparse.Missing
	}
	if !isoDate.MatchString(value) {
		return value
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return d.Format("02/01/2006")
}
