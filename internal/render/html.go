package render

import (
	"html/template"
	"strings"
)

// docTemplate projects a rendered Document into the .docPaper markup consumed
// by the export adapters. Structure mirrors the on-screen document view:
// header, identity, education, skills, projects, short description, contact slip.
var docTemplate = template.Must(template.New("docPaper").Parse(`<article class="docPaper">
  <header class="docPaperHeader">
    <div class="docPaperTitle">{{.Title}}</div>
    <div class="docMetaRow">
      <span><b>Student:</b> {{.StudentName}}</span>
      <span><b>Student ID:</b> {{.StudentID}}</span>
      <span><b>Date:</b> {{.Date}}</span>
    </div>
  </header>
  <section class="docSection">
    <h2>Name and Surname</h2>
    <p>{{.StudentName}}</p>
  </section>
  <section class="docSection">
    <h2>University, Faculty, Minor</h2>
    <p>{{.FacultyLine}}</p>
  </section>
  <section class="docSection">
    <h2>Chosen Occupation</h2>
    <p>{{.CareerFocus}}</p>
  </section>
  <section class="docSection">
    <h2>Profile / About Me</h2>
    <p>{{.About}}</p>
    <div class="docInlineList">
      <span><b>Birthdate:</b> {{.Identity.Birthdate}}</span>
      <span><b>Phone:</b> {{.Identity.Phone}}</span>
      <span><b>Email:</b> {{.Identity.Email}}</span>
      <span><b>LinkedIn:</b> {{.Identity.LinkedinURL}}</span>
      <span><b>GitHub:</b> {{.Identity.GithubURL}}</span>
    </div>
  </section>
  <section class="docSection">
    <h2>Education</h2>
    <ul>
      <li><b>Level:</b> {{.Education.Level}}</li>
      <li><b>Faculty / University:</b> {{.Education.Faculty}} / {{.Education.University}}</li>
      <li><b>Year of Graduation:</b> {{.Education.GraduationYear}}</li>
    </ul>
  </section>
  <section class="docSection">
    <h2>Skills</h2>
    <p><b>Technical Skills (Hard Skills)</b></p>
    {{if .HardSkills}}<ul>{{range .HardSkills}}<li>{{.}}</li>{{end}}</ul>{{else}}<p>—</p>{{end}}
    <p><b>Collaboration Skills (Soft Skills)</b></p>
    <ul>{{range .SoftSkills}}<li>{{.}}</li>{{end}}</ul>
  </section>
  <section class="docSection">
    <h2>Chosen Projects</h2>
    {{if .Projects}}<ul>
      {{range .Projects}}<li><b>{{.Name}}</b>{{if .CourseName}} ({{.CourseName}}, {{.YearSemester}}){{end}}<br />{{.Description}}</li>
      {{end}}</ul>{{else}}<p>No project selected.</p>{{end}}
  </section>
  <section class="docSection">
    <h2>Short Description</h2>
    <p>{{.ShortDescription}}</p>
  </section>
  <footer class="docContactSlip">
    <div class="docContactSlipTitle">Contact Information Slip (For HR)</div>
    <div class="docSlipRow"><b>Name:</b> {{.StudentName}}</div>
    <div class="docSlipRow"><b>Phone:</b> {{.Identity.Phone}}</div>
    <div class="docSlipRow"><b>Email:</b> {{.Identity.Email}}</div>
    <div class="docSlipRow"><b>LinkedIn:</b> {{.Identity.LinkedinURL}}</div>
    <div class="docSlipRow"><b>GitHub:</b> {{.Identity.GithubURL}}</div>
  </footer>
</article>`))

// HTML renders the .docPaper markup for a rendered document.
func HTML(doc Document) (string, error) {
	var out strings.Builder
	if err := docTemplate.Execute(&out, doc); err != nil {
		return "", err
	}
	return out.String(), nil
}
