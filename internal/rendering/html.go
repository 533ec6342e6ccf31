package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/career-tailor/internal/types"
)

// Fixed section labels used when rendering the intermediate model. The model
// carries no section labels of its own, so the renderer applies the standard
// set.
const (
	labelSummary    = "Summary"
	labelExperience = "Professional Experience"
	labelSkills     = "Skills"
	labelEducation  = "Education"
)

// documentTemplate lays out the fixed typography rules: centered bold 14pt
// name, centered 10pt contact line, bold 11pt uppercase section headings,
// indented bullet lists, and a title/date line with the date range pushed to
// the right page edge.
var documentTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: Letter; margin: 0.75in; }
  body { font-family: Calibri, 'Helvetica Neue', Arial, sans-serif; font-size: 10pt; color: #000; margin: 0; }
  .name { font-size: 14pt; font-weight: bold; text-align: center; }
  .contact { font-size: 10pt; text-align: center; margin-bottom: 6pt; }
  h2 { font-size: 11pt; font-weight: bold; text-transform: uppercase; margin: 10pt 0 4pt 0; }
  .entry-header { font-weight: bold; margin-top: 6pt; }
  .title-line { display: flex; justify-content: space-between; }
  .title-line .date { white-space: nowrap; }
  ul { margin: 2pt 0 4pt 0; padding-left: 18pt; }
  li { margin-bottom: 2pt; }
  .degree { font-style: italic; }
</style>
</head>
<body>
{{- if .Name}}
<div class="name">{{.Name}}</div>
{{- end}}
{{- if .ContactLine}}
<div class="contact">{{.ContactLine}}</div>
{{- end}}
{{- if .Summary}}
<h2>{{.SummaryLabel}}</h2>
<p>{{.Summary}}</p>
{{- end}}
{{- if .Experience}}
<h2>{{.ExperienceLabel}}</h2>
{{- range .Experience}}
<div class="entry-header">{{.Header}}</div>
{{- if or .Title .Date}}
<div class="title-line"><span>{{.Title}}</span><span class="date">{{.Date}}</span></div>
{{- end}}
{{- if .Bullets}}
<ul>
{{- range .Bullets}}
<li>{{range .}}{{if .Bold}}<strong>{{.Text}}</strong>{{else}}{{.Text}}{{end}}{{end}}</li>
{{- end}}
</ul>
{{- end}}
{{- end}}
{{- end}}
{{- if .Skills}}
<h2>{{.SkillsLabel}}</h2>
<p>{{.Skills}}</p>
{{- end}}
{{- if .Education}}
<h2>{{.EducationLabel}}</h2>
{{- range .Education}}
<div class="entry-header">{{.School}}</div>
{{- if .DegreeLine}}
<div class="degree">{{.DegreeLine}}</div>
{{- end}}
{{- end}}
{{- end}}
</body>
</html>
`))

type experienceView struct {
	Header  string
	Title   string
	Date    string
	Bullets [][]Run
}

type educationView struct {
	School     string
	DegreeLine string
}

type documentView struct {
	Name            string
	ContactLine     string
	SummaryLabel    string
	Summary         string
	ExperienceLabel string
	Experience      []experienceView
	SkillsLabel     string
	Skills          string
	EducationLabel  string
	Education       []educationView
}

// BuildHTML converts the intermediate model into the styled document markup.
// A field absent from the model produces no corresponding node; the renderer
// performs no information-missing substitutions.
func BuildHTML(model *types.IntermediateResume) (string, error) {
	if model == nil {
		return "", &RenderError{Message: "intermediate model is nil"}
	}

	view := documentView{
		Name:            model.Name,
		ContactLine:     buildContactLine(model),
		SummaryLabel:    labelSummary,
		Summary:         model.Summary,
		ExperienceLabel: labelExperience,
		SkillsLabel:     labelSkills,
		Skills:          strings.Join(model.Skills, ", "),
		EducationLabel:  labelEducation,
	}

	for _, exp := range model.Experience {
		header := exp.Company
		if exp.Location != "" {
			header += " | " + exp.Location
		}

		date := ""
		if exp.StartDate != "" {
			end := exp.EndDate
			if end == "" {
				end = "Present"
			}
			date = exp.StartDate + " - " + end
		}

		bullets := make([][]Run, 0, len(exp.Bullets))
		for _, bullet := range exp.Bullets {
			bullets = append(bullets, SegmentBoldRuns(bullet))
		}

		view.Experience = append(view.Experience, experienceView{
			Header:  header,
			Title:   exp.Title,
			Date:    date,
			Bullets: bullets,
		})
	}

	for _, edu := range model.Education {
		degreeLine := edu.Degree
		if edu.Year != "" {
			if degreeLine != "" {
				degreeLine += ", "
			}
			degreeLine += edu.Year
		}
		view.Education = append(view.Education, educationView{
			School:     edu.School,
			DegreeLine: degreeLine,
		})
	}

	var out strings.Builder
	if err := documentTemplate.Execute(&out, view); err != nil {
		return "", &TemplateError{Message: "failed to execute document template", Cause: err}
	}
	return out.String(), nil
}

// buildContactLine joins the present contact fields with " | ".
func buildContactLine(model *types.IntermediateResume) string {
	var parts []string
	for _, part := range []string{model.Email, model.Phone, model.Location, model.LinkedIn} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " | ")
}
