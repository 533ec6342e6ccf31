// Package synthesis renders ranked matches, skills, education and contact
// details into the canonical markup document. The synthesizer never
// fabricates content: every emitted fact traces to an input field, and
// absent optional fields produce no placeholder text.
package synthesis

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-tailor/internal/types"
)

// Input bundles everything the synthesizer needs for one document.
type Input struct {
	Matches   []types.RankedMatch
	Skills    []types.Skill
	Education []types.Education
	Contact   types.Contact
	Structure types.ResumeStructure
	Summary   string
}

// Synthesize renders the canonical markup document for the resolved section
// plan. It returns a complete document or a typed error, never a partial one.
func Synthesize(in Input) (string, error) {
	if strings.TrimSpace(in.Contact.Name) == "" {
		return "", &SynthesisError{Message: "contact name is required"}
	}
	if len(in.Structure.Sections) == 0 {
		return "", &SynthesisError{Message: "resume structure has no sections"}
	}

	var doc docBuilder
	doc.line("# " + in.Contact.Name)

	if contactLine := buildContactLine(in.Contact, in.Structure.ContactFields); contactLine != "" {
		doc.blank()
		doc.line(contactLine)
	}

	for _, section := range in.Structure.Sections {
		switch section.Type {
		case types.SectionSummary:
			writeSummary(&doc, section.Label, in.Summary)
		case types.SectionExperience:
			writeExperience(&doc, section.Label, in.Matches, in.Structure.IncludeRoleSummaries)
		case types.SectionSkill:
			writeSkills(&doc, section.Label, in.Skills)
		case types.SectionEducation:
			writeEducation(&doc, section.Label, in.Education)
		default:
			// Any other type names a library-entry category.
			writeLibrarySection(&doc, section, in.Matches)
		}
	}

	return doc.String(), nil
}

// buildContactLine joins the present contact fields with " | " in the fixed
// order email, phone, location, linkedin, portfolio, github, restricted to
// the structure's contact-field set.
func buildContactLine(contact types.Contact, fields []string) string {
	allowed := make(map[string]bool, len(fields))
	for _, f := range fields {
		allowed[strings.ToLower(f)] = true
	}

	ordered := []struct {
		field string
		value string
	}{
		{"email", contact.Email},
		{"phone", contact.Phone},
		{"location", contact.Location},
		{"linkedin", contact.LinkedIn},
		{"portfolio", contact.Portfolio},
		{"github", contact.GitHub},
	}

	var parts []string
	for _, entry := range ordered {
		if entry.value == "" || !allowed[entry.field] {
			continue
		}
		parts = append(parts, entry.value)
	}
	return strings.Join(parts, " | ")
}

func writeSummary(doc *docBuilder, label, summary string) {
	if strings.TrimSpace(summary) == "" {
		return
	}
	doc.heading(label)
	doc.line(summary)
}

// experienceGroup collects the matched accomplishments of one (company,
// title) pair, preserving first-seen order across the ranked matches.
type experienceGroup struct {
	company     string
	title       string
	location    string
	startDate   string
	endDate     string
	roleSummary string
	bullets     []string
}

func writeExperience(doc *docBuilder, label string, matches []types.RankedMatch, includeRoleSummaries bool) {
	var groups []*experienceGroup
	index := make(map[string]*experienceGroup)

	for _, m := range matches {
		if m.IsLibraryEntry {
			continue
		}
		key := m.Company + "\x00" + m.Title
		group, ok := index[key]
		if !ok {
			group = &experienceGroup{
				company:     m.Company,
				title:       m.Title,
				location:    m.Location,
				startDate:   m.StartDate,
				endDate:     m.EndDate,
				roleSummary: m.RoleSummary,
			}
			index[key] = group
			groups = append(groups, group)
		}
		group.bullets = append(group.bullets, m.Text)
	}

	if len(groups) == 0 {
		return
	}

	doc.heading(label)
	for i, group := range groups {
		if i > 0 {
			doc.blank()
		}

		header := "**" + group.company + "**"
		if group.location != "" {
			header += " | " + group.location
		}
		doc.line(header)

		titleLine := group.title
		if group.startDate != "" {
			end := group.endDate
			if end == "" {
				end = "Present"
			}
			titleLine += fmt.Sprintf(", %s - %s", group.startDate, end)
		}
		doc.line(titleLine)

		if includeRoleSummaries && group.roleSummary != "" {
			doc.line("_" + group.roleSummary + "_")
		}

		doc.blank()
		for _, bullet := range group.bullets {
			doc.line("- " + bullet)
		}
	}
}

func writeSkills(doc *docBuilder, label string, skills []types.Skill) {
	if len(skills) == 0 {
		return
	}

	var categories []string
	grouped := make(map[string][]string)
	for _, skill := range skills {
		category := skill.Category
		if category == "" {
			category = "Other"
		}
		if _, ok := grouped[category]; !ok {
			categories = append(categories, category)
		}
		grouped[category] = append(grouped[category], skill.Name)
	}

	doc.heading(label)
	for _, category := range categories {
		doc.line(fmt.Sprintf("**%s:** %s", category, strings.Join(grouped[category], ", ")))
	}
}

func writeEducation(doc *docBuilder, label string, education []types.Education) {
	if len(education) == 0 {
		return
	}

	doc.heading(label)
	for i, edu := range education {
		if i > 0 {
			doc.blank()
		}

		header := "**" + edu.Institution + "**"
		if edu.Location != "" {
			header += " | " + edu.Location
		}
		doc.line(header)

		degree := edu.Degree
		if edu.Field != "" {
			degree += " in " + edu.Field
		}
		if edu.EndYear != "" {
			degree += ", " + edu.EndYear
		}
		if edu.GPA != "" {
			degree += " | GPA: " + edu.GPA
		}
		if edu.Honors != "" {
			degree += " | " + edu.Honors
		}
		doc.line(degree)
	}
}

func writeLibrarySection(doc *docBuilder, section types.Section, matches []types.RankedMatch) {
	var entries []types.RankedMatch
	for _, m := range matches {
		if m.IsLibraryEntry && m.ItemType == section.Type {
			entries = append(entries, m)
		}
	}
	if len(entries) == 0 {
		return
	}

	doc.heading(section.Label)
	for i, entry := range entries {
		if i > 0 {
			doc.blank()
		}

		// For library entries the Company field carries the subtitle.
		title := "**" + entry.Title + "**"
		if entry.Company != "" {
			title += " | " + entry.Company
		}
		if entry.StartDate != "" {
			title += ", " + entry.StartDate
			if entry.EndDate != "" {
				title += " - " + entry.EndDate
			}
		}
		doc.line(title)
		doc.line("- " + entry.Text)
	}
}

// docBuilder accumulates markup lines, keeping heading spacing uniform and
// avoiding doubled blank lines.
type docBuilder struct {
	lines []string
}

func (b *docBuilder) line(s string) {
	b.lines = append(b.lines, s)
}

func (b *docBuilder) blank() {
	if len(b.lines) == 0 || b.lines[len(b.lines)-1] == "" {
		return
	}
	b.lines = append(b.lines, "")
}

func (b *docBuilder) heading(label string) {
	b.blank()
	b.line("## " + label)
	b.blank()
}

func (b *docBuilder) String() string {
	return strings.Join(b.lines, "\n") + "\n"
}
