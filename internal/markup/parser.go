// Package markup parses a canonical markup document back into the
// intermediate resume model. The grammar is the restricted Markdown dialect
// produced by the synthesizer: "# " for the name, one contact line containing
// "@" and "|", "## " section headings, "**bold**" spans, "- " bullets and
// italic "_..._" role-summary lines.
//
// Parsing is a single-pass, line-oriented state machine with one state per
// section kind. Unrecognized lines are ignored; the parser never guesses
// missing required fields.
package markup

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-tailor/internal/types"
)

type parserState int

const (
	stateNone parserState = iota
	stateSummary
	stateExperience
	stateSkills
	stateEducation
	stateOther
)

var (
	boldSpanRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	phoneRe    = regexp.MustCompile(`\(\d{3}\)`)
	// cityStateRe matches "City, ST"-style capitalization, the heuristic
	// used to sniff a location out of the contact line. The contact line
	// cannot always distinguish a location from an unrecognized extra
	// field; unmatched parts are discarded by design.
	cityStateRe = regexp.MustCompile(`^[A-Z][A-Za-z .'-]*,\s?[A-Z]{2}$`)
	dateRangeRe = regexp.MustCompile(`(\d{2}/\d{4})\s*-\s*(\d{2}/\d{4}|Present)`)
	yearRe      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// parser holds the state of one parsing pass.
type parser struct {
	model types.IntermediateResume
	state parserState

	currentExp    *types.ExperienceEntry
	awaitingTitle bool

	currentEdu     *types.EducationEntry
	awaitingDegree bool

	summaryParts []string
	sawContent   bool
}

// Parse turns a markup document into the intermediate resume model.
func Parse(text string) (*types.IntermediateResume, error) {
	p := &parser{}

	for _, raw := range strings.Split(text, "\n") {
		p.consume(strings.TrimRight(raw, " \t\r"))
	}
	p.flushExperience()
	p.flushEducation()

	if !p.sawContent {
		return nil, &ParseError{Message: "document contains no recognizable content"}
	}

	p.model.Summary = strings.TrimSpace(strings.Join(p.summaryParts, ""))
	return &p.model, nil
}

// consume processes a single line.
func (p *parser) consume(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	// Name line. Does not change state.
	if strings.HasPrefix(trimmed, "# ") {
		p.model.Name = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		p.sawContent = true
		return
	}

	// Section heading. Flushes any open records.
	if strings.HasPrefix(trimmed, "## ") {
		p.enterSection(strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))))
		p.sawContent = true
		return
	}

	// Contact line: the first line carrying both "@" and "|".
	if p.model.Email == "" && strings.Contains(trimmed, "@") && strings.Contains(trimmed, "|") {
		p.parseContactLine(trimmed)
		p.sawContent = true
		return
	}

	switch p.state {
	case stateSummary:
		p.summaryParts = append(p.summaryParts, trimmed+" ")
	case stateExperience:
		p.consumeExperienceLine(trimmed)
	case stateSkills:
		p.consumeSkillsLine(trimmed)
	case stateEducation:
		p.consumeEducationLine(trimmed)
	case stateNone, stateOther:
		// Ignored: arbitrary library-entry sections do not round-trip
		// through this parser.
	}
}

// enterSection maps a lowercased heading to a parser state.
func (p *parser) enterSection(heading string) {
	p.flushExperience()
	p.flushEducation()

	switch {
	case strings.Contains(heading, "experience"):
		p.state = stateExperience
	case strings.Contains(heading, "skill"):
		p.state = stateSkills
	case strings.Contains(heading, "education"):
		p.state = stateEducation
	case strings.Contains(heading, "summary"):
		p.state = stateSummary
	default:
		p.state = stateOther
	}
}

// parseContactLine sniffs contact fields out of the "|"-separated parts.
func (p *parser) parseContactLine(line string) {
	for _, part := range strings.Split(line, "|") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
		case strings.Contains(part, "@"):
			p.model.Email = part
		case phoneRe.MatchString(part):
			p.model.Phone = part
		case strings.Contains(strings.ToLower(part), "linkedin"):
			p.model.LinkedIn = part
		case cityStateRe.MatchString(part):
			p.model.Location = part
		}
		// Anything else is discarded.
	}
}

func (p *parser) consumeExperienceLine(line string) {
	if strings.HasPrefix(line, "**") {
		p.flushExperience()
		entry := types.ExperienceEntry{}
		if m := boldSpanRe.FindStringSubmatch(line); m != nil {
			entry.Company = strings.TrimSpace(m[1])
		}
		if idx := strings.Index(line, "|"); idx >= 0 {
			entry.Location = strings.TrimSpace(line[idx+1:])
		}
		p.currentExp = &entry
		p.awaitingTitle = true
		return
	}

	if strings.HasPrefix(line, "- ") {
		if p.currentExp != nil {
			p.currentExp.Bullets = append(p.currentExp.Bullets, strings.TrimSpace(strings.TrimPrefix(line, "- ")))
			p.awaitingTitle = false
		}
		return
	}

	if p.awaitingTitle && p.currentExp != nil {
		p.parseTitleLine(line)
		p.awaitingTitle = false
	}
}

// parseTitleLine splits "Title, MM/YYYY - MM/YYYY" (or "- Present") into
// title and date pair. Without a date match the whole line is the title.
func (p *parser) parseTitleLine(line string) {
	if m := dateRangeRe.FindStringSubmatchIndex(line); m != nil {
		p.currentExp.StartDate = line[m[2]:m[3]]
		p.currentExp.EndDate = line[m[4]:m[5]]
		p.currentExp.Title = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[:m[0]]), ","))
		return
	}
	p.currentExp.Title = strings.TrimSpace(line)
}

func (p *parser) consumeSkillsLine(line string) {
	// Strip a leading "**Category:**" span so only the names remain.
	line = strings.TrimSpace(boldSpanRe.ReplaceAllString(line, ""))
	for _, name := range strings.Split(line, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			p.model.Skills = append(p.model.Skills, name)
		}
	}
}

func (p *parser) consumeEducationLine(line string) {
	if strings.HasPrefix(line, "**") {
		p.flushEducation()
		entry := types.EducationEntry{}
		if m := boldSpanRe.FindStringSubmatch(line); m != nil {
			entry.School = strings.TrimSpace(m[1])
		}
		p.currentEdu = &entry
		p.awaitingDegree = true
		return
	}

	if p.awaitingDegree && p.currentEdu != nil {
		if m := yearRe.FindStringIndex(line); m != nil {
			p.currentEdu.Year = line[m[0]:m[1]]
			p.currentEdu.Degree = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[:m[0]]), ","))
		} else if idx := strings.Index(line, "|"); idx >= 0 {
			p.currentEdu.Degree = strings.TrimSpace(line[:idx])
		} else {
			p.currentEdu.Degree = strings.TrimSpace(line)
		}
		p.awaitingDegree = false
	}
}

func (p *parser) flushExperience() {
	if p.currentExp != nil {
		p.model.Experience = append(p.model.Experience, *p.currentExp)
		p.currentExp = nil
	}
	p.awaitingTitle = false
}

func (p *parser) flushEducation() {
	if p.currentEdu != nil {
		p.model.Education = append(p.model.Education, *p.currentEdu)
		p.currentEdu = nil
	}
	p.awaitingDegree = false
}
