package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-tailor/internal/structure"
	"github.com/jonathan/career-tailor/internal/synthesis"
	"github.com/jonathan/career-tailor/internal/types"
)

const sampleDoc = `# Jane Doe

jane@example.com | (555) 123-4567 | Springfield, IL | linkedin.com/in/janedoe

## Summary

Engineer with a decade of shipping.

## Professional Experience

**Acme** | Remote
Engineer, 01/2020 - Present

- Built the thing
- Shipped the other thing

**Globex** | Springfield, IL
Lead, 03/2017 - 12/2019

- Ran the team

## Skills

**Languages:** Go, Python
**Tools:** Docker

## Education

**State University**
BS in Computer Science, 2015
`

func TestParse_FullDocument(t *testing.T) {
	model, err := Parse(sampleDoc)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", model.Name)
	assert.Equal(t, "jane@example.com", model.Email)
	assert.Equal(t, "(555) 123-4567", model.Phone)
	assert.Equal(t, "Springfield, IL", model.Location)
	assert.Equal(t, "linkedin.com/in/janedoe", model.LinkedIn)
	assert.Equal(t, "Engineer with a decade of shipping.", model.Summary)

	require.Len(t, model.Experience, 2)
	first := model.Experience[0]
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, "Remote", first.Location)
	assert.Equal(t, "Engineer", first.Title)
	assert.Equal(t, "01/2020", first.StartDate)
	assert.Equal(t, "Present", first.EndDate)
	assert.Equal(t, []string{"Built the thing", "Shipped the other thing"}, first.Bullets)

	second := model.Experience[1]
	assert.Equal(t, "Globex", second.Company)
	assert.Equal(t, "12/2019", second.EndDate)
	assert.Equal(t, []string{"Ran the team"}, second.Bullets)

	assert.Equal(t, []string{"Go", "Python", "Docker"}, model.Skills)

	require.Len(t, model.Education, 1)
	assert.Equal(t, "State University", model.Education[0].School)
	assert.Equal(t, "BS in Computer Science", model.Education[0].Degree)
	assert.Equal(t, "2015", model.Education[0].Year)
}

func TestParse_EmptyDocument(t *testing.T) {
	for _, text := range []string{"", "   \n\n  "} {
		model, err := Parse(text)
		require.Error(t, err)
		assert.Nil(t, model)
		var pe *ParseError
		assert.ErrorAs(t, err, &pe)
	}
}

func TestParse_IgnoresUnrecognizedLines(t *testing.T) {
	model, err := Parse("# Jane Doe\n\nsome stray prose\n\n## Summary\n\nFine.\n")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", model.Name)
	assert.Equal(t, "Fine.", model.Summary)
}

func TestParse_TitleLineWithoutDates(t *testing.T) {
	model, err := Parse("# X\n\n## Experience\n\n**Acme**\nEngineer\n\n- Did it\n")

	require.NoError(t, err)
	require.Len(t, model.Experience, 1)
	assert.Equal(t, "Engineer", model.Experience[0].Title)
	assert.Empty(t, model.Experience[0].StartDate)
	assert.Empty(t, model.Experience[0].EndDate)
}

func TestParse_BulletsAreNotMistakenForContact(t *testing.T) {
	// A bullet containing "@" and "|" after the contact line is parsed as a
	// bullet, not a second contact line.
	doc := "# X\n\nx@y.com | (555) 000-1111\n\n## Experience\n\n**Acme**\nEngineer, 01/2020 - Present\n\n- Paged ops@acme.com | on-call\n"
	model, err := Parse(doc)

	require.NoError(t, err)
	assert.Equal(t, "x@y.com", model.Email)
	require.Len(t, model.Experience, 1)
	assert.Equal(t, []string{"Paged ops@acme.com | on-call"}, model.Experience[0].Bullets)
}

func TestParse_ContactLineDiscardsUnrecognizedParts(t *testing.T) {
	model, err := Parse("# X\n\nx@y.com | something-else | portfolio.example.com\n")

	require.NoError(t, err)
	assert.Equal(t, "x@y.com", model.Email)
	assert.Empty(t, model.Phone)
	assert.Empty(t, model.Location)
	assert.Empty(t, model.LinkedIn)
}

func TestParse_MultiParagraphSummary(t *testing.T) {
	model, err := Parse("# X\n\n## Summary\n\nFirst part.\nSecond part.\n")

	require.NoError(t, err)
	assert.Equal(t, "First part. Second part.", model.Summary)
}

func TestParse_SkillsWithoutCategoryPrefix(t *testing.T) {
	model, err := Parse("# X\n\n## Skills\n\nGo, Python, SQL\n")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, model.Skills)
}

func TestParse_ArbitrarySectionsAreSkipped(t *testing.T) {
	doc := "# X\n\n## Projects\n\n**Chrono** | Side project, 2021\n- Open-source scheduler\n\n## Skills\n\nGo\n"
	model, err := Parse(doc)

	require.NoError(t, err)
	assert.Empty(t, model.Experience)
	assert.Equal(t, []string{"Go"}, model.Skills)
}

func TestParse_RoundTripFromSynthesizer(t *testing.T) {
	in := synthesis.Input{
		Matches: []types.RankedMatch{
			{ItemType: types.ItemTypeAccomplishment, Text: "Built the thing", Company: "Acme", Title: "Engineer", Location: "Remote", StartDate: "01/2020", Score: 90},
			{ItemType: types.ItemTypeAccomplishment, Text: "Shipped v2", Company: "Acme", Title: "Engineer", Location: "Remote", StartDate: "01/2020", Score: 80},
			{ItemType: types.ItemTypeAccomplishment, Text: "Ran the team", Company: "Globex", Title: "Lead", Location: "Springfield, IL", StartDate: "03/2017", EndDate: "12/2019", Score: 70},
		},
		Skills: []types.Skill{
			{Name: "Go", Category: "Languages"},
			{Name: "Python", Category: "Languages"},
		},
		Education: []types.Education{
			{Institution: "State University", Degree: "BS", Field: "Computer Science", EndYear: "2015"},
		},
		Contact: types.Contact{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "(555) 123-4567",
			Location: "Springfield, IL",
		},
		Structure: structure.DefaultStructure(),
		Summary:   "Engineer with a decade of shipping.",
	}

	doc, err := synthesis.Synthesize(in)
	require.NoError(t, err)

	model, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", model.Name)
	assert.Equal(t, "jane@example.com", model.Email)
	assert.Equal(t, "(555) 123-4567", model.Phone)
	assert.Equal(t, "Springfield, IL", model.Location)
	assert.Equal(t, "Engineer with a decade of shipping.", model.Summary)

	require.Len(t, model.Experience, 2)
	assert.Equal(t, "Acme", model.Experience[0].Company)
	assert.Equal(t, []string{"Built the thing", "Shipped v2"}, model.Experience[0].Bullets)
	assert.Equal(t, "Present", model.Experience[0].EndDate)
	assert.Equal(t, "Globex", model.Experience[1].Company)
	assert.Equal(t, []string{"Ran the team"}, model.Experience[1].Bullets)

	assert.Equal(t, []string{"Go", "Python"}, model.Skills)

	require.Len(t, model.Education, 1)
	assert.Equal(t, "State University", model.Education[0].School)
	assert.Equal(t, "BS in Computer Science", model.Education[0].Degree)
	assert.Equal(t, "2015", model.Education[0].Year)
}

func TestParse_WindowsLineEndings(t *testing.T) {
	doc := strings.ReplaceAll(sampleDoc, "\n", "\r\n")
	model, err := Parse(doc)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", model.Name)
	require.Len(t, model.Experience, 2)
}
