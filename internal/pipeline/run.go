// Package pipeline provides the high-level orchestration for the resume
// matching-and-synthesis process: resolve structure, fetch library data,
// match, synthesize markup, persist, and on demand parse and render the
// binary document.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-tailor/internal/markup"
	"github.com/jonathan/career-tailor/internal/matching"
	"github.com/jonathan/career-tailor/internal/rendering"
	"github.com/jonathan/career-tailor/internal/structure"
	"github.com/jonathan/career-tailor/internal/synthesis"
	"github.com/jonathan/career-tailor/internal/types"
)

// Store is the persistence surface the pipeline depends on. *db.DB
// implements it.
type Store interface {
	ListAccomplishmentItems(ctx context.Context, userID uuid.UUID) ([]types.MatchItem, error)
	ListLibraryItems(ctx context.Context, userID uuid.UUID) ([]types.MatchItem, error)
	ListSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error)
	ListEducation(ctx context.Context, userID uuid.UUID) ([]types.Education, error)
	GetContact(ctx context.Context, userID uuid.UUID) (*types.Contact, error)
	GetResumeStructure(ctx context.Context, userID uuid.UUID) (*types.ResumeStructure, error)
	CreateGeneratedResume(ctx context.Context, userID uuid.UUID, targetCompany, targetRole, markup string) (uuid.UUID, error)
	GetGeneratedResume(ctx context.Context, userID, id uuid.UUID) (*types.GeneratedResume, error)
	SetRenderedPath(ctx context.Context, userID, id uuid.UUID, renderedPath string) error
}

// DocumentPrinter produces the binary document bytes from styled markup.
type DocumentPrinter interface {
	Print(ctx context.Context, html string) ([]byte, error)
}

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// Pipeline wires the matching engine, storage and renderer together for one
// acting user. The scoring strategy is fixed at construction.
type Pipeline struct {
	store   Store
	engine  *matching.Engine
	printer DocumentPrinter
}

// New creates a pipeline over the given store, scoring strategy and printer.
func New(store Store, scorer matching.Scorer, printer DocumentPrinter) *Pipeline {
	return &Pipeline{
		store:   store,
		engine:  matching.NewEngine(scorer),
		printer: printer,
	}
}

// GenerateOptions holds the inputs for one generation call. The acting user
// is passed explicitly; the pipeline never resolves identity from ambient
// state.
type GenerateOptions struct {
	UserID     uuid.UUID
	Profile    *types.SuccessProfile
	Summary    string
	OnProgress ProgressCallback
}

// GenerateResult is the outcome of a generation call.
type GenerateResult struct {
	Status
	DocumentID         uuid.UUID          `json:"document_id,omitempty"`
	Markup             string             `json:"markup,omitempty"`
	Match              *types.MatchResult `json:"match,omitempty"`
	StructureConfirmed bool               `json:"structure_confirmed"`
}

// libraryData is everything fetched concurrently before matching.
type libraryData struct {
	accomplishments []types.MatchItem
	libraryEntries  []types.MatchItem
	skills          []types.Skill
	education       []types.Education
	contact         *types.Contact
	savedStructure  *types.ResumeStructure
}

// Generate runs the matching-and-synthesis flow and persists the markup
// document. It never partially succeeds: the document row is created only
// after a complete markup document exists.
func (p *Pipeline) Generate(ctx context.Context, opts GenerateOptions) *GenerateResult {
	emit := func(step, message string) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Step: step, Message: message})
		}
	}

	if opts.Profile == nil {
		return &GenerateResult{Status: failStatus(&matching.ValidationError{Field: "profile", Message: "success profile is required"})}
	}
	if err := opts.Profile.Validate(); err != nil {
		return &GenerateResult{Status: failStatus(&matching.ValidationError{Field: "profile", Message: "invalid success profile", Cause: err})}
	}

	emit("fetch", "loading career library")
	data, err := p.fetchLibrary(ctx, opts.UserID)
	if err != nil {
		log.Printf("pipeline: fetch failed for user %s: %v", opts.UserID, err)
		return &GenerateResult{Status: failStatus(err)}
	}

	resolved, confirmed := structure.Resolve(data.savedStructure)
	if !confirmed {
		emit("structure", "no saved structure; using the default plan")
	}

	emit("match", fmt.Sprintf("scoring %d items", len(data.accomplishments)+len(data.libraryEntries)))
	items := append(append([]types.MatchItem{}, data.accomplishments...), data.libraryEntries...)
	matchResult, err := p.engine.Match(ctx, opts.Profile, items)
	if err != nil {
		log.Printf("pipeline: matching failed for user %s: %v", opts.UserID, err)
		return &GenerateResult{Status: failStatus(err)}
	}

	emit("synthesize", "rendering markup document")
	doc, err := synthesis.Synthesize(synthesis.Input{
		Matches:   matchResult.Matches,
		Skills:    data.skills,
		Education: data.education,
		Contact:   *data.contact,
		Structure: resolved,
		Summary:   opts.Summary,
	})
	if err != nil {
		log.Printf("pipeline: synthesis failed for user %s: %v", opts.UserID, err)
		return &GenerateResult{Status: failStatus(err)}
	}

	emit("persist", "storing generated document")
	docID, err := p.store.CreateGeneratedResume(ctx, opts.UserID, opts.Profile.TargetCompany, opts.Profile.TargetRole, doc)
	if err != nil {
		log.Printf("pipeline: persist failed for user %s: %v", opts.UserID, err)
		return &GenerateResult{Status: failStatus(err)}
	}

	return &GenerateResult{
		Status:             okStatus(),
		DocumentID:         docID,
		Markup:             doc,
		Match:              matchResult,
		StructureConfirmed: confirmed,
	}
}

// fetchLibrary loads the independent read-only inputs concurrently.
func (p *Pipeline) fetchLibrary(ctx context.Context, userID uuid.UUID) (*libraryData, error) {
	var data libraryData
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := p.store.ListAccomplishmentItems(gCtx, userID)
		data.accomplishments = items
		return err
	})
	g.Go(func() error {
		items, err := p.store.ListLibraryItems(gCtx, userID)
		data.libraryEntries = items
		return err
	})
	g.Go(func() error {
		skills, err := p.store.ListSkills(gCtx, userID)
		data.skills = skills
		return err
	})
	g.Go(func() error {
		education, err := p.store.ListEducation(gCtx, userID)
		data.education = education
		return err
	})
	g.Go(func() error {
		contact, err := p.store.GetContact(gCtx, userID)
		data.contact = contact
		return err
	})
	g.Go(func() error {
		saved, err := p.store.GetResumeStructure(gCtx, userID)
		data.savedStructure = saved
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, &matching.FetchError{Message: "failed to load career library", Cause: err}
	}
	return &data, nil
}

// RenderOptions holds the inputs for rendering a stored document.
type RenderOptions struct {
	UserID     uuid.UUID
	DocumentID uuid.UUID
	OutputDir  string
}

// RenderResult is the outcome of a render call.
type RenderResult struct {
	Status
	RenderedPath string `json:"rendered_path,omitempty"`
}

// Render loads a generated document's markup, parses it back into the
// intermediate model, renders the binary document, writes it, and records
// the location. The location field is updated only after the write confirms.
func (p *Pipeline) Render(ctx context.Context, opts RenderOptions) *RenderResult {
	doc, err := p.store.GetGeneratedResume(ctx, opts.UserID, opts.DocumentID)
	if err != nil {
		log.Printf("pipeline: load document %s failed: %v", opts.DocumentID, err)
		return &RenderResult{Status: failStatus(err)}
	}

	model, err := markup.Parse(doc.Markup)
	if err != nil {
		log.Printf("pipeline: parse document %s failed: %v", opts.DocumentID, err)
		return &RenderResult{Status: failStatus(err)}
	}

	html, err := rendering.BuildHTML(model)
	if err != nil {
		log.Printf("pipeline: build document %s failed: %v", opts.DocumentID, err)
		return &RenderResult{Status: failStatus(err)}
	}

	pdf, err := p.printer.Print(ctx, html)
	if err != nil {
		log.Printf("pipeline: print document %s failed: %v", opts.DocumentID, err)
		return &RenderResult{Status: failStatus(err)}
	}

	filename := rendering.DocumentFilename(model.Name, doc.TargetCompany, doc.TargetRole, "pdf")
	relPath, err := rendering.WriteDocument(opts.OutputDir, filename, pdf)
	if err != nil {
		log.Printf("pipeline: write document %s failed: %v", opts.DocumentID, err)
		return &RenderResult{Status: failStatus(err)}
	}

	if err := p.store.SetRenderedPath(ctx, opts.UserID, opts.DocumentID, relPath); err != nil {
		log.Printf("pipeline: record rendered path for %s failed: %v", opts.DocumentID, err)
		return &RenderResult{Status: failStatus(err)}
	}

	return &RenderResult{Status: okStatus(), RenderedPath: relPath}
}
