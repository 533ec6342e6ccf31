package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-tailor/internal/types"
)

// GetResumeStructure loads the user's saved resume structure. Returns
// (nil, nil) when none has been saved yet; callers fall back to the default
// plan via the structure resolver.
func (db *DB) GetResumeStructure(ctx context.Context, userID uuid.UUID) (*types.ResumeStructure, error) {
	var contactFields []string
	var sectionsJSON []byte
	var includeRoleSummaries bool
	err := db.pool.QueryRow(ctx,
		`SELECT contact_fields, sections, include_role_summaries
		 FROM resume_structures WHERE user_id = $1`,
		userID,
	).Scan(&contactFields, &sectionsJSON, &includeRoleSummaries)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume structure: %w", err)
	}

	var sections []types.Section
	if err := json.Unmarshal(sectionsJSON, &sections); err != nil {
		return nil, fmt.Errorf("failed to decode resume structure sections: %w", err)
	}

	return &types.ResumeStructure{
		ContactFields:        contactFields,
		Sections:             sections,
		IncludeRoleSummaries: includeRoleSummaries,
	}, nil
}

// SaveResumeStructure creates or replaces the user's resume structure.
func (db *DB) SaveResumeStructure(ctx context.Context, userID uuid.UUID, structure *types.ResumeStructure) error {
	sectionsJSON, err := json.Marshal(structure.Sections)
	if err != nil {
		return fmt.Errorf("failed to encode resume structure sections: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_structures (user_id, contact_fields, sections, include_role_summaries)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE
		 SET contact_fields = $2, sections = $3, include_role_summaries = $4, updated_at = NOW()`,
		userID, structure.ContactFields, sectionsJSON, structure.IncludeRoleSummaries,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume structure: %w", err)
	}
	return nil
}

// CreateGeneratedResume stores a new generated resume document and returns
// its identity. Markup is immutable after creation; re-generation always
// creates a new row.
func (db *DB) CreateGeneratedResume(ctx context.Context, userID uuid.UUID, targetCompany, targetRole, markup string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO generated_resumes (user_id, target_company, target_role, markup)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, targetCompany, targetRole, markup,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create generated resume: %w", err)
	}
	return id, nil
}

// GetGeneratedResume loads one generated resume owned by the user.
func (db *DB) GetGeneratedResume(ctx context.Context, userID, id uuid.UUID) (*types.GeneratedResume, error) {
	var doc types.GeneratedResume
	var renderedPath *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, target_company, target_role, markup, rendered_path
		 FROM generated_resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&doc.ID, &doc.TargetCompany, &doc.TargetRole, &doc.Markup, &renderedPath)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{Resource: "generated resume", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get generated resume: %w", err)
	}
	if renderedPath != nil {
		doc.RenderedPath = *renderedPath
	}
	return &doc, nil
}

// SetRenderedPath records the rendered-document location for a generated
// resume. The field is set exactly once, after the file write has confirmed;
// a second attempt is a conflict.
func (db *DB) SetRenderedPath(ctx context.Context, userID, id uuid.UUID, renderedPath string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE generated_resumes SET rendered_path = $1
		 WHERE id = $2 AND user_id = $3 AND rendered_path IS NULL`,
		renderedPath, id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to set rendered path: %w", err)
	}
	if tag.RowsAffected() == 0 {
		existing, getErr := db.GetGeneratedResume(ctx, userID, id)
		if getErr != nil {
			return getErr
		}
		if existing.RenderedPath != "" {
			return &ConflictError{Resource: "generated resume", Message: "rendered path already set"}
		}
		return &NotFoundError{Resource: "generated resume", ID: id.String()}
	}
	return nil
}
