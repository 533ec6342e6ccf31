package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-tailor/internal/types"
)

// ListAccomplishmentItems loads the user's accomplishments flattened to
// matching-eligible items, joined with their owning roles. Roles are ordered
// by recency, accomplishments by position within a role.
func (db *DB) ListAccomplishmentItems(ctx context.Context, userID uuid.UUID) ([]types.MatchItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.text, a.tags,
		        r.company, r.title, r.location, r.start_date, r.end_date, r.summary
		 FROM accomplishments a
		 JOIN roles r ON r.id = a.role_id
		 WHERE r.user_id = $1
		 ORDER BY r.start_date DESC, a.position ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list accomplishments: %w", err)
	}
	defer rows.Close()

	var items []types.MatchItem
	for rows.Next() {
		var id uuid.UUID
		var text, company, title string
		var tags []string
		var location, startDate, endDate, summary *string
		if err := rows.Scan(&id, &text, &tags, &company, &title, &location, &startDate, &endDate, &summary); err != nil {
			return nil, fmt.Errorf("failed to scan accomplishment: %w", err)
		}
		items = append(items, types.MatchItem{
			ID:          id.String(),
			ItemType:    types.ItemTypeAccomplishment,
			Text:        text,
			Tags:        tags,
			Company:     company,
			Title:       title,
			Location:    deref(location),
			StartDate:   deref(startDate),
			EndDate:     deref(endDate),
			RoleSummary: deref(summary),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accomplishments: %w", err)
	}
	return items, nil
}

// ListLibraryItems loads the user's tagged library entries as matching
// items. Untagged entries are not matching-eligible and are excluded here.
func (db *DB) ListLibraryItems(ctx context.Context, userID uuid.UUID) ([]types.MatchItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, type, title, subtitle, date, bullets, tags
		 FROM library_entries
		 WHERE user_id = $1 AND cardinality(tags) > 0
		 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list library entries: %w", err)
	}
	defer rows.Close()

	var items []types.MatchItem
	for rows.Next() {
		var id uuid.UUID
		var entryType, title string
		var subtitle, date *string
		var bullets, tags []string
		if err := rows.Scan(&id, &entryType, &title, &subtitle, &date, &bullets, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan library entry: %w", err)
		}
		items = append(items, types.MatchItem{
			ID:             id.String(),
			ItemType:       entryType,
			IsLibraryEntry: true,
			Text:           joinBullets(bullets),
			Tags:           tags,
			Company:        deref(subtitle),
			Title:          title,
			StartDate:      deref(date),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read library entries: %w", err)
	}
	return items, nil
}

// ListSkills loads the user's skills ordered by category then name.
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, category FROM skills WHERE user_id = $1 ORDER BY category, name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var name string
		var category *string
		if err := rows.Scan(&name, &category); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, types.Skill{Name: name, Category: deref(category)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skills: %w", err)
	}
	return skills, nil
}

// ListEducation loads the user's education records, most recent first.
func (db *DB) ListEducation(ctx context.Context, userID uuid.UUID) ([]types.Education, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT institution, location, degree, field, end_year, gpa, honors
		 FROM education WHERE user_id = $1 ORDER BY end_year DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	var education []types.Education
	for rows.Next() {
		var institution, degree string
		var location, field, endYear, gpa, honors *string
		if err := rows.Scan(&institution, &location, &degree, &field, &endYear, &gpa, &honors); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		education = append(education, types.Education{
			Institution: institution,
			Location:    deref(location),
			Degree:      degree,
			Field:       deref(field),
			EndYear:     deref(endYear),
			GPA:         deref(gpa),
			Honors:      deref(honors),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read education: %w", err)
	}
	return education, nil
}

// GetContact loads the user's contact details. Returns NotFoundError when no
// contact record exists yet.
func (db *DB) GetContact(ctx context.Context, userID uuid.UUID) (*types.Contact, error) {
	var contact types.Contact
	var email, phone, location, linkedin, portfolio, github *string
	err := db.pool.QueryRow(ctx,
		`SELECT name, email, phone, location, linkedin, portfolio, github
		 FROM contacts WHERE user_id = $1`,
		userID,
	).Scan(&contact.Name, &email, &phone, &location, &linkedin, &portfolio, &github)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{Resource: "contact"}
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	contact.Email = deref(email)
	contact.Phone = deref(phone)
	contact.Location = deref(location)
	contact.LinkedIn = deref(linkedin)
	contact.Portfolio = deref(portfolio)
	contact.GitHub = deref(github)
	return &contact, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinBullets(bullets []string) string {
	out := ""
	for i, b := range bullets {
		if i > 0 {
			out += " "
		}
		out += b
	}
	return out
}
