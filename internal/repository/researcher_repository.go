package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scholardesk/research-hub-api/internal/models"
)

const researcherColumns = "id, full_name, student_id, phone_number, email, research_papers_count, created_at, updated_at"

// ResearcherRepository manages persistence for researcher profiles.
type ResearcherRepository struct {
	db *sqlx.DB
}

// NewResearcherRepository constructs a ResearcherRepository.
func NewResearcherRepository(db *sqlx.DB) *ResearcherRepository {
	return &ResearcherRepository{db: db}
}

// List returns researchers newest-first, optionally narrowed by a
// case-insensitive substring match over name, student ID, phone and email.
func (r *ResearcherRepository) List(ctx context.Context, search string) ([]models.Researcher, error) {
	query := fmt.Sprintf("SELECT %s FROM researchers", researcherColumns)
	args := []interface{}{}

	if search != "" {
		query += ` WHERE LOWER(full_name) LIKE $1 OR LOWER(student_id) LIKE $1 OR LOWER(phone_number) LIKE $1 OR LOWER(COALESCE(email, '')) LIKE $1`
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	query += " ORDER BY created_at DESC"

	researchers := []models.Researcher{}
	if err := r.db.SelectContext(ctx, &researchers, query, args...); err != nil {
		return nil, fmt.Errorf("list researchers: %w", err)
	}
	return researchers, nil
}

// FindByID fetches one researcher. Returns sql.ErrNoRows when absent.
func (r *ResearcherRepository) FindByID(ctx context.Context, id int64) (*models.Researcher, error) {
	query := fmt.Sprintf("SELECT %s FROM researchers WHERE id = $1", researcherColumns)
	var researcher models.Researcher
	if err := r.db.GetContext(ctx, &researcher, query, id); err != nil {
		return nil, err
	}
	return &researcher, nil
}

// ExistsByStudentID checks whether a student ID is taken, optionally
// excluding a researcher (for updates).
func (r *ResearcherRepository) ExistsByStudentID(ctx context.Context, studentID string, excludeID int64) (bool, error) {
	query := "SELECT 1 FROM researchers WHERE student_id = $1"
	args := []interface{}{studentID}
	if excludeID > 0 {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check student id: %w", err)
	}
	return true, nil
}

// Create inserts a new researcher, filling the generated id and timestamps.
func (r *ResearcherRepository) Create(ctx context.Context, researcher *models.Researcher) error {
	const query = `INSERT INTO researchers (full_name, student_id, phone_number, email, research_papers_count)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	row := r.db.QueryRowxContext(ctx, query,
		researcher.FullName,
		researcher.StudentID,
		researcher.PhoneNumber,
		researcher.Email,
		researcher.ResearchPapersCount,
	)
	if err := row.Scan(&researcher.ID, &researcher.CreatedAt, &researcher.UpdatedAt); err != nil {
		return fmt.Errorf("create researcher: %w", err)
	}
	return nil
}

// Update applies the fields present in the patch and refreshes updated_at.
// Callers must reject empty patches before reaching here.
func (r *ResearcherRepository) Update(ctx context.Context, id int64, patch models.ResearcherPatch) error {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if patch.FullName != nil {
		add("full_name", *patch.FullName)
	}
	if patch.StudentID != nil {
		add("student_id", *patch.StudentID)
	}
	if patch.PhoneNumber != nil {
		add("phone_number", *patch.PhoneNumber)
	}
	if patch.Email != nil {
		if *patch.Email == "" {
			add("email", nil)
		} else {
			add("email", *patch.Email)
		}
	}
	if patch.ResearchPapersCount != nil {
		add("research_papers_count", *patch.ResearchPapersCount)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE researchers SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update researcher: %w", err)
	}
	return nil
}

// Delete removes a researcher row. Papers referencing it are left untouched.
func (r *ResearcherRepository) Delete(ctx context.Context, id int64) error {
	const query = "DELETE FROM researchers WHERE id = $1"
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete researcher: %w", err)
	}
	return nil
}

// RefreshPaperCount overwrites research_papers_count with the authoritative
// count from research_papers. A no-op when the researcher no longer exists.
func (r *ResearcherRepository) RefreshPaperCount(ctx context.Context, researcherID int64) error {
	const query = `UPDATE researchers
        SET research_papers_count = (SELECT COUNT(*) FROM research_papers WHERE researcher_id = $1)
        WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, researcherID); err != nil {
		return fmt.Errorf("refresh paper count: %w", err)
	}
	return nil
}
