package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/scholardesk/research-hub-api/internal/models"
)

const paperDetailQuery = `SELECT p.id, p.title, p.researcher_id, p.topic_id, p.publication_year, p.journal_name, p.abstract,
        p.file_url, p.file_name, p.file_size, p.created_at, p.updated_at,
        t.name AS topic_name, r.full_name AS researcher_name
        FROM research_papers p
        JOIN research_topics t ON p.topic_id = t.id
        JOIN researchers r ON p.researcher_id = r.id`

// PaperRepository manages persistence for research paper records.
type PaperRepository struct {
	db *sqlx.DB
}

// NewPaperRepository constructs a PaperRepository.
func NewPaperRepository(db *sqlx.DB) *PaperRepository {
	return &PaperRepository{db: db}
}

// List returns papers joined with topic and researcher names, newest-first.
// Filters combine with AND.
func (r *PaperRepository) List(ctx context.Context, filter models.PaperFilter) ([]models.PaperDetail, error) {
	query := paperDetailQuery
	args := []interface{}{}
	conditions := []string{}

	if filter.TopicID != nil {
		conditions = append(conditions, fmt.Sprintf("p.topic_id = $%d", len(args)+1))
		args = append(args, *filter.TopicID)
	}
	if filter.ResearcherID != nil {
		conditions = append(conditions, fmt.Sprintf("p.researcher_id = $%d", len(args)+1))
		args = append(args, *filter.ResearcherID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.created_at DESC"

	papers := []models.PaperDetail{}
	if err := r.db.SelectContext(ctx, &papers, query, args...); err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	return papers, nil
}

// FindByID fetches the bare paper row. Returns sql.ErrNoRows when absent.
func (r *PaperRepository) FindByID(ctx context.Context, id int64) (*models.ResearchPaper, error) {
	const query = `SELECT id, title, researcher_id, topic_id, publication_year, journal_name, abstract,
        file_url, file_name, file_size, created_at, updated_at
        FROM research_papers WHERE id = $1`
	var paper models.ResearchPaper
	if err := r.db.GetContext(ctx, &paper, query, id); err != nil {
		return nil, err
	}
	return &paper, nil
}

// FindDetailByID fetches a paper joined with its display names.
func (r *PaperRepository) FindDetailByID(ctx context.Context, id int64) (*models.PaperDetail, error) {
	query := paperDetailQuery + " WHERE p.id = $1"
	var detail models.PaperDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Create inserts a new paper, filling the generated id and timestamps.
func (r *PaperRepository) Create(ctx context.Context, paper *models.ResearchPaper) error {
	const query = `INSERT INTO research_papers (title, researcher_id, topic_id, publication_year, journal_name, abstract, file_url, file_name, file_size)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`
	row := r.db.QueryRowxContext(ctx, query,
		paper.Title,
		paper.ResearcherID,
		paper.TopicID,
		paper.PublicationYear,
		paper.JournalName,
		paper.Abstract,
		paper.FileURL,
		paper.FileName,
		paper.FileSize,
	)
	if err := row.Scan(&paper.ID, &paper.CreatedAt, &paper.UpdatedAt); err != nil {
		return fmt.Errorf("create paper: %w", err)
	}
	return nil
}

// Update applies the fields present in the patch and refreshes updated_at.
// Callers must reject empty patches before reaching here.
func (r *PaperRepository) Update(ctx context.Context, id int64, patch models.PaperPatch) error {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.ResearcherID != nil {
		add("researcher_id", *patch.ResearcherID)
	}
	if patch.TopicID != nil {
		add("topic_id", *patch.TopicID)
	}
	if patch.PublicationYear != nil {
		if *patch.PublicationYear == 0 {
			add("publication_year", nil)
		} else {
			add("publication_year", *patch.PublicationYear)
		}
	}
	if patch.JournalName != nil {
		if *patch.JournalName == "" {
			add("journal_name", nil)
		} else {
			add("journal_name", *patch.JournalName)
		}
	}
	if patch.Abstract != nil {
		if *patch.Abstract == "" {
			add("abstract", nil)
		} else {
			add("abstract", *patch.Abstract)
		}
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE research_papers SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update paper: %w", err)
	}
	return nil
}

// Delete removes a paper row.
func (r *PaperRepository) Delete(ctx context.Context, id int64) error {
	const query = "DELETE FROM research_papers WHERE id = $1"
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete paper: %w", err)
	}
	return nil
}
