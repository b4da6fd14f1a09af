package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scholardesk/research-hub-api/internal/models"
)

// TopicRepository reads research topic reference data and aggregates.
type TopicRepository struct {
	db *sqlx.DB
}

// NewTopicRepository constructs a TopicRepository.
func NewTopicRepository(db *sqlx.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// List returns all topics ordered by name.
func (r *TopicRepository) List(ctx context.Context) ([]models.ResearchTopic, error) {
	const query = "SELECT id, name, description, created_at, updated_at FROM research_topics ORDER BY name"
	topics := []models.ResearchTopic{}
	if err := r.db.SelectContext(ctx, &topics, query); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// Stats computes paper and distinct-researcher counts per topic, busiest
// topics first. The LEFT JOIN keeps paper-less topics in the result.
func (r *TopicRepository) Stats(ctx context.Context) ([]models.TopicStats, error) {
	const query = `SELECT t.id, t.name, t.description,
        COUNT(p.id) AS paper_count,
        COUNT(DISTINCT p.researcher_id) AS researcher_count
        FROM research_topics t
        LEFT JOIN research_papers p ON t.id = p.topic_id
        GROUP BY t.id, t.name, t.description
        ORDER BY paper_count DESC, t.name`
	stats := []models.TopicStats{}
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}
	return stats, nil
}
