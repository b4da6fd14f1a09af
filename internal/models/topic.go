package models

import "time"

// ResearchTopic is read-only reference data seeded outside the API.
type ResearchTopic struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TopicStats aggregates paper volume per topic. Topics without papers are
// included with zero counts.
type TopicStats struct {
	ID              int64   `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	Description     *string `db:"description" json:"description,omitempty"`
	PaperCount      int     `db:"paper_count" json:"paper_count"`
	ResearcherCount int     `db:"researcher_count" json:"researcher_count"`
}
