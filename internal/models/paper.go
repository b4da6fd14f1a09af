package models

import "time"

// ResearchPaper is a publication record optionally carrying one attachment.
// The file triad (url, name, size) is all-present or all-absent.
type ResearchPaper struct {
	ID              int64     `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	ResearcherID    int64     `db:"researcher_id" json:"researcher_id"`
	TopicID         int64     `db:"topic_id" json:"topic_id"`
	PublicationYear *int      `db:"publication_year" json:"publication_year,omitempty"`
	JournalName     *string   `db:"journal_name" json:"journal_name,omitempty"`
	Abstract        *string   `db:"abstract" json:"abstract,omitempty"`
	FileURL         *string   `db:"file_url" json:"file_url,omitempty"`
	FileName        *string   `db:"file_name" json:"file_name,omitempty"`
	FileSize        *int64    `db:"file_size" json:"file_size,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// PaperDetail joins the display names the list and detail views need.
type PaperDetail struct {
	ResearchPaper
	TopicName      string `db:"topic_name" json:"topic_name"`
	ResearcherName string `db:"researcher_name" json:"researcher_name"`
}

// PaperFilter narrows paper listings; both filters combine with AND.
type PaperFilter struct {
	TopicID      *int64
	ResearcherID *int64
}

// PaperPatch carries the subset of fields present in a partial update.
// Attachments cannot be changed after creation, so no file fields appear.
type PaperPatch struct {
	Title           *string
	ResearcherID    *int64
	TopicID         *int64
	PublicationYear *int
	JournalName     *string
	Abstract        *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p PaperPatch) IsEmpty() bool {
	return p.Title == nil && p.ResearcherID == nil && p.TopicID == nil &&
		p.PublicationYear == nil && p.JournalName == nil && p.Abstract == nil
}
