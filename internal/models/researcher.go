package models

import "time"

// Researcher is a tracked profile with a denormalized paper count.
// research_papers_count is derived state: any paper mutation touching the
// researcher overwrites it with a fresh COUNT(*) over research_papers.
type Researcher struct {
	ID                  int64     `db:"id" json:"id"`
	FullName            string    `db:"full_name" json:"full_name"`
	StudentID           string    `db:"student_id" json:"student_id"`
	PhoneNumber         string    `db:"phone_number" json:"phone_number"`
	Email               *string   `db:"email" json:"email,omitempty"`
	ResearchPapersCount int       `db:"research_papers_count" json:"research_papers_count"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// ResearcherPatch carries the subset of fields present in a partial update.
// A nil field means "leave untouched"; a set Email pointing at an empty
// string clears the column.
type ResearcherPatch struct {
	FullName            *string
	StudentID           *string
	PhoneNumber         *string
	Email               *string
	ResearchPapersCount *int
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ResearcherPatch) IsEmpty() bool {
	return p.FullName == nil && p.StudentID == nil && p.PhoneNumber == nil &&
		p.Email == nil && p.ResearchPapersCount == nil
}
