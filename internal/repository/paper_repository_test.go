package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholardesk/research-hub-api/internal/models"
)

func paperDetailRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "researcher_id", "topic_id", "publication_year", "journal_name", "abstract",
		"file_url", "file_name", "file_size", "created_at", "updated_at", "topic_name", "researcher_name",
	})
}

func TestPaperRepositoryListUnfiltered(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaperRepository(db)

	rows := paperDetailRows().
		AddRow(1, "Graph Embeddings", 2, 3, 2023, nil, nil, nil, nil, nil, time.Now(), time.Now(), "Artificial Intelligence", "Ada Lovelace")
	mock.ExpectQuery("JOIN research_topics t ON p.topic_id = t.id JOIN researchers r ON p.researcher_id = r.id ORDER BY p.created_at DESC").
		WillReturnRows(rows)

	papers, err := repo.List(context.Background(), models.PaperFilter{})
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, "Artificial Intelligence", papers[0].TopicName)
	assert.Equal(t, "Ada Lovelace", papers[0].ResearcherName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaperRepositoryListBothFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaperRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.topic_id = $1 AND p.researcher_id = $2 ORDER BY p.created_at DESC")).
		WithArgs(int64(3), int64(2)).
		WillReturnRows(paperDetailRows())

	topicID, researcherID := int64(3), int64(2)
	papers, err := repo.List(context.Background(), models.PaperFilter{TopicID: &topicID, ResearcherID: &researcherID})
	require.NoError(t, err)
	assert.Empty(t, papers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaperRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaperRepository(db)

	now := time.Now()
	fileURL := "/api/files/papers/2/1700000000000_study.pdf"
	fileName := "study.pdf"
	fileSize := int64(2048)

	mock.ExpectQuery("INSERT INTO research_papers").
		WithArgs("Graph Embeddings", int64(2), int64(3), nil, nil, nil, fileURL, fileName, fileSize).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))

	paper := &models.ResearchPaper{
		Title:        "Graph Embeddings",
		ResearcherID: 2,
		TopicID:      3,
		FileURL:      &fileURL,
		FileName:     &fileName,
		FileSize:     &fileSize,
	}
	require.NoError(t, repo.Create(context.Background(), paper))
	assert.Equal(t, int64(10), paper.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaperRepositoryUpdateReassignsOwner(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaperRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE research_papers SET researcher_id = $1, updated_at = $2 WHERE id = $3")).
		WithArgs(int64(9), sqlmock.AnyArg(), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	newOwner := int64(9)
	err := repo.Update(context.Background(), 10, models.PaperPatch{ResearcherID: &newOwner})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaperRepositoryUpdateClearsEmptyOptionals(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaperRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE research_papers SET publication_year = $1, journal_name = $2, updated_at = $3 WHERE id = $4")).
		WithArgs(nil, nil, sqlmock.AnyArg(), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	year := 0
	journal := ""
	err := repo.Update(context.Background(), 10, models.PaperPatch{PublicationYear: &year, JournalName: &journal})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaperRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaperRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "title", "researcher_id", "topic_id", "publication_year", "journal_name", "abstract",
		"file_url", "file_name", "file_size", "created_at", "updated_at",
	}).AddRow(10, "Graph Embeddings", 2, 3, nil, nil, nil, nil, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery("FROM research_papers WHERE id = \\$1").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	paper, err := repo.FindByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), paper.ResearcherID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaperRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaperRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM research_papers WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 10))
	assert.NoError(t, mock.ExpectationsWereMet())
}
