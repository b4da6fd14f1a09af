package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholardesk/research-hub-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func researcherRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "full_name", "student_id", "phone_number", "email", "research_papers_count", "created_at", "updated_at"})
}

func TestResearcherRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResearcherRepository(db)

	rows := researcherRows().
		AddRow(1, "Ada Lovelace", "S-001", "08123", nil, 2, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, student_id, phone_number, email, research_papers_count, created_at, updated_at FROM researchers ORDER BY created_at DESC")).
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Ada Lovelace", list[0].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResearcherRepositoryListSearch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResearcherRepository(db)

	mock.ExpectQuery("LOWER\\(full_name\\) LIKE \\$1 OR LOWER\\(student_id\\) LIKE \\$1 OR LOWER\\(phone_number\\) LIKE \\$1 OR LOWER\\(COALESCE\\(email, ''\\)\\) LIKE \\$1 ORDER BY created_at DESC").
		WithArgs("%ada%").
		WillReturnRows(researcherRows().AddRow(1, "Ada Lovelace", "S-001", "08123", nil, 0, time.Now(), time.Now()))

	list, err := repo.List(context.Background(), "Ada")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResearcherRepositoryExistsByStudentID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResearcherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM researchers WHERE student_id = $1 LIMIT 1")).
		WithArgs("S-001").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByStudentID(context.Background(), "S-001", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM researchers WHERE student_id = $1 AND id <> $2 LIMIT 1")).
		WithArgs("S-001", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	exists, err = repo.ExistsByStudentID(context.Background(), "S-001", 7)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResearcherRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResearcherRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO researchers").
		WithArgs("Ada Lovelace", "S-001", "08123", nil, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	researcher := &models.Researcher{FullName: "Ada Lovelace", StudentID: "S-001", PhoneNumber: "08123"}
	require.NoError(t, repo.Create(context.Background(), researcher))
	assert.Equal(t, int64(42), researcher.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResearcherRepositoryUpdatePartial(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResearcherRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE researchers SET phone_number = $1, updated_at = $2 WHERE id = $3")).
		WithArgs("9999999999", sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	phone := "9999999999"
	err := repo.Update(context.Background(), 5, models.ResearcherPatch{PhoneNumber: &phone})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResearcherRepositoryUpdateClearsEmptyEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResearcherRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE researchers SET email = $1, updated_at = $2 WHERE id = $3")).
		WithArgs(nil, sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	empty := ""
	err := repo.Update(context.Background(), 5, models.ResearcherPatch{Email: &empty})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResearcherRepositoryRefreshPaperCountIdempotent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResearcherRepository(db)

	query := regexp.QuoteMeta("UPDATE researchers SET research_papers_count = (SELECT COUNT(*) FROM research_papers WHERE researcher_id = $1) WHERE id = $1")

	// Running the recount twice issues the same full re-aggregation both times.
	mock.ExpectExec(query).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RefreshPaperCount(context.Background(), 3))
	require.NoError(t, repo.RefreshPaperCount(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResearcherRepositoryRefreshPaperCountMissingResearcher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResearcherRepository(db)

	// Zero rows affected is not an error: the researcher may be gone.
	mock.ExpectExec("UPDATE researchers SET research_papers_count").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.RefreshPaperCount(context.Background(), 99))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResearcherRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResearcherRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM researchers WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
