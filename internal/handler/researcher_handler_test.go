package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scholardesk/research-hub-api/internal/models"
	"github.com/scholardesk/research-hub-api/internal/service"
)

type researcherRepoStub struct {
	researchers map[int64]models.Researcher
	nextID      int64
}

func (m *researcherRepoStub) List(ctx context.Context, search string) ([]models.Researcher, error) {
	list := make([]models.Researcher, 0, len(m.researchers))
	for _, r := range m.researchers {
		list = append(list, r)
	}
	return list, nil
}

func (m *researcherRepoStub) FindByID(ctx context.Context, id int64) (*models.Researcher, error) {
	if r, ok := m.researchers[id]; ok {
		return &r, nil
	}
	return nil, sql.ErrNoRows
}

func (m *researcherRepoStub) ExistsByStudentID(ctx context.Context, studentID string, excludeID int64) (bool, error) {
	for id, r := range m.researchers {
		if r.StudentID == studentID && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *researcherRepoStub) Create(ctx context.Context, researcher *models.Researcher) error {
	if m.researchers == nil {
		m.researchers = make(map[int64]models.Researcher)
	}
	m.nextID++
	researcher.ID = m.nextID
	researcher.CreatedAt = time.Now()
	researcher.UpdatedAt = researcher.CreatedAt
	m.researchers[researcher.ID] = *researcher
	return nil
}

func (m *researcherRepoStub) Update(ctx context.Context, id int64, patch models.ResearcherPatch) error {
	r := m.researchers[id]
	if patch.PhoneNumber != nil {
		r.PhoneNumber = *patch.PhoneNumber
	}
	if patch.FullName != nil {
		r.FullName = *patch.FullName
	}
	r.UpdatedAt = time.Now()
	m.researchers[id] = r
	return nil
}

func (m *researcherRepoStub) Delete(ctx context.Context, id int64) error {
	delete(m.researchers, id)
	return nil
}

func newResearcherRouter(repo *researcherRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewResearcherService(repo, validator.New(), zap.NewNop())
	h := NewResearcherHandler(svc)

	r := gin.New()
	r.GET("/api/researchers", h.List)
	r.GET("/api/researchers/:id", h.Get)
	r.POST("/api/researchers", h.Create)
	r.PUT("/api/researchers/:id", h.Update)
	r.DELETE("/api/researchers/:id", h.Delete)
	return r
}

func TestResearcherHandlerCreateAndGet(t *testing.T) {
	repo := &researcherRepoStub{}
	router := newResearcherRouter(repo)

	body, _ := json.Marshal(map[string]interface{}{
		"full_name":    "Ada Lovelace",
		"student_id":   "S-001",
		"phone_number": "08123",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/researchers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Researcher
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Ada Lovelace", created.FullName)
	assert.NotZero(t, created.ID)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/researchers/1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestResearcherHandlerCreateValidationError(t *testing.T) {
	router := newResearcherRouter(&researcherRepoStub{})

	body, _ := json.Marshal(map[string]interface{}{"full_name": "No Student ID"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/researchers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Contains(t, errBody, "error")
}

func TestResearcherHandlerDuplicateConflict(t *testing.T) {
	repo := &researcherRepoStub{
		researchers: map[int64]models.Researcher{1: {ID: 1, StudentID: "S-001"}},
		nextID:      1,
	}
	router := newResearcherRouter(repo)

	body, _ := json.Marshal(map[string]interface{}{
		"full_name":    "Second",
		"student_id":   "S-001",
		"phone_number": "08123",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/researchers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestResearcherHandlerUpdateEmptyPatch(t *testing.T) {
	repo := &researcherRepoStub{
		researchers: map[int64]models.Researcher{1: {ID: 1, StudentID: "S-001"}},
	}
	router := newResearcherRouter(repo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/researchers/1", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResearcherHandlerDeleteMessage(t *testing.T) {
	repo := &researcherRepoStub{
		researchers: map[int64]models.Researcher{1: {ID: 1, StudentID: "S-001"}},
	}
	router := newResearcherRouter(repo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/researchers/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Researcher deleted successfully", body["message"])
}

func TestResearcherHandlerGetNotFound(t *testing.T) {
	router := newResearcherRouter(&researcherRepoStub{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/researchers/42", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	// non-numeric ids behave like missing rows
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/researchers/abc", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}
