package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scholardesk/research-hub-api/internal/models"
	"github.com/scholardesk/research-hub-api/internal/repository"
	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
)

type researcherRepository interface {
	List(ctx context.Context, search string) ([]models.Researcher, error)
	FindByID(ctx context.Context, id int64) (*models.Researcher, error)
	ExistsByStudentID(ctx context.Context, studentID string, excludeID int64) (bool, error)
	Create(ctx context.Context, researcher *models.Researcher) error
	Update(ctx context.Context, id int64, patch models.ResearcherPatch) error
	Delete(ctx context.Context, id int64) error
}

// CreateResearcherRequest holds the payload for creating researchers.
// research_papers_count is accepted but advisory: the next paper mutation
// touching this researcher overwrites it with the authoritative count.
type CreateResearcherRequest struct {
	FullName            string  `json:"full_name" validate:"required"`
	StudentID           string  `json:"student_id" validate:"required"`
	PhoneNumber         string  `json:"phone_number" validate:"required"`
	Email               *string `json:"email" validate:"omitempty,email"`
	ResearchPapersCount int     `json:"research_papers_count" validate:"min=0"`
}

// UpdateResearcherRequest holds a partial update; absent fields stay untouched.
type UpdateResearcherRequest struct {
	FullName            *string `json:"full_name" validate:"omitempty,min=1"`
	StudentID           *string `json:"student_id" validate:"omitempty,min=1"`
	PhoneNumber         *string `json:"phone_number" validate:"omitempty,min=1"`
	Email               *string `json:"email" validate:"omitempty,email"`
	ResearchPapersCount *int    `json:"research_papers_count" validate:"omitempty,min=0"`
}

// ResearcherService handles researcher use-cases.
type ResearcherService struct {
	repo      researcherRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResearcherService constructs the researcher service.
func NewResearcherService(repo researcherRepository, validate *validator.Validate, logger *zap.Logger) *ResearcherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResearcherService{repo: repo, validator: validate, logger: logger}
}

// List returns researchers, optionally filtered by the search term.
func (s *ResearcherService) List(ctx context.Context, search string) ([]models.Researcher, error) {
	researchers, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch researchers")
	}
	return researchers, nil
}

// Get returns one researcher by ID.
func (s *ResearcherService) Get(ctx context.Context, id int64) (*models.Researcher, error) {
	researcher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "researcher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch researcher")
	}
	return researcher, nil
}

// Create registers a new researcher profile.
func (s *ResearcherService) Create(ctx context.Context, req CreateResearcherRequest) (*models.Researcher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid researcher payload")
	}
	exists, err := s.repo.ExistsByStudentID(ctx, req.StudentID, 0)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate student id")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Student ID already exists")
	}

	researcher := &models.Researcher{
		FullName:            req.FullName,
		StudentID:           req.StudentID,
		PhoneNumber:         req.PhoneNumber,
		Email:               normalizeOptional(req.Email),
		ResearchPapersCount: req.ResearchPapersCount,
	}
	if err := s.repo.Create(ctx, researcher); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Student ID already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create researcher")
	}
	return researcher, nil
}

// Update applies a partial update and returns the refreshed row.
func (s *ResearcherService) Update(ctx context.Context, id int64, req UpdateResearcherRequest) (*models.Researcher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid researcher payload")
	}

	// Existence is checked before the patch content: updating a missing
	// researcher is not found even when the payload is empty.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "researcher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load researcher")
	}

	patch := models.ResearcherPatch{
		FullName:            req.FullName,
		StudentID:           req.StudentID,
		PhoneNumber:         req.PhoneNumber,
		Email:               req.Email,
		ResearchPapersCount: req.ResearchPapersCount,
	}
	if patch.IsEmpty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "No fields to update")
	}

	if patch.StudentID != nil {
		exists, err := s.repo.ExistsByStudentID(ctx, *patch.StudentID, id)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate student id")
		}
		if exists {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Student ID already exists")
		}
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Student ID already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update researcher")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load researcher")
	}
	return updated, nil
}

// Delete removes a researcher. Papers referencing it keep their (now
// dangling) researcher_id; the store does not cascade.
func (s *ResearcherService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "researcher not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load researcher")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete researcher")
	}
	return nil
}

// normalizeOptional maps empty optional strings to NULL columns.
func normalizeOptional(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
