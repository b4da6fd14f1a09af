package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scholardesk/research-hub-api/internal/models"
	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
)

const fileURLPrefix = "/api/files/"

type paperRepository interface {
	List(ctx context.Context, filter models.PaperFilter) ([]models.PaperDetail, error)
	FindByID(ctx context.Context, id int64) (*models.ResearchPaper, error)
	FindDetailByID(ctx context.Context, id int64) (*models.PaperDetail, error)
	Create(ctx context.Context, paper *models.ResearchPaper) error
	Update(ctx context.Context, id int64, patch models.PaperPatch) error
	Delete(ctx context.Context, id int64) error
}

// paperCountRefresher is the slice of the researcher repository the counter
// maintenance routine needs.
type paperCountRefresher interface {
	RefreshPaperCount(ctx context.Context, researcherID int64) error
}

type blobStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType, filename string) error
	Delete(ctx context.Context, key string) error
}

// PaperUpload carries an attachment's metadata and stream.
type PaperUpload struct {
	Filename string
	Size     int64
	MimeType string
	Content  io.ReadSeeker
}

// CreatePaperRequest holds the multipart fields for creating papers.
type CreatePaperRequest struct {
	Title           string  `form:"title" validate:"required"`
	ResearcherID    int64   `form:"researcher_id" validate:"required"`
	TopicID         int64   `form:"topic_id" validate:"required"`
	PublicationYear *int    `form:"publication_year"`
	JournalName     *string `form:"journal_name"`
	Abstract        *string `form:"abstract"`
}

// UpdatePaperRequest holds a partial update; absent fields stay untouched.
// Attachments cannot be replaced or removed once set.
type UpdatePaperRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1"`
	ResearcherID    *int64  `json:"researcher_id"`
	TopicID         *int64  `json:"topic_id"`
	PublicationYear *int    `json:"publication_year"`
	JournalName     *string `json:"journal_name"`
	Abstract        *string `json:"abstract"`
}

// PaperServiceConfig bounds accepted uploads.
type PaperServiceConfig struct {
	MaxFileSize  int64
	AllowedMIMEs []string
}

// PaperService handles paper use-cases, including attachment lifecycle and
// the denormalized researcher counter.
type PaperService struct {
	repo      paperRepository
	counts    paperCountRefresher
	storage   blobStorage
	validator *validator.Validate
	logger    *zap.Logger
	cfg       PaperServiceConfig
	mimeSet   map[string]struct{}
}

// NewPaperService constructs the paper service with defaults.
func NewPaperService(repo paperRepository, counts paperCountRefresher, storage blobStorage, validate *validator.Validate, logger *zap.Logger, cfg PaperServiceConfig) *PaperService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 10 * 1024 * 1024
	}
	if len(cfg.AllowedMIMEs) == 0 {
		cfg.AllowedMIMEs = []string{"application/pdf"}
	}
	mimeSet := make(map[string]struct{}, len(cfg.AllowedMIMEs))
	for _, mt := range cfg.AllowedMIMEs {
		mimeSet[strings.ToLower(mt)] = struct{}{}
	}
	return &PaperService{
		repo:      repo,
		counts:    counts,
		storage:   storage,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
		mimeSet:   mimeSet,
	}
}

// List returns papers joined with display names, optionally filtered by
// topic and researcher (AND semantics).
func (s *PaperService) List(ctx context.Context, filter models.PaperFilter) ([]models.PaperDetail, error) {
	papers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch papers")
	}
	return papers, nil
}

// Create inserts a paper, storing the attachment first when one is given,
// then refreshes the owning researcher's paper count.
func (s *PaperService) Create(ctx context.Context, req CreatePaperRequest, upload *PaperUpload) (*models.PaperDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing required fields")
	}
	if err := validatePublicationYear(req.PublicationYear); err != nil {
		return nil, err
	}

	paper := &models.ResearchPaper{
		Title:           req.Title,
		ResearcherID:    req.ResearcherID,
		TopicID:         req.TopicID,
		PublicationYear: normalizeOptionalInt(req.PublicationYear),
		JournalName:     normalizeOptional(req.JournalName),
		Abstract:        normalizeOptional(req.Abstract),
	}

	if upload != nil && upload.Size > 0 {
		key, err := s.storeUpload(ctx, req.ResearcherID, upload)
		if err != nil {
			return nil, err
		}
		fileURL := fileURLPrefix + key
		paper.FileURL = &fileURL
		paper.FileName = &upload.Filename
		paper.FileSize = &upload.Size
	}

	if err := s.repo.Create(ctx, paper); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create paper")
	}

	s.refreshCount(ctx, paper.ResearcherID)

	detail, err := s.repo.FindDetailByID(ctx, paper.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load paper")
	}
	return detail, nil
}

// Update applies a partial update. When ownership moves, both the old and
// the new researcher get a recount; an unchanged researcher_id skips both.
func (s *PaperService) Update(ctx context.Context, id int64, req UpdatePaperRequest) (*models.PaperDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid paper payload")
	}
	if err := validatePublicationYear(req.PublicationYear); err != nil {
		return nil, err
	}

	// Existence is checked before the patch content: updating a missing
	// paper is not found even when the payload is empty.
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Research paper not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load paper")
	}

	patch := models.PaperPatch{
		Title:           req.Title,
		ResearcherID:    req.ResearcherID,
		TopicID:         req.TopicID,
		PublicationYear: req.PublicationYear,
		JournalName:     req.JournalName,
		Abstract:        req.Abstract,
	}
	if patch.IsEmpty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "No fields to update")
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update paper")
	}

	if patch.ResearcherID != nil && *patch.ResearcherID != existing.ResearcherID {
		s.refreshCount(ctx, existing.ResearcherID)
		s.refreshCount(ctx, *patch.ResearcherID)
	}

	detail, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load paper")
	}
	return detail, nil
}

// Delete removes the attachment (best effort), then the row, then refreshes
// the owner's count. A failed blob delete leaves an orphaned object behind
// and is only logged.
func (s *PaperService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "Research paper not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load paper")
	}

	if existing.FileURL != nil {
		key := strings.TrimPrefix(*existing.FileURL, fileURLPrefix)
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete paper file", zap.Int64("paper_id", id), zap.String("key", key), zap.Error(err))
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete paper")
	}

	s.refreshCount(ctx, existing.ResearcherID)
	return nil
}

// refreshCount recomputes a researcher's paper count. Failures leave a stale
// counter until the next mutation; the primary operation already succeeded,
// so the error is logged and swallowed.
func (s *PaperService) refreshCount(ctx context.Context, researcherID int64) {
	if err := s.counts.RefreshPaperCount(ctx, researcherID); err != nil {
		s.logger.Warn("failed to refresh paper count", zap.Int64("researcher_id", researcherID), zap.Error(err))
	}
}

// storeUpload validates and persists the attachment, returning its key.
func (s *PaperService) storeUpload(ctx context.Context, researcherID int64, upload *PaperUpload) (string, error) {
	if upload.Size > s.cfg.MaxFileSize {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("file exceeds %d bytes limit", s.cfg.MaxFileSize))
	}
	mimeType, err := s.detectMime(upload)
	if err != nil {
		return "", err
	}
	if _, allowed := s.mimeSet[strings.ToLower(mimeType)]; !allowed {
		return "", appErrors.Clone(appErrors.ErrValidation, "file type not allowed")
	}

	key := fmt.Sprintf("papers/%d/%d_%s", researcherID, time.Now().UnixMilli(), upload.Filename)
	if _, err := upload.Content.Seek(0, io.SeekStart); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset upload stream")
	}
	if err := s.storage.Put(ctx, key, upload.Content, upload.Size, mimeType, upload.Filename); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to upload file")
	}
	return key, nil
}

// detectMime trusts the declared content type when present, otherwise sniffs
// the first bytes of the stream.
func (s *PaperService) detectMime(upload *PaperUpload) (string, error) {
	if mt := strings.TrimSpace(upload.MimeType); mt != "" {
		if idx := strings.Index(mt, ";"); idx > 0 {
			mt = mt[:idx]
		}
		return strings.TrimSpace(mt), nil
	}
	buf := make([]byte, 512)
	n, err := upload.Content.Read(buf)
	if err != nil && err != io.EOF {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload")
	}
	return http.DetectContentType(buf[:n]), nil
}

func validatePublicationYear(year *int) error {
	if year == nil || *year == 0 {
		return nil
	}
	if *year < 1900 || *year > time.Now().Year()+1 {
		return appErrors.Clone(appErrors.ErrValidation, "publication year out of range")
	}
	return nil
}

func normalizeOptionalInt(v *int) *int {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
