package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
	"github.com/scholardesk/research-hub-api/pkg/storage"
)

type objectGetter interface {
	Get(ctx context.Context, key string) (*storage.Object, error)
}

// FileService streams stored paper files back to clients. Pure passthrough
// over the object store.
type FileService struct {
	storage objectGetter
	logger  *zap.Logger
}

// NewFileService constructs the file service.
func NewFileService(store objectGetter, logger *zap.Logger) *FileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileService{storage: store, logger: logger}
}

// Get returns the blob stream with its stored metadata.
func (s *FileService) Get(ctx context.Context, key string) (*storage.Object, error) {
	obj, err := s.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "File not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to download file")
	}
	return obj, nil
}
