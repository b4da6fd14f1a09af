package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/scholardesk/research-hub-api/internal/models"
	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
)

type topicRepository interface {
	List(ctx context.Context) ([]models.ResearchTopic, error)
	Stats(ctx context.Context) ([]models.TopicStats, error)
}

// TopicService exposes the topic reference data and live per-topic stats.
type TopicService struct {
	repo   topicRepository
	logger *zap.Logger
}

// NewTopicService constructs the topic service.
func NewTopicService(repo topicRepository, logger *zap.Logger) *TopicService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TopicService{repo: repo, logger: logger}
}

// List returns all topics ordered by name.
func (s *TopicService) List(ctx context.Context) ([]models.ResearchTopic, error) {
	topics, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch topics")
	}
	return topics, nil
}

// Stats returns per-topic aggregates, recomputed on every call.
func (s *TopicService) Stats(ctx context.Context) ([]models.TopicStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch topic statistics")
	}
	return stats, nil
}
