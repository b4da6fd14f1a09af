package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scholardesk/research-hub-api/internal/models"
	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
)

type mockTopicRepo struct {
	topics []models.ResearchTopic
	stats  []models.TopicStats
	err    error
}

func (m *mockTopicRepo) List(ctx context.Context) ([]models.ResearchTopic, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.topics, nil
}

func (m *mockTopicRepo) Stats(ctx context.Context) ([]models.TopicStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

func TestTopicServiceStatsKeepsZeroCountTopics(t *testing.T) {
	repo := &mockTopicRepo{stats: []models.TopicStats{
		{ID: 1, Name: "Artificial Intelligence", PaperCount: 5, ResearcherCount: 3},
		{ID: 2, Name: "Data Science", PaperCount: 0, ResearcherCount: 0},
	}}
	svc := NewTopicService(repo, zap.NewNop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 0, stats[1].PaperCount)
	assert.Equal(t, 0, stats[1].ResearcherCount)
}

func TestTopicServiceWrapsStorageErrors(t *testing.T) {
	repo := &mockTopicRepo{err: assert.AnError}
	svc := NewTopicService(repo, zap.NewNop())

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Status, appErrors.FromError(err).Status)

	_, err = svc.Stats(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Status, appErrors.FromError(err).Status)
}
