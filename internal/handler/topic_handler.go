package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholardesk/research-hub-api/internal/service"
	"github.com/scholardesk/research-hub-api/pkg/response"
)

// TopicHandler exposes topic listing and statistics endpoints.
type TopicHandler struct {
	topics *service.TopicService
}

// NewTopicHandler constructs TopicHandler.
func NewTopicHandler(topics *service.TopicService) *TopicHandler {
	return &TopicHandler{topics: topics}
}

// List godoc
// @Summary List research topics
// @Tags Topics
// @Produce json
// @Success 200 {array} models.ResearchTopic
// @Router /api/topics [get]
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, topics)
}

// Stats godoc
// @Summary Per-topic paper and researcher counts
// @Tags Topics
// @Produce json
// @Success 200 {array} models.TopicStats
// @Router /api/statistics/topics [get]
func (h *TopicHandler) Stats(c *gin.Context) {
	stats, err := h.topics.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
