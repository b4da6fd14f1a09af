package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scholardesk/research-hub-api/internal/service"
	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
	"github.com/scholardesk/research-hub-api/pkg/response"
)

// ResearcherHandler exposes researcher endpoints.
type ResearcherHandler struct {
	researchers *service.ResearcherService
}

// NewResearcherHandler constructs ResearcherHandler.
func NewResearcherHandler(researchers *service.ResearcherService) *ResearcherHandler {
	return &ResearcherHandler{researchers: researchers}
}

// List godoc
// @Summary List researchers
// @Tags Researchers
// @Produce json
// @Param search query string false "Substring match over name, student ID, phone and email"
// @Success 200 {array} models.Researcher
// @Router /api/researchers [get]
func (h *ResearcherHandler) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	researchers, err := h.researchers.List(c.Request.Context(), search)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, researchers)
}

// Get godoc
// @Summary Get researcher
// @Tags Researchers
// @Produce json
// @Param id path int true "Researcher ID"
// @Success 200 {object} models.Researcher
// @Router /api/researchers/{id} [get]
func (h *ResearcherHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "researcher not found")
	if !ok {
		return
	}
	researcher, err := h.researchers.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, researcher)
}

// Create godoc
// @Summary Create researcher
// @Tags Researchers
// @Accept json
// @Produce json
// @Param payload body service.CreateResearcherRequest true "Researcher payload"
// @Success 201 {object} models.Researcher
// @Router /api/researchers [post]
func (h *ResearcherHandler) Create(c *gin.Context) {
	var req service.CreateResearcherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	researcher, err := h.researchers.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, researcher)
}

// Update godoc
// @Summary Partially update researcher
// @Tags Researchers
// @Accept json
// @Produce json
// @Param id path int true "Researcher ID"
// @Param payload body service.UpdateResearcherRequest true "Fields to change"
// @Success 200 {object} models.Researcher
// @Router /api/researchers/{id} [put]
func (h *ResearcherHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "researcher not found")
	if !ok {
		return
	}
	var req service.UpdateResearcherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	researcher, err := h.researchers.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, researcher)
}

// Delete godoc
// @Summary Delete researcher
// @Tags Researchers
// @Produce json
// @Param id path int true "Researcher ID"
// @Success 200 {object} map[string]string
// @Router /api/researchers/{id} [delete]
func (h *ResearcherHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "researcher not found")
	if !ok {
		return
	}
	if err := h.researchers.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Researcher deleted successfully")
}
