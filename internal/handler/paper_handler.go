package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholardesk/research-hub-api/internal/models"
	"github.com/scholardesk/research-hub-api/internal/service"
	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
	"github.com/scholardesk/research-hub-api/pkg/response"
)

// PaperHandler exposes research paper endpoints.
type PaperHandler struct {
	papers *service.PaperService
}

// NewPaperHandler constructs PaperHandler.
func NewPaperHandler(papers *service.PaperService) *PaperHandler {
	return &PaperHandler{papers: papers}
}

// filterID parses a filter query value. Unparseable values still filter,
// against an id no row can carry, so they match nothing.
func filterID(raw string) *int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		id = -1
	}
	return &id
}

// List godoc
// @Summary List papers with topic and researcher names
// @Tags Papers
// @Produce json
// @Param topic_id query int false "Filter by topic"
// @Param researcher_id query int false "Filter by researcher"
// @Success 200 {array} models.PaperDetail
// @Router /api/papers [get]
func (h *PaperHandler) List(c *gin.Context) {
	var filter models.PaperFilter
	if raw := c.Query("topic_id"); raw != "" {
		filter.TopicID = filterID(raw)
	}
	if raw := c.Query("researcher_id"); raw != "" {
		filter.ResearcherID = filterID(raw)
	}

	papers, err := h.papers.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, papers)
}

// Create godoc
// @Summary Create paper with optional PDF attachment
// @Tags Papers
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param researcher_id formData int true "Researcher ID"
// @Param topic_id formData int true "Topic ID"
// @Param publication_year formData int false "Publication year"
// @Param journal_name formData string false "Journal name"
// @Param abstract formData string false "Abstract"
// @Param file formData file false "PDF attachment"
// @Success 201 {object} models.PaperDetail
// @Router /api/papers [post]
func (h *PaperHandler) Create(c *gin.Context) {
	var req service.CreatePaperRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing required fields"))
		return
	}

	var upload *service.PaperUpload
	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader.Size > 0 {
		src, err := fileHeader.Open()
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file"))
			return
		}
		defer src.Close()

		reader, ok := src.(io.ReadSeeker)
		if !ok {
			buf, readErr := io.ReadAll(src)
			if readErr != nil {
				response.Error(c, appErrors.Wrap(readErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to buffer file"))
				return
			}
			reader = bytes.NewReader(buf)
		}
		upload = &service.PaperUpload{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			MimeType: fileHeader.Header.Get("Content-Type"),
			Content:  reader,
		}
	}

	paper, err := h.papers.Create(c.Request.Context(), req, upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, paper)
}

// Update godoc
// @Summary Partially update paper
// @Tags Papers
// @Accept json
// @Produce json
// @Param id path int true "Paper ID"
// @Param payload body service.UpdatePaperRequest true "Fields to change"
// @Success 200 {object} models.PaperDetail
// @Router /api/papers/{id} [put]
func (h *PaperHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "Research paper not found")
	if !ok {
		return
	}
	var req service.UpdatePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	paper, err := h.papers.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, paper)
}

// Delete godoc
// @Summary Delete paper and its stored file
// @Tags Papers
// @Produce json
// @Param id path int true "Paper ID"
// @Success 200 {object} map[string]string
// @Router /api/papers/{id} [delete]
func (h *PaperHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "Research paper not found")
	if !ok {
		return
	}
	if err := h.papers.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Research paper deleted successfully")
}
