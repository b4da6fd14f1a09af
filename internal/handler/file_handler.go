package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scholardesk/research-hub-api/internal/service"
	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
	"github.com/scholardesk/research-hub-api/pkg/response"
)

// FileHandler streams stored paper files.
type FileHandler struct {
	files *service.FileService
}

// NewFileHandler constructs FileHandler.
func NewFileHandler(files *service.FileService) *FileHandler {
	return &FileHandler{files: files}
}

// Get godoc
// @Summary Download a stored file
// @Tags Files
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary
// @Router /api/files/{key} [get]
func (h *FileHandler) Get(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "File not found"))
		return
	}

	obj, err := h.files.Get(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer obj.Body.Close() //nolint:errcheck

	extraHeaders := map[string]string{}
	if obj.ETag != "" {
		extraHeaders["ETag"] = obj.ETag
	}
	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, obj.Size, contentType, obj.Body, extraHeaders)
}
