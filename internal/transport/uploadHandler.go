package transport

import (
	"errors"
	"net/http"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/Zekken26/quick-serve/internal/service"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadServiceImage принимает multipart-поле 'file', сохраняет
// изображение и возвращает публичный URL
func (h *UploadHandler) UploadServiceImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded (expected field 'file')"})
		return
	}

	url, err := h.uploadService.SaveServiceImage(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, entity.ErrUnsupportedImageType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image type, supported: jpg, jpeg, png, gif"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
