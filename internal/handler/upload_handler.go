package handler

import (
	"carmarket/internal/middleware"
	"carmarket/internal/models"
	"carmarket/internal/service"
	"carmarket/pkg/response"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles HTTP requests for listing photo uploads.
type UploadHandler struct {
	service service.UploadServicer
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(service service.UploadServicer) *UploadHandler {
	return &UploadHandler{service: service}
}

// CreatePhotoUpload godoc
// @Summary      Get a photo upload URL
// @Description  Return a presigned PUT URL valid for 15 minutes and the public URL of the photo
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        request  body      models.PhotoUploadRequest  true  "File name and content type"
// @Success      200      {object}  models.PhotoUploadResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Failure      503      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /uploads/photos [post]
func (h *UploadHandler) CreatePhotoUpload(c *gin.Context) {
	var req models.PhotoUploadRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.CreatePhotoUpload(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, result)
}
