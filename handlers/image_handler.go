package handlers

import (
	"context"
	"net/http"
	"time"

	"portfolioapi/models"
	service "portfolioapi/services"
	"portfolioapi/utils"
)

type ImageHandler struct {
	service service.ImageService
}

func NewImageHandler(service service.ImageService) *ImageHandler {
	return &ImageHandler{
		service: service,
	}
}

func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(32 << 20)
	if err != nil {
		utils.HandleMessageResponse(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.HandleMessageResponse(w, "Failed to get file from form", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := h.service.Upload(ctx, file)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Image uploaded successfully", result, http.StatusOK)
}

func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteImageRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, req.PublicID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Image deleted successfully", map[string]bool{"success": true}, http.StatusOK)
}
