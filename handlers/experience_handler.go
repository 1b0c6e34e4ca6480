package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"portfolioapi/models"
	repository "portfolioapi/repositories"
	service "portfolioapi/services"
	"portfolioapi/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExperienceHandler struct {
	service service.ExperienceService
}

func NewExperienceHandler(service service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		service: service,
	}
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var experience models.Experience
	if err := utils.DecodeAndValidate(w, r, &experience); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, &experience)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Experience created successfully", created, http.StatusCreated)
}

func (h *ExperienceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	experiences, err := h.service.GetAll(ctx)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Experience retrieved successfully", experiences, http.StatusOK)
}

func (h *ExperienceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid experience ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	experience, err := h.service.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleMessageResponse(w, "Experience not found", http.StatusNotFound)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Experience retrieved successfully", experience, http.StatusOK)
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid experience ID format", http.StatusBadRequest)
		return
	}

	var update models.ExperienceUpdate
	if err := utils.DecodeAndValidate(w, r, &update); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.Update(ctx, objectID, &update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleMessageResponse(w, "Experience not found", http.StatusNotFound)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Experience updated successfully", updated, http.StatusOK)
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid experience ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, objectID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Experience deleted successfully", http.StatusOK)
}
