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

type AchievementHandler struct {
	service service.AchievementService
}

func NewAchievementHandler(service service.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		service: service,
	}
}

func (h *AchievementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var achievement models.Achievement
	if err := utils.DecodeAndValidate(w, r, &achievement); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, &achievement)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Achievement created successfully", created, http.StatusCreated)
}

func (h *AchievementHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	achievements, err := h.service.GetAll(ctx)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Achievements retrieved successfully", achievements, http.StatusOK)
}

func (h *AchievementHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid achievement ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	achievement, err := h.service.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleMessageResponse(w, "Achievement not found", http.StatusNotFound)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Achievement retrieved successfully", achievement, http.StatusOK)
}

func (h *AchievementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid achievement ID format", http.StatusBadRequest)
		return
	}

	var update models.AchievementUpdate
	if err := utils.DecodeAndValidate(w, r, &update); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.Update(ctx, objectID, &update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleMessageResponse(w, "Achievement not found", http.StatusNotFound)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Achievement updated successfully", updated, http.StatusOK)
}

func (h *AchievementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid achievement ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, objectID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Achievement deleted successfully", http.StatusOK)
}
