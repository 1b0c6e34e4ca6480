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

type SkillHandler struct {
	service service.SkillService
}

func NewSkillHandler(service service.SkillService) *SkillHandler {
	return &SkillHandler{
		service: service,
	}
}

func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := utils.DecodeAndValidate(w, r, &skill); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, &skill)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Skill created successfully", created, http.StatusCreated)
}

func (h *SkillHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	skills, err := h.service.GetAll(ctx)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Skills retrieved successfully", skills, http.StatusOK)
}

func (h *SkillHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid skill ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	skill, err := h.service.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleMessageResponse(w, "Skill not found", http.StatusNotFound)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Skill retrieved successfully", skill, http.StatusOK)
}

func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid skill ID format", http.StatusBadRequest)
		return
	}

	var update models.SkillUpdate
	if err := utils.DecodeAndValidate(w, r, &update); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.Update(ctx, objectID, &update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleMessageResponse(w, "Skill not found", http.StatusNotFound)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Skill updated successfully", updated, http.StatusOK)
}

func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid skill ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, objectID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Skill deleted successfully", http.StatusOK)
}
