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

type ContactHandler struct {
	service service.ContactService
}

func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// Submit is the only public write endpoint: visitors posting the contact form.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := utils.DecodeAndValidate(w, r, &contact); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := h.service.Submit(ctx, &contact); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Thank you for your message!", http.StatusCreated)
}

func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contacts, err := h.service.GetAll(ctx)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Contacts retrieved successfully", contacts, http.StatusOK)
}

func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid contact ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contact, err := h.service.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleMessageResponse(w, "Contact not found", http.StatusNotFound)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Contact retrieved successfully", contact, http.StatusOK)
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid contact ID format", http.StatusBadRequest)
		return
	}

	var update models.ContactUpdate
	if err := utils.DecodeAndValidate(w, r, &update); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.Update(ctx, objectID, &update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleMessageResponse(w, "Contact not found", http.StatusNotFound)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Contact updated successfully", updated, http.StatusOK)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid contact ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, objectID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Contact deleted successfully", http.StatusOK)
}
