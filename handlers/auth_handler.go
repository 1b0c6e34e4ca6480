package handlers

import (
	"errors"
	"net/http"

	"portfolioapi/models"
	service "portfolioapi/services"
	"portfolioapi/utils"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	result, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.HandleMessageResponse(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := models.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	}

	utils.HandleDataResponse(w, "Login successful", response, http.StatusOK)
}
