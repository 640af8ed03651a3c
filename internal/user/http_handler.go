package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createUserRequest struct {
	Name               string `json:"name" validate:"required,max=255"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=64"`
	Type               string `json:"type" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
}

// List handles GET /users
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, users, map[string]any{"total": len(users)})
}

// Create handles POST /users
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user payload", details)
		return
	}

	userType, err := ParseType(req.Type)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), []httpx.ErrorDetail{
			{Field: "type", Message: "must be one of: student, faculty, staff"},
		})
		return
	}

	u := User{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Type:               userType,
		Email:              req.Email,
		Status:             StatusActive,
	}
	if err := h.service.Register(r.Context(), &u); err != nil {
		if errors.Is(err, ErrDuplicate) {
			httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "DUPLICATE_USER", "Registration number or email already registered", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreatedWithRequest(r, w, u)
}

// GetByID handles GET /users/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "User id must be an integer", nil)
		return
	}

	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "USER_NOT_FOUND", "User not found", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, u, nil)
}
