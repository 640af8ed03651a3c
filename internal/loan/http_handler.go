package loan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"libraryapi/internal/catalog"
	"libraryapi/internal/httpx"
	"libraryapi/internal/user"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createLoanRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
	BookID int64 `json:"bookId" validate:"required,gt=0"`
}

// List handles GET /loans
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, loans, map[string]any{"total": len(loans)})
}

// Create handles POST /loans
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid loan payload", details)
		return
	}

	l, err := h.service.Create(r.Context(), req.UserID, req.BookID)
	if err != nil {
		writeLoanError(r, w, err)
		return
	}
	httpx.JSONSuccessCreatedWithRequest(r, w, l)
}

// GetByID handles GET /loans/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Loan id must be an integer", nil)
		return
	}

	l, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeLoanError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, l, nil)
}

// Return handles POST /loans/{id}/return
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Loan id must be an integer", nil)
		return
	}

	l, err := h.service.Return(r.Context(), id)
	if err != nil {
		writeLoanError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, l, nil)
}

// writeLoanError maps ledger errors onto the response envelope.
func writeLoanError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "USER_NOT_FOUND", "User not found", nil)
	case errors.Is(err, catalog.ErrNotFound):
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found", nil)
	case errors.Is(err, ErrBookUnavailable):
		httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "BOOK_UNAVAILABLE", "Book is currently on loan", nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "LOAN_NOT_FOUND", "Loan not found", nil)
	case errors.Is(err, ErrAlreadyReturned):
		httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "ALREADY_RETURNED", "Loan has already been returned", nil)
	default:
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
