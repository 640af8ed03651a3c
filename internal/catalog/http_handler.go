package catalog

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

type createBookRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Author string `json:"author" validate:"required,max=255"`
	ISBN   string `json:"isbn" validate:"required,isbn"`
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, books, map[string]any{"total": len(books)})
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book payload", details)
		return
	}

	book := Book{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
		Status: StatusAvailable,
	}
	if err := h.service.Add(r.Context(), &book); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreatedWithRequest(r, w, book)
}

// GetByID handles GET /books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Book id must be an integer", nil)
		return
	}

	book, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, book, nil)
}
