package report

import (
	"net/http"
	"strconv"
	"time"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return limit
}

// Summary handles GET /reports/summary
func (h *HTTPHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, sum, nil)
}

// MostBorrowed handles GET /reports/most-borrowed
func (h *HTTPHandler) MostBorrowed(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.MostBorrowedBooks(r.Context(), limitParam(r))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, rows, nil)
}

// MostActive handles GET /reports/most-active
func (h *HTTPHandler) MostActive(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.MostActiveUsers(r.Context(), limitParam(r))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, rows, nil)
}

// Occupancy handles GET /reports/occupancy
func (h *HTTPHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	occ, err := h.service.OccupancyRate(r.Context())
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, occ, nil)
}

// Overdue handles GET /reports/overdue
func (h *HTTPHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	loans, err := h.service.OverdueLoans(r.Context())
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, loans, map[string]any{"total": len(loans)})
}

// LoansInPeriod handles GET /reports/loans?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *HTTPHandler) LoansInPeriod(w http.ResponseWriter, r *http.Request) {
	const layout = "2006-01-02"

	start, err := time.Parse(layout, r.URL.Query().Get("start"))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "start must be a YYYY-MM-DD date", nil)
		return
	}
	end, err := time.Parse(layout, r.URL.Query().Get("end"))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "end must be a YYYY-MM-DD date", nil)
		return
	}
	if end.Before(start) {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "end must not be before start", nil)
		return
	}

	loans, err := h.service.LoansInPeriod(r.Context(), start, end)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, loans, map[string]any{"total": len(loans)})
}
