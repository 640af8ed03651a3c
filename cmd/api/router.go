package main

import (
	"context"
	"net/http"
	"time"

	"libraryapi/internal/catalog"
	"libraryapi/internal/loan"
	"libraryapi/internal/report"
	"libraryapi/internal/user"
)

func newRouter(
	books *catalog.HTTPHandler,
	users *user.HTTPHandler,
	loans *loan.HTTPHandler,
	reports *report.HTTPHandler,
	ready func(context.Context) error,
) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ready(ctx); err != nil {
			http.Error(w, "storage not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /books", books.List)
	router.HandleFunc("POST /books", books.Create)
	router.HandleFunc("GET /books/{id}", books.GetByID)

	router.HandleFunc("GET /users", users.List)
	router.HandleFunc("POST /users", users.Create)
	router.HandleFunc("GET /users/{id}", users.GetByID)

	router.HandleFunc("GET /loans", loans.List)
	router.HandleFunc("POST /loans", loans.Create)
	router.HandleFunc("GET /loans/{id}", loans.GetByID)
	router.HandleFunc("POST /loans/{id}/return", loans.Return)

	router.HandleFunc("GET /reports/summary", reports.Summary)
	router.HandleFunc("GET /reports/most-borrowed", reports.MostBorrowed)
	router.HandleFunc("GET /reports/most-active", reports.MostActive)
	router.HandleFunc("GET /reports/occupancy", reports.Occupancy)
	router.HandleFunc("GET /reports/overdue", reports.Overdue)
	router.HandleFunc("GET /reports/loans", reports.LoansInPeriod)

	return router
}
