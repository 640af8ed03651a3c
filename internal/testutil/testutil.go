package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"libraryapi/internal/catalog"
	"libraryapi/internal/user"
)

// TestStudent is a fixture user with the default 14-day loan period.
var TestStudent = user.User{
	ID:                 1,
	Name:               "Ana Silva",
	RegistrationNumber: "2024001",
	Type:               user.TypeStudent,
	Email:              "ana@example.edu",
	ActiveSince:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	Status:             user.StatusActive,
}

// TestProfessor is a fixture faculty user with the 30-day loan period.
var TestProfessor = user.User{
	ID:                 2,
	Name:               "Carlos Mendes",
	RegistrationNumber: "1998007",
	Type:               user.TypeFaculty,
	Email:              "carlos@example.edu",
	ActiveSince:        time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
	Status:             user.StatusActive,
}

// TestBook is a fixture available book.
var TestBook = catalog.Book{
	ID:     3,
	Title:  "Test-Driven Development",
	Author: "Kent Beck",
	ISBN:   "9780321146533",
	Status: catalog.StatusAvailable,
}

// NewRequest creates an HTTP request with an optional JSON body.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// DecodeBody parses a recorded response body into a generic map.
func DecodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}
	return bodyMap
}
