package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	testBook := Book{
		ID:     1,
		Title:  "Clean Architecture",
		Author: "Robert C. Martin",
		ISBN:   "9780134494166",
		Status: StatusAvailable,
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]Book{testBook}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	testBook := Book{ID: 3, Title: "Test", Author: "Author", ISBN: "9780134494166", Status: StatusAvailable}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(testBook, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/3", nil)
		r.SetPathValue("id", "3")

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/99", nil)
		r.SetPathValue("id", "99")

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/abc", nil)
		r.SetPathValue("id", "abc")

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

		body := `{"title":"Domain-Driven Design","author":"Eric Evans","isbn":"9780321125217"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid isbn", func(t *testing.T) {
		body := `{"title":"Bad","author":"Author","isbn":"not-an-isbn"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		body := `{"author":"Author","isbn":"9780321125217"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
