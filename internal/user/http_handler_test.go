package user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHTTPHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		body := `{"name":"Ana Silva","registration_number":"2024001","type":"student","email":"ana@example.edu"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown type is a validation error", func(t *testing.T) {
		body := `{"name":"Ana","registration_number":"2024001","type":"wizard","email":"ana@example.edu"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate user is a conflict", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ErrDuplicate)

		body := `{"name":"Ana Silva","registration_number":"2024001","type":"student","email":"ana@example.edu"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "DUPLICATE_USER")
	})

	t.Run("bad email", func(t *testing.T) {
		body := `{"name":"Ana","registration_number":"2024001","type":"student","email":"not-an-email"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	testUser := User{
		ID:                 1,
		Name:               "Ana Silva",
		RegistrationNumber: "2024001",
		Type:               TypeStudent,
		Email:              "ana@example.edu",
		ActiveSince:        time.Now(),
		Status:             StatusActive,
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testUser, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		r.SetPathValue("id", "1")

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(999)).Return(User{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/users/999", nil)
		r.SetPathValue("id", "999")

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
