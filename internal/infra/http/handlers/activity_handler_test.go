package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/http/handlers"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/queue"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/usecase"
)

// MockActivityProducer
type MockActivityProducer struct {
	mock.Mock
}

func (m *MockActivityProducer) PublishActivity(ctx context.Context, payload queue.ActivityPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func activityBody(activityType string) []byte {
	b, _ := json.Marshal(map[string]any{
		"activity_type": activityType,
		"metadata":      map[string]string{"page": "/services/android-native"},
	})
	return b
}

func TestRecordActivityHandlerAccepted(t *testing.T) {
	mockProducer := new(MockActivityProducer)
	mockProducer.On("PublishActivity", mock.Anything, mock.Anything).Return(nil)

	h := handlers.NewActivityHandler(usecase.NewRecordActivityUseCase(mockProducer), newGuestResolver())

	req := httptest.NewRequest(http.MethodPost, "/api/activity", bytes.NewReader(activityBody("page_view")))
	rec := httptest.NewRecorder()

	h.Record(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	mockProducer.AssertExpectations(t)
}

func TestRecordActivityHandlerBrokerDownStill202(t *testing.T) {
	mockProducer := new(MockActivityProducer)
	mockProducer.On("PublishActivity", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	h := handlers.NewActivityHandler(usecase.NewRecordActivityUseCase(mockProducer), newGuestResolver())

	req := httptest.NewRequest(http.MethodPost, "/api/activity", bytes.NewReader(activityBody("service_view")))
	rec := httptest.NewRecorder()

	h.Record(rec, req)

	// Fire-and-forget: the visitor never learns the broker was down.
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRecordActivityHandlerUnknownType(t *testing.T) {
	mockProducer := new(MockActivityProducer)

	h := handlers.NewActivityHandler(usecase.NewRecordActivityUseCase(mockProducer), newGuestResolver())

	req := httptest.NewRequest(http.MethodPost, "/api/activity", bytes.NewReader(activityBody("mouse_wiggle")))
	rec := httptest.NewRecorder()

	h.Record(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockProducer.AssertNotCalled(t, "PublishActivity", mock.Anything, mock.Anything)
}

func TestRecordActivityHandlerInvalidJSON(t *testing.T) {
	h := handlers.NewActivityHandler(usecase.NewRecordActivityUseCase(new(MockActivityProducer)), newGuestResolver())

	req := httptest.NewRequest(http.MethodPost, "/api/activity", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()

	h.Record(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordActivityHandlerReusesSessionCookie(t *testing.T) {
	var captured queue.ActivityPayload
	mockProducer := new(MockActivityProducer)
	mockProducer.On("PublishActivity", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(queue.ActivityPayload)
	}).Return(nil)

	h := handlers.NewActivityHandler(usecase.NewRecordActivityUseCase(mockProducer), newGuestResolver())

	req := httptest.NewRequest(http.MethodPost, "/api/activity", bytes.NewReader(activityBody("page_view")))
	req.AddCookie(&http.Cookie{Name: handlers.SessionCookieName, Value: "sess-returning"})
	rec := httptest.NewRecorder()

	h.Record(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "sess-returning", captured.SessionID)
	assert.Empty(t, captured.UserID)
}
