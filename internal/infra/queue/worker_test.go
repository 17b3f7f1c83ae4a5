package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

type fakeActivityWriter struct {
	inserted []*entity.Activity
	err      error
}

func (f *fakeActivityWriter) Insert(_ context.Context, a *entity.Activity) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, a)
	return nil
}

func TestProcessMessagePersistsActivity(t *testing.T) {
	writer := &fakeActivityWriter{}
	w := NewWorker(nil, writer)

	occurred := time.Now().UTC()
	err := w.processMessage(context.Background(), ActivityPayload{
		ActivityID: "act-1",
		SessionID:  "sess-1",
		Type:       entity.ActivityServiceView,
		Metadata:   map[string]any{entity.MetaServiceID: "android-native"},
		OccurredAt: occurred,
	})

	assert.NoError(t, err)
	assert.Len(t, writer.inserted, 1)
	assert.Equal(t, "act-1", writer.inserted[0].ID)
	assert.Equal(t, "sess-1", writer.inserted[0].SessionID)
	assert.Equal(t, occurred, writer.inserted[0].CreatedAt)
}

func TestProcessMessageDropsUnknownType(t *testing.T) {
	writer := &fakeActivityWriter{}
	w := NewWorker(nil, writer)

	err := w.processMessage(context.Background(), ActivityPayload{
		ActivityID: "act-1",
		SessionID:  "sess-1",
		Type:       "mouse_wiggle",
	})

	// Dropped, not retried: nil means ack.
	assert.NoError(t, err)
	assert.Empty(t, writer.inserted)
}

func TestProcessMessageDropsActorlessEvent(t *testing.T) {
	writer := &fakeActivityWriter{}
	w := NewWorker(nil, writer)

	err := w.processMessage(context.Background(), ActivityPayload{
		ActivityID: "act-1",
		Type:       entity.ActivityPageView,
	})

	assert.NoError(t, err)
	assert.Empty(t, writer.inserted)
}

func TestProcessMessageSurfacesStoreFailure(t *testing.T) {
	writer := &fakeActivityWriter{err: errors.New("connection refused")}
	w := NewWorker(nil, writer)

	err := w.processMessage(context.Background(), ActivityPayload{
		ActivityID: "act-1",
		SessionID:  "sess-1",
		Type:       entity.ActivityPageView,
	})

	// A store failure nacks to the DLQ instead of acking silently.
	assert.Error(t, err)
}
