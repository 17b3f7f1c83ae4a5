package usecase

import (
	"context"
	"log"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/http/middleware"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/queue"
)

// RecordActivityUseCase publishes one tracked interaction to the activity
// queue. Publishing is fire-and-forget: a lost analytics event is cheap, a
// blocked storefront response is not, so broker failures are logged and
// counted but never returned to the caller.
type RecordActivityUseCase struct {
	Producer ActivityProducerInterface
}

func NewRecordActivityUseCase(producer ActivityProducerInterface) *RecordActivityUseCase {
	return &RecordActivityUseCase{Producer: producer}
}

// Execute returns an error only for an unknown activity type. That is the one
// boundary validation this path has; everything downstream is best-effort.
func (uc *RecordActivityUseCase) Execute(ctx context.Context, activityType string, identity entity.Identity, metadata map[string]any) error {
	if !entity.IsValidActivityType(activityType) {
		return ErrUnknownActivityType
	}

	activity := entity.NewActivity(activityType, identity, metadata)

	payload := queue.ActivityPayload{
		ActivityID: activity.ID,
		UserID:     activity.UserID,
		SessionID:  activity.SessionID,
		Type:       activity.Type,
		Metadata:   activity.Metadata,
		OccurredAt: activity.CreatedAt,
	}

	if err := uc.Producer.PublishActivity(ctx, payload); err != nil {
		log.Printf("⚠️ activity %s dropped: %v", activityType, err)
		middleware.RecordActivityDropped(activityType)
		return nil
	}

	middleware.RecordActivityPublished(activityType)
	return nil
}
