package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tracked interaction types. The set is open-ended in the schema but every
// record call is validated against this list at the boundary.
const (
	ActivityCategoryBrowse = "category_browse"
	ActivityServiceView    = "service_view"
	ActivityServiceInquiry = "service_inquiry"
	ActivitySearch         = "search"
	ActivityPageView       = "page_view"
)

var ActivityTypes = []string{
	ActivityCategoryBrowse,
	ActivityServiceView,
	ActivityServiceInquiry,
	ActivitySearch,
	ActivityPageView,
}

// Well-known metadata keys the analytics aggregator inspects. Every other key
// is opaque pass-through payload.
const (
	MetaServiceID   = "service_id"
	MetaServiceName = "service_name"
	MetaCategory    = "category"
	MetaQuery       = "query"
)

// Activity is a single interaction event, attributed to either a user id or a
// guest session id. An activity with neither actor reference is invalid.
// Activities are append-only; they are never updated or deleted.
type Activity struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Type      string         `json:"activity_type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewActivity(activityType string, identity Identity, metadata map[string]any) *Activity {
	a := &Activity{
		ID:        uuid.New().String(),
		Type:      activityType,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if identity.Kind == IdentityUser {
		a.UserID = identity.UserID
	} else {
		a.SessionID = identity.SessionID
	}
	return a
}

func IsValidActivityType(activityType string) bool {
	for _, t := range ActivityTypes {
		if t == activityType {
			return true
		}
	}
	return false
}
