package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

func TestNewLeadDefaults(t *testing.T) {
	lead := entity.NewLead(
		"Ravi Kumar", "ravi@example.com", "9876543210",
		"Delivery tracking app", "₹25,000 - ₹50,000",
		"android-native", "Android Native App", "",
	)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Empty(t, lead.UserID)
	assert.Equal(t, lead.CreatedAt, lead.UpdatedAt)
}

func TestLeadStatusValidation(t *testing.T) {
	for _, s := range entity.LeadStatuses {
		assert.True(t, entity.IsValidLeadStatus(s), s)
	}
	assert.False(t, entity.IsValidLeadStatus("archived"))
	assert.False(t, entity.IsValidLeadStatus(""))
	assert.False(t, entity.IsValidLeadStatus("New"))
}

func TestBudgetValidation(t *testing.T) {
	assert.True(t, entity.IsValidBudget("₹25,000 - ₹50,000"))
	assert.False(t, entity.IsValidBudget("₹25,000-₹50,000"))
	assert.False(t, entity.IsValidBudget("a lakh or so"))
}

func TestNewActivityTagsExactlyOneActor(t *testing.T) {
	fromUser := entity.NewActivity(entity.ActivityPageView, entity.UserIdentity("user-1"), nil)
	assert.Equal(t, "user-1", fromUser.UserID)
	assert.Empty(t, fromUser.SessionID)

	fromGuest := entity.NewActivity(entity.ActivityPageView, entity.GuestIdentity("sess-1"), nil)
	assert.Equal(t, "sess-1", fromGuest.SessionID)
	assert.Empty(t, fromGuest.UserID)
}
