package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lead status workflow. Any status may move to any other status: operators
// correct mistakes by hand, so the store does not enforce a transition graph.
const (
	LeadStatusNew        = "new"
	LeadStatusContacted  = "contacted"
	LeadStatusInProgress = "in-progress"
	LeadStatusCompleted  = "completed"
	LeadStatusCancelled  = "cancelled"
)

// LeadStatuses lists every valid status, in workflow order.
var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusInProgress,
	LeadStatusCompleted,
	LeadStatusCancelled,
}

// BudgetBrackets is the fixed set of budget options shown on the storefront.
var BudgetBrackets = []string{
	"Under ₹25,000",
	"₹25,000 - ₹50,000",
	"₹50,000 - ₹1,00,000",
	"₹1,00,000 - ₹2,50,000",
	"Above ₹2,50,000",
}

type Lead struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProjectBrief string `json:"project_brief"`
	Budget       string `json:"budget"`

	// ServiceID/ServiceName are denormalized at submission time and never
	// updated afterwards: the catalog may change, the lead must not.
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`

	Status    string    `json:"status"`
	UserID    string    `json:"user_id,omitempty"` // empty for guest-originated leads
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLead stamps id, initial status and timestamps. Field validation happens
// in the usecase layer, where errors are accumulated per field.
func NewLead(name, email, phone, projectBrief, budget, serviceID, serviceName, userID string) *Lead {
	now := time.Now().UTC()
	return &Lead{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		ProjectBrief: projectBrief,
		Budget:       budget,
		ServiceID:    serviceID,
		ServiceName:  serviceName,
		Status:       LeadStatusNew,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func IsValidLeadStatus(status string) bool {
	for _, s := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidBudget(budget string) bool {
	for _, b := range BudgetBrackets {
		if b == budget {
			return true
		}
	}
	return false
}
