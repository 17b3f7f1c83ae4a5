package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

type CreateLeadUseCase struct {
	Repo         LeadRepositoryInterface
	Recorder     *RecordActivityUseCase // optional, best-effort
	EmailService EmailService           // optional, best-effort
}

func NewCreateLeadUseCase(repo LeadRepositoryInterface, recorder *RecordActivityUseCase, emailService EmailService) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:         repo,
		Recorder:     recorder,
		EmailService: emailService,
	}
}

// Execute validates the payload eagerly (every failing field at once, as
// ValidationErrors), persists the lead with status "new", and fires the
// best-effort side effects: a service_inquiry activity and a sales alert
// email. Guest leads stay guest: the user id is attached only when the
// identity is user-typed, never promoted from a session.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput, identity entity.Identity) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	var userID string
	if identity.Kind == entity.IdentityUser {
		userID = identity.UserID
	}

	lead := entity.NewLead(
		input.Name,
		input.Email,
		input.Phone,
		input.ProjectBrief,
		input.Budget,
		input.ServiceID,
		input.ServiceName,
		userID,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	if uc.Recorder != nil {
		uc.Recorder.Execute(ctx, entity.ActivityServiceInquiry, identity, map[string]any{
			entity.MetaServiceID:   lead.ServiceID,
			entity.MetaServiceName: lead.ServiceName,
		})
	}

	if uc.EmailService != nil {
		go func(l entity.Lead) {
			if err := uc.EmailService.SendLeadAlert(&l); err != nil {
				log.Printf("⚠️ lead alert email for %s failed: %v", l.ID, err)
			}
		}(*lead)
	}

	return lead, nil
}
