package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Repo LeadRepositoryInterface
}

func NewUpdateLeadStatusUseCase(repo LeadRepositoryInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Repo: repo}
}

// Execute moves a lead to any of the five statuses. No transition graph is
// enforced; operators fix mistakes by moving leads backwards or reopening
// "terminal" ones. Unknown ids surface as entity.ErrLeadNotFound, which is a
// benign "nothing to update", not a failure.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id, status string) (*entity.Lead, error) {
	if !entity.IsValidLeadStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLeadStatus, status)
	}

	lead, err := uc.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}
	return lead, nil
}
