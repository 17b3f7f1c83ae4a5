package usecase

import (
	"context"
	"fmt"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute returns leads newest-first. An empty filter or "all" returns every
// lead; anything else matches the status exactly (an unknown status simply
// matches nothing).
func (uc *ListLeadsUseCase) Execute(ctx context.Context, statusFilter string) ([]*entity.Lead, error) {
	if statusFilter == "all" {
		statusFilter = ""
	}

	leads, err := uc.Repo.List(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}
