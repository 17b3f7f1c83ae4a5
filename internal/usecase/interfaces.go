package usecase

import (
	"context"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/queue"
)

type CreateLeadInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProjectBrief string `json:"project_brief"`
	Budget       string `json:"budget"`
	ServiceID    string `json:"service_id"`
	ServiceName  string `json:"service_name"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	// List returns leads newest-first. An empty filter returns everything.
	List(ctx context.Context, statusFilter string) ([]*entity.Lead, error)
	// UpdateStatus returns entity.ErrLeadNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountByService(ctx context.Context) ([]entity.ServiceCount, error)
}

type UserRepositoryInterface interface {
	// FindByID returns entity.ErrUserNotFound for unknown ids.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type ActivityRepositoryInterface interface {
	Insert(ctx context.Context, activity *entity.Activity) error
	CountServiceViews(ctx context.Context) ([]entity.ServiceCount, error)
}

type CatalogRepositoryInterface interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListServicesByCategory(ctx context.Context, categorySlug string) ([]*entity.Service, error)
	// FindServiceByID returns entity.ErrServiceNotFound for unknown ids.
	FindServiceByID(ctx context.Context, id string) (*entity.Service, error)
}

type ActivityProducerInterface interface {
	PublishActivity(ctx context.Context, payload queue.ActivityPayload) error
}

type EmailService interface {
	SendLeadAlert(lead *entity.Lead) error
}

// SessionState is the mutable per-request session the identity resolver reads
// and, for brand-new guests, writes a minted session id into. The HTTP layer
// adapts its cookie jar to this; the resolver never touches ambient state.
type SessionState interface {
	SessionID() string
	SetSessionID(id string)
}
