package usecase

import (
	"context"
	"fmt"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

// AnalyticsUseCase derives admin counters on demand from the lead and
// activity stores. Nothing is cached: aggregation cost grows with row count,
// which is fine at this scale and buys read-your-writes consistency with the
// lead store for free.
type AnalyticsUseCase struct {
	Leads      LeadRepositoryInterface
	Activities ActivityRepositoryInterface
	Recorder   *RecordActivityUseCase
}

func NewAnalyticsUseCase(leads LeadRepositoryInterface, activities ActivityRepositoryInterface, recorder *RecordActivityUseCase) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		Leads:      leads,
		Activities: activities,
		Recorder:   recorder,
	}
}

// ComputeLeadAnalytics counts leads partitioned by status. Every known status
// appears in the result, zeroed when absent, so the admin dashboard never has
// to guess at missing keys.
func (uc *AnalyticsUseCase) ComputeLeadAnalytics(ctx context.Context) (*entity.LeadAnalytics, error) {
	counts, err := uc.Leads.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	byStatus := make(map[string]int, len(entity.LeadStatuses))
	for _, s := range entity.LeadStatuses {
		byStatus[s] = 0
	}

	total := 0
	for status, n := range counts {
		byStatus[status] = n
		total += n
	}

	return &entity.LeadAnalytics{Total: total, ByStatus: byStatus}, nil
}

// RecordServiceView is a convenience wrapper over the activity recorder. It
// exists to feed ComputeServiceMetrics, not because it has logic of its own.
func (uc *AnalyticsUseCase) RecordServiceView(ctx context.Context, identity entity.Identity, serviceID, serviceName string) {
	uc.Recorder.Execute(ctx, entity.ActivityServiceView, identity, map[string]any{
		entity.MetaServiceID:   serviceID,
		entity.MetaServiceName: serviceName,
	})
}

// ComputeServiceMetrics merges service_view counts from the activity store
// with lead counts from the lead store, keyed by service id. Lead counts are
// status-blind: this metric tracks interest volume, not won business.
func (uc *AnalyticsUseCase) ComputeServiceMetrics(ctx context.Context) (map[string]entity.ServiceMetric, error) {
	views, err := uc.Activities.CountServiceViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count service views: %w", err)
	}

	leads, err := uc.Leads.CountByService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by service: %w", err)
	}

	metrics := make(map[string]entity.ServiceMetric, len(views)+len(leads))
	for _, v := range views {
		m := metrics[v.ServiceID]
		m.ServiceID = v.ServiceID
		if m.ServiceName == "" {
			m.ServiceName = v.ServiceName
		}
		m.Views = v.Count
		metrics[v.ServiceID] = m
	}
	for _, l := range leads {
		m := metrics[l.ServiceID]
		m.ServiceID = l.ServiceID
		if l.ServiceName != "" {
			// The lead row carries the name captured at submission; prefer it
			// over whatever the tracking metadata said.
			m.ServiceName = l.ServiceName
		}
		m.Leads = l.Count
		metrics[l.ServiceID] = m
	}

	return metrics, nil
}
