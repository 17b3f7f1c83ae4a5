package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/http/middleware"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/usecase"
)

// AdminHandler serves the operator view: lead listing, status transitions
// and the analytics counters. Authn/authz for these routes sits in the proxy
// in front of this service.
type AdminHandler struct {
	listLeads    *usecase.ListLeadsUseCase
	updateStatus *usecase.UpdateLeadStatusUseCase
	analytics    *usecase.AnalyticsUseCase
}

func NewAdminHandler(
	listLeads *usecase.ListLeadsUseCase,
	updateStatus *usecase.UpdateLeadStatusUseCase,
	analytics *usecase.AnalyticsUseCase,
) *AdminHandler {
	return &AdminHandler{
		listLeads:    listLeads,
		updateStatus: updateStatus,
		analytics:    analytics,
	}
}

// ListLeads handles GET /api/admin/leads?status=...
func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.listLeads.Execute(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "Failed to list leads")
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

// UpdateLeadStatus handles PATCH /api/admin/leads/{id}/status.
func (h *AdminHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	lead, err := h.updateStatus.Execute(r.Context(), leadID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidLeadStatus):
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_STATUS", err.Error())
		case errors.Is(err, entity.ErrLeadNotFound):
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "Failed to update lead")
		}
		return
	}

	middleware.RecordLeadStatusUpdate(lead.Status)
	writeJSON(w, http.StatusOK, lead)
}

// Analytics handles GET /api/admin/analytics.
func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	leadCounts, err := h.analytics.ComputeLeadAnalytics(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "Failed to compute analytics")
		return
	}

	serviceMetrics, err := h.analytics.ComputeServiceMetrics(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "Failed to compute analytics")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lead_counts":     leadCounts,
		"service_metrics": serviceMetrics,
	})
}
