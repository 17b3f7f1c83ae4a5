package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/usecase"
)

// CatalogHandler serves the read-only browse surface. Browsing feeds the
// analytics aggregator: category and service fetches record best-effort
// activities tagged with the resolved identity.
type CatalogHandler struct {
	catalog   usecase.CatalogRepositoryInterface
	analytics *usecase.AnalyticsUseCase
	recorder  *usecase.RecordActivityUseCase
	resolver  *usecase.ResolveIdentityUseCase
}

func NewCatalogHandler(
	catalog usecase.CatalogRepositoryInterface,
	analytics *usecase.AnalyticsUseCase,
	recorder *usecase.RecordActivityUseCase,
	resolver *usecase.ResolveIdentityUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		catalog:   catalog,
		analytics: analytics,
		recorder:  recorder,
		resolver:  resolver,
	}
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "Failed to load categories")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// ListServices handles GET /api/categories/{slug}/services.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	services, err := h.catalog.ListServicesByCategory(r.Context(), slug)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "Failed to load services")
		return
	}

	identity := resolveIdentity(h.resolver, w, r)
	h.recorder.Execute(r.Context(), entity.ActivityCategoryBrowse, identity, map[string]any{
		entity.MetaCategory: slug,
	})

	writeJSON(w, http.StatusOK, services)
}

// GetService handles GET /api/services/{id}. A successful fetch counts as a
// service_view; a failed recording must not break the page.
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	service, err := h.catalog.FindServiceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrServiceNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Service not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "Failed to load service")
		return
	}

	identity := resolveIdentity(h.resolver, w, r)
	h.analytics.RecordServiceView(r.Context(), identity, service.ID, service.Name)

	writeJSON(w, http.StatusOK, service)
}
