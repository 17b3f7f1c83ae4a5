package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/usecase"
)

// ActivityHandler ingests tracking events from the storefront. The endpoint
// is fire-and-forget: a valid event always gets 202, whether or not the
// broker took it. Only an unknown type is rejected.
type ActivityHandler struct {
	record   *usecase.RecordActivityUseCase
	resolver *usecase.ResolveIdentityUseCase
}

func NewActivityHandler(record *usecase.RecordActivityUseCase, resolver *usecase.ResolveIdentityUseCase) *ActivityHandler {
	return &ActivityHandler{
		record:   record,
		resolver: resolver,
	}
}

type recordActivityRequest struct {
	Type     string         `json:"activity_type"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Record handles POST /api/activity.
func (h *ActivityHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	identity := resolveIdentity(h.resolver, w, r)

	if err := h.record.Execute(r.Context(), req.Type, identity, req.Metadata); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "UNKNOWN_ACTIVITY_TYPE", err.Error())
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
