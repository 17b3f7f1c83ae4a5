package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/http/middleware"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/usecase"
)

// LeadHandler owns the public lead submission endpoint. Submissions are
// rate-limited per IP; the form is abused by bots more than by people.
type LeadHandler struct {
	createLead  *usecase.CreateLeadUseCase
	resolver    *usecase.ResolveIdentityUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(createLead *usecase.CreateLeadUseCase, resolver *usecase.ResolveIdentityUseCase) *LeadHandler {
	return &LeadHandler{
		createLead:  createLead,
		resolver:    resolver,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// Create handles POST /api/leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	identity := resolveIdentity(h.resolver, w, r)

	lead, err := h.createLead.Execute(r.Context(), input, identity)
	if err != nil {
		if verrs, ok := usecase.AsValidationErrors(err); ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verrs})
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "Failed to submit lead")
		return
	}

	middleware.RecordLeadCaptured(lead.ServiceID)
	writeJSON(w, http.StatusCreated, lead)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
