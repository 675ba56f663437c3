// Package server exposes the calculators over a small REST API.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/elcukro/home-budget-sub004/pkg/babysteps"
	"github.com/elcukro/home-budget-sub004/pkg/constants"
	"github.com/elcukro/home-budget-sub004/pkg/insights"
	"github.com/elcukro/home-budget-sub004/pkg/loans"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	cache       Cache
	simulator   *loans.Simulator
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, cache Cache, limiter *RateLimiter, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewMemoryCache(constants.DefaultCacheTTLSeconds * time.Second)
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		cache:       cache,
		simulator:   loans.NewSimulator(logger),
		maxBodySize: constants.DefaultMaxBodySizeBytes,
		version:     trimmedVersion,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.Post("/api/loans/simulate", h.handleLoanSimulate)
	r.Post("/api/babysteps", h.handleBabySteps)
	r.Post("/api/insights", h.handleInsights)
	r.Get("/api/health", h.handleHealth)
	r.Get("/api/version", h.handleVersion)

	return r
}

type loanSimulateRequest struct {
	Balance        float64 `json:"balance"`
	AnnualRate     float64 `json:"annualRate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	ExtraMonthly   float64 `json:"extraMonthly"`
	OneTimePayment float64 `json:"oneTimePayment"`
}

type loanSimulateResponse struct {
	RunID      string           `json:"runId"`
	Comparison loans.Comparison `json:"comparison"`
}

func (h *handler) handleLoanSimulate(w http.ResponseWriter, r *http.Request) {
	var request loanSimulateRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	loan := loans.Loan{
		RemainingBalance:   request.Balance,
		AnnualInterestRate: request.AnnualRate,
		MonthlyPayment:     request.MonthlyPayment,
	}
	plan := loans.OverpaymentPlan{
		ExtraMonthly:   request.ExtraMonthly,
		OneTimePayment: request.OneTimePayment,
	}

	h.writeJSON(w, http.StatusOK, loanSimulateResponse{
		RunID:      uuid.NewString(),
		Comparison: h.simulator.Compare("api", loan, plan),
	})
}

type babyStepsResponse struct {
	RunID string               `json:"runId"`
	Steps []babysteps.Progress `json:"steps"`
}

func (h *handler) handleBabySteps(w http.ResponseWriter, r *http.Request) {
	var balances babysteps.Balances
	if !h.decodeBody(w, r, &balances) {
		return
	}

	h.writeJSON(w, http.StatusOK, babyStepsResponse{
		RunID: uuid.NewString(),
		Steps: babysteps.EvaluateSteps(balances),
	})
}

type insightsRequest struct {
	Transactions []insights.Transaction `json:"transactions"`
}

type insightsResponse struct {
	RunID  string          `json:"runId"`
	Report insights.Report `json:"report"`
	Cached bool            `json:"cached"`
}

func (h *handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	// Detection is deterministic over the request body, so the digest of
	// the raw payload is a sound cache key.
	key := fmt.Sprintf("insights:%x", xxhash.Sum64(body))
	if cached, hit := h.cache.Get(r.Context(), key); hit {
		var cachedReport insights.Report
		if err := json.Unmarshal(cached, &cachedReport); err == nil {
			h.writeJSON(w, http.StatusOK, insightsResponse{
				RunID:  uuid.NewString(),
				Report: cachedReport,
				Cached: true,
			})
			return
		}
	}

	var request insightsRequest
	if err := json.Unmarshal(body, &request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	detected := insights.DetectPatterns(request.Transactions)

	if serialized, err := json.Marshal(detected); err == nil {
		if err := h.cache.Set(r.Context(), key, serialized); err != nil {
			h.logger.Warn("failed to cache insights report",
				zap.String("op", "server.handleInsights"),
				zap.Error(err),
			)
		}
	}

	h.writeJSON(w, http.StatusOK, insightsResponse{
		RunID:  uuid.NewString(),
		Report: detected,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		http.Error(w, "request body too large or unreadable", http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return body, true
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	body, ok := h.readBody(w, r)
	if !ok {
		return false
	}
	if err := json.Unmarshal(body, target); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
