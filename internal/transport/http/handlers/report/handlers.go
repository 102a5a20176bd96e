package reporthandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"eval360/internal/domain/export"
	"eval360/internal/domain/scoring"
	"eval360/internal/platform/metrics"
	"eval360/internal/transport/http/api"
	"eval360/internal/transport/http/middleware"
	"eval360/internal/transport/http/shared"
)

type Handler struct {
	Service           *scoring.Service
	Export            *export.Service
	Metrics           *metrics.Collector
	DefaultFiscalYear int
}

func NewHandler(service *scoring.Service, exportSvc *export.Service, collector *metrics.Collector, defaultFiscalYear int) *Handler {
	return &Handler{Service: service, Export: exportSvc, Metrics: collector, DefaultFiscalYear: defaultFiscalYear}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/scores", h.handleScores)
		r.Get("/summary", h.handleSummary)
		r.Get("/peers", h.handlePeers)
		r.Get("/export.csv", h.handleExportCSV)
		r.Get("/export.pdf", h.handleExportPDF)
	})
	r.With(middleware.RequireAdmin).Post("/weights/validate", h.handleValidateWeights)
	r.With(middleware.RequireAdmin).Get("/weights/{level}", h.handleWeights)
}

func (h *Handler) reportParams(r *http.Request) (int64, int, bool) {
	evaluationID, err := strconv.ParseInt(r.URL.Query().Get("evaluationId"), 10, 64)
	if err != nil || evaluationID <= 0 {
		return 0, 0, false
	}
	fiscalYear := shared.ParseFiscalYear(r.URL.Query().Get("fiscalYear"), h.DefaultFiscalYear)
	return evaluationID, fiscalYear, true
}

func (h *Handler) handleScores(w http.ResponseWriter, r *http.Request) {
	evaluationID, fiscalYear, ok := h.reportParams(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_params", "evaluationId is required", middleware.GetRequestID(r.Context()))
		return
	}

	start := time.Now()
	records, err := h.Service.ScoreReport(r.Context(), evaluationID, fiscalYear, nil)
	if err != nil {
		h.failReport(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordReport(time.Since(start))
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	evaluationID, fiscalYear, ok := h.reportParams(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_params", "evaluationId is required", middleware.GetRequestID(r.Context()))
		return
	}

	start := time.Now()
	stats, areas, err := h.Service.Summary(r.Context(), evaluationID, fiscalYear)
	if err != nil {
		h.failReport(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordReport(time.Since(start))
	}
	api.Success(w, map[string]any{"stats": stats, "improvementAreas": areas}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePeers(w http.ResponseWriter, r *http.Request) {
	evaluationID, fiscalYear, ok := h.reportParams(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_params", "evaluationId is required", middleware.GetRequestID(r.Context()))
		return
	}
	evaluatorID, err1 := strconv.ParseInt(r.URL.Query().Get("evaluatorId"), 10, 64)
	evaluateeID, err2 := strconv.ParseInt(r.URL.Query().Get("evaluateeId"), 10, 64)
	if err1 != nil || err2 != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_params", "evaluatorId and evaluateeId are required", middleware.GetRequestID(r.Context()))
		return
	}

	peers, err := h.Service.PeerComparison(r.Context(), evaluatorID, evaluateeID, evaluationID, fiscalYear)
	if err != nil {
		h.failReport(w, r, err)
		return
	}
	api.Success(w, peers, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	evaluationID, fiscalYear, ok := h.reportParams(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_params", "evaluationId is required", middleware.GetRequestID(r.Context()))
		return
	}

	records, err := h.Service.ScoreReport(r.Context(), evaluationID, fiscalYear, nil)
	if err != nil {
		h.failReport(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="scores-%d-%d.csv"`, evaluationID, fiscalYear))
	_ = export.WriteCSV(w, records)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	evaluationID, fiscalYear, ok := h.reportParams(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_params", "evaluationId is required", middleware.GetRequestID(r.Context()))
		return
	}

	records, err := h.Service.ScoreReport(r.Context(), evaluationID, fiscalYear, nil)
	if err != nil {
		h.failReport(w, r, err)
		return
	}
	stats := scoring.Summarize(records)

	name := fmt.Sprintf("scores-%d-%d", evaluationID, fiscalYear)
	title := fmt.Sprintf("360 Evaluation Report %d", fiscalYear)
	path, err := h.Export.ScoreReportPDF(name, title, stats, records)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render pdf", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, name))
	http.ServeFile(w, r, path)
}

func (h *Handler) handleValidateWeights(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Level   string             `json:"level"`
		Weights map[string]float64 `json:"weights"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, h.Service.ValidateCustomWeights(payload.Level, payload.Weights), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleWeights(w http.ResponseWriter, r *http.Request) {
	level := chi.URLParam(r, "level")
	stakeholder := scoring.StakeholderWeights(level)
	criteria := scoring.CriteriaWeights(level)
	if stakeholder == nil && criteria == nil {
		api.Fail(w, http.StatusNotFound, "unknown_level", "no weight tables for level", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"level":              level,
		"stakeholderWeights": stakeholder,
		"criteriaWeights":    criteria,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failReport(w http.ResponseWriter, r *http.Request, err error) {
	if err == scoring.ErrEvaluationNotFound {
		api.Fail(w, http.StatusNotFound, "evaluation_not_found", "evaluation not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to compute report", middleware.GetRequestID(r.Context()))
}
