package earningshandler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"netpay/internal/domain/earnings"
	"netpay/internal/domain/live"
	"netpay/internal/domain/tax"
	"netpay/internal/platform/metrics"
	"netpay/internal/transport/http/api"
	"netpay/internal/transport/http/middleware"
	"netpay/internal/transport/http/shared"
)

type Handler struct {
	Registry     *tax.Registry
	Metrics      *metrics.Collector
	TickInterval time.Duration
	Now          func() time.Time
}

func NewHandler(reg *tax.Registry, collector *metrics.Collector, tick time.Duration) *Handler {
	if reg == nil {
		reg = tax.Builtin()
	}
	return &Handler{Registry: reg, Metrics: collector, TickInterval: tick, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/earnings", func(r chi.Router) {
		r.Post("/", h.handleCompute)
		r.Post("/progress", h.handleProgress)
		r.Get("/live", h.handleLive)
		r.Post("/statement", h.handleStatement)
		r.Post("/batch", h.handleBatch)
	})
}

// maxElapsedSeconds keeps an elapsed time within time.Duration range.
const maxElapsedSeconds = 366 * 24 * 60 * 60

type progressRequest struct {
	Input          earnings.FormInput `json:"input"`
	ElapsedSeconds float64            `json:"elapsedSeconds"`
}

type progressResponse struct {
	Result   earnings.Result `json:"result"`
	Progress live.Snapshot   `json:"progress"`
}

func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var form earnings.FormInput
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request payload", reqID)
		return
	}
	if strictMode(r) && h.reject(w, form, reqID) {
		return
	}

	breakdown := earnings.Explain(h.Registry, earnings.ParseForm(h.Registry, form))
	h.recordCalculation()
	api.Success(w, breakdown, reqID)
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload progressRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request payload", reqID)
		return
	}
	if strictMode(r) && h.reject(w, payload.Input, reqID) {
		return
	}

	in := earnings.ParseForm(h.Registry, payload.Input)
	result := earnings.Compute(h.Registry, in)
	h.recordCalculation()

	elapsed := time.Duration(min(max(payload.ElapsedSeconds, 0), maxElapsedSeconds) * float64(time.Second))
	session := live.NewSession(in, result, time.Time{})
	api.Success(w, progressResponse{
		Result:   result,
		Progress: live.Progress(result, session.HoursWorkedSoFar, session.HoursScheduled, elapsed),
	}, reqID)
}

// handleLive streams a progress event per tick as server-sent events until
// the schedule is complete or the client goes away.
func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	form := earnings.FormFromQuery(r.URL.Query())
	if strictMode(r) && h.reject(w, form, reqID) {
		return
	}
	in := earnings.ParseForm(h.Registry, form)
	breakdown := earnings.Explain(h.Registry, in)
	session := live.NewSession(in, breakdown.Result, h.now())
	if !session.Valid() {
		v := shared.NewValidator()
		v.Add("hoursToBeWorkedToday", "must be a positive number of hours to track")
		v.Reject(w, reqID)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "streaming not supported", reqID)
		return
	}
	h.recordCalculation()

	ctx, cancel := context.WithCancel(r.Context())
	events := make(chan live.Snapshot)
	ticker := live.NewTicker(h.TickInterval, func(s live.Snapshot) {
		select {
		case events <- s:
		case <-ctx.Done():
		}
	}, live.WithClock(h.now))
	defer func() {
		cancel()
		ticker.Stop()
		ticker.Wait()
	}()

	if h.Metrics != nil {
		closeStream := h.Metrics.StreamOpened()
		defer closeStream()
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, "result", breakdown); err != nil {
		return
	}
	flusher.Flush()

	if err := ticker.Start(ctx, session); err != nil {
		slog.Warn("live ticker not started", "err", err, "requestId", reqID)
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-events:
			if err := writeEvent(w, "progress", snap); err != nil {
				slog.Debug("live stream closed", "err", err, "requestId", reqID)
				return
			}
			flusher.Flush()
			if snap.Complete {
				return
			}
		}
	}
}

func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var form earnings.FormInput
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request payload", reqID)
		return
	}
	if strictMode(r) && h.reject(w, form, reqID) {
		return
	}

	breakdown := earnings.Explain(h.Registry, earnings.ParseForm(h.Registry, form))
	h.recordCalculation()

	var buf bytes.Buffer
	if err := earnings.WriteStatement(&buf, breakdown, h.now()); err != nil {
		slog.Error("statement render failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to render statement", reqID)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordStatement()
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="netpay-statement.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("write statement failed", "err", err, "requestId", reqID)
	}
}

func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var buf bytes.Buffer
	rows, err := earnings.ComputeBatch(h.Registry, r.Body, &buf)
	if err != nil {
		switch {
		case errors.Is(err, earnings.ErrBatchRead),
			errors.Is(err, earnings.ErrBatchEmpty),
			errors.Is(err, earnings.ErrBatchTooLarge):
			api.Fail(w, http.StatusBadRequest, "batch_failed", err.Error(), reqID)
		default:
			slog.Error("batch failed", "err", err, "requestId", reqID)
			api.Fail(w, http.StatusInternalServerError, "batch_failed", "failed to compute batch", reqID)
		}
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordBatch(rows)
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="netpay-batch.csv"`)
	w.Header().Set("X-Batch-Rows", strconv.Itoa(rows))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("write batch failed", "err", err, "requestId", reqID)
	}
}

func (h *Handler) reject(w http.ResponseWriter, form earnings.FormInput, reqID string) bool {
	v := shared.NewValidator()
	for _, issue := range earnings.Validate(h.Registry, form) {
		v.Add(issue.Field, issue.Reason)
	}
	return v.Reject(w, reqID)
}

func (h *Handler) recordCalculation() {
	if h.Metrics != nil {
		h.Metrics.RecordCalculation()
	}
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func strictMode(r *http.Request) bool {
	strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))
	return strict
}

func writeEvent(w http.ResponseWriter, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	return err
}
