package earningshandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"netpay/internal/platform/metrics"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) (http.Handler, *metrics.Collector, *Handler) {
	t.Helper()
	collector := metrics.New()
	h := NewHandler(nil, collector, 10*time.Millisecond)
	h.Now = func() time.Time { return time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC) }
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r, collector, h
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestComputeEndpoint(t *testing.T) {
	router, collector, _ := newTestRouter(t)

	bodies := []string{
		`{"income":"20","employment":"w2","state":"CA","hours":"8"}`,
		`{"income":20,"employment":"W-2","state":"california","hours":8,"hoursToBeWorkedToday":null}`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/earnings", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		env := decodeEnvelope(t, rec)
		var got struct {
			GrossPay   float64 `json:"grossPay"`
			FederalTax float64 `json:"federalTax"`
			StateTax   float64 `json:"stateTax"`
			FICATax    float64 `json:"ficaTax"`
			NetPay     float64 `json:"netPay"`
			StateCode  string  `json:"stateCode"`
			StateKnown bool    `json:"stateKnown"`
		}
		if err := json.Unmarshal(env.Data, &got); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if got.GrossPay != 160 || got.FICATax != 12.24 || got.FederalTax != 18.28 || got.StateTax != 4.46 || got.NetPay != 125.01 {
			t.Fatalf("unexpected result %+v", got)
		}
		if got.StateCode != "CA" || !got.StateKnown {
			t.Fatalf("expected CA to be recognised, got %+v", got)
		}
	}
	if collector.Snapshot()["calculationsTotal"].(uint64) != 2 {
		t.Fatal("expected calculations to be counted")
	}
}

func TestComputeAcceptsTypedInput(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := `{"hourlyWage":20,"employmentClass":"w2","stateCode":"CA","hoursScheduledToday":8}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/earnings?strict=true", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		GrossPay   float64 `json:"grossPay"`
		NetPay     float64 `json:"netPay"`
		StateCode  string  `json:"stateCode"`
		StateKnown bool    `json:"stateKnown"`
		HoursBasis float64 `json:"hoursBasis"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.GrossPay != 160 || got.NetPay != 125.01 || got.HoursBasis != 8 {
		t.Fatalf("unexpected result %+v", got)
	}
	if got.StateCode != "CA" || !got.StateKnown {
		t.Fatalf("expected CA to be recognised, got %+v", got)
	}
}

func TestComputePermissiveByDefault(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/earnings", strings.NewReader(`{"income":"abc","employment":"intern","state":"ZZ","hours":"-3"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected permissive 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || !strings.Contains(string(env.Data), `"netPay":0`) {
		t.Fatalf("expected zero result, got %s", env.Data)
	}
}

func TestComputeStrictRejects(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/earnings?strict=true", strings.NewReader(`{"income":"abc","employment":"w2","state":"ZZ","hours":"8"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", rec.Body.String())
	}
	if !strings.Contains(string(env.Error.Details), `"income"`) || !strings.Contains(string(env.Error.Details), `"state"`) {
		t.Fatalf("expected income and state issues, got %s", env.Error.Details)
	}
}

func TestComputeInvalidJSON(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/earnings", strings.NewReader(`{"income":`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != "invalid_json" {
		t.Fatalf("expected invalid_json, got %s", rec.Body.String())
	}
}

func TestProgressEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := `{"input":{"income":"20","employment":"w2","state":"TX","hours":"2","hoursToBeWorkedToday":"8"},"elapsedSeconds":7200}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/earnings/progress", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got progressResponse
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.Result.GrossPay != 160 {
		t.Fatalf("expected gross for the full schedule, got %+v", got.Result)
	}
	if got.Progress.HoursTotal != 4 || got.Progress.Fraction != 0.5 || got.Progress.GrossEarned != 80 || got.Progress.Complete {
		t.Fatalf("unexpected progress %+v", got.Progress)
	}
}

func TestProgressWithoutScheduleIsZero(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := `{"input":{"income":"20","employment":"w2","state":"TX","hours":"2"},"elapsedSeconds":60}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/earnings/progress", strings.NewReader(body)))
	var got progressResponse
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.Progress.Fraction != 0 || got.Progress.GrossEarned != 0 {
		t.Fatalf("expected zero progress, got %+v", got.Progress)
	}
}

func TestLiveStreamsUntilComplete(t *testing.T) {
	router, collector, h := newTestRouter(t)

	start := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	calls := 0
	h.Now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current := start.Add(time.Duration(calls) * 30 * time.Minute)
		calls++
		return current
	}

	req := httptest.NewRequest(http.MethodGet, "/earnings/live?income=20&employment=w2&state=TX&hours=0&hoursToBeWorkedToday=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected event stream, got %q", ct)
	}
	body := rec.Body.String()
	if strings.Count(body, "event: result\n") != 1 {
		t.Fatalf("expected one result event, got %s", body)
	}
	if strings.Count(body, "event: progress\n") != 2 {
		t.Fatalf("expected two progress events, got %s", body)
	}
	if !strings.Contains(body, `"fraction":0.5`) || !strings.Contains(body, `"complete":true`) {
		t.Fatalf("unexpected progress events %s", body)
	}
	if collector.Snapshot()["liveStreamsOpen"].(int64) != 0 {
		t.Fatal("expected live stream gauge to return to zero")
	}
}

func TestLiveRequiresSchedule(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/earnings/live?income=20&employment=w2&state=TX&hours=4", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", rec.Body.String())
	}
}

func TestStatementEndpoint(t *testing.T) {
	router, collector, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/earnings/statement", strings.NewReader(`{"income":"31.5","employment":"1099","state":"NY","hours":"6"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("expected pdf, got %q", rec.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected pdf body")
	}
	if collector.Snapshot()["statementsTotal"].(uint64) != 1 {
		t.Fatal("expected statement to be counted")
	}
}

func TestBatchEndpoint(t *testing.T) {
	router, collector, _ := newTestRouter(t)

	csvBody := "hourly_wage,employment,state,hours_worked,hours_scheduled\n" +
		"20,w2,CA,8,\n" +
		"45,1099,TX,3,6\n"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/earnings/batch", strings.NewReader(csvBody)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Batch-Rows") != "2" {
		t.Fatalf("expected 2 rows, got %q", rec.Header().Get("X-Batch-Rows"))
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 || !strings.Contains(lines[0], "net_pay") {
		t.Fatalf("unexpected csv %q", rec.Body.String())
	}
	if collector.Snapshot()["batchRowsTotal"].(uint64) != 2 {
		t.Fatal("expected batch rows to be counted")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/earnings/batch", strings.NewReader("")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != "batch_failed" {
		t.Fatalf("expected batch_failed, got %s", rec.Body.String())
	}
}
