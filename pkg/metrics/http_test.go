package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	counter, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("get metric: %v", err)
	}
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return metric.GetCounter().GetValue()
}

func TestObserveRecordsRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/v1/patient/wellness", 200, 25*time.Millisecond)
	m.Observe("GET", "/api/v1/patient/wellness", 200, 40*time.Millisecond)
	m.Observe("POST", "/api/v1/patient/logs", 409, 10*time.Millisecond)

	if got := counterValue(t, m.requests, "GET", "/api/v1/patient/wellness", "200"); got != 2 {
		t.Fatalf("expected 2 requests recorded, got %v", got)
	}
	if got := counterValue(t, m.requests, "POST", "/api/v1/patient/logs", "409"); got != 1 {
		t.Fatalf("expected 1 conflict recorded, got %v", got)
	}
}

func TestObserveNormalizesEmptyLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("", "", 500, time.Millisecond)

	if got := counterValue(t, m.requests, "unknown", "unknown", "500"); got != 1 {
		t.Fatalf("expected normalized labels, got %v", got)
	}
}

func TestObserveNilReceiverSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/health/live", 200, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe("GET", "/health/live", 200, time.Millisecond)
}
