package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("hsapi", reg)

	m.ObserveHTTPRequest("POST", "/book-appointment", "200", 15*time.Millisecond)
	m.ObserveOperation("book_slot", "success")
	m.ObserveOperation("book_slot", "conflict")
	m.ObserveOperation("book_slot", "conflict")
	m.ObserveStore("file", "save", time.Millisecond, nil)
	m.ObserveStore("file", "save", time.Millisecond, errors.New("disk full"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.operationsTotal.WithLabelValues("book_slot", "conflict")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/book-appointment", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.storeErrorsTotal.WithLabelValues("file", "save")))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTPRequest("GET", "/", "200", time.Millisecond)
	m.ObserveOperation("join_waitlist", "success")
	m.ObserveStore("redis", "load", time.Millisecond, nil)
}
