package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Narayana2527/health-safari-apis/pkg/logger"
)

type observed struct {
	method, route, status string
}

type recordingMetrics struct {
	calls []observed
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route, status string, _ time.Duration) {
	m.calls = append(m.calls, observed{method, route, status})
}

func TestHTTPMetrics_UsesRouteTemplate(t *testing.T) {
	m := &recordingMetrics{}

	router := mux.NewRouter()
	router.Use(HTTPMetrics(m))
	router.HandleFunc("/doctors/{name}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/doctors/x", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, observed{"GET", "/doctors/{name}", "418"}, m.calls[0])
}

func TestApply_CoversUnmatchedRequests(t *testing.T) {
	m := &recordingMetrics{}

	router := mux.NewRouter()
	router.HandleFunc("/check-slot", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodPost)
	Apply(router, RequestID, HTTPMetrics(m))

	notFound := httptest.NewRecorder()
	router.ServeHTTP(notFound, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, notFound.Body.String())
	assert.NotEmpty(t, notFound.Header().Get(RequestIDHeader))

	wrongMethod := httptest.NewRecorder()
	router.ServeHTTP(wrongMethod, httptest.NewRequest(http.MethodGet, "/check-slot", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, wrongMethod.Code)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/check-slot", nil))

	assert.Equal(t, []observed{
		{"GET", unmatchedRoute, "404"},
		{"GET", unmatchedRoute, "405"},
		{"POST", "/check-slot", "200"},
	}, m.calls)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "abc", seen)
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}
