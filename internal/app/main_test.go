package app_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Egor213/CodeActivity/internal/app"
	"github.com/Egor213/CodeActivity/internal/config"
	"github.com/Egor213/CodeActivity/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL, apiKey, rounding string) *config.Config {
	return &config.Config{
		WakaTime: config.WakaTime{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Timeout: 2 * time.Second,
		},
		Activity: config.Activity{Rounding: rounding},
	}
}

func newHandler(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	logger, _ := test.NewNullLogger()
	h, err := app.NewAPIHandler(cfg, metrics.NewTestCounters(), prometheus.NewRegistry(), logger)
	require.NoError(t, err)
	return h
}

func get(h http.Handler, method string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, "/api", nil))
	return rec
}

func TestAPI_EndToEnd(t *testing.T) {
	var gotStart, gotEnd, gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("start")
		gotEnd = r.URL.Query().Get("end")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":[
			{"range":{"date":"2024-01-01"},"grand_total":{"total_seconds":3600}},
			{"range":{"date":"2024-01-02"},"grand_total":{"total_seconds":0}}
		]}`))
	}))
	defer upstream.Close()

	h := newHandler(t, testConfig(upstream.URL, "waka_123", "ceil"))
	rec := get(h, http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"date":"2024-01-01","count":1}]`, rec.Body.String())
	assert.Equal(t, "public, s-maxage=3600, stale-while-revalidate=7200", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Basic d2FrYV8xMjM=", gotAuth)

	start, err := time.Parse("2006-01-02", gotStart)
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", gotEnd)
	require.NoError(t, err)
	assert.Equal(t, 365*24*time.Hour, end.Sub(start))
}

func TestAPI_NearestRounding(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"range":{"date":"2024-01-01"},"grand_total":{"total_seconds":1}}]}`))
	}))
	defer upstream.Close()

	h := newHandler(t, testConfig(upstream.URL, "key", "nearest"))
	rec := get(h, http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_MissingAPIKey(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer upstream.Close()

	h := newHandler(t, testConfig(upstream.URL, "", "ceil"))
	rec := get(h, http.MethodGet)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"API key is not configured"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Zero(t, calls.Load())
}

func TestAPI_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	baseURL := upstream.URL
	upstream.Close()

	h := newHandler(t, testConfig(baseURL, "key", "ceil"))
	rec := get(h, http.MethodGet)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "upstream request failed")
	assert.Contains(t, rec.Body.String(), "connect")
}

func TestAPI_PreflightWithoutAPIKey(t *testing.T) {
	h := newHandler(t, testConfig("http://127.0.0.1:1", "", "ceil"))
	rec := get(h, http.MethodOptions)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestNewAPIHandler_UnknownRounding(t *testing.T) {
	logger, _ := test.NewNullLogger()

	_, err := app.NewAPIHandler(testConfig("", "key", "floor"), metrics.NewTestCounters(), prometheus.NewRegistry(), logger)

	assert.Error(t, err)
}
