package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/config"
	"github.com/aretw0/boardchain/internal/logging"
	"github.com/aretw0/boardchain/internal/metrics"
	"github.com/aretw0/boardchain/internal/service"
	httpadapter "github.com/aretw0/boardchain/pkg/adapters/http"
	"github.com/aretw0/boardchain/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) (http.Handler, *metrics.Prometheus) {
	t.Helper()
	prom := metrics.NewPrometheus()
	cache, err := memory.NewCache(memory.DefaultMaxEdges)
	require.NoError(t, err)
	t.Cleanup(cache.Close)
	svc := service.New(config.Default(),
		boardchain.WithCache(cache),
		boardchain.WithMetrics(prom),
	)
	h := httpadapter.NewHandler(svc,
		httpadapter.WithMetrics(prom.Handler()),
		httpadapter.WithLogger(logging.NewNop()),
	)
	return h, prom
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newHandler(t)
	rec := get(t, h, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, boardchain.Version, body["version"])
}

func TestRegular(t *testing.T) {
	h, _ := newHandler(t)

	tests := []struct {
		target  string
		power   int
		regular bool
	}{
		{"/model/regular", 6, true},
		{"/model/regular?power=1", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, h, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			var body service.Regularity
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.power, body.Power)
			assert.Equal(t, tt.regular, body.Regular)
		})
	}
}

func TestSteady(t *testing.T) {
	h, _ := newHandler(t)

	rec := get(t, h, "/model/steady")
	require.Equal(t, http.StatusOK, rec.Code)
	var body service.Steady
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.States, 43)

	rec = get(t, h, "/model/steady?power=1")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTransitions(t *testing.T) {
	h, _ := newHandler(t)

	rec := get(t, h, "/model/transitions?from=30")
	require.Equal(t, http.StatusOK, rec.Code)
	var body service.Transitions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "goto_jail", body.Kind)
	require.Len(t, body.Transitions, 1)
	assert.Equal(t, 40, body.Transitions[0].State)

	for _, target := range []string{
		"/model/transitions?from=43",
		"/model/transitions?from=x",
		"/model/transitions",
		"/model/transitions?from=0&jail=30",
		"/model/regular?size=tiny",
		"/model/regular?size=5000000&chance=",
	} {
		t.Run(target, func(t *testing.T) {
			rec := get(t, h, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestMetricsAndCORS(t *testing.T) {
	h, _ := newHandler(t)
	get(t, h, "/model/regular")

	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `boardchain_builds_total{repr="float"} 1`)
	assert.Contains(t, rec.Body.String(), `boardchain_regularity_checks_total{power="6",result="regular"} 1`)

	req := httptest.NewRequest(http.MethodOptions, "/model/steady", nil)
	opt := httptest.NewRecorder()
	h.ServeHTTP(opt, req)
	assert.Equal(t, http.StatusOK, opt.Code)
}
