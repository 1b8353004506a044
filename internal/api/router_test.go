package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/simulations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ok", res["status"])
	assert.Contains(t, res, "uptime_seconds")
	assert.NotEmpty(t, rec.Header().Get("X-Run-ID"))
}

func TestSimulationsReport(t *testing.T) {
	body := `{
		"warehouses": [{"id": 1, "x": 0, "y": 0}],
		"agents": [{"id": 1, "x": 0, "y": 0}, {"id": 2, "x": 10, "y": 10}],
		"packages": [{"id": 1, "warehouse_id": 1, "destination_x": 3, "destination_y": 4}]
	}`

	rec := post(t, NewRouter(), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"agents": [
			{"agent_id": 1, "packages_delivered": 1, "total_distance": 5.0, "efficiency": 5.0},
			{"agent_id": 2, "packages_delivered": 0, "total_distance": 0, "efficiency": 0}
		],
		"best_agent": 1
	}`, rec.Body.String())
}

func TestSimulationsZeroPackages(t *testing.T) {
	rec := post(t, NewRouter(), `{"warehouses": [], "agents": [{"id": "a", "x": 1, "y": 1}], "packages": []}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Nil(t, res["best_agent"])
	assert.Contains(t, res, "best_agent")
}

func TestSimulationsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{"warehouses": `, http.StatusBadRequest},
		{"missing field", `{"warehouses": [], "agents": [{"id": 1}], "packages": []}`, http.StatusBadRequest},
		{"no agents", `{"warehouses": [{"id": 1, "x": 0, "y": 0}], "agents": [], "packages": [{"id": 1, "warehouse_id": 1, "destination_x": 0, "destination_y": 0}]}`, http.StatusUnprocessableEntity},
		{"unknown warehouse", `{"warehouses": [], "agents": [{"id": 1, "x": 0, "y": 0}], "packages": [{"id": 1, "warehouse_id": 3, "destination_x": 0, "destination_y": 0}]}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, NewRouter(), tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestSimulationsMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/simulations", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}
