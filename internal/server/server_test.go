package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nordic-tco/tco-calculator/internal/config"
	"github.com/nordic-tco/tco-calculator/internal/server"
	"github.com/nordic-tco/tco-calculator/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const compareBody = `{
	"vehicle": {
		"make": "Tesla", "model": "Model Y", "year": 2024,
		"purchase_price": 550000, "fuel_type": "electric", "fuel_consumption": 17,
		"estimated_annual_mileage": 20000, "vehicle_category": "suv"
	},
	"purchase": {"down_payment": 110000, "financing_required": true, "loan_term_years": 5, "interest_rate": 4.9},
	"lease": {"monthly_payment": 6500, "down_payment": 40000, "lease_term": 36, "annual_mileage_limit": 15000, "excess_mileage_fee": 2},
	"user": {"country": "norway", "age": 42, "driving_experience": 20, "location": "urban"},
	"period": {"years": 5, "reference_year": 2025}
}`

func newRouter() http.Handler {
	cfg := &config.Config{
		DefaultCountry:     "sweden",
		MaxPurchasePrice:   1e9,
		MaxYears:           5,
		MaxAnnualMileage:   200000,
		MaxRate:            100,
		MaxLoanTermYears:   10,
		MaxLeaseTermMonths: 120,
	}
	registry := tools.Registry(cfg, noop.NewTracerProvider().Tracer("test"))
	return server.NewRouter(registry, zap.NewNop())
}

func serve(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := serve(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetrics(t *testing.T) {
	rec := serve(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTools(t *testing.T) {
	rec := serve(t, http.MethodGet, "/v1/tools", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"tools":["calculate_tco","compare_ownership","loan_schedule","market_config"]}`,
		rec.Body.String(),
	)
}

func TestCallTool(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		body     string
		wantCode int
	}{
		{name: "compare", tool: "compare_ownership", body: compareBody, wantCode: http.StatusOK},
		{name: "loan schedule", tool: "loan_schedule", body: `{"principal": 440000, "annual_rate_percent": 4.9, "months": 60}`, wantCode: http.StatusOK},
		{name: "market config without body", tool: "market_config", body: "", wantCode: http.StatusOK},
		{name: "unknown tool", tool: "rent", body: `{}`, wantCode: http.StatusNotFound},
		{name: "malformed json", tool: "calculate_tco", body: `{"vehicle":`, wantCode: http.StatusBadRequest},
		{name: "invalid params", tool: "calculate_tco", body: `{"ownership_type": "purchase"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, http.MethodPost, "/v1/tools/"+tt.tool, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestCompareResponseShape(t *testing.T) {
	rec := serve(t, http.MethodPost, "/v1/tools/compare_ownership", compareBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results map[string]struct {
			TotalCost       float64           `json:"total_cost"`
			YearlyBreakdown []json.RawMessage `json:"yearly_breakdown"`
		} `json:"results"`
		Comparison struct {
			Cheapest string `json:"cheapest"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	for _, ownership := range []string{"purchase", "finance", "lease"} {
		res, ok := resp.Results[ownership]
		require.True(t, ok, ownership)
		assert.Len(t, res.YearlyBreakdown, 5)
	}
	assert.Contains(t, []string{"purchase", "finance", "lease"}, resp.Comparison.Cheapest)
}

func TestMarketRoute(t *testing.T) {
	rec := serve(t, http.MethodGet, "/v1/markets/denmark", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info struct {
		Country string `json:"country"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "denmark", info.Country)

	rec = serve(t, http.MethodGet, "/v1/markets/iceland", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
