package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

func serveRequest(t *testing.T, method, uri string, body []byte) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	if body != nil {
		req.SetBody(body)
	}

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	New().Handle(&ctx)
	return &ctx
}

func TestHealthz(t *testing.T) {
	ctx := serveRequest(t, fasthttp.MethodGet, "http://test/healthz", nil)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
}

func TestSimulate(t *testing.T) {
	body := []byte(`{
		"current_value": 100000,
		"years": 5,
		"simulations": 100,
		"annual_return": 7,
		"volatility": 0,
		"seed": 42
	}`)
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/simulate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var summary domain.SimulationSummary
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &summary))
	require.Len(t, summary.Projection, 6)
	assert.True(t, summary.SuccessRate.Equal(decimal.NewFromInt(100)))
	assert.Nil(t, summary.MedianDepletionYear)
}

func TestSimulateAppliesDefaultSimulations(t *testing.T) {
	body := []byte(`{"current_value": 50000, "years": 1, "annual_return": 5, "seed": 1}`)
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/simulate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var summary domain.SimulationSummary
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &summary))
	require.Len(t, summary.Projection, 2)
}

func TestSimulateStressScenarioPreset(t *testing.T) {
	body := []byte(`{
		"current_value": 100000,
		"years": 3,
		"simulations": 10,
		"volatility": 0,
		"seed": 7,
		"stress_scenario": "financial_crisis"
	}`)
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/simulate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var summary domain.SimulationSummary
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &summary))
	require.Len(t, summary.Projection, 4)
	assert.True(t, summary.Projection[1].Median.Equal(decimal.NewFromInt(60000)))
}

func TestSimulateUnknownStressScenario(t *testing.T) {
	body := []byte(`{"current_value": 1000, "years": 1, "stress_scenario": "meteor_strike"}`)
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/simulate", body)
	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var resp struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, fasthttp.StatusBadRequest, resp.Status)
	assert.Contains(t, resp.Message, "unknown stress scenario")
}

func TestSimulateInvalidBody(t *testing.T) {
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/simulate", []byte("{not json"))
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSimulateValidationError(t *testing.T) {
	body := []byte(`{"current_value": 1000, "years": -2}`)
	ctx := serveRequest(t, fasthttp.MethodPost, "http://test/api/v1/simulate", body)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSimulateMethodNotAllowed(t *testing.T) {
	ctx := serveRequest(t, fasthttp.MethodGet, "http://test/api/v1/simulate", nil)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestUnknownPath(t *testing.T) {
	ctx := serveRequest(t, fasthttp.MethodGet, "http://test/nope", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
