package server

import (
	"fmt"
	"log"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/ChrisLanks/nest-egg-sub003/internal/calculation"
	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

// Server exposes the simulation engine to the dashboard frontend.
type Server struct {
	engine *calculation.MonteCarloEngine
}

// New creates a server with a fresh engine.
func New() *Server {
	return &Server{engine: calculation.NewMonteCarloEngine()}
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("simulation API listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.Handle)
}

// Handle routes a single request.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
	case "/api/v1/simulate":
		s.handleSimulate(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

// simulateRequest is the wire shape of a simulation request. A stress
// scenario may be referenced by preset name or defined inline via the
// embedded params.
type simulateRequest struct {
	domain.SimulationParams
	StressScenario string `json:"stress_scenario,omitempty"`
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleSimulate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req simulateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	params, err := req.toParams()
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.engine.RunMonteCarloSimulation(*params)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	body, err := json.Marshal(summary)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

func (r *simulateRequest) toParams() (*domain.SimulationParams, error) {
	params := r.SimulationParams
	if r.StressScenario != "" {
		if params.StressOverrides != nil {
			return nil, fmt.Errorf("specify either stress_scenario or stress_overrides, not both")
		}
		preset, ok := domain.PresetStressScenario(r.StressScenario)
		if !ok {
			return nil, fmt.Errorf("unknown stress scenario %q", r.StressScenario)
		}
		params.StressOverrides = preset
	}
	params.ApplyDefaults()
	return &params, nil
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(errorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
