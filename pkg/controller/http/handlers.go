package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/integrity-lab/talos/pkg/usecase"
	"github.com/integrity-lab/talos/pkg/utils/errutil"
)

type assetResponse struct {
	model.Asset
	Risk types.RiskLevel `json:"risk"`
}

type advisoryResponse struct {
	ID      string           `json:"id"`
	AssetID types.AssetID    `json:"asset_id,omitempty"`
	Class   types.PanelClass `json:"class"`
	Text    string           `json:"text"`
}

type panelResponse struct {
	Scenario   types.Scenario             `json:"scenario"`
	Notice     string                     `json:"notice,omitempty"`
	Assets     []assetResponse            `json:"assets"`
	Forecast   *model.ReplacementForecast `json:"forecast,omitempty"`
	Advisories []advisoryResponse         `json:"advisories"`
}

func toAssetResponses(assets []model.Asset) []assetResponse {
	out := make([]assetResponse, len(assets))
	for i, a := range assets {
		out[i] = assetResponse{Asset: a, Risk: a.RiskLevel()}
	}
	return out
}

func toPanelResponse(result *usecase.PanelResult) panelResponse {
	resp := panelResponse{
		Scenario:   result.Scenario,
		Notice:     result.Notice,
		Assets:     toAssetResponses(result.Assets),
		Forecast:   result.Forecast,
		Advisories: make([]advisoryResponse, len(result.Advisories)),
	}
	for i, adv := range result.Advisories {
		resp.Advisories[i] = advisoryResponse{
			ID:      adv.ID,
			AssetID: adv.AssetID,
			Class:   adv.PanelClass(),
			Text:    adv.DisplayText(),
		}
	}
	return resp
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// handleRegister serves the full asset register, optionally filtered by
// risk level via ?risk=critical|warning|safe.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	register := s.uc.Register()

	assets := register.All()
	if riskParam := r.URL.Query().Get("risk"); riskParam != "" {
		level := types.RiskLevel(riskParam)
		switch level {
		case types.RiskCritical, types.RiskWarning, types.RiskSafe:
			assets = register.FilterByRisk(level)
		default:
			errutil.HandleHTTP(r.Context(), w,
				goerr.New("invalid risk level", goerr.V("risk", riskParam)),
				http.StatusBadRequest)
			return
		}
	}

	writeJSON(r.Context(), w, struct {
		Assets []assetResponse `json:"assets"`
	}{Assets: toAssetResponses(assets)})
}

// handleAsset serves a single asset by ID
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	id := types.AssetID(chi.URLParam(r, "id"))
	if err := id.Validate(); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	asset, err := s.uc.Register().Get(id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
		return
	}

	writeJSON(r.Context(), w, assetResponse{Asset: *asset, Risk: asset.RiskLevel()})
}

// handlePanel adapts a no-argument panel use case to an HTTP handler
func (s *Server) handlePanel(run func(context.Context) (*usecase.PanelResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := run(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}
		writeJSON(r.Context(), w, toPanelResponse(result))
	}
}

// handleFieldReport summarizes a technician note from the request body
func (s *Server) handleFieldReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode field report request"), http.StatusBadRequest)
		return
	}

	result, err := s.uc.FieldReport(r.Context(), req.Note)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(r.Context(), w, toPanelResponse(result))
}

// handlePrefetch runs all single-advisory panels concurrently
func (s *Server) handlePrefetch(w http.ResponseWriter, r *http.Request) {
	results, err := s.uc.Prefetch(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	resp := make(map[types.Scenario]panelResponse, len(results))
	for sc, result := range results {
		resp[sc] = toPanelResponse(result)
	}

	writeJSON(r.Context(), w, resp)
}

// handleOverview describes the dashboard and its panels
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	type panelInfo struct {
		Scenario    types.Scenario `json:"scenario"`
		Name        string         `json:"name"`
		Description string         `json:"description"`
	}

	writeJSON(r.Context(), w, struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		Assets      int         `json:"assets"`
		Panels      []panelInfo `json:"panels"`
	}{
		Name:        "Asset Integrity Advisory Service",
		Description: "AI-powered insights and simulations for managing infrastructure health.",
		Assets:      s.uc.Register().Len(),
		Panels: []panelInfo{
			{types.ScenarioLifespan, "Lifespan Estimator", "Remaining useful life estimation with risk highlighting"},
			{types.ScenarioCorrosion, "Corrosion Simulator", "Corrosion trend analysis for the most affected assets"},
			{types.ScenarioFailureMode, "Failure Mode Predictor", "Failure mode prediction for critical assets"},
			{types.ScenarioFieldReport, "Field Report Summarizer", "Technician field report summarization and advisory"},
			{types.ScenarioCompliance, "Regulatory Watch", "Regulatory compliance risk forecasting"},
			{types.ScenarioCostForecast, "Replacement Cost Forecast", "Replacement cost estimation and capital planning"},
			{types.ScenarioWorkOrder, "Work Order Optimizer", "Prioritized maintenance work order generation"},
		},
	})
}
