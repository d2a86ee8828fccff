package http_test

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	server "github.com/integrity-lab/talos/pkg/controller/http"
	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/integrity-lab/talos/pkg/service/register"
	"github.com/integrity-lab/talos/pkg/usecase"
)

type stubAdvisor struct{}

func (x *stubAdvisor) Advise(ctx context.Context, sc types.Scenario, prompt string) *model.Advisory {
	return model.NewAdvisory(sc, "stub advisory")
}

func newTestServer(t *testing.T) *server.Server {
	gen := register.New(register.WithRand(rand.New(rand.NewPCG(1, 1))))

	uc := usecase.New(gen.Generate(), &stubAdvisor{})

	return gt.R1(server.New(uc)).NoError(t)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, rec.Body.String()).Equal("OK")
}

func TestGetRegister(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/register", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Assets []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
			Risk string `json:"risk"`
		} `json:"assets"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Array(t, resp.Assets).Length(register.FleetSize)
	gt.Value(t, resp.Assets[0].ID).Equal("A0001")
	gt.Value(t, resp.Assets[0].Type).Equal("Pump")
}

func TestGetRegisterRiskFilter(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/register?risk=critical", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Assets []struct {
			Risk      string `json:"risk"`
			RULMonths int    `json:"rul_months"`
		} `json:"assets"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, a := range resp.Assets {
		gt.Value(t, a.Risk).Equal("critical")
		gt.Bool(t, a.RULMonths <= 3).True()
	}
}

func TestGetRegisterInvalidRiskFilter(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/register?risk=doomed", nil))

	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestGetAsset(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/register/A0001", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		ID   string `json:"id"`
		Risk string `json:"risk"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.ID).Equal("A0001")
	gt.Value(t, resp.Risk).NotEqual("")
}

func TestGetAssetNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/register/A9999", nil))

	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}

func TestGetAssetInvalidID(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/register/pump-1", nil))

	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestPanelCorrosion(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/panels/corrosion", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Scenario   string `json:"scenario"`
		Assets     []any  `json:"assets"`
		Advisories []struct {
			AssetID string `json:"asset_id"`
			Class   string `json:"class"`
			Text    string `json:"text"`
		} `json:"advisories"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.Scenario).Equal("corrosion")
	gt.Array(t, resp.Assets).Length(5)
	gt.Array(t, resp.Advisories).Length(5)
	for _, adv := range resp.Advisories {
		gt.Value(t, adv.Class).Equal("warning")
		gt.Value(t, adv.Text).Equal("stub advisory")
		gt.Value(t, adv.AssetID).NotEqual("")
	}
}

func TestPanelFieldReport(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/panels/field-report",
		strings.NewReader(`{"note": "Valve stuck half open."}`))
	s.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Scenario   string `json:"scenario"`
		Advisories []struct {
			Class string `json:"class"`
		} `json:"advisories"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.Scenario).Equal("field-report")
	gt.Array(t, resp.Advisories).Length(1)
	gt.Value(t, resp.Advisories[0].Class).Equal("success")
}

func TestPanelFieldReportBadBody(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/panels/field-report",
		strings.NewReader("not json"))
	s.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestPanelPrefetch(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/panels/prefetch", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp map[string]struct {
		Scenario string `json:"scenario"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, len(resp)).Equal(4)
	for _, key := range []string{"lifespan", "compliance", "cost-forecast", "work-order"} {
		_, ok := resp[key]
		gt.Bool(t, ok).True()
	}
}

func TestOverview(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/overview", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Name   string `json:"name"`
		Assets int    `json:"assets"`
		Panels []struct {
			Scenario string `json:"scenario"`
			Name     string `json:"name"`
		} `json:"panels"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.Assets).Equal(register.FleetSize)
	gt.Array(t, resp.Panels).Length(7)
	gt.Value(t, resp.Panels[0].Name).Equal("Lifespan Estimator")
}
