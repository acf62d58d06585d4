package api_test

import (
	"net/http"
	"net/http/httptest"
	"ontrack/internal/api"
	"ontrack/pkg/domain"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mocksurvey "ontrack/internal/survey/mock"
)

func newTestHandler(t *testing.T) (http.Handler, *mocksurvey.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocksurvey.NewMockService(ctrl)
	reg := prometheus.NewRegistry()

	h, err := api.NewHandler(api.Deps{Survey: m, Registerer: reg, Gatherer: reg}, api.Options{
		RequestTimeout: time.Second,
		MetricsPath:    "/metrics",
		StaticDir:      t.TempDir(),
	})
	require.NoError(t, err)

	return h, m
}

func TestNewHandler_Routes(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		target string
		status int
		body   string
	}{
		{target: "/", status: http.StatusOK, body: "Welcome to OnTrack API"},
		{target: "/specs/v1.yaml", status: http.StatusOK, body: "OnTrack Survey API"},
		{target: "/v1/docs/", status: http.StatusOK},
		{target: "/debug/pprof/", status: http.StatusOK},
		{target: "/metrics", status: http.StatusOK},
		{target: "/v1/survey/icon/1", status: http.StatusNotFound, body: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.status, rec.Code)
			require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
			if tt.body != "" {
				require.Contains(t, rec.Body.String(), tt.body)
			}
		})
	}
}

func TestNewHandler_SubmitRecordsPrimaryCode(t *testing.T) {
	h, m := newTestHandler(t)

	m.EXPECT().ProcessSubmission(gomock.Any(), []string{"Yes"}).Return(domain.ScoringResult{
		CategoryCounts: domain.CategoryTally{"S": 1},
		PrimaryCode:    domain.CategorySocial,
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/survey/submit", strings.NewReader(`{"answers":["Yes"]}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Contains(t, rec.Body.String(), `survey_primary_code_total{code="S"`)
}

func TestNewHandler_Preflight(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/survey/submit", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
