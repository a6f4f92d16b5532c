package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Server:       config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"*"}},
		Dashboard:    config.Dashboard{DetailTableLimit: 100, TopSubCategories: 15, TopSalespersons: 10},
		Session:      config.Session{TTL: 30 * time.Minute},
		SessionSweep: config.SessionSweep{CronSchedule: "*/5 * * * *"},
	}

	datasetCfg := dataset.DefaultConfig()
	datasetCfg.EndDate = time.Date(2022, time.March, 31, 0, 0, 0, 0, time.UTC)
	table := dataset.Generate(datasetCfg)

	dashboardService := dashboarding.NewService(table, cfg)
	sessionService := sessioning.NewService(repository.NewSessionRepository(), dashboardService)
	sweeper := scheduler.NewSessionSweepService(sessionService, cfg)

	srv, err := New(cfg, len(table), dashboardService, sessionService, sweeper)
	require.NoError(t, err)
	return srv.Handler()
}

func TestServer_FluxoCompletoDeSessao(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sessions", strings.NewReader(`{"regions":["North"]}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))

	var session domain.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/"+session.ID+"/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var view domain.DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Result.ByRegion, 1)
	assert.Equal(t, "North", view.Result.ByRegion[0].Key)
	assert.Len(t, view.Result.Monthly, 3)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/sessions/"+session.ID+"/selection", strings.NewReader(`{"regions":["Atlantis"]}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/"+session.ID+"/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.NotEmpty(t, view.Notice)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+session.ID, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/"+session.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_DashboardSemSessao(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?year=2022&quarter=1&category=Electronics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var view domain.DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Result.ByCategory, 1)
	assert.Equal(t, "Electronics", view.Result.ByCategory[0].Key)
	assert.Nil(t, view.Result.KPIs.YoYGrowth)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?quarter=9", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "session-sweep")
}
