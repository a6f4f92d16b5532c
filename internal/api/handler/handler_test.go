package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	dashmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning"
	sessionmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func ptr(v float64) *float64 {
	return &v
}

func serve(rt http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setup          func(m *dashmocks.MockDashboarder)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "Filtros repetidos e separados por vírgula",
			target: "/v1/dashboard?year=2023&quarter=1,2&region=North&region=South&sub_category=Men%27s%20Clothing",
			setup: func(m *dashmocks.MockDashboarder) {
				m.EXPECT().
					Dashboard(gomock.Any(), domain.FilterSelection{
						Years:         []int{2023},
						Quarters:      []int{1, 2},
						Regions:       []string{"North", "South"},
						SubCategories: []string{"Men's Clothing"},
					}).
					Return(&domain.DashboardView{
						Result: &domain.AggregateResult{
							KPIs: domain.KPIs{Records: 1, TotalRevenue: 300, AverageProfitMargin: ptr(0.5)},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Ano não numérico",
			target:         "/v1/dashboard?year=dois-mil",
			setup:          func(m *dashmocks.MockDashboarder) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Trimestre fora do intervalo",
			target: "/v1/dashboard?quarter=5",
			setup: func(m *dashmocks.MockDashboarder) {
				m.EXPECT().
					Dashboard(gomock.Any(), domain.FilterSelection{Quarters: []int{5}}).
					Return(nil, dashboarding.NewDashboardError(dashboarding.ErrInvalidQuarter, apiErrors.ErrInvalidFormat, "quarter=5"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := dashmocks.NewMockDashboarder(ctrl)
			tt.setup(service)

			rt := router.New(router.WithRoutes(Dashboard(service)...))
			rec := serve(rt, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
				return
			}

			var view domain.DashboardView
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
			assert.Equal(t, 300.0, view.Result.KPIs.TotalRevenue)
			require.NotNil(t, view.Result.KPIs.AverageProfitMargin)
			assert.Nil(t, view.Result.KPIs.YoYGrowth)
			assert.Contains(t, rec.Body.String(), `"yoy_growth":null`)
		})
	}
}

func TestGetRecordsEFilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashmocks.NewMockDashboarder(ctrl)
	rt := router.New(router.WithRoutes(Dashboard(service)...))

	service.EXPECT().
		Records(gomock.Any(), domain.FilterSelection{Categories: []string{"Electronics"}}, 25).
		Return(&domain.RecordsPage{Total: 100, Limit: 25}, nil)

	rec := serve(rt, http.MethodGet, "/v1/records?category=Electronics&limit=25", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page domain.RecordsPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 100, page.Total)

	rec = serve(rt, http.MethodGet, "/v1/records?limit=muitos", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	service.EXPECT().
		FilterOptions(gomock.Any(), domain.FilterSelection{Years: []int{2022}}).
		Return(&domain.FilterOptions{Years: []int{2022, 2023}, Quarters: []int{1, 2, 3, 4}}, nil)

	rec = serve(rt, http.MethodGet, "/v1/filters/options?year=2022", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var options domain.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	assert.Equal(t, []int{1, 2, 3, 4}, options.Quarters)
}

func TestSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := sessionmocks.NewMockSessionManager(ctrl)
	rt := router.New(router.WithRoutes(Sessions(service)...))

	notFound := dashboarding.NewDashboardError(sessioning.ErrSessionNotFound, apiErrors.ErrSessionNotFound, "xyz")

	t.Run("Criar sessão com corpo vazio", func(t *testing.T) {
		service.EXPECT().
			Create(gomock.Any(), domain.FilterSelection{}).
			Return(&domain.Session{ID: "abc123"}, nil)

		rec := serve(rt, http.MethodPost, "/v1/sessions", "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"abc123"`)
	})

	t.Run("Criar sessão com corpo chunked vazio", func(t *testing.T) {
		service.EXPECT().
			Create(gomock.Any(), domain.FilterSelection{}).
			Return(&domain.Session{ID: "abc123"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
		req.Body = io.NopCloser(strings.NewReader(""))
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Atualizar seleção", func(t *testing.T) {
		service.EXPECT().
			UpdateSelection(gomock.Any(), "abc123", domain.FilterSelection{Regions: []string{"North"}}).
			Return(&domain.Session{ID: "abc123", Selection: domain.FilterSelection{Regions: []string{"North"}}}, nil)

		rec := serve(rt, http.MethodPut, "/v1/sessions/abc123/selection", `{"regions":["North"]}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		rec := serve(rt, http.MethodPut, "/v1/sessions/abc123/selection", `{"regions":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Dashboard da sessão", func(t *testing.T) {
		service.EXPECT().
			Dashboard(gomock.Any(), "abc123").
			Return(&domain.DashboardView{Result: &domain.AggregateResult{}, Notice: "vazio"}, nil)

		rec := serve(rt, http.MethodGet, "/v1/sessions/abc123/dashboard", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"notice":"vazio"`)
	})

	t.Run("Sessão inexistente", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), "xyz").Return(nil, notFound)

		rec := serve(rt, http.MethodGet, "/v1/sessions/xyz", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrSessionNotFound, decodeError(t, rec).Code)
	})

	t.Run("Remover sessão", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), "abc123").Return(nil)

		rec := serve(rt, http.MethodDelete, "/v1/sessions/abc123", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

type fakeCronJob struct {
	mu        sync.Mutex
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronJobs(t *testing.T) {
	job := &fakeCronJob{}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{SessionSweepService: job})...))

	rec := serve(rt, http.MethodPost, "/v1/cron/session-sweep/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = serve(rt, http.MethodPost, "/v1/cron/all/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, job.triggered)

	rec = serve(rt, http.MethodPost, "/v1/cron/desconhecida/run", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(rt, http.MethodGet, "/v1/cron/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"session-sweep"`)

	disabled := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))
	rec = serve(disabled, http.MethodPost, "/v1/cron/session-sweep/run", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_RotasDesconhecidas(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(10)...))

	rec := serve(rt, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"records":10`)

	rec = serve(rt, http.MethodGet, "/nao-existe", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)

	rec = serve(rt, http.MethodPost, "/healthcheck", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
