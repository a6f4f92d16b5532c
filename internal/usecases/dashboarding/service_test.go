package dashboarding

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/presentation"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func testConfig() *config.Config {
	return &config.Config{
		Dashboard: config.Dashboard{
			DetailTableLimit: 50,
			TopSubCategories: 15,
			TopSalespersons:  10,
		},
	}
}

func generatedTable() []domain.SalesRecord {
	cfg := dataset.DefaultConfig()
	cfg.EndDate = time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)
	return dataset.Generate(cfg)
}

func TestService_Dashboard(t *testing.T) {
	table := generatedTable()
	service := NewService(table, testConfig())
	ctx := context.Background()

	t.Run("Seleção vazia agrega a tabela inteira", func(t *testing.T) {
		view, err := service.Dashboard(ctx, domain.FilterSelection{})
		require.NoError(t, err)

		total := 0.0
		for _, record := range table {
			total += record.Revenue
		}
		assert.InDelta(t, total, view.Result.KPIs.TotalRevenue, 1e-6)
		assert.Equal(t, len(table), view.Result.KPIs.Records)
		assert.Empty(t, view.Notice)
		assert.Len(t, view.Result.Monthly, 18)
		assert.LessOrEqual(t, len(view.TopSubCategories), 15)
		assert.LessOrEqual(t, len(view.TopSalespersons), 10)
	})

	t.Run("Ano com período anterior disponível calcula YoY", func(t *testing.T) {
		view, err := service.Dashboard(ctx, domain.FilterSelection{Years: []int{2023}, Regions: []string{"North"}})
		require.NoError(t, err)

		require.NotNil(t, view.Result.KPIs.YoYGrowth)
		assert.Greater(t, view.Result.KPIs.PriorYearRevenue, 0.0)
		assert.Len(t, view.Result.Monthly, 6)
		require.Len(t, view.Result.ByRegion, 1)
		assert.Equal(t, "North", view.Result.ByRegion[0].Key)
	})

	t.Run("Ano sem período anterior deixa YoY indefinido", func(t *testing.T) {
		view, err := service.Dashboard(ctx, domain.FilterSelection{Years: []int{2022}})
		require.NoError(t, err)

		assert.Nil(t, view.Result.KPIs.YoYGrowth)
		assert.Equal(t, 0.0, view.Result.KPIs.PriorYearRevenue)
	})

	t.Run("Seleção sem correspondência retorna aviso", func(t *testing.T) {
		view, err := service.Dashboard(ctx, domain.FilterSelection{Regions: []string{"Atlantis"}})
		require.NoError(t, err)

		assert.True(t, view.Result.IsEmpty())
		assert.Equal(t, presentation.EmptyNotice, view.Notice)
		assert.Nil(t, view.Result.KPIs.AverageProfitMargin)
	})
}

func TestService_ValidacaoDaSelecao(t *testing.T) {
	service := NewService(generatedTable(), testConfig())
	ctx := context.Background()

	tests := []struct {
		name        string
		selection   domain.FilterSelection
		expectedErr error
	}{
		{name: "Trimestre zero", selection: domain.FilterSelection{Quarters: []int{0}}, expectedErr: ErrInvalidQuarter},
		{name: "Trimestre cinco", selection: domain.FilterSelection{Quarters: []int{1, 5}}, expectedErr: ErrInvalidQuarter},
		{name: "Ano negativo", selection: domain.FilterSelection{Years: []int{-2023}}, expectedErr: ErrInvalidYear},
		{name: "Seleção válida", selection: domain.FilterSelection{Years: []int{2030}, Quarters: []int{4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Dashboard(ctx, tt.selection)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.True(t, IsValidationError(err))

			var dashErr *DashboardError
			require.ErrorAs(t, err, &dashErr)
			assert.Equal(t, apiErrors.ErrInvalidFormat, dashErr.Code)
		})
	}
}

func TestService_Records(t *testing.T) {
	table := generatedTable()
	service := NewService(table, testConfig())
	ctx := context.Background()

	t.Run("Limite zero usa o limite configurado", func(t *testing.T) {
		page, err := service.Records(ctx, domain.FilterSelection{}, 0)
		require.NoError(t, err)

		assert.Equal(t, len(table), page.Total)
		assert.Equal(t, 50, page.Limit)
		assert.Len(t, page.Rows, 50)
	})

	t.Run("Limite acima do máximo é cortado", func(t *testing.T) {
		page, err := service.Records(ctx, domain.FilterSelection{}, 10_000)
		require.NoError(t, err)
		assert.Equal(t, 50, page.Limit)
	})

	t.Run("Campos derivados", func(t *testing.T) {
		page, err := service.Records(ctx, domain.FilterSelection{Years: []int{2023}, Quarters: []int{2}}, 5)
		require.NoError(t, err)
		require.Len(t, page.Rows, 5)

		for _, row := range page.Rows {
			assert.Equal(t, 2023, row.Year)
			assert.Equal(t, 2, row.Quarter)
			assert.InDelta(t, row.Revenue-row.CostOfGoodsSold, row.Profit, 1e-9)
			require.NotNil(t, row.ProfitMargin)
		}
	})

	t.Run("Limite negativo é rejeitado", func(t *testing.T) {
		_, err := service.Records(ctx, domain.FilterSelection{}, -1)
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})
}

func TestService_FilterOptions(t *testing.T) {
	service := NewService(generatedTable(), testConfig())

	options, err := service.FilterOptions(context.Background(), domain.FilterSelection{Categories: []string{"Electronics"}})
	require.NoError(t, err)

	assert.Equal(t, []int{2022, 2023}, options.Years)
	assert.ElementsMatch(t, []string{"Accessories", "Laptops", "Smartphones"}, options.SubCategories)
	assert.Len(t, options.Regions, len(dataset.Regions))
}

func TestService_SessoesConcorrentesNaoCompartilhamResultado(t *testing.T) {
	service := NewService(generatedTable(), testConfig())
	ctx := context.Background()

	selections := []domain.FilterSelection{
		{Regions: []string{"North"}},
		{Regions: []string{"South"}},
		{Years: []int{2022}},
		{},
	}

	expected := make([]float64, len(selections))
	for i, selection := range selections {
		view, err := service.Dashboard(ctx, selection)
		require.NoError(t, err)
		expected[i] = view.Result.KPIs.TotalRevenue
	}

	var wg sync.WaitGroup
	results := make([]float64, len(selections))
	for i, selection := range selections {
		wg.Add(1)
		go func(i int, selection domain.FilterSelection) {
			defer wg.Done()
			view, err := service.Dashboard(ctx, selection)
			if err == nil {
				results[i] = view.Result.KPIs.TotalRevenue
			}
		}(i, selection)
	}
	wg.Wait()

	assert.Equal(t, expected, results)
}
