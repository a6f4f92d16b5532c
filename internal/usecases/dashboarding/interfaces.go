package dashboarding

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dashboarder.go -package=mocks

// Dashboarder executa o pipeline filtrar → agregar sobre a tabela base compartilhada
type Dashboarder interface {
	// Dashboard calcula a visão completa (KPIs, agrupamentos, série mensal e rankings) da seleção
	Dashboard(ctx context.Context, selection domain.FilterSelection) (*domain.DashboardView, error)

	// FilterOptions retorna os valores disponíveis para cada filtro dada a seleção atual
	FilterOptions(ctx context.Context, selection domain.FilterSelection) (*domain.FilterOptions, error)

	// Records retorna as linhas detalhadas do conjunto filtrado, limitadas a limit
	Records(ctx context.Context, selection domain.FilterSelection, limit int) (*domain.RecordsPage, error)
}
