package dashboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/metrics"
	"github.com/vfg2006/sales-dashboard-api/internal/presentation"
	errorcodes "github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const (
	defaultDetailTableLimit = 1000
	minQuarter              = 1
	maxQuarter              = 4
)

// Service guarda a tabela base gerada na inicialização. A tabela nunca é alterada
// depois de criada, então o serviço pode ser usado por várias sessões ao mesmo tempo.
type Service struct {
	table       []domain.SalesRecord
	viewOptions presentation.ViewOptions
	detailLimit int
}

func NewService(table []domain.SalesRecord, cfg *config.Config) *Service {
	detailLimit := cfg.Dashboard.DetailTableLimit
	if detailLimit <= 0 {
		detailLimit = defaultDetailTableLimit
	}

	return &Service{
		table: table,
		viewOptions: presentation.ViewOptions{
			TopSubCategories: cfg.Dashboard.TopSubCategories,
			TopSalespersons:  cfg.Dashboard.TopSalespersons,
		},
		detailLimit: detailLimit,
	}
}

func (s *Service) Dashboard(ctx context.Context, selection domain.FilterSelection) (*domain.DashboardView, error) {
	if err := ValidateSelection(selection); err != nil {
		return nil, err
	}

	startedAt := time.Now()

	subset := filtering.Apply(s.table, selection)
	prior := filtering.PriorPeriod(s.table, selection)
	result := metrics.Compute(subset, prior, s.window(selection))

	view := presentation.BuildView(selection.Clone(), result, s.viewOptions)

	log.ForContext(ctx).WithFields(log.Fields{
		"records":     len(subset),
		"prior":       len(prior),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Debug("Dashboard calculado")

	return view, nil
}

// window retorna nil quando não há filtro de data, para que a série mensal
// cubra todos os meses entre a primeira e a última venda
func (s *Service) window(selection domain.FilterSelection) []domain.Month {
	if !selection.HasDateFilters() {
		return nil
	}
	return filtering.SelectedMonths(s.table, selection)
}

func (s *Service) FilterOptions(ctx context.Context, selection domain.FilterSelection) (*domain.FilterOptions, error) {
	if err := ValidateSelection(selection); err != nil {
		return nil, err
	}

	options := filtering.Options(s.table, selection)

	log.ForContext(ctx).WithFields(log.Fields{
		"regions":        len(options.Regions),
		"sub_categories": len(options.SubCategories),
	}).Debug("Opções de filtro calculadas")

	return options, nil
}

func (s *Service) Records(ctx context.Context, selection domain.FilterSelection, limit int) (*domain.RecordsPage, error) {
	if err := ValidateSelection(selection); err != nil {
		return nil, err
	}

	if limit < 0 {
		return nil, NewDashboardError(ErrInvalidLimit, errorcodes.ErrInvalidFormat, fmt.Sprintf("limit=%d", limit))
	}
	if limit == 0 || limit > s.detailLimit {
		limit = s.detailLimit
	}

	subset := filtering.Apply(s.table, selection)

	size := min(limit, len(subset))
	rows := make([]domain.RecordRow, 0, size)
	for _, record := range subset[:size] {
		rows = append(rows, domain.NewRecordRow(record))
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"total": len(subset),
		"rows":  len(rows),
	}).Debug("Tabela detalhada montada")

	return &domain.RecordsPage{
		Total: len(subset),
		Limit: limit,
		Rows:  rows,
	}, nil
}

// ValidateSelection rejeita valores impossíveis de data; valores categóricos
// desconhecidos são aceitos e apenas resultam em conjunto vazio
func ValidateSelection(selection domain.FilterSelection) error {
	for _, year := range selection.Years {
		if year <= 0 {
			return NewDashboardError(ErrInvalidYear, errorcodes.ErrInvalidFormat, fmt.Sprintf("year=%d", year))
		}
	}

	for _, quarter := range selection.Quarters {
		if quarter < minQuarter || quarter > maxQuarter {
			return NewDashboardError(ErrInvalidQuarter, errorcodes.ErrInvalidFormat, fmt.Sprintf("quarter=%d", quarter))
		}
	}

	return nil
}
