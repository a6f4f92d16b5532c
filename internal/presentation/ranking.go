// Package presentation prepara e entrega o resultado agregado à camada de visualização
package presentation

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Metric define o critério de ordenação dos grupos
type Metric string

const (
	MetricRevenue Metric = "revenue"
	MetricProfit  Metric = "profit"
	MetricUnits   Metric = "units"
)

// EmptyNotice é exibida quando a seleção não encontra nenhuma venda
const EmptyNotice = "Nenhum dado disponível para os filtros selecionados. Amplie a seleção."

// ViewOptions controla os cortes de top-N da visão
type ViewOptions struct {
	TopSubCategories int
	TopSalespersons  int
}

// Rank ordena uma cópia dos grupos pelo critério em ordem decrescente e corta em limit (0 = sem corte)
func Rank(groups []domain.GroupSummary, by Metric, limit int) []domain.GroupSummary {
	ranked := slices.Clone(groups)
	if ranked == nil {
		ranked = []domain.GroupSummary{}
	}

	slices.SortStableFunc(ranked, func(a, b domain.GroupSummary) int {
		if c := cmp.Compare(metricValue(b, by), metricValue(a, by)); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func metricValue(g domain.GroupSummary, by Metric) float64 {
	switch by {
	case MetricProfit:
		return g.Profit
	case MetricUnits:
		return float64(g.Units)
	}
	return g.Revenue
}

// BuildView monta a resposta do dashboard a partir do resultado agregado
func BuildView(selection domain.FilterSelection, result *domain.AggregateResult, opts ViewOptions) *domain.DashboardView {
	view := &domain.DashboardView{
		Selection:        selection,
		Result:           result,
		TopSubCategories: Rank(result.BySubCategory, MetricRevenue, opts.TopSubCategories),
		TopSalespersons:  Rank(result.BySalesperson, MetricRevenue, opts.TopSalespersons),
		GeneratedAt:      time.Now(),
	}

	if result.IsEmpty() {
		view.Notice = EmptyNotice
	}

	return view
}
