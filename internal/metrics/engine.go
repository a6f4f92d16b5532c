package metrics

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Compute calcula o resultado completo de um conjunto filtrado.
// prior é o conjunto comparável do ano anterior e window os meses selecionados
// (nil significa todos os meses entre a primeira e a última linha).
// Nunca falha: conjunto vazio resulta em totais zerados, razões indefinidas e coleções vazias.
func Compute(subset, prior []domain.SalesRecord, window []domain.Month) *domain.AggregateResult {
	result := &domain.AggregateResult{
		KPIs:          Summarize(subset, prior),
		ByRegion:      withRegionalGrowth(GroupBy(subset, domain.DimensionRegion), prior),
		ByCategory:    GroupBy(subset, domain.DimensionCategory),
		BySubCategory: GroupBy(subset, domain.DimensionSubCategory),
		BySalesperson: GroupBy(subset, domain.DimensionSalesperson),
		Hierarchy:     Hierarchy(subset),
		Monthly:       Monthly(subset, window),
	}
	return result
}

// Summarize calcula os KPIs escalares. A margem média é ponderada pela receita
// (soma do lucro / soma da receita), nunca a média simples das margens por linha.
func Summarize(subset, prior []domain.SalesRecord) domain.KPIs {
	total := &accumulator{}
	for _, record := range subset {
		total.add(record)
	}

	// Conjunto vazio não tem período comparável: todos os KPIs ficam zerados ou indefinidos
	priorRevenue := 0.0
	if total.deals > 0 {
		for _, record := range prior {
			priorRevenue += record.Revenue
		}
	}

	return domain.KPIs{
		Records:             total.deals,
		TotalRevenue:        total.revenue,
		TotalProfit:         total.profit,
		TotalUnits:          total.units,
		TotalTarget:         total.target,
		AverageProfitMargin: domain.Ratio(total.profit, total.revenue),
		RevenueVsTarget:     domain.Ratio(total.revenue, total.target),
		PriorYearRevenue:    priorRevenue,
		YoYGrowth:           domain.Growth(total.revenue, priorRevenue),
	}
}

// Monthly soma receita, lucro e meta por mês em ordem cronológica. Meses da janela
// sem linhas entram zerados, de modo que a série não tem lacunas entre o primeiro
// e o último mês com dados.
func Monthly(subset []domain.SalesRecord, window []domain.Month) []domain.MonthlyPoint {
	totals := make(map[domain.Month]*domain.MonthlyPoint)
	var first, last domain.Month
	for _, record := range subset {
		if !record.HasDate() {
			continue
		}
		month := record.Month()
		point, ok := totals[month]
		if !ok {
			point = &domain.MonthlyPoint{Month: month}
			totals[month] = point
			if len(totals) == 1 || month.Before(first) {
				first = month
			}
			if len(totals) == 1 || last.Before(month) {
				last = month
			}
		}
		point.Revenue += record.Revenue
		point.Profit += record.Profit()
		point.TargetRevenue += record.TargetRevenue
	}

	series := make([]domain.MonthlyPoint, 0)
	if len(totals) == 0 {
		return series
	}

	inWindow := make(map[domain.Month]struct{}, len(window))
	for _, month := range window {
		inWindow[month] = struct{}{}
	}

	for _, month := range domain.MonthRange(first, last) {
		if point, ok := totals[month]; ok {
			series = append(series, *point)
			continue
		}
		if _, ok := inWindow[month]; ok || window == nil {
			series = append(series, domain.MonthlyPoint{Month: month})
		}
	}
	return series
}
