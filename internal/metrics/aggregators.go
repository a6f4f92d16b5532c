// Package metrics calcula KPIs, resumos agrupados e a série mensal de um conjunto filtrado
package metrics

import (
	"slices"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// accumulator soma os valores de um grupo de linhas
type accumulator struct {
	revenue float64
	profit  float64
	target  float64
	units   int
	deals   int
}

func (a *accumulator) add(record domain.SalesRecord) {
	a.revenue += record.Revenue
	a.profit += record.Profit()
	a.target += record.TargetRevenue
	a.units += record.UnitsSold
	a.deals++
}

// summary usa a margem ponderada pela receita: soma(lucro) / soma(receita)
func (a *accumulator) summary(key string) domain.GroupSummary {
	return domain.GroupSummary{
		Key:             key,
		Revenue:         a.revenue,
		Profit:          a.profit,
		Units:           a.units,
		Target:          a.target,
		Margin:          domain.Ratio(a.profit, a.revenue),
		RevenueVsTarget: domain.Ratio(a.revenue, a.target),
		Deals:           a.deals,
		AverageDealSize: domain.Ratio(a.revenue, float64(a.deals)),
	}
}

// GroupBy agrupa as linhas pelo valor da dimensão, ordenando os grupos pela chave.
// Linhas sem valor na dimensão ficam fora dos grupos (mas continuam nos totais).
func GroupBy(records []domain.SalesRecord, d domain.Dimension) []domain.GroupSummary {
	groups := make(map[string]*accumulator)
	for _, record := range records {
		key := record.Dimension(d)
		if key == "" {
			continue
		}
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
		}
		acc.add(record)
	}

	summaries := make([]domain.GroupSummary, 0, len(groups))
	for key, acc := range groups {
		summaries = append(summaries, acc.summary(key))
	}
	slices.SortFunc(summaries, func(a, b domain.GroupSummary) int {
		return strings.Compare(a.Key, b.Key)
	})
	return summaries
}

// Hierarchy monta a árvore categoria → subcategoria; linhas sem categoria
// ou sem subcategoria ficam de fora.
func Hierarchy(records []domain.SalesRecord) []domain.CategoryNode {
	byCategory := make(map[string][]domain.SalesRecord)
	for _, record := range records {
		if record.ProductCategory == "" || record.ProductSubCategory == "" {
			continue
		}
		byCategory[record.ProductCategory] = append(byCategory[record.ProductCategory], record)
	}

	nodes := make([]domain.CategoryNode, 0, len(byCategory))
	for category, rows := range byCategory {
		acc := &accumulator{}
		for _, row := range rows {
			acc.add(row)
		}
		nodes = append(nodes, domain.CategoryNode{
			GroupSummary:  acc.summary(category),
			SubCategories: GroupBy(rows, domain.DimensionSubCategory),
		})
	}
	slices.SortFunc(nodes, func(a, b domain.CategoryNode) int {
		return strings.Compare(a.Key, b.Key)
	})
	return nodes
}

// withRegionalGrowth adiciona a receita do ano anterior e o crescimento por região
func withRegionalGrowth(regions []domain.GroupSummary, prior []domain.SalesRecord) []domain.GroupSummary {
	priorRevenue := make(map[string]float64)
	for _, record := range prior {
		if record.Region != "" {
			priorRevenue[record.Region] += record.Revenue
		}
	}

	for i := range regions {
		previous := priorRevenue[regions[i].Key]
		regions[i].PriorRevenue = &previous
		regions[i].YoYGrowth = domain.Growth(regions[i].Revenue, previous)
	}
	return regions
}
