package domain

// KPIs agrupa os indicadores escalares do conjunto filtrado.
// Percentuais são frações (0.85 = 85%); nil significa indefinido (denominador zero).
type KPIs struct {
	Records             int      `json:"records"`
	TotalRevenue        float64  `json:"total_revenue"`
	TotalProfit         float64  `json:"total_profit"`
	TotalUnits          int      `json:"total_units"`
	TotalTarget         float64  `json:"total_target"`
	AverageProfitMargin *float64 `json:"average_profit_margin"`
	RevenueVsTarget     *float64 `json:"revenue_vs_target"`
	PriorYearRevenue    float64  `json:"prior_year_revenue"`
	YoYGrowth           *float64 `json:"yoy_growth"`
}

// Values expõe os KPIs como mapa nome → valor para consumidores genéricos
func (k KPIs) Values() map[string]*float64 {
	records := float64(k.Records)
	units := float64(k.TotalUnits)
	revenue := k.TotalRevenue
	profit := k.TotalProfit
	target := k.TotalTarget
	prior := k.PriorYearRevenue

	return map[string]*float64{
		"records":               &records,
		"total_revenue":         &revenue,
		"total_profit":          &profit,
		"total_units":           &units,
		"total_target":          &target,
		"average_profit_margin": k.AverageProfitMargin,
		"revenue_vs_target":     k.RevenueVsTarget,
		"prior_year_revenue":    &prior,
		"yoy_growth":            k.YoYGrowth,
	}
}

// GroupSummary resume as linhas de um valor de dimensão
type GroupSummary struct {
	Key             string   `json:"key"`
	Revenue         float64  `json:"revenue"`
	Profit          float64  `json:"profit"`
	Units           int      `json:"units"`
	Target          float64  `json:"target"`
	Margin          *float64 `json:"margin"`
	RevenueVsTarget *float64 `json:"revenue_vs_target"`
	Deals           int      `json:"deals"`
	AverageDealSize *float64 `json:"average_deal_size"`
	PriorRevenue    *float64 `json:"prior_revenue,omitempty"`
	YoYGrowth       *float64 `json:"yoy_growth,omitempty"`
}

// CategoryNode é um nó da hierarquia categoria → subcategoria
type CategoryNode struct {
	GroupSummary
	SubCategories []GroupSummary `json:"sub_categories"`
}

// MonthlyPoint é uma entrada da série mensal
type MonthlyPoint struct {
	Month         Month   `json:"month"`
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	TargetRevenue float64 `json:"target_revenue"`
}

// AggregateResult é a saída completa do motor de agregação para um conjunto filtrado
type AggregateResult struct {
	KPIs          KPIs           `json:"kpis"`
	ByRegion      []GroupSummary `json:"by_region"`
	ByCategory    []GroupSummary `json:"by_category"`
	BySubCategory []GroupSummary `json:"by_sub_category"`
	BySalesperson []GroupSummary `json:"by_salesperson"`
	Hierarchy     []CategoryNode `json:"hierarchy"`
	Monthly       []MonthlyPoint `json:"monthly"`
}

// Grouped retorna o resumo agrupado de uma dimensão
func (a *AggregateResult) Grouped(d Dimension) []GroupSummary {
	switch d {
	case DimensionRegion:
		return a.ByRegion
	case DimensionCategory:
		return a.ByCategory
	case DimensionSubCategory:
		return a.BySubCategory
	case DimensionSalesperson:
		return a.BySalesperson
	}
	return nil
}

// IsEmpty indica que o conjunto filtrado não tinha nenhuma linha
func (a *AggregateResult) IsEmpty() bool {
	return a.KPIs.Records == 0
}
