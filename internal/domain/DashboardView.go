package domain

import "time"

// DashboardView é a resposta entregue à camada de apresentação
type DashboardView struct {
	Selection        FilterSelection  `json:"selection"`
	Result           *AggregateResult `json:"result"`
	TopSubCategories []GroupSummary   `json:"top_sub_categories"`
	TopSalespersons  []GroupSummary   `json:"top_salespersons"`
	Notice           string           `json:"notice,omitempty"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

// RecordRow é uma linha da tabela detalhada com os campos derivados
type RecordRow struct {
	SalesRecord
	Year            int      `json:"year"`
	Quarter         int      `json:"quarter"`
	Month           string   `json:"month"`
	Profit          float64  `json:"profit"`
	ProfitMargin    *float64 `json:"profit_margin"`
	RevenueVsTarget *float64 `json:"revenue_vs_target"`
}

// NewRecordRow calcula os campos derivados de um registro
func NewRecordRow(r SalesRecord) RecordRow {
	row := RecordRow{
		SalesRecord:     r,
		Profit:          r.Profit(),
		ProfitMargin:    r.ProfitMargin(),
		RevenueVsTarget: Ratio(r.Revenue, r.TargetRevenue),
	}
	if r.HasDate() {
		row.Year = r.Year()
		row.Quarter = r.Quarter()
		row.Month = r.Date.Month().String()
	}
	return row
}

// RecordsPage é a tabela detalhada do conjunto filtrado
type RecordsPage struct {
	Total int         `json:"total"`
	Limit int         `json:"limit"`
	Rows  []RecordRow `json:"rows"`
}
