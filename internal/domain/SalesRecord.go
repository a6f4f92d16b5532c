package domain

import "time"

// Dimension identifica um campo categórico usado em filtros e agrupamentos
type Dimension string

const (
	DimensionRegion      Dimension = "region"
	DimensionCategory    Dimension = "category"
	DimensionSubCategory Dimension = "sub_category"
	DimensionSalesperson Dimension = "salesperson"
)

// GroupDimensions lista as dimensões que geram resumos agrupados
var GroupDimensions = []Dimension{
	DimensionRegion,
	DimensionCategory,
	DimensionSubCategory,
	DimensionSalesperson,
}

// SalesRecord representa uma linha da tabela base de vendas simuladas.
// Campos categóricos vazios e data zerada são tratados como ausentes.
type SalesRecord struct {
	ID                 int       `json:"id"`
	Date               time.Time `json:"date"`
	Region             string    `json:"region"`
	ProductCategory    string    `json:"product_category"`
	ProductSubCategory string    `json:"product_sub_category"`
	Salesperson        string    `json:"salesperson"`
	UnitsSold          int       `json:"units_sold"`
	Revenue            float64   `json:"revenue"`
	CostOfGoodsSold    float64   `json:"cost_of_goods_sold"`
	TargetRevenue      float64   `json:"target_revenue"`
}

// Profit é sempre derivado de receita e custo, nunca armazenado
func (r SalesRecord) Profit() float64 {
	return r.Revenue - r.CostOfGoodsSold
}

// ProfitMargin retorna nil quando a receita é zero
func (r SalesRecord) ProfitMargin() *float64 {
	return Ratio(r.Profit(), r.Revenue)
}

func (r SalesRecord) HasDate() bool {
	return !r.Date.IsZero()
}

func (r SalesRecord) Year() int {
	return r.Date.Year()
}

// Quarter retorna o trimestre (1-4) derivado da data
func (r SalesRecord) Quarter() int {
	return MonthOf(r.Date).Quarter()
}

func (r SalesRecord) Month() Month {
	return MonthOf(r.Date)
}

// Dimension retorna o valor do registro para a dimensão informada
func (r SalesRecord) Dimension(d Dimension) string {
	switch d {
	case DimensionRegion:
		return r.Region
	case DimensionCategory:
		return r.ProductCategory
	case DimensionSubCategory:
		return r.ProductSubCategory
	case DimensionSalesperson:
		return r.Salesperson
	}
	return ""
}

// Ratio divide numerador por denominador; denominador zero resulta em indefinido (nil)
func Ratio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	value := numerator / denominator
	return &value
}

// Growth calcula (atual - anterior) / anterior; anterior zero resulta em indefinido (nil)
func Growth(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	value := (current - previous) / previous
	return &value
}
