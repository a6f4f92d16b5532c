package domain

import "slices"

// FilterSelection representa os filtros escolhidos pelo usuário em uma interação.
// Um conjunto vazio significa "sem restrição" (equivale a "Todos"), nunca "nenhum".
type FilterSelection struct {
	Years         []int    `json:"years"`
	Quarters      []int    `json:"quarters"`
	Regions       []string `json:"regions"`
	Categories    []string `json:"categories"`
	SubCategories []string `json:"sub_categories"`
	Salespersons  []string `json:"salespersons"`
}

// Values retorna o conjunto selecionado para uma dimensão categórica
func (s FilterSelection) Values(d Dimension) []string {
	switch d {
	case DimensionRegion:
		return s.Regions
	case DimensionCategory:
		return s.Categories
	case DimensionSubCategory:
		return s.SubCategories
	case DimensionSalesperson:
		return s.Salespersons
	}
	return nil
}

// IsEmpty indica que nenhuma dimensão está restrita
func (s FilterSelection) IsEmpty() bool {
	return !s.HasDateFilters() &&
		len(s.Regions) == 0 &&
		len(s.Categories) == 0 &&
		len(s.SubCategories) == 0 &&
		len(s.Salespersons) == 0
}

func (s FilterSelection) HasDateFilters() bool {
	return len(s.Years) > 0 || len(s.Quarters) > 0
}

// WithoutDates mantém apenas as restrições que não dependem da data
func (s FilterSelection) WithoutDates() FilterSelection {
	c := s.Clone()
	c.Years = nil
	c.Quarters = nil
	return c
}

// Clone copia os conjuntos para que sessões diferentes nunca compartilhem slices
func (s FilterSelection) Clone() FilterSelection {
	return FilterSelection{
		Years:         slices.Clone(s.Years),
		Quarters:      slices.Clone(s.Quarters),
		Regions:       slices.Clone(s.Regions),
		Categories:    slices.Clone(s.Categories),
		SubCategories: slices.Clone(s.SubCategories),
		Salespersons:  slices.Clone(s.Salespersons),
	}
}
