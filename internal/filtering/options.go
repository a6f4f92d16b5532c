package filtering

import (
	"slices"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Options lista os valores distintos disponíveis em cada filtro, ordenados.
// Os trimestres oferecidos vêm apenas dos anos selecionados e as subcategorias
// apenas das categorias selecionadas; sem seleção, todos são oferecidos.
func Options(table []domain.SalesRecord, selection domain.FilterSelection) *domain.FilterOptions {
	years := make(map[int]struct{})
	quarters := make(map[int]struct{})
	regions := make(map[string]struct{})
	categories := make(map[string]struct{})
	subCategories := make(map[string]struct{})
	salespersons := make(map[string]struct{})

	selectedYears := toSet(selection.Years)
	selectedCategories := toSet(selection.Categories)

	for _, record := range table {
		if record.HasDate() {
			years[record.Year()] = struct{}{}
			if contains(selectedYears, record.Year()) {
				quarters[record.Quarter()] = struct{}{}
			}
		}

		addValue(regions, record.Region)
		addValue(categories, record.ProductCategory)
		addValue(salespersons, record.Salesperson)

		if record.ProductCategory != "" && contains(selectedCategories, record.ProductCategory) {
			addValue(subCategories, record.ProductSubCategory)
		}
	}

	return &domain.FilterOptions{
		Years:         sortedKeys(years),
		Quarters:      sortedKeys(quarters),
		Regions:       sortedKeys(regions),
		Categories:    sortedKeys(categories),
		SubCategories: sortedKeys(subCategories),
		Salespersons:  sortedKeys(salespersons),
	}
}

func addValue(set map[string]struct{}, value string) {
	if value != "" {
		set[value] = struct{}{}
	}
}

func sortedKeys[T int | string](set map[T]struct{}) []T {
	keys := make([]T, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
