// Package filtering aplica a seleção de filtros do usuário sobre a tabela base
package filtering

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Apply retorna as linhas que atendem a todas as dimensões restritas.
// Dimensões combinam com E; valores dentro de uma dimensão combinam com OU.
// Uma dimensão sem valores selecionados não restringe nada. A ordem da entrada é preservada.
func Apply(table []domain.SalesRecord, selection domain.FilterSelection) []domain.SalesRecord {
	m := newMatcher(selection)

	subset := make([]domain.SalesRecord, 0, len(table))
	for _, record := range table {
		if m.matches(record) {
			subset = append(subset, record)
		}
	}
	return subset
}

// matcher pré-monta os conjuntos de busca de cada dimensão restrita
type matcher struct {
	years      map[int]struct{}
	quarters   map[int]struct{}
	dimensions map[domain.Dimension]map[string]struct{}
}

func newMatcher(selection domain.FilterSelection) *matcher {
	m := &matcher{
		years:      toSet(selection.Years),
		quarters:   toSet(selection.Quarters),
		dimensions: make(map[domain.Dimension]map[string]struct{}),
	}

	for _, d := range domain.GroupDimensions {
		if values := selection.Values(d); len(values) > 0 {
			m.dimensions[d] = toSet(values)
		}
	}

	return m
}

func (m *matcher) matches(record domain.SalesRecord) bool {
	return m.matchesDate(record) && m.matchesDimensions(record)
}

// matchesDate deriva ano e trimestre da data; sem data, nunca atende a um filtro de data
func (m *matcher) matchesDate(record domain.SalesRecord) bool {
	if len(m.years) == 0 && len(m.quarters) == 0 {
		return true
	}
	if !record.HasDate() {
		return false
	}
	return contains(m.years, record.Year()) && contains(m.quarters, record.Quarter())
}

// matchesDimensions trata valor ausente como "nunca pertence" a um conjunto não vazio
func (m *matcher) matchesDimensions(record domain.SalesRecord) bool {
	for d, allowed := range m.dimensions {
		value := record.Dimension(d)
		if value == "" {
			return false
		}
		if _, ok := allowed[value]; !ok {
			return false
		}
	}
	return true
}

// matchesMonth aplica apenas as restrições de ano e trimestre a um mês
func (m *matcher) matchesMonth(month domain.Month) bool {
	return contains(m.years, month.Year) && contains(m.quarters, month.Quarter())
}

// contains considera um conjunto vazio como "sem restrição"
func contains[T comparable](set map[T]struct{}, value T) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[value]
	return ok
}

func toSet[T comparable](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
