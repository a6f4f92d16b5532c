package filtering

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// monthsPerYear é o deslocamento usado na comparação com o ano anterior
const monthsPerYear = 12

// DateSpan retorna o primeiro e o último mês com data na tabela.
// ok é falso quando nenhuma linha tem data.
func DateSpan(table []domain.SalesRecord) (first, last domain.Month, ok bool) {
	for _, record := range table {
		if !record.HasDate() {
			continue
		}
		month := record.Month()
		if !ok {
			first, last, ok = month, month, true
			continue
		}
		if month.Before(first) {
			first = month
		}
		if last.Before(month) {
			last = month
		}
	}
	return first, last, ok
}

// SelectedMonths retorna, em ordem cronológica, os meses do período da tabela
// que atendem às restrições de ano e trimestre da seleção.
func SelectedMonths(table []domain.SalesRecord, selection domain.FilterSelection) []domain.Month {
	first, last, ok := DateSpan(table)
	if !ok {
		return []domain.Month{}
	}

	m := newMatcher(selection)
	months := make([]domain.Month, 0)
	for _, month := range domain.MonthRange(first, last) {
		if m.matchesMonth(month) {
			months = append(months, month)
		}
	}
	return months
}

// PriorPeriod monta o conjunto de comparação do ano anterior: os mesmos filtros
// sem data, aplicados às linhas cujo mês é um mês selecionado deslocado 12 meses para trás.
func PriorPeriod(table []domain.SalesRecord, selection domain.FilterSelection) []domain.SalesRecord {
	priorMonths := make(map[domain.Month]struct{})
	for _, month := range SelectedMonths(table, selection) {
		priorMonths[month.AddMonths(-monthsPerYear)] = struct{}{}
	}

	m := newMatcher(selection.WithoutDates())
	prior := make([]domain.SalesRecord, 0)
	for _, record := range table {
		if !record.HasDate() {
			continue
		}
		if _, ok := priorMonths[record.Month()]; !ok {
			continue
		}
		if m.matches(record) {
			prior = append(prior, record)
		}
	}
	return prior
}
