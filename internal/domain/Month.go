package domain

import (
	"fmt"
	"time"
)

// Month identifica um mês de calendário (ano + mês), sem dia nem fuso
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf retorna o mês de calendário de uma data
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth interpreta o formato yyyy-mm
func ParseMonth(value string) (Month, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Month{}, fmt.Errorf("mês inválido %q: %w", value, err)
	}
	return MonthOf(t), nil
}

// AddMonths desloca o mês n posições (negativo volta no tempo)
func (m Month) AddMonths(n int) Month {
	return MonthOf(m.Start().AddDate(0, n, 0))
}

func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

func (m Month) Quarter() int {
	return (int(m.Month)-1)/3 + 1
}

// Start retorna o primeiro dia do mês em UTC
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MonthRange retorna todos os meses entre first e last, inclusive
func MonthRange(first, last Month) []Month {
	months := make([]Month, 0)
	for m := first; !last.Before(m); m = m.AddMonths(1) {
		months = append(months, m)
	}
	return months
}
