// Package dataset gera a tabela base de vendas simuladas usada pelo dashboard
package dataset

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	DefaultSeed = 42

	minTransactionsPerDay = 5
	maxTransactionsPerDay = 25 // exclusivo

	yearTrend       = 0.08
	seasonAmplitude = 0.15
)

var (
	Regions = []string{"North", "South", "East", "West", "Central"}

	Salespersons = []string{"Alice", "Bob", "Charlie", "David", "Eve", "Frank", "Grace", "Henry"}

	// Categories mantém a taxonomia de dois níveis; cada subcategoria pertence a uma única categoria
	Categories = []Category{
		{Name: "Electronics", SubCategories: []string{"Smartphones", "Laptops", "Accessories"}, Factor: 1.3},
		{Name: "Apparel", SubCategories: []string{"Men's Clothing", "Women's Clothing", "Footwear"}, Factor: 0.8},
		{Name: "Home Goods", SubCategories: []string{"Furniture", "Kitchenware", "Decor"}, Factor: 1.0},
		{Name: "Groceries", SubCategories: []string{"Fresh Produce", "Pantry Staples", "Beverages"}, Factor: 0.7},
	}

	regionFactors = map[string]float64{
		"North":   1.0,
		"South":   0.9,
		"East":    1.1,
		"West":    0.95,
		"Central": 1.05,
	}
)

type Category struct {
	Name          string
	SubCategories []string
	Factor        float64
}

// Config define o período e a semente da geração
type Config struct {
	Seed      uint64
	StartDate time.Time
	EndDate   time.Time
}

// DefaultConfig reproduz o período padrão do dashboard (2022-2023)
func DefaultConfig() Config {
	return Config{
		Seed:      DefaultSeed,
		StartDate: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Generate produz a tabela base. A mesma semente sempre gera a mesma tabela.
// Um período invertido gera uma tabela vazia.
func Generate(cfg Config) []domain.SalesRecord {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	start := truncateDay(cfg.StartDate)
	end := truncateDay(cfg.EndDate)

	records := make([]domain.SalesRecord, 0)
	if end.Before(start) {
		logrus.WithFields(logrus.Fields{
			"start_date": start.Format(time.DateOnly),
			"end_date":   end.Format(time.DateOnly),
		}).Warn("dataset: período invertido, nenhuma venda gerada")
		return records
	}

	g := &generator{rng: rng, startYear: start.Year()}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		transactions := minTransactionsPerDay + rng.IntN(maxTransactionsPerDay-minTransactionsPerDay)
		for i := 0; i < transactions; i++ {
			record := g.next(day)
			record.ID = len(records) + 1
			records = append(records, record)
		}
	}

	logrus.WithFields(logrus.Fields{
		"seed":       cfg.Seed,
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
		"records":    len(records),
	}).Info("dataset: tabela de vendas gerada")

	return records
}

type generator struct {
	rng       *rand.Rand
	startYear int
}

func (g *generator) next(day time.Time) domain.SalesRecord {
	region := pick(g.rng, Regions)
	category := Categories[g.rng.IntN(len(Categories))]
	subCategory := pick(g.rng, category.SubCategories)
	salesperson := pick(g.rng, Salespersons)

	// Tendência anual e sazonalidade senoidal ao longo do ano
	yearFactor := 1 + float64(day.Year()-g.startYear)*yearTrend
	seasonality := 1 + math.Sin(float64(day.Month()-1)*(2*math.Pi/12))*seasonAmplitude
	base := g.uniform(20, 300) * seasonality * yearFactor

	revenue := base * regionFactors[region] * category.Factor * g.uniform(0.8, 1.2) * g.uniform(0.9, 1.1)
	units := int(revenue / g.uniform(10, 100))
	if units < 1 {
		units = 1
	}

	target := revenue * g.uniform(0.85, 1.10)
	cogs := revenue * g.uniform(0.4, 0.7)

	return domain.SalesRecord{
		Date:               day,
		Region:             region,
		ProductCategory:    category.Name,
		ProductSubCategory: subCategory,
		Salesperson:        salesperson,
		UnitsSold:          units,
		Revenue:            utils.RoundWithTwoDecimalPlace(revenue),
		CostOfGoodsSold:    utils.RoundWithTwoDecimalPlace(cogs),
		TargetRevenue:      utils.RoundWithTwoDecimalPlace(target),
	}
}

func (g *generator) uniform(low, high float64) float64 {
	return low + (high-low)*g.rng.Float64()
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
