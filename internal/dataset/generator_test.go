package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortConfig(seed uint64) Config {
	return Config{
		Seed:      seed,
		StartDate: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2022, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerate_MesmaSementeMesmaTabela(t *testing.T) {
	first := Generate(shortConfig(7))
	second := Generate(shortConfig(7))

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestGenerate_SementesDiferentesGeramTabelasDiferentes(t *testing.T) {
	first := Generate(shortConfig(1))
	second := Generate(shortConfig(2))

	assert.NotEqual(t, first, second)
}

func TestGenerate_CamposConsistentes(t *testing.T) {
	cfg := shortConfig(DefaultSeed)
	records := Generate(cfg)

	subToCategory := make(map[string]string)
	for _, c := range Categories {
		for _, sub := range c.SubCategories {
			subToCategory[sub] = c.Name
		}
	}

	days := int(cfg.EndDate.Sub(cfg.StartDate).Hours()/24) + 1
	assert.GreaterOrEqual(t, len(records), days*minTransactionsPerDay)
	assert.Less(t, len(records), days*maxTransactionsPerDay)

	for i, r := range records {
		assert.Equal(t, i+1, r.ID)
		assert.False(t, r.Date.Before(cfg.StartDate))
		assert.False(t, r.Date.After(cfg.EndDate))
		assert.Contains(t, Regions, r.Region)
		assert.Contains(t, Salespersons, r.Salesperson)
		assert.Equal(t, subToCategory[r.ProductSubCategory], r.ProductCategory)
		assert.GreaterOrEqual(t, r.UnitsSold, 1)
		assert.Greater(t, r.Revenue, 0.0)
		assert.Less(t, r.CostOfGoodsSold, r.Revenue)
		// Custo entre 40% e 70% da receita, com tolerância do arredondamento em centavos
		assert.GreaterOrEqual(t, r.CostOfGoodsSold, r.Revenue*0.4-0.01)
		assert.LessOrEqual(t, r.CostOfGoodsSold, r.Revenue*0.7+0.01)
		assert.Greater(t, r.TargetRevenue, 0.0)
	}
}

func TestGenerate_PeriodoInvertidoGeraTabelaVazia(t *testing.T) {
	cfg := shortConfig(DefaultSeed)
	cfg.StartDate, cfg.EndDate = cfg.EndDate, cfg.StartDate

	records := Generate(cfg)

	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestDefaultConfig_CobreDoisAnos(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2022, cfg.StartDate.Year())
	assert.Equal(t, 2023, cfg.EndDate.Year())
	assert.EqualValues(t, DefaultSeed, cfg.Seed)
}
