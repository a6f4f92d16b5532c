package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func addDatasetFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Uint64("seed", dataset.DefaultSeed, "Semente do gerador de vendas (sobrescreve DATASET_SEED)")
	cmd.PersistentFlags().String("start-date", "", "Primeiro dia da tabela, YYYY-MM-DD (sobrescreve DATASET_START_DATE)")
	cmd.PersistentFlags().String("end-date", "", "Último dia da tabela, YYYY-MM-DD (sobrescreve DATASET_END_DATE)")
	cmd.PersistentFlags().Bool("json", false, "Imprime o resultado em JSON")
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntSlice("year", nil, "Anos (ex: --year 2022,2023)")
	cmd.PersistentFlags().IntSlice("quarter", nil, "Trimestres de 1 a 4")
	cmd.PersistentFlags().StringSlice("region", nil, "Regiões")
	cmd.PersistentFlags().StringSlice("category", nil, "Categorias de produto")
	cmd.PersistentFlags().StringSlice("sub-category", nil, "Subcategorias de produto")
	cmd.PersistentFlags().StringSlice("salesperson", nil, "Vendedores")
}

func selectionFromFlags(cmd *cobra.Command) domain.FilterSelection {
	flags := cmd.Flags()

	years, _ := flags.GetIntSlice("year")
	quarters, _ := flags.GetIntSlice("quarter")
	regions, _ := flags.GetStringSlice("region")
	categories, _ := flags.GetStringSlice("category")
	subCategories, _ := flags.GetStringSlice("sub-category")
	salespersons, _ := flags.GetStringSlice("salesperson")

	return domain.FilterSelection{
		Years:         nilIfEmpty(years),
		Quarters:      nilIfEmpty(quarters),
		Regions:       nilIfEmpty(regions),
		Categories:    nilIfEmpty(categories),
		SubCategories: nilIfEmpty(subCategories),
		Salespersons:  nilIfEmpty(salespersons),
	}
}

func nilIfEmpty[T any](values []T) []T {
	if len(values) == 0 {
		return nil
	}
	return values
}

// datasetConfigFromFlags parte da configuração carregada pelo viper e aplica
// apenas as flags informadas explicitamente
func datasetConfigFromFlags(cmd *cobra.Command, base config.Dataset) (dataset.Config, error) {
	cfg := dataset.Config{
		Seed:      base.Seed,
		StartDate: base.StartDate,
		EndDate:   base.EndDate,
	}
	flags := cmd.Flags()

	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	if flags.Changed("start-date") {
		rawStart, _ := flags.GetString("start-date")
		start, err := utils.ParseDate(rawStart)
		if err != nil {
			return cfg, errors.Wrap(err, "--start-date inválida")
		}
		if !start.IsZero() {
			cfg.StartDate = *start
		}
	}

	if flags.Changed("end-date") {
		rawEnd, _ := flags.GetString("end-date")
		end, err := utils.ParseDate(rawEnd)
		if err != nil {
			return cfg, errors.Wrap(err, "--end-date inválida")
		}
		if !end.IsZero() {
			cfg.EndDate = *end
		}
	}

	return cfg, nil
}

// newService carrega a configuração (padrões, .env e variáveis de ambiente),
// gera a tabela e monta o serviço do dashboard
func newService(cmd *cobra.Command) (*dashboarding.Service, error) {
	appCfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	datasetCfg, err := datasetConfigFromFlags(cmd, appCfg.Dataset)
	if err != nil {
		return nil, err
	}

	table := dataset.Generate(datasetCfg)
	return dashboarding.NewService(table, appCfg), nil
}
