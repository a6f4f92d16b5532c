package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/presentation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Imprime KPIs, agrupamentos e série mensal do conjunto filtrado",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(cmd)
			if err != nil {
				return err
			}

			view, err := service.Dashboard(cmd.Context(), selectionFromFlags(cmd))
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			var presenter presentation.Presenter = presentation.NewTextPresenter(cmd.OutOrStdout())
			if asJSON {
				presenter = presentation.NewJSONPresenter(cmd.OutOrStdout(), true)
			}
			return presenter.Present(view)
		},
	}
	return cmd
}

func newOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Lista os valores disponíveis para cada filtro",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(cmd)
			if err != nil {
				return err
			}

			options, err := service.FilterOptions(cmd.Context(), selectionFromFlags(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(out, options)
			}

			w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "FILTRO\tVALORES\t")
			fmt.Fprintf(w, "Ano\t%s\t\n", joinInts(options.Years))
			fmt.Fprintf(w, "Trimestre\t%s\t\n", joinInts(options.Quarters))
			fmt.Fprintf(w, "Região\t%s\t\n", strings.Join(options.Regions, ", "))
			fmt.Fprintf(w, "Categoria\t%s\t\n", strings.Join(options.Categories, ", "))
			fmt.Fprintf(w, "Subcategoria\t%s\t\n", strings.Join(options.SubCategories, ", "))
			fmt.Fprintf(w, "Vendedor\t%s\t\n", strings.Join(options.Salespersons, ", "))
			return w.Flush()
		},
	}
}

func newRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Imprime a tabela detalhada do conjunto filtrado",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(cmd)
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")
			page, err := service.Records(cmd.Context(), selectionFromFlags(cmd), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(out, page)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATA\tREGIÃO\tCATEGORIA\tSUBCATEGORIA\tVENDEDOR\tUNIDADES\tRECEITA\tLUCRO\tMARGEM\t")
			for _, row := range page.Rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t\n",
					row.ID,
					row.Date.Format("2006-01-02"),
					row.Region,
					row.ProductCategory,
					row.ProductSubCategory,
					row.Salesperson,
					row.UnitsSold,
					presentation.FormatMoney(row.Revenue),
					presentation.FormatMoney(row.Profit),
					presentation.FormatPercent(row.ProfitMargin),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(out, "\n%d de %d registros\n", len(page.Rows), page.Total)
			return err
		},
	}

	cmd.Flags().Int("limit", 20, "Quantidade máxima de linhas")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "\t")
	return encoder.Encode(v)
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ", ")
}
