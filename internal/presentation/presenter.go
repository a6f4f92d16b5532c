package presentation

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Presenter é a fronteira entre o pipeline (gerar → filtrar → agregar) e a renderização
type Presenter interface {
	Present(view *domain.DashboardView) error
}

// JSONPresenter serializa a visão completa
type JSONPresenter struct {
	w      io.Writer
	indent bool
}

func NewJSONPresenter(w io.Writer, indent bool) *JSONPresenter {
	return &JSONPresenter{w: w, indent: indent}
}

func (p *JSONPresenter) Present(view *domain.DashboardView) error {
	encoder := json.NewEncoder(p.w)
	if p.indent {
		encoder.SetIndent("", "\t")
	}
	return encoder.Encode(view)
}

// TextPresenter escreve um relatório em texto com KPIs, rankings e série mensal
type TextPresenter struct {
	w io.Writer
}

func NewTextPresenter(w io.Writer) *TextPresenter {
	return &TextPresenter{w: w}
}

func (p *TextPresenter) Present(view *domain.DashboardView) error {
	if view.Notice != "" {
		_, err := fmt.Fprintln(p.w, view.Notice)
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 3, ' ', 0)
	kpis := view.Result.KPIs

	fmt.Fprintln(tw, "INDICADOR\tVALOR\t")
	fmt.Fprintf(tw, "Receita total\t%s\t\n", FormatMoney(kpis.TotalRevenue))
	fmt.Fprintf(tw, "Lucro total\t%s\t\n", FormatMoney(kpis.TotalProfit))
	fmt.Fprintf(tw, "Unidades\t%d\t\n", kpis.TotalUnits)
	fmt.Fprintf(tw, "Margem média\t%s\t\n", FormatPercent(kpis.AverageProfitMargin))
	fmt.Fprintf(tw, "Receita vs meta\t%s\t\n", FormatPercent(kpis.RevenueVsTarget))
	fmt.Fprintf(tw, "Crescimento YoY\t%s\t\n", FormatPercent(kpis.YoYGrowth))
	fmt.Fprintln(tw, " \t \t")

	writeGroups(tw, "REGIÃO", Rank(view.Result.ByRegion, MetricRevenue, 0))
	writeGroups(tw, "CATEGORIA", Rank(view.Result.ByCategory, MetricRevenue, 0))
	writeGroups(tw, "SUBCATEGORIA", view.TopSubCategories)
	writeGroups(tw, "VENDEDOR", view.TopSalespersons)

	fmt.Fprintln(tw, "MÊS\tRECEITA\tLUCRO\tMETA\t")
	for _, point := range view.Result.Monthly {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			point.Month,
			FormatMoney(point.Revenue),
			FormatMoney(point.Profit),
			FormatMoney(point.TargetRevenue),
		)
	}

	return tw.Flush()
}

func writeGroups(w io.Writer, title string, groups []domain.GroupSummary) {
	fmt.Fprintf(w, "%s\tRECEITA\tLUCRO\tUNIDADES\tMARGEM\tVS META\t\n", title)
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t\n",
			g.Key,
			FormatMoney(g.Revenue),
			FormatMoney(g.Profit),
			g.Units,
			FormatPercent(g.Margin),
			FormatPercent(g.RevenueVsTarget),
		)
	}
	fmt.Fprintln(w, " \t \t \t \t \t \t")
}

// FormatPercent converte uma fração para exibição; indefinido vira "-"
func FormatPercent(value *float64) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *value*100)
}

func FormatMoney(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}
