// Package cli contém os comandos de linha de comando do relatório de vendas
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCommand monta a árvore de comandos do binário report
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "report",
		Short: "Relatório do dashboard de vendas simuladas.",
		Long: `report gera a tabela de vendas simuladas, aplica os filtros informados e
imprime os mesmos KPIs, agrupamentos e séries do dashboard.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("loglevel")
			parsed, err := logrus.ParseLevel(level)
			if err != nil {
				return err
			}
			logrus.SetLevel(parsed)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("loglevel", "l", "warn", "Nível de log. Disponíveis: debug, info, warn, error")
	addDatasetFlags(rootCmd)
	addSelectionFlags(rootCmd)

	rootCmd.AddCommand(newDashboardCommand())
	rootCmd.AddCommand(newOptionsCommand())
	rootCmd.AddCommand(newRecordsCommand())

	return rootCmd
}
