package cmd

import (
	"fmt"

	"peminjaman/internal/api"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Unduh ekspor CSV dari backend",
}

var exportLoansCmd = &cobra.Command{
	Use:   "loans",
	Short: "Ekspor data peminjaman",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, _ := cmd.Flags().GetString("out")
		filter := api.LoanFilter{}
		filter.Status, _ = cmd.Flags().GetString("status")
		filter.AcademicYear, _ = cmd.Flags().GetString("year")
		filter.Semester, _ = cmd.Flags().GetString("semester")

		if err := a.export.Loans(cmd.Context(), filter, out); err != nil {
			return err
		}
		fmt.Printf("Ekspor tersimpan di %s\n", out)
		return nil
	},
}

var exportReportsCmd = &cobra.Command{
	Use:   "damage-reports",
	Short: "Ekspor laporan kerusakan",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, _ := cmd.Flags().GetString("out")
		filter := api.ReportFilter{}
		filter.Status, _ = cmd.Flags().GetString("status")
		filter.Priority, _ = cmd.Flags().GetString("priority")

		if err := a.export.DamageReports(cmd.Context(), filter, out); err != nil {
			return err
		}
		fmt.Printf("Ekspor tersimpan di %s\n", out)
		return nil
	},
}

func init() {
	exportLoansCmd.Flags().String("out", "peminjaman.csv", "File tujuan")
	exportLoansCmd.Flags().String("status", "", "Filter status")
	exportLoansCmd.Flags().String("year", "", "Filter tahun akademik")
	exportLoansCmd.Flags().String("semester", "", "Filter semester")

	exportReportsCmd.Flags().String("out", "laporan-kerusakan.csv", "File tujuan")
	exportReportsCmd.Flags().String("status", "", "Filter status")
	exportReportsCmd.Flags().String("priority", "", "Filter prioritas")

	exportCmd.AddCommand(exportLoansCmd, exportReportsCmd)
}
