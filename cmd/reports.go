package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"peminjaman/internal/api"
	"peminjaman/internal/reports"

	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Laporan kerusakan aset",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Tampilkan laporan kerusakan",
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter := api.ReportFilter{}
		filter.Search, _ = cmd.Flags().GetString("search")
		filter.Status, _ = cmd.Flags().GetString("status")
		filter.Priority, _ = cmd.Flags().GetString("priority")

		result, err := a.reports.List(cmd.Context(), filter)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tASET\tPELAPOR\tPRIORITAS\tSTATUS\tDESKRIPSI")
		for _, r := range result {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.AssetName, r.ReporterName, r.Priority, r.Status, r.Description)
		}
		return w.Flush()
	},
}

var reportsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Laporkan kerusakan aset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := reports.CreateRequest{}
		req.AssetID, _ = cmd.Flags().GetString("asset")
		req.Description, _ = cmd.Flags().GetString("description")
		req.PhotoURL, _ = cmd.Flags().GetString("photo")
		req.Priority, _ = cmd.Flags().GetString("priority")

		report, err := a.reports.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Laporan %s dibuat, prioritas %s, status %s\n", report.ID, report.Priority, report.Status)
		return nil
	},
}

var reportsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Ubah status/prioritas/catatan laporan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := reports.UpdateRequest{}
		req.Status, _ = cmd.Flags().GetString("status")
		req.Priority, _ = cmd.Flags().GetString("priority")
		req.AssignedTo, _ = cmd.Flags().GetString("assign")
		req.Notes, _ = cmd.Flags().GetString("notes")

		report, err := a.reports.Find(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		updated, err := a.reports.Update(cmd.Context(), report, req)
		if err != nil {
			return err
		}
		fmt.Printf("Laporan %s sekarang %s (prioritas %s)\n", updated.ID, updated.Status, updated.Priority)
		return nil
	},
}

var reportsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Hapus laporan kerusakan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.reports.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Laporan %s dihapus\n", args[0])
		return nil
	},
}

func init() {
	reportsListCmd.Flags().String("search", "", "Cari aset/deskripsi")
	reportsListCmd.Flags().String("status", "", "Filter status (menunggu|dalam_perbaikan|selesai)")
	reportsListCmd.Flags().String("priority", "", "Filter prioritas (rendah|sedang|tinggi)")

	reportsCreateCmd.Flags().String("asset", "", "ID aset yang rusak")
	reportsCreateCmd.Flags().String("description", "", "Deskripsi kerusakan")
	reportsCreateCmd.Flags().String("photo", "", "URL foto (opsional)")
	reportsCreateCmd.Flags().String("priority", "", "Prioritas, kosong = sedang")

	reportsUpdateCmd.Flags().String("status", "", "Status baru")
	reportsUpdateCmd.Flags().String("priority", "", "Prioritas baru")
	reportsUpdateCmd.Flags().String("assign", "", "Petugas yang ditugaskan")
	reportsUpdateCmd.Flags().String("notes", "", "Catatan penanganan")

	reportsCmd.AddCommand(reportsListCmd, reportsCreateCmd, reportsUpdateCmd, reportsDeleteCmd)
}
