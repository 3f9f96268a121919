package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"peminjaman/internal/api"
	"peminjaman/internal/loans"
	"peminjaman/pkg/models"

	"github.com/spf13/cobra"
)

var loansCmd = &cobra.Command{
	Use:   "loans",
	Short: "Ajukan dan kelola peminjaman",
}

var loansListCmd = &cobra.Command{
	Use:   "list",
	Short: "Tampilkan daftar peminjaman",
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter := api.LoanFilter{}
		filter.Search, _ = cmd.Flags().GetString("search")
		filter.Status, _ = cmd.Flags().GetString("status")
		filter.AcademicYear, _ = cmd.Flags().GetString("year")
		filter.Semester, _ = cmd.Flags().GetString("semester")

		result, err := a.loans.List(cmd.Context(), filter)
		if err != nil {
			return err
		}
		printLoans(result)
		return nil
	},
}

var loansOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "Tampilkan peminjaman yang lewat tenggat",
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := a.loans.List(cmd.Context(), api.LoanFilter{})
		if err != nil {
			return err
		}
		printLoans(loans.Overdue(result, time.Now()))
		return nil
	},
}

var loansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Ajukan peminjaman baru",
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := loans.CreateRequest{}
		req.RoomID, _ = cmd.Flags().GetString("room")
		req.StartDate, _ = cmd.Flags().GetString("start")
		req.EndDate, _ = cmd.Flags().GetString("end")
		req.StartTime, _ = cmd.Flags().GetString("start-time")
		req.EndTime, _ = cmd.Flags().GetString("end-time")
		req.Purpose, _ = cmd.Flags().GetString("purpose")
		req.AcademicYear, _ = cmd.Flags().GetString("year")
		req.Semester, _ = cmd.Flags().GetString("semester")

		entries, _ := cmd.Flags().GetStringArray("facility")
		facilities, err := parseFacilities(entries)
		if err != nil {
			return err
		}
		req.Facilities = facilities

		loan, err := a.loans.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Peminjaman %s diajukan, status %s\n", loan.ID, loan.Status)
		return nil
	},
}

var loansApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Setujui peminjaman yang menunggu",
	Args:  cobra.ExactArgs(1),
	RunE:  statusEditRunE(loans.StatusDisetujui),
}

var loansRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Tolak peminjaman yang menunggu",
	Args:  cobra.ExactArgs(1),
	RunE:  statusEditRunE(loans.StatusDitolak),
}

var loansDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Hapus peminjaman",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.loans.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Peminjaman %s dihapus\n", args[0])
		return nil
	},
}

func statusEditRunE(target loans.Status) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		notes, _ := cmd.Flags().GetString("notes")

		loan, err := a.loans.Find(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		updated, err := a.loans.UpdateStatus(cmd.Context(), loan, target.String(), notes)
		if err != nil {
			return err
		}
		fmt.Printf("Peminjaman %s sekarang %s\n", updated.ID, updated.Status)
		return nil
	}
}

// parseFacilities reads repeated "--facility id=qty" flags; qty defaults to 1.
func parseFacilities(entries []string) ([]models.FacilityItem, error) {
	var out []models.FacilityItem
	for _, entry := range entries {
		id, qtyStr, found := strings.Cut(entry, "=")
		qty := 1
		if found {
			parsed, err := strconv.Atoi(qtyStr)
			if err != nil {
				return nil, fmt.Errorf("jumlah fasilitas tidak valid: %q", entry)
			}
			qty = parsed
		}
		out = append(out, models.FacilityItem{ID: id, Quantity: qty})
	}
	return out, nil
}

func printLoans(result []models.Loan) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPEMINJAM\tRUANGAN\tFASILITAS\tMULAI\tSELESAI\tSTATUS")
	for _, l := range result {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			l.ID, l.BorrowerName, l.RoomName, len(l.Facilities), l.StartDate, l.EndDate, l.Status)
	}
	_ = w.Flush()
}

func init() {
	loansListCmd.Flags().String("search", "", "Cari peminjam/tujuan/ruangan")
	loansListCmd.Flags().String("status", "", "Filter status")
	loansListCmd.Flags().String("year", "", "Filter tahun akademik, mis. 2025/2026")
	loansListCmd.Flags().String("semester", "", "Filter semester (ganjil|genap)")

	loansCreateCmd.Flags().String("room", "", "ID ruangan yang dipinjam")
	loansCreateCmd.Flags().StringArray("facility", nil, "Fasilitas id=jumlah, dapat diulang")
	loansCreateCmd.Flags().String("start", "", "Tanggal mulai (YYYY-MM-DD)")
	loansCreateCmd.Flags().String("end", "", "Tanggal selesai (YYYY-MM-DD)")
	loansCreateCmd.Flags().String("start-time", "08:00", "Jam mulai")
	loansCreateCmd.Flags().String("end-time", "17:00", "Jam selesai")
	loansCreateCmd.Flags().String("purpose", "", "Tujuan peminjaman")
	loansCreateCmd.Flags().String("year", "", "Tahun akademik, kosong = otomatis")
	loansCreateCmd.Flags().String("semester", "", "Semester, kosong = otomatis")

	loansApproveCmd.Flags().String("notes", "", "Catatan persetujuan")
	loansRejectCmd.Flags().String("notes", "", "Alasan penolakan")

	loansCmd.AddCommand(loansListCmd, loansOverdueCmd, loansCreateCmd, loansApproveCmd, loansRejectCmd, loansDeleteCmd)
}
