package cmd

import (
	"fmt"
	"strings"
	"time"

	"peminjaman/pkg/models"

	"github.com/spf13/cobra"
)

var returnsCmd = &cobra.Command{
	Use:   "returns",
	Short: "Proses pengembalian peminjaman",
}

var returnsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Peminjaman yang menunggu pengembalian",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pending, err := a.returns.Pending(cmd.Context())
		if err != nil {
			return err
		}

		overdue, err := a.returns.OverduePending(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		late := make(map[string]bool, len(overdue))
		for _, l := range overdue {
			late[l.ID] = true
		}

		printLoans(pending)
		for _, l := range pending {
			if late[l.ID] {
				fmt.Printf("  ! %s lewat tenggat (%s)\n", l.ID, l.EndDate)
			}
		}
		return nil
	},
}

var returnsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Riwayat pengembalian",
	RunE: func(cmd *cobra.Command, _ []string) error {
		year, _ := cmd.Flags().GetString("year")
		semester, _ := cmd.Flags().GetString("semester")

		history, err := a.returns.History(cmd.Context(), year, semester)
		if err != nil {
			return err
		}
		printLoans(history)
		return nil
	},
}

var returnsProcessCmd = &cobra.Command{
	Use:   "process <loan-id>",
	Short: "Terima kembali semua item satu peminjaman",
	Long: `Membangun daftar item dari peminjaman, menandai item yang diserahkan
beserta kondisinya, lalu mengonfirmasi. Konfirmasi ditolak selama masih ada
item yang belum ditandai kembali.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, _ := cmd.Flags().GetString("notes")
		entries, _ := cmd.Flags().GetStringArray("item")

		loan, err := a.loans.Find(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w, err := a.returns.Initiate(loan)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			id, cond, found := strings.Cut(entry, "=")
			if err := w.SetReturned(id, true); err != nil {
				return err
			}
			if found {
				if err := w.SetCondition(id, models.Condition(cond)); err != nil {
					return err
				}
			}
		}
		w.SetNotes(notes)

		for _, warning := range w.Warnings() {
			fmt.Printf("  ! %s: %s\n", warning.Name, warning.Message)
		}
		if outstanding := w.Outstanding(); len(outstanding) > 0 {
			for _, item := range outstanding {
				fmt.Printf("  x belum kembali: %s (%s)\n", item.Name, item.ID)
			}
		}

		updated, err := a.returns.Confirm(cmd.Context(), w)
		if err != nil {
			return err
		}
		fmt.Printf("Pengembalian selesai, peminjaman %s berstatus %s\n", updated.ID, updated.Status)
		return nil
	},
}

func init() {
	returnsHistoryCmd.Flags().String("year", "", "Filter tahun akademik")
	returnsHistoryCmd.Flags().String("semester", "", "Filter semester (ganjil|genap)")

	returnsProcessCmd.Flags().StringArray("item", nil, "Item id=kondisi (baik|rusak_ringan|rusak_berat|hilang), dapat diulang")
	returnsProcessCmd.Flags().String("notes", "", "Catatan pengembalian")

	returnsCmd.AddCommand(returnsPendingCmd, returnsHistoryCmd, returnsProcessCmd)
}
