package cmd

import (
	"peminjaman/internal/stubserver"

	"github.com/spf13/cobra"
)

var stubServerCmd = &cobra.Command{
	Use:   "stub-server",
	Short: "Jalankan backend tiruan in-memory untuk pengembangan",
	Long: `Backend tiruan dengan kontrak wire yang sama dengan backend BUF asli:
akun contoh per peran, data aset awal, dan aturan otorisasi sisi server.
Seluruh data hilang saat proses berhenti.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = a.cfg.Stub.Addr
		}
		return stubserver.New(a.cfg.Stub, a.log).Run(addr)
	},
}

func init() {
	stubServerCmd.Flags().String("addr", "", "Alamat listen, mis. :8080")
}
