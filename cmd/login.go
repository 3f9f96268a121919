package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Masuk dengan akun kampus",
	RunE: func(cmd *cobra.Command, _ []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		user, err := a.sess.Login(cmd.Context(), a.client, email, password)
		if err != nil {
			return err
		}
		fmt.Printf("Selamat datang, %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Keluar dan hapus sesi tersimpan",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := a.sess.Logout(); err != nil {
			return err
		}
		fmt.Println("Sesi dihapus.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Tampilkan pengguna yang sedang masuk",
	RunE: func(_ *cobra.Command, _ []string) error {
		user := a.sess.User()
		if user == nil {
			fmt.Println("Belum masuk. Jalankan: peminjaman login")
			return nil
		}
		caps := a.sess.Capabilities()
		fmt.Printf("%s <%s> peran=%s\n", user.Name, user.Email, user.Role)
		fmt.Printf("  buat-peminjaman=%t setujui=%t kelola-aset=%t ubah-laporan=%t ekspor=%t\n",
			caps.CanCreateLoan, caps.CanApprove, caps.CanManageAssets, caps.CanEditReports, caps.CanExport)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Alamat email")
	loginCmd.Flags().String("password", "", "Password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
