package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"peminjaman/pkg/models"

	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Kelola daftar aset (ruangan dan fasilitas)",
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Tampilkan daftar aset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")

		result, err := a.assets.List(cmd.Context(), search, category)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAMA\tKATEGORI\tLOKASI\tTERSEDIA\tTOTAL")
		for _, asset := range result {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
				asset.ID, asset.Name, asset.Category, asset.Location, asset.AvailableStock, asset.TotalStock)
		}
		return w.Flush()
	},
}

var assetsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Tambah aset baru",
	RunE: func(cmd *cobra.Command, _ []string) error {
		asset := assetFromFlags(cmd)
		created, err := a.assets.Create(cmd.Context(), *asset)
		if err != nil {
			return err
		}
		fmt.Printf("Aset %q dibuat dengan id %s\n", created.Name, created.ID)
		return nil
	},
}

var assetsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Ubah data aset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset := assetFromFlags(cmd)
		asset.ID = args[0]
		updated, err := a.assets.Update(cmd.Context(), *asset)
		if err != nil {
			return err
		}
		fmt.Printf("Aset %s diperbarui\n", updated.ID)
		return nil
	},
}

var assetsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Hapus aset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.assets.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Aset %s dihapus\n", args[0])
		return nil
	},
}

func assetFromFlags(cmd *cobra.Command) *models.Asset {
	name, _ := cmd.Flags().GetString("name")
	category, _ := cmd.Flags().GetString("category")
	location, _ := cmd.Flags().GetString("location")
	total, _ := cmd.Flags().GetInt("total")
	available, _ := cmd.Flags().GetInt("available")

	return &models.Asset{
		Name:           name,
		Category:       category,
		Location:       location,
		TotalStock:     total,
		AvailableStock: available,
	}
}

func init() {
	assetsListCmd.Flags().String("search", "", "Cari berdasarkan nama")
	assetsListCmd.Flags().String("category", "", "Filter kategori (ruangan|fasilitas)")

	for _, c := range []*cobra.Command{assetsCreateCmd, assetsUpdateCmd} {
		c.Flags().String("name", "", "Nama aset")
		c.Flags().String("category", "", "Kategori (ruangan|fasilitas)")
		c.Flags().String("location", "", "Lokasi")
		c.Flags().Int("total", 0, "Total stok")
		c.Flags().Int("available", 0, "Stok tersedia")
	}

	assetsCmd.AddCommand(assetsListCmd, assetsCreateCmd, assetsUpdateCmd, assetsDeleteCmd)
}
