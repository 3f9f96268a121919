package stubserver

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"peminjaman/pkg/models"

	"github.com/gin-gonic/gin"
)

func (s *Server) exportLoans(c *gin.Context) {
	status := c.Query("status")
	academicYear := c.Query("academicYear")
	semester := c.Query("semester")

	result := s.store.listLoans(func(l *models.Loan) bool {
		if status != "" && l.Status != status {
			return false
		}
		if academicYear != "" && l.AcademicYear != academicYear {
			return false
		}
		if semester != "" && l.Semester != semester {
			return false
		}
		return true
	})

	buf := bytes.NewBuffer(nil)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "peminjam", "ruangan", "jumlah_fasilitas", "tanggal_mulai", "tanggal_selesai", "tahun_akademik", "semester", "status", "dikembalikan"})
	for _, l := range result {
		returnedAt := ""
		if l.ReturnedAt != nil {
			returnedAt = l.ReturnedAt.Format(time.RFC3339)
		}
		_ = w.Write([]string{
			l.ID, l.BorrowerName, l.RoomName, strconv.Itoa(len(l.Facilities)),
			l.StartDate, l.EndDate, l.AcademicYear, l.Semester, l.Status, returnedAt,
		})
	}
	w.Flush()

	c.Header("Content-Disposition", `attachment; filename="peminjaman.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (s *Server) exportReports(c *gin.Context) {
	status := c.Query("status")
	priority := c.Query("priority")

	result := s.store.listReports(func(r *models.DamageReport) bool {
		if status != "" && r.Status != status {
			return false
		}
		if priority != "" && r.Priority != priority {
			return false
		}
		return true
	})

	buf := bytes.NewBuffer(nil)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "aset", "pelapor", "deskripsi", "prioritas", "status", "dibuat"})
	for _, r := range result {
		_ = w.Write([]string{
			r.ID, r.AssetName, r.ReporterName, r.Description, r.Priority, r.Status,
			r.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()

	c.Header("Content-Disposition", `attachment; filename="laporan-kerusakan.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
