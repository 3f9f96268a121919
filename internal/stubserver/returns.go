package stubserver

import (
	"net/http"
	"time"

	"peminjaman/internal/loans"
	"peminjaman/pkg/models"

	"github.com/gin-gonic/gin"
)

func (s *Server) pendingReturns(c *gin.Context) {
	pending := s.store.listLoans(func(l *models.Loan) bool {
		status := loans.Status(l.Status)
		return status == loans.StatusDisetujui || status == loans.StatusMenungguPengembalian
	})
	if pending == nil {
		pending = []models.Loan{}
	}
	ok(c, pending)
}

func (s *Server) returnHistory(c *gin.Context) {
	academicYear := c.Query("academicYear")
	semester := c.Query("semester")

	history := s.store.listLoans(func(l *models.Loan) bool {
		if loans.Status(l.Status) != loans.StatusSelesai || l.ReturnedAt == nil {
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
	if history == nil {
		history = []models.Loan{}
	}
	ok(c, history)
}

type processReturnRequest struct {
	ReturnedItems []models.ReturnedItem `json:"returnedItems" binding:"required"`
	Notes         string                `json:"notes"`
}

// processReturn finalizes a loan. It re-checks the all-items gate server-side:
// the submitted set must cover the room and every facility of the loan.
func (s *Server) processReturn(c *gin.Context) {
	loan, exists := s.store.getLoan(c.Param("loanId"))
	if !exists {
		fail(c, http.StatusNotFound, "peminjaman tidak ditemukan")
		return
	}

	status := loans.Status(loan.Status)
	if status != loans.StatusDisetujui && status != loans.StatusMenungguPengembalian {
		fail(c, http.StatusBadRequest, "pengembalian hanya dapat diproses untuk peminjaman yang disetujui")
		return
	}

	var req processReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "format data pengembalian tidak valid")
		return
	}
	if len(req.ReturnedItems) == 0 {
		fail(c, http.StatusBadRequest, "daftar item pengembalian kosong")
		return
	}

	returned := make(map[string]bool, len(req.ReturnedItems))
	for _, item := range req.ReturnedItems {
		if !item.Condition.IsValid() {
			fail(c, http.StatusBadRequest, "kondisi item tidak valid")
			return
		}
		returned[item.ID] = true
	}
	if loan.RoomID != "" && !returned[loan.RoomID] {
		fail(c, http.StatusBadRequest, "semua item harus ditandai kembali sebelum konfirmasi")
		return
	}
	for _, f := range loan.Facilities {
		if !returned[f.ID] {
			fail(c, http.StatusBadRequest, "semua item harus ditandai kembali sebelum konfirmasi")
			return
		}
	}

	now := time.Now()
	loan.Status = loans.StatusSelesai.String()
	loan.ReturnedAt = &now
	s.store.updateLoan(loan)
	ok(c, loan)
}
