package stubserver

import (
	"net/http"
	"strings"
	"time"

	"peminjaman/internal/loans"
	"peminjaman/pkg/models"

	"github.com/gin-gonic/gin"
)

type createLoanRequest struct {
	RoomID       string                `json:"roomId"`
	Facilities   []models.FacilityItem `json:"facilities"`
	StartDate    string                `json:"startDate" binding:"required"`
	EndDate      string                `json:"endDate" binding:"required"`
	StartTime    string                `json:"startTime"`
	EndTime      string                `json:"endTime"`
	Purpose      string                `json:"purpose"`
	AcademicYear string                `json:"academicYear"`
	Semester     string                `json:"semester"`
}

func (s *Server) listLoans(c *gin.Context) {
	search := strings.ToLower(c.Query("search"))
	status := c.Query("status")
	academicYear := c.Query("academicYear")
	semester := c.Query("semester")

	role := callerRole(c)
	callerID := c.GetString("userID")

	result := s.store.listLoans(func(l *models.Loan) bool {
		// Borrowers only ever see their own history.
		if role.IsBorrower() && l.BorrowerID != callerID {
			return false
		}
		if status != "" && l.Status != status {
			return false
		}
		if academicYear != "" && l.AcademicYear != academicYear {
			return false
		}
		if semester != "" && l.Semester != semester {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(l.BorrowerName), search) &&
			!strings.Contains(strings.ToLower(l.Purpose), search) &&
			!strings.Contains(strings.ToLower(l.RoomName), search) {
			return false
		}
		return true
	})
	if result == nil {
		result = []models.Loan{}
	}
	ok(c, result)
}

func (s *Server) createLoan(c *gin.Context) {
	var req createLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "format data peminjaman tidak valid")
		return
	}
	if req.RoomID == "" && len(req.Facilities) == 0 {
		fail(c, http.StatusBadRequest, "must choose a room or at least one facility")
		return
	}

	start, errStart := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	end, errEnd := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if errStart != nil || errEnd != nil {
		fail(c, http.StatusBadRequest, "format tanggal tidak valid")
		return
	}
	if end.Before(start) {
		fail(c, http.StatusBadRequest, "tanggal selesai tidak boleh sebelum tanggal mulai")
		return
	}

	if req.AcademicYear == "" || req.Semester == "" {
		year, semester := loans.DefaultAcademicTerm(time.Now())
		if req.AcademicYear == "" {
			req.AcademicYear = year
		}
		if req.Semester == "" {
			req.Semester = semester
		}
	}

	roomName := ""
	if req.RoomID != "" {
		room, exists := s.store.getAsset(req.RoomID)
		if !exists {
			fail(c, http.StatusBadRequest, "ruangan tidak ditemukan")
			return
		}
		roomName = room.Name
	}
	for i, f := range req.Facilities {
		facility, exists := s.store.getAsset(f.ID)
		if !exists {
			fail(c, http.StatusBadRequest, "fasilitas tidak ditemukan")
			return
		}
		if f.Name == "" {
			req.Facilities[i].Name = facility.Name
		}
	}

	loan := models.Loan{
		BorrowerID:   c.GetString("userID"),
		BorrowerName: c.GetString("userName"),
		RoomID:       req.RoomID,
		RoomName:     roomName,
		Facilities:   req.Facilities,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Purpose:      req.Purpose,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
		Status:       loans.StatusMenunggu.String(),
	}
	s.store.insertLoan(&loan)
	created(c, loan)
}

type updateLoanStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (s *Server) updateLoanStatus(c *gin.Context) {
	loan, exists := s.store.getLoan(c.Param("id"))
	if !exists {
		fail(c, http.StatusNotFound, "peminjaman tidak ditemukan")
		return
	}

	var req updateLoanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "format data tidak valid")
		return
	}

	status, err := loans.NewUpdateStatus(req.Status)
	if err != nil {
		fail(c, http.StatusBadRequest, "status tidak valid")
		return
	}
	if err := loans.ValidateTransition(loans.Status(loan.Status), status); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	loan.Status = status.String()
	if status == loans.StatusDisetujui {
		loan.ApprovedBy = c.GetString("userName")
	}
	s.store.updateLoan(loan)
	ok(c, loan)
}

func (s *Server) deleteLoan(c *gin.Context) {
	if !s.store.deleteLoan(c.Param("id")) {
		fail(c, http.StatusNotFound, "peminjaman tidak ditemukan")
		return
	}
	ok(c, nil)
}
