package stubserver

import (
	"net/http"
	"strings"

	"peminjaman/internal/reports"
	"peminjaman/pkg/models"
	"peminjaman/pkg/roles"

	"github.com/gin-gonic/gin"
)

func (s *Server) listReports(c *gin.Context) {
	search := strings.ToLower(c.Query("search"))
	status := c.Query("status")
	priority := c.Query("priority")

	role := callerRole(c)
	callerID := c.GetString("userID")
	manager := role.Capabilities().CanEditReports

	result := s.store.listReports(func(r *models.DamageReport) bool {
		// Non-managers only see what they reported themselves.
		if !manager && r.ReportedBy != callerID {
			return false
		}
		if status != "" && r.Status != status {
			return false
		}
		if priority != "" && r.Priority != priority {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.AssetName), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			return false
		}
		return true
	})
	if result == nil {
		result = []models.DamageReport{}
	}
	ok(c, result)
}

type createReportRequest struct {
	AssetID     string `json:"assetId" binding:"required"`
	Description string `json:"description" binding:"required"`
	PhotoURL    string `json:"photoUrl"`
	Priority    string `json:"priority"`
}

func (s *Server) createReport(c *gin.Context) {
	role := callerRole(c)
	if !role.IsBorrower() && role != roles.StafBUF {
		fail(c, http.StatusForbidden, "peran anda tidak diizinkan melakukan aksi ini")
		return
	}

	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "aset dan deskripsi kerusakan wajib diisi")
		return
	}

	asset, exists := s.store.getAsset(req.AssetID)
	if !exists {
		fail(c, http.StatusBadRequest, "aset tidak ditemukan")
		return
	}

	priority := reports.PrioritySedang
	if req.Priority != "" {
		p, err := reports.NewPriority(req.Priority)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		priority = p
	}

	report := models.DamageReport{
		AssetID:      req.AssetID,
		AssetName:    asset.Name,
		ReportedBy:   c.GetString("userID"),
		ReporterName: c.GetString("userName"),
		Description:  req.Description,
		PhotoURL:     req.PhotoURL,
		Priority:     string(priority),
		Status:       reports.StatusMenunggu.String(),
	}
	s.store.insertReport(&report)
	created(c, report)
}

type updateReportRequest struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssignedTo *string `json:"assignedTo"`
	Notes      *string `json:"notes"`
}

func (s *Server) updateReport(c *gin.Context) {
	report, exists := s.store.getReport(c.Param("id"))
	if !exists {
		fail(c, http.StatusNotFound, "laporan tidak ditemukan")
		return
	}

	var req updateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "format data tidak valid")
		return
	}

	if req.Status != nil {
		status, err := reports.NewStatus(*req.Status)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := reports.ValidateTransition(reports.Status(report.Status), status); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		report.Status = status.String()
	}
	if req.Priority != nil {
		priority, err := reports.NewPriority(*req.Priority)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		report.Priority = string(priority)
	}
	if req.AssignedTo != nil {
		report.AssignedTo = *req.AssignedTo
	}
	if req.Notes != nil {
		report.Notes = *req.Notes
	}

	s.store.updateReport(report)
	ok(c, report)
}

func (s *Server) deleteReport(c *gin.Context) {
	if !s.store.deleteReport(c.Param("id")) {
		fail(c, http.StatusNotFound, "laporan tidak ditemukan")
		return
	}
	ok(c, nil)
}
