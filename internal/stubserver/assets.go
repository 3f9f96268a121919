package stubserver

import (
	"net/http"

	"peminjaman/pkg/models"

	"github.com/gin-gonic/gin"
)

func (s *Server) listAssets(c *gin.Context) {
	assets := s.store.listAssets(c.Query("search"), c.Query("category"))
	if assets == nil {
		assets = []models.Asset{}
	}
	ok(c, assets)
}

func validAssetPayload(asset *models.Asset) (string, bool) {
	if asset.Name == "" {
		return "nama aset wajib diisi", false
	}
	if asset.Category != models.CategoryRuangan && asset.Category != models.CategoryFasilitas {
		return "kategori aset harus ruangan atau fasilitas", false
	}
	if asset.AvailableStock > asset.TotalStock {
		return "stok tersedia melebihi total stok", false
	}
	sum := 0
	for _, cond := range asset.Conditions {
		sum += cond.Quantity
	}
	if sum > asset.TotalStock {
		return "rincian kondisi melebihi total stok", false
	}
	return "", true
}

func (s *Server) createAsset(c *gin.Context) {
	var asset models.Asset
	if err := c.ShouldBindJSON(&asset); err != nil {
		fail(c, http.StatusBadRequest, "format data aset tidak valid")
		return
	}
	if message, okPayload := validAssetPayload(&asset); !okPayload {
		fail(c, http.StatusBadRequest, message)
		return
	}

	asset.ID = ""
	s.store.putAsset(&asset)
	created(c, asset)
}

func (s *Server) updateAsset(c *gin.Context) {
	id := c.Param("id")
	if _, exists := s.store.getAsset(id); !exists {
		fail(c, http.StatusNotFound, "aset tidak ditemukan")
		return
	}

	var asset models.Asset
	if err := c.ShouldBindJSON(&asset); err != nil {
		fail(c, http.StatusBadRequest, "format data aset tidak valid")
		return
	}
	if message, okPayload := validAssetPayload(&asset); !okPayload {
		fail(c, http.StatusBadRequest, message)
		return
	}

	asset.ID = id
	s.store.putAsset(&asset)
	ok(c, asset)
}

func (s *Server) deleteAsset(c *gin.Context) {
	if !s.store.deleteAsset(c.Param("id")) {
		fail(c, http.StatusNotFound, "aset tidak ditemukan")
		return
	}
	ok(c, nil)
}
