package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "email dan password wajib diisi")
		return
	}

	user, okAuth := s.store.authenticate(req.Email, req.Password)
	if !okAuth {
		fail(c, http.StatusUnauthorized, "email atau password salah")
		return
	}

	token, err := s.issueToken(user.ID, user.Name, user.Role)
	if err != nil {
		fail(c, http.StatusInternalServerError, "gagal membuat token")
		return
	}

	s.log.Info("login", zap.String("email", user.Email), zap.String("role", user.Role))
	ok(c, gin.H{"token": token, "user": user})
}
