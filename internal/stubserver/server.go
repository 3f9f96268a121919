package stubserver

import (
	"net/http"
	"strings"
	"time"

	"peminjaman/internal/config"
	"peminjaman/internal/ratelimit"
	"peminjaman/pkg/roles"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Server is the in-memory reference backend. It implements the same wire
// contract the real backend exposes, including the {status, message, data}
// envelope and server-side role checks, so the client can be exercised
// end-to-end without infrastructure.
type Server struct {
	engine     *gin.Engine
	store      *store
	jwtSecret  []byte
	loginLimit *ratelimit.Limiter
	log        *zap.Logger
}

func New(cfg config.Stub, log *zap.Logger) *Server {
	s := &Server{
		engine:     gin.New(),
		store:      newStore(),
		jwtSecret:  []byte(cfg.JWTSecret),
		loginLimit: ratelimit.New(10, time.Minute),
		log:        log,
	}
	s.engine.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

// Router exposes the engine for httptest servers.
func (s *Server) Router() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	s.log.Info("stub backend listening", zap.String("addr", addr))
	return s.engine.Run(addr)
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	api.POST("/auth/login", s.throttleLogin(), s.login)

	authed := api.Group("", s.authRequired())
	{
		authed.GET("/assets", s.listAssets)
		authed.POST("/assets", s.requireCap(func(c roles.Capabilities) bool { return c.CanManageAssets }), s.createAsset)
		authed.PUT("/assets/:id", s.requireCap(func(c roles.Capabilities) bool { return c.CanManageAssets }), s.updateAsset)
		authed.DELETE("/assets/:id", s.requireCap(func(c roles.Capabilities) bool { return c.CanManageAssets }), s.deleteAsset)

		authed.GET("/loans", s.listLoans)
		authed.POST("/loans", s.requireCap(func(c roles.Capabilities) bool { return c.CanCreateLoan }), s.createLoan)
		authed.PUT("/loans/:id/status", s.requireCap(func(c roles.Capabilities) bool { return c.CanApprove }), s.updateLoanStatus)
		authed.DELETE("/loans/:id", s.requireCap(func(c roles.Capabilities) bool { return c.CanApprove }), s.deleteLoan)

		authed.GET("/returns/pending", s.pendingReturns)
		authed.GET("/returns/history", s.returnHistory)
		authed.POST("/returns/:loanId/process", s.requireCap(func(c roles.Capabilities) bool { return c.CanApprove }), s.processReturn)

		authed.GET("/damage-reports", s.listReports)
		authed.POST("/damage-reports", s.createReport)
		authed.PUT("/damage-reports/:id", s.requireCap(func(c roles.Capabilities) bool { return c.CanEditReports }), s.updateReport)
		authed.DELETE("/damage-reports/:id", s.requireCap(func(c roles.Capabilities) bool { return c.CanEditReports }), s.deleteReport)

		authed.GET("/export/loans", s.requireCap(func(c roles.Capabilities) bool { return c.CanExport }), s.exportLoans)
		authed.GET("/export/damage-reports", s.requireCap(func(c roles.Capabilities) bool { return c.CanExport }), s.exportReports)
	}

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": data})
}

func fail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"status": "error", "message": message})
}

func (s *Server) issueToken(userID, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// authRequired validates the bearer token and stores the caller's identity on
// the context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			fail(c, http.StatusUnauthorized, "Authorization header missing")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, okMethod := t.Method.(*jwt.SigningMethodHMAC); !okMethod {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			fail(c, http.StatusUnauthorized, "token tidak valid")
			return
		}

		claims, okClaims := token.Claims.(jwt.MapClaims)
		if !okClaims {
			fail(c, http.StatusUnauthorized, "token tidak valid")
			return
		}
		userID, _ := claims["sub"].(string)
		name, _ := claims["name"].(string)
		role, _ := claims["role"].(string)

		c.Set("userID", userID)
		c.Set("userName", name)
		c.Set("role", role)
		c.Next()
	}
}

// throttleLogin caps login attempts per client address to slow down
// password guessing.
func (s *Server) throttleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.loginLimit.Allow(c.ClientIP()) {
			s.log.Warn("login throttled", zap.String("ip", c.ClientIP()))
			fail(c, http.StatusTooManyRequests, "terlalu banyak percobaan login, coba beberapa saat lagi")
			return
		}
		c.Next()
	}
}

// requireCap enforces the same capability table the client consults.
func (s *Server) requireCap(check func(roles.Capabilities) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := roles.Role(c.GetString("role"))
		if !check(role.Capabilities()) {
			fail(c, http.StatusForbidden, "peran anda tidak diizinkan melakukan aksi ini")
			return
		}
		c.Next()
	}
}

func callerRole(c *gin.Context) roles.Role {
	return roles.Role(c.GetString("role"))
}
