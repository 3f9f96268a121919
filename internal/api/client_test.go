package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"peminjaman/internal/config"
	"peminjaman/pkg/apierr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.API{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop())
}

func TestEnvelopeSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/loans", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": []gin.H{{"id": "l1", "status": "menunggu"}}})
	})

	client := newTestClient(t, router)
	loans, err := client.ListLoans(context.Background(), LoanFilter{})
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "l1", loans[0].ID)
}

func TestErrorEnvelopeBecomesOperationFailed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/loans", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "tanggal tidak valid"})
	})

	client := newTestClient(t, router)
	_, err := client.ListLoans(context.Background(), LoanFilter{})
	require.Error(t, err)
	assert.True(t, apierr.IsOperationFailed(err))
	assert.EqualError(t, err, "tanggal tidak valid")
}

func TestErrorStatusInsideOKResponse(t *testing.T) {
	// Some backends answer 200 with an error envelope; that is still a
	// failure.
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/loans", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "kesalahan internal"})
	})

	client := newTestClient(t, router)
	_, err := client.ListLoans(context.Background(), LoanFilter{})
	assert.True(t, apierr.IsOperationFailed(err))
}

func TestTransportFailure(t *testing.T) {
	client := NewClient(config.API{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, zap.NewNop())
	_, err := client.ListLoans(context.Background(), LoanFilter{})
	require.Error(t, err)
	assert.True(t, apierr.IsOperationFailed(err))
	assert.EqualError(t, err, "gagal menghubungi server")
}

func TestUnauthorizedFiresHook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/loans", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "token tidak valid"})
	})

	client := newTestClient(t, router)
	fired := false
	client.OnUnauthorized(func() { fired = true })

	_, err := client.ListLoans(context.Background(), LoanFilter{})
	require.Error(t, err)
	assert.True(t, fired, "401 must fire the session-expiry hook")
	assert.True(t, apierr.IsOperationFailed(err))
}

func TestBearerTokenAttached(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var got string
	router := gin.New()
	router.GET("/assets", func(c *gin.Context) {
		got = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": []gin.H{}})
	})

	client := newTestClient(t, router)
	client.SetTokenSource(func() string { return "abc123" })

	_, err := client.ListAssets(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", got)
}

func TestRequestIDHeaderOnMutations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var got string
	router := gin.New()
	router.DELETE("/loans/:id", func(c *gin.Context) {
		got = c.GetHeader("X-Request-ID")
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	client := newTestClient(t, router)
	require.NoError(t, client.DeleteLoan(context.Background(), "req-42", "l1"))
	assert.Equal(t, "req-42", got)
}

func TestRawExportPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export/loans", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/csv", []byte("id,status\nl1,selesai\n"))
	})

	client := newTestClient(t, router)
	payload, err := client.ExportLoans(context.Background(), LoanFilter{})
	require.NoError(t, err)
	assert.Contains(t, string(payload), "l1,selesai")
}
