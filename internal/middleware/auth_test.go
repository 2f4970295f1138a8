package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtsvc "qrgen/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt := jwtsvc.New("test-secret", time.Hour)

	router := gin.New()
	router.Use(Auth(jwt))
	router.GET("/secret", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64("user_id")})
	})

	return router, jwt
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAuth_ValidToken(t *testing.T) {
	router, jwt := setupAuthRouter(t)

	token, err := jwt.GenerateToken(9)
	require.NoError(t, err)

	resp := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"user_id":9`)
}

func TestAuth_MissingHeader(t *testing.T) {
	router, _ := setupAuthRouter(t)

	resp := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuth_WrongScheme(t *testing.T) {
	router, _ := setupAuthRouter(t)

	resp := doRequest(router, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuth_EmptyToken(t *testing.T) {
	router, _ := setupAuthRouter(t)

	resp := doRequest(router, "Bearer   ")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuth_ForgedToken(t *testing.T) {
	router, _ := setupAuthRouter(t)

	forged, err := jwtsvc.New("other-secret", time.Hour).GenerateToken(9)
	require.NoError(t, err)

	resp := doRequest(router, "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
