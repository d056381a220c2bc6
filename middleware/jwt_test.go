package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moneyflow/config"
	"moneyflow/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-key"

func initTestJWT() {
	InitJWT(&config.Config{JWT: config.JWTConfig{Secret: testSecret}})
}

func signed(t *testing.T, method jwt.SigningMethod, secret string, claims Claims) string {
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestGenerateToken(t *testing.T) {
	initTestJWT()

	token, err := GenerateToken(7, "maria", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, "moneyflow", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	// 非正数有效期回退为 24 小时
	token, err = GenerateToken(7, "maria", 0)
	require.NoError(t, err)
	claims, err = ParseToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseToken_Rejects(t *testing.T) {
	initTestJWT()

	expired := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	valid := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.valid.jwt"},
		{"expired", signed(t, jwt.SigningMethodHS256, testSecret, expired)},
		{"wrong secret", signed(t, jwt.SigningMethodHS256, "other-secret", valid)},
		{"other algorithm", signed(t, jwt.SigningMethodHS384, testSecret, valid)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTAuth(t *testing.T) {
	initTestJWT()
	gin.SetMode(gin.TestMode)

	token, err := GenerateToken(42, "user42", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "请先登录"},
		{"basic scheme", "Basic xyz", http.StatusUnauthorized, "请先登录"},
		{"bearer without token", "Bearer ", http.StatusUnauthorized, "请先登录"},
		{"invalid token", "Bearer abc.def.ghi", http.StatusUnauthorized, "token 无效"},
		{"valid token", "Bearer " + token, http.StatusOK, "id:42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(JWTAuth())
			router.GET("/protected", func(c *gin.Context) {
				c.String(http.StatusOK, "id:%d", GetCurrentUserID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestJWTAuth_ContextLoggerCarriesUserID(t *testing.T) {
	initTestJWT()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	router := gin.New()
	router.Use(func(c *gin.Context) {
		ctx := logger.WithContext(c.Request.Context(), logger.NewWithWriter(&buf))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	router.Use(JWTAuth())
	router.GET("/protected", func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Info().Msg("hit")
		c.Status(http.StatusNoContent)
	})

	token, err := GenerateToken(42, "user42", time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, buf.String(), `"user_id":42`)
}

func TestGetCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, uint(0), GetCurrentUserID(c))

	c.Set("userID", "99")
	assert.Equal(t, uint(0), GetCurrentUserID(c))

	c.Set("userID", uint(99))
	assert.Equal(t, uint(99), GetCurrentUserID(c))
}
