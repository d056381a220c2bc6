package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"moneyflow/config"
	"moneyflow/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const contextUserID = "userID"

var jwtSecret []byte

// Claims JWT 载荷
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// InitJWT 从配置读取签名密钥
func InitJWT(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWT.Secret)
}

// GenerateToken 生成 HS256 token
func GenerateToken(userID uint, username string, expire time.Duration) (string, error) {
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			Issuer:    "moneyflow",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// ParseToken 校验签名和有效期并返回载荷
func ParseToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token 为空")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("无效的 token")
	}
	return claims, nil
}

// JWTAuth 校验 Authorization: Bearer <token>，通过后写入当前用户 ID
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			abortUnauthorized(c, "请先登录")
			return
		}

		claims, err := ParseToken(strings.TrimSpace(tokenString))
		if err != nil {
			abortUnauthorized(c, "登录已过期或 token 无效")
			return
		}

		c.Set(contextUserID, claims.UserID)
		l := logger.FromContext(c.Request.Context()).With().Uint("user_id", claims.UserID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), l))
		c.Next()
	}
}

// GetCurrentUserID 当前登录用户 ID，未登录时为 0
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(contextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}
