package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

// setUserIDMiddleware 模拟 JWTAuth 写入的当前用户
func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(setUserIDMiddleware(1))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type testResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) testResponse {
	var resp testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func fieldErrors(t *testing.T, resp testResponse) ValidationErrors {
	var ve ValidationErrors
	require.NoError(t, json.Unmarshal(resp.Data, &ve))
	return ve
}

var accountColumns = []string{"id", "user_id", "name", "bank_name", "account_type", "opening_balance", "balance", "is_active", "created_at", "updated_at"}

func accountRow(id uint, balance string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(accountColumns).AddRow(id, 1, "Conta corrente", "Itaú", "checking", balance, balance, true, now, now)
}

var categoryColumns = []string{"id", "user_id", "name", "category_type", "color", "created_at", "updated_at"}

func categoryRow(id uint, name, typ string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(categoryColumns).AddRow(id, 1, name, typ, "#667eea", now, now)
}

func countRow(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}
