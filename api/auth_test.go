package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"moneyflow/config"
	"moneyflow/middleware"
	"moneyflow/models"
	"moneyflow/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var userColumns = []string{"id", "username", "password", "email", "status", "created_at", "updated_at"}

func userRow(password, status string) *sqlmock.Rows {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	now := time.Now()
	return sqlmock.NewRows(userColumns).AddRow(1, "maria", string(hashed), "maria@example.com", status, now, now)
}

func authRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	middleware.InitJWT(cfg)

	h := NewAuthHandler(cfg, service.NewUserService(db, nil))
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	r := authRouter(t, db)

	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(userRow("segredo123", models.UserStatusActive))

	w := doJSON(r, http.MethodPost, "/login", `{"username":"maria","password":"segredo123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var data LoginResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "maria", data.UserInfo.Username)

	claims, err := middleware.ParseToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		password string
		status   int
	}{
		{"wrong password", userRow("segredo123", models.UserStatusActive), "errado", http.StatusUnauthorized},
		{"unknown user", sqlmock.NewRows(userColumns), "segredo123", http.StatusUnauthorized},
		{"locked user", userRow("segredo123", models.UserStatusLocked), "segredo123", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupMockDB(t)
			defer cleanup()
			r := authRouter(t, db)

			mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(tt.rows)

			w := doJSON(r, http.MethodPost, "/login", `{"username":"maria","password":"`+tt.password+`"}`)

			assert.Equal(t, tt.status, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAuthHandler_Register_BindError(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()
	r := authRouter(t, db)

	w := doJSON(r, http.MethodPost, "/register", `{"username":"ma","password":"123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &service.ValidationError{Fields: []service.FieldError{{Field: "amount", Code: service.CodeInvalidAmount}}}, http.StatusBadRequest},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("ctx"), service.ErrNotFound), http.StatusNotFound},
		{"protected", service.ErrProtectedDeletion, http.StatusConflict},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"locked", service.ErrUserLocked, http.StatusForbidden},
		{"reconciliation", service.ErrReconciliation, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.GET("/", func(c *gin.Context) { respondError(c, tt.err, "失败") })

			w := doJSON(r, http.MethodGet, "/", "")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.status, decode(t, w).Code)
		})
	}
}

func TestAuthHandler_ChangePassword_WrongOldPassword(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	h := NewAuthHandler(&config.Config{}, service.NewUserService(db, nil))
	r := newTestRouter()
	r.PUT("/auth/password", h.ChangePassword)

	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(userRow("segredo123", models.UserStatusActive))

	w := doJSON(r, http.MethodPut, "/auth/password", `{"old_password":"errado","new_password":"novasenha"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "原密码错误", decode(t, w).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
