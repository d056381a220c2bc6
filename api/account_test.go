package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"moneyflow/models"
	"moneyflow/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func accountRouter(db *gorm.DB) *gin.Engine {
	h := NewAccountHandler(service.NewAccountService(db))

	r := newTestRouter()
	r.POST("/accounts", h.Create)
	r.GET("/accounts", h.List)
	r.GET("/accounts/:id", h.Get)
	r.DELETE("/accounts/:id", h.Delete)
	return r
}

func TestAccountHandler_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	r := accountRouter(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `accounts`").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	w := doJSON(r, http.MethodPost, "/accounts",
		`{"name":"Conta corrente","bank_name":"Itaú","account_type":"checking","opening_balance":"1500.00"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var account models.Account
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &account))
	assert.Equal(t, uint(5), account.ID)
	assert.Equal(t, "1500", account.Balance.String())
	assert.True(t, account.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHandler_Create_Validation(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()
	r := accountRouter(db)

	w := doJSON(r, http.MethodPost, "/accounts",
		`{"name":"ab","account_type":"crypto","opening_balance":"-1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	ve := fieldErrors(t, decode(t, w))
	fields := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"name", "account_type", "opening_balance"}, fields)
}

func TestAccountHandler_List_BadFilter(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()
	r := accountRouter(db)

	w := doJSON(r, http.MethodGet, "/accounts?is_active=maybe", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountHandler_Get_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	r := accountRouter(db)

	mock.ExpectQuery("SELECT \\* FROM `accounts`").WillReturnRows(sqlmock.NewRows(accountColumns))

	w := doJSON(r, http.MethodGet, "/accounts/7", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHandler_Delete_Protected(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	r := accountRouter(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `accounts` .*FOR UPDATE").WillReturnRows(accountRow(1, "100.00"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions`").WillReturnRows(countRow(2))
	mock.ExpectRollback()

	w := doJSON(r, http.MethodDelete, "/accounts/1", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, service.ErrProtectedDeletion.Error(), decode(t, w).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHandler_Delete(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	r := accountRouter(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `accounts` .*FOR UPDATE").WillReturnRows(accountRow(1, "100.00"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions`").WillReturnRows(countRow(0))
	mock.ExpectExec("DELETE FROM `accounts`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doJSON(r, http.MethodDelete, "/accounts/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Delete_Protected(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	h := NewCategoryHandler(service.NewCategoryService(db))
	r := newTestRouter()
	r.DELETE("/categories/:id", h.Delete)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `categories` .*FOR UPDATE").WillReturnRows(categoryRow(3, "Mercado", "expense"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions`").WillReturnRows(countRow(1))
	mock.ExpectRollback()

	w := doJSON(r, http.MethodDelete, "/categories/3", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_BindError(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	h := NewCategoryHandler(service.NewCategoryService(db))
	r := newTestRouter()
	r.POST("/categories", h.Create)

	w := doJSON(r, http.MethodPost, "/categories", `{"name":"Mercado"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
