package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

var accountColumns = []string{"id", "user_id", "name", "bank_name", "account_type", "opening_balance", "balance", "is_active", "created_at", "updated_at"}

func accountRow(id uint, opening, balance string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(accountColumns).AddRow(id, 1, "Conta corrente", "Itaú", "checking", opening, balance, true, now, now)
}

var categoryColumns = []string{"id", "user_id", "name", "category_type", "color", "created_at", "updated_at"}

func categoryRow(id uint, name, typ string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(categoryColumns).AddRow(id, 1, name, typ, "#667eea", now, now)
}

func countRow(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
}
