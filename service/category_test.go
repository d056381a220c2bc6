package service

import (
	"context"
	"testing"

	"moneyflow/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories`").WillReturnRows(countRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	svc := NewCategoryService(db)
	category, err := svc.Create(context.Background(), 1, CategoryInput{Name: " Mercado ", Type: models.CategoryTypeExpense})
	require.NoError(t, err)
	assert.Equal(t, uint(12), category.ID)
	assert.Equal(t, "Mercado", category.Name)
	assert.Equal(t, models.DefaultCategoryColor, category.Color)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Create_Validation(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	svc := NewCategoryService(db)
	_, err := svc.Create(context.Background(), 1, CategoryInput{Name: "ab", Type: "transfer", Color: "red"})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.HasField("name"))
	assert.True(t, ve.HasField("category_type"))
	assert.True(t, ve.HasField("color"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories`").WillReturnRows(countRow(1))

	svc := NewCategoryService(db)
	_, err := svc.Create(context.Background(), 1, CategoryInput{Name: "Salário", Type: models.CategoryTypeIncome, Color: "#10B981"})
	ve := requireCode(t, err, CodeInvalid)
	assert.Equal(t, "name", ve.Fields[0].Field)
	assert.Equal(t, ErrDuplicateName.Error(), ve.Fields[0].Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Update_TypeLockedByTransactions(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `categories`").WillReturnRows(categoryRow(4, "Mercado", "expense"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories`").WillReturnRows(countRow(0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions`").WillReturnRows(countRow(3))

	svc := NewCategoryService(db)
	_, err := svc.Update(context.Background(), 1, 4, CategoryInput{Name: "Mercado", Type: models.CategoryTypeIncome})
	ve := requireCode(t, err, CodeInvalid)
	assert.Equal(t, "category_type", ve.Fields[0].Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_Protected(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `categories` .*FOR UPDATE").WillReturnRows(categoryRow(4, "Mercado", "expense"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions`").WillReturnRows(countRow(1))
	mock.ExpectRollback()

	svc := NewCategoryService(db)
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 4), ErrProtectedDeletion)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `categories` .*FOR UPDATE").WillReturnRows(categoryRow(4, "Mercado", "expense"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `transactions`").WillReturnRows(countRow(0))
	mock.ExpectExec("DELETE FROM `categories`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := NewCategoryService(db)
	require.NoError(t, svc.Delete(context.Background(), 1, 4))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `categories` .*FOR UPDATE").WillReturnRows(sqlmock.NewRows(categoryColumns))
	mock.ExpectRollback()

	svc := NewCategoryService(db)
	assert.ErrorIs(t, svc.Delete(context.Background(), 2, 4), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_DefaultsPassValidation(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	svc := NewCategoryService(db)
	for _, d := range models.GetDefaultCategories() {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories`").WillReturnRows(countRow(0))

		in, err := svc.normalize(context.Background(), 1, 4, CategoryInput{Name: d.Name, Type: d.Type, Color: d.Color})
		assert.NoError(t, err, "默认类别 %s 无法再次保存", d.Name)
		assert.Equal(t, d.Name, in.Name)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Get_OtherOwner(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `categories`").WillReturnRows(sqlmock.NewRows(categoryColumns))

	svc := NewCategoryService(db)
	_, err := svc.Get(context.Background(), 2, 4)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDefaults(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").WillReturnResult(sqlmock.NewResult(1, int64(len(models.GetDefaultCategories()))))
	mock.ExpectCommit()

	require.NoError(t, SeedDefaults(db, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
