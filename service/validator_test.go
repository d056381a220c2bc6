package service

import (
	"testing"
	"time"

	"moneyflow/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testToday = time.Date(2024, 6, 15, 22, 30, 0, 0, time.UTC)
	dec       = decimal.RequireFromString
)

func validInput() ValidationInput {
	return ValidationInput{
		Type:     models.TransactionTypeExpense,
		Amount:   dec("100"),
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Account:  &models.Account{ID: 1, Balance: dec("500"), IsActive: true},
		Category: &models.Category{ID: 9, Type: models.CategoryTypeExpense},
		Today:    testToday,
	}
}

func requireCode(t *testing.T, err error, code ErrorCode) *ValidationError {
	t.Helper()
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.True(t, ve.Has(code), "expected code %s in %v", code, ve.Fields)
	return ve
}

func TestValidateTransaction_Valid(t *testing.T) {
	assert.NoError(t, ValidateTransaction(validInput()))

	in := validInput()
	in.Type = models.TransactionTypeIncome
	in.Category = &models.Category{ID: 2, Type: models.CategoryTypeIncome}
	in.Amount = dec("100000")
	assert.NoError(t, ValidateTransaction(in), "income never checks balance")
}

func TestValidateTransaction_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"0", "-10", "1.001", "10000000000"} {
		in := validInput()
		in.Amount = dec(amount)
		ve := requireCode(t, ValidateTransaction(in), CodeInvalidAmount)
		assert.Equal(t, "amount", ve.Fields[0].Field)
		assert.False(t, ve.Has(CodeInsufficientBalance), "balance rule skipped for invalid amount %s", amount)
	}
}

func TestValidateTransaction_FutureDate(t *testing.T) {
	in := validInput()
	in.Date = time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	requireCode(t, ValidateTransaction(in), CodeFutureDateNotAllowed)

	// 当天任意时刻都允许
	in.Date = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateTransaction(in))

	in.Date = time.Time{}
	requireCode(t, ValidateTransaction(in), CodeRequired)
}

func TestValidateTransaction_CategoryTypeMismatch(t *testing.T) {
	in := validInput()
	in.Category = &models.Category{ID: 3, Type: models.CategoryTypeIncome}
	ve := requireCode(t, ValidateTransaction(in), CodeCategoryTypeMismatch)
	assert.Equal(t, "category", ve.Fields[0].Field)

	in = validInput()
	in.Type = models.TransactionTypeIncome
	requireCode(t, ValidateTransaction(in), CodeCategoryTypeMismatch)
}

func TestValidateTransaction_InvalidType(t *testing.T) {
	in := validInput()
	in.Type = "transfer"
	ve := requireCode(t, ValidateTransaction(in), CodeInvalidType)
	assert.False(t, ve.Has(CodeCategoryTypeMismatch))
}

func TestValidateTransaction_InsufficientBalance(t *testing.T) {
	in := validInput()
	in.Amount = dec("500")
	assert.NoError(t, ValidateTransaction(in), "amount equal to balance is allowed")

	in.Amount = dec("500.01")
	ve := requireCode(t, ValidateTransaction(in), CodeInsufficientBalance)
	assert.Contains(t, ve.Fields[0].Message, "500.00")
}

func TestValidateTransaction_UpdateCreditsBackSameAccount(t *testing.T) {
	// 余额 0：原本 100 的支出已经扣完，编辑为 100 仍然允许
	in := validInput()
	in.Account.Balance = dec("0")
	in.Previous = &Snapshot{AccountID: 1, Amount: dec("100"), Type: models.TransactionTypeExpense}
	assert.NoError(t, ValidateTransaction(in))

	in.Amount = dec("100.01")
	requireCode(t, ValidateTransaction(in), CodeInsufficientBalance)

	// 旧交易为收入 300：可用余额 = 350 - 300 = 50
	in = validInput()
	in.Account.Balance = dec("350")
	in.Previous = &Snapshot{AccountID: 1, Amount: dec("300"), Type: models.TransactionTypeIncome}
	in.Amount = dec("50")
	assert.NoError(t, ValidateTransaction(in))
	in.Amount = dec("51")
	requireCode(t, ValidateTransaction(in), CodeInsufficientBalance)
}

func TestValidateTransaction_UpdateOtherAccountNoCreditBack(t *testing.T) {
	in := validInput()
	in.Account.Balance = dec("50")
	in.Previous = &Snapshot{AccountID: 2, Amount: dec("80"), Type: models.TransactionTypeExpense}
	in.Amount = dec("80")
	requireCode(t, ValidateTransaction(in), CodeInsufficientBalance)

	in.Amount = dec("50")
	assert.NoError(t, ValidateTransaction(in))
}

func TestValidateTransaction_CollectsAllErrors(t *testing.T) {
	in := validInput()
	in.Amount = dec("0")
	in.Date = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	in.Category = &models.Category{Type: models.CategoryTypeIncome}

	ve, ok := AsValidationError(ValidateTransaction(in))
	require.True(t, ok)
	assert.Len(t, ve.Fields, 3)
	assert.Contains(t, ve.Error(), "amount")
}

func TestIsFutureDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	today := time.Date(2024, 6, 15, 23, 0, 0, 0, loc)

	assert.False(t, IsFutureDate(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), today))
	assert.False(t, IsFutureDate(time.Date(2024, 6, 14, 0, 0, 0, 0, loc), today))
	assert.True(t, IsFutureDate(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), today))
}

func TestAvailableBalance(t *testing.T) {
	acct := &models.Account{ID: 1, Balance: dec("200")}
	assert.True(t, AvailableBalance(acct, nil).Equal(dec("200")))
	assert.True(t, AvailableBalance(acct, &Snapshot{AccountID: 1, Amount: dec("30"), Type: models.TransactionTypeExpense}).Equal(dec("230")))
	assert.True(t, AvailableBalance(acct, &Snapshot{AccountID: 1, Amount: dec("30"), Type: models.TransactionTypeIncome}).Equal(dec("170")))
	assert.True(t, AvailableBalance(acct, &Snapshot{AccountID: 2, Amount: dec("30"), Type: models.TransactionTypeExpense}).Equal(dec("200")))
}
