package service

import (
	"context"
	"time"

	"moneyflow/models"

	"github.com/shopspring/decimal"
)

// BalanceAdjuster 以服务端增量表达式调整账户余额（balance = balance + delta）
type BalanceAdjuster interface {
	AdjustBalance(ctx context.Context, accountID uint, delta decimal.Decimal) error
}

// LedgerStore 交易写入所需的持久化操作
//
// 所有方法都按 ownerID 限定范围：不属于该用户的记录一律视为 ErrNotFound。
type LedgerStore interface {
	BalanceAdjuster

	// WithinTx 在同一数据库事务中执行 fn，fn 返回错误时整体回滚
	WithinTx(ctx context.Context, fn func(tx LedgerStore) error) error

	// LockAccount 读取账户并加行锁（SELECT ... FOR UPDATE）
	LockAccount(ctx context.Context, ownerID, accountID uint) (*models.Account, error)
	GetCategory(ctx context.Context, ownerID, categoryID uint) (*models.Category, error)

	// GetTransaction 读取交易并预加载账户和类别；lock 为 true 时对交易行加锁
	GetTransaction(ctx context.Context, ownerID, id uint, lock bool) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	SaveTransaction(ctx context.Context, t *models.Transaction) error
	DeleteTransaction(ctx context.Context, id uint) error

	ListTransactions(ctx context.Context, ownerID uint, f TransactionFilter) ([]models.Transaction, int64, error)
	SumTransactions(ctx context.Context, ownerID uint, f TransactionFilter) (income, expense decimal.Decimal, err error)
}

// TransactionFilter 交易列表筛选条件，零值表示不过滤
type TransactionFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	AccountID  uint
	CategoryID uint
	Type       models.TransactionType
	Page       int
	PageSize   int
}

// Normalize 修正分页参数
func (f *TransactionFilter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

// Offset 分页偏移
func (f *TransactionFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
