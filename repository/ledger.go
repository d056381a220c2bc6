package repository

import (
	"context"
	"errors"
	"fmt"

	"moneyflow/models"
	"moneyflow/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository 基于 gorm 的 service.LedgerStore 实现
type LedgerRepository struct {
	db *gorm.DB
}

var _ service.LedgerStore = (*LedgerRepository)(nil)

// NewLedgerRepository 创建交易仓储
func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// WithinTx 在 gorm 事务中执行 fn
func (r *LedgerRepository) WithinTx(ctx context.Context, fn func(tx service.LedgerStore) error) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LedgerRepository{db: tx})
	})
}

// AdjustBalance 在数据库端执行 balance = balance + delta，不读出再写回
func (r *LedgerRepository) AdjustBalance(ctx context.Context, accountID uint, delta decimal.Decimal) error {
	res := r.conn(ctx).Model(&models.Account{}).
		Where("id = ?", accountID).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("account %d: %w", accountID, service.ErrNotFound)
	}
	return nil
}

// LockAccount SELECT ... FOR UPDATE 读取账户
func (r *LedgerRepository) LockAccount(ctx context.Context, ownerID, accountID uint) (*models.Account, error) {
	var account models.Account
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", accountID, ownerID).
		First(&account).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &account, nil
}

func (r *LedgerRepository) GetCategory(ctx context.Context, ownerID, categoryID uint) (*models.Category, error) {
	var category models.Category
	err := r.conn(ctx).Where("id = ? AND user_id = ?", categoryID, ownerID).First(&category).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

// GetTransaction 通过账户归属判断交易是否属于 ownerID
func (r *LedgerRepository) GetTransaction(ctx context.Context, ownerID, id uint, lock bool) (*models.Transaction, error) {
	query := r.conn(ctx).
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("transactions.id = ? AND accounts.user_id = ?", id, ownerID)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var t models.Transaction
	if err := query.Preload("Account").Preload("Category").First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *LedgerRepository) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	return r.conn(ctx).Omit(clause.Associations).Create(t).Error
}

func (r *LedgerRepository) SaveTransaction(ctx context.Context, t *models.Transaction) error {
	return r.conn(ctx).Omit(clause.Associations).Save(t).Error
}

func (r *LedgerRepository) DeleteTransaction(ctx context.Context, id uint) error {
	res := r.conn(ctx).Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

// ListTransactions 按交易日期、创建时间倒序分页
func (r *LedgerRepository) ListTransactions(ctx context.Context, ownerID uint, f service.TransactionFilter) ([]models.Transaction, int64, error) {
	query := r.filtered(ctx, ownerID, f)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Transaction
	err := query.
		Preload("Account").Preload("Category").
		Order("transactions.transaction_date DESC").
		Order("transactions.created_at DESC").
		Order("transactions.id DESC").
		Offset(f.Offset()).Limit(f.PageSize).
		Find(&list).Error
	return list, total, err
}

type typeTotal struct {
	Type  models.TransactionType `gorm:"column:transaction_type"`
	Total decimal.Decimal        `gorm:"column:total"`
}

// SumTransactions 统计筛选范围内的收入和支出合计
func (r *LedgerRepository) SumTransactions(ctx context.Context, ownerID uint, f service.TransactionFilter) (income, expense decimal.Decimal, err error) {
	var rows []typeTotal
	err = r.filtered(ctx, ownerID, f).
		Select("transactions.transaction_type, COALESCE(SUM(transactions.amount), 0) AS total").
		Group("transactions.transaction_type").
		Scan(&rows).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	income, expense = decimal.Zero, decimal.Zero
	for _, row := range rows {
		switch row.Type {
		case models.TransactionTypeIncome:
			income = row.Total
		case models.TransactionTypeExpense:
			expense = row.Total
		}
	}
	return income, expense, nil
}

func (r *LedgerRepository) filtered(ctx context.Context, ownerID uint, f service.TransactionFilter) *gorm.DB {
	query := r.conn(ctx).Model(&models.Transaction{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.user_id = ?", ownerID)

	if f.AccountID != 0 {
		query = query.Where("transactions.account_id = ?", f.AccountID)
	}
	if f.CategoryID != 0 {
		query = query.Where("transactions.category_id = ?", f.CategoryID)
	}
	if f.Type != "" {
		query = query.Where("transactions.transaction_type = ?", f.Type)
	}
	if f.DateFrom != nil {
		query = query.Where("transactions.transaction_date >= ?", f.DateFrom.Format(models.DateLayout))
	}
	if f.DateTo != nil {
		query = query.Where("transactions.transaction_date <= ?", f.DateTo.Format(models.DateLayout))
	}
	return query
}

// notFound 把 gorm.ErrRecordNotFound 转为 service.ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}
