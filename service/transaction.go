package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"moneyflow/logger"
	"moneyflow/models"

	"github.com/shopspring/decimal"
)

// TransactionInput 创建交易的输入
type TransactionInput struct {
	AccountID   uint
	CategoryID  uint
	Type        models.TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// TransactionPatch 更新交易的输入，nil 字段保持不变
type TransactionPatch struct {
	AccountID   *uint
	CategoryID  *uint
	Type        *models.TransactionType
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
}

// TransactionPage 交易分页结果及筛选范围内的统计
type TransactionPage struct {
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	List         []models.Transaction `json:"list"`
	TotalIncome  decimal.Decimal      `json:"total_income"`
	TotalExpense decimal.Decimal      `json:"total_expense"`
	Balance      decimal.Decimal      `json:"balance"`
}

// TransactionService 交易写入的唯一入口：校验、持久化、余额调整在同一事务中完成
type TransactionService struct {
	store      LedgerStore
	reconciler *Reconciler
	loc        *time.Location
	now        func() time.Time
}

// NewTransactionService 创建交易服务，loc 用于判断“今天”
func NewTransactionService(store LedgerStore, loc *time.Location) *TransactionService {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionService{
		store:      store,
		reconciler: NewReconciler(),
		loc:        loc,
		now:        time.Now,
	}
}

func (s *TransactionService) today() time.Time {
	return s.now().In(s.loc)
}

// Create 创建交易并对账户施加其影响
func (s *TransactionService) Create(ctx context.Context, ownerID uint, in TransactionInput) (*models.Transaction, error) {
	var created *models.Transaction
	err := s.store.WithinTx(ctx, func(tx LedgerStore) error {
		account, err := s.lockWritableAccount(ctx, tx, ownerID, in.AccountID)
		if err != nil {
			return err
		}
		category, err := s.loadCategory(ctx, tx, ownerID, in.CategoryID)
		if err != nil {
			return err
		}

		if err := ValidateTransaction(ValidationInput{
			Type:     in.Type,
			Amount:   in.Amount,
			Date:     in.Date,
			Account:  account,
			Category: category,
			Today:    s.today(),
		}); err != nil {
			return err
		}

		t := &models.Transaction{
			AccountID:   account.ID,
			CategoryID:  category.ID,
			Type:        in.Type,
			Amount:      in.Amount,
			Date:        dateOnly(in.Date),
			Description: strings.TrimSpace(in.Description),
		}
		if err := tx.CreateTransaction(ctx, t); err != nil {
			return err
		}
		if err := s.reconciler.Apply(ctx, tx, nil, SnapshotOf(t)); err != nil {
			return err
		}

		created, err = tx.GetTransaction(ctx, ownerID, t.ID, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Uint("transaction_id", created.ID).
		Uint("account_id", created.AccountID).
		Str("type", string(created.Type)).
		Str("amount", created.Amount.StringFixed(2)).
		Msg("交易已创建")
	return created, nil
}

// Update 更新交易：撤销旧快照在旧账户上的影响，再对新账户施加新影响
func (s *TransactionService) Update(ctx context.Context, ownerID, id uint, patch TransactionPatch) (*models.Transaction, error) {
	var updated *models.Transaction
	err := s.store.WithinTx(ctx, func(tx LedgerStore) error {
		current, err := tx.GetTransaction(ctx, ownerID, id, true)
		if err != nil {
			return err
		}
		prev := SnapshotOf(current)

		next := *current
		next.Account, next.Category = nil, nil
		applyPatch(&next, patch)

		// 换账户时按 ID 升序锁定新旧两个账户
		if next.AccountID != prev.AccountID && prev.AccountID < next.AccountID {
			if _, err := tx.LockAccount(ctx, ownerID, prev.AccountID); err != nil {
				return err
			}
		}
		account, err := s.lockWritableAccount(ctx, tx, ownerID, next.AccountID)
		if err != nil {
			return err
		}
		if next.AccountID != prev.AccountID && prev.AccountID > next.AccountID {
			if _, err := tx.LockAccount(ctx, ownerID, prev.AccountID); err != nil {
				return err
			}
		}
		category, err := s.loadCategory(ctx, tx, ownerID, next.CategoryID)
		if err != nil {
			return err
		}

		if err := ValidateTransaction(ValidationInput{
			Type:     next.Type,
			Amount:   next.Amount,
			Date:     next.Date,
			Account:  account,
			Category: category,
			Previous: prev,
			Today:    s.today(),
		}); err != nil {
			return err
		}

		if err := tx.SaveTransaction(ctx, &next); err != nil {
			return err
		}
		if err := s.reconciler.Apply(ctx, tx, prev, SnapshotOf(&next)); err != nil {
			return err
		}

		updated, err = tx.GetTransaction(ctx, ownerID, id, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Uint("transaction_id", id).
		Uint("account_id", updated.AccountID).
		Msg("交易已更新")
	return updated, nil
}

// Delete 删除交易并撤销其对账户余额的影响
func (s *TransactionService) Delete(ctx context.Context, ownerID, id uint) error {
	err := s.store.WithinTx(ctx, func(tx LedgerStore) error {
		current, err := tx.GetTransaction(ctx, ownerID, id, true)
		if err != nil {
			return err
		}
		if err := tx.DeleteTransaction(ctx, current.ID); err != nil {
			return err
		}
		return s.reconciler.Apply(ctx, tx, SnapshotOf(current), nil)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Uint("transaction_id", id).Msg("交易已删除")
	return nil
}

// Get 获取单条交易
func (s *TransactionService) Get(ctx context.Context, ownerID, id uint) (*models.Transaction, error) {
	return s.store.GetTransaction(ctx, ownerID, id, false)
}

// List 按条件分页查询交易，并统计筛选范围内的收入、支出和结余
func (s *TransactionService) List(ctx context.Context, ownerID uint, f TransactionFilter) (*TransactionPage, error) {
	f.Normalize()
	list, total, err := s.store.ListTransactions(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	income, expense, err := s.store.SumTransactions(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Transaction{}
	}
	return &TransactionPage{
		Total:        total,
		Page:         f.Page,
		PageSize:     f.PageSize,
		List:         list,
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}, nil
}

// lockWritableAccount 锁定目标账户；不存在、不属于当前用户或已停用时返回字段错误
func (s *TransactionService) lockWritableAccount(ctx context.Context, tx LedgerStore, ownerID, accountID uint) (*models.Account, error) {
	account, err := tx.LockAccount(ctx, ownerID, accountID)
	if errors.Is(err, ErrNotFound) {
		return nil, newFieldError("account", CodeInvalidChoice, "请选择有效的账户")
	}
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, newFieldError("account", CodeInvalidChoice, "账户已停用")
	}
	return account, nil
}

func (s *TransactionService) loadCategory(ctx context.Context, tx LedgerStore, ownerID, categoryID uint) (*models.Category, error) {
	category, err := tx.GetCategory(ctx, ownerID, categoryID)
	if errors.Is(err, ErrNotFound) {
		return nil, newFieldError("category", CodeInvalidChoice, "请选择有效的类别")
	}
	return category, err
}

func applyPatch(t *models.Transaction, p TransactionPatch) {
	if p.AccountID != nil {
		t.AccountID = *p.AccountID
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Date != nil {
		t.Date = dateOnly(*p.Date)
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
}

// dateOnly 去掉时分秒，保留日历日期
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
