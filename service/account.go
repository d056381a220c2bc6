package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"moneyflow/logger"
	"moneyflow/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountInput 创建账户的输入
type AccountInput struct {
	Name           string
	BankName       string
	Type           models.AccountType
	OpeningBalance decimal.Decimal
	IsActive       *bool
}

// AccountPatch 更新账户的输入；余额不可编辑
type AccountPatch struct {
	Name     *string
	BankName *string
	Type     *models.AccountType
	IsActive *bool
}

// BalanceAudit 账户余额核对结果
type BalanceAudit struct {
	AccountID uint            `json:"account_id"`
	Stored    decimal.Decimal `json:"stored"`
	Expected  decimal.Decimal `json:"expected"`
	Drift     decimal.Decimal `json:"drift"`
	Repaired  bool            `json:"repaired"`
}

// Consistent 存储余额与重新计算的余额一致
func (a *BalanceAudit) Consistent() bool {
	return a.Drift.IsZero()
}

// AccountService 账户管理
type AccountService struct {
	db *gorm.DB
}

// NewAccountService 创建账户服务
func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Create 创建账户，初始余额即期初余额
func (s *AccountService) Create(ctx context.Context, ownerID uint, in AccountInput) (*models.Account, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.BankName = strings.TrimSpace(in.BankName)
	if in.Type == "" {
		in.Type = models.AccountTypeChecking
	}

	ve := &ValidationError{}
	validateAccountName(ve, in.Name)
	validateBankName(ve, in.BankName)
	if !in.Type.Valid() {
		ve.Add("account_type", CodeInvalidChoice, "无效的账户类型")
	}
	if in.OpeningBalance.IsNegative() {
		ve.Add("opening_balance", CodeInvalidAmount, "期初余额不能为负数")
	} else if !in.OpeningBalance.Equal(in.OpeningBalance.Truncate(2)) {
		ve.Add("opening_balance", CodeInvalidAmount, "金额最多保留两位小数")
	}
	if err := ve.errOrNil(); err != nil {
		return nil, err
	}

	account := &models.Account{
		UserID:         ownerID,
		Name:           in.Name,
		BankName:       in.BankName,
		Type:           in.Type,
		OpeningBalance: in.OpeningBalance,
		Balance:        in.OpeningBalance,
		IsActive:       in.IsActive == nil || *in.IsActive,
	}
	// IsActive 默认值为 true，false 必须显式写入
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Select("*").Create(account).Error; err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Uint("account_id", account.ID).Str("name", account.Name).Msg("账户已创建")
	return account, nil
}

// Update 修改账户名称、银行、类型、启用状态
func (s *AccountService) Update(ctx context.Context, ownerID, id uint, patch AccountPatch) (*models.Account, error) {
	account, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	ve := &ValidationError{}
	updates := map[string]interface{}{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		validateAccountName(ve, name)
		updates["name"] = name
	}
	if patch.BankName != nil {
		bank := strings.TrimSpace(*patch.BankName)
		validateBankName(ve, bank)
		updates["bank_name"] = bank
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			ve.Add("account_type", CodeInvalidChoice, "无效的账户类型")
		}
		updates["account_type"] = *patch.Type
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if err := ve.errOrNil(); err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return account, nil
	}

	if err := s.db.WithContext(ctx).Model(account).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, ownerID, id)
}

// Delete 删除账户；存在交易时返回 ErrProtectedDeletion
func (s *AccountService) Delete(ctx context.Context, ownerID, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, ownerID).
			First(&account).Error; err != nil {
			return recordNotFound(err)
		}

		var count int64
		if err := tx.Model(&models.Transaction{}).Where("account_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrProtectedDeletion
		}
		return tx.Delete(&account).Error
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Uint("account_id", id).Msg("账户已删除")
	return nil
}

// Get 获取当前用户的账户
func (s *AccountService) Get(ctx context.Context, ownerID, id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&account).Error; err != nil {
		return nil, recordNotFound(err)
	}
	return &account, nil
}

// List 按名称排序列出账户，active 为 nil 时不过滤启用状态
func (s *AccountService) List(ctx context.Context, ownerID uint, active *bool) ([]models.Account, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}
	accounts := []models.Account{}
	if err := query.Order("name ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Audit 用期初余额和全部交易重新计算余额，报告与存储值的偏差
func (s *AccountService) Audit(ctx context.Context, ownerID, id uint) (*BalanceAudit, error) {
	account, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.audit(s.db.WithContext(ctx), account)
}

// Repair 在行锁下把存储余额改写为重新计算的值
func (s *AccountService) Repair(ctx context.Context, ownerID, id uint) (*BalanceAudit, error) {
	var result *BalanceAudit
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, ownerID).
			First(&account).Error; err != nil {
			return recordNotFound(err)
		}

		audit, err := s.audit(tx, &account)
		if err != nil {
			return err
		}
		if !audit.Consistent() {
			if err := tx.Model(&account).UpdateColumn("balance", audit.Expected).Error; err != nil {
				return err
			}
			audit.Repaired = true
		}
		result = audit
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Repaired {
		logger.FromContext(ctx).Warn().
			Uint("account_id", id).
			Str("stored", result.Stored.StringFixed(2)).
			Str("expected", result.Expected.StringFixed(2)).
			Str("drift", result.Drift.StringFixed(2)).
			Msg("账户余额偏差已修复")
	}
	return result, nil
}

func (s *AccountService) audit(db *gorm.DB, account *models.Account) (*BalanceAudit, error) {
	var net decimal.Decimal
	err := db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN transaction_type = ? THEN amount ELSE -amount END), 0)", models.TransactionTypeIncome).
		Where("account_id = ?", account.ID).
		Row().Scan(&net)
	if err != nil {
		return nil, err
	}

	expected := account.OpeningBalance.Add(net)
	return &BalanceAudit{
		AccountID: account.ID,
		Stored:    account.Balance,
		Expected:  expected,
		Drift:     account.Balance.Sub(expected),
	}, nil
}

func validateAccountName(ve *ValidationError, name string) {
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		ve.Add("name", CodeRequired, "账户名称不能为空")
	case n < 3:
		ve.Add("name", CodeInvalid, "账户名称至少 3 个字符")
	case n > 100:
		ve.Add("name", CodeInvalid, "账户名称不能超过 100 个字符")
	}
}

func validateBankName(ve *ValidationError, bank string) {
	if utf8.RuneCountInString(bank) > 100 {
		ve.Add("bank_name", CodeInvalid, "银行名称不能超过 100 个字符")
	}
}

// recordNotFound 把 gorm.ErrRecordNotFound 转为 ErrNotFound
func recordNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
