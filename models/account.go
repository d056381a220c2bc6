package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType 账户类型
type AccountType string

const (
	AccountTypeChecking AccountType = "checking" // 活期账户
	AccountTypeSavings  AccountType = "savings"  // 储蓄账户
	AccountTypeWallet   AccountType = "wallet"   // 现金钱包
)

// Valid 是否为合法的账户类型
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeWallet:
		return true
	}
	return false
}

// GetAccountTypes 获取所有账户类型
func GetAccountTypes() []AccountType {
	return []AccountType{AccountTypeChecking, AccountTypeSavings, AccountTypeWallet}
}

// Account 银行账户/钱包
//
// Balance 是持久化的派生值：始终等于 OpeningBalance 加上该账户所有交易的带符号金额之和。
// 它只由 service.Reconciler 以增量方式维护，不允许直接编辑。
type Account struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;index:idx_accounts_user_active,priority:1"`
	Name           string          `json:"name" gorm:"size:100;not null"`
	BankName       string          `json:"bank_name" gorm:"size:100"`
	Type           AccountType     `json:"account_type" gorm:"column:account_type;size:20;not null;default:checking"`
	OpeningBalance decimal.Decimal `json:"opening_balance" gorm:"type:decimal(12,2);not null;default:0"`
	Balance        decimal.Decimal `json:"balance" gorm:"type:decimal(12,2);not null;default:0"`
	IsActive       bool            `json:"is_active" gorm:"not null;default:true;index:idx_accounts_user_active,priority:2"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	User           User            `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (Account) TableName() string {
	return "accounts"
}
