package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType 交易类型：金额恒为正，方向由类型决定
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DateLayout 交易日期格式
const DateLayout = "2006-01-02"

// Valid 是否为合法的交易类型
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Sign 收入为 +1，支出为 -1
func (t TransactionType) Sign() int64 {
	if t == TransactionTypeExpense {
		return -1
	}
	return 1
}

// Contribution 该类型下金额对账户余额的带符号影响
func (t TransactionType) Contribution(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeExpense {
		return amount.Neg()
	}
	return amount
}

// Transaction 收支记录
// 账户、类别外键均为 RESTRICT：存在交易时不能删除对应账户/类别
type Transaction struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	AccountID   uint            `json:"account_id" gorm:"not null;index"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	Type        TransactionType `json:"transaction_type" gorm:"column:transaction_type;size:10;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date        time.Time       `json:"transaction_date" gorm:"column:transaction_date;type:date;not null;index"`
	Description string          `json:"description" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Account     *Account        `json:"account,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:RESTRICT"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// SignedAmount 该交易对账户余额的影响
func (t *Transaction) SignedAmount() decimal.Decimal {
	return t.Type.Contribution(t.Amount)
}
