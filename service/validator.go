package service

import (
	"fmt"
	"time"

	"moneyflow/models"

	"github.com/shopspring/decimal"
)

// 金额为 decimal(12,2)：最多 10 位整数、2 位小数
var maxAmount = decimal.New(1, 10)

// Snapshot 交易对余额产生影响的三要素，用于更新前后的对比
type Snapshot struct {
	AccountID uint
	Amount    decimal.Decimal
	Type      models.TransactionType
}

// SnapshotOf 取交易当前的余额影响快照
func SnapshotOf(t *models.Transaction) *Snapshot {
	if t == nil {
		return nil
	}
	return &Snapshot{AccountID: t.AccountID, Amount: t.Amount, Type: t.Type}
}

// Contribution 对账户余额的带符号影响
func (s *Snapshot) Contribution() decimal.Decimal {
	return s.Type.Contribution(s.Amount)
}

// ValidationInput 交易写入前的校验输入
type ValidationInput struct {
	Type     models.TransactionType
	Amount   decimal.Decimal
	Date     time.Time
	Account  *models.Account  // 目标账户（已加锁的当前状态）
	Category *models.Category // 所选类别
	// Previous 更新时为该交易已持久化的状态，创建时为 nil
	Previous *Snapshot
	// Today 当前日期，Date 按该值所在时区比较
	Today time.Time
}

// ValidateTransaction 校验一次交易写入（创建或更新），纯函数，无副作用
//
// 规则：金额 > 0；日期不晚于今天；类别类型与交易类型一致；
// 支出不得超过账户可用余额。可用余额在更新同一账户上的交易时先撤销旧交易的影响。
func ValidateTransaction(in ValidationInput) error {
	ve := &ValidationError{}

	amountOK := true
	switch {
	case !in.Amount.IsPositive():
		ve.Add("amount", CodeInvalidAmount, "交易金额必须大于 0")
		amountOK = false
	case !in.Amount.Equal(in.Amount.Truncate(2)):
		ve.Add("amount", CodeInvalidAmount, "交易金额最多保留两位小数")
		amountOK = false
	case in.Amount.GreaterThanOrEqual(maxAmount):
		ve.Add("amount", CodeInvalidAmount, "交易金额超出允许范围")
		amountOK = false
	}

	if in.Date.IsZero() {
		ve.Add("transaction_date", CodeRequired, "交易日期不能为空")
	} else if IsFutureDate(in.Date, in.Today) {
		ve.Add("transaction_date", CodeFutureDateNotAllowed, "交易日期不能晚于今天")
	}

	typeOK := in.Type.Valid()
	if !typeOK {
		ve.Add("transaction_type", CodeInvalidType, "交易类型必须为 income 或 expense")
	}

	if typeOK && in.Category != nil && string(in.Category.Type) != string(in.Type) {
		if in.Type == models.TransactionTypeIncome {
			ve.Add("category", CodeCategoryTypeMismatch, "收入交易必须选择收入类别")
		} else {
			ve.Add("category", CodeCategoryTypeMismatch, "支出交易必须选择支出类别")
		}
	}

	if amountOK && in.Type == models.TransactionTypeExpense && in.Account != nil {
		available := AvailableBalance(in.Account, in.Previous)
		if in.Amount.GreaterThan(available) {
			ve.Add("amount", CodeInsufficientBalance,
				fmt.Sprintf("账户余额不足，可用余额为 %s", available.StringFixed(2)))
		}
	}

	return ve.errOrNil()
}

// AvailableBalance 计算“假设该交易尚不存在”时账户的可用余额
//
// 仅当旧交易属于同一账户时才撤销其影响；换账户时新账户从未计入旧交易，直接使用当前余额。
func AvailableBalance(account *models.Account, previous *Snapshot) decimal.Decimal {
	available := account.Balance
	if previous != nil && previous.AccountID == account.ID {
		available = available.Sub(previous.Contribution())
	}
	return available
}

// IsFutureDate 比较日历日期（非时间点）：date 的年月日晚于 today 所在时区的当天时返回 true
//
// date 只取其自身的年月日，数据库 DATE 列读回的 UTC 零点不会因时区换算变成前一天。
func IsFutureDate(date, today time.Time) bool {
	dy, dm, dd := date.Date()
	ty, tm, td := today.Date()
	d := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return d.After(t)
}
