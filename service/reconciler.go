package service

import (
	"context"
	"fmt"
	"sort"

	"moneyflow/logger"

	"github.com/shopspring/decimal"
)

// Adjustment 对单个账户的余额增量
type Adjustment struct {
	AccountID uint
	Delta     decimal.Decimal
}

// Reconciler 在交易写入的同一事务内增量维护 Account.balance
//
// 不变量：balance == opening_balance + Σ(收入) - Σ(支出)。
type Reconciler struct{}

// NewReconciler 创建余额调整器
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Plan 计算一次写入需要的余额调整
//
//   - 创建：prev 为 nil，对新账户施加新交易的影响
//   - 删除：next 为 nil，撤销旧交易在旧账户上的影响
//   - 更新：先撤销旧影响再施加新影响，同一账户合并为一个净增量
//
// 净增量为 0 的账户被省略；结果按账户 ID 升序，保证加锁顺序一致。
func (r *Reconciler) Plan(prev, next *Snapshot) []Adjustment {
	deltas := make(map[uint]decimal.Decimal, 2)
	if prev != nil {
		deltas[prev.AccountID] = deltas[prev.AccountID].Sub(prev.Contribution())
	}
	if next != nil {
		deltas[next.AccountID] = deltas[next.AccountID].Add(next.Contribution())
	}

	out := make([]Adjustment, 0, len(deltas))
	for id, d := range deltas {
		if d.IsZero() {
			continue
		}
		out = append(out, Adjustment{AccountID: id, Delta: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out
}

// Apply 执行 Plan 得到的调整；任何失败都包装为 ErrReconciliation 返回，由调用方回滚整个事务
func (r *Reconciler) Apply(ctx context.Context, store BalanceAdjuster, prev, next *Snapshot) error {
	log := logger.FromContext(ctx)
	for _, adj := range r.Plan(prev, next) {
		if err := store.AdjustBalance(ctx, adj.AccountID, adj.Delta); err != nil {
			log.Error().Err(err).
				Uint("account_id", adj.AccountID).
				Str("delta", adj.Delta.StringFixed(2)).
				Msg("更新账户余额失败")
			return fmt.Errorf("%w: account %d: %v", ErrReconciliation, adj.AccountID, err)
		}
		log.Debug().
			Uint("account_id", adj.AccountID).
			Str("delta", adj.Delta.StringFixed(2)).
			Msg("账户余额已调整")
	}
	return nil
}
