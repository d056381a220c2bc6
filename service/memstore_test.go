package service

import (
	"context"
	"errors"
	"sort"

	"moneyflow/models"

	"github.com/shopspring/decimal"
)

// memStore 内存实现的 LedgerStore，WithinTx 出错时恢复快照以模拟事务回滚
type memStore struct {
	accounts     map[uint]models.Account
	categories   map[uint]models.Category
	transactions map[uint]models.Transaction
	nextID       uint

	adjustErr   error
	adjustCalls int
}

func newMemStore() *memStore {
	return &memStore{
		accounts:     map[uint]models.Account{},
		categories:   map[uint]models.Category{},
		transactions: map[uint]models.Transaction{},
		nextID:       100,
	}
}

func (m *memStore) addAccount(ownerID uint, balance string) models.Account {
	m.nextID++
	b := decimal.RequireFromString(balance)
	a := models.Account{
		ID: m.nextID, UserID: ownerID, Name: "conta", Type: models.AccountTypeChecking,
		OpeningBalance: b, Balance: b, IsActive: true,
	}
	m.accounts[a.ID] = a
	return a
}

func (m *memStore) addCategory(ownerID uint, typ models.CategoryType) models.Category {
	m.nextID++
	c := models.Category{ID: m.nextID, UserID: ownerID, Name: string(typ), Type: typ, Color: models.DefaultCategoryColor}
	m.categories[c.ID] = c
	return c
}

func (m *memStore) balance(id uint) decimal.Decimal {
	return m.accounts[id].Balance
}

// expectedBalance opening + Σ signed
func (m *memStore) expectedBalance(id uint) decimal.Decimal {
	sum := m.accounts[id].OpeningBalance
	for _, t := range m.transactions {
		if t.AccountID == id {
			sum = sum.Add(t.SignedAmount())
		}
	}
	return sum
}

func (m *memStore) WithinTx(ctx context.Context, fn func(tx LedgerStore) error) error {
	accounts := cloneMap(m.accounts)
	categories := cloneMap(m.categories)
	transactions := cloneMap(m.transactions)
	nextID := m.nextID
	if err := fn(m); err != nil {
		m.accounts, m.categories, m.transactions, m.nextID = accounts, categories, transactions, nextID
		return err
	}
	return nil
}

func cloneMap[V any](in map[uint]V) map[uint]V {
	out := make(map[uint]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (m *memStore) AdjustBalance(ctx context.Context, accountID uint, delta decimal.Decimal) error {
	m.adjustCalls++
	if m.adjustErr != nil {
		return m.adjustErr
	}
	a, ok := m.accounts[accountID]
	if !ok {
		return errors.New("account row missing")
	}
	a.Balance = a.Balance.Add(delta)
	m.accounts[accountID] = a
	return nil
}

func (m *memStore) LockAccount(ctx context.Context, ownerID, accountID uint) (*models.Account, error) {
	a, ok := m.accounts[accountID]
	if !ok || a.UserID != ownerID {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *memStore) GetCategory(ctx context.Context, ownerID, categoryID uint) (*models.Category, error) {
	c, ok := m.categories[categoryID]
	if !ok || c.UserID != ownerID {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *memStore) owns(ownerID uint, t models.Transaction) bool {
	a, ok := m.accounts[t.AccountID]
	return ok && a.UserID == ownerID
}

func (m *memStore) GetTransaction(ctx context.Context, ownerID, id uint, lock bool) (*models.Transaction, error) {
	t, ok := m.transactions[id]
	if !ok || !m.owns(ownerID, t) {
		return nil, ErrNotFound
	}
	a := m.accounts[t.AccountID]
	c := m.categories[t.CategoryID]
	t.Account, t.Category = &a, &c
	return &t, nil
}

func (m *memStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	m.nextID++
	t.ID = m.nextID
	stored := *t
	stored.Account, stored.Category = nil, nil
	m.transactions[t.ID] = stored
	return nil
}

func (m *memStore) SaveTransaction(ctx context.Context, t *models.Transaction) error {
	if _, ok := m.transactions[t.ID]; !ok {
		return ErrNotFound
	}
	stored := *t
	stored.Account, stored.Category = nil, nil
	m.transactions[t.ID] = stored
	return nil
}

func (m *memStore) DeleteTransaction(ctx context.Context, id uint) error {
	delete(m.transactions, id)
	return nil
}

func (m *memStore) filtered(ownerID uint, f TransactionFilter) []models.Transaction {
	var out []models.Transaction
	for _, t := range m.transactions {
		if !m.owns(ownerID, t) {
			continue
		}
		if f.AccountID != 0 && t.AccountID != f.AccountID {
			continue
		}
		if f.CategoryID != 0 && t.CategoryID != f.CategoryID {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.DateFrom != nil && t.Date.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && t.Date.After(*f.DateTo) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (m *memStore) ListTransactions(ctx context.Context, ownerID uint, f TransactionFilter) ([]models.Transaction, int64, error) {
	all := m.filtered(ownerID, f)
	start := f.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + f.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (m *memStore) SumTransactions(ctx context.Context, ownerID uint, f TransactionFilter) (decimal.Decimal, decimal.Decimal, error) {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range m.filtered(ownerID, f) {
		if t.Type == models.TransactionTypeIncome {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense, nil
}
