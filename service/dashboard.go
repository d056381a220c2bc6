package service

import (
	"context"
	"time"

	"moneyflow/models"
	"moneyflow/money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTotal 某类别在统计周期内的合计
type CategoryTotal struct {
	CategoryID uint            `json:"category_id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Formatted  string          `json:"formatted"`
}

// Dashboard 首页汇总
type Dashboard struct {
	CurrentMonth       string               `json:"current_month"` // 2024-06
	TotalBalance       decimal.Decimal      `json:"total_balance"`
	ActiveAccounts     int64                `json:"active_accounts"`
	MonthIncome        decimal.Decimal      `json:"month_income"`
	MonthExpense       decimal.Decimal      `json:"month_expense"`
	MonthBalance       decimal.Decimal      `json:"month_balance"`
	Formatted          map[string]string    `json:"formatted"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
	IncomeByCategory   []CategoryTotal      `json:"income_by_category"`
	ExpensesByCategory []CategoryTotal      `json:"expenses_by_category"`
}

// DashboardService 汇总当前用户的余额、本月收支和最近交易
type DashboardService struct {
	db          *gorm.DB
	loc         *time.Location
	locale      money.Locale
	recentLimit int
	now         func() time.Time
}

// NewDashboardService 创建首页汇总服务
func NewDashboardService(db *gorm.DB, loc *time.Location, locale money.Locale, recentLimit int) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	if recentLimit <= 0 {
		recentLimit = 10
	}
	return &DashboardService{db: db, loc: loc, locale: locale, recentLimit: recentLimit, now: time.Now}
}

// Summary 生成首页汇总
func (s *DashboardService) Summary(ctx context.Context, userID uint) (*Dashboard, error) {
	now := s.now().In(s.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
	db := s.db.WithContext(ctx)

	d := &Dashboard{CurrentMonth: now.Format("2006-01")}

	if err := db.Model(&models.Account{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("user_id = ?", userID).
		Row().Scan(&d.TotalBalance); err != nil {
		return nil, err
	}

	if err := db.Model(&models.Account{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&d.ActiveAccounts).Error; err != nil {
		return nil, err
	}

	var err error
	if d.IncomeByCategory, err = s.byCategory(db, userID, models.TransactionTypeIncome, monthStart); err != nil {
		return nil, err
	}
	if d.ExpensesByCategory, err = s.byCategory(db, userID, models.TransactionTypeExpense, monthStart); err != nil {
		return nil, err
	}
	d.MonthIncome = sumTotals(d.IncomeByCategory)
	d.MonthExpense = sumTotals(d.ExpensesByCategory)
	d.MonthBalance = d.MonthIncome.Sub(d.MonthExpense)

	d.RecentTransactions = []models.Transaction{}
	if err := db.Model(&models.Transaction{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.user_id = ?", userID).
		Preload("Account").Preload("Category").
		Order("transactions.transaction_date DESC").
		Order("transactions.created_at DESC").
		Limit(s.recentLimit).
		Find(&d.RecentTransactions).Error; err != nil {
		return nil, err
	}

	d.Formatted = map[string]string{
		"total_balance": money.Format(d.TotalBalance, s.locale),
		"month_income":  money.Format(d.MonthIncome, s.locale),
		"month_expense": money.Format(d.MonthExpense, s.locale),
		"month_balance": money.Format(d.MonthBalance, s.locale),
	}
	return d, nil
}

// byCategory 本月按类别合计，金额从大到小
func (s *DashboardService) byCategory(db *gorm.DB, userID uint, typ models.TransactionType, monthStart string) ([]CategoryTotal, error) {
	totals := []CategoryTotal{}
	err := db.Model(&models.Transaction{}).
		Select("categories.id AS category_id, categories.name AS name, categories.color AS color, SUM(transactions.amount) AS total").
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("accounts.user_id = ? AND transactions.transaction_type = ? AND transactions.transaction_date >= ?", userID, typ, monthStart).
		Group("categories.id, categories.name, categories.color").
		Order("total DESC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	for i := range totals {
		totals[i].Formatted = money.Format(totals[i].Total, s.locale)
	}
	return totals, nil
}

func sumTotals(totals []CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}
	return sum
}
