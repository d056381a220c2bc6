package models

import (
	"regexp"
	"time"
)

// CategoryType 类别类型，与 TransactionType 取值一致
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// DefaultCategoryColor 默认类别颜色
const DefaultCategoryColor = "#667eea"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Valid 是否为合法的类别类型
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// IsHexColor 校验 #rrggbb 颜色格式
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// Category 交易类别（每个用户独立维护，名称在用户内唯一）
type Category struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	UserID    uint         `json:"user_id" gorm:"not null;uniqueIndex:idx_categories_user_name,priority:1;index:idx_categories_user_type,priority:1"`
	Name      string       `json:"name" gorm:"size:50;not null;uniqueIndex:idx_categories_user_name,priority:2"`
	Type      CategoryType `json:"category_type" gorm:"column:category_type;size:10;not null;index:idx_categories_user_type,priority:2"`
	Color     string       `json:"color" gorm:"size:7;not null;default:#667eea"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	User      User         `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string {
	return "categories"
}

// DefaultCategory 新用户的默认类别
type DefaultCategory struct {
	Name  string
	Type  CategoryType
	Color string
}

// GetDefaultCategories 新用户注册时自动创建的类别
func GetDefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{"工资收入", CategoryTypeIncome, "#10b981"},
		{"兼职收入", CategoryTypeIncome, "#059669"},
		{"理财收益", CategoryTypeIncome, "#34d399"},
		{"其他收入", CategoryTypeIncome, "#6ee7b7"},
		{"餐饮美食", CategoryTypeExpense, "#ef4444"},
		{"交通出行", CategoryTypeExpense, "#f59e0b"},
		{"住房物业", CategoryTypeExpense, "#8b5cf6"},
		{"医疗健康", CategoryTypeExpense, "#ec4899"},
		{"教育培训", CategoryTypeExpense, "#3b82f6"},
		{"休闲娱乐", CategoryTypeExpense, "#14b8a6"},
		{"日常购物", CategoryTypeExpense, "#f97316"},
		{"生活缴费", CategoryTypeExpense, "#6366f1"},
		{"其他支出", CategoryTypeExpense, "#64748b"},
	}
}
