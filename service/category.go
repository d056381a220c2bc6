package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"moneyflow/logger"
	"moneyflow/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryInput 创建或整体修改类别的输入
type CategoryInput struct {
	Name  string
	Type  models.CategoryType
	Color string
}

// CategoryService 类别管理
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService 创建类别服务
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// Create 创建类别，名称在同一用户下唯一
func (s *CategoryService) Create(ctx context.Context, ownerID uint, in CategoryInput) (*models.Category, error) {
	in, err := s.normalize(ctx, ownerID, 0, in)
	if err != nil {
		return nil, err
	}

	category := &models.Category{UserID: ownerID, Name: in.Name, Type: in.Type, Color: in.Color}
	if err := s.db.WithContext(ctx).Omit("User").Create(category).Error; err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Uint("category_id", category.ID).Str("name", category.Name).Msg("类别已创建")
	return category, nil
}

// Update 修改类别
//
// 已有交易引用的类别修改类型会让这些交易与类别类型不一致，因此此时拒绝修改类型。
func (s *CategoryService) Update(ctx context.Context, ownerID, id uint, in CategoryInput) (*models.Category, error) {
	category, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	in, err = s.normalize(ctx, ownerID, id, in)
	if err != nil {
		return nil, err
	}

	if in.Type != category.Type {
		count, err := s.countTransactions(ctx, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, newFieldError("category_type", CodeInvalid, "类别已有交易，不能修改类型")
		}
	}

	err = s.db.WithContext(ctx).Model(category).Updates(map[string]interface{}{
		"name":          in.Name,
		"category_type": in.Type,
		"color":         in.Color,
	}).Error
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, ownerID, id)
}

// Delete 删除类别；存在交易时返回 ErrProtectedDeletion
func (s *CategoryService) Delete(ctx context.Context, ownerID, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, ownerID).
			First(&category).Error; err != nil {
			return recordNotFound(err)
		}

		var count int64
		if err := tx.Model(&models.Transaction{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrProtectedDeletion
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Uint("category_id", id).Msg("类别已删除")
	return nil
}

// Get 获取当前用户的类别
func (s *CategoryService) Get(ctx context.Context, ownerID, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&category).Error; err != nil {
		return nil, recordNotFound(err)
	}
	return &category, nil
}

// List 按类型、名称排序列出类别，typ 为空时返回全部
func (s *CategoryService) List(ctx context.Context, ownerID uint, typ models.CategoryType) ([]models.Category, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if typ != "" {
		query = query.Where("category_type = ?", typ)
	}
	categories := []models.Category{}
	if err := query.Order("category_type ASC").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// SeedDefaults 为新用户创建默认类别，db 可以是外层事务
func SeedDefaults(db *gorm.DB, userID uint) error {
	defaults := models.GetDefaultCategories()
	categories := make([]models.Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, models.Category{UserID: userID, Name: d.Name, Type: d.Type, Color: d.Color})
	}
	return db.Omit("User").Create(&categories).Error
}

func (s *CategoryService) normalize(ctx context.Context, ownerID, id uint, in CategoryInput) (CategoryInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Color = strings.TrimSpace(in.Color)
	if in.Color == "" {
		in.Color = models.DefaultCategoryColor
	}

	ve := &ValidationError{}
	switch n := utf8.RuneCountInString(in.Name); {
	case n == 0:
		ve.Add("name", CodeRequired, "类别名称不能为空")
	case n < 3:
		ve.Add("name", CodeInvalid, "类别名称至少 3 个字符")
	case n > 50:
		ve.Add("name", CodeInvalid, "类别名称不能超过 50 个字符")
	}
	if !in.Type.Valid() {
		ve.Add("category_type", CodeInvalidChoice, "无效的类别类型")
	}
	if !models.IsHexColor(in.Color) {
		ve.Add("color", CodeInvalid, "颜色格式应为 #RRGGBB")
	}
	if ve.HasField("name") {
		return in, ve
	}

	var count int64
	query := s.db.WithContext(ctx).Model(&models.Category{}).Where("user_id = ? AND name = ?", ownerID, in.Name)
	if id != 0 {
		query = query.Where("id <> ?", id)
	}
	if err := query.Count(&count).Error; err != nil {
		return in, err
	}
	if count > 0 {
		ve.Add("name", CodeInvalid, ErrDuplicateName.Error())
	}
	return in, ve.errOrNil()
}

func (s *CategoryService) countTransactions(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
