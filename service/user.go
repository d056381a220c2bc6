package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"moneyflow/logger"
	"moneyflow/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// WelcomeMailer 注册成功后发送欢迎邮件
type WelcomeMailer interface {
	Enabled() bool
	SendWelcomeEmail(toEmail, name string) error
}

// RegisterInput 注册输入
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
}

// ProfileInput 修改个人资料，nil 字段保持不变
type ProfileInput struct {
	FullName *string
	Phone    *string
	Email    *string
}

// UserService 用户注册、登录与个人资料
type UserService struct {
	db     *gorm.DB
	mailer WelcomeMailer
}

// NewUserService 创建用户服务，mailer 可以为 nil
func NewUserService(db *gorm.DB, mailer WelcomeMailer) *UserService {
	return &UserService{db: db, mailer: mailer}
}

// Register 在同一事务中创建用户、个人资料和默认类别
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	ve := &ValidationError{}
	if n := utf8.RuneCountInString(in.Username); n < 3 || n > 50 {
		ve.Add("username", CodeInvalid, "用户名长度应为 3-50 个字符")
	}
	if len(in.Password) < 6 {
		ve.Add("password", CodeInvalid, "密码至少 6 位")
	}
	if err := ve.errOrNil(); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	taken, err := exists(db.Model(&models.User{}).Where("username = ?", in.Username))
	if err != nil {
		return nil, err
	}
	if taken {
		ve.Add("username", CodeInvalid, "用户名已存在")
	}
	if in.Email != "" {
		taken, err := exists(db.Model(&models.User{}).Where("email = ?", in.Email))
		if err != nil {
			return nil, err
		}
		if taken {
			ve.Add("email", CodeInvalid, "该邮箱已被注册")
		}
	}
	if err := ve.errOrNil(); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: in.Username,
		Password: string(hashedPassword),
		Email:    in.Email,
		Status:   models.UserStatusActive,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &models.Profile{UserID: user.ID, FullName: in.FullName}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return SeedDefaults(tx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("用户已注册")

	if s.mailer != nil && s.mailer.Enabled() && user.Email != "" {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.Profile.DisplayName(user)); err != nil {
			log.Warn().Err(err).Uint("user_id", user.ID).Msg("欢迎邮件发送失败")
		}
	}
	return user, nil
}

// Authenticate 使用用户名或邮箱登录
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	login = strings.TrimSpace(login)
	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", login, strings.ToLower(login)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, ErrUserLocked
	}
	return &user, nil
}

// GetProfile 获取用户及其个人资料
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Preload("Profile").First(&user, userID).Error; err != nil {
		return nil, recordNotFound(err)
	}
	return &user, nil
}

// UpdateProfile 修改全名、电话和邮箱；没有个人资料时补建
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	ve := &ValidationError{}
	if in.FullName != nil && utf8.RuneCountInString(strings.TrimSpace(*in.FullName)) > 200 {
		ve.Add("full_name", CodeInvalid, "全名不能超过 200 个字符")
	}
	if in.Phone != nil && len(strings.TrimSpace(*in.Phone)) > 20 {
		ve.Add("phone", CodeInvalid, "电话不能超过 20 个字符")
	}
	var email string
	if in.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*in.Email))
		if email != "" && email != user.Email {
			taken, err := exists(s.db.WithContext(ctx).Model(&models.User{}).Where("email = ? AND id <> ?", email, userID))
			if err != nil {
				return nil, err
			}
			if taken {
				ve.Add("email", CodeInvalid, "该邮箱已被注册")
			}
		}
	}
	if err := ve.errOrNil(); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.Email != nil && email != user.Email {
			if err := tx.Model(user).Update("email", email).Error; err != nil {
				return err
			}
		}

		profile := user.Profile
		if profile == nil {
			profile = &models.Profile{UserID: userID}
		}
		if in.FullName != nil {
			profile.FullName = strings.TrimSpace(*in.FullName)
		}
		if in.Phone != nil {
			profile.Phone = strings.TrimSpace(*in.Phone)
		}
		return tx.Save(profile).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// ChangePassword 校验旧密码后修改密码
func (s *UserService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return newFieldError("new_password", CodeInvalid, "密码至少 6 位")
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return recordNotFound(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&user).Update("password", string(hashedPassword)).Error
}

// DeleteUser 删除用户及其账户、类别和个人资料；任一账户存在交易时拒绝删除
func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return recordNotFound(err)
		}

		hasTransactions, err := exists(tx.Model(&models.Transaction{}).
			Joins("JOIN accounts ON accounts.id = transactions.account_id").
			Where("accounts.user_id = ?", userID))
		if err != nil {
			return err
		}
		if hasTransactions {
			return ErrProtectedDeletion
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Account{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Uint("user_id", userID).Msg("用户已删除")
	return nil
}

func exists(query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
