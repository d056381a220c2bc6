package models

import (
	"time"
)

const (
	// UserStatusLocked 锁定：不可登录
	UserStatusLocked = "locked"
	// UserStatusActive 正常：可登录
	UserStatusActive = "active"
)

// User 用户模型
// 删除用户时级联删除其账户、类别与个人资料（见 service.UserService.DeleteUser）
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:100;index"`
	Status    string    `json:"status" gorm:"size:20;default:active;index"` // 用户状态：locked/active
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Profile   *Profile  `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}

// IsActive 是否允许登录
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
