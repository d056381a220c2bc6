package models

import "time"

// Profile 用户个人资料，注册时随用户一起创建
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	FullName  string    `json:"full_name" gorm:"size:200"`
	Phone     string    `json:"phone" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// DisplayName 优先显示全名，否则显示邮箱
func (p *Profile) DisplayName(user *User) string {
	if p != nil && p.FullName != "" {
		return p.FullName
	}
	if user == nil {
		return ""
	}
	if user.Email != "" {
		return user.Email
	}
	return user.Username
}
