package models

import "time"

// UserModel is the persistence model for storefront accounts. PasswordHash is
// empty for accounts created through Google sign-in.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"not null;size:255;uniqueIndex:idx_users_email"`
	PasswordHash string `gorm:"size:255"`
	Name         string `gorm:"not null;size:100"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// OAuthAccountModel links a user to an external identity provider account.
type OAuthAccountModel struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"not null;index:idx_oauth_user"`
	Provider       string `gorm:"not null;size:50;uniqueIndex:idx_oauth_provider_user"`
	ProviderUserID string `gorm:"not null;size:255;uniqueIndex:idx_oauth_provider_user;column:provider_user_id"`
	Email          string `gorm:"size:255"`
	CreatedAt      time.Time
}

func (OAuthAccountModel) TableName() string {
	return "oauth_accounts"
}
