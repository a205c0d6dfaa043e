package user

import "context"

type UserRepository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type OAuthAccountRepository interface {
	Save(ctx context.Context, a *OAuthAccount) error
	GetByProviderUserID(ctx context.Context, provider, providerUserID string) (*OAuthAccount, error)
}
