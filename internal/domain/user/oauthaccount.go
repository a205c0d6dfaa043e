package user

import (
	"fmt"
	"time"
)

const ProviderGoogle = "google"

// OAuthAccount links a storefront user to an external identity provider
// account.
type OAuthAccount struct {
	id             uint
	userID         uint
	provider       string
	providerUserID string
	email          string
	createdAt      time.Time
}

func NewOAuthAccount(userID uint, provider, providerUserID, email string) (*OAuthAccount, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if providerUserID == "" {
		return nil, fmt.Errorf("provider user ID is required")
	}

	return &OAuthAccount{
		userID:         userID,
		provider:       provider,
		providerUserID: providerUserID,
		email:          email,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructOAuthAccount(
	id uint,
	userID uint,
	provider string,
	providerUserID string,
	email string,
	createdAt time.Time,
) (*OAuthAccount, error) {
	if id == 0 {
		return nil, fmt.Errorf("OAuth account ID cannot be zero")
	}

	return &OAuthAccount{
		id:             id,
		userID:         userID,
		provider:       provider,
		providerUserID: providerUserID,
		email:          email,
		createdAt:      createdAt,
	}, nil
}

func (a *OAuthAccount) ID() uint {
	return a.id
}

func (a *OAuthAccount) UserID() uint {
	return a.userID
}

func (a *OAuthAccount) Provider() string {
	return a.provider
}

func (a *OAuthAccount) ProviderUserID() string {
	return a.providerUserID
}

func (a *OAuthAccount) Email() string {
	return a.email
}

func (a *OAuthAccount) CreatedAt() time.Time {
	return a.createdAt
}

func (a *OAuthAccount) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("OAuth account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("OAuth account ID cannot be zero")
	}
	a.id = id
	return nil
}
