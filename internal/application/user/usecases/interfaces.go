package usecases

import "context"

// PasswordHasher abstracts bcrypt so usecases stay testable.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenService issues signed access tokens for authenticated users.
type TokenService interface {
	Generate(userID uint, email string) (string, int64, error)
}

// GoogleProfile is the subset of the Google userinfo response the storefront
// cares about.
type GoogleProfile struct {
	ID    string
	Email string
	Name  string
}

// OAuthProvider wraps the OAuth2 authorization-code flow against an external
// identity provider.
type OAuthProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*GoogleProfile, error)
}

type RegisterWithPasswordExecutor interface {
	Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*AuthResult, error)
}

type LoginWithPasswordExecutor interface {
	Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*AuthResult, error)
}

type InitiateGoogleLoginExecutor interface {
	Execute(ctx context.Context, cmd InitiateGoogleLoginCommand) (*InitiateGoogleLoginResult, error)
}

type HandleGoogleCallbackExecutor interface {
	Execute(ctx context.Context, cmd HandleGoogleCallbackCommand) (*AuthResult, error)
}
