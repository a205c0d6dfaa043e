package usecases

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"rannaghore/internal/domain/user"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

type InitiateGoogleLoginCommand struct{}

type InitiateGoogleLoginResult struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}

type InitiateGoogleLoginUseCase struct {
	provider OAuthProvider
	logger   logger.Interface
}

func NewInitiateGoogleLoginUseCase(provider OAuthProvider, logger logger.Interface) *InitiateGoogleLoginUseCase {
	return &InitiateGoogleLoginUseCase{
		provider: provider,
		logger:   logger,
	}
}

// Execute starts the Google sign-in flow. The caller stores the returned
// state and must present it back on the callback.
func (uc *InitiateGoogleLoginUseCase) Execute(ctx context.Context, _ InitiateGoogleLoginCommand) (*InitiateGoogleLoginResult, error) {
	state, err := generateState()
	if err != nil {
		uc.logger.Errorw("failed to generate oauth state", "error", err)
		return nil, errors.NewInternalError("failed to start Google login")
	}

	return &InitiateGoogleLoginResult{
		AuthURL: uc.provider.AuthURL(state),
		State:   state,
	}, nil
}

func generateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

type HandleGoogleCallbackCommand struct {
	Code          string
	State         string
	ExpectedState string
}

type HandleGoogleCallbackUseCase struct {
	userRepo     user.UserRepository
	oauthRepo    user.OAuthAccountRepository
	provider     OAuthProvider
	tokenService TokenService
	logger       logger.Interface
}

func NewHandleGoogleCallbackUseCase(
	userRepo user.UserRepository,
	oauthRepo user.OAuthAccountRepository,
	provider OAuthProvider,
	tokenService TokenService,
	logger logger.Interface,
) *HandleGoogleCallbackUseCase {
	return &HandleGoogleCallbackUseCase{
		userRepo:     userRepo,
		oauthRepo:    oauthRepo,
		provider:     provider,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Execute completes the Google sign-in flow. First-time Google users get a
// storefront account created from their profile; returning ones are matched
// through their linked account, falling back to the verified email.
func (uc *HandleGoogleCallbackUseCase) Execute(ctx context.Context, cmd HandleGoogleCallbackCommand) (*AuthResult, error) {
	if cmd.Code == "" {
		return nil, errors.NewValidationError("authorization code is required")
	}
	if cmd.State == "" || cmd.State != cmd.ExpectedState {
		return nil, errors.NewUnauthorizedError("invalid oauth state")
	}

	profile, err := uc.provider.Exchange(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to exchange oauth code", "error", err)
		return nil, errors.NewUnauthorizedError("Google login failed")
	}

	u, err := uc.resolveUser(ctx, profile)
	if err != nil {
		return nil, err
	}

	token, expiresIn, err := uc.tokenService.Generate(u.ID(), u.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("user logged in with Google", "user_id", u.ID())

	return &AuthResult{
		UserID:      u.ID(),
		Name:        u.Name(),
		Email:       u.Email(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

func (uc *HandleGoogleCallbackUseCase) resolveUser(ctx context.Context, profile *GoogleProfile) (*user.User, error) {
	if account, err := uc.oauthRepo.GetByProviderUserID(ctx, user.ProviderGoogle, profile.ID); err == nil && account != nil {
		u, err := uc.userRepo.GetByID(ctx, account.UserID())
		if err != nil {
			uc.logger.Errorw("oauth account references missing user", "user_id", account.UserID(), "error", err)
			return nil, errors.NewInternalError("failed to log in")
		}
		return u, nil
	}

	// No linked account yet. Attach to an existing user with the same email,
	// or create a fresh password-less account.
	u, err := uc.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		u, err = user.NewUser(profile.Email, "", profile.Name)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Save(ctx, u); err != nil {
			uc.logger.Errorw("failed to create user from Google profile", "error", err)
			return nil, errors.NewInternalError("failed to log in")
		}
	}

	account, err := user.NewOAuthAccount(u.ID(), user.ProviderGoogle, profile.ID, profile.Email)
	if err != nil {
		return nil, errors.NewInternalError("failed to log in")
	}
	if err := uc.oauthRepo.Save(ctx, account); err != nil {
		uc.logger.Errorw("failed to link Google account", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	return u, nil
}
