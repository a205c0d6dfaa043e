package usecases

import (
	"context"
	"strings"

	"rannaghore/internal/domain/user"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordUseCase struct {
	userRepo     user.UserRepository
	hasher       PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	// Every failure below reads the same, so the endpoint does not reveal
	// which emails have accounts.
	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Infow("login failed: unknown email")
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !u.IsActive() || !u.HasPassword() {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Infow("login failed: wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokenService.Generate(u.ID(), u.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &AuthResult{
		UserID:      u.ID(),
		Name:        u.Name(),
		Email:       u.Email(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
