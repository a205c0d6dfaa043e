package usecases

import (
	"context"
	"strings"

	"rannaghore/internal/domain/user"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterWithPasswordCommand struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is shared by every flow that ends with a signed-in user.
type AuthResult struct {
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type RegisterWithPasswordUseCase struct {
	userRepo     user.UserRepository
	hasher       PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*AuthResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register command", "error", err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}
	if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	u, err := user.NewUser(email, hash, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		return nil, errors.NewInternalError("failed to register")
	}

	token, expiresIn, err := uc.tokenService.Generate(u.ID(), u.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	uc.logger.Infow("user registered", "user_id", u.ID())

	return &AuthResult{
		UserID:      u.ID(),
		Name:        u.Name(),
		Email:       u.Email(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

func (uc *RegisterWithPasswordUseCase) validateCommand(cmd RegisterWithPasswordCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("name is required")
	}
	if strings.TrimSpace(cmd.Email) == "" {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
