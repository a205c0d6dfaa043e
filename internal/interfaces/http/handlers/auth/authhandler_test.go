package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rannaghore/internal/application/user/usecases"
	"rannaghore/internal/interfaces/http/handlers/testutil"
	"rannaghore/internal/shared/errors"
)

type mockRegisterUC struct {
	result *usecases.AuthResult
	err    error
}

func (m *mockRegisterUC) Execute(_ context.Context, _ usecases.RegisterWithPasswordCommand) (*usecases.AuthResult, error) {
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.AuthResult
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, _ usecases.LoginWithPasswordCommand) (*usecases.AuthResult, error) {
	return m.result, m.err
}

type mockInitiateGoogleUC struct {
	result *usecases.InitiateGoogleLoginResult
	err    error
}

func (m *mockInitiateGoogleUC) Execute(_ context.Context, _ usecases.InitiateGoogleLoginCommand) (*usecases.InitiateGoogleLoginResult, error) {
	return m.result, m.err
}

type mockGoogleCallbackUC struct {
	result *usecases.AuthResult
	err    error
	gotCmd usecases.HandleGoogleCallbackCommand
}

func (m *mockGoogleCallbackUC) Execute(_ context.Context, cmd usecases.HandleGoogleCallbackCommand) (*usecases.AuthResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type testDeps struct {
	registerUC usecases.RegisterWithPasswordExecutor
	loginUC    usecases.LoginWithPasswordExecutor
	initiateUC usecases.InitiateGoogleLoginExecutor
	callbackUC usecases.HandleGoogleCallbackExecutor
}

func newTestAuthHandler(deps testDeps) *AuthHandler {
	return NewAuthHandler(deps.registerUC, deps.loginUC, deps.initiateUC, deps.callbackUC)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockUC := &mockRegisterUC{
		result: &usecases.AuthResult{
			UserID:      1,
			Name:        "Rahim Uddin",
			Email:       "rahim@example.com",
			AccessToken: "token",
			ExpiresIn:   3600,
		},
	}
	handler := newTestAuthHandler(testDeps{registerUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Name:     "Rahim Uddin",
		Email:    "rahim@example.com",
		Password: "correct-horse",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	handler := newTestAuthHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Name:     "Rahim Uddin",
		Email:    "rahim@example.com",
		Password: "short",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockUC := &mockRegisterUC{
		err: errors.NewConflictError("an account with this email already exists"),
	}
	handler := newTestAuthHandler(testDeps{registerUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Name:     "Rahim Uddin",
		Email:    "rahim@example.com",
		Password: "correct-horse",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{
		result: &usecases.AuthResult{
			UserID:      1,
			Email:       "rahim@example.com",
			AccessToken: "token",
			ExpiresIn:   3600,
		},
	}
	handler := newTestAuthHandler(testDeps{loginUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{
		Email:    "rahim@example.com",
		Password: "correct-horse",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mockUC := &mockLoginUC{
		err: errors.NewUnauthorizedError("invalid email or password"),
	}
	handler := newTestAuthHandler(testDeps{loginUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{
		Email:    "rahim@example.com",
		Password: "wrong",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GoogleLogin_RedirectsWithStateCookie(t *testing.T) {
	mockUC := &mockInitiateGoogleUC{
		result: &usecases.InitiateGoogleLoginResult{
			AuthURL: "https://accounts.google.com/o/oauth2/auth?state=abc",
			State:   "abc",
		},
	}
	handler := newTestAuthHandler(testDeps{initiateUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/google", nil)

	handler.GoogleLogin(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abc", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, stateCookieName, cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_GoogleCallback_MissingStateCookie(t *testing.T) {
	handler := newTestAuthHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/google/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"code": "authcode", "state": "abc"})

	handler.GoogleCallback(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GoogleCallback_Success(t *testing.T) {
	mockUC := &mockGoogleCallbackUC{
		result: &usecases.AuthResult{
			UserID:      7,
			Email:       "rahim@example.com",
			AccessToken: "token",
			ExpiresIn:   3600,
		},
	}
	handler := newTestAuthHandler(testDeps{callbackUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/google/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"code": "authcode", "state": "abc"})
	c.Request.AddCookie(&http.Cookie{Name: stateCookieName, Value: "abc"})

	handler.GoogleCallback(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "authcode", mockUC.gotCmd.Code)
	assert.Equal(t, "abc", mockUC.gotCmd.State)
	assert.Equal(t, "abc", mockUC.gotCmd.ExpectedState)
}

func TestAuthHandler_GoogleCallback_StateMismatch(t *testing.T) {
	mockUC := &mockGoogleCallbackUC{
		err: errors.NewUnauthorizedError("invalid oauth state"),
	}
	handler := newTestAuthHandler(testDeps{callbackUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/google/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"code": "authcode", "state": "tampered"})
	c.Request.AddCookie(&http.Cookie{Name: stateCookieName, Value: "abc"})

	handler.GoogleCallback(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
