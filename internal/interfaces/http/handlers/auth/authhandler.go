package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rannaghore/internal/application/user/usecases"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

// stateCookie carries the OAuth state between the redirect and the
// callback. Ten minutes comfortably covers the Google consent screen.
const (
	stateCookieName   = "oauth_state"
	stateCookieMaxAge = 600
)

type AuthHandler struct {
	registerUC       usecases.RegisterWithPasswordExecutor
	loginUC          usecases.LoginWithPasswordExecutor
	initiateGoogleUC usecases.InitiateGoogleLoginExecutor
	googleCallbackUC usecases.HandleGoogleCallbackExecutor
	logger           logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterWithPasswordExecutor,
	loginUC usecases.LoginWithPasswordExecutor,
	initiateGoogleUC usecases.InitiateGoogleLoginExecutor,
	googleCallbackUC usecases.HandleGoogleCallbackExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		initiateGoogleUC: initiateGoogleUC,
		googleCallbackUC: googleCallbackUC,
		logger:           logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", result)
}

// Logout handles POST /auth/logout. Access tokens are stateless, so logout
// is the client discarding its token; the endpoint exists so the frontend
// has a single place to hook the flow.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// GoogleLogin handles GET /auth/google. It stores the state in a cookie and
// redirects the browser to the Google consent screen.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	result, err := h.initiateGoogleUC.Execute(c.Request.Context(), usecases.InitiateGoogleLoginCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, result.State, stateCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, result.AuthURL)
}

// GoogleCallback handles GET /auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	expectedState, err := c.Cookie(stateCookieName)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing login state, please retry the sign-in")
		return
	}

	// One shot per state.
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	result, err := h.googleCallbackUC.Execute(c.Request.Context(), usecases.HandleGoogleCallbackCommand{
		Code:          c.Query("code"),
		State:         c.Query("state"),
		ExpectedState: expectedState,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", result)
}
