package handler

import (
	"net/http"
	"time"

	"carmarket/internal/middleware"
	"carmarket/internal/models"
	"carmarket/internal/service"
	"carmarket/pkg/response"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls the session cookie written at login.
type CookieOptions struct {
	MaxAge time.Duration
	Secure bool
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
	cookie  CookieOptions
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{service: service, cookie: cookie}
}

// Signup godoc
// @Summary      Create an account
// @Description  Register with full name, email, password and an optional phone number
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.SignupRequest  true  "Signup details"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      409      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Signup(c.Request.Context(), &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Message(c, "User created successfully")
}

// Login godoc
// @Summary      Log in
// @Description  Verify credentials and set the HttpOnly session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  models.LoginResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, int(h.cookie.MaxAge.Seconds()))

	response.Success(c, models.LoginResponse{
		Message: "Login successful",
		User:    result.User,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Expire the session cookie. The token itself stays valid until it expires.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.Message(c, "Logged out")
}

// Protected godoc
// @Summary      Current session
// @Description  Return the claims of the verified session token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]auth.Claims
// @Failure      401  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /protected [get]
func (h *AuthHandler) Protected(c *gin.Context) {
	response.Success(c, gin.H{"user": middleware.GetClaims(c)})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.cookie.Secure, true)
}
