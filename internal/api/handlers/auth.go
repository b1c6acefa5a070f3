package handlers

import (
	"net/http"
	"time"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls the session cookie
type CookieOptions struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// AuthHandler handles registration, sign-in and one-time codes
type AuthHandler struct {
	service service.AccountServiceInterface
	cookie  CookieOptions
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.AccountServiceInterface, cookie CookieOptions) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "lpg_session"
	}
	return &AuthHandler{service: service, cookie: cookie}
}

// ForgotPasswordRequest asks for a password reset code
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"owner@gasagency.in"`
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *service.SessionResponse) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(h.cookie.TTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, session.Token, maxAge, "/", "", h.cookie.Secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}

// Register handles POST /api/auth/register
// @Summary Register a distributor
// @Description Create an unverified admin account and send an email verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterAdminRequest true "Registration data"
// @Success 201 {object} service.UserResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.service.RegisterAdmin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, user)
}

// Login handles POST /api/auth/login
// @Summary Sign in with email and password
// @Description Check credentials, set the httpOnly session cookie and return the profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} service.SessionResponse "Signed in"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 403 {object} ErrorResponse "Email not verified or account suspended"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setSessionCookie(c, session)
	respondOK(c, http.StatusOK, session)
}

// Logout handles POST /api/auth/logout
// @Summary Sign out
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Signed out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	respondMessage(c, http.StatusOK, "logged out")
}

// VerifyEmail handles POST /api/auth/verify-email
// @Summary Verify email address
// @Description Consume a VERIFY_EMAIL code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.OTPVerifyRequest true "Email and code"
// @Success 200 {object} service.UserResponse "Email verified"
// @Failure 400 {object} map[string]interface{} "Code expired or invalid"
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req service.OTPVerifyRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.service.VerifyEmail(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, user)
}

// ForgotPassword handles POST /api/auth/forgot-password
// @Summary Request a password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} service.OTPIssue "Code sent if the account exists"
// @Failure 400 {object} ErrorResponse "Invalid request or cooldown active"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	issue, err := h.service.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, issue)
}

// ResetPassword handles POST /api/auth/reset-password
// @Summary Reset password with a code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} map[string]interface{} "Password updated"
// @Failure 400 {object} map[string]interface{} "Code expired or invalid"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "password updated")
}

// Me handles GET /api/auth/me
// @Summary Current user
// @Description Profile and module access map of the caller
// @Tags auth
// @Produce json
// @Success 200 {object} service.MeResponse "Profile"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, _ := auth.GetIdentity(c)
	me, err := h.service.Me(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, me)
}

// RequestOTP handles POST /api/otp/request
// @Summary Request a one-time code
// @Description Send a code for VERIFY_EMAIL, RESET_PASSWORD or LOGIN (default)
// @Tags otp
// @Accept json
// @Produce json
// @Param request body service.OTPRequest true "Email and purpose"
// @Success 200 {object} service.OTPIssue "Code sent if the account exists"
// @Failure 400 {object} ErrorResponse "Invalid request or cooldown active"
// @Router /otp/request [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req service.OTPRequest
	if !bindJSON(c, &req) {
		return
	}
	issue, err := h.service.RequestOTP(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, issue)
}

// VerifyOTP handles POST /api/otp/verify
// @Summary Verify a one-time code
// @Description LOGIN codes open a session and set the cookie
// @Tags otp
// @Accept json
// @Produce json
// @Param request body service.OTPVerifyRequest true "Email, code and purpose"
// @Success 200 {object} service.OTPVerifyResponse "Code accepted"
// @Failure 400 {object} map[string]interface{} "Code expired or invalid"
// @Router /otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req service.OTPVerifyRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.VerifyOTP(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Session != nil {
		h.setSessionCookie(c, result.Session)
	}
	respondOK(c, http.StatusOK, result)
}
