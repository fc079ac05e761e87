package httpHandler

import (
	"billscan-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.AuthUseCase
}

func NewAuthHandler(useCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type loginRequest struct {
	// Clients send email_or_username; older ones send email. Either may
	// hold an email address or a username.
	EmailOrUsername string `json:"email_or_username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	identifier := req.EmailOrUsername
	if identifier == "" {
		identifier = req.Email
	}

	result, err := h.useCase.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is required"})
		return
	}

	result, err := h.useCase.Signup(c.Request.Context(), usecases.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		FullName: req.FullName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{"user": result.User}
	if result.Warning != "" {
		body["warning"] = result.Warning
	}
	c.JSON(http.StatusCreated, body)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is required"})
		return
	}

	token, err := h.useCase.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	// The token belongs in an email; returning it in the body is a
	// development convenience until mail delivery exists.
	c.JSON(http.StatusOK, gin.H{
		"message": "Password reset token created",
		"token":   token,
		"note":    "In production, this token would be sent via email",
	})
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is required"})
		return
	}

	if err := h.useCase.ConsumePasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
