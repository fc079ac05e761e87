package usecases

import (
	"billscan-server/auth"
	"billscan-server/entities"
	"billscan-server/repositories"
	"billscan-server/security"
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 6
	minUsernameLength = 3

	// Reset tokens live for a fixed sliding window from the request.
	resetTokenTTL = time.Hour

	accessTokenTTL = 24 * time.Hour
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type AuthUseCase struct {
	users     repositories.UserRepository
	tokens    repositories.PasswordResetTokenRepository
	settings  repositories.SettingsRepository
	jwtSecret []byte
}

func NewAuthUseCase(users repositories.UserRepository, tokens repositories.PasswordResetTokenRepository, settings repositories.SettingsRepository, jwtSecret []byte) *AuthUseCase {
	return &AuthUseCase{
		users:     users,
		tokens:    tokens,
		settings:  settings,
		jwtSecret: jwtSecret,
	}
}

type LoginResult struct {
	User  *entities.User
	Token string
}

// Login authenticates an active user by email or username. Unknown
// identifier and wrong password both return ErrInvalidCredentials so the
// response never reveals which one was wrong.
func (uc *AuthUseCase) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, validationErrorf("Email/username and password are required")
	}

	user, err := uc.users.GetActiveByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := uc.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	token, err := auth.GenerateToken(user.ID, uc.jwtSecret, accessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

type SignupInput struct {
	Email    string
	Password string
	Username string
	FullName string
}

type SignupResult struct {
	User *entities.User
	// Warning is set when the account exists but its settings row could
	// not be created (best-effort signup).
	Warning string
}

// Signup creates a user plus a default settings row. The settings insert is
// best-effort: when it fails the user stays committed and the result carries
// a warning instead of an error.
func (uc *AuthUseCase) Signup(ctx context.Context, in SignupInput) (*SignupResult, error) {
	email := strings.TrimSpace(in.Email)
	username := strings.TrimSpace(in.Username)
	fullName := strings.TrimSpace(in.FullName)

	if email == "" || in.Password == "" {
		return nil, validationErrorf("Email and password are required")
	}
	if username == "" {
		return nil, validationErrorf("Username is required")
	}
	if fullName == "" {
		return nil, validationErrorf("Full name is required")
	}
	if len(in.Password) < minPasswordLength {
		return nil, validationErrorf("Password must be at least %d characters", minPasswordLength)
	}
	if len(username) < minUsernameLength {
		return nil, validationErrorf("Username must be at least %d characters", minUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return nil, validationErrorf("Username can only contain letters, numbers, and underscores")
	}

	// Uniqueness checked independently so the conflict names the field.
	if _, err := uc.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := uc.users.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:         email,
		Username:      username,
		PasswordHash:  hash,
		FullName:      fullName,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	result := &SignupResult{User: user}
	if err := uc.settings.Create(ctx, entities.DefaultSettings(user.ID)); err != nil {
		log.Printf("warning: failed to create settings for user %s: %v", user.ID, err)
		result.Warning = "User created but settings could not be initialized"
	}
	return result, nil
}

// RequestPasswordReset issues a fresh single-use token for an active user.
// A repeated request replaces the previous token.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", validationErrorf("Email is required")
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEmailNotFound
		}
		return "", err
	}
	if !user.IsActive {
		return "", ErrEmailNotFound
	}

	token := &entities.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}
	if err := uc.tokens.Upsert(ctx, token); err != nil {
		return "", err
	}
	return token.Token, nil
}

// ConsumePasswordReset sets a new password in exchange for a live token.
// The token is deleted in the same transaction, so a second attempt with
// the same token fails.
func (uc *AuthUseCase) ConsumePasswordReset(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return validationErrorf("Token and new password are required")
	}
	if len(newPassword) < minPasswordLength {
		return validationErrorf("Password must be at least %d characters", minPasswordLength)
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := uc.tokens.Consume(ctx, token, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}
	return nil
}
