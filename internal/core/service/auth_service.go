package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamfolio/portfolio-api/internal/api/metrics"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

const (
	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour
	resetTokenTTL     = time.Hour
	minPasswordLength = 8

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// AuthService implements registration, login and the token lifecycle.
type AuthService struct {
	users      ports.UserRepository
	tokens     ports.TokenStore
	mail       ports.MailEnqueuer
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	resetURL   string
	logger     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenStore,
	mailq ports.MailEnqueuer,
	jwtSecret string,
	accessTTL, refreshTTL time.Duration,
	resetURL string,
	logger zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		mail:       mailq,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		resetURL:   resetURL,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, *ports.TokenPair, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, nil, fmt.Errorf("%w: username, email and password are required", domain.ErrInvalidCredentials)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidCredentials)
	}
	if len(input.Password) < minPasswordLength {
		return nil, nil, fmt.Errorf("%w: password too short", domain.ErrInvalidCredentials)
	}
	if input.Password != input.PasswordConfirm {
		return nil, nil, domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         domain.RoleMember,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(created)
	if err != nil {
		return nil, nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, pair, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		// Unknown emails answer as invalid credentials, not 404.
		return nil, nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		metrics.LoginsTotal.WithLabelValues("disabled").Inc()
		return nil, nil, domain.ErrAccountDisabled
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	if err := s.users.SetLastLogin(ctx, user.ID, now); err != nil {
		// Stamping last_login is best effort.
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to stamp last login")
	} else {
		user.LastLogin = now
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return user, pair, nil
}

// Refresh rotates a refresh token. The presented token is checked against
// the blacklist, blacklisted for its remaining lifetime, and a new pair is
// issued for the same user.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	userID, jti, expiresAt, err := s.parseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	blacklisted, err := s.tokens.IsRefreshBlacklisted(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("blacklist check: %w", err)
	}
	if blacklisted {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if !user.Active {
		return nil, domain.ErrInvalidToken
	}

	if err := s.tokens.BlacklistRefresh(ctx, jti, time.Until(expiresAt)); err != nil {
		return nil, fmt.Errorf("blacklist rotation: %w", err)
	}

	return s.issueTokens(user)
}

// Logout blacklists the presented refresh token. The access token is left
// to expire on its own.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	_, jti, expiresAt, err := s.parseRefresh(refreshToken)
	if err != nil {
		return err
	}
	return s.tokens.BlacklistRefresh(ctx, jti, time.Until(expiresAt))
}

// RequestPasswordReset queues a reset mail when the email is known. The
// outcome is identical either way so account existence is not revealed, and
// mail delivery can never fail the request.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Debug().Str("email", email).Msg("password reset requested for unknown email")
		return nil
	}

	token := uuid.NewString()
	if err := s.tokens.StoreResetToken(ctx, token, user.ID, resetTokenTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	s.mail.Enqueue(ports.MailMessage{
		To:      user.Email,
		Subject: "Password reset",
		Body:    fmt.Sprintf("Use the link below to reset your password:\n\n%s?token=%s\n\nThe link expires in one hour.", s.resetURL, token),
	})
	metrics.PasswordResetsTotal.WithLabelValues("requested").Inc()
	return nil
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword, newPasswordConfirm string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password too short", domain.ErrInvalidCredentials)
	}
	if newPassword != newPasswordConfirm {
		return domain.ErrPasswordMismatch
	}

	userID, err := s.tokens.ConsumeResetToken(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.SetPassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("confirmed").Inc()
	s.logger.Info().Int64("user_id", userID).Msg("password reset completed")
	return nil
}

func (s *AuthService) issueTokens(user *domain.User) (*ports.TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"type":  tokenTypeAccess,
		"iat":   now.Unix(),
		"exp":   now.Add(s.accessTTL).Unix(),
	})
	accessStr, err := access.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"type": tokenTypeRefresh,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.refreshTTL).Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{Access: accessStr, Refresh: refreshStr}, nil
}

func (s *AuthService) parseRefresh(token string) (userID int64, jti string, expiresAt time.Time, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return 0, "", time.Time{}, domain.ErrInvalidToken
	}
	if typ, _ := claims["type"].(string); typ != tokenTypeRefresh {
		return 0, "", time.Time{}, domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", time.Time{}, domain.ErrInvalidToken
	}
	jti, ok = claims["jti"].(string)
	if !ok || jti == "" {
		return 0, "", time.Time{}, domain.ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, "", time.Time{}, domain.ErrInvalidToken
	}

	return int64(sub), jti, exp.Time, nil
}
