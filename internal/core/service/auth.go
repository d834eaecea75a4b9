package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/request"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/util"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/auth"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/cache"
)

var (
	ErrEmailNotFound = errors.New("email not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrTokenIssue    = errors.New("failed to issue token")
	ErrTokenInvalid  = errors.New("invalid session token")
)

type AuthService struct {
	repo     port.UserRepository
	tokens   *auth.TokenManager
	sessions cache.TokenCache
}

func NewAuthService(repo port.UserRepository, tokens *auth.TokenManager, sessions cache.TokenCache) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		sessions: sessions,
	}
}

func (a *AuthService) Registration(ctx context.Context, req *request.SignUpRequest) (*domain.User, error) {
	_, err := a.repo.GetByEmail(ctx, req.Email)

	if err == nil {
		return nil, domain.ErrEmailTaken
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return nil, fmt.Errorf("error creating encrypted password: %w", err)
	}

	now := time.Now()

	user := domain.User{
		ID:                uuid.New(),
		Email:             req.Email,
		EncryptedPassword: encrypted,
		Firstname:         req.Firstname,
		Lastname:          req.Lastname,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, err := a.repo.Create(ctx, user)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Login runs the three-step chain: email lookup, password comparison, token
// issuance. Each step short-circuits the rest on failure, and the stored
// token is only touched once all three succeed.
func (a *AuthService) Login(ctx context.Context, req *request.LoginRequest) (*domain.User, string, error) {
	user, err := a.repo.GetByEmail(ctx, req.Email)

	if err != nil {
		slog.Error("Auth#Login", "get_by_email", err)
		return nil, "", ErrEmailNotFound
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		return nil, "", ErrWrongPassword
	}

	token, err := a.tokens.Issue(user.ID.String())

	if err != nil {
		slog.Error("Auth#Login", "issue_token", err)
		return nil, "", ErrTokenIssue
	}

	previousToken := user.Token

	user.Token = token
	user.UpdatedAt = time.Now()

	saved, err := a.repo.Update(ctx, user)

	if err != nil {
		return nil, "", err
	}

	// A new login supersedes the previous session, so its cached guard
	// entry must go too.
	if a.sessions != nil && previousToken != "" {
		a.sessions.Delete(ctx, previousToken)
	}

	return &saved, token, nil
}

func (a *AuthService) Logout(ctx context.Context, userID string) error {
	user, err := a.repo.GetByID(ctx, userID)

	if err != nil {
		return err
	}

	previousToken := user.Token

	user.Token = ""
	user.UpdatedAt = time.Now()

	if _, err := a.repo.Update(ctx, user); err != nil {
		return err
	}

	if a.sessions != nil && previousToken != "" {
		a.sessions.Delete(ctx, previousToken)
	}

	return nil
}

// ResolveToken validates a presented session token: the signature must
// verify, the embedded user must exist and its stored token must equal the
// presented one, so a logout or a newer login invalidates older tokens.
func (a *AuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := a.tokens.Verify(token)

	if err != nil {
		return nil, ErrTokenInvalid
	}

	user, err := a.repo.GetByID(ctx, userID)

	if err != nil {
		return nil, ErrTokenInvalid
	}

	if user.Token != token {
		return nil, ErrTokenInvalid
	}

	return &user, nil
}
