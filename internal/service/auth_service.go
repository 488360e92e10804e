package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Hema-A-05/MERN-flasklite/internal/models"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"
)

// TokenIssuer is the signed-token scheme behind Login and Authenticate.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	// Verify returns the user id carried by a valid token.
	Verify(token string) (string, error)
}

type AuthService struct {
	users  repository.UserRepository
	tokens TokenIssuer
}

func NewAuthService(users repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		utils.BurnPasswordCheck(password)
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return a.tokens.Issue(u.ID)
}

// Authenticate resolves a token to the user it was issued for.
func (a *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	uid, err := a.tokens.Verify(token)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	u, err := a.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// EnsureUser provisions a login, leaving an existing account untouched.
// The bool reports whether a user was created.
func (a *AuthService) EnsureUser(ctx context.Context, email, password string) (*models.User, bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, false, ErrMissingField
	}
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if u != nil {
		return u, false, nil
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, false, err
	}
	u, err = a.users.Create(ctx, email, hash)
	if errors.Is(err, repository.ErrDuplicate) {
		u, err = a.users.GetByEmail(ctx, email)
		return u, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}
