package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-compass/internal/domain/profile"
	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"
	ucauth "career-compass/internal/usecase/auth"
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	users    user.Repository
	profiles profile.Store
	jwt      jwt.Service
	logger   *log.Logger
}

func NewAuthUsecase(users user.Repository, profiles profile.Store, jwtSvc jwt.Service, logger *log.Logger) *Auth {
	return &Auth{
		authSvc:  ucauth.NewService(users),
		users:    users,
		profiles: profiles,
		jwt:      jwtSvc,
		logger:   logger,
	}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, "", "", err
	}

	// Seed the profile document so the first dashboard load finds an email
	// and a non-zero completion. A failed seed is not fatal; the merge
	// write on first profile edit creates the document anyway.
	if u.profiles != nil {
		seed := map[string]any{
			"email":     usr.Email,
			"updatedAt": time.Now().UTC(),
		}
		if err := u.profiles.Merge(ctx, usr.ID, seed); err != nil && u.logger != nil {
			u.logger.Printf("[Auth] Profile seed failed user=%s err=%v", usr.ID, err)
		}
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	return usr, access, refresh, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", "", err
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	return usr, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) issueTokens(usr user.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

var _ AuthUsecase = (*Auth)(nil)
