package usecase

import (
	"context"
	"errors"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/services/auth"
)

// RefreshSession rotates a refresh token: the presented token is revoked and a
// new pair is minted from the user's current role and clinic.
func (u *AuthUC) RefreshSession(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := u.parseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := u.authRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidRefresh
		}
		return nil, err
	}

	if err := u.revoke(ctx, claims); err != nil {
		return nil, err
	}

	pair, err := u.tokens.GeneratePair(user)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Logout revokes the refresh token until it would have expired anyway
func (u *AuthUC) Logout(ctx context.Context, refreshToken string) error {
	claims, err := u.parseRefresh(refreshToken)
	if err != nil {
		return err
	}
	if err := u.revoke(ctx, claims); err != nil {
		return err
	}

	logger.Info("User logged out", logger.String("user_id", claims.UserID.String()))
	return nil
}

func (u *AuthUC) parseRefresh(refreshToken string) (*models.TokenClaims, error) {
	if refreshToken == "" {
		return nil, auth.ErrRefreshRequired
	}
	claims, err := u.tokens.Parse(refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return nil, auth.ErrInvalidRefresh
	}
	return claims, nil
}

func (u *AuthUC) revoke(ctx context.Context, claims *models.TokenClaims) error {
	revoked, err := u.authRepo.BlacklistRefreshToken(ctx, claims.TokenID, claims.ExpiresAt.Sub(u.now()))
	if err != nil {
		return err
	}
	if !revoked {
		return auth.ErrInvalidRefresh
	}
	return nil
}
