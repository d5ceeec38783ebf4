package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/priyansh004/DevShare/app/core"
	"github.com/priyansh004/DevShare/pkg/errors"
	"github.com/priyansh004/DevShare/pkg/i18n"
	"github.com/priyansh004/DevShare/pkg/security"
	"github.com/priyansh004/DevShare/pkg/types"
	"github.com/priyansh004/DevShare/pkg/utils"
)

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	return &AuthLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *AuthLogic) GetAccessTokenDetail(token string) (*types.AccessToken, error) {
	data, err := l.core.Store().AccessTokenStore().GetAccessToken(l.ctx, token)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.GetAccessTokenDetail.AccessTokenStore.GetAccessToken", i18n.ERROR_INTERNAL, err)
	}

	return data, nil
}

// InitUser provisions an account with a long-lived access token. It is the
// backing of the `devshare init` command, not an HTTP endpoint.
func (l *AuthLogic) InitUser(email, name string) (string, error) {
	userStore := l.core.Store().UserStore()
	if exist, err := userStore.GetByEmail(l.ctx, email); err != nil && err != sql.ErrNoRows {
		return "", errors.New("AuthLogic.InitUser.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	} else if exist != nil {
		return "", errors.New("AuthLogic.InitUser.UserStore.GetByEmail", i18n.ERROR_EXIST, nil).Code(http.StatusBadRequest)
	}

	userID := utils.GenUniqIDStr()
	now := time.Now().Unix()

	var accessToken string
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		err := userStore.Create(ctx, types.User{
			ID:        userID,
			Email:     email,
			Name:      name,
			Avatar:    "",
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return errors.New("AuthLogic.InitUser.UserStore.Create", i18n.ERROR_INTERNAL, err)
		}

		tokenStore := l.core.Store().AccessTokenStore()
	REGEN:
		accessToken = utils.RandomStr(64)
		exist, err := tokenStore.GetAccessToken(ctx, accessToken)
		if err != nil && err != sql.ErrNoRows {
			return errors.New("AuthLogic.InitUser.AccessTokenStore.GetAccessToken", i18n.ERROR_INTERNAL, err)
		}
		if exist != nil {
			goto REGEN
		}

		err = tokenStore.Create(ctx, types.AccessToken{
			UserID:    userID,
			Token:     accessToken,
			Info:      "Initial user token",
			ExpiresAt: time.Now().AddDate(999, 0, 0).Unix(),
			CreatedAt: now,
		})
		if err != nil {
			return errors.New("AuthLogic.InitUser.AccessTokenStore.Create", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return accessToken, nil
}

// GenJWT issues a short-lived session token for the given user.
func (l *AuthLogic) GenJWT(user *types.User, ttl time.Duration) (string, error) {
	claims := security.NewTokenClaims(user.ID, user.Email, time.Now().Add(ttl).Unix())
	token, err := security.GenAuthToken(claims, l.core.Cfg().Security.JWTSecret)
	if err != nil {
		return "", errors.New("AuthLogic.GenJWT.GenAuthToken", i18n.ERROR_INTERNAL, err)
	}
	return token, nil
}
