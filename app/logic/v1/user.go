package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/priyansh004/DevShare/app/core"
	"github.com/priyansh004/DevShare/pkg/errors"
	"github.com/priyansh004/DevShare/pkg/i18n"
	"github.com/priyansh004/DevShare/pkg/types"
)

type UserLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewUserLogic(ctx context.Context, core *core.Core) *UserLogic {
	return &UserLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func (l *UserLogic) GetUser(id string) (*types.User, error) {
	user, err := l.core.Store().UserStore().GetUser(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("UserLogic.GetUser.UserStore.GetUser", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("UserLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	return user, nil
}

// GetSessionUser returns the profile of the requester.
func (l *UserLogic) GetSessionUser() (*types.User, error) {
	return l.GetUser(l.GetUserInfo().User)
}

func (l *UserLogic) UpdateProfile(name, avatar string) error {
	if name == "" {
		return errors.New("UserLogic.UpdateProfile", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	userID := l.GetUserInfo().User
	err := l.core.Store().UserStore().UpdateProfile(l.ctx, userID, name, avatar, time.Now().Unix())
	if err != nil {
		return errors.New("UserLogic.UpdateProfile.UserStore.UpdateProfile", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
