package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/priyansh004/DevShare/app/core"
	"github.com/priyansh004/DevShare/pkg/errors"
	"github.com/priyansh004/DevShare/pkg/i18n"
	"github.com/priyansh004/DevShare/pkg/safe"
	"github.com/priyansh004/DevShare/pkg/types"
	"github.com/priyansh004/DevShare/pkg/utils"
)

type ResourceLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewResourceLogic(ctx context.Context, core *core.Core) *ResourceLogic {
	return &ResourceLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type CreateResourceArgs struct {
	Title       string
	Description string
	Type        types.ResourceType
	Link        string
}

func (l *ResourceLogic) CreateResource(args CreateResourceArgs) (*types.ResourceTransport, error) {
	if args.Title == "" || args.Description == "" {
		return nil, errors.New("ResourceLogic.CreateResource", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	if !args.Type.Valid() {
		return nil, errors.New("ResourceLogic.CreateResource", i18n.ERROR_INVALID_TYPE, nil).Code(http.StatusBadRequest)
	}
	if u, err := url.Parse(args.Link); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("ResourceLogic.CreateResource", i18n.ERROR_INVALID_LINK, err).Code(http.StatusBadRequest)
	}

	now := time.Now().Unix()
	data := types.Resource{
		ID:          utils.GenUniqIDStr(),
		UserID:      l.GetUserInfo().User,
		Title:       args.Title,
		Description: args.Description,
		Type:        args.Type,
		Link:        args.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := l.core.Store().ResourceStore().Create(l.ctx, data); err != nil {
		return nil, errors.New("ResourceLogic.CreateResource.ResourceStore.Create", i18n.ERROR_INTERNAL, err)
	}

	l.enrichPreviewAsync(data.ID, data.UserID, data.Link)

	res := data.Transport()
	return &res, nil
}

// enrichPreviewAsync fetches Open Graph metadata for the posted link in the
// background. Creation has already succeeded when this runs; failures are
// logged and dropped, previews are never re-fetched.
func (l *ResourceLogic) enrichPreviewAsync(resourceID, userID, link string) {
	core := l.core
	go safe.Run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()

		summary, err := core.Preview().Fetch(ctx, link)
		if err != nil {
			slog.Warn("Failed to fetch link preview",
				slog.String("resource_id", resourceID),
				slog.String("link", link),
				slog.String("error", err.Error()))
			return
		}

		owner, err := core.Store().UserStore().GetUser(ctx, userID)
		if err != nil {
			slog.Error("Failed to load resource owner for preview",
				slog.String("resource_id", resourceID),
				slog.String("error", err.Error()))
			return
		}

		err = core.Store().ResourceStore().UpdatePreview(ctx, resourceID, types.ResourcePreview{
			Title:        summary.Title,
			Description:  summary.Description,
			Image:        summary.Image,
			AuthorName:   owner.Name,
			AuthorAvatar: owner.Avatar,
		})
		if err != nil {
			slog.Error("Failed to save link preview",
				slog.String("resource_id", resourceID),
				slog.String("error", err.Error()))
		}
	})
}

func (l *ResourceLogic) GetResource(id string) (*types.ResourceTransport, error) {
	data, err := l.core.Store().ResourceStore().Get(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("ResourceLogic.GetResource.ResourceStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("ResourceLogic.GetResource.ResourceStore.Get", i18n.ERROR_INTERNAL, err)
	}

	res := data.Transport()
	return &res, nil
}

// getOwned loads the resource and enforces that the requester owns it.
// Soft-deleted rows surface as not found before the ownership check.
func (l *ResourceLogic) getOwned(id string) (*types.Resource, error) {
	data, err := l.core.Store().ResourceStore().Get(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("ResourceLogic.getOwned.ResourceStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("ResourceLogic.getOwned.ResourceStore.Get", i18n.ERROR_INTERNAL, err)
	}

	if data.UserID != l.GetUserInfo().User {
		return nil, errors.New("ResourceLogic.getOwned", i18n.ERROR_FORBIDDEN, nil).Code(http.StatusForbidden)
	}
	return data, nil
}

func (l *ResourceLogic) UpdateResource(id string, args types.UpdateResourceArgs) error {
	if args.Type != nil && !args.Type.Valid() {
		return errors.New("ResourceLogic.UpdateResource", i18n.ERROR_INVALID_TYPE, nil).Code(http.StatusBadRequest)
	}
	if args.Link != nil {
		if u, err := url.Parse(*args.Link); err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("ResourceLogic.UpdateResource", i18n.ERROR_INVALID_LINK, err).Code(http.StatusBadRequest)
		}
	}

	if _, err := l.getOwned(id); err != nil {
		return err
	}

	err := l.core.Store().ResourceStore().Update(l.ctx, id, args, time.Now().Unix())
	if err != nil {
		return errors.New("ResourceLogic.UpdateResource.ResourceStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *ResourceLogic) DeleteResource(id string) error {
	if _, err := l.getOwned(id); err != nil {
		return err
	}

	err := l.core.Store().ResourceStore().SoftDelete(l.ctx, id, time.Now().Unix())
	if err != nil {
		return errors.New("ResourceLogic.DeleteResource.ResourceStore.SoftDelete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
