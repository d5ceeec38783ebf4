package store

import (
	"context"

	"github.com/priyansh004/DevShare/pkg/sqlstore"
	"github.com/priyansh004/DevShare/pkg/types"
)

type ResourceStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Resource) error
	// Get returns the resource iff it exists and is not soft-deleted; both
	// absences look identical to the caller.
	Get(ctx context.Context, id string) (*types.Resource, error)
	Update(ctx context.Context, id string, args types.UpdateResourceArgs, updatedAt int64) error
	UpdatePreview(ctx context.Context, id string, preview types.ResourcePreview) error
	SoftDelete(ctx context.Context, id string, updatedAt int64) error
	// List fetches one page of the filtered, sorted feed.
	List(ctx context.Context, opts types.ListResourceOptions, page, pageSize uint64) ([]types.Resource, error)
	Total(ctx context.Context, opts types.ListResourceOptions) (int64, error)
}

type UserStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateProfile(ctx context.Context, id, name, avatar string, updatedAt int64) error
}

type AccessTokenStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.AccessToken) error
	GetAccessToken(ctx context.Context, token string) (*types.AccessToken, error)
	ClearUserTokens(ctx context.Context, userID string) error
}
