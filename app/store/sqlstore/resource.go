package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/priyansh004/DevShare/pkg/register"
	"github.com/priyansh004/DevShare/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.ResourceStore = NewResourceStore(provider)
	})
}

// ResourceStore handles operations on the devshare_resource table.
type ResourceStore struct {
	CommonFields
}

func NewResourceStore(provider SqlProviderAchieve) *ResourceStore {
	repo := &ResourceStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_RESOURCE)
	repo.SetAllColumns("id", "user_id", "title", "description", "type", "link",
		"preview_title", "preview_description", "preview_image",
		"author_name", "author_avatar", "is_deleted", "created_at", "updated_at")
	return repo
}

func (s *ResourceStore) Create(ctx context.Context, data types.Resource) error {
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.UserID, data.Title, data.Description, data.Type, data.Link,
			data.PreviewTitle, data.PreviewDescription, data.PreviewImage,
			data.AuthorName, data.AuthorAvatar, data.IsDeleted, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Get does not return soft-deleted rows; their absence is indistinguishable
// from a row that never existed.
func (s *ResourceStore) Get(ctx context.Context, id string) (*types.Resource, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"id": id, "is_deleted": false})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Resource
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ResourceStore) Update(ctx context.Context, id string, args types.UpdateResourceArgs, updatedAt int64) error {
	query := sq.Update(s.GetTable()).Where(sq.Eq{"id": id})
	if args.Title != nil {
		query = query.Set("title", *args.Title)
	}
	if args.Description != nil {
		query = query.Set("description", *args.Description)
	}
	if args.Type != nil {
		query = query.Set("type", *args.Type)
	}
	if args.Link != nil {
		query = query.Set("link", *args.Link)
	}
	query = query.Set("updated_at", updatedAt)

	queryString, sqlArgs, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, sqlArgs...)
	return err
}

// UpdatePreview writes the enrichment fields only; updated_at stays untouched
// so a background preview fetch does not reorder the feed.
func (s *ResourceStore) UpdatePreview(ctx context.Context, id string, preview types.ResourcePreview) error {
	query := sq.Update(s.GetTable()).
		Set("preview_title", preview.Title).
		Set("preview_description", preview.Description).
		Set("preview_image", preview.Image).
		Set("author_name", preview.AuthorName).
		Set("author_avatar", preview.AuthorAvatar).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *ResourceStore) SoftDelete(ctx context.Context, id string, updatedAt int64) error {
	query := sq.Update(s.GetTable()).
		Set("is_deleted", true).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *ResourceStore) listQuery(opts types.ListResourceOptions, page, pageSize uint64) (string, []interface{}, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		OrderBy(opts.OrderBy())

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		offset := (page - 1) * pageSize
		query = query.Limit(pageSize).Offset(offset)
	}

	opts.Apply(&query)

	return query.ToSql()
}

// List fetches one page of the filtered feed. Page and pageSize of
// NO_PAGINATION return the whole result set.
func (s *ResourceStore) List(ctx context.Context, opts types.ListResourceOptions, page, pageSize uint64) ([]types.Resource, error) {
	queryString, args, err := s.listQuery(opts, page, pageSize)
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Resource
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ResourceStore) Total(ctx context.Context, opts types.ListResourceOptions) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())
	opts.Apply(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}
