package v1

import (
	"context"
	"strconv"

	"github.com/samber/lo"

	"github.com/priyansh004/DevShare/app/core"
	"github.com/priyansh004/DevShare/pkg/errors"
	"github.com/priyansh004/DevShare/pkg/i18n"
	"github.com/priyansh004/DevShare/pkg/types"
)

// FeedParams is the raw feed request. Normalize clamps rather than rejects:
// garbage paging input degrades to the first page, never to an error.
type FeedParams struct {
	Search string
	Type   string
	Sort   string
	Page   uint64
	Limit  uint64
}

func (p *FeedParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = types.FeedPageSize
	}
	if typ := types.ResourceType(p.Type); p.Type != "" && !typ.Valid() {
		// unknown type filters nothing rather than everything
		p.Type = ""
	}
	if p.Sort != types.SORT_NEWEST && p.Sort != types.SORT_OLDEST {
		p.Sort = types.SORT_NEWEST
	}
}

// ParseFeedParams builds FeedParams from raw query strings. Non-numeric page
// and limit values coerce to their defaults.
func ParseFeedParams(search, typ, sort, pageRaw, limitRaw string) FeedParams {
	params := FeedParams{
		Search: search,
		Type:   typ,
		Sort:   sort,
	}
	if page, err := strconv.ParseUint(pageRaw, 10, 64); err == nil {
		params.Page = page
	}
	if limit, err := strconv.ParseUint(limitRaw, 10, 64); err == nil {
		params.Limit = limit
	}
	params.Normalize()
	return params
}

func (p FeedParams) listOptions() types.ListResourceOptions {
	return types.ListResourceOptions{
		Search: p.Search,
		Type:   types.ResourceType(p.Type),
		Sort:   p.Sort,
	}
}

type FeedLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewFeedLogic(ctx context.Context, core *core.Core) *FeedLogic {
	return &FeedLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// FeedReply is one page of the feed plus the paging meta a scroller needs.
type FeedReply struct {
	List  []types.ResourceTransport `json:"list"`
	Page  uint64                    `json:"page"`
	Limit uint64                    `json:"limit"`
	Total int64                     `json:"total"`
}

func (l *FeedLogic) listFeed(params FeedParams, opts types.ListResourceOptions) (*FeedReply, error) {
	store := l.core.Store().ResourceStore()

	list, err := store.List(l.ctx, opts, params.Page, params.Limit)
	if err != nil {
		return nil, errors.New("FeedLogic.listFeed.ResourceStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := store.Total(l.ctx, opts)
	if err != nil {
		return nil, errors.New("FeedLogic.listFeed.ResourceStore.Total", i18n.ERROR_INTERNAL, err)
	}

	return &FeedReply{
		List: lo.Map(list, func(item types.Resource, _ int) types.ResourceTransport {
			return item.Transport()
		}),
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	}, nil
}

// ListFeed returns one page of the public feed under the given filters. An
// empty page is a normal end-of-data outcome, not an error.
func (l *FeedLogic) ListFeed(params FeedParams) (*FeedReply, error) {
	params.Normalize()
	return l.listFeed(params, params.listOptions())
}

// InitialFeed is the scroll-seeding mode: it always serves page 1, whatever
// page the request asked for.
func (l *FeedLogic) InitialFeed(params FeedParams) (*FeedReply, error) {
	params.Page = 1
	params.Normalize()
	return l.listFeed(params, params.listOptions())
}

// ListMyFeed is ListFeed constrained to the session user's own resources.
func (l *FeedLogic) ListMyFeed(params FeedParams) (*FeedReply, error) {
	params.Normalize()
	opts := params.listOptions()
	opts.UserID = l.GetUserInfo().User
	return l.listFeed(params, opts)
}
