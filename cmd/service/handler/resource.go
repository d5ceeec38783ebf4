package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/priyansh004/DevShare/app/logic/v1"
	"github.com/priyansh004/DevShare/app/response"
	"github.com/priyansh004/DevShare/pkg/types"
	"github.com/priyansh004/DevShare/pkg/utils"
)

type CreateResourceRequest struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Type        string `json:"type" form:"type" binding:"required"`
	Link        string `json:"link" form:"link" binding:"required"`
}

func (s *HttpSrv) CreateResource(c *gin.Context) {
	var (
		err error
		req CreateResourceRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	data, err := v1.NewResourceLogic(c, s.Core).CreateResource(v1.CreateResourceArgs{
		Title:       req.Title,
		Description: req.Description,
		Type:        types.ResourceType(req.Type),
		Link:        req.Link,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}

func (s *HttpSrv) GetResource(c *gin.Context) {
	resourceID, _ := c.Params.Get("resourceid")

	data, err := v1.NewResourceLogic(c, s.Core).GetResource(resourceID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}

type UpdateResourceRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Type        *string `json:"type" form:"type"`
	Link        *string `json:"link" form:"link"`
}

func (s *HttpSrv) UpdateResource(c *gin.Context) {
	var (
		err error
		req UpdateResourceRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	resourceID, _ := c.Params.Get("resourceid")

	args := types.UpdateResourceArgs{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}
	if req.Type != nil {
		typ := types.ResourceType(*req.Type)
		args.Type = &typ
	}

	if err = v1.NewResourceLogic(c, s.Core).UpdateResource(resourceID, args); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteResource(c *gin.Context) {
	resourceID, _ := c.Params.Get("resourceid")

	if err := v1.NewResourceLogic(c, s.Core).DeleteResource(resourceID); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

// ListFeedRequest binds paging values as raw strings so that malformed input
// degrades to defaults instead of a binding error.
type ListFeedRequest struct {
	Search  string `json:"search" form:"search"`
	Type    string `json:"type" form:"type"`
	Sort    string `json:"sort" form:"sort"`
	Page    string `json:"page" form:"page"`
	Limit   string `json:"limit" form:"limit"`
	Initial bool   `json:"initial" form:"initial"`
}

func (s *HttpSrv) ListFeed(c *gin.Context) {
	var (
		err error
		req ListFeedRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	params := v1.ParseFeedParams(req.Search, req.Type, req.Sort, req.Page, req.Limit)

	logic := v1.NewFeedLogic(c, s.Core)
	var data *v1.FeedReply
	if req.Initial {
		data, err = logic.InitialFeed(params)
	} else {
		data, err = logic.ListFeed(params)
	}
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}

func (s *HttpSrv) ListMyFeed(c *gin.Context) {
	var (
		err error
		req ListFeedRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	params := v1.ParseFeedParams(req.Search, req.Type, req.Sort, req.Page, req.Limit)

	data, err := v1.NewFeedLogic(c, s.Core).ListMyFeed(params)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}
