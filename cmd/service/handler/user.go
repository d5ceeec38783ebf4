package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/priyansh004/DevShare/app/logic/v1"
	"github.com/priyansh004/DevShare/app/response"
	"github.com/priyansh004/DevShare/pkg/utils"
)

type UserInfoReply struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (s *HttpSrv) GetUser(c *gin.Context) {
	user, err := v1.NewUserLogic(c, s.Core).GetSessionUser()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, UserInfoReply{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Avatar: user.Avatar,
	})
}

type UpdateUserProfileRequest struct {
	Name   string `json:"name" form:"name" binding:"required"`
	Avatar string `json:"avatar" form:"avatar"`
}

func (s *HttpSrv) UpdateUserProfile(c *gin.Context) {
	var (
		err error
		req UpdateUserProfileRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewUserLogic(c, s.Core).UpdateProfile(req.Name, req.Avatar); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
