package service

import (
	"github.com/priyansh004/DevShare/app/core"
	"github.com/priyansh004/DevShare/app/response"
	"github.com/priyansh004/DevShare/cmd/service/handler"
	"github.com/priyansh004/DevShare/cmd/service/middleware"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.AcceptLanguage())

	apiV1 := s.Engine.Group("/api/v1")
	{
		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		user := authed.Group("/user")
		{
			user.GET("/info", s.GetUser)
			user.PUT("/profile", s.UpdateUserProfile)
		}

		resource := authed.Group("/resource")
		{
			resource.GET("/list", s.ListFeed)
			resource.GET("/my", s.ListMyFeed)
			resource.POST("", s.CreateResource)
			resource.GET("/:resourceid", s.GetResource)
			resource.PUT("/:resourceid", s.UpdateResource)
			resource.DELETE("/:resourceid", s.DeleteResource)
		}
	}
}
