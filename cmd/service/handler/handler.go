package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/priyansh004/DevShare/app/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
