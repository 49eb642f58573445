package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview"
	"github.com/ecodeclub/hireflow/internal/offer"
	"github.com/ecodeclub/hireflow/internal/onboarding"
	"github.com/ecodeclub/hireflow/internal/pkg/middleware"
	"github.com/ecodeclub/hireflow/internal/position"
	"github.com/ecodeclub/hireflow/internal/tenant"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(
	tm *tenant.Module,
	pm *position.Module,
	am *application.Module,
	im *interview.Module,
	om *offer.Module,
	obm *onboarding.Module,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type", "X-District-ID", "X-Staff-ID"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, econf.GetString("web.allowDomain"))
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 公开端点：招聘版、候选人投递、Offer 回执、入职 Token 操作
	pm.Hdl.PublicRoutes(res.Engine)
	am.Hdl.PublicRoutes(res.Engine)
	om.Hdl.PublicRoutes(res.Engine)
	obm.Hdl.PublicRoutes(res.Engine)
	// 租户校验
	res.Use(middleware.NewCheckDistrictBuilder(tm.Svc).Build())
	tm.Hdl.PrivateRoutes(res.Engine)
	pm.Hdl.PrivateRoutes(res.Engine)
	am.Hdl.PrivateRoutes(res.Engine)
	im.Hdl.PrivateRoutes(res.Engine)
	om.Hdl.PrivateRoutes(res.Engine)
	obm.Hdl.PrivateRoutes(res.Engine)
	return res
}
