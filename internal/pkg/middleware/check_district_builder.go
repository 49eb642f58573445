package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ecodeclub/hireflow/internal/pkg/dctx"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// DistrictVerifier 校验学区是否存在且处于激活状态，由 tenant 模块实现。
type DistrictVerifier interface {
	Verify(ctx context.Context, id int64) error
}

// CheckDistrictBuilder 从 X-District-ID 请求头解析租户，校验后写入 ctx。
// 注册在豁免路由（公开招聘版、Offer 公开端点、Token 校验）之后，
// 其余路由缺少或携带非法学区ID一律 400。
type CheckDistrictBuilder struct {
	verifier DistrictVerifier
	logger   *elog.Component
}

const (
	districtIDHeader = "X-District-ID"
)

func NewCheckDistrictBuilder(verifier DistrictVerifier) *CheckDistrictBuilder {
	return &CheckDistrictBuilder{
		verifier: verifier,
		logger:   elog.DefaultLogger,
	}
}

func (b *CheckDistrictBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		val := ctx.GetHeader(districtIDHeader)
		if val == "" {
			gctx.AbortWithStatus(http.StatusBadRequest)
			b.logger.Warn("缺少学区ID请求头", elog.FieldKey(districtIDHeader))
			return
		}
		c := ctx.Request.Context()
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			gctx.AbortWithStatus(http.StatusBadRequest)
			b.logger.Error("学区ID格式非法", elog.FieldErr(err))
			return
		}
		if err = b.verifier.Verify(c, id); err != nil {
			gctx.AbortWithStatus(http.StatusBadRequest)
			b.logger.Error("学区校验失败", elog.FieldErr(err))
			return
		}
		ctx.Request = ctx.Request.WithContext(dctx.CtxWithDistrict(c, id))
	}
}
