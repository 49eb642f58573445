// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/pkg/dctx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/advance-stage", ginx.B[IDReq](h.AdvanceStage))
	g.POST("/reject", ginx.B[IDReq](h.Reject))
	g.POST("/override-stage", ginx.B[OverrideStageReq](h.OverrideStage))
	g.POST("/stats", ginx.W(h.Stats))
}

// PublicRoutes 求职者投递入口，学区以请求头显式指定并与岗位归属交叉校验。
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/applications/submit", ginx.B[SubmitReq](h.Submit))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq) (ginx.Result, error) {
	district, err := strconv.ParseInt(ctx.GetHeader("X-District-ID"), 10, 64)
	if err != nil {
		return invalidInputResult, err
	}
	id, err := h.svc.Submit(ctx, district, req.toDomain())
	switch {
	case errors.Is(err, service.ErrDuplicateApplication):
		return duplicateResult, err
	case errors.Is(err, service.ErrInvalidApplication),
		errors.Is(err, service.ErrPositionNotFound):
		return invalidInputResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	list, total, err := h.svc.List(ctx, district, domain.Stage(req.Stage), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[JobApplication]{
			List: slice.Map(list, func(_ int, src domain.JobApplication) JobApplication {
				return newJobApplication(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	app, err := h.svc.Detail(ctx, district, req.ID)
	if errors.Is(err, service.ErrApplicationNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobApplication(app)}, nil
}

func (h *Handler) AdvanceStage(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	stage, err := h.svc.AdvanceStage(ctx, district, req.ID)
	switch {
	case errors.Is(err, service.ErrFinalStage):
		return finalStageResult, err
	case errors.Is(err, service.ErrStageConflict):
		return stageConflictResult, err
	case errors.Is(err, service.ErrApplicationNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: stage.String()}, nil
}

func (h *Handler) Reject(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.Reject(ctx, district, req.ID)
	if errors.Is(err, service.ErrApplicationNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) OverrideStage(ctx *ginx.Context, req OverrideStageReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.OverrideStage(ctx, district, req.ID, domain.Stage(req.Stage))
	switch {
	case errors.Is(err, service.ErrOverrideDisabled):
		return overrideDisabledResult, err
	case errors.Is(err, service.ErrInvalidApplication):
		return invalidInputResult, err
	case errors.Is(err, service.ErrApplicationNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	stats, err := h.svc.Stats(ctx, district)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: stats}, nil
}
