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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service"
	"github.com/ecodeclub/hireflow/internal/pkg/dctx"
	"github.com/ecodeclub/hireflow/internal/position"
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
	g := server.Group("/interviews")
	g.POST("/schedule", ginx.B[ScheduleReq](h.Schedule))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/mark-completed", ginx.B[MarkCompletedReq](h.MarkCompleted))
	g.POST("/cancel", ginx.B[IDReq](h.Cancel))
	g.POST("/mark-no-show", ginx.B[IDReq](h.MarkNoShow))
	g.POST("/by-application", ginx.B[ByApplicationReq](h.ByApplication))
	g.POST("/by-date-range", ginx.B[DateRangeReq](h.ByDateRange))
	g.POST("/upcoming", ginx.B[UpcomingReq](h.Upcoming))
	g.POST("/interviewers", ginx.B[InterviewersForReq](h.InterviewersFor))
	g.POST("/stats", ginx.W(h.Stats))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Schedule(ctx *ginx.Context, req ScheduleReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	id, err := h.svc.Schedule(ctx, district, req.toDomain())
	switch {
	case errors.Is(err, service.ErrStageMismatch):
		return stageMismatchResult, err
	case errors.Is(err, service.ErrInvalidInterview):
		return invalidInputResult, err
	case errors.Is(err, service.ErrInterviewNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	itv, err := h.svc.Detail(ctx, district, req.ID)
	if errors.Is(err, service.ErrInterviewNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newInterview(itv)}, nil
}

func (h *Handler) MarkCompleted(ctx *ginx.Context, req MarkCompletedReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.MarkCompleted(ctx, district, req.ID, req.Feedback, req.Rating)
	switch {
	case errors.Is(err, service.ErrStatusConflict):
		return statusConflictResult, err
	case errors.Is(err, service.ErrInvalidInterview):
		return invalidInputResult, err
	case errors.Is(err, service.ErrInterviewNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.Cancel(ctx, district, req.ID)
	if errors.Is(err, service.ErrStatusConflict) {
		return statusConflictResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) MarkNoShow(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.MarkNoShow(ctx, district, req.ID)
	if errors.Is(err, service.ErrStatusConflict) {
		return statusConflictResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ByApplication(ctx *ginx.Context, req ByApplicationReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	list, err := h.svc.ListByApplication(ctx, district, req.ApplicationID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(_ int, src domain.Interview) Interview {
			return newInterview(src)
		}),
	}, nil
}

func (h *Handler) ByDateRange(ctx *ginx.Context, req DateRangeReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	list, err := h.svc.ByDateRange(ctx, district, req.From, req.To)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(_ int, src domain.Interview) Interview {
			return newInterview(src)
		}),
	}, nil
}

func (h *Handler) Upcoming(ctx *ginx.Context, req UpcomingReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	days := req.Days
	if days <= 0 {
		days = 7
	}
	list, err := h.svc.Upcoming(ctx, district, days)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(_ int, src domain.Interview) Interview {
			return newInterview(src)
		}),
	}, nil
}

func (h *Handler) InterviewersFor(ctx *ginx.Context, req InterviewersForReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	panel, err := h.svc.InterviewersFor(ctx, district, req.StageID, req.Date, req.Time)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(panel, func(_ int, src position.Interviewer) Interviewer {
			return newInterviewer(src)
		}),
	}, nil
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
