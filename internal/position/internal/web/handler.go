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
	"github.com/ecodeclub/hireflow/internal/pkg/dctx"
	"github.com/ecodeclub/hireflow/internal/position/internal/domain"
	"github.com/ecodeclub/hireflow/internal/position/internal/service"
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
	g := server.Group("/positions")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/stats", ginx.W(h.Stats))
	g.POST("/create-from-template", ginx.B[CreateFromTemplateReq](h.CreateFromTemplate))
	g.POST("/interviewer/add", ginx.B[AddInterviewerReq](h.AddInterviewer))

	q := server.Group("/questions")
	q.POST("/save", ginx.B[SaveQuestionReq](h.SaveQuestion))
	q.POST("/list", ginx.B[ListQuestionsReq](h.ListQuestions))
	q.POST("/bind", ginx.B[BindQuestionsReq](h.BindQuestions))

	t := server.Group("/job-templates")
	t.POST("/save", ginx.B[SaveTemplateReq](h.SaveTemplate))
	t.POST("/list", ginx.W(h.ListTemplates))
}

// PublicRoutes 公开招聘版。求职者未登录也能访问，
// 学区通过请求头显式指定，不走统一的租户中间件。
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/job-board/list", ginx.B[PublicListReq](h.PublicList))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	id, err := h.svc.Save(ctx, req.Position.toDomain(district))
	switch {
	case errors.Is(err, service.ErrDuplicateReqID):
		return duplicateReqIDResult, err
	case errors.Is(err, service.ErrInvalidPosition):
		return invalidInputResult, err
	case errors.Is(err, service.ErrPositionNotFound):
		return notFoundResult, err
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
	list, total, err := h.svc.List(ctx, district, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Position]{
			List: slice.Map(list, func(_ int, src domain.Position) Position {
				return newPosition(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	pos, err := h.svc.Detail(ctx, district, req.ID)
	if errors.Is(err, service.ErrPositionNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPosition(pos)}, nil
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
	return ginx.Result{Data: StatsResp{
		Draft:  stats.Draft,
		Open:   stats.Open,
		Closed: stats.Closed,
	}}, nil
}

func (h *Handler) CreateFromTemplate(ctx *ginx.Context, req CreateFromTemplateReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	id, err := h.svc.CreateFromTemplate(ctx, district, req.TemplateID, req.ReqID,
		req.PostingStartDate, req.PostingEndDate)
	switch {
	case errors.Is(err, service.ErrPositionNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrDuplicateReqID):
		return duplicateReqIDResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) AddInterviewer(ctx *ginx.Context, req AddInterviewerReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	id, err := h.svc.AddInterviewer(ctx, domain.Interviewer{
		DistrictID: district,
		StageID:    req.StageID,
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
	})
	switch {
	case errors.Is(err, service.ErrDistrictMismatch):
		return districtMismatchResult, err
	case errors.Is(err, service.ErrInvalidPosition):
		return invalidInputResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) SaveQuestion(ctx *ginx.Context, req SaveQuestionReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	id, err := h.svc.CreateQuestion(ctx, domain.ScreeningQuestion{
		DistrictID: district,
		Question:   req.Question,
		Category:   req.Category,
		Required:   req.Required,
	})
	if errors.Is(err, service.ErrInvalidPosition) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) ListQuestions(ctx *ginx.Context, req ListQuestionsReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	questions, err := h.svc.ListQuestions(ctx, district, req.Category)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(questions, func(_ int, src domain.ScreeningQuestion) ScreeningQuestion {
			return newQuestion(src)
		}),
	}, nil
}

func (h *Handler) BindQuestions(ctx *ginx.Context, req BindQuestionsReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.BindQuestions(ctx, district, req.PositionID, req.QuestionIDs)
	switch {
	case errors.Is(err, service.ErrPositionNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrDistrictMismatch):
		return districtMismatchResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SaveTemplate(ctx *ginx.Context, req SaveTemplateReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	t := req.Template
	id, err := h.svc.CreateTemplate(ctx, domain.JobTemplate{
		DistrictID:          district,
		TemplateName:        t.TemplateName,
		PrimaryJobTitle:     t.PrimaryJobTitle,
		Department:          t.Department,
		Worksite:            t.Worksite,
		FTE:                 t.FTE,
		SalaryRange:         t.SalaryRange,
		EmployeeCategory:    t.EmployeeCategory,
		InterviewStageCount: t.InterviewStageCount,
	})
	if errors.Is(err, service.ErrInvalidPosition) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) ListTemplates(ctx *ginx.Context) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	templates, err := h.svc.ListTemplates(ctx, district)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(templates, func(_ int, src domain.JobTemplate) JobTemplate {
			return newTemplate(src)
		}),
	}, nil
}

func (h *Handler) PublicList(ctx *ginx.Context, req PublicListReq) (ginx.Result, error) {
	district, err := strconv.ParseInt(ctx.GetHeader("X-District-ID"), 10, 64)
	if err != nil {
		return invalidInputResult, err
	}
	list, err := h.svc.PublicList(ctx, district, req.Search, req.Department, req.Worksite)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(_ int, src domain.Position) Position {
			return newPublicPosition(src)
		}),
	}, nil
}
