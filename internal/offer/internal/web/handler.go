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
	"github.com/ecodeclub/hireflow/internal/offer/internal/domain"
	"github.com/ecodeclub/hireflow/internal/offer/internal/service"
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
	g := server.Group("/offers")
	g.POST("/create", ginx.B[CreateReq](h.Create))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/withdraw", ginx.B[IDReq](h.Withdraw))
	g.POST("/expiring", ginx.B[ExpiringReq](h.ExpiringSoon))
	g.POST("/stats", ginx.W(h.Stats))
	g.POST("/hired", ginx.B[PageReq](h.ListHired))

	t := server.Group("/offer-templates")
	t.POST("/save", ginx.B[TemplateSaveReq](h.SaveTemplate))
	t.POST("/list", ginx.W(h.ListTemplates))
}

// PublicRoutes 候选人凭SN操作，不走学区中间件
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/offers/public-detail", ginx.B[SNReq](h.PublicDetail))
	server.POST("/offers/accept", ginx.B[SNReq](h.Accept))
	server.POST("/offers/decline", ginx.B[DeclineReq](h.Decline))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	id, err := h.svc.Create(ctx, district, req.toDomain())
	switch {
	case errors.Is(err, service.ErrDuplicateOffer):
		return duplicateResult, err
	case errors.Is(err, service.ErrInvalidOffer),
		errors.Is(err, service.ErrTemplateNotFound):
		return invalidInputResult, err
	case errors.Is(err, service.ErrOfferNotFound):
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
	offer, err := h.svc.Detail(ctx, district, req.ID)
	if errors.Is(err, service.ErrOfferNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOffer(offer)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	list, total, err := h.svc.List(ctx, district, domain.Status(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Offer]{
			List: slice.Map(list, func(_ int, src domain.Offer) Offer {
				return newOffer(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Withdraw(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.Withdraw(ctx, district, req.ID)
	if errors.Is(err, service.ErrStatusConflict) {
		return statusConflictResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ExpiringSoon(ctx *ginx.Context, req ExpiringReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	days := req.Days
	if days <= 0 {
		days = 7
	}
	list, err := h.svc.ExpiringSoon(ctx, district, days)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(_ int, src domain.Offer) Offer {
			return newOffer(src)
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

func (h *Handler) ListHired(ctx *ginx.Context, req PageReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	list, total, err := h.svc.ListHired(ctx, district, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[HiredEmployee]{
			List: slice.Map(list, func(_ int, src domain.HiredEmployee) HiredEmployee {
				return HiredEmployee{
					ID:            src.ID,
					OfferID:       src.OfferID,
					ApplicationID: src.ApplicationID,
					Name:          src.Name,
					Email:         src.Email,
					PositionTitle: src.PositionTitle,
					HireDate:      src.HireDate,
				}
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) SaveTemplate(ctx *ginx.Context, req TemplateSaveReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	id, err := h.svc.CreateTemplate(ctx, domain.OfferTemplate{
		DistrictID:   district,
		Name:         req.Name,
		TemplateText: req.TemplateText,
	})
	if errors.Is(err, service.ErrInvalidOffer) {
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
	list, err := h.svc.ListTemplates(ctx, district)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(_ int, src domain.OfferTemplate) OfferTemplate {
			return OfferTemplate{
				ID:           src.ID,
				Name:         src.Name,
				TemplateText: src.TemplateText,
				Fields:       h.svc.ExtractFields(src.TemplateText),
				Utime:        src.Utime,
			}
		}),
	}, nil
}

func (h *Handler) PublicDetail(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	offer, letter, err := h.svc.PublicDetail(ctx, req.SN)
	if errors.Is(err, service.ErrOfferNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPublicOffer(offer, letter)}, nil
}

func (h *Handler) Accept(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	err := h.svc.Accept(ctx, req.SN)
	switch {
	// 过期单独给码：同属冲突类，但过期是终态，客户端不该重试
	case errors.Is(err, service.ErrOfferExpired):
		return expiredResult, err
	case errors.Is(err, service.ErrStatusConflict):
		return statusConflictResult, err
	case errors.Is(err, service.ErrOfferNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Decline(ctx *ginx.Context, req DeclineReq) (ginx.Result, error) {
	err := h.svc.Decline(ctx, req.SN, req.Reason)
	switch {
	case errors.Is(err, service.ErrOfferExpired):
		return expiredResult, err
	case errors.Is(err, service.ErrStatusConflict):
		return statusConflictResult, err
	case errors.Is(err, service.ErrOfferNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
