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
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/service"
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
	g := server.Group("/onboarding/candidates")
	g.POST("/create", ginx.B[CreateCandidateReq](h.CreateCandidate))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/sections", ginx.B[IDReq](h.Sections))
	g.POST("/update-section", ginx.B[UpdateSectionReq](h.UpdateSection))
	g.POST("/submit", ginx.B[IDReq](h.Submit))
	g.POST("/review-section", ginx.B[ReviewSectionReq](h.ReviewSection))
	g.POST("/review", ginx.B[ReviewCandidateReq](h.ReviewCandidate))
	g.POST("/documents", ginx.B[IDReq](h.Documents))
	g.POST("/verify-document", ginx.B[VerifyDocumentReq](h.VerifyDocument))
	g.POST("/audit", ginx.B[AuditReq](h.AuditTrail))
	g.POST("/emails", ginx.B[IDReq](h.EmailLogs))
	g.POST("/awaiting", ginx.W(h.AwaitingOnboarding))
	g.POST("/stats", ginx.W(h.Stats))
}

// PublicRoutes 候选人凭token的自助入口，不走学区中间件
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/onboarding")
	g.POST("/resolve", ginx.B[TokenReq](h.ResolveByToken))
	g.POST("/validate-token", ginx.B[TokenReq](h.ValidateToken))
	g.POST("/update-section", ginx.B[TokenUpdateSectionReq](h.TokenUpdateSection))
	g.POST("/submit", ginx.B[TokenReq](h.TokenSubmit))
	g.POST("/upload-document", ginx.B[TokenUploadDocumentReq](h.TokenUploadDocument))
}

func (h *Handler) CreateCandidate(ctx *ginx.Context, req CreateCandidateReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	cand, err := h.svc.CreateCandidate(ctx, district, domain.Candidate{
		Name:          req.Name,
		Email:         req.Email,
		PositionTitle: req.PositionTitle,
		OfferDate:     req.OfferDate,
		StartDate:     req.StartDate,
		ApplicationID: req.ApplicationID,
	}, h.staffActor(ctx))
	if errors.Is(err, service.ErrInvalidCandidate) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	// token只在这一次响应里下发
	return ginx.Result{Data: newCandidate(cand, true)}, nil
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
		Data: ginx.DataList[Candidate]{
			List: slice.Map(list, func(_ int, src domain.Candidate) Candidate {
				return newCandidate(src, false)
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
	cand, err := h.svc.ResolveByID(ctx, district, req.ID)
	if errors.Is(err, service.ErrCandidateNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCandidate(cand, false)}, nil
}

func (h *Handler) Sections(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	sections, err := h.svc.Sections(ctx, district, req.ID)
	if errors.Is(err, service.ErrCandidateNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(sections, func(_ int, src domain.Section) Section {
			return newSection(src)
		}),
	}, nil
}

func (h *Handler) UpdateSection(ctx *ginx.Context, req UpdateSectionReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	cand, err := h.svc.UpdateSection(ctx, district, req.CandidateID,
		req.SectionIndex, req.FormData, req.IsCompleted, h.staffActor(ctx))
	switch {
	case errors.Is(err, service.ErrInvalidSection):
		return invalidInputResult, err
	case errors.Is(err, service.ErrCandidateNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCandidate(cand, false)}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	return h.submit(ctx, district, req.ID, h.staffActor(ctx))
}

func (h *Handler) ReviewSection(ctx *ginx.Context, req ReviewSectionReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.ReviewSection(ctx, district, req.CandidateID, req.SectionIndex, req.Comments, h.staffActor(ctx))
	switch {
	case errors.Is(err, service.ErrInvalidSection):
		return invalidInputResult, err
	case errors.Is(err, service.ErrCandidateNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ReviewCandidate(ctx *ginx.Context, req ReviewCandidateReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.ReviewCandidate(ctx, district, req.CandidateID, req.Notes, h.staffActor(ctx))
	if errors.Is(err, service.ErrCandidateNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Documents(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	docs, err := h.svc.Documents(ctx, district, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(docs, func(_ int, src domain.Document) Document {
			return Document{
				ID:           src.ID,
				CandidateID:  src.CandidateID,
				DocumentType: src.DocumentType,
				FileName:     src.FileName,
				FileSize:     src.FileSize,
				FileURL:      src.FileURL,
				Verified:     src.Verified,
				VerifiedAt:   src.VerifiedAt,
			}
		}),
	}, nil
}

func (h *Handler) VerifyDocument(ctx *ginx.Context, req VerifyDocumentReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	err := h.svc.VerifyDocument(ctx, district, req.DocumentID, req.Notes, h.staffActor(ctx))
	if errors.Is(err, service.ErrCandidateNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) AuditTrail(ctx *ginx.Context, req AuditReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	logs, err := h.svc.AuditTrail(ctx, district, req.CandidateID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(logs, func(_ int, src domain.AuditLog) AuditLog {
			return AuditLog{
				Action:      src.Action,
				SectionName: src.SectionName,
				PerformedBy: src.PerformedBy,
				ByCandidate: src.ByCandidate,
				Details:     src.Details,
				IP:          src.IP,
				Ctime:       src.Ctime,
			}
		}),
	}, nil
}

func (h *Handler) EmailLogs(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	logs, err := h.svc.EmailLogs(ctx, district, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(logs, func(_ int, src domain.EmailLog) EmailLog {
			return EmailLog{
				EmailType:    src.EmailType,
				Recipient:    src.Recipient,
				Subject:      src.Subject,
				Sent:         src.Sent,
				ErrorMessage: src.ErrorMessage,
				Ctime:        src.Ctime,
			}
		}),
	}, nil
}

func (h *Handler) AwaitingOnboarding(ctx *ginx.Context) (ginx.Result, error) {
	district, ok := dctx.DistrictFromCtx(ctx.Request.Context())
	if !ok {
		return invalidInputResult, errors.New("缺少学区信息")
	}
	apps, err := h.svc.AwaitingOnboarding(ctx, district)
	if err != nil {
		return systemErrorResult, err
	}
	type awaiting struct {
		ApplicationID int64  `json:"applicationId"`
		ApplicantName string `json:"applicantName"`
		Email         string `json:"email"`
	}
	res := make([]awaiting, 0, len(apps))
	for _, app := range apps {
		res = append(res, awaiting{
			ApplicationID: app.ID,
			ApplicantName: app.ApplicantName,
			Email:         app.Email,
		})
	}
	return ginx.Result{Data: res}, nil
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

func (h *Handler) ResolveByToken(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	cand, err := h.svc.ResolveByToken(ctx, req.Token)
	if errors.Is(err, service.ErrTokenExpired) {
		return tokenExpiredResult, err
	}
	if errors.Is(err, service.ErrCandidateNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	res := ginx.Result{}
	type resolved struct {
		Candidate Candidate `json:"candidate"`
		Sections  []Section `json:"sections"`
	}
	sections, err := h.svc.Sections(ctx, cand.DistrictID, cand.ID)
	if err != nil {
		return systemErrorResult, err
	}
	res.Data = resolved{
		Candidate: newCandidate(cand, false),
		Sections: slice.Map(sections, func(_ int, src domain.Section) Section {
			return newSection(src)
		}),
	}
	return res, nil
}

func (h *Handler) ValidateToken(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	state, err := h.svc.ValidateToken(ctx, req.Token)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: state}, nil
}

func (h *Handler) TokenUpdateSection(ctx *ginx.Context, req TokenUpdateSectionReq) (ginx.Result, error) {
	cand, res, err := h.resolve(ctx, req.Token)
	if err != nil {
		return res, err
	}
	updated, err := h.svc.UpdateSection(ctx, cand.DistrictID, cand.ID,
		req.SectionIndex, req.FormData, req.IsCompleted, h.candidateActor(ctx))
	switch {
	case errors.Is(err, service.ErrInvalidSection):
		return invalidInputResult, err
	case errors.Is(err, service.ErrCandidateNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCandidate(updated, false)}, nil
}

func (h *Handler) TokenSubmit(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	cand, res, err := h.resolve(ctx, req.Token)
	if err != nil {
		return res, err
	}
	return h.submit(ctx, cand.DistrictID, cand.ID, h.candidateActor(ctx))
}

func (h *Handler) TokenUploadDocument(ctx *ginx.Context, req TokenUploadDocumentReq) (ginx.Result, error) {
	cand, res, err := h.resolve(ctx, req.Token)
	if err != nil {
		return res, err
	}
	id, err := h.svc.UploadDocument(ctx, cand.DistrictID, domain.Document{
		CandidateID:  cand.ID,
		DocumentType: req.DocumentType,
		FileName:     req.FileName,
		FileSize:     req.FileSize,
		FileURL:      req.FileURL,
	}, h.candidateActor(ctx))
	if errors.Is(err, service.ErrInvalidDocumentType) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) submit(ctx *ginx.Context, district, candidateID int64, actor service.Actor) (ginx.Result, error) {
	err := h.svc.Submit(ctx, district, candidateID, actor)
	switch {
	case errors.Is(err, service.ErrSectionsIncomplete):
		return incompleteResult, err
	case errors.Is(err, service.ErrAlreadySubmitted):
		return alreadySubmittedResult, err
	case errors.Is(err, service.ErrTokenExpired):
		return tokenExpiredResult, err
	case errors.Is(err, service.ErrCandidateNotFound):
		return notFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) resolve(ctx *ginx.Context, token string) (domain.Candidate, ginx.Result, error) {
	cand, err := h.svc.ResolveByToken(ctx, token)
	if errors.Is(err, service.ErrTokenExpired) {
		return domain.Candidate{}, tokenExpiredResult, err
	}
	if errors.Is(err, service.ErrCandidateNotFound) {
		return domain.Candidate{}, notFoundResult, err
	}
	if err != nil {
		return domain.Candidate{}, systemErrorResult, err
	}
	return cand, ginx.Result{}, nil
}

// staffActor 职员身份由网关侧校验后以请求头透传
func (h *Handler) staffActor(ctx *ginx.Context) service.Actor {
	uid, _ := strconv.ParseInt(ctx.GetHeader("X-Staff-ID"), 10, 64)
	return service.Actor{
		StaffID:   uid,
		IP:        ctx.ClientIP(),
		UserAgent: ctx.GetHeader("User-Agent"),
	}
}

func (h *Handler) candidateActor(ctx *ginx.Context) service.Actor {
	return service.Actor{
		ByCandidate: true,
		IP:          ctx.ClientIP(),
		UserAgent:   ctx.GetHeader("User-Agent"),
	}
}
