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

package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/event"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/repository"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// 令牌有效期30天
const tokenTTL = 30 * 24 * time.Hour

var (
	ErrInvalidCandidate    = errors.New("候选人信息不完整")
	ErrCandidateNotFound   = errors.New("候选人不存在")
	ErrTokenExpired        = errors.New("访问令牌已过期")
	ErrInvalidSection      = errors.New("分区下标不合法")
	ErrSectionsIncomplete  = errors.New("分区尚未全部完成")
	ErrAlreadySubmitted    = dao.ErrAlreadySubmitted
	ErrInvalidDocumentType = errors.New("材料类型不合法")
)

// Actor 本次操作的发起者：职员带uid，候选人凭token操作时 ByCandidate 为真。
// IP和UA只进审计日志。
type Actor struct {
	StaffID     int64
	ByCandidate bool
	IP          string
	UserAgent   string
}

type Service interface {
	// CreateCandidate 签发访问令牌并预置8个空分区
	CreateCandidate(ctx context.Context, district int64, cand domain.Candidate, actor Actor) (domain.Candidate, error)
	// ResolveByToken 候选人侧入口，令牌过期不放行
	ResolveByToken(ctx context.Context, token string) (domain.Candidate, error)
	ResolveByID(ctx context.Context, district, id int64) (domain.Candidate, error)
	List(ctx context.Context, district int64, status domain.Status, offset, limit int) ([]domain.Candidate, int64, error)
	Sections(ctx context.Context, district, candidateID int64) ([]domain.Section, error)

	// UpdateSection 写入分区并从存储重算完成数和状态
	UpdateSection(ctx context.Context, district, candidateID int64, sectionIndex int,
		formData map[string]any, isCompleted bool, actor Actor) (domain.Candidate, error)
	// Submit 8个分区全部完成且未提交过才允许；候选人路径还要求令牌未过期
	Submit(ctx context.Context, district, candidateID int64, actor Actor) error

	ReviewSection(ctx context.Context, district, candidateID int64, sectionIndex int, comments string, actor Actor) error
	ReviewCandidate(ctx context.Context, district, candidateID int64, notes string, actor Actor) error

	// ValidateToken 只读探测，不返回候选人数据
	ValidateToken(ctx context.Context, token string) (domain.TokenState, error)

	UploadDocument(ctx context.Context, district int64, doc domain.Document, actor Actor) (int64, error)
	Documents(ctx context.Context, district, candidateID int64) ([]domain.Document, error)
	VerifyDocument(ctx context.Context, district, docID int64, notes string, actor Actor) error

	AuditTrail(ctx context.Context, district, candidateID int64, offset, limit int) ([]domain.AuditLog, error)
	// LogEmail 通知侧回写邮件结果，失败也记账
	LogEmail(ctx context.Context, log domain.EmailLog) error
	EmailLogs(ctx context.Context, district, candidateID int64) ([]domain.EmailLog, error)

	// AwaitingOnboarding 已接受Offer但还没建入职记录的申请
	AwaitingOnboarding(ctx context.Context, district int64) ([]application.JobApplication, error)
	Stats(ctx context.Context, district int64) (map[string]int64, error)
}

type service struct {
	repo   repository.OnboardingRepository
	appSvc application.Service
	prd    event.OnboardingEventProducer
	logger *elog.Component
}

func NewService(repo repository.OnboardingRepository,
	appSvc application.Service,
	prd event.OnboardingEventProducer) Service {
	return &service{
		repo:   repo,
		appSvc: appSvc,
		prd:    prd,
		logger: elog.DefaultLogger,
	}
}

func (s *service) CreateCandidate(ctx context.Context, district int64, cand domain.Candidate, actor Actor) (domain.Candidate, error) {
	if cand.Name == "" || cand.Email == "" {
		return domain.Candidate{}, ErrInvalidCandidate
	}
	token, err := generateToken()
	if err != nil {
		return domain.Candidate{}, err
	}
	now := time.Now()
	cand.DistrictID = district
	cand.AccessToken = token
	cand.TokenExpiresAt = now.Add(tokenTTL).UnixMilli()
	cand.Status = domain.StatusNotStarted
	cand.CompletedSections = 0
	if cand.OfferDate == 0 {
		cand.OfferDate = now.UnixMilli()
	}
	id, err := s.repo.CreateCandidate(ctx, cand)
	if err != nil {
		return domain.Candidate{}, err
	}
	cand.ID = id
	s.audit(ctx, domain.AuditLog{
		DistrictID:  district,
		CandidateID: id,
		Action:      domain.ActionCreated,
		PerformedBy: actor.StaffID,
		ByCandidate: actor.ByCandidate,
		IP:          actor.IP,
		UserAgent:   actor.UserAgent,
	})
	if er := s.prd.Produce(ctx, event.OnboardingEvent{
		CandidateID:   id,
		DistrictID:    district,
		Action:        event.ActionInvited,
		Name:          cand.Name,
		Email:         cand.Email,
		Position:      cand.PositionTitle,
		OnboardingURL: fmt.Sprintf("/onboarding/%s", cand.AccessToken),
		StartDate:     cand.StartDate,
	}); er != nil {
		s.logger.Error("发送入职邀请事件失败", elog.FieldErr(er), elog.Int64("cid", id))
	}
	return cand, nil
}

func (s *service) ResolveByToken(ctx context.Context, token string) (domain.Candidate, error) {
	cand, err := s.repo.FindCandidateByToken(ctx, token)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Candidate{}, ErrCandidateNotFound
	}
	if err != nil {
		return domain.Candidate{}, err
	}
	if cand.IsTokenExpired(time.Now()) {
		return domain.Candidate{}, ErrTokenExpired
	}
	return cand, nil
}

func (s *service) ResolveByID(ctx context.Context, district, id int64) (domain.Candidate, error) {
	cand, err := s.repo.FindCandidateByID(ctx, district, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Candidate{}, ErrCandidateNotFound
	}
	return cand, err
}

func (s *service) List(ctx context.Context, district int64, status domain.Status, offset, limit int) ([]domain.Candidate, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Candidate
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.ListCandidates(ctx, district, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountCandidates(ctx, district, status)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) Sections(ctx context.Context, district, candidateID int64) ([]domain.Section, error) {
	if _, err := s.ResolveByID(ctx, district, candidateID); err != nil {
		return nil, err
	}
	return s.repo.FindSections(ctx, candidateID)
}

func (s *service) UpdateSection(ctx context.Context, district, candidateID int64, sectionIndex int,
	formData map[string]any, isCompleted bool, actor Actor) (domain.Candidate, error) {
	if sectionIndex < 0 || sectionIndex >= domain.SectionCount {
		return domain.Candidate{}, ErrInvalidSection
	}
	cand, err := s.repo.UpdateSection(ctx, district, candidateID, domain.Section{
		SectionIndex: sectionIndex,
		FormData:     formData,
		IsCompleted:  isCompleted,
	})
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Candidate{}, ErrCandidateNotFound
	}
	if err != nil {
		return domain.Candidate{}, err
	}
	action := domain.ActionUpdated
	if isCompleted {
		action = domain.ActionSectionCompleted
	}
	s.audit(ctx, domain.AuditLog{
		DistrictID:  district,
		CandidateID: candidateID,
		Action:      action,
		SectionName: domain.SectionNames[sectionIndex],
		PerformedBy: actor.StaffID,
		ByCandidate: actor.ByCandidate,
		Details:     map[string]any{"completedSections": cand.CompletedSections},
		IP:          actor.IP,
		UserAgent:   actor.UserAgent,
	})
	return cand, nil
}

func (s *service) Submit(ctx context.Context, district, candidateID int64, actor Actor) error {
	cand, err := s.ResolveByID(ctx, district, candidateID)
	if err != nil {
		return err
	}
	// 职员代提交可以绕过令牌时效，候选人不行
	if actor.ByCandidate && cand.IsTokenExpired(time.Now()) {
		return ErrTokenExpired
	}
	if cand.CompletedSections != domain.SectionCount {
		return ErrSectionsIncomplete
	}
	if err = s.repo.MarkSubmitted(ctx, district, candidateID, time.Now().UnixMilli()); err != nil {
		return err
	}
	s.audit(ctx, domain.AuditLog{
		DistrictID:  district,
		CandidateID: candidateID,
		Action:      domain.ActionSubmitted,
		PerformedBy: actor.StaffID,
		ByCandidate: actor.ByCandidate,
		IP:          actor.IP,
		UserAgent:   actor.UserAgent,
	})
	if er := s.prd.Produce(ctx, event.OnboardingEvent{
		CandidateID: candidateID,
		DistrictID:  district,
		Action:      event.ActionSubmitted,
		Name:        cand.Name,
		Email:       cand.Email,
		Position:    cand.PositionTitle,
	}); er != nil {
		s.logger.Error("发送入职提交事件失败", elog.FieldErr(er), elog.Int64("cid", candidateID))
	}
	return nil
}

func (s *service) ReviewSection(ctx context.Context, district, candidateID int64, sectionIndex int, comments string, actor Actor) error {
	if sectionIndex < 0 || sectionIndex >= domain.SectionCount {
		return ErrInvalidSection
	}
	err := s.repo.ReviewSection(ctx, district, candidateID, sectionIndex, comments)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrCandidateNotFound
	}
	if err != nil {
		return err
	}
	s.audit(ctx, domain.AuditLog{
		DistrictID:  district,
		CandidateID: candidateID,
		Action:      domain.ActionReviewed,
		SectionName: domain.SectionNames[sectionIndex],
		PerformedBy: actor.StaffID,
		IP:          actor.IP,
		UserAgent:   actor.UserAgent,
	})
	return nil
}

func (s *service) ReviewCandidate(ctx context.Context, district, candidateID int64, notes string, actor Actor) error {
	err := s.repo.ReviewCandidate(ctx, district, candidateID, actor.StaffID, notes)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrCandidateNotFound
	}
	if err != nil {
		return err
	}
	s.audit(ctx, domain.AuditLog{
		DistrictID:  district,
		CandidateID: candidateID,
		Action:      domain.ActionReviewed,
		PerformedBy: actor.StaffID,
		IP:          actor.IP,
		UserAgent:   actor.UserAgent,
	})
	return nil
}

func (s *service) ValidateToken(ctx context.Context, token string) (domain.TokenState, error) {
	cand, err := s.repo.FindCandidateByToken(ctx, token)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.TokenState{}, nil
	}
	if err != nil {
		return domain.TokenState{}, err
	}
	if cand.IsTokenExpired(time.Now()) {
		return domain.TokenState{Expired: true}, nil
	}
	if cand.SubmittedAt > 0 {
		return domain.TokenState{AlreadySubmitted: true}, nil
	}
	return domain.TokenState{Valid: true}, nil
}

func (s *service) UploadDocument(ctx context.Context, district int64, doc domain.Document, actor Actor) (int64, error) {
	if !validDocumentType(doc.DocumentType) {
		return 0, ErrInvalidDocumentType
	}
	if _, err := s.ResolveByID(ctx, district, doc.CandidateID); err != nil {
		return 0, err
	}
	doc.DistrictID = district
	id, err := s.repo.CreateDocument(ctx, doc)
	if err != nil {
		return 0, err
	}
	s.audit(ctx, domain.AuditLog{
		DistrictID:  district,
		CandidateID: doc.CandidateID,
		Action:      domain.ActionDocumentUploaded,
		PerformedBy: actor.StaffID,
		ByCandidate: actor.ByCandidate,
		Details:     map[string]any{"documentType": doc.DocumentType, "fileName": doc.FileName},
		IP:          actor.IP,
		UserAgent:   actor.UserAgent,
	})
	return id, nil
}

func (s *service) Documents(ctx context.Context, district, candidateID int64) ([]domain.Document, error) {
	return s.repo.FindDocuments(ctx, district, candidateID)
}

func (s *service) VerifyDocument(ctx context.Context, district, docID int64, notes string, actor Actor) error {
	err := s.repo.VerifyDocument(ctx, district, docID, actor.StaffID, notes)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrCandidateNotFound
	}
	return err
}

func (s *service) AuditTrail(ctx context.Context, district, candidateID int64, offset, limit int) ([]domain.AuditLog, error) {
	return s.repo.FindAuditLogs(ctx, district, candidateID, offset, limit)
}

func (s *service) LogEmail(ctx context.Context, log domain.EmailLog) error {
	_, err := s.repo.CreateEmailLog(ctx, log)
	return err
}

func (s *service) EmailLogs(ctx context.Context, district, candidateID int64) ([]domain.EmailLog, error) {
	return s.repo.FindEmailLogs(ctx, district, candidateID)
}

func (s *service) AwaitingOnboarding(ctx context.Context, district int64) ([]application.JobApplication, error) {
	apps, _, err := s.appSvc.List(ctx, district, application.StageOfferAccepted, 0, 1000)
	if err != nil {
		return nil, err
	}
	linked, err := s.repo.LinkedApplicationIDs(ctx, district)
	if err != nil {
		return nil, err
	}
	linkedSet := make(map[int64]struct{}, len(linked))
	for _, id := range linked {
		linkedSet[id] = struct{}{}
	}
	return slice.FilterDelete(apps, func(_ int, src application.JobApplication) bool {
		_, ok := linkedSet[src.ID]
		return ok
	}), nil
}

func (s *service) Stats(ctx context.Context, district int64) (map[string]int64, error) {
	statuses := []domain.Status{
		domain.StatusNotStarted,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusSubmitted,
	}
	var (
		eg  errgroup.Group
		mu  sync.Mutex
		res = make(map[string]int64, len(statuses))
	)
	for _, status := range statuses {
		status := status
		eg.Go(func() error {
			count, err := s.repo.CountByStatus(ctx, district, status)
			if err != nil {
				return err
			}
			mu.Lock()
			res[status.String()] = count
			mu.Unlock()
			return nil
		})
	}
	return res, eg.Wait()
}

// audit 审计失败只记日志，不影响主操作
func (s *service) audit(ctx context.Context, log domain.AuditLog) {
	if err := s.repo.AppendAudit(ctx, log); err != nil {
		s.logger.Error("写入审计日志失败", elog.FieldErr(err),
			elog.Int64("cid", log.CandidateID))
	}
}

// generateToken 32字节随机数，base64url编码，作为候选人的持有凭证
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("生成访问令牌失败: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func validDocumentType(t string) bool {
	switch t {
	case domain.DocumentResume, domain.DocumentI9ListA, domain.DocumentI9ListB,
		domain.DocumentI9ListC, domain.DocumentCertification, domain.DocumentLicense,
		domain.DocumentTranscript, domain.DocumentOther:
		return true
	default:
		return false
	}
}
