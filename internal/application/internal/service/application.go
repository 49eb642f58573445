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
	"errors"
	"sync"

	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/position"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidApplication   = errors.New("申请信息不完整")
	ErrApplicationNotFound  = errors.New("申请不存在")
	ErrDuplicateApplication = dao.ErrDuplicateApplication
	ErrStageConflict        = dao.ErrStageConflict
	ErrFinalStage           = domain.ErrFinalStage
	// ErrOverrideDisabled 强改阶段的运营通道未开启
	ErrOverrideDisabled = errors.New("阶段强改未开启")
	ErrPositionNotFound = errors.New("岗位不存在")
)

//go:generate mockgen -source=./application.go -package=appmocks --destination=../../mocks/application.mock.go Service
type Service interface {
	// Submit 公开投递。学区以岗位归属为准做交叉校验，推荐人和可面试时段随申请一并落库。
	Submit(ctx context.Context, district int64, app domain.JobApplication) (int64, error)
	Detail(ctx context.Context, district, id int64) (domain.JobApplication, error)
	List(ctx context.Context, district int64, stage domain.Stage, offset, limit int) ([]domain.JobApplication, int64, error)

	// AdvanceStage 沿固定顺序推进一个阶段，终态返回 ErrFinalStage
	AdvanceStage(ctx context.Context, district, id int64) (domain.Stage, error)
	// Reject 无条件拒绝，幂等
	Reject(ctx context.Context, district, id int64) error
	// OverrideStage 运营强改阶段，受配置开关保护，默认关闭
	OverrideStage(ctx context.Context, district, id int64, stage domain.Stage) error

	// MarkOfferAccepted Offer接受后的联动，仅限offer模块调用
	MarkOfferAccepted(ctx context.Context, district, id int64) error
	// CompleteInterviewStage 面试完成后的联动，单调推进已完成轮次
	CompleteInterviewStage(ctx context.Context, district, id int64, stageNumber int) error
	SetCurrentInterviewStage(ctx context.Context, district, id int64, stageNumber int) error

	Stats(ctx context.Context, district int64) (map[string]int64, error)
}

type service struct {
	repo          repository.ApplicationRepository
	posSvc        position.Service
	submittedPrd  event.SubmittedEventProducer
	stageChgPrd   event.StageChangedEventProducer
	allowOverride bool
	logger        *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	posSvc position.Service,
	submittedPrd event.SubmittedEventProducer,
	stageChgPrd event.StageChangedEventProducer,
	allowOverride bool) Service {
	return &service{
		repo:          repo,
		posSvc:        posSvc,
		submittedPrd:  submittedPrd,
		stageChgPrd:   stageChgPrd,
		allowOverride: allowOverride,
		logger:        elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, district int64, app domain.JobApplication) (int64, error) {
	app.DistrictID = district
	if !app.IsValid() {
		return 0, ErrInvalidApplication
	}
	// 岗位必须存在且归属同一学区，否则整个申请拒绝落库
	_, err := s.posSvc.Detail(ctx, district, app.PositionID)
	if err != nil {
		return 0, ErrPositionNotFound
	}
	app.Stage = domain.StageApplicationReview
	app.Active = true
	id, err := s.repo.Create(ctx, app)
	if err != nil {
		return 0, err
	}
	evt := event.SubmittedEvent{
		ApplicationID: id,
		DistrictID:    district,
		PositionID:    app.PositionID,
		ApplicantName: app.ApplicantName,
		Email:         app.Email,
	}
	// 通知与主事务解耦，发送失败不影响投递结果
	if er := s.submittedPrd.Produce(ctx, evt); er != nil {
		s.logger.Error("发送投递事件失败", elog.FieldErr(er), elog.Int64("aid", id))
	}
	return id, nil
}

func (s *service) Detail(ctx context.Context, district, id int64) (domain.JobApplication, error) {
	app, err := s.repo.FindByID(ctx, district, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.JobApplication{}, ErrApplicationNotFound
	}
	return app, err
}

func (s *service) List(ctx context.Context, district int64, stage domain.Stage, offset, limit int) ([]domain.JobApplication, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.JobApplication
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, district, stage, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, district, stage)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) AdvanceStage(ctx context.Context, district, id int64) (domain.Stage, error) {
	app, err := s.Detail(ctx, district, id)
	if err != nil {
		return "", err
	}
	next, err := app.Stage.Next()
	if err != nil {
		return app.Stage, err
	}
	// CAS保证并发推进时最多一个成功
	if err = s.repo.UpdateStage(ctx, district, id, app.Stage, next); err != nil {
		return app.Stage, err
	}
	s.produceStageChanged(ctx, app, app.Stage, next)
	return next, nil
}

func (s *service) Reject(ctx context.Context, district, id int64) error {
	app, err := s.Detail(ctx, district, id)
	if err != nil {
		return err
	}
	if err = s.repo.Reject(ctx, district, id); err != nil {
		return err
	}
	// 重复拒绝不再重复发事件
	if app.Stage != domain.StageRejected {
		s.produceStageChanged(ctx, app, app.Stage, domain.StageRejected)
	}
	return nil
}

func (s *service) OverrideStage(ctx context.Context, district, id int64, stage domain.Stage) error {
	if !s.allowOverride {
		return ErrOverrideDisabled
	}
	if !stage.IsValid() {
		return ErrInvalidApplication
	}
	app, err := s.Detail(ctx, district, id)
	if err != nil {
		return err
	}
	if err = s.repo.SetStage(ctx, district, id, stage); err != nil {
		return err
	}
	s.produceStageChanged(ctx, app, app.Stage, stage)
	return nil
}

func (s *service) MarkOfferAccepted(ctx context.Context, district, id int64) error {
	err := s.repo.SetStage(ctx, district, id, domain.StageOfferAccepted)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	return err
}

func (s *service) CompleteInterviewStage(ctx context.Context, district, id int64, stageNumber int) error {
	err := s.repo.CompleteInterviewStage(ctx, district, id, stageNumber)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	return err
}

func (s *service) SetCurrentInterviewStage(ctx context.Context, district, id int64, stageNumber int) error {
	return s.repo.SetCurrentInterviewStage(ctx, district, id, stageNumber)
}

func (s *service) Stats(ctx context.Context, district int64) (map[string]int64, error) {
	stages := []domain.Stage{
		domain.StageApplicationReview,
		domain.StageScreening,
		domain.StageInterview,
		domain.StageInterviewsCompleted,
		domain.StageReferenceCheck,
		domain.StageOffer,
		domain.StageOfferAccepted,
		domain.StageRejected,
	}
	var (
		eg  errgroup.Group
		mu  sync.Mutex
		res = make(map[string]int64, len(stages))
	)
	for _, stage := range stages {
		stage := stage
		eg.Go(func() error {
			count, err := s.repo.CountByStage(ctx, district, stage)
			if err != nil {
				return err
			}
			mu.Lock()
			res[stage.String()] = count
			mu.Unlock()
			return nil
		})
	}
	return res, eg.Wait()
}

func (s *service) produceStageChanged(ctx context.Context, app domain.JobApplication, from, to domain.Stage) {
	evt := event.StageChangedEvent{
		ApplicationID: app.ID,
		DistrictID:    app.DistrictID,
		ApplicantName: app.ApplicantName,
		Email:         app.Email,
		FromStage:     from.String(),
		ToStage:       to.String(),
	}
	if err := s.stageChgPrd.Produce(ctx, evt); err != nil {
		s.logger.Error("发送阶段变更事件失败", elog.FieldErr(err), elog.Int64("aid", app.ID))
	}
}
