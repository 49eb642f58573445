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
	"time"

	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/event"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/position"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInterview  = errors.New("面试信息不完整")
	ErrInterviewNotFound = errors.New("面试不存在")
	ErrStatusConflict    = dao.ErrStatusConflict
	// ErrStageMismatch 轮次不属于申请对应的岗位
	ErrStageMismatch = errors.New("面试轮次与申请岗位不匹配")
)

const dateLayout = "2006-01-02"

type Service interface {
	// Schedule 排期。轮次必须属于申请对应的岗位，线上面试生成不可猜测的会议链接。
	// 岗位是否已关闭不做校验，关闭岗位上的存量申请允许继续走流程。
	Schedule(ctx context.Context, district int64, itv domain.Interview) (int64, error)
	Detail(ctx context.Context, district, id int64) (domain.Interview, error)
	// MarkCompleted 标记完成并单调推进申请的已完成轮次
	MarkCompleted(ctx context.Context, district, id int64, feedback string, rating int8) error
	Cancel(ctx context.Context, district, id int64) error
	MarkNoShow(ctx context.Context, district, id int64) error

	// InterviewersFor 轮次面板成员，给定时间点时剔除已被占用的成员。
	// 冲突剔除只是建议性的，不在写入时强制。
	InterviewersFor(ctx context.Context, district, stageID int64, date, timeSlot string) ([]position.Interviewer, error)

	ListByApplication(ctx context.Context, district, applicationID int64) ([]domain.Interview, error)
	ByDateRange(ctx context.Context, district int64, from, to string) ([]domain.Interview, error)
	Upcoming(ctx context.Context, district int64, days int) ([]domain.Interview, error)
	Stats(ctx context.Context, district int64) (map[string]int64, error)
}

type service struct {
	repo   repository.InterviewRepository
	appSvc application.Service
	posSvc position.Service
	prd    event.ScheduledEventProducer
	logger *elog.Component
}

func NewService(repo repository.InterviewRepository,
	appSvc application.Service,
	posSvc position.Service,
	prd event.ScheduledEventProducer) Service {
	return &service{
		repo:   repo,
		appSvc: appSvc,
		posSvc: posSvc,
		prd:    prd,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Schedule(ctx context.Context, district int64, itv domain.Interview) (int64, error) {
	itv.DistrictID = district
	if !itv.IsValid() {
		return 0, ErrInvalidInterview
	}
	app, err := s.appSvc.Detail(ctx, district, itv.ApplicationID)
	if err != nil {
		return 0, ErrInterviewNotFound
	}
	stage, err := s.posSvc.StageDetail(ctx, district, itv.StageID)
	if err != nil {
		return 0, ErrStageMismatch
	}
	// 轮次归属经由岗位传递校验，天然限制在同一学区内
	if stage.PositionID != app.PositionID {
		return 0, ErrStageMismatch
	}
	itv.StageNumber = stage.StageNumber
	itv.Status = domain.StatusScheduled
	if itv.Virtual {
		itv.MeetingLink = shortuuid.New()
	}
	id, err := s.repo.Create(ctx, itv)
	if err != nil {
		return 0, err
	}
	if er := s.appSvc.SetCurrentInterviewStage(ctx, district, app.ID, stage.StageNumber); er != nil {
		s.logger.Error("更新申请当前轮次失败", elog.FieldErr(er), elog.Int64("aid", app.ID))
	}
	evt := event.ScheduledEvent{
		Action:        event.ActionScheduled,
		InterviewID:   id,
		DistrictID:    district,
		ApplicationID: app.ID,
		ApplicantName: app.ApplicantName,
		Email:         app.Email,
		StageName:     stage.StageName,
		Date:          itv.Date,
		Time:          itv.Time,
		Location:      itv.Location,
		MeetingLink:   itv.MeetingLink,
	}
	if er := s.prd.Produce(ctx, evt); er != nil {
		s.logger.Error("发送面试排期事件失败", elog.FieldErr(er), elog.Int64("iid", id))
	}
	return id, nil
}

func (s *service) Detail(ctx context.Context, district, id int64) (domain.Interview, error) {
	itv, err := s.repo.FindByID(ctx, district, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Interview{}, ErrInterviewNotFound
	}
	return itv, err
}

func (s *service) MarkCompleted(ctx context.Context, district, id int64, feedback string, rating int8) error {
	if rating != 0 && (rating < 1 || rating > 5) {
		return ErrInvalidInterview
	}
	itv, err := s.Detail(ctx, district, id)
	if err != nil {
		return err
	}
	if err = s.repo.Complete(ctx, district, id, feedback, rating); err != nil {
		return err
	}
	// 已完成轮次取最大值，后面的轮次先完成也不会回退
	if er := s.appSvc.CompleteInterviewStage(ctx, district, itv.ApplicationID, itv.StageNumber); er != nil {
		s.logger.Error("推进申请面试进度失败", elog.FieldErr(er),
			elog.Int64("aid", itv.ApplicationID))
	}
	evt := event.ScheduledEvent{
		Action:        event.ActionCompleted,
		InterviewID:   id,
		DistrictID:    district,
		ApplicationID: itv.ApplicationID,
		Date:          itv.Date,
		Time:          itv.Time,
	}
	if er := s.prd.Produce(ctx, evt); er != nil {
		s.logger.Error("发送面试完成事件失败", elog.FieldErr(er), elog.Int64("iid", id))
	}
	return nil
}

func (s *service) Cancel(ctx context.Context, district, id int64) error {
	return s.repo.UpdateStatus(ctx, district, id,
		domain.StatusScheduled, domain.StatusCancelled)
}

func (s *service) MarkNoShow(ctx context.Context, district, id int64) error {
	return s.repo.UpdateStatus(ctx, district, id,
		domain.StatusScheduled, domain.StatusNoShow)
}

func (s *service) InterviewersFor(ctx context.Context, district, stageID int64, date, timeSlot string) ([]position.Interviewer, error) {
	panel, err := s.posSvc.PanelFor(ctx, district, stageID)
	if err != nil {
		return nil, err
	}
	if date == "" || timeSlot == "" {
		return panel, nil
	}
	busyStages, err := s.repo.BusyStageIDs(ctx, district, date, timeSlot)
	if err != nil {
		return nil, err
	}
	busyEmails := make(map[string]struct{})
	for _, sid := range busyStages {
		members, err := s.posSvc.PanelFor(ctx, district, sid)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			busyEmails[m.Email] = struct{}{}
		}
	}
	res := make([]position.Interviewer, 0, len(panel))
	for _, m := range panel {
		if _, busy := busyEmails[m.Email]; !busy {
			res = append(res, m)
		}
	}
	return res, nil
}

func (s *service) ListByApplication(ctx context.Context, district, applicationID int64) ([]domain.Interview, error) {
	return s.repo.ListByApplication(ctx, district, applicationID)
}

func (s *service) ByDateRange(ctx context.Context, district int64, from, to string) ([]domain.Interview, error) {
	return s.repo.ListByDateRange(ctx, district, from, to)
}

func (s *service) Upcoming(ctx context.Context, district int64, days int) ([]domain.Interview, error) {
	now := time.Now()
	return s.repo.ListByDateRange(ctx, district,
		now.Format(dateLayout),
		now.AddDate(0, 0, days).Format(dateLayout))
}

func (s *service) Stats(ctx context.Context, district int64) (map[string]int64, error) {
	statuses := []domain.Status{
		domain.StatusScheduled,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
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
