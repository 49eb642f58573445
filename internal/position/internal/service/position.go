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
	"fmt"
	"time"

	"github.com/ecodeclub/hireflow/internal/position/internal/domain"
	"github.com/ecodeclub/hireflow/internal/position/internal/repository"
	"github.com/ecodeclub/hireflow/internal/position/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidPosition  = errors.New("岗位信息不完整")
	ErrPositionNotFound = errors.New("岗位不存在")
	ErrDuplicateReqID   = dao.ErrDuplicateReqID
	ErrDistrictMismatch = dao.ErrDistrictMismatch
)

// Stats 岗位看板统计。
type Stats struct {
	Draft  int64
	Open   int64
	Closed int64
}

//go:generate mockgen -source=./position.go -package=posmocks --destination=../../mocks/position.mock.go Service
type Service interface {
	Save(ctx context.Context, pos domain.Position) (int64, error)
	Detail(ctx context.Context, district, id int64) (domain.Position, error)
	List(ctx context.Context, district int64, offset, limit int) ([]domain.Position, int64, error)
	// PublicList 公开招聘版：只返回 Open 且发布窗口覆盖当天的岗位
	PublicList(ctx context.Context, district int64, search, department, worksite string) ([]domain.Position, error)
	Stats(ctx context.Context, district int64) (Stats, error)
	CreateFromTemplate(ctx context.Context, district, templateID int64, reqID string, postingStart, postingEnd int64) (int64, error)

	// StageDetail 供面试排期方校验轮次归属，附带面板成员
	StageDetail(ctx context.Context, district, stageID int64) (domain.InterviewStage, error)
	PanelFor(ctx context.Context, district, stageID int64) ([]domain.Interviewer, error)
	AddInterviewer(ctx context.Context, iv domain.Interviewer) (int64, error)

	CreateQuestion(ctx context.Context, q domain.ScreeningQuestion) (int64, error)
	ListQuestions(ctx context.Context, district int64, category string) ([]domain.ScreeningQuestion, error)
	BindQuestions(ctx context.Context, district, positionID int64, questionIDs []int64) error

	CreateTemplate(ctx context.Context, t domain.JobTemplate) (int64, error)
	ListTemplates(ctx context.Context, district int64) ([]domain.JobTemplate, error)
}

type service struct {
	repo repository.PositionRepository
}

func NewService(repo repository.PositionRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, pos domain.Position) (int64, error) {
	if pos.Status == "" {
		pos.Status = domain.StatusDraft
	}
	if !pos.IsValid() {
		return 0, ErrInvalidPosition
	}
	if pos.InterviewStageCount <= 0 {
		pos.InterviewStageCount = 1
	}
	// 首次保存时按轮次数补齐默认轮次定义
	if pos.ID == 0 && len(pos.Stages) == 0 {
		for i := 1; i <= pos.InterviewStageCount; i++ {
			pos.Stages = append(pos.Stages, domain.InterviewStage{
				StageNumber: i,
				StageName:   fmt.Sprintf("第%d轮面试", i),
			})
		}
	}
	return s.repo.Save(ctx, pos)
}

func (s *service) Detail(ctx context.Context, district, id int64) (domain.Position, error) {
	pos, err := s.repo.Find(ctx, district, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Position{}, ErrPositionNotFound
	}
	return pos, err
}

func (s *service) List(ctx context.Context, district int64, offset, limit int) ([]domain.Position, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Position
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, district, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, district)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) PublicList(ctx context.Context, district int64, search, department, worksite string) ([]domain.Position, error) {
	return s.repo.ListOpen(ctx, district, time.Now(), search, department, worksite)
}

func (s *service) Stats(ctx context.Context, district int64) (Stats, error) {
	var (
		eg  errgroup.Group
		res Stats
	)
	eg.Go(func() error {
		var err error
		res.Draft, err = s.repo.CountByStatus(ctx, district, domain.StatusDraft)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Open, err = s.repo.CountByStatus(ctx, district, domain.StatusOpen)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Closed, err = s.repo.CountByStatus(ctx, district, domain.StatusClosed)
		return err
	})
	return res, eg.Wait()
}

func (s *service) CreateFromTemplate(ctx context.Context, district, templateID int64, reqID string, postingStart, postingEnd int64) (int64, error) {
	t, err := s.repo.FindTemplate(ctx, district, templateID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return 0, ErrPositionNotFound
	}
	if err != nil {
		return 0, err
	}
	return s.Save(ctx, domain.Position{
		DistrictID:          district,
		ReqID:               reqID,
		Title:               t.PrimaryJobTitle,
		Department:          t.Department,
		Worksite:            t.Worksite,
		FTE:                 t.FTE,
		SalaryRange:         t.SalaryRange,
		EmployeeCategory:    t.EmployeeCategory,
		InterviewStageCount: t.InterviewStageCount,
		PostingStartDate:    postingStart,
		PostingEndDate:      postingEnd,
		Status:              domain.StatusDraft,
	})
}

func (s *service) StageDetail(ctx context.Context, district, stageID int64) (domain.InterviewStage, error) {
	stage, err := s.repo.FindStage(ctx, district, stageID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.InterviewStage{}, ErrPositionNotFound
	}
	return stage, err
}

func (s *service) PanelFor(ctx context.Context, district, stageID int64) ([]domain.Interviewer, error) {
	return s.repo.PanelFor(ctx, district, stageID)
}

func (s *service) AddInterviewer(ctx context.Context, iv domain.Interviewer) (int64, error) {
	if iv.Name == "" || iv.Email == "" || iv.StageID == 0 {
		return 0, ErrInvalidPosition
	}
	return s.repo.AddInterviewer(ctx, iv)
}

func (s *service) CreateQuestion(ctx context.Context, q domain.ScreeningQuestion) (int64, error) {
	if q.Question == "" || q.Category == "" {
		return 0, ErrInvalidPosition
	}
	return s.repo.CreateQuestion(ctx, q)
}

func (s *service) ListQuestions(ctx context.Context, district int64, category string) ([]domain.ScreeningQuestion, error) {
	return s.repo.ListQuestions(ctx, district, category)
}

func (s *service) BindQuestions(ctx context.Context, district, positionID int64, questionIDs []int64) error {
	if len(questionIDs) == 0 {
		return nil
	}
	err := s.repo.BindQuestions(ctx, district, positionID, questionIDs)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrPositionNotFound
	}
	return err
}

func (s *service) CreateTemplate(ctx context.Context, t domain.JobTemplate) (int64, error) {
	if t.TemplateName == "" || t.PrimaryJobTitle == "" {
		return 0, ErrInvalidPosition
	}
	if t.InterviewStageCount <= 0 {
		t.InterviewStageCount = 1
	}
	return s.repo.CreateTemplate(ctx, t)
}

func (s *service) ListTemplates(ctx context.Context, district int64) ([]domain.JobTemplate, error) {
	return s.repo.ListTemplates(ctx, district)
}
