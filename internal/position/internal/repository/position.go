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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/position/internal/domain"
	"github.com/ecodeclub/hireflow/internal/position/internal/repository/dao"
)

type PositionRepository interface {
	Save(ctx context.Context, pos domain.Position) (int64, error)
	Find(ctx context.Context, district, id int64) (domain.Position, error)
	List(ctx context.Context, district int64, offset, limit int) ([]domain.Position, error)
	Count(ctx context.Context, district int64) (int64, error)
	ListOpen(ctx context.Context, district int64, today time.Time, search, department, worksite string) ([]domain.Position, error)
	CountByStatus(ctx context.Context, district int64, status domain.Status) (int64, error)

	FindStage(ctx context.Context, district, stageID int64) (domain.InterviewStage, error)
	AddInterviewer(ctx context.Context, iv domain.Interviewer) (int64, error)
	PanelFor(ctx context.Context, district, stageID int64) ([]domain.Interviewer, error)

	CreateQuestion(ctx context.Context, q domain.ScreeningQuestion) (int64, error)
	ListQuestions(ctx context.Context, district int64, category string) ([]domain.ScreeningQuestion, error)
	BindQuestions(ctx context.Context, district, positionID int64, questionIDs []int64) error

	CreateTemplate(ctx context.Context, t domain.JobTemplate) (int64, error)
	FindTemplate(ctx context.Context, district, id int64) (domain.JobTemplate, error)
	ListTemplates(ctx context.Context, district int64) ([]domain.JobTemplate, error)
}

type positionRepository struct {
	dao dao.PositionDAO
}

func NewPositionRepository(d dao.PositionDAO) PositionRepository {
	return &positionRepository{dao: d}
}

func (p *positionRepository) Save(ctx context.Context, pos domain.Position) (int64, error) {
	stages := slice.Map(pos.Stages, func(idx int, src domain.InterviewStage) dao.InterviewStage {
		return dao.InterviewStage{
			ID:          src.ID,
			DistrictID:  pos.DistrictID,
			PositionID:  pos.ID,
			StageNumber: src.StageNumber,
			StageName:   src.StageName,
		}
	})
	return p.dao.Save(ctx, p.toEntity(pos), stages)
}

func (p *positionRepository) Find(ctx context.Context, district, id int64) (domain.Position, error) {
	entity, stages, err := p.dao.Find(ctx, district, id)
	if err != nil {
		return domain.Position{}, err
	}
	res := p.toDomain(entity)
	res.Stages = slice.Map(stages, func(idx int, src dao.InterviewStage) domain.InterviewStage {
		return p.stageToDomain(src)
	})
	questions, err := p.dao.FindQuestionsByPosition(ctx, district, id)
	if err != nil {
		return domain.Position{}, err
	}
	res.Questions = slice.Map(questions, func(idx int, src dao.ScreeningQuestion) domain.ScreeningQuestion {
		return p.questionToDomain(src)
	})
	return res, nil
}

func (p *positionRepository) List(ctx context.Context, district int64, offset, limit int) ([]domain.Position, error) {
	entities, err := p.dao.List(ctx, district, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Position) domain.Position {
		return p.toDomain(src)
	}), nil
}

func (p *positionRepository) Count(ctx context.Context, district int64) (int64, error) {
	return p.dao.Count(ctx, district)
}

func (p *positionRepository) ListOpen(ctx context.Context, district int64, today time.Time, search, department, worksite string) ([]domain.Position, error) {
	entities, err := p.dao.ListOpen(ctx, district, today.UnixMilli(), search, department, worksite)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Position) domain.Position {
		return p.toDomain(src)
	}), nil
}

func (p *positionRepository) CountByStatus(ctx context.Context, district int64, status domain.Status) (int64, error) {
	return p.dao.CountByStatus(ctx, district, status.String())
}

func (p *positionRepository) FindStage(ctx context.Context, district, stageID int64) (domain.InterviewStage, error) {
	stage, err := p.dao.FindStage(ctx, district, stageID)
	if err != nil {
		return domain.InterviewStage{}, err
	}
	res := p.stageToDomain(stage)
	panel, err := p.dao.FindInterviewersByStage(ctx, district, stageID)
	if err != nil {
		return domain.InterviewStage{}, err
	}
	res.Panel = slice.Map(panel, func(idx int, src dao.Interviewer) domain.Interviewer {
		return p.interviewerToDomain(src)
	})
	return res, nil
}

func (p *positionRepository) AddInterviewer(ctx context.Context, iv domain.Interviewer) (int64, error) {
	return p.dao.AddInterviewer(ctx, dao.Interviewer{
		DistrictID: iv.DistrictID,
		StageID:    iv.StageID,
		Name:       iv.Name,
		Email:      iv.Email,
		Role:       iv.Role,
	})
}

func (p *positionRepository) PanelFor(ctx context.Context, district, stageID int64) ([]domain.Interviewer, error) {
	panel, err := p.dao.FindInterviewersByStage(ctx, district, stageID)
	if err != nil {
		return nil, err
	}
	return slice.Map(panel, func(idx int, src dao.Interviewer) domain.Interviewer {
		return p.interviewerToDomain(src)
	}), nil
}

func (p *positionRepository) CreateQuestion(ctx context.Context, q domain.ScreeningQuestion) (int64, error) {
	return p.dao.CreateQuestion(ctx, dao.ScreeningQuestion{
		DistrictID: q.DistrictID,
		Question:   q.Question,
		Category:   q.Category,
		Required:   q.Required,
	})
}

func (p *positionRepository) ListQuestions(ctx context.Context, district int64, category string) ([]domain.ScreeningQuestion, error) {
	questions, err := p.dao.ListQuestions(ctx, district, category)
	if err != nil {
		return nil, err
	}
	return slice.Map(questions, func(idx int, src dao.ScreeningQuestion) domain.ScreeningQuestion {
		return p.questionToDomain(src)
	}), nil
}

func (p *positionRepository) BindQuestions(ctx context.Context, district, positionID int64, questionIDs []int64) error {
	return p.dao.BindQuestions(ctx, district, positionID, questionIDs)
}

func (p *positionRepository) CreateTemplate(ctx context.Context, t domain.JobTemplate) (int64, error) {
	return p.dao.CreateTemplate(ctx, dao.JobTemplate{
		DistrictID:          t.DistrictID,
		TemplateName:        t.TemplateName,
		PrimaryJobTitle:     t.PrimaryJobTitle,
		Department:          t.Department,
		Worksite:            t.Worksite,
		FTE:                 t.FTE,
		SalaryRange:         t.SalaryRange,
		EmployeeCategory:    t.EmployeeCategory,
		InterviewStageCount: t.InterviewStageCount,
	})
}

func (p *positionRepository) FindTemplate(ctx context.Context, district, id int64) (domain.JobTemplate, error) {
	t, err := p.dao.FindTemplate(ctx, district, id)
	if err != nil {
		return domain.JobTemplate{}, err
	}
	return p.templateToDomain(t), nil
}

func (p *positionRepository) ListTemplates(ctx context.Context, district int64) ([]domain.JobTemplate, error) {
	templates, err := p.dao.ListTemplates(ctx, district)
	if err != nil {
		return nil, err
	}
	return slice.Map(templates, func(idx int, src dao.JobTemplate) domain.JobTemplate {
		return p.templateToDomain(src)
	}), nil
}

func (p *positionRepository) toEntity(pos domain.Position) dao.Position {
	return dao.Position{
		ID:                  pos.ID,
		DistrictID:          pos.DistrictID,
		ReqID:               pos.ReqID,
		Title:               pos.Title,
		Department:          pos.Department,
		Worksite:            pos.Worksite,
		FTE:                 pos.FTE,
		SalaryRange:         pos.SalaryRange,
		StartDate:           pos.StartDate,
		Status:              pos.Status.String(),
		EmployeeCategory:    pos.EmployeeCategory,
		Description:         pos.Description,
		Requirements:        pos.Requirements,
		PostingStartDate:    pos.PostingStartDate,
		PostingEndDate:      pos.PostingEndDate,
		InterviewStageCount: pos.InterviewStageCount,
	}
}

func (p *positionRepository) toDomain(entity dao.Position) domain.Position {
	return domain.Position{
		ID:                  entity.ID,
		DistrictID:          entity.DistrictID,
		ReqID:               entity.ReqID,
		Title:               entity.Title,
		Department:          entity.Department,
		Worksite:            entity.Worksite,
		FTE:                 entity.FTE,
		SalaryRange:         entity.SalaryRange,
		StartDate:           entity.StartDate,
		Status:              domain.Status(entity.Status),
		EmployeeCategory:    entity.EmployeeCategory,
		Description:         entity.Description,
		Requirements:        entity.Requirements,
		PostingStartDate:    entity.PostingStartDate,
		PostingEndDate:      entity.PostingEndDate,
		InterviewStageCount: entity.InterviewStageCount,
		Ctime:               entity.Ctime,
		Utime:               entity.Utime,
	}
}

func (p *positionRepository) stageToDomain(entity dao.InterviewStage) domain.InterviewStage {
	return domain.InterviewStage{
		ID:          entity.ID,
		DistrictID:  entity.DistrictID,
		PositionID:  entity.PositionID,
		StageNumber: entity.StageNumber,
		StageName:   entity.StageName,
	}
}

func (p *positionRepository) interviewerToDomain(entity dao.Interviewer) domain.Interviewer {
	return domain.Interviewer{
		ID:         entity.ID,
		DistrictID: entity.DistrictID,
		StageID:    entity.StageID,
		Name:       entity.Name,
		Email:      entity.Email,
		Role:       entity.Role,
	}
}

func (p *positionRepository) questionToDomain(entity dao.ScreeningQuestion) domain.ScreeningQuestion {
	return domain.ScreeningQuestion{
		ID:         entity.ID,
		DistrictID: entity.DistrictID,
		Question:   entity.Question,
		Category:   entity.Category,
		Required:   entity.Required,
	}
}

func (p *positionRepository) templateToDomain(entity dao.JobTemplate) domain.JobTemplate {
	return domain.JobTemplate{
		ID:                  entity.ID,
		DistrictID:          entity.DistrictID,
		TemplateName:        entity.TemplateName,
		PrimaryJobTitle:     entity.PrimaryJobTitle,
		Department:          entity.Department,
		Worksite:            entity.Worksite,
		FTE:                 entity.FTE,
		SalaryRange:         entity.SalaryRange,
		EmployeeCategory:    entity.EmployeeCategory,
		InterviewStageCount: entity.InterviewStageCount,
	}
}
