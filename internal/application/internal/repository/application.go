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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository/dao"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.JobApplication) (int64, error)
	FindByID(ctx context.Context, district, id int64) (domain.JobApplication, error)
	List(ctx context.Context, district int64, stage domain.Stage, offset, limit int) ([]domain.JobApplication, error)
	Count(ctx context.Context, district int64, stage domain.Stage) (int64, error)

	UpdateStage(ctx context.Context, district, id int64, from, to domain.Stage) error
	SetStage(ctx context.Context, district, id int64, stage domain.Stage) error
	Reject(ctx context.Context, district, id int64) error
	CompleteInterviewStage(ctx context.Context, district, id int64, stageNumber int) error
	SetCurrentInterviewStage(ctx context.Context, district, id int64, stageNumber int) error
	CountByStage(ctx context.Context, district int64, stage domain.Stage) (int64, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (a *applicationRepository) Create(ctx context.Context, app domain.JobApplication) (int64, error) {
	refs := slice.Map(app.References, func(_ int, src domain.Reference) dao.Reference {
		return dao.Reference{
			Name:         src.Name,
			Relationship: src.Relationship,
			Email:        src.Email,
			Phone:        src.Phone,
		}
	})
	avails := slice.Map(app.Availability, func(_ int, src domain.InterviewAvailability) dao.InterviewAvailability {
		return dao.InterviewAvailability{
			Date:     src.Date,
			TimeSlot: src.TimeSlot,
		}
	})
	return a.dao.Create(ctx, a.toEntity(app), refs, avails)
}

func (a *applicationRepository) FindByID(ctx context.Context, district, id int64) (domain.JobApplication, error) {
	entity, err := a.dao.FindByID(ctx, district, id)
	if err != nil {
		return domain.JobApplication{}, err
	}
	res := a.toDomain(entity)
	refs, err := a.dao.FindReferences(ctx, id)
	if err != nil {
		return domain.JobApplication{}, err
	}
	res.References = slice.Map(refs, func(_ int, src dao.Reference) domain.Reference {
		return domain.Reference{
			ID:            src.ID,
			ApplicationID: src.ApplicationID,
			Name:          src.Name,
			Relationship:  src.Relationship,
			Email:         src.Email,
			Phone:         src.Phone,
		}
	})
	avails, err := a.dao.FindAvailability(ctx, id)
	if err != nil {
		return domain.JobApplication{}, err
	}
	res.Availability = slice.Map(avails, func(_ int, src dao.InterviewAvailability) domain.InterviewAvailability {
		return domain.InterviewAvailability{
			ID:            src.ID,
			ApplicationID: src.ApplicationID,
			Date:          src.Date,
			TimeSlot:      src.TimeSlot,
		}
	})
	return res, nil
}

func (a *applicationRepository) List(ctx context.Context, district int64, stage domain.Stage, offset, limit int) ([]domain.JobApplication, error) {
	entities, err := a.dao.List(ctx, district, stage.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.JobApplication) domain.JobApplication {
		return a.toDomain(src)
	}), nil
}

func (a *applicationRepository) Count(ctx context.Context, district int64, stage domain.Stage) (int64, error) {
	return a.dao.Count(ctx, district, stage.String())
}

func (a *applicationRepository) UpdateStage(ctx context.Context, district, id int64, from, to domain.Stage) error {
	return a.dao.UpdateStage(ctx, district, id, from.String(), to.String())
}

func (a *applicationRepository) SetStage(ctx context.Context, district, id int64, stage domain.Stage) error {
	return a.dao.SetStage(ctx, district, id, stage.String())
}

func (a *applicationRepository) Reject(ctx context.Context, district, id int64) error {
	return a.dao.Reject(ctx, district, id)
}

func (a *applicationRepository) CompleteInterviewStage(ctx context.Context, district, id int64, stageNumber int) error {
	return a.dao.CompleteInterviewStage(ctx, district, id, stageNumber)
}

func (a *applicationRepository) SetCurrentInterviewStage(ctx context.Context, district, id int64, stageNumber int) error {
	return a.dao.SetCurrentInterviewStage(ctx, district, id, stageNumber)
}

func (a *applicationRepository) CountByStage(ctx context.Context, district int64, stage domain.Stage) (int64, error) {
	return a.dao.CountByStage(ctx, district, stage.String())
}

func (a *applicationRepository) toEntity(app domain.JobApplication) dao.JobApplication {
	return dao.JobApplication{
		ID:            app.ID,
		DistrictID:    app.DistrictID,
		PositionID:    app.PositionID,
		ApplicantName: app.ApplicantName,
		Email:         app.Email,
		Phone:         app.Phone,
		ResumeURL:     app.ResumeURL,
		CoverLetter:   app.CoverLetter,
		ScreeningAnswers: sqlx.JsonColumn[map[string]any]{
			Val:   app.ScreeningAnswers,
			Valid: len(app.ScreeningAnswers) > 0,
		},
		Stage:                    app.Stage.String(),
		CurrentInterviewStage:    app.CurrentInterviewStage,
		CompletedInterviewStages: app.CompletedInterviewStages,
		Active:                   app.Active,
	}
}

func (a *applicationRepository) toDomain(entity dao.JobApplication) domain.JobApplication {
	return domain.JobApplication{
		ID:                       entity.ID,
		DistrictID:               entity.DistrictID,
		PositionID:               entity.PositionID,
		ApplicantName:            entity.ApplicantName,
		Email:                    entity.Email,
		Phone:                    entity.Phone,
		ResumeURL:                entity.ResumeURL,
		CoverLetter:              entity.CoverLetter,
		ScreeningAnswers:         entity.ScreeningAnswers.Val,
		Stage:                    domain.Stage(entity.Stage),
		CurrentInterviewStage:    entity.CurrentInterviewStage,
		CompletedInterviewStages: entity.CompletedInterviewStages,
		Active:                   entity.Active,
		Ctime:                    entity.Ctime,
		Utime:                    entity.Utime,
	}
}
