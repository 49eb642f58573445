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
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository/dao"
)

type InterviewRepository interface {
	Create(ctx context.Context, itv domain.Interview) (int64, error)
	FindByID(ctx context.Context, district, id int64) (domain.Interview, error)
	ListByApplication(ctx context.Context, district, applicationID int64) ([]domain.Interview, error)
	ListByDateRange(ctx context.Context, district int64, from, to string) ([]domain.Interview, error)

	Complete(ctx context.Context, district, id int64, feedback string, rating int8) error
	UpdateStatus(ctx context.Context, district, id int64, from, to domain.Status) error

	BusyStageIDs(ctx context.Context, district int64, date, timeSlot string) ([]int64, error)
	CountByStatus(ctx context.Context, district int64, status domain.Status) (int64, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: d}
}

func (r *interviewRepository) Create(ctx context.Context, itv domain.Interview) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(itv))
}

func (r *interviewRepository) FindByID(ctx context.Context, district, id int64) (domain.Interview, error) {
	entity, err := r.dao.FindByID(ctx, district, id)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(entity), nil
}

func (r *interviewRepository) ListByApplication(ctx context.Context, district, applicationID int64) ([]domain.Interview, error) {
	entities, err := r.dao.ListByApplication(ctx, district, applicationID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	}), nil
}

func (r *interviewRepository) ListByDateRange(ctx context.Context, district int64, from, to string) ([]domain.Interview, error) {
	entities, err := r.dao.ListByDateRange(ctx, district, from, to)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	}), nil
}

func (r *interviewRepository) Complete(ctx context.Context, district, id int64, feedback string, rating int8) error {
	return r.dao.Complete(ctx, district, id, feedback, rating)
}

func (r *interviewRepository) UpdateStatus(ctx context.Context, district, id int64, from, to domain.Status) error {
	return r.dao.UpdateStatus(ctx, district, id, from.String(), to.String())
}

func (r *interviewRepository) BusyStageIDs(ctx context.Context, district int64, date, timeSlot string) ([]int64, error) {
	return r.dao.BusyStageIDs(ctx, district, date, timeSlot)
}

func (r *interviewRepository) CountByStatus(ctx context.Context, district int64, status domain.Status) (int64, error) {
	return r.dao.CountByStatus(ctx, district, status.String())
}

func (r *interviewRepository) toEntity(itv domain.Interview) dao.Interview {
	return dao.Interview{
		ID:            itv.ID,
		DistrictID:    itv.DistrictID,
		ApplicationID: itv.ApplicationID,
		StageID:       itv.StageID,
		StageNumber:   itv.StageNumber,
		Date:          itv.Date,
		Time:          itv.Time,
		Location:      itv.Location,
		Virtual:       itv.Virtual,
		MeetingLink:   itv.MeetingLink,
		Status:        itv.Status.String(),
		Feedback:      itv.Feedback,
		Rating:        itv.Rating,
	}
}

func (r *interviewRepository) toDomain(entity dao.Interview) domain.Interview {
	return domain.Interview{
		ID:            entity.ID,
		DistrictID:    entity.DistrictID,
		ApplicationID: entity.ApplicationID,
		StageID:       entity.StageID,
		StageNumber:   entity.StageNumber,
		Date:          entity.Date,
		Time:          entity.Time,
		Location:      entity.Location,
		Virtual:       entity.Virtual,
		MeetingLink:   entity.MeetingLink,
		Status:        domain.Status(entity.Status),
		Feedback:      entity.Feedback,
		Rating:        entity.Rating,
		Ctime:         entity.Ctime,
		Utime:         entity.Utime,
	}
}
