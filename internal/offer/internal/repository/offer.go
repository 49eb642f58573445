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
	"github.com/ecodeclub/hireflow/internal/offer/internal/domain"
	"github.com/ecodeclub/hireflow/internal/offer/internal/repository/dao"
)

type OfferRepository interface {
	Create(ctx context.Context, offer domain.Offer) (int64, error)
	FindByID(ctx context.Context, district, id int64) (domain.Offer, error)
	FindBySN(ctx context.Context, sn string) (domain.Offer, error)
	FindByApplication(ctx context.Context, district, applicationID int64) (domain.Offer, error)
	List(ctx context.Context, district int64, status domain.Status, offset, limit int) ([]domain.Offer, error)
	Count(ctx context.Context, district int64, status domain.Status) (int64, error)

	Accept(ctx context.Context, offerID, acceptedAt int64, hired domain.HiredEmployee) error
	Decline(ctx context.Context, offerID int64, reason string) error
	Withdraw(ctx context.Context, district, offerID int64) error
	MarkExpired(ctx context.Context, offerID, deadline int64) error

	FindExpiring(ctx context.Context, district, from, to int64) ([]domain.Offer, error)
	FindExpired(ctx context.Context, deadline int64, limit int) ([]domain.Offer, error)
	CountByStatus(ctx context.Context, district int64, status domain.Status) (int64, error)

	CreateTemplate(ctx context.Context, t domain.OfferTemplate) (int64, error)
	FindTemplate(ctx context.Context, district, id int64) (domain.OfferTemplate, error)
	ListTemplates(ctx context.Context, district int64) ([]domain.OfferTemplate, error)

	FindHired(ctx context.Context, district int64, offset, limit int) ([]domain.HiredEmployee, error)
	CountHired(ctx context.Context, district int64) (int64, error)
}

type offerRepository struct {
	dao dao.OfferDAO
}

func NewOfferRepository(d dao.OfferDAO) OfferRepository {
	return &offerRepository{dao: d}
}

func (r *offerRepository) Create(ctx context.Context, offer domain.Offer) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(offer))
}

func (r *offerRepository) FindByID(ctx context.Context, district, id int64) (domain.Offer, error) {
	entity, err := r.dao.FindByID(ctx, district, id)
	if err != nil {
		return domain.Offer{}, err
	}
	return r.toDomain(entity), nil
}

func (r *offerRepository) FindBySN(ctx context.Context, sn string) (domain.Offer, error) {
	entity, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Offer{}, err
	}
	return r.toDomain(entity), nil
}

func (r *offerRepository) FindByApplication(ctx context.Context, district, applicationID int64) (domain.Offer, error) {
	entity, err := r.dao.FindByApplication(ctx, district, applicationID)
	if err != nil {
		return domain.Offer{}, err
	}
	return r.toDomain(entity), nil
}

func (r *offerRepository) List(ctx context.Context, district int64, status domain.Status, offset, limit int) ([]domain.Offer, error) {
	entities, err := r.dao.List(ctx, district, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Offer) domain.Offer {
		return r.toDomain(src)
	}), nil
}

func (r *offerRepository) Count(ctx context.Context, district int64, status domain.Status) (int64, error) {
	return r.dao.Count(ctx, district, status.String())
}

func (r *offerRepository) Accept(ctx context.Context, offerID, acceptedAt int64, hired domain.HiredEmployee) error {
	return r.dao.Accept(ctx, offerID, acceptedAt, dao.HiredEmployee{
		DistrictID:    hired.DistrictID,
		ApplicationID: hired.ApplicationID,
		Name:          hired.Name,
		Email:         hired.Email,
		PositionTitle: hired.PositionTitle,
		HireDate:      hired.HireDate,
	})
}

func (r *offerRepository) Decline(ctx context.Context, offerID int64, reason string) error {
	return r.dao.Decline(ctx, offerID, reason)
}

func (r *offerRepository) Withdraw(ctx context.Context, district, offerID int64) error {
	return r.dao.Withdraw(ctx, district, offerID)
}

func (r *offerRepository) MarkExpired(ctx context.Context, offerID, deadline int64) error {
	return r.dao.MarkExpired(ctx, offerID, deadline)
}

func (r *offerRepository) FindExpiring(ctx context.Context, district, from, to int64) ([]domain.Offer, error) {
	entities, err := r.dao.FindExpiring(ctx, district, from, to)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Offer) domain.Offer {
		return r.toDomain(src)
	}), nil
}

func (r *offerRepository) FindExpired(ctx context.Context, deadline int64, limit int) ([]domain.Offer, error) {
	entities, err := r.dao.FindExpired(ctx, deadline, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Offer) domain.Offer {
		return r.toDomain(src)
	}), nil
}

func (r *offerRepository) CountByStatus(ctx context.Context, district int64, status domain.Status) (int64, error) {
	return r.dao.CountByStatus(ctx, district, status.String())
}

func (r *offerRepository) CreateTemplate(ctx context.Context, t domain.OfferTemplate) (int64, error) {
	return r.dao.CreateTemplate(ctx, dao.OfferTemplate{
		DistrictID:   t.DistrictID,
		Name:         t.Name,
		TemplateText: t.TemplateText,
	})
}

func (r *offerRepository) FindTemplate(ctx context.Context, district, id int64) (domain.OfferTemplate, error) {
	entity, err := r.dao.FindTemplate(ctx, district, id)
	if err != nil {
		return domain.OfferTemplate{}, err
	}
	return domain.OfferTemplate{
		ID:           entity.ID,
		DistrictID:   entity.DistrictID,
		Name:         entity.Name,
		TemplateText: entity.TemplateText,
		Ctime:        entity.Ctime,
		Utime:        entity.Utime,
	}, nil
}

func (r *offerRepository) ListTemplates(ctx context.Context, district int64) ([]domain.OfferTemplate, error) {
	entities, err := r.dao.ListTemplates(ctx, district)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.OfferTemplate) domain.OfferTemplate {
		return domain.OfferTemplate{
			ID:           src.ID,
			DistrictID:   src.DistrictID,
			Name:         src.Name,
			TemplateText: src.TemplateText,
			Ctime:        src.Ctime,
			Utime:        src.Utime,
		}
	}), nil
}

func (r *offerRepository) FindHired(ctx context.Context, district int64, offset, limit int) ([]domain.HiredEmployee, error) {
	entities, err := r.dao.FindHired(ctx, district, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.HiredEmployee) domain.HiredEmployee {
		return domain.HiredEmployee{
			ID:            src.ID,
			DistrictID:    src.DistrictID,
			OfferID:       src.OfferID,
			ApplicationID: src.ApplicationID,
			Name:          src.Name,
			Email:         src.Email,
			PositionTitle: src.PositionTitle,
			HireDate:      src.HireDate,
			Ctime:         src.Ctime,
		}
	}), nil
}

func (r *offerRepository) CountHired(ctx context.Context, district int64) (int64, error) {
	return r.dao.CountHired(ctx, district)
}

func (r *offerRepository) toEntity(offer domain.Offer) dao.Offer {
	return dao.Offer{
		ID:            offer.ID,
		SN:            offer.SN,
		DistrictID:    offer.DistrictID,
		ApplicationID: offer.ApplicationID,
		TemplateID:    offer.TemplateID,
		TemplateText:  offer.TemplateText,
		TemplateData: sqlx.JsonColumn[map[string]any]{
			Val:   offer.TemplateData,
			Valid: len(offer.TemplateData) > 0,
		},
		Salary:         offer.Salary,
		PositionTitle:  offer.PositionTitle,
		OfferDate:      offer.OfferDate,
		StartDate:      offer.StartDate,
		ExpirationDate: offer.ExpirationDate,
		Status:         offer.Status.String(),
		AcceptedDate:   offer.AcceptedDate,
		DeclinedReason: offer.DeclinedReason,
	}
}

func (r *offerRepository) toDomain(entity dao.Offer) domain.Offer {
	return domain.Offer{
		ID:             entity.ID,
		SN:             entity.SN,
		DistrictID:     entity.DistrictID,
		ApplicationID:  entity.ApplicationID,
		TemplateID:     entity.TemplateID,
		TemplateText:   entity.TemplateText,
		TemplateData:   entity.TemplateData.Val,
		Salary:         entity.Salary,
		PositionTitle:  entity.PositionTitle,
		OfferDate:      entity.OfferDate,
		StartDate:      entity.StartDate,
		ExpirationDate: entity.ExpirationDate,
		Status:         domain.Status(entity.Status),
		AcceptedDate:   entity.AcceptedDate,
		DeclinedReason: entity.DeclinedReason,
		Ctime:          entity.Ctime,
		Utime:          entity.Utime,
	}
}
