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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hireflow/internal/tenant/internal/domain"
	"github.com/ecodeclub/hireflow/internal/tenant/internal/repository/dao"
)

type DistrictRepository interface {
	Create(ctx context.Context, d domain.District) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.District, error)
	FindActive(ctx context.Context, id int64) (domain.District, error)
	List(ctx context.Context, offset, limit int) ([]domain.District, error)
	Count(ctx context.Context) (int64, error)
}

type districtRepository struct {
	dao dao.DistrictDAO
}

func NewDistrictRepository(d dao.DistrictDAO) DistrictRepository {
	return &districtRepository{dao: d}
}

func (r *districtRepository) Create(ctx context.Context, d domain.District) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(d))
}

func (r *districtRepository) FindByID(ctx context.Context, id int64) (domain.District, error) {
	d, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.District{}, err
	}
	return r.toDomain(d), nil
}

func (r *districtRepository) FindActive(ctx context.Context, id int64) (domain.District, error) {
	d, err := r.dao.FindActive(ctx, id)
	if err != nil {
		return domain.District{}, err
	}
	return r.toDomain(d), nil
}

func (r *districtRepository) List(ctx context.Context, offset, limit int) ([]domain.District, error) {
	ds, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ds, func(_ int, src dao.District) domain.District {
		return r.toDomain(src)
	}), nil
}

func (r *districtRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *districtRepository) toEntity(d domain.District) dao.District {
	return dao.District{
		ID:           d.ID,
		Name:         d.Name,
		Code:         d.Code,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		Address:      d.Address,
		Settings: sqlx.JsonColumn[map[string]any]{
			Val:   d.Settings,
			Valid: len(d.Settings) > 0,
		},
		Active: d.Active,
		Ctime:  time.Now().UnixMilli(),
	}
}

func (r *districtRepository) toDomain(d dao.District) domain.District {
	return domain.District{
		ID:           d.ID,
		Name:         d.Name,
		Code:         d.Code,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		Address:      d.Address,
		Settings:     d.Settings.Val,
		Active:       d.Active,
		Ctime:        d.Ctime,
		Utime:        d.Utime,
	}
}
