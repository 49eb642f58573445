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

	"github.com/ecodeclub/hireflow/internal/tenant/internal/domain"
	"github.com/ecodeclub/hireflow/internal/tenant/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidDistrict  = errors.New("学区信息不完整")
	ErrDistrictNotFound = errors.New("学区不存在或已停用")
)

// Service 租户守卫：所有中间件和跨模块的学区校验都收敛到这里。
type Service interface {
	Create(ctx context.Context, d domain.District) (int64, error)
	Detail(ctx context.Context, id int64) (domain.District, error)
	List(ctx context.Context, offset, limit int) ([]domain.District, int64, error)
	// Verify 校验学区存在且启用，供请求中间件使用
	Verify(ctx context.Context, id int64) error
}

type service struct {
	repo repository.DistrictRepository
}

func NewService(repo repository.DistrictRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, d domain.District) (int64, error) {
	if !d.IsValid() {
		return 0, ErrInvalidDistrict
	}
	d.Active = true
	return s.repo.Create(ctx, d)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.District, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.District, int64, error) {
	var (
		eg    errgroup.Group
		ds    []domain.District
		total int64
	)
	eg.Go(func() error {
		var err error
		ds, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return ds, total, eg.Wait()
}

func (s *service) Verify(ctx context.Context, id int64) error {
	_, err := s.repo.FindActive(ctx, id)
	if err != nil {
		return ErrDistrictNotFound
	}
	return nil
}
