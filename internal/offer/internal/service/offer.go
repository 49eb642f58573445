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
	"sync"
	"time"

	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/offer/internal/domain"
	"github.com/ecodeclub/hireflow/internal/offer/internal/event"
	"github.com/ecodeclub/hireflow/internal/offer/internal/repository"
	"github.com/ecodeclub/hireflow/internal/offer/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/pkg/template"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidOffer     = errors.New("Offer信息不完整")
	ErrOfferNotFound    = errors.New("Offer不存在")
	ErrDuplicateOffer   = dao.ErrDuplicateOffer
	ErrStatusConflict   = dao.ErrStatusConflict
	ErrOfferExpired     = errors.New("Offer已过期")
	ErrTemplateNotFound = errors.New("信函模板不存在")
)

//go:generate mockgen -source=./offer.go -package=offermocks --destination=../../mocks/offer.mock.go Service
type Service interface {
	// Create 为申请签发Offer。模板文本在此刻快照，SN作为对外的持有凭证。
	Create(ctx context.Context, district int64, offer domain.Offer) (int64, error)
	Detail(ctx context.Context, district, id int64) (domain.Offer, error)
	// PublicDetail 凭SN的公开只读视图，过期未落库的Pending按Expired展示
	PublicDetail(ctx context.Context, sn string) (domain.Offer, string, error)
	List(ctx context.Context, district int64, status domain.Status, offset, limit int) ([]domain.Offer, int64, error)

	// Accept 凭SN接受。惰性过期检查先于状态机执行；
	// 状态翻转和HiredEmployee创建在同一事务内，并发接受最多一个成功。
	Accept(ctx context.Context, sn string) error
	// Decline 凭SN拒绝，附原因
	Decline(ctx context.Context, sn, reason string) error
	// Withdraw 学区侧撤回，仅Pending可撤
	Withdraw(ctx context.Context, district, id int64) error

	ExpiringSoon(ctx context.Context, district int64, days int) ([]domain.Offer, error)
	// ExpireOffers 定时巡检，把已过期但没被访问过的Pending批量落库为Expired
	ExpireOffers(ctx context.Context, deadline int64, limit int) (int, error)
	Stats(ctx context.Context, district int64) (map[string]int64, error)

	CreateTemplate(ctx context.Context, t domain.OfferTemplate) (int64, error)
	ListTemplates(ctx context.Context, district int64) ([]domain.OfferTemplate, error)
	// ExtractFields 模板里的占位符字段名，去重保序
	ExtractFields(templateText string) []string

	ListHired(ctx context.Context, district int64, offset, limit int) ([]domain.HiredEmployee, int64, error)
}

type service struct {
	repo   repository.OfferRepository
	appSvc application.Service
	prd    event.OfferEventProducer
	logger *elog.Component
}

func NewService(repo repository.OfferRepository,
	appSvc application.Service,
	prd event.OfferEventProducer) Service {
	return &service{
		repo:   repo,
		appSvc: appSvc,
		prd:    prd,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, district int64, offer domain.Offer) (int64, error) {
	offer.DistrictID = district
	app, err := s.appSvc.Detail(ctx, district, offer.ApplicationID)
	if err != nil {
		return 0, ErrOfferNotFound
	}
	if offer.TemplateID != 0 {
		tpl, er := s.repo.FindTemplate(ctx, district, offer.TemplateID)
		if er != nil {
			return 0, ErrTemplateNotFound
		}
		offer.TemplateText = tpl.TemplateText
	}
	if !offer.IsValid() {
		return 0, ErrInvalidOffer
	}
	offer.SN = shortuuid.New()
	offer.Status = domain.StatusPending
	if offer.OfferDate == 0 {
		offer.OfferDate = time.Now().UnixMilli()
	}
	id, err := s.repo.Create(ctx, offer)
	if err != nil {
		return 0, err
	}
	s.produce(ctx, offer, id, event.ActionCreated, app)
	return id, nil
}

func (s *service) Detail(ctx context.Context, district, id int64) (domain.Offer, error) {
	offer, err := s.repo.FindByID(ctx, district, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Offer{}, ErrOfferNotFound
	}
	return offer, err
}

func (s *service) PublicDetail(ctx context.Context, sn string) (domain.Offer, string, error) {
	offer, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Offer{}, "", ErrOfferNotFound
	}
	if err != nil {
		return domain.Offer{}, "", err
	}
	offer.Status = offer.EffectiveStatus(time.Now())
	return offer, template.Fill(offer.TemplateText, offer.TemplateData), nil
}

func (s *service) List(ctx context.Context, district int64, status domain.Status, offset, limit int) ([]domain.Offer, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Offer
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, district, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, district, status)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) Accept(ctx context.Context, sn string) error {
	offer, err := s.loadPendingBySN(ctx, sn)
	if err != nil {
		return err
	}
	app, err := s.appSvc.Detail(ctx, offer.DistrictID, offer.ApplicationID)
	if err != nil {
		return ErrOfferNotFound
	}
	now := time.Now().UnixMilli()
	err = s.repo.Accept(ctx, offer.ID, now, domain.HiredEmployee{
		DistrictID:    offer.DistrictID,
		ApplicationID: offer.ApplicationID,
		Name:          app.ApplicantName,
		Email:         app.Email,
		PositionTitle: offer.PositionTitle,
		HireDate:      offer.StartDate,
	})
	if err != nil {
		return err
	}
	// Offer此时已经CAS成Accepted并写入雇佣记录，
	// 申请阶段联动失败必须报给调用方，不能吞掉
	if er := s.appSvc.MarkOfferAccepted(ctx, offer.DistrictID, offer.ApplicationID); er != nil {
		s.logger.Error("联动更新申请阶段失败", elog.FieldErr(er),
			elog.Int64("aid", offer.ApplicationID))
		return fmt.Errorf("更新申请阶段失败: %w", er)
	}
	s.produce(ctx, offer, offer.ID, event.ActionAccepted, app)
	return nil
}

func (s *service) Decline(ctx context.Context, sn, reason string) error {
	offer, err := s.loadPendingBySN(ctx, sn)
	if err != nil {
		return err
	}
	if err = s.repo.Decline(ctx, offer.ID, reason); err != nil {
		return err
	}
	app, er := s.appSvc.Detail(ctx, offer.DistrictID, offer.ApplicationID)
	if er == nil {
		s.produce(ctx, offer, offer.ID, event.ActionDeclined, app)
	}
	return nil
}

func (s *service) Withdraw(ctx context.Context, district, id int64) error {
	return s.repo.Withdraw(ctx, district, id)
}

func (s *service) ExpiringSoon(ctx context.Context, district int64, days int) ([]domain.Offer, error) {
	now := time.Now()
	return s.repo.FindExpiring(ctx, district,
		now.UnixMilli(), now.AddDate(0, 0, days).UnixMilli())
}

func (s *service) ExpireOffers(ctx context.Context, deadline int64, limit int) (int, error) {
	offers, err := s.repo.FindExpired(ctx, deadline, limit)
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, offer := range offers {
		if er := s.repo.MarkExpired(ctx, offer.ID, deadline); er != nil {
			s.logger.Error("过期Offer落库失败", elog.FieldErr(er),
				elog.Int64("oid", offer.ID))
			continue
		}
		expired++
	}
	return expired, nil
}

func (s *service) Stats(ctx context.Context, district int64) (map[string]int64, error) {
	statuses := []domain.Status{
		domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusDeclined,
		domain.StatusExpired,
		domain.StatusWithdrawn,
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

func (s *service) CreateTemplate(ctx context.Context, t domain.OfferTemplate) (int64, error) {
	if t.Name == "" || t.TemplateText == "" {
		return 0, ErrInvalidOffer
	}
	return s.repo.CreateTemplate(ctx, t)
}

func (s *service) ListTemplates(ctx context.Context, district int64) ([]domain.OfferTemplate, error) {
	return s.repo.ListTemplates(ctx, district)
}

func (s *service) ExtractFields(templateText string) []string {
	return template.ExtractFields(templateText)
}

func (s *service) ListHired(ctx context.Context, district int64, offset, limit int) ([]domain.HiredEmployee, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.HiredEmployee
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.FindHired(ctx, district, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountHired(ctx, district)
		return err
	})
	return list, total, eg.Wait()
}

// loadPendingBySN 读取并执行惰性过期：Pending且已过期的先落库成Expired再谈转移。
func (s *service) loadPendingBySN(ctx context.Context, sn string) (domain.Offer, error) {
	offer, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Offer{}, ErrOfferNotFound
	}
	if err != nil {
		return domain.Offer{}, err
	}
	now := time.Now()
	if offer.IsExpired(now) {
		if er := s.repo.MarkExpired(ctx, offer.ID, now.UnixMilli()); er != nil {
			s.logger.Error("惰性过期落库失败", elog.FieldErr(er), elog.Int64("oid", offer.ID))
		}
		return domain.Offer{}, ErrOfferExpired
	}
	if offer.Status != domain.StatusPending {
		return domain.Offer{}, ErrStatusConflict
	}
	return offer, nil
}

func (s *service) produce(ctx context.Context, offer domain.Offer, id int64, action string, app application.JobApplication) {
	evt := event.OfferEvent{
		OfferID:       id,
		OfferSN:       offer.SN,
		DistrictID:    offer.DistrictID,
		ApplicationID: offer.ApplicationID,
		Action:        action,
		ApplicantName: app.ApplicantName,
		Email:         app.Email,
		PositionTitle: offer.PositionTitle,
		Letter:        template.Fill(offer.TemplateText, offer.TemplateData),
	}
	if err := s.prd.Produce(ctx, evt); err != nil {
		s.logger.Error("发送Offer事件失败", elog.FieldErr(err), elog.Int64("oid", id))
	}
}
