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
	"testing"
	"time"

	"github.com/ecodeclub/hireflow/internal/application"
	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	"github.com/ecodeclub/hireflow/internal/offer/internal/domain"
	"github.com/ecodeclub/hireflow/internal/offer/internal/event"
	"github.com/ecodeclub/hireflow/internal/offer/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubAppDetail 申请侧的常规桩，返回一个处于Offer阶段的申请
func stubAppDetail(svc *appmocks.MockService) {
	svc.EXPECT().Detail(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, district, id int64) (application.JobApplication, error) {
			return application.JobApplication{
				ID:            id,
				DistrictID:    district,
				ApplicantName: "张三",
				Email:         "zhangsan@example.com",
				Stage:         application.StageOffer,
			}, nil
		}).AnyTimes()
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		offer   domain.Offer
		repo    *fakeOfferRepo
		wantErr error
		after   func(t *testing.T, repo *fakeOfferRepo, prd *fakeOfferProducer)
	}{
		{
			name: "正常签发_模板快照",
			offer: domain.Offer{
				ApplicationID:  100,
				TemplateID:     1,
				TemplateData:   map[string]any{"name": "张三", "salary": "$52,000"},
				PositionTitle:  "数学教师",
				StartDate:      time.Now().AddDate(0, 1, 0).UnixMilli(),
				ExpirationDate: time.Now().AddDate(0, 0, 14).UnixMilli(),
			},
			repo: newFakeOfferRepo(),
			after: func(t *testing.T, repo *fakeOfferRepo, prd *fakeOfferProducer) {
				created := repo.offers[1]
				assert.Equal(t, domain.StatusPending, created.Status)
				assert.NotEmpty(t, created.SN)
				// 模板文本在创建时固化
				assert.Equal(t, "Dear {{name}}, salary {{salary}}.", created.TemplateText)
				require.Len(t, prd.events, 1)
				assert.Equal(t, event.ActionCreated, prd.events[0].Action)
				assert.Equal(t, "Dear 张三, salary $52,000.", prd.events[0].Letter)
			},
		},
		{
			name: "模板不存在",
			offer: domain.Offer{
				ApplicationID:  100,
				TemplateID:     999,
				ExpirationDate: time.Now().AddDate(0, 0, 14).UnixMilli(),
			},
			repo:    newFakeOfferRepo(),
			wantErr: ErrTemplateNotFound,
		},
		{
			name: "缺少截止日期",
			offer: domain.Offer{
				ApplicationID: 100,
				TemplateID:    1,
			},
			repo:    newFakeOfferRepo(),
			wantErr: ErrInvalidOffer,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			prd := &fakeOfferProducer{}
			appSvc := appmocks.NewMockService(gomock.NewController(t))
			stubAppDetail(appSvc)
			svc := NewService(tc.repo, appSvc, prd)
			_, err := svc.Create(context.Background(), 1, tc.offer)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.after != nil {
				tc.after(t, tc.repo, prd)
			}
		})
	}
}

func TestService_Accept(t *testing.T) {
	t.Parallel()

	t.Run("正常接受_创建雇佣记录", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOfferRepo()
		appSvc := appmocks.NewMockService(gomock.NewController(t))
		stubAppDetail(appSvc)
		appSvc.EXPECT().MarkOfferAccepted(gomock.Any(), int64(1), int64(100)).Return(nil).Times(1)
		prd := &fakeOfferProducer{}
		svc := NewService(repo, appSvc, prd)
		start := time.Now().AddDate(0, 1, 0).UnixMilli()
		id := repo.seed(domain.Offer{
			SN:             "sn-accept",
			DistrictID:     1,
			ApplicationID:  100,
			TemplateText:   "Dear {{name}}.",
			PositionTitle:  "数学教师",
			StartDate:      start,
			ExpirationDate: time.Now().AddDate(0, 0, 7).UnixMilli(),
			Status:         domain.StatusPending,
		})

		err := svc.Accept(context.Background(), "sn-accept")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, repo.offers[id].Status)
		require.Len(t, repo.hired, 1)
		assert.Equal(t, int64(100), repo.hired[0].ApplicationID)
		assert.Equal(t, start, repo.hired[0].HireDate)
		require.Len(t, prd.events, 1)
		assert.Equal(t, event.ActionAccepted, prd.events[0].Action)
	})

	t.Run("重复接受_状态冲突且不再创建雇佣记录", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOfferRepo()
		appSvc := appmocks.NewMockService(gomock.NewController(t))
		stubAppDetail(appSvc)
		// 第二次接受在状态机处失败，联动只发生一次
		appSvc.EXPECT().MarkOfferAccepted(gomock.Any(), int64(1), int64(100)).Return(nil).Times(1)
		svc := NewService(repo, appSvc, &fakeOfferProducer{})
		repo.seed(domain.Offer{
			SN:             "sn-twice",
			DistrictID:     1,
			ApplicationID:  100,
			TemplateText:   "t",
			ExpirationDate: time.Now().AddDate(0, 0, 7).UnixMilli(),
			Status:         domain.StatusPending,
		})

		require.NoError(t, svc.Accept(context.Background(), "sn-twice"))
		err := svc.Accept(context.Background(), "sn-twice")
		assert.ErrorIs(t, err, ErrStatusConflict)
		assert.Len(t, repo.hired, 1)
	})

	t.Run("阶段联动失败_错误上抛", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOfferRepo()
		appSvc := appmocks.NewMockService(gomock.NewController(t))
		stubAppDetail(appSvc)
		appSvc.EXPECT().MarkOfferAccepted(gomock.Any(), int64(1), int64(100)).
			Return(errors.New("数据库抖动")).Times(1)
		prd := &fakeOfferProducer{}
		svc := NewService(repo, appSvc, prd)
		id := repo.seed(domain.Offer{
			SN:             "sn-linkfail",
			DistrictID:     1,
			ApplicationID:  100,
			TemplateText:   "t",
			ExpirationDate: time.Now().AddDate(0, 0, 7).UnixMilli(),
			Status:         domain.StatusPending,
		})

		err := svc.Accept(context.Background(), "sn-linkfail")
		// Offer和雇佣记录已经落库，但申请阶段没跟上，调用方必须感知
		require.Error(t, err)
		assert.Equal(t, domain.StatusAccepted, repo.offers[id].Status)
		assert.Len(t, repo.hired, 1)
		assert.Empty(t, prd.events)
	})

	t.Run("惰性过期_接受时发现已过截止日", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOfferRepo()
		appSvc := appmocks.NewMockService(gomock.NewController(t))
		svc := NewService(repo, appSvc, &fakeOfferProducer{})
		id := repo.seed(domain.Offer{
			SN:             "sn-late",
			DistrictID:     1,
			ApplicationID:  100,
			TemplateText:   "t",
			ExpirationDate: time.Now().AddDate(0, 0, -1).UnixMilli(),
			Status:         domain.StatusPending,
		})

		err := svc.Accept(context.Background(), "sn-late")
		assert.ErrorIs(t, err, ErrOfferExpired)
		// 过期在读路径上落库
		assert.Equal(t, domain.StatusExpired, repo.offers[id].Status)
		assert.Empty(t, repo.hired)
	})
}

func TestService_Decline(t *testing.T) {
	t.Parallel()
	repo := newFakeOfferRepo()
	prd := &fakeOfferProducer{}
	appSvc := appmocks.NewMockService(gomock.NewController(t))
	stubAppDetail(appSvc)
	svc := NewService(repo, appSvc, prd)
	id := repo.seed(domain.Offer{
		SN:             "sn-decline",
		DistrictID:     1,
		ApplicationID:  100,
		TemplateText:   "t",
		ExpirationDate: time.Now().AddDate(0, 0, 7).UnixMilli(),
		Status:         domain.StatusPending,
	})

	err := svc.Decline(context.Background(), "sn-decline", "接受了别家")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeclined, repo.offers[id].Status)
	assert.Equal(t, "接受了别家", repo.offers[id].DeclinedReason)
	require.Len(t, prd.events, 1)
	assert.Equal(t, event.ActionDeclined, prd.events[0].Action)

	// 拒绝是终态，再接受失败
	assert.ErrorIs(t, svc.Accept(context.Background(), "sn-decline"), ErrStatusConflict)
}

func TestService_PublicDetail(t *testing.T) {
	t.Parallel()
	repo := newFakeOfferRepo()
	appSvc := appmocks.NewMockService(gomock.NewController(t))
	stubAppDetail(appSvc)
	svc := NewService(repo, appSvc, &fakeOfferProducer{})
	repo.seed(domain.Offer{
		SN:             "sn-pub",
		DistrictID:     1,
		ApplicationID:  100,
		TemplateText:   "Dear {{name}}, welcome.",
		TemplateData:   map[string]any{"name": "李四"},
		ExpirationDate: time.Now().AddDate(0, 0, -1).UnixMilli(),
		Status:         domain.StatusPending,
	})

	offer, letter, err := svc.PublicDetail(context.Background(), "sn-pub")
	require.NoError(t, err)
	// 展示用状态按Expired呈现，但只读路径不落库
	assert.Equal(t, domain.StatusExpired, offer.Status)
	assert.Equal(t, "Dear 李四, welcome.", letter)
}

func TestService_ExpireOffers(t *testing.T) {
	t.Parallel()
	repo := newFakeOfferRepo()
	appSvc := appmocks.NewMockService(gomock.NewController(t))
	svc := NewService(repo, appSvc, &fakeOfferProducer{})
	past := time.Now().AddDate(0, 0, -2).UnixMilli()
	future := time.Now().AddDate(0, 0, 7).UnixMilli()
	expired1 := repo.seed(domain.Offer{SN: "e1", DistrictID: 1, ApplicationID: 1, TemplateText: "t", ExpirationDate: past, Status: domain.StatusPending})
	expired2 := repo.seed(domain.Offer{SN: "e2", DistrictID: 2, ApplicationID: 2, TemplateText: "t", ExpirationDate: past, Status: domain.StatusPending})
	alive := repo.seed(domain.Offer{SN: "a1", DistrictID: 1, ApplicationID: 3, TemplateText: "t", ExpirationDate: future, Status: domain.StatusPending})

	cnt, err := svc.ExpireOffers(context.Background(), time.Now().UnixMilli(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
	assert.Equal(t, domain.StatusExpired, repo.offers[expired1].Status)
	assert.Equal(t, domain.StatusExpired, repo.offers[expired2].Status)
	assert.Equal(t, domain.StatusPending, repo.offers[alive].Status)
}

// ---- fakes ----

type fakeOfferRepo struct {
	nextID    int64
	offers    map[int64]domain.Offer
	templates map[int64]domain.OfferTemplate
	hired     []domain.HiredEmployee
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{
		nextID: 1,
		offers: make(map[int64]domain.Offer),
		templates: map[int64]domain.OfferTemplate{
			1: {ID: 1, DistrictID: 1, Name: "默认", TemplateText: "Dear {{name}}, salary {{salary}}."},
		},
	}
}

func (f *fakeOfferRepo) seed(offer domain.Offer) int64 {
	id := f.nextID
	f.nextID++
	offer.ID = id
	f.offers[id] = offer
	return id
}

func (f *fakeOfferRepo) Create(_ context.Context, offer domain.Offer) (int64, error) {
	for _, o := range f.offers {
		if o.DistrictID == offer.DistrictID && o.ApplicationID == offer.ApplicationID {
			return 0, dao.ErrDuplicateOffer
		}
	}
	return f.seed(offer), nil
}

func (f *fakeOfferRepo) FindByID(_ context.Context, district, id int64) (domain.Offer, error) {
	o, ok := f.offers[id]
	if !ok || o.DistrictID != district {
		return domain.Offer{}, dao.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOfferRepo) FindBySN(_ context.Context, sn string) (domain.Offer, error) {
	for _, o := range f.offers {
		if o.SN == sn {
			return o, nil
		}
	}
	return domain.Offer{}, dao.ErrRecordNotFound
}

func (f *fakeOfferRepo) FindByApplication(_ context.Context, district, applicationID int64) (domain.Offer, error) {
	for _, o := range f.offers {
		if o.DistrictID == district && o.ApplicationID == applicationID {
			return o, nil
		}
	}
	return domain.Offer{}, dao.ErrRecordNotFound
}

func (f *fakeOfferRepo) List(_ context.Context, district int64, status domain.Status, _, _ int) ([]domain.Offer, error) {
	var res []domain.Offer
	for _, o := range f.offers {
		if o.DistrictID == district && (status == "" || o.Status == status) {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeOfferRepo) Count(_ context.Context, district int64, status domain.Status) (int64, error) {
	list, _ := f.List(nil, district, status, 0, 0)
	return int64(len(list)), nil
}

func (f *fakeOfferRepo) Accept(_ context.Context, offerID, acceptedAt int64, hired domain.HiredEmployee) error {
	o, ok := f.offers[offerID]
	if !ok || o.Status != domain.StatusPending {
		return dao.ErrStatusConflict
	}
	o.Status = domain.StatusAccepted
	o.AcceptedDate = acceptedAt
	f.offers[offerID] = o
	hired.OfferID = offerID
	f.hired = append(f.hired, hired)
	return nil
}

func (f *fakeOfferRepo) Decline(_ context.Context, offerID int64, reason string) error {
	o, ok := f.offers[offerID]
	if !ok || o.Status != domain.StatusPending {
		return dao.ErrStatusConflict
	}
	o.Status = domain.StatusDeclined
	o.DeclinedReason = reason
	f.offers[offerID] = o
	return nil
}

func (f *fakeOfferRepo) Withdraw(_ context.Context, district, offerID int64) error {
	o, ok := f.offers[offerID]
	if !ok || o.DistrictID != district || o.Status != domain.StatusPending {
		return dao.ErrStatusConflict
	}
	o.Status = domain.StatusWithdrawn
	f.offers[offerID] = o
	return nil
}

func (f *fakeOfferRepo) MarkExpired(_ context.Context, offerID, deadline int64) error {
	o, ok := f.offers[offerID]
	if !ok || o.Status != domain.StatusPending || o.ExpirationDate >= deadline {
		return dao.ErrStatusConflict
	}
	o.Status = domain.StatusExpired
	f.offers[offerID] = o
	return nil
}

func (f *fakeOfferRepo) FindExpiring(_ context.Context, district, from, to int64) ([]domain.Offer, error) {
	var res []domain.Offer
	for _, o := range f.offers {
		if o.DistrictID == district && o.Status == domain.StatusPending &&
			o.ExpirationDate >= from && o.ExpirationDate <= to {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeOfferRepo) FindExpired(_ context.Context, deadline int64, limit int) ([]domain.Offer, error) {
	var res []domain.Offer
	for _, o := range f.offers {
		if o.Status == domain.StatusPending && o.ExpirationDate < deadline && len(res) < limit {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeOfferRepo) CountByStatus(_ context.Context, district int64, status domain.Status) (int64, error) {
	return f.Count(nil, district, status)
}

func (f *fakeOfferRepo) CreateTemplate(_ context.Context, t domain.OfferTemplate) (int64, error) {
	id := int64(len(f.templates) + 1)
	t.ID = id
	f.templates[id] = t
	return id, nil
}

func (f *fakeOfferRepo) FindTemplate(_ context.Context, district, id int64) (domain.OfferTemplate, error) {
	t, ok := f.templates[id]
	if !ok || t.DistrictID != district {
		return domain.OfferTemplate{}, dao.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeOfferRepo) ListTemplates(_ context.Context, district int64) ([]domain.OfferTemplate, error) {
	var res []domain.OfferTemplate
	for _, t := range f.templates {
		if t.DistrictID == district {
			res = append(res, t)
		}
	}
	return res, nil
}

func (f *fakeOfferRepo) FindHired(_ context.Context, district int64, _, _ int) ([]domain.HiredEmployee, error) {
	var res []domain.HiredEmployee
	for _, h := range f.hired {
		if h.DistrictID == district {
			res = append(res, h)
		}
	}
	return res, nil
}

func (f *fakeOfferRepo) CountHired(_ context.Context, district int64) (int64, error) {
	list, _ := f.FindHired(nil, district, 0, 0)
	return int64(len(list)), nil
}

type fakeOfferProducer struct {
	events []event.OfferEvent
}

func (f *fakeOfferProducer) Produce(_ context.Context, evt event.OfferEvent) error {
	f.events = append(f.events, evt)
	return nil
}
