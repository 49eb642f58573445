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

//go:build e2e

package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/hireflow/internal/application"
	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	"github.com/ecodeclub/hireflow/internal/offer/internal/domain"
	"github.com/ecodeclub/hireflow/internal/offer/internal/event"
	"github.com/ecodeclub/hireflow/internal/offer/internal/repository"
	"github.com/ecodeclub/hireflow/internal/offer/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/offer/internal/service"
	testioc "github.com/ecodeclub/hireflow/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testDistrict = int64(1)

func TestOfferModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc service.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))

	appSvc := appmocks.NewMockService(gomock.NewController(s.T()))
	appSvc.EXPECT().Detail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, district, id int64) (application.JobApplication, error) {
			return application.JobApplication{
				ID:            id,
				DistrictID:    district,
				ApplicantName: "张三",
				Email:         "zhangsan@example.com",
				Stage:         application.StageOffer,
			}, nil
		}).AnyTimes()
	appSvc.EXPECT().MarkOfferAccepted(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()

	prd, err := event.NewOfferEventProducer(testioc.InitMQ())
	require.NoError(s.T(), err)
	s.svc = service.NewService(
		repository.NewOfferRepository(dao.NewGORMOfferDAO(s.db)),
		appSvc, prd)
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"offers", "offer_templates", "hired_employees"} {
		require.NoError(s.T(), s.db.Exec("DROP TABLE `"+table+"`").Error)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"offers", "offer_templates", "hired_employees"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

func (s *ModuleTestSuite) createOffer(applicationID int64, expiration int64) domain.Offer {
	t := s.T()
	id, err := s.svc.Create(context.Background(), testDistrict, domain.Offer{
		ApplicationID:  applicationID,
		TemplateText:   "尊敬的{{name}}，欢迎加入。",
		PositionTitle:  "数学教师",
		Salary:         "年薪30万",
		StartDate:      time.Now().AddDate(0, 1, 0).UnixMilli(),
		ExpirationDate: expiration,
	})
	require.NoError(t, err)
	offer, err := s.svc.Detail(context.Background(), testDistrict, id)
	require.NoError(t, err)
	return offer
}

// 并发接受走的是数据库层的状态CAS，只允许一个赢家，
// 雇佣记录也只落一行。
func (s *ModuleTestSuite) TestAccept_Concurrent() {
	t := s.T()
	offer := s.createOffer(100, time.Now().AddDate(0, 0, 7).UnixMilli())

	const n = 10
	errCh := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- s.svc.Accept(context.Background(), offer.SN)
		}()
	}
	wg.Wait()
	close(errCh)

	var succeeded, conflicted int
	for err := range errCh {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, service.ErrStatusConflict)
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, conflicted)

	got, err := s.svc.Detail(context.Background(), testDistrict, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, got.Status)

	var hiredCount int64
	require.NoError(t, s.db.Table("hired_employees").
		Where("offer_id = ?", offer.ID).Count(&hiredCount).Error)
	assert.Equal(t, int64(1), hiredCount)
}

// 过期Offer接受时被惰性落库成 Expired，不会产生雇佣记录。
func (s *ModuleTestSuite) TestAccept_Expired() {
	t := s.T()
	offer := s.createOffer(101, time.Now().Add(-time.Hour).UnixMilli())

	err := s.svc.Accept(context.Background(), offer.SN)
	assert.ErrorIs(t, err, service.ErrOfferExpired)

	got, err := s.svc.Detail(context.Background(), testDistrict, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, got.Status)

	var hiredCount int64
	require.NoError(t, s.db.Table("hired_employees").
		Where("offer_id = ?", offer.ID).Count(&hiredCount).Error)
	assert.Equal(t, int64(0), hiredCount)
}
