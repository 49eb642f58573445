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

	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/event"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/repository"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/service"
	testioc "github.com/ecodeclub/hireflow/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testDistrict = int64(1)

func TestOnboardingModule(t *testing.T) {
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

	prd, err := event.NewOnboardingEventProducer(testioc.InitMQ())
	require.NoError(s.T(), err)
	s.svc = service.NewService(
		repository.NewOnboardingRepository(dao.NewGORMOnboardingDAO(s.db)),
		appmocks.NewMockService(gomock.NewController(s.T())),
		prd)
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{
		"onboarding_candidates", "onboarding_section_data",
		"onboarding_documents", "onboarding_audit_logs", "onboarding_email_logs",
	} {
		require.NoError(s.T(), s.db.Exec("DROP TABLE `"+table+"`").Error)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{
		"onboarding_candidates", "onboarding_section_data",
		"onboarding_documents", "onboarding_audit_logs", "onboarding_email_logs",
	} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

// 建候选人并把8个分区全部填完，返回可提交状态的候选人。
func (s *ModuleTestSuite) readyCandidate() domain.Candidate {
	t := s.T()
	staff := service.Actor{StaffID: 9}
	cand, err := s.svc.CreateCandidate(context.Background(), testDistrict, domain.Candidate{
		Name:          "王五",
		Email:         "wangwu@example.com",
		PositionTitle: "数学教师",
	}, staff)
	require.NoError(t, err)
	for i := 0; i < domain.SectionCount; i++ {
		cand, err = s.svc.UpdateSection(context.Background(), testDistrict, cand.ID, i,
			map[string]any{"filled": true}, true, staff)
		require.NoError(t, err)
	}
	require.Equal(t, domain.SectionCount, cand.CompletedSections)
	return cand
}

// 并发提交由数据库层的CAS兜底，只允许一个赢家，其余拿到重复提交错误。
func (s *ModuleTestSuite) TestSubmit_Concurrent() {
	t := s.T()
	cand := s.readyCandidate()

	const n = 8
	errCh := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- s.svc.Submit(context.Background(), testDistrict, cand.ID,
				service.Actor{StaffID: 9})
		}()
	}
	wg.Wait()
	close(errCh)

	var succeeded, duplicated int
	for err := range errCh {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, service.ErrAlreadySubmitted)
			duplicated++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, duplicated)

	got, err := s.svc.ResolveByID(context.Background(), testDistrict, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, got.Status)
	assert.True(t, got.SubmittedAt > 0)
}

// 分区没填完时CAS不放行。
func (s *ModuleTestSuite) TestSubmit_SectionsIncomplete() {
	t := s.T()
	staff := service.Actor{StaffID: 9}
	cand, err := s.svc.CreateCandidate(context.Background(), testDistrict, domain.Candidate{
		Name:  "赵六",
		Email: "zhaoliu@example.com",
	}, staff)
	require.NoError(t, err)

	err = s.svc.Submit(context.Background(), testDistrict, cand.ID, staff)
	assert.ErrorIs(t, err, service.ErrSectionsIncomplete)
}
