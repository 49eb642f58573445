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
	"testing"

	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/position"
	posmocks "github.com/ecodeclub/hireflow/internal/position/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Submit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		district int64
		app      domain.JobApplication
		posErr   error
		wantErr  error
	}{
		{
			name:     "正常投递",
			district: 1,
			app: domain.JobApplication{
				PositionID:    10,
				ApplicantName: "张三",
				Email:         "zhangsan@example.com",
				References: []domain.Reference{
					{Name: "李校长", Relationship: "前上级"},
				},
			},
		},
		{
			name:     "岗位不在本学区",
			district: 2,
			app: domain.JobApplication{
				PositionID:    10,
				ApplicantName: "张三",
				Email:         "zhangsan@example.com",
			},
			posErr:  ErrPositionNotFound,
			wantErr: ErrPositionNotFound,
		},
		{
			name:     "缺少邮箱",
			district: 1,
			app: domain.JobApplication{
				PositionID:    10,
				ApplicantName: "张三",
			},
			wantErr: ErrInvalidApplication,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := newFakeAppRepo()
			posSvc := posmocks.NewMockService(gomock.NewController(t))
			if tc.posErr != nil {
				posSvc.EXPECT().Detail(gomock.Any(), tc.district, int64(10)).
					Return(position.Position{}, tc.posErr).AnyTimes()
			} else {
				posSvc.EXPECT().Detail(gomock.Any(), tc.district, int64(10)).
					Return(position.Position{ID: 10, DistrictID: tc.district}, nil).AnyTimes()
			}
			svc := NewService(repo, posSvc,
				&fakeSubmittedProducer{}, &fakeStageChangedProducer{}, false)
			id, err := svc.Submit(context.Background(), tc.district, tc.app)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StageApplicationReview, repo.apps[id].Stage)
			assert.True(t, repo.apps[id].Active)
		})
	}
}

func TestService_AdvanceStage(t *testing.T) {
	t.Parallel()
	repo := newFakeAppRepo()
	repo.apps[1] = domain.JobApplication{
		ID:         1,
		DistrictID: 1,
		Stage:      domain.StageReferenceCheck,
		Active:     true,
	}
	prd := &fakeStageChangedProducer{}
	svc := NewService(repo, posmocks.NewMockService(gomock.NewController(t)), &fakeSubmittedProducer{}, prd, false)

	stage, err := svc.AdvanceStage(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StageOffer, stage)
	require.Len(t, prd.events, 1)
	assert.Equal(t, domain.StageReferenceCheck.String(), prd.events[0].FromStage)
	assert.Equal(t, domain.StageOffer.String(), prd.events[0].ToStage)

	// 推到终态后再推进必须冲突且阶段不变
	repo.apps[1] = domain.JobApplication{
		ID:         1,
		DistrictID: 1,
		Stage:      domain.StageOfferAccepted,
	}
	_, err = svc.AdvanceStage(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrFinalStage)
	assert.Equal(t, domain.StageOfferAccepted, repo.apps[1].Stage)
}

func TestService_Reject(t *testing.T) {
	t.Parallel()
	repo := newFakeAppRepo()
	repo.apps[1] = domain.JobApplication{
		ID:         1,
		DistrictID: 1,
		Stage:      domain.StageInterview,
		Active:     true,
	}
	prd := &fakeStageChangedProducer{}
	svc := NewService(repo, posmocks.NewMockService(gomock.NewController(t)), &fakeSubmittedProducer{}, prd, false)

	require.NoError(t, svc.Reject(context.Background(), 1, 1))
	assert.Equal(t, domain.StageRejected, repo.apps[1].Stage)
	assert.False(t, repo.apps[1].Active)
	assert.Len(t, prd.events, 1)

	// 重复拒绝幂等，不再发事件
	require.NoError(t, svc.Reject(context.Background(), 1, 1))
	assert.Len(t, prd.events, 1)
}

func TestService_OverrideStage(t *testing.T) {
	t.Parallel()
	repo := newFakeAppRepo()
	repo.apps[1] = domain.JobApplication{
		ID:         1,
		DistrictID: 1,
		Stage:      domain.StageApplicationReview,
	}

	// 默认关闭
	svc := NewService(repo, posmocks.NewMockService(gomock.NewController(t)), &fakeSubmittedProducer{},
		&fakeStageChangedProducer{}, false)
	err := svc.OverrideStage(context.Background(), 1, 1, domain.StageOffer)
	assert.ErrorIs(t, err, ErrOverrideDisabled)
	assert.Equal(t, domain.StageApplicationReview, repo.apps[1].Stage)

	// 开启后允许跳跃，但阶段值必须合法
	svc = NewService(repo, posmocks.NewMockService(gomock.NewController(t)), &fakeSubmittedProducer{},
		&fakeStageChangedProducer{}, true)
	err = svc.OverrideStage(context.Background(), 1, 1, domain.Stage("Limbo"))
	assert.ErrorIs(t, err, ErrInvalidApplication)
	require.NoError(t, svc.OverrideStage(context.Background(), 1, 1, domain.StageOffer))
	assert.Equal(t, domain.StageOffer, repo.apps[1].Stage)
}

type fakeAppRepo struct {
	apps map[int64]domain.JobApplication
	next int64
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: map[int64]domain.JobApplication{}, next: 100}
}

func (f *fakeAppRepo) Create(_ context.Context, app domain.JobApplication) (int64, error) {
	f.next++
	app.ID = f.next
	f.apps[app.ID] = app
	return app.ID, nil
}

func (f *fakeAppRepo) FindByID(_ context.Context, district, id int64) (domain.JobApplication, error) {
	app, ok := f.apps[id]
	if !ok || app.DistrictID != district {
		return domain.JobApplication{}, ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeAppRepo) List(_ context.Context, _ int64, _ domain.Stage, _, _ int) ([]domain.JobApplication, error) {
	return nil, nil
}

func (f *fakeAppRepo) Count(_ context.Context, _ int64, _ domain.Stage) (int64, error) {
	return 0, nil
}

func (f *fakeAppRepo) UpdateStage(_ context.Context, district, id int64, from, to domain.Stage) error {
	app, ok := f.apps[id]
	if !ok || app.DistrictID != district || app.Stage != from {
		return ErrStageConflict
	}
	app.Stage = to
	f.apps[id] = app
	return nil
}

func (f *fakeAppRepo) SetStage(_ context.Context, district, id int64, stage domain.Stage) error {
	app, ok := f.apps[id]
	if !ok || app.DistrictID != district {
		return ErrApplicationNotFound
	}
	app.Stage = stage
	f.apps[id] = app
	return nil
}

func (f *fakeAppRepo) Reject(_ context.Context, district, id int64) error {
	app, ok := f.apps[id]
	if !ok || app.DistrictID != district {
		return ErrApplicationNotFound
	}
	app.Stage = domain.StageRejected
	app.Active = false
	f.apps[id] = app
	return nil
}

func (f *fakeAppRepo) CompleteInterviewStage(_ context.Context, district, id int64, stageNumber int) error {
	app, ok := f.apps[id]
	if !ok || app.DistrictID != district {
		return ErrApplicationNotFound
	}
	if stageNumber > app.CompletedInterviewStages {
		app.CompletedInterviewStages = stageNumber
	}
	f.apps[id] = app
	return nil
}

func (f *fakeAppRepo) SetCurrentInterviewStage(_ context.Context, district, id int64, stageNumber int) error {
	app := f.apps[id]
	app.CurrentInterviewStage = stageNumber
	f.apps[id] = app
	return nil
}

func (f *fakeAppRepo) CountByStage(_ context.Context, _ int64, _ domain.Stage) (int64, error) {
	return 0, nil
}

type fakeSubmittedProducer struct {
	events []event.SubmittedEvent
}

func (f *fakeSubmittedProducer) Produce(_ context.Context, evt event.SubmittedEvent) error {
	f.events = append(f.events, evt)
	return nil
}

type fakeStageChangedProducer struct {
	events []event.StageChangedEvent
}

func (f *fakeStageChangedProducer) Produce(_ context.Context, evt event.StageChangedEvent) error {
	f.events = append(f.events, evt)
	return nil
}
