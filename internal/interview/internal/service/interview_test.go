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

	"github.com/ecodeclub/hireflow/internal/application"
	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/event"
	"github.com/ecodeclub/hireflow/internal/position"
	posmocks "github.com/ecodeclub/hireflow/internal/position/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Schedule(t *testing.T) {
	t.Parallel()
	app := application.JobApplication{
		ID: 1, DistrictID: 1, PositionID: 10,
		ApplicantName: "张三", Email: "zhangsan@example.com",
	}
	testCases := []struct {
		name    string
		itv     domain.Interview
		mock    func(ctrl *gomock.Controller) (*appmocks.MockService, *posmocks.MockService)
		wantErr error
	}{
		{
			name: "正常排期",
			itv: domain.Interview{
				ApplicationID: 1,
				StageID:       21,
				Date:          "2024-03-15",
				Time:          "10:00",
			},
			mock: func(ctrl *gomock.Controller) (*appmocks.MockService, *posmocks.MockService) {
				appSvc := appmocks.NewMockService(ctrl)
				posSvc := posmocks.NewMockService(ctrl)
				appSvc.EXPECT().Detail(gomock.Any(), int64(1), int64(1)).Return(app, nil)
				posSvc.EXPECT().StageDetail(gomock.Any(), int64(1), int64(21)).
					Return(position.InterviewStage{ID: 21, PositionID: 10, StageNumber: 2}, nil)
				appSvc.EXPECT().SetCurrentInterviewStage(gomock.Any(), int64(1), int64(1), 2).Return(nil)
				return appSvc, posSvc
			},
		},
		{
			name: "线上面试生成会议链接",
			itv: domain.Interview{
				ApplicationID: 1,
				StageID:       21,
				Date:          "2024-03-15",
				Virtual:       true,
			},
			mock: func(ctrl *gomock.Controller) (*appmocks.MockService, *posmocks.MockService) {
				appSvc := appmocks.NewMockService(ctrl)
				posSvc := posmocks.NewMockService(ctrl)
				appSvc.EXPECT().Detail(gomock.Any(), int64(1), int64(1)).Return(app, nil)
				posSvc.EXPECT().StageDetail(gomock.Any(), int64(1), int64(21)).
					Return(position.InterviewStage{ID: 21, PositionID: 10, StageNumber: 2}, nil)
				appSvc.EXPECT().SetCurrentInterviewStage(gomock.Any(), int64(1), int64(1), 2).Return(nil)
				return appSvc, posSvc
			},
		},
		{
			name: "轮次属于别的岗位",
			itv: domain.Interview{
				ApplicationID: 1,
				StageID:       99,
				Date:          "2024-03-15",
			},
			mock: func(ctrl *gomock.Controller) (*appmocks.MockService, *posmocks.MockService) {
				appSvc := appmocks.NewMockService(ctrl)
				posSvc := posmocks.NewMockService(ctrl)
				appSvc.EXPECT().Detail(gomock.Any(), int64(1), int64(1)).Return(app, nil)
				posSvc.EXPECT().StageDetail(gomock.Any(), int64(1), int64(99)).
					Return(position.InterviewStage{ID: 99, PositionID: 77, StageNumber: 1}, nil)
				return appSvc, posSvc
			},
			wantErr: ErrStageMismatch,
		},
		{
			name: "缺少日期",
			itv: domain.Interview{
				ApplicationID: 1,
				StageID:       21,
			},
			mock: func(ctrl *gomock.Controller) (*appmocks.MockService, *posmocks.MockService) {
				return appmocks.NewMockService(ctrl), posmocks.NewMockService(ctrl)
			},
			wantErr: ErrInvalidInterview,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := newFakeInterviewRepo()
			appSvc, posSvc := tc.mock(gomock.NewController(t))
			prd := &fakeScheduledProducer{}
			svc := NewService(repo, appSvc, posSvc, prd)

			id, err := svc.Schedule(context.Background(), 1, tc.itv)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.interviews)
				return
			}
			require.NoError(t, err)
			saved := repo.interviews[id]
			assert.Equal(t, domain.StatusScheduled, saved.Status)
			assert.Equal(t, 2, saved.StageNumber)
			if tc.itv.Virtual {
				assert.NotEmpty(t, saved.MeetingLink)
			} else {
				assert.Empty(t, saved.MeetingLink)
			}
			require.Len(t, prd.events, 1)
			assert.Equal(t, "zhangsan@example.com", prd.events[0].Email)
		})
	}
}

func TestService_MarkCompleted(t *testing.T) {
	t.Parallel()
	repo := newFakeInterviewRepo()
	repo.interviews[5] = domain.Interview{
		ID: 5, DistrictID: 1, ApplicationID: 1,
		StageID: 21, StageNumber: 3,
		Status: domain.StatusScheduled,
	}
	appSvc := appmocks.NewMockService(gomock.NewController(t))
	// 第3轮先完成，联动上报的就是3；取最大值的单调推进在申请侧兜底
	appSvc.EXPECT().CompleteInterviewStage(gomock.Any(), int64(1), int64(1), 3).Return(nil).Times(1)
	svc := NewService(repo, appSvc,
		posmocks.NewMockService(gomock.NewController(t)), &fakeScheduledProducer{})

	require.NoError(t, svc.MarkCompleted(context.Background(), 1, 5, "表现不错", 4))
	assert.Equal(t, domain.StatusCompleted, repo.interviews[5].Status)

	// 已完成的面试不能重复标记，联动也只发生一次
	err := svc.MarkCompleted(context.Background(), 1, 5, "", 0)
	assert.ErrorIs(t, err, ErrStatusConflict)

	// 评分越界
	repo.interviews[6] = domain.Interview{
		ID: 6, DistrictID: 1, ApplicationID: 1, Status: domain.StatusScheduled,
	}
	err = svc.MarkCompleted(context.Background(), 1, 6, "", 9)
	assert.ErrorIs(t, err, ErrInvalidInterview)
}

func TestService_InterviewersFor(t *testing.T) {
	t.Parallel()
	repo := newFakeInterviewRepo()
	repo.busyStages = []int64{30}
	posSvc := posmocks.NewMockService(gomock.NewController(t))
	posSvc.EXPECT().PanelFor(gomock.Any(), int64(1), int64(21)).Return([]position.Interviewer{
		{ID: 1, StageID: 21, Name: "王主任", Email: "wang@district.edu"},
		{ID: 2, StageID: 21, Name: "李老师", Email: "li@district.edu"},
	}, nil).Times(2)
	posSvc.EXPECT().PanelFor(gomock.Any(), int64(1), int64(30)).Return([]position.Interviewer{
		{ID: 3, StageID: 30, Name: "王主任", Email: "wang@district.edu"},
	}, nil)
	svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)),
		posSvc, &fakeScheduledProducer{})

	// 不给时间点则返回完整面板
	panel, err := svc.InterviewersFor(context.Background(), 1, 21, "", "")
	require.NoError(t, err)
	assert.Len(t, panel, 2)

	// 王主任在同一时间点的另一轮面试上，被建议性剔除
	panel, err = svc.InterviewersFor(context.Background(), 1, 21, "2024-03-15", "10:00")
	require.NoError(t, err)
	require.Len(t, panel, 1)
	assert.Equal(t, "li@district.edu", panel[0].Email)
}

type fakeInterviewRepo struct {
	interviews map[int64]domain.Interview
	busyStages []int64
	next       int64
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: map[int64]domain.Interview{}, next: 100}
}

func (f *fakeInterviewRepo) Create(_ context.Context, itv domain.Interview) (int64, error) {
	f.next++
	itv.ID = f.next
	f.interviews[itv.ID] = itv
	return itv.ID, nil
}

func (f *fakeInterviewRepo) FindByID(_ context.Context, district, id int64) (domain.Interview, error) {
	itv, ok := f.interviews[id]
	if !ok || itv.DistrictID != district {
		return domain.Interview{}, ErrInterviewNotFound
	}
	return itv, nil
}

func (f *fakeInterviewRepo) ListByApplication(_ context.Context, _, _ int64) ([]domain.Interview, error) {
	return nil, nil
}

func (f *fakeInterviewRepo) ListByDateRange(_ context.Context, _ int64, _, _ string) ([]domain.Interview, error) {
	return nil, nil
}

func (f *fakeInterviewRepo) Complete(_ context.Context, district, id int64, feedback string, rating int8) error {
	itv, ok := f.interviews[id]
	if !ok || itv.DistrictID != district || itv.Status != domain.StatusScheduled {
		return ErrStatusConflict
	}
	itv.Status = domain.StatusCompleted
	itv.Feedback = feedback
	itv.Rating = rating
	f.interviews[id] = itv
	return nil
}

func (f *fakeInterviewRepo) UpdateStatus(_ context.Context, district, id int64, from, to domain.Status) error {
	itv, ok := f.interviews[id]
	if !ok || itv.DistrictID != district || itv.Status != from {
		return ErrStatusConflict
	}
	itv.Status = to
	f.interviews[id] = itv
	return nil
}

func (f *fakeInterviewRepo) BusyStageIDs(_ context.Context, _ int64, _, _ string) ([]int64, error) {
	return f.busyStages, nil
}

func (f *fakeInterviewRepo) CountByStatus(_ context.Context, _ int64, _ domain.Status) (int64, error) {
	return 0, nil
}

type fakeScheduledProducer struct {
	events []event.ScheduledEvent
}

func (f *fakeScheduledProducer) Produce(_ context.Context, evt event.ScheduledEvent) error {
	f.events = append(f.events, evt)
	return nil
}
