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
	"time"

	"github.com/ecodeclub/hireflow/internal/position/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Save(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		pos       domain.Position
		wantErr   error
		wantSaved func(t *testing.T, saved domain.Position)
	}{
		{
			name: "新建岗位补齐默认状态和轮次",
			pos: domain.Position{
				DistrictID:          1,
				ReqID:               "REQ-2024-001",
				Title:               "小学数学教师",
				InterviewStageCount: 3,
			},
			wantSaved: func(t *testing.T, saved domain.Position) {
				assert.Equal(t, domain.StatusDraft, saved.Status)
				require.Len(t, saved.Stages, 3)
				assert.Equal(t, 1, saved.Stages[0].StageNumber)
				assert.Equal(t, 3, saved.Stages[2].StageNumber)
			},
		},
		{
			name: "轮次数缺省为1",
			pos: domain.Position{
				DistrictID: 1,
				ReqID:      "REQ-2024-002",
				Title:      "校车司机",
			},
			wantSaved: func(t *testing.T, saved domain.Position) {
				assert.Equal(t, 1, saved.InterviewStageCount)
				require.Len(t, saved.Stages, 1)
			},
		},
		{
			name: "更新时不覆盖已有轮次定义",
			pos: domain.Position{
				ID:                  11,
				DistrictID:          1,
				ReqID:               "REQ-2024-003",
				Title:               "中学英语教师",
				Status:              domain.StatusOpen,
				InterviewStageCount: 2,
			},
			wantSaved: func(t *testing.T, saved domain.Position) {
				assert.Empty(t, saved.Stages)
			},
		},
		{
			name: "缺少标题",
			pos: domain.Position{
				DistrictID: 1,
				ReqID:      "REQ-2024-004",
			},
			wantErr: ErrInvalidPosition,
		},
		{
			name: "非法状态",
			pos: domain.Position{
				DistrictID: 1,
				ReqID:      "REQ-2024-005",
				Title:      "图书管理员",
				Status:     domain.Status("Archived"),
			},
			wantErr: ErrInvalidPosition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakePositionRepo{}
			svc := NewService(repo)
			_, err := svc.Save(context.Background(), tc.pos)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.wantSaved(t, repo.saved)
		})
	}
}

func TestService_CreateFromTemplate(t *testing.T) {
	t.Parallel()
	repo := &fakePositionRepo{
		template: domain.JobTemplate{
			ID:                  5,
			DistrictID:          1,
			TemplateName:        "教师岗通用模板",
			PrimaryJobTitle:     "小学语文教师",
			Department:          "教学部",
			FTE:                 1.0,
			InterviewStageCount: 2,
		},
	}
	svc := NewService(repo)
	_, err := svc.CreateFromTemplate(context.Background(), 1, 5, "REQ-2024-100",
		time.Now().UnixMilli(), time.Now().Add(30*24*time.Hour).UnixMilli())
	require.NoError(t, err)
	assert.Equal(t, "小学语文教师", repo.saved.Title)
	assert.Equal(t, "REQ-2024-100", repo.saved.ReqID)
	assert.Equal(t, domain.StatusDraft, repo.saved.Status)
	require.Len(t, repo.saved.Stages, 2)
}

func TestService_Stats(t *testing.T) {
	t.Parallel()
	repo := &fakePositionRepo{
		statusCounts: map[domain.Status]int64{
			domain.StatusDraft:  2,
			domain.StatusOpen:   5,
			domain.StatusClosed: 3,
		},
	}
	svc := NewService(repo)
	stats, err := svc.Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, Stats{Draft: 2, Open: 5, Closed: 3}, stats)
}

type fakePositionRepo struct {
	saved        domain.Position
	template     domain.JobTemplate
	statusCounts map[domain.Status]int64
}

func (f *fakePositionRepo) Save(_ context.Context, pos domain.Position) (int64, error) {
	f.saved = pos
	return 1, nil
}

func (f *fakePositionRepo) Find(_ context.Context, _, _ int64) (domain.Position, error) {
	return f.saved, nil
}

func (f *fakePositionRepo) List(_ context.Context, _ int64, _, _ int) ([]domain.Position, error) {
	return nil, nil
}

func (f *fakePositionRepo) Count(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (f *fakePositionRepo) ListOpen(_ context.Context, _ int64, _ time.Time, _, _, _ string) ([]domain.Position, error) {
	return nil, nil
}

func (f *fakePositionRepo) CountByStatus(_ context.Context, _ int64, status domain.Status) (int64, error) {
	return f.statusCounts[status], nil
}

func (f *fakePositionRepo) FindStage(_ context.Context, _, _ int64) (domain.InterviewStage, error) {
	return domain.InterviewStage{}, nil
}

func (f *fakePositionRepo) AddInterviewer(_ context.Context, iv domain.Interviewer) (int64, error) {
	return 1, nil
}

func (f *fakePositionRepo) PanelFor(_ context.Context, _, _ int64) ([]domain.Interviewer, error) {
	return nil, nil
}

func (f *fakePositionRepo) CreateQuestion(_ context.Context, _ domain.ScreeningQuestion) (int64, error) {
	return 1, nil
}

func (f *fakePositionRepo) ListQuestions(_ context.Context, _ int64, _ string) ([]domain.ScreeningQuestion, error) {
	return nil, nil
}

func (f *fakePositionRepo) BindQuestions(_ context.Context, _, _ int64, _ []int64) error {
	return nil
}

func (f *fakePositionRepo) CreateTemplate(_ context.Context, _ domain.JobTemplate) (int64, error) {
	return 1, nil
}

func (f *fakePositionRepo) FindTemplate(_ context.Context, _, _ int64) (domain.JobTemplate, error) {
	return f.template, nil
}

func (f *fakePositionRepo) ListTemplates(_ context.Context, _ int64) ([]domain.JobTemplate, error) {
	return nil, nil
}
