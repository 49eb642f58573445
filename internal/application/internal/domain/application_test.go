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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Next(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		stage   Stage
		want    Stage
		wantErr error
	}{
		{
			name:  "初审推进到筛选",
			stage: StageApplicationReview,
			want:  StageScreening,
		},
		{
			name:  "筛选推进到面试",
			stage: StageScreening,
			want:  StageInterview,
		},
		{
			name:  "面试推进到面试完成",
			stage: StageInterview,
			want:  StageInterviewsCompleted,
		},
		{
			name:  "面试完成推进到背调",
			stage: StageInterviewsCompleted,
			want:  StageReferenceCheck,
		},
		{
			name:  "背调推进到Offer",
			stage: StageReferenceCheck,
			want:  StageOffer,
		},
		{
			name:  "Offer推进到Offer已接受",
			stage: StageOffer,
			want:  StageOfferAccepted,
		},
		{
			name:    "终态不能再推进",
			stage:   StageOfferAccepted,
			wantErr: ErrFinalStage,
		},
		{
			name:    "已拒绝不能再推进",
			stage:   StageRejected,
			wantErr: ErrFinalStage,
		},
		{
			name:    "未知阶段",
			stage:   Stage("Background Check"),
			wantErr: ErrUnknownStage,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, err := tc.stage.Next()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, next)
		})
	}
}

// 全链路走一遍，确认推进路径无回绕无跳跃
func TestStage_FullPath(t *testing.T) {
	t.Parallel()
	stage := StageApplicationReview
	var path []Stage
	for {
		path = append(path, stage)
		next, err := stage.Next()
		if err != nil {
			assert.ErrorIs(t, err, ErrFinalStage)
			break
		}
		stage = next
	}
	assert.Equal(t, []Stage{
		StageApplicationReview,
		StageScreening,
		StageInterview,
		StageInterviewsCompleted,
		StageReferenceCheck,
		StageOffer,
		StageOfferAccepted,
	}, path)
}

func TestStage_IsTerminal(t *testing.T) {
	t.Parallel()
	assert.True(t, StageOfferAccepted.IsTerminal())
	assert.True(t, StageRejected.IsTerminal())
	assert.False(t, StageOffer.IsTerminal())
	assert.False(t, StageApplicationReview.IsTerminal())
}
