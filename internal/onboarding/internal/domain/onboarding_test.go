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
	"time"

	"github.com/stretchr/testify/assert"
)

// 状态只由 (completedSections, submittedAt) 决定
func TestStatusOf(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		completed   int
		submittedAt int64
		want        Status
	}{
		{name: "零完成", completed: 0, submittedAt: 0, want: StatusNotStarted},
		{name: "部分完成", completed: 1, submittedAt: 0, want: StatusInProgress},
		{name: "七个完成", completed: 7, submittedAt: 0, want: StatusInProgress},
		{name: "全部完成未提交", completed: 8, submittedAt: 0, want: StatusCompleted},
		{name: "全部完成已提交", completed: 8, submittedAt: 1700000000000, want: StatusSubmitted},
		// 提交时间在完成数不足时不起作用
		{name: "未完成带提交时间", completed: 3, submittedAt: 1700000000000, want: StatusInProgress},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, StatusOf(tc.completed, tc.submittedAt))
		})
	}
}

func TestCandidate_IsTokenExpired(t *testing.T) {
	t.Parallel()
	now := time.Now()
	assert.False(t, Candidate{TokenExpiresAt: now.Add(time.Hour).UnixMilli()}.IsTokenExpired(now))
	assert.True(t, Candidate{TokenExpiresAt: now.Add(-time.Hour).UnixMilli()}.IsTokenExpired(now))
	// 没设过期时间的视为长期有效
	assert.False(t, Candidate{}.IsTokenExpired(now))
}

func TestCandidate_Progress(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, Candidate{CompletedSections: 0}.Progress())
	assert.Equal(t, 50, Candidate{CompletedSections: 4}.Progress())
	assert.Equal(t, 87, Candidate{CompletedSections: 7}.Progress())
	assert.Equal(t, 100, Candidate{CompletedSections: 8}.Progress())
}
